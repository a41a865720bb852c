package utils

import "errors"

// FlattenErrors returns nil for no errors, the error itself for one, and
// a joined error otherwise. Nil entries are skipped.
func FlattenErrors(errs []error) error {
	errs = nonNil(errs)

	switch len(errs) {
	default:
		return errors.Join(errs...)
	case 1:
		return errs[0]
	case 0:
		return nil
	}
}

func nonNil(errs []error) []error {
	res := errs[:0:0]
	for _, err := range errs {
		if err != nil {
			res = append(res, err)
		}
	}
	return res
}
