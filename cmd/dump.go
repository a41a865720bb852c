package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func CommandDump(t *tool) *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "dump the effective configuration",

		Action: func(_ *cli.Context) error {
			t.cfg.Server = t.store.Load()

			fmt.Fprintf(t.out, "---\n\n%s\n", t.cfg.String())
			return nil
		},
	}
}
