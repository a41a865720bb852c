package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func CommandReset(t *tool) *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "persist the default server settings",

		Action: func(_ *cli.Context) error {
			t.cfg.Server = t.store.Reset()

			fmt.Fprintf(t.out, "Configuration reset.\n\nNew URL: %s\n", t.cfg.Server.DisplayURL())
			return nil
		},
	}
}
