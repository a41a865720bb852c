package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func CommandShow(t *tool) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "show the persisted server settings and the urls derived from them",

		Action: func(_ *cli.Context) error {
			t.cfg.Server = t.store.Load()

			fmt.Fprintf(t.out, "Config file:  %s\n", t.store.Path())
			fmt.Fprintf(t.out, "IP address:   %s\n", t.cfg.Server.IpAddress)
			fmt.Fprintf(t.out, "Port:         %d\n", t.cfg.Server.Port)
			fmt.Fprintf(t.out, "Listener URL: %s\n", t.cfg.Server.ListenerURL())
			fmt.Fprintf(t.out, "Display URL:  %s\n", t.cfg.Server.DisplayURL())
			return nil
		},
	}
}
