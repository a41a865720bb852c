package main

import (
	"fmt"
	"strconv"

	"github.com/agentsmithers/mcp-server-config/config"
	"github.com/urfave/cli/v2"
)

const categoryServer = "SERVER"

// serverFlags are fresh on every call as urfave flags keep state between
// runs.
func serverFlags() (address, port *cli.StringFlag) {
	address = &cli.StringFlag{
		Category: categoryServer,
		Name:     "address",
		Aliases:  []string{"ip"},
		Usage:    "bind `address`: '+' or '*' for all interfaces, 'localhost', or an ip literal",
	}

	port = &cli.StringFlag{
		Category: categoryServer,
		Name:     "port",
		Usage:    "tcp `port` between 1 and 65535",
	}

	return address, port
}

// edited returns the raw address and port as the operator would see them
// in an editor: the persisted values, overridden by whatever was given.
func edited(clictx *cli.Context, current *config.Server, address, port *cli.StringFlag) (string, string) {
	a, p := current.IpAddress, strconv.Itoa(current.Port)
	if clictx.IsSet(address.Name) {
		a = clictx.String(address.Name)
	}
	if clictx.IsSet(port.Name) {
		p = clictx.String(port.Name)
	}
	return a, p
}

func CommandSet(t *tool) *cli.Command {
	address, port := serverFlags()

	return &cli.Command{
		Name:  "set",
		Usage: "validate and persist new server settings",
		Flags: []cli.Flag{address, port},

		Action: func(clictx *cli.Context) error {
			a, p := edited(clictx, t.store.Load(), address, port)

			candidate, err := config.ParseServer(a, p)
			if err != nil {
				return err
			}
			if err := t.store.Apply(candidate); err != nil {
				return err
			}
			t.cfg.Server = candidate

			fmt.Fprintf(t.out,
				"Configuration saved.\n\nNew URL: %s\n\nPlease restart the MCP server for changes to take effect.\n",
				candidate.DisplayURL(),
			)
			return nil
		},
	}
}
