package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentsmithers/mcp-server-config/config"
	"github.com/urfave/cli/v2"
)

func CommandPreview(t *tool) *cli.Command {
	address, port := serverFlags()

	return &cli.Command{
		Name:  "preview",
		Usage: "preview the url of edited server settings without saving them",
		Flags: []cli.Flag{address, port},

		Action: func(clictx *cli.Context) error {
			current := t.store.Load()
			a, p := edited(clictx, current, address, port)

			portValid := false
			previewPort := current.Port
			if n, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
				previewPort = n
				portValid = config.ValidatePort(n)
			}

			fmt.Fprintf(t.out, "Preview URL: %s\n", config.PreviewURL(a, previewPort))
			fmt.Fprintf(t.out, "IP address:  %s\n", validity(config.ValidateAddress(strings.TrimSpace(a))))
			fmt.Fprintf(t.out, "Port:        %s\n", validity(portValid))
			return nil
		},
	}
}

func validity(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}
