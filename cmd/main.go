package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/agentsmithers/mcp-server-config/config"
	"github.com/agentsmithers/mcp-server-config/logutils"
	"github.com/agentsmithers/mcp-server-config/metrics"
	"github.com/agentsmithers/mcp-server-config/store"

	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"go.uber.org/zap"
)

var (
	version = "development"
)

const (
	appName   = "mcp-config"
	envPrefix = "MCP_CONFIG_"
)

var (
	flagConfig = &cli.StringFlag{
		Name:  "config",
		Usage: "`path` to a yaml file with flag values",
	}

	flagMetricsTextfile = &cli.StringFlag{
		EnvVars: []string{envPrefix + "METRICS_TEXTFILE"},
		Name:    "metrics-textfile",
		Usage:   "`path` of a prometheus textfile to write the metrics into on exit",
	}
)

// tool is what the commands share once the app has been set up.
type tool struct {
	cfg      *config.Config
	store    *store.Store
	exporter *metrics.Exporter
	out      io.Writer
}

func main() {
	app := newApp(os.Stdout)

	defer func() {
		_ = zap.L().Sync()
	}()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed with error:\n\n%s\n\n", err.Error())
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	t := &tool{
		cfg: config.New(),
		out: out,
	}

	flags := []cli.Flag{
		flagConfig,
		flagMetricsTextfile,

		altsrc.NewStringFlag(&cli.StringFlag{
			Aliases:     []string{"log.level"},
			Destination: &t.cfg.Log.Level,
			EnvVars:     []string{envPrefix + "LOG_LEVEL"},
			Name:        "log-level",
			Usage:       "logging level",
			Value:       "info",
		}),

		altsrc.NewStringFlag(&cli.StringFlag{
			Aliases:     []string{"log.mode"},
			Destination: &t.cfg.Log.Mode,
			EnvVars:     []string{envPrefix + "LOG_MODE"},
			Name:        "log-mode",
			Usage:       "logging mode",
			Value:       config.LogModeProd,
		}),
	}

	commands := []*cli.Command{
		CommandShow(t),
		CommandPreview(t),
		CommandSet(t),
		CommandReset(t),
		CommandDump(t),
	}

	return &cli.App{
		Name:    appName,
		Usage:   "Inspects and changes the bind settings of the MCP control server",
		Version: version,
		Writer:  out,

		Flags:          flags,
		Commands:       commands,
		DefaultCommand: commands[0].Name,

		Before: func(clictx *cli.Context) error {
			if f := clictx.String(flagConfig.Name); f != "" {
				if err := altsrc.InitInputSourceWithContext(
					flags,
					altsrc.NewYamlSourceFromFlagFunc(flagConfig.Name),
				)(clictx); err != nil {
					return err
				}
			}

			if err := t.cfg.Validate(); err != nil {
				return err
			}

			// setup logger
			l, err := logutils.NewLogger(t.cfg.Log)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(l)
			clictx.Context = logutils.ContextWithLogger(clictx.Context, l)

			// setup metrics
			exporter, err := metrics.Setup(appName, version)
			if err != nil {
				return err
			}
			t.exporter = exporter

			s, err := store.New(l, exporter.Metrics)
			if err != nil {
				return err
			}
			t.store = s

			return nil
		},

		After: func(clictx *cli.Context) error {
			if t.exporter == nil {
				return nil
			}
			l := logutils.LoggerFromContext(clictx.Context)

			if f := clictx.String(flagMetricsTextfile.Name); f != "" {
				if err := t.exporter.WriteTextfile(f); err != nil {
					l.Error("Failed to write metrics textfile",
						zap.Error(err),
						zap.String("path", f),
					)
				}
			}

			return t.exporter.Shutdown(context.WithoutCancel(clictx.Context))
		},

		Action: func(clictx *cli.Context) error {
			return cli.ShowAppHelp(clictx)
		},
	}
}
