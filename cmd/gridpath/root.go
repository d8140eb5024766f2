package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/internal/telemetry"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app holds the state shared by every command of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	logLevel  string
	logFormat string
	telemetry string

	recorder *telemetry.Recorder
	shutdown func(context.Context) error
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Shortest paths on grids with stateful movement rules",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: exitUsage, Err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&a.telemetry, "telemetry", "none", "telemetry exporter: none or stdout")

	root.AddCommand(a.solveCmd(), a.watchCmd(), a.policiesCmd())
	return root
}

// setup installs the logger and, when asked for, telemetry.
func (a *app) setup(cmd *cobra.Command) error {
	logger := ctxlog.New(a.logLevel, a.logFormat, a.stderr)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	cfg := telemetry.DefaultConfig()
	cfg.ServiceVersion = version
	cfg.TraceExporter = a.telemetry
	cfg.MetricExporter = a.telemetry
	cfg.Writer = a.stderr
	shutdown, err := telemetry.Init(ctx, cfg)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}
	a.shutdown = shutdown

	if a.telemetry != "none" {
		if a.recorder, err = telemetry.Global(); err != nil {
			return err
		}
	}
	logger.Debug("CLI ready", "command", cmd.Name(), "telemetry", a.telemetry)
	return nil
}

// close flushes telemetry.
func (a *app) close() error {
	if a.shutdown == nil {
		return nil
	}
	return a.shutdown(context.Background())
}
