package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netarea/internal/config"
	"github.com/katalvlaran/netarea/internal/metrics"
	"github.com/katalvlaran/netarea/internal/tui"
	"github.com/katalvlaran/netarea/pipeline"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitError    = 2
)

// exitCodeError ends the command with code; err, when set, is printed.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitCodeError) Unwrap() error { return e.err }

// app is the state shared by all commands of one invocation.
type app struct {
	configPath string
	logLevel   string
	textfile   string

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	recorder *metrics.Recorder
}

// setup loads the config and applies the persistent flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("metrics-textfile") {
		cfg.Metrics.Textfile = a.textfile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	a.registry = prometheus.NewRegistry()
	a.recorder = metrics.New(a.registry)

	return nil
}

// newPipeline builds a pipeline from the loaded config plus extra options.
func (a *app) newPipeline(logger *slog.Logger, extra ...pipeline.Option) *pipeline.Pipeline {
	opts := append(a.cfg.PipelineOptions(), pipeline.WithLogger(logger), pipeline.WithRecorder(a.recorder))
	return pipeline.New(append(opts, extra...)...)
}

// flushMetrics writes the registry to the configured textfile, if any.
func (a *app) flushMetrics() error {
	if a.registry == nil || a.cfg.Metrics.Textfile == "" {
		return nil
	}
	return metrics.WriteTextfile(a.registry, a.cfg.Metrics.Textfile)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "netarea",
		Short: "Estimate the net signed area under f(x) on [a, b]",
		Long: `netarea validates an equation, an integration method and its bounds,
then estimates the net signed area by Monte Carlo sampling or a Riemann sum.

Run without a subcommand on a terminal to open the interactive form.

Examples:
  netarea
  netarea eval -e "x^2 - 4x" -m "Riemann Sum" --endpoint left -a 0 -b 4 -n 1000
  netarea eval -e "sin(x)" -m "Monte Carlo" -a 0 -b 3.14159 -n 100000 --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
				return runTUI(cmd.Context(), a)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.textfile, "metrics-textfile", "",
		"Write Prometheus metrics to this file on exit")

	root.AddCommand(newEvalCmd(a), newTUICmd(a))

	return root
}

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), a)
		},
	}
}

// runTUI owns the terminal, so the pipeline logs nothing while it runs.
func runTUI(ctx context.Context, a *app) error {
	p := a.newPipeline(slog.New(slog.DiscardHandler))
	if err := tui.Run(ctx, p); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// execute runs the command line and maps the outcome to an exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if ferr := a.flushMetrics(); ferr != nil {
		fmt.Fprintf(stderr, "netarea: write metrics: %v\n", ferr)
		if err == nil {
			return exitError
		}
	}

	var ec *exitCodeError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ec):
		if ec.err != nil {
			fmt.Fprintf(stderr, "netarea: %v\n", ec.err)
		}
		return ec.code
	default:
		fmt.Fprintf(stderr, "netarea: %v\n", err)
		return exitError
	}
}
