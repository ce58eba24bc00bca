package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netarea/pipeline"
)

// evalFlags are the raw form fields; they go through the same parsing
// and checks as the interactive form.
type evalFlags struct {
	input       pipeline.Input
	seed        int64
	restriction string
	asJSON      bool
}

// evalReport is the --json output.
type evalReport struct {
	OK          bool     `json:"ok"`
	NetArea     *float64 `json:"net_area,omitempty"`
	NetAreaText string   `json:"net_area_text,omitempty"`
	Method      string   `json:"method,omitempty"`
	Points      int      `json:"points,omitempty"`
	ElapsedMS   float64  `json:"elapsed_ms,omitempty"`
	Error       string   `json:"error,omitempty"`
	Check       int      `json:"check,omitempty"`
	Kind        string   `json:"kind"`
}

func newEvalCmd(a *app) *cobra.Command {
	f := &evalFlags{}
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Run one validation cycle and print the net area",
		Long: `Run one validation cycle from flags.

On success the net area is printed to stdout. On rejection the message is
printed to stderr and the exit status is 1.

Exit Codes:
  0 = net area computed
  1 = input rejected
  2 = usage or config error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEval(cmd, a, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input.Equation, "equation", "e", "",
		"Equation in x, e.g. \"x^2 - 4x + 1\"")
	fl.StringVarP(&f.input.Method, "method", "m", "",
		"Integration method: \"Monte Carlo\" or \"Riemann Sum\"")
	fl.StringVar(&f.input.Endpoint, "endpoint", "",
		"Riemann sample point: left, right, midpoint")
	fl.StringVarP(&f.input.Lower, "lower", "a", "",
		"Lower bound")
	fl.StringVarP(&f.input.Upper, "upper", "b", "",
		"Upper bound")
	fl.StringVarP(&f.input.Points, "points", "n", "",
		"Number of samples or rectangles")
	fl.Int64Var(&f.seed, "seed", 0,
		"Monte Carlo seed (overrides the config)")
	fl.StringVar(&f.restriction, "restriction", "",
		"Function restriction mode: lexical, semantic (overrides the config)")
	fl.BoolVar(&f.asJSON, "json", false,
		"Output as JSON")

	return cmd
}

func runEval(cmd *cobra.Command, a *app, f *evalFlags) error {
	var extra []pipeline.Option
	if cmd.Flags().Changed("seed") {
		extra = append(extra, pipeline.WithSeed(f.seed))
	}
	if cmd.Flags().Changed("restriction") {
		mode, ok := pipeline.ParseRestriction(f.restriction)
		if !ok {
			return &exitCodeError{code: exitError, err: fmt.Errorf("unknown restriction %q", f.restriction)}
		}
		extra = append(extra, pipeline.WithRestriction(mode))
	}

	p := a.newPipeline(a.logger, extra...)
	v, err := p.Validate(cmd.Context(), f.input)

	report := evalReport{OK: err == nil, Kind: pipeline.KindName(err)}
	if err == nil {
		report.NetArea = &v
		report.NetAreaText = pipeline.FormatDouble(v)
		if snap, ok := p.Last(); ok {
			report.Method = snap.Request.Method.String()
			report.Points = snap.Request.Points
			report.ElapsedMS = float64(snap.Elapsed.Microseconds()) / 1000
		}
	} else {
		report.Error = pipeline.Message(err)
		var rej *pipeline.Rejection
		if errors.As(err, &rej) {
			report.Check = int(rej.Check)
		}
	}

	if f.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if werr := enc.Encode(report); werr != nil {
			return &exitCodeError{code: exitError, err: werr}
		}
	} else if report.OK {
		fmt.Fprintln(cmd.OutOrStdout(), report.NetAreaText)
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), report.Error)
	}

	if !report.OK {
		return &exitCodeError{code: exitRejected}
	}
	return nil
}
