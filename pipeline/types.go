package pipeline

import (
	"strings"
	"time"

	"github.com/katalvlaran/netarea/core"
	"github.com/katalvlaran/netarea/expr"
	"github.com/katalvlaran/netarea/montecarlo"
	"github.com/katalvlaran/netarea/riemann"
)

// Input holds the raw text of one form submission.
type Input struct {
	Equation string
	Method   string // "" means not selected
	Endpoint string // "" means not selected
	Lower    string
	Upper    string
	Points   string
}

// Method selects the integrator.
type Method int

const (
	// MonteCarlo estimates by random sampling.
	MonteCarlo Method = iota + 1

	// RiemannSum uses a uniform Riemann sum.
	RiemannSum
)

// String returns the display name.
func (m Method) String() string {
	switch m {
	case MonteCarlo:
		return "Monte Carlo"
	case RiemannSum:
		return "Riemann Sum"
	default:
		return "unspecified"
	}
}

// ParseMethod maps method text to a Method. Blank text reports ok=false.
// "Riemann Sum" (case-insensitive, spaces optional) selects RiemannSum; any
// other non-blank text selects MonteCarlo.
func ParseMethod(text string) (m Method, ok bool) {
	t := strings.ToLower(strings.Join(strings.Fields(text), ""))
	switch t {
	case "":
		return 0, false
	case "riemannsum", "riemann":
		return RiemannSum, true
	default:
		return MonteCarlo, true
	}
}

// Restriction selects how tangent/cotangent and division are refused.
type Restriction int

const (
	// Lexical bans by substring on the raw equation text, before parsing.
	Lexical Restriction = iota

	// Semantic bans by inspecting the parsed expression.
	Semantic
)

// String returns "lexical" or "semantic".
func (r Restriction) String() string {
	if r == Semantic {
		return "semantic"
	}
	return "lexical"
}

// ParseRestriction maps "lexical" / "semantic" (case-insensitive) to a Restriction.
func ParseRestriction(text string) (Restriction, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "lexical", "":
		return Lexical, true
	case "semantic":
		return Semantic, true
	default:
		return Lexical, false
	}
}

// Request is the typed form of an Input that passed checks 1-12.
type Request struct {
	Equation *expr.Expression
	Method   Method
	Endpoint riemann.Endpoint // meaningful for RiemannSum only
	Interval core.Interval
	Points   int
}

// Result is the text boundary: exactly one of ErrorMessage and NetAreaText
// is non-empty.
type Result struct {
	ErrorMessage string
	NetAreaText  string
	NetArea      float64
}

// OK reports whether the cycle was accepted.
func (r Result) OK() bool { return r.ErrorMessage == "" }

// Snapshot is the last accepted cycle with everything a renderer needs.
type Snapshot struct {
	Request Request
	NetArea float64

	// Curve samples f at 1001 evenly spaced points across the interval.
	// Points where f is not finite are omitted.
	Curve []core.Point

	// Rects is set for RiemannSum.
	Rects []riemann.Rect

	// Samples, Regions and Bounds are set for MonteCarlo.
	Samples montecarlo.SampleSet
	Regions []montecarlo.Region
	Bounds  montecarlo.Rect

	Elapsed time.Duration
}

// Recorder observes pipeline cycles. Implementations must be safe for
// concurrent use.
type Recorder interface {
	// RecordCycle counts one cycle; outcome is "accepted" or "rejected",
	// kind is KindName of the error.
	RecordCycle(outcome, kind string)

	// RecordIntegration observes the integrator run time of an accepted cycle.
	RecordIntegration(method string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordCycle(string, string)              {}
func (nopRecorder) RecordIntegration(string, time.Duration) {}
