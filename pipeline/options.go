package pipeline

import (
	"log/slog"
	"math"
)

// Defaults.
const (
	DefaultBoundLimit     = 1000.0
	DefaultMaxPoints      = 100000
	DefaultContinuityStep = 1e-3
	// DefaultExtremaStep matches extrema.DefaultStep.
	DefaultExtremaStep = 1e-4
	// DefaultSeed maps to the montecarlo package's fixed default stream.
	DefaultSeed int64 = 0

	curveSegments = 1000
	variable      = "x"
)

// Option configures a Pipeline.
type Option func(*config)

type config struct {
	boundLimit     float64
	maxPoints      int
	extremaStep    float64
	continuityStep float64
	seed           int64
	restriction    Restriction
	logger         *slog.Logger
	recorder       Recorder
}

func defaultConfig() config {
	return config{
		boundLimit:     DefaultBoundLimit,
		maxPoints:      DefaultMaxPoints,
		extremaStep:    DefaultExtremaStep,
		continuityStep: DefaultContinuityStep,
		seed:           DefaultSeed,
		restriction:    Lexical,
		logger:         slog.New(slog.DiscardHandler),
		recorder:       nopRecorder{},
	}
}

// WithLimits sets the symmetric bound limit and the maximum point count.
// Panics on non-positive values.
func WithLimits(boundLimit float64, maxPoints int) Option {
	if !(boundLimit > 0) || math.IsInf(boundLimit, 1) {
		panic("pipeline: WithLimits(boundLimit<=0 or non-finite)")
	}
	if maxPoints < 1 {
		panic("pipeline: WithLimits(maxPoints<1)")
	}
	return func(c *config) {
		c.boundLimit = boundLimit
		c.maxPoints = maxPoints
	}
}

// WithSteps sets the extrema scan step and the continuity grid step.
// Panics on non-positive values.
func WithSteps(extremaStep, continuityStep float64) Option {
	if !(extremaStep > 0) || !(continuityStep > 0) ||
		math.IsInf(extremaStep, 1) || math.IsInf(continuityStep, 1) {
		panic("pipeline: WithSteps(step<=0 or non-finite)")
	}
	return func(c *config) {
		c.extremaStep = extremaStep
		c.continuityStep = continuityStep
	}
}

// WithSeed sets the Monte Carlo seed used for every cycle (0 ⇒ default stream).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithRestriction selects Lexical or Semantic refusal of tan/cot/division.
func WithRestriction(r Restriction) Option {
	if r != Lexical && r != Semantic {
		panic("pipeline: WithRestriction(unknown mode)")
	}
	return func(c *config) {
		c.restriction = r
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithRecorder installs a cycle observer. Panics on nil.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic("pipeline: WithRecorder(nil)")
	}
	return func(c *config) {
		c.recorder = r
	}
}
