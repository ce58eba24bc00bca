package montecarlo

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/netarea/extrema"
)

// Option customizes Generate, Area and Survey. Options are applied in order;
// later ones override earlier ones.
type Option func(*config)

type config struct {
	// RNG for Generate; nil means "seeded with defaultRNGSeed".
	rng *rand.Rand

	// Grid step for the extrema re-scan in Area/Survey.
	extremaStep float64
}

// WithSeed makes Generate draw from a fresh RNG seeded with seed
// (0 ⇒ defaultRNGSeed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand supplies an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("montecarlo: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithExtremaStep sets the grid step of the extrema re-scan done by Area.
// Panics if step is not a positive finite number.
func WithExtremaStep(step float64) Option {
	if !(step > 0) || math.IsInf(step, 1) {
		panic("montecarlo: WithExtremaStep(step<=0 or non-finite)")
	}
	return func(c *config) {
		c.extremaStep = step
	}
}

func newConfig(opts ...Option) config {
	cfg := config{extremaStep: extrema.DefaultStep}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}
