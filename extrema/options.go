package extrema

import "math"

// DefaultStep is the grid spacing used when no WithStep option is given.
const DefaultStep = 1e-4

// checkEvery is how many evaluations run between ctx.Err() polls.
const checkEvery = 4096

// Option customizes a Scan.
type Option func(*config)

type config struct {
	step float64
}

// WithStep sets the grid spacing. Panics if step is not a positive finite number.
func WithStep(step float64) Option {
	if !(step > 0) || math.IsInf(step, 1) {
		panic("extrema: WithStep(step<=0 or non-finite)")
	}
	return func(c *config) {
		c.step = step
	}
}

func newConfig(opts ...Option) config {
	cfg := config{step: DefaultStep}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
