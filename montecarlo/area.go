package montecarlo

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netarea/core"
	"github.com/katalvlaran/netarea/extrema"
)

// checkEvery is how many classifications run between ctx.Err() polls.
const checkEvery = 4096

// Region labels a sample relative to the graph of f.
type Region int

const (
	// Outside: neither between the axis and the curve above nor below it.
	Outside Region = iota

	// Positive: f(x) > 0 and 0 ≤ y ≤ f(x).
	Positive

	// Negative: f(x) < 0 and f(x) ≤ y ≤ 0.
	Negative
)

// String returns "outside", "positive" or "negative".
func (r Region) String() string {
	switch r {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "outside"
	}
}

// Counts is a hit tally.
type Counts struct {
	Positive, Negative, Outside int
}

// Total returns the number of classified samples.
func (c Counts) Total() int { return c.Positive + c.Negative + c.Outside }

// Estimate is the full result of a Monte Carlo run.
type Estimate struct {
	// Area is the net signed area (pos-neg)/n · Bounds.Area().
	Area float64

	// Bounds is the rectangle derived from the re-scanned extrema.
	Bounds Rect

	Counts Counts

	// Regions[i] labels samples[i].
	Regions []Region
}

// Classify labels a single point. NaN values are Outside.
func Classify(f core.Integrand, p core.Point) (Region, error) {
	v, err := f.Evaluate(p.X)
	if err != nil {
		return Outside, fmt.Errorf("montecarlo: f(%g): %w", p.X, err)
	}

	return classify(v, p.Y), nil
}

func classify(v, y float64) Region {
	switch {
	case v > 0 && y >= 0 && y <= v:
		return Positive
	case v < 0 && y <= 0 && y >= v:
		return Negative
	default:
		return Outside
	}
}

// Tally counts the regions of all samples.
func Tally(f core.Integrand, samples SampleSet) (Counts, error) {
	if err := core.ValidateIntegrand(f); err != nil {
		return Counts{}, err
	}
	var c Counts
	for _, p := range samples {
		r, err := Classify(f, p)
		if err != nil {
			return Counts{}, err
		}
		c.add(r)
	}

	return c, nil
}

// CountRegions tallies labels produced by Survey.
func CountRegions(regions []Region) Counts {
	var c Counts
	for _, r := range regions {
		c.add(r)
	}
	return c
}

func (c *Counts) add(r Region) {
	switch r {
	case Positive:
		c.Positive++
	case Negative:
		c.Negative++
	default:
		c.Outside++
	}
}

// Area estimates the net signed area of f over iv from samples.
func Area(ctx context.Context, f core.Integrand, iv core.Interval, samples SampleSet, opts ...Option) (float64, error) {
	est, err := Survey(ctx, f, iv, samples, opts...)
	if err != nil {
		return 0, err
	}

	return est.Area, nil
}

// Survey is Area plus the geometry a renderer needs: the bounding rectangle,
// the tally and a label per sample.
//
// Stages:
//  1. Validate f, iv and samples.
//  2. Re-scan the extrema of f on iv and derive the rectangle.
//  3. Classify every sample, polling ctx every checkEvery points.
func Survey(ctx context.Context, f core.Integrand, iv core.Interval, samples SampleSet, opts ...Option) (Estimate, error) {
	if err := core.ValidateIntegrand(f); err != nil {
		return Estimate{}, err
	}
	if err := iv.Validate(); err != nil {
		return Estimate{}, err
	}
	if len(samples) == 0 {
		return Estimate{}, ErrNoSamples
	}
	cfg := newConfig(opts...)

	r, err := extrema.Scan(ctx, f, iv, extrema.WithStep(cfg.extremaStep))
	if err != nil {
		return Estimate{}, err
	}
	est := Estimate{
		Bounds:  Bounds(iv, r),
		Regions: make([]Region, len(samples)),
	}
	rect := est.Bounds.Area()
	if !core.IsFinite(rect) {
		return Estimate{}, fmt.Errorf("%w: unbounded rectangle [%g, %g]", ErrBadRange, r.Min, r.Max)
	}

	for i, p := range samples {
		if i%checkEvery == 0 {
			if err = ctx.Err(); err != nil {
				return Estimate{}, fmt.Errorf("montecarlo: %w", err)
			}
		}
		v, err := f.Evaluate(p.X)
		if err != nil {
			return Estimate{}, fmt.Errorf("montecarlo: f(%g): %w", p.X, err)
		}
		reg := classify(v, p.Y)
		est.Regions[i] = reg
		est.Counts.add(reg)
	}

	n := float64(len(samples))
	est.Area = float64(est.Counts.Positive)/n*rect - float64(est.Counts.Negative)/n*rect

	return est, nil
}
