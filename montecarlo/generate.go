package montecarlo

import (
	"fmt"

	"github.com/katalvlaran/netarea/core"
	"github.com/katalvlaran/netarea/extrema"
)

// SampleSet is an ordered list of random points. Duplicate x values are
// kept; order is the draw order.
type SampleSet []core.Point

// Rect is an axis-aligned rectangle [X0, X1] × [Y0, Y1].
type Rect struct {
	X0, X1 float64
	Y0, Y1 float64
}

// Area returns (X1-X0)·(Y1-Y0).
func (r Rect) Area() float64 { return (r.X1 - r.X0) * (r.Y1 - r.Y0) }

// Contains reports whether p lies in the closed rectangle.
func (r Rect) Contains(p core.Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Bounds returns the sampling rectangle for iv and the function range r,
// stretched vertically so it always contains y = 0.
func Bounds(iv core.Interval, r extrema.Range) Rect {
	return Rect{
		X0: iv.Lower,
		X1: iv.Upper,
		Y0: min(r.Min, 0),
		Y1: max(r.Max, 0),
	}
}

// Generate draws n points with x uniform in [lower, upper) and y uniform in
// [minValue, maxValue). Without WithSeed/WithRand the default seed is used.
//
// Errors: ErrNonPositiveCount, core.ErrInvertedBounds / core.ErrNonFiniteBound
// for the x range, ErrBadRange for the y range.
func Generate(lower, upper, minValue, maxValue float64, n int, opts ...Option) (SampleSet, error) {
	if n < 1 {
		return nil, ErrNonPositiveCount
	}
	if _, err := core.NewInterval(lower, upper); err != nil {
		return nil, err
	}
	if !core.IsFinite(minValue) || !core.IsFinite(maxValue) || minValue > maxValue {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBadRange, minValue, maxValue)
	}
	cfg := newConfig(opts...)

	out := make(SampleSet, n)
	for i := range out {
		out[i] = core.Point{
			X: uniform(cfg.rng, lower, upper),
			Y: uniform(cfg.rng, minValue, maxValue),
		}
	}

	return out, nil
}
