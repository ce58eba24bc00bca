package extrema

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netarea/core"
)

// ErrNoFiniteValue indicates every sampled value was NaN.
var ErrNoFiniteValue = errors.New("extrema: no comparable value on the interval")

// Range is the result of a scan. ArgMin/ArgMax are the first grid points at
// which Min/Max were attained.
type Range struct {
	Min, Max       float64
	ArgMin, ArgMax float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Scan samples f over iv and returns the observed extrema.
//
// Stages:
//  1. Validate f and iv (core sentinels).
//  2. Walk the grid Lower + i·step while it stays ≤ Upper.
//  3. Evaluate Upper itself if the grid stopped short of it.
func Scan(ctx context.Context, f core.Integrand, iv core.Interval, opts ...Option) (Range, error) {
	if err := core.ValidateIntegrand(f); err != nil {
		return Range{}, err
	}
	if err := iv.Validate(); err != nil {
		return Range{}, err
	}
	cfg := newConfig(opts...)

	s := scanner{
		r:     Range{Min: math.Inf(1), Max: math.Inf(-1)},
		f:     f,
		first: true,
	}

	steps := int(math.Floor(iv.Width() / cfg.step))
	last := iv.Lower
	for i := 0; i <= steps; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Range{}, fmt.Errorf("extrema: %w", err)
			}
		}
		x := iv.Lower + float64(i)*cfg.step
		if x > iv.Upper {
			break
		}
		if err := s.visit(x); err != nil {
			return Range{}, err
		}
		last = x
	}
	if last < iv.Upper {
		if err := s.visit(iv.Upper); err != nil {
			return Range{}, err
		}
	}

	if s.first {
		return Range{}, ErrNoFiniteValue
	}

	return s.r, nil
}

type scanner struct {
	r     Range
	f     core.Integrand
	first bool // no comparable value seen yet
}

func (s *scanner) visit(x float64) error {
	v, err := s.f.Evaluate(x)
	if err != nil {
		return fmt.Errorf("extrema: f(%g): %w", x, err)
	}
	if math.IsNaN(v) {
		return nil
	}
	if s.first || v < s.r.Min {
		s.r.Min, s.r.ArgMin = v, x
	}
	if s.first || v > s.r.Max {
		s.r.Max, s.r.ArgMax = v, x
	}
	s.first = false

	return nil
}
