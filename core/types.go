package core

import (
	"errors"
	"math"
)

// Sentinel errors for core primitives.
var (
	// ErrInvertedBounds indicates Lower is not strictly less than Upper.
	ErrInvertedBounds = errors.New("core: lower bound must be strictly less than upper bound")

	// ErrNonFiniteBound indicates that one of the bounds is ±Inf.
	ErrNonFiniteBound = errors.New("core: interval bound is not finite")

	// ErrNilIntegrand indicates a nil Integrand was passed to an algorithm.
	ErrNilIntegrand = errors.New("core: integrand is nil")
)

// Integrand is a single-variable real function.
//
// Evaluate must behave as a pure function of x: two calls with the same x
// return the same value, with no memory of prior calls.
type Integrand interface {
	Evaluate(x float64) (float64, error)
}

// Func adapts an ordinary Go function to the Integrand interface.
type Func func(x float64) float64

// Evaluate calls f(x). It never fails.
func (f Func) Evaluate(x float64) (float64, error) {
	return f(x), nil
}

// Interval is the closed domain [Lower, Upper].
type Interval struct {
	// Lower is the left end of the domain.
	Lower float64

	// Upper is the right end of the domain.
	Upper float64
}

// Point is a sampled coordinate (X, Y).
type Point struct {
	X float64
	Y float64
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
