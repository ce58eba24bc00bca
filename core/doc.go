// Package core defines the small set of primitives shared by every
// integration package in netarea: the Integrand abstraction, the closed
// Interval [Lower, Upper], and the Point used for sampled coordinates.
//
// extrema, riemann and montecarlo all take an Integrand over an Interval;
// none of them imports the expression parser.
//
// Integrands:
//
//	type Integrand interface {
//		Evaluate(x float64) (float64, error)
//	}
//
//	– Func adapts a plain func(float64) float64 (never fails).
//	– *expr.Expression implements Integrand directly.
//
// NaN and ±Inf are valid results of Evaluate; only structurally
// unevaluable expressions return an error. Callers that need finite values
// must check them explicitly (see IsFinite).
//
// Errors:
//
//	ErrInvertedBounds  - Lower >= Upper (or NaN bound).
//	ErrNonFiniteBound  - a bound is ±Inf.
//	ErrNilIntegrand    - a nil Integrand was supplied.
package core
