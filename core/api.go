// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Interval constructors and read-only helpers.
// Policy:
//   - No algorithms here; every function is O(1).
//   - Validation returns sentinels from types.go, never panics.

package core

// NewInterval builds an Interval and validates it.
//
// Errors:
//   - ErrNonFiniteBound if either bound is ±Inf.
//   - ErrInvertedBounds if lower >= upper or either bound is NaN.
//
// Complexity: O(1).
func NewInterval(lower, upper float64) (Interval, error) {
	iv := Interval{Lower: lower, Upper: upper}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}

	return iv, nil
}

// Validate checks the interval invariants in a fixed order:
// order first (so NaN reports as inverted), then finiteness.
//
// Complexity: O(1).
func (iv Interval) Validate() error {
	// NaN compares false with everything, so !(a < b) also catches NaN.
	if !(iv.Lower < iv.Upper) {
		return ErrInvertedBounds
	}
	if !IsFinite(iv.Lower) || !IsFinite(iv.Upper) {
		return ErrNonFiniteBound
	}

	return nil
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// Contains reports whether x lies in the closed interval.
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Lower && x <= iv.Upper
}

// ValidateIntegrand rejects a nil Integrand, including a typed nil Func.
//
// Complexity: O(1).
func ValidateIntegrand(f Integrand) error {
	if f == nil {
		return ErrNilIntegrand
	}
	if fn, ok := f.(Func); ok && fn == nil {
		return ErrNilIntegrand
	}

	return nil
}
