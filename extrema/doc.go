// Package extrema finds the minimum and maximum of a real function over a
// closed interval by dense uniform sampling.
//
// The search is a brute-force grid scan, not an optimizer: it evaluates f at
// Lower, Lower+step, Lower+2·step, ... and finally at Upper itself, keeping
// the smallest and largest values seen. With the default step of 1e-4 this
// is accurate to the function's variation over 1e-4, which is what the
// Monte Carlo integrator needs to size its bounding rectangle.
//
// Policy:
//   - NaN values are skipped; ±Inf values participate in the ordering.
//   - If no grid point yields a non-NaN value, Scan fails with ErrNoFiniteValue.
//   - Evaluation errors abort the scan and are wrapped with the offending x.
//   - ctx is polled every 4096 evaluations; a cancelled scan returns ctx.Err().
//
// Complexity: O(W/step) evaluations, O(1) memory, W = Upper-Lower.
package extrema
