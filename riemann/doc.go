// Package riemann approximates definite integrals by Riemann sums over a
// uniform partition.
//
// The interval [Lower, Upper] is cut into n sub-intervals of width
// dx = (Upper-Lower)/n. Each sub-interval contributes f(x_i)·dx where the
// sample point x_i is chosen by the Endpoint:
//
//	Left     x_i = Lower + i·dx,        i = 0..n-1
//	Right    x_i = Lower + (i+1)·dx,    i = 0..n-1   (last one is Upper exactly)
//	Midpoint x_i = Lower + (i+½)·dx,    i = 0..n-1
//
// For an increasing f, Left under-estimates and Right over-estimates.
//
// Sum returns the scalar estimate. Partition returns the same rectangles as
// values so a renderer can draw them; Σ Rect.Height·dx equals Sum.
//
// Complexity: O(n) evaluations. Partition allocates O(n); Sum does not.
package riemann
