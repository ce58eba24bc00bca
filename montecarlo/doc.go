// Package montecarlo estimates net signed area by random sampling.
//
// 🚀 What does it do?
//
//	A bounding rectangle is laid over the graph of f on [Lower, Upper]:
//
//	    x ∈ [Lower, Upper],  y ∈ [min(minF, 0), max(maxF, 0)]
//
//	so it always contains the x-axis. Uniform points are dropped into it.
//	A point (x, y) is a positive hit when f(x) > 0 and 0 ≤ y ≤ f(x), a
//	negative hit when f(x) < 0 and f(x) ≤ y ≤ 0. With n points the estimate is
//
//	    area ≈ (pos - neg) / n · rectArea
//
//	Points where f(x) == 0 never count.
//
// ✨ Pieces:
//
//   - Generate draws an ordered SampleSet from a deterministic RNG
//     (seed 0 maps to a fixed default seed, so runs are reproducible).
//   - Bounds builds the rectangle from an extrema.Range.
//   - Classify / Tally label points for rendering and counting.
//   - Area (and Survey, which also returns the geometry) recomputes the
//     extrema with extrema.Scan and produces the estimate.
//
// Typical flow:
//
//	r, _ := extrema.Scan(ctx, f, iv)
//	b := montecarlo.Bounds(iv, r)
//	s, _ := montecarlo.Generate(b.X0, b.X1, b.Y0, b.Y1, 100000, montecarlo.WithSeed(7))
//	area, _ := montecarlo.Area(ctx, f, iv, s)
//
// Complexity: Generate O(n); Area O(W/step + n) evaluations.
package montecarlo
