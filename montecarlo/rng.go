// Package montecarlo - RNG utilities for sample generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical SampleSet on every platform.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A *rand.Rand handed in through
//     WithRand must not be shared with other goroutines during Generate.
package montecarlo

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or no
// seed at all.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// uniform maps one draw U ∈ [0,1) onto [lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
