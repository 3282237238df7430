// SPDX-License-Identifier: MIT

// RNG utilities for position updates.
//
// Goals:
//   - Determinism: same seed ⇒ identical trajectories across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The EntityGraph only touches its
//     RNG while holding its own mutex.
package cellgraph

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or give no
// RNG option at all.
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

// gaussianStep draws dim independent N(0, 1)·scale deltas.
func gaussianStep(rng *rand.Rand, dim int, scale float64) []float64 {
	d := make([]float64, dim)
	for k := range d {
		d[k] = rng.NormFloat64() * scale
	}

	return d
}
