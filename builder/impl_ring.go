// SPDX-License-Identifier: MIT
// Package: cellgraph/builder
//
// impl_ring.go - the "ring" rule (cycle C_n).
//
// Contract:
//   - The linear pairs, closed by (n-1, 0) once n >= 3.
//   - n = 2 stays a single edge so the ring never produces a parallel pair.
//
// Complexity:
//   - Time O(n), Space O(n).

package builder

import "github.com/katalvlaran/cellgraph/geom"

const minRingVertices = 3

func ringPairs(n int, pos []geom.Point, cfg builderConfig) ([][2]int, error) {
	out, err := linearPairs(n, pos, cfg)
	if err != nil || n < minRingVertices {
		return out, err
	}

	return append(out, [2]int{n - 1, 0}), nil
}
