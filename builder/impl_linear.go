// SPDX-License-Identifier: MIT
// Package: cellgraph/builder
//
// impl_linear.go - the "linear" rule (path P_n).
//
// Contract:
//   - Emits (i, i+1) for i = 0..n-2; n <= 1 yields no pairs.
//
// Complexity:
//   - Time O(n), Space O(n).

package builder

import "github.com/katalvlaran/cellgraph/geom"

func linearPairs(n int, _ []geom.Point, _ builderConfig) ([][2]int, error) {
	if n < 2 {
		return nil, nil
	}
	out := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		out = append(out, [2]int{i, i + 1})
	}

	return out, nil
}
