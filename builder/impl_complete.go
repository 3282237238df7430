// SPDX-License-Identifier: MIT
// Package: cellgraph/builder
//
// impl_complete.go - the "fully_connected" rule (complete graph K_n).
//
// Contract:
//   - Emits each unordered pair {i,j} exactly once, as (i, j) with i<j.
//   - Deterministic pair order: lexicographic by (i,j).
//
// Complexity:
//   - Time O(n²), Space O(n²); n(n-1)/2 pairs.

package builder

import "github.com/katalvlaran/cellgraph/geom"

func completePairs(n int, _ []geom.Point, _ builderConfig) ([][2]int, error) {
	if n < 2 {
		return nil, nil
	}
	out := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, [2]int{i, j})
		}
	}

	return out, nil
}
