// SPDX-License-Identifier: MIT
// Package: cellgraph/builder
//
// impl_proximity.go - the "proximity" rule (unit-disk graph).
//
// Contract:
//   - Requires WithRadius; emits (i, j), i<j, whenever dist(i, j) <= radius.
//   - Pair order is lexicographic, as for fully_connected.
//   - Mixed 2D/3D positions fail with geom.ErrDimension.
//
// Complexity:
//   - Time O(n²) distance evaluations, Space O(E).

package builder

import "github.com/katalvlaran/cellgraph/geom"

const methodProximity = "proximity"

func proximityPairs(n int, pos []geom.Point, cfg builderConfig) ([][2]int, error) {
	if cfg.radius <= 0 {
		return nil, builderErrorf(methodProximity, "radius not set", ErrOptionViolation)
	}
	var out [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := pos[i].Dist(pos[j])
			if err != nil {
				return nil, builderErrorf(methodProximity, "Dist(%d,%d)", err, i, j)
			}
			if d <= cfg.radius {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out, nil
}
