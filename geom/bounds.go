// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Bounds is a closed range [Min, Max] applied independently to every axis.
type Bounds struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Validate checks that both ends are finite and Min <= Max.
func (b Bounds) Validate() error {
	if math.IsNaN(b.Min) || math.IsNaN(b.Max) || math.IsInf(b.Min, 0) || math.IsInf(b.Max, 0) || b.Min > b.Max {
		return fmt.Errorf("Bounds[%g, %g]: %w", b.Min, b.Max, ErrBounds)
	}

	return nil
}

// Contains reports whether every coordinate of p lies in [Min, Max].
func (b Bounds) Contains(p Point) bool {
	for _, v := range p.Coords() {
		if v < b.Min || v > b.Max {
			return false
		}
	}

	return true
}

// Clamp projects every coordinate of p into [Min, Max].
// The caller is expected to have validated b.
func (b Bounds) Clamp(p Point) Point {
	q := p
	q.x = clamp(p.x, b.Min, b.Max)
	q.y = clamp(p.y, b.Min, b.Max)
	if p.is3D {
		q.z = clamp(p.z, b.Min, b.Max)
	}

	return q
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
