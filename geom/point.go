// SPDX-License-Identifier: MIT

// Package geom provides the small amount of Euclidean geometry the entity
// graph needs: 2D and 3D points, distances, and axis-aligned clamping.
package geom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cellgraph/core"
)

// Sentinel errors. Both match core.ErrValidation.
var (
	// ErrDimension reports a coordinate count other than 2 or 3, or an
	// operation mixing 2D and 3D points.
	ErrDimension = fmt.Errorf("%w: geom: point must have 2 or 3 matching coordinates", core.ErrValidation)

	// ErrBounds reports a non-finite or inverted [Min, Max] range.
	ErrBounds = fmt.Errorf("%w: geom: bounds must be finite with min <= max", core.ErrValidation)
)

// Point is an immutable 2D or 3D location. The zero value is the 2D origin.
type Point struct {
	x, y, z float64
	is3D    bool
}

// Pt2 returns the 2D point (x, y).
func Pt2(x, y float64) Point { return Point{x: x, y: y} }

// Pt3 returns the 3D point (x, y, z).
func Pt3(x, y, z float64) Point { return Point{x: x, y: y, z: z, is3D: true} }

// FromCoords builds a point from 2 or 3 finite coordinates.
func FromCoords(c []float64) (Point, error) {
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Point{}, fmt.Errorf("FromCoords(%v): %w", c, core.ErrNonFinite)
		}
	}
	switch len(c) {
	case 2:
		return Pt2(c[0], c[1]), nil
	case 3:
		return Pt3(c[0], c[1], c[2]), nil
	default:
		return Point{}, fmt.Errorf("FromCoords: got %d coordinates: %w", len(c), ErrDimension)
	}
}

// Dim returns 2 or 3.
func (p Point) Dim() int {
	if p.is3D {
		return 3
	}

	return 2
}

// X returns the first coordinate.
func (p Point) X() float64 { return p.x }

// Y returns the second coordinate.
func (p Point) Y() float64 { return p.y }

// Z returns the third coordinate, 0 for 2D points.
func (p Point) Z() float64 { return p.z }

// Coords returns the coordinates as a fresh slice of length Dim().
func (p Point) Coords() []float64 {
	if p.is3D {
		return []float64{p.x, p.y, p.z}
	}

	return []float64{p.x, p.y}
}

// Dist returns the Euclidean distance between p and q.
// Both points must have the same dimension.
func (p Point) Dist(q Point) (float64, error) {
	if p.is3D != q.is3D {
		return 0, fmt.Errorf("Dist(%v, %v): %w", p, q, ErrDimension)
	}
	dx, dy, dz := p.x-q.x, p.y-q.y, p.z-q.z

	return math.Sqrt(dx*dx + dy*dy + dz*dz), nil
}

// Offset returns p shifted by d, where len(d) must equal p.Dim().
func (p Point) Offset(d []float64) (Point, error) {
	if len(d) != p.Dim() {
		return p, fmt.Errorf("Offset: got %d deltas for %dD point: %w", len(d), p.Dim(), ErrDimension)
	}
	q := p
	q.x += d[0]
	q.y += d[1]
	if p.is3D {
		q.z += d[2]
	}

	return q, nil
}

// Equal reports coordinate-wise equality of points with the same dimension.
func (p Point) Equal(q Point) bool { return p == q }

// String implements fmt.Stringer.
func (p Point) String() string {
	if p.is3D {
		return fmt.Sprintf("Point(x=%g, y=%g, z=%g)", p.x, p.y, p.z)
	}

	return fmt.Sprintf("Point(x=%g, y=%g)", p.x, p.y)
}
