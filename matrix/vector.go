// SPDX-License-Identifier: MIT

package matrix

import "math"

// Sum returns Σ x[i]. An empty or nil vector sums to 0.
// Used to track total mass of a density field.
func Sum(x []float64) float64 {
	s := ZeroSum
	for _, v := range x {
		s += v
	}

	return s
}

// Norm2 returns the Euclidean norm ||x||₂.
// Accumulates with math.Hypot to avoid intermediate overflow.
func Norm2(x []float64) float64 {
	n := ZeroSum
	for _, v := range x {
		n = math.Hypot(n, v)
	}

	return n
}

// Axpy returns y + alpha·x as a new slice.
//
// Errors:
//   - ErrDimensionMismatch when len(x) != len(y).
func Axpy(alpha float64, x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, matrixErrorf("Axpy", ErrDimensionMismatch)
	}
	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] + alpha*x[i]
	}

	return out, nil
}
