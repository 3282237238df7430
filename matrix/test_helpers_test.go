// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels and graph operators.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for float comparisons in this package.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At/Set path.
type hide struct{ matrix.Matrix }

// NewFilledDense builds an r×c *Dense from row-major vals or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c)
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, vals[i*c+j]))
		}
	}

	return m
}

// RandFilledDense returns an r×c *Dense with uniform values in [-1, 1).
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = 2*rng.Float64() - 1
	}

	return NewFilledDense(t, r, c, vals)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts that m equals want element by element.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "at (%d,%d)", i, j)
		}
	}
}

// CompareClose asserts that a and b have the same shape and agree within tol.
func CompareClose(t *testing.T, a, b matrix.Matrix) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			require.InDelta(t, MustAt(t, a, i, j), MustAt(t, b, i, j), tol,
				"at (%d,%d):\n%v\nvs\n%v", i, j, a, b)
		}
	}
}

// buildGraph creates vertices 0..n-1 and connects the given index pairs.
func buildGraph(t *testing.T, n int, pairs [][2]int, opts ...core.EdgeOption) *core.Graph {
	t.Helper()
	vs := make([]*core.Vertex, n)
	for i := range vs {
		vs[i] = core.NewVertex(i)
	}
	es := make([]*core.Edge, 0, len(pairs))
	for _, p := range pairs {
		e, err := core.Connect(vs[p[0]], vs[p[1]], opts...)
		require.NoError(t, err)
		es = append(es, e)
	}
	g, err := core.NewGraph(vs, es)
	require.NoError(t, err)

	return g
}

// pathPairs returns (i, i+1) for i in [0, n-1).
func pathPairs(n int) [][2]int {
	out := make([][2]int, 0, n)
	for i := 0; i+1 < n; i++ {
		out = append(out, [2]int{i, i + 1})
	}

	return out
}
