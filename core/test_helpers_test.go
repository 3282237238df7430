// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared across core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/cellgraph/core"
	"github.com/stretchr/testify/require"
)

// Common vertex ids used across core tests.
const (
	ID1 = 1
	ID2 = 2
	ID3 = 3
	ID4 = 4
)

// floatTol bounds rounding noise in conservation checks.
const floatTol = 1e-12

// mustVertices returns one fresh vertex per id, in order.
func mustVertices(ids ...int) []*core.Vertex {
	out := make([]*core.Vertex, len(ids))
	for i, id := range ids {
		out[i] = core.NewVertex(id)
	}

	return out
}

// mustConnect builds an edge or fails the test.
func mustConnect(t *testing.T, a, b *core.Vertex, opts ...core.EdgeOption) *core.Edge {
	t.Helper()
	e, err := core.Connect(a, b, opts...)
	require.NoError(t, err)

	return e
}

// mustPath builds a path graph over n vertices with ids 1..n.
func mustPath(t *testing.T, n int) *core.Graph {
	t.Helper()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	vs := mustVertices(ids...)
	var es []*core.Edge
	for i := 1; i < n; i++ {
		es = append(es, mustConnect(t, vs[i-1], vs[i]))
	}
	g, err := core.NewGraph(vs, es)
	require.NoError(t, err)

	return g
}

// mustTriangle builds K_3 over ids 1,2,3.
func mustTriangle(t *testing.T) *core.Graph {
	t.Helper()
	vs := mustVertices(ID1, ID2, ID3)
	es := []*core.Edge{
		mustConnect(t, vs[0], vs[1]),
		mustConnect(t, vs[1], vs[2]),
		mustConnect(t, vs[0], vs[2]),
	}
	g, err := core.NewGraph(vs, es)
	require.NoError(t, err)

	return g
}

// sum adds up x.
func sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}

	return s
}
