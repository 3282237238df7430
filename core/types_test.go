// SPDX-License-Identifier: MIT
// Package core_test verifies Vertex, Edge and Graph construction contracts.
//
// Purpose:
//   - Lock in the validation sentinels and their error kinds.
//   - Demonstrate that Graph copies its inputs and never deduplicates edges.

package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/cellgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertex_ValueSlot(t *testing.T) {
	t.Parallel()

	v := core.NewVertex(ID1)
	assert.Equal(t, ID1, v.ID())
	_, ok := v.Value()
	assert.False(t, ok, "fresh vertex has no value")

	v.SetValue(0.5)
	x, ok := v.Value()
	assert.True(t, ok)
	assert.Equal(t, 0.5, x)

	v.ClearValue()
	_, ok = v.Value()
	assert.False(t, ok)

	w := core.NewVertex(ID2, core.WithValue(2))
	x, ok = w.Value()
	assert.True(t, ok)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, "Vertex(id=2, value=2)", w.String())
}

func TestNewEdge_Validation(t *testing.T) {
	t.Parallel()

	a, b, c := core.NewVertex(ID1), core.NewVertex(ID2), core.NewVertex(ID3)

	tests := []struct {
		name      string
		endpoints []*core.Vertex
		opts      []core.EdgeOption
		want      error
	}{
		{name: "none", endpoints: nil, want: core.ErrEndpointCount},
		{name: "one", endpoints: []*core.Vertex{a}, want: core.ErrEndpointCount},
		{name: "three", endpoints: []*core.Vertex{a, b, c}, want: core.ErrEndpointCount},
		{name: "nil endpoint", endpoints: []*core.Vertex{a, nil}, want: core.ErrNilVertex},
		{name: "same object", endpoints: []*core.Vertex{a, a}, want: core.ErrSameEndpoint},
		{name: "nan weight", endpoints: []*core.Vertex{a, b}, opts: []core.EdgeOption{core.WithWeight(math.NaN())}, want: core.ErrBadWeight},
		{name: "inf weight", endpoints: []*core.Vertex{a, b}, opts: []core.EdgeOption{core.WithWeight(math.Inf(1))}, want: core.ErrBadWeight},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e, err := core.NewEdge(tc.endpoints, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, core.ErrValidation, "every edge failure is a validation error")
			assert.Nil(t, e)
		})
	}
}

func TestNewEdge_Defaults(t *testing.T) {
	t.Parallel()

	a, b := core.NewVertex(ID1), core.NewVertex(ID2)
	e, err := core.Connect(a, b)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultEdgeWeight, e.Weight())
	_, ok := e.ID()
	assert.False(t, ok)
	assert.True(t, e.Joins(ID2, ID1), "edges are undirected")

	e, err = core.Connect(a, b, core.WithEdgeID(7), core.WithWeight(0.25))
	require.NoError(t, err)
	id, ok := e.ID()
	assert.True(t, ok)
	assert.Equal(t, 7, id)
	assert.Equal(t, 0.25, e.Weight())
	x, y := e.Endpoints()
	assert.Same(t, a, x)
	assert.Same(t, b, y)
}

func TestNewGraph_Validation(t *testing.T) {
	t.Parallel()

	vs := mustVertices(ID1, ID2, ID3)
	outsider := core.NewVertex(ID4)
	twin := core.NewVertex(ID1) // same id, different object

	good := mustConnect(t, vs[0], vs[1])
	foreign := mustConnect(t, vs[0], outsider)
	lookalike := mustConnect(t, twin, vs[2])

	tests := []struct {
		name  string
		verts []*core.Vertex
		edges []*core.Edge
		want  error
	}{
		{name: "nil vertex", verts: []*core.Vertex{vs[0], nil}, want: core.ErrNilVertex},
		{name: "duplicate id", verts: []*core.Vertex{vs[0], twin}, want: core.ErrDuplicateVertex},
		{name: "nil edge", verts: vs, edges: []*core.Edge{good, nil}, want: core.ErrNilEdge},
		{name: "foreign endpoint", verts: vs, edges: []*core.Edge{foreign}, want: core.ErrForeignVertex},
		{name: "look-alike endpoint", verts: vs, edges: []*core.Edge{lookalike}, want: core.ErrForeignVertex},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := core.NewGraph(tc.verts, tc.edges)
			require.ErrorIs(t, err, tc.want)
			require.True(t, errors.Is(err, core.ErrValidation))
			assert.Nil(t, g)
		})
	}
}

func TestNewGraph_EmptyAndCopies(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraph(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.Empty(t, g.Components())

	vs := mustVertices(ID1, ID2)
	es := []*core.Edge{mustConnect(t, vs[0], vs[1])}
	g, err = core.NewGraph(vs, es)
	require.NoError(t, err)

	vs[0] = core.NewVertex(99)
	es[0] = nil
	assert.Equal(t, ID1, g.VertexAt(0).ID(), "graph must not alias the caller's slice")
	assert.NotNil(t, g.Edges()[0])
	assert.Nil(t, g.VertexAt(5))
}

func TestNewGraph_ParallelEdgesKept(t *testing.T) {
	t.Parallel()

	vs := mustVertices(ID1, ID2)
	g, err := core.NewGraph(vs, []*core.Edge{
		mustConnect(t, vs[0], vs[1]),
		mustConnect(t, vs[1], vs[0]),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
	assert.Equal(t, [][2]int{{0, 1}, {1, 0}}, g.EdgeIndices())

	deg, err := g.Degree(ID1)
	require.NoError(t, err)
	assert.Equal(t, 2, deg, "parallel edges count once each")

	nbrs, err := g.Neighbors(ID1)
	require.NoError(t, err)
	assert.Equal(t, []int{ID2}, nbrs, "neighbours are deduplicated")
}

func TestGraph_IndexOf(t *testing.T) {
	t.Parallel()

	g := mustTriangle(t)
	i, err := g.IndexOf(ID3)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.True(t, g.HasVertex(ID2))
	assert.False(t, g.HasVertex(ID4))

	_, err = g.IndexOf(ID4)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(ID4)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors(ID4)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
