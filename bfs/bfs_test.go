// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/cellgraph/bfs"
	"github.com/katalvlaran/cellgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graphOf builds a graph on ids 1..n joined by the given id pairs.
func graphOf(t *testing.T, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	vs := make([]*core.Vertex, n)
	for i := range vs {
		vs[i] = core.NewVertex(i + 1)
	}
	es := make([]*core.Edge, 0, len(pairs))
	for _, p := range pairs {
		e, err := core.Connect(vs[p[0]-1], vs[p[1]-1])
		require.NoError(t, err)
		es = append(es, e)
	}
	g, err := core.NewGraph(vs, es)
	require.NoError(t, err)

	return g
}

func TestBFS_Errors(t *testing.T) {
	t.Parallel()

	_, err := bfs.BFS(nil, 1)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := graphOf(t, 1)
	_, err = bfs.BFS(g, 9)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, core.ErrValidation)

	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleDepths(t *testing.T) {
	t.Parallel()

	g := graphOf(t, 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 1})
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4, 3}, res.Order)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 4: 1, 3: 2}, res.Depth)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, path)
}

func TestBFS_DisconnectedHops(t *testing.T) {
	t.Parallel()

	g := graphOf(t, 4, [2]int{1, 2}, [2]int{3, 4})
	res, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, -1, -1}, res.Hops(g))

	_, err = res.PathTo(4)
	require.Error(t, err)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	t.Parallel()

	g := graphOf(t, 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)

	res, err = bfs.BFS(g, 1, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 3 }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Order)
}

func TestBFS_HooksAndCancel(t *testing.T) {
	t.Parallel()

	g := graphOf(t, 3, [2]int{1, 2}, [2]int{2, 3})

	stop := errors.New("stop")
	_, err := bfs.BFS(g, 1, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 1, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
