// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cellgraph/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    BFSOptions
	ctx     context.Context
	adj     map[int][]int
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// Edge weights are ignored: depth counts edges.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
//
// Complexity: O(V·E) to gather neighbor lists, then O(V+E) for the walk.
func BFS(g *core.Graph, startID int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("BFS(%d): %w", startID, ErrStartVertexNotFound)
	}

	n := g.Order()
	adj := make(map[int][]int, n)
	for _, v := range g.Vertices() {
		nbrs, err := g.Neighbors(v.ID())
		if err != nil {
			return nil, err
		}
		adj[v.ID()] = nbrs
	}

	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		adj:     adj,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(startID, 0, startID)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and records its parent.
// The start vertex passes itself as parent and gets none.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != id {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[item.id] {
			if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}
