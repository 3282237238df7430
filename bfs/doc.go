// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// On a cell graph the hop distance from a source cell bounds how fast a
// density pulse can arrive: after k diffusion steps a field started at the
// source is nonzero only within k hops.
//
// Determinism
//
//	core.Graph.Neighbors lists neighbors in edge order, and BFS enqueues them
//	in that order, so the visit sequence is reproducible.
//
// Usage
//
//	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(3))
//	hops := res.Hops(g) // -1 where unreachable
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ctx.Err() and wrapped OnVisit errors.
package bfs
