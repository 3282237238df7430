// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over an immutable Graph.
// Policy:
//   - No algorithms here; see methods.go and components.go.
//   - Every getter returns copies so callers cannot mutate graph state.

package core

import "fmt"

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges, parallel edges counted separately.
// Complexity: O(1).
func (g *Graph) Size() int { return len(g.edges) }

// Vertices returns the vertex list in graph order.
// The slice is a copy; the *Vertex pointers are shared.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns the edge list in graph order.
// The slice is a copy; the *Edge pointers are shared.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexAt returns the vertex at position i, or nil when i is out of range.
func (g *Graph) VertexAt(i int) *Vertex {
	if i < 0 || i >= len(g.vertices) {
		return nil
	}

	return g.vertices[i]
}

// HasVertex reports whether a vertex with the given id belongs to g.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.index[id]

	return ok
}

// IndexOf returns the position of vertex id in graph order.
//
// Errors:
//   - ErrVertexNotFound when id is unknown.
//
// Complexity: O(1).
func (g *Graph) IndexOf(id int) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return -1, fmt.Errorf("IndexOf(%d): %w", id, ErrVertexNotFound)
	}

	return i, nil
}

// EdgeIndices returns, for every edge in order, the graph positions of its
// two endpoints. Matrix builders and the divergence operator read topology
// exclusively through this table.
// Complexity: O(E).
func (g *Graph) EdgeIndices() [][2]int {
	out := make([][2]int, len(g.pairs))
	copy(out, g.pairs)

	return out
}

// String implements fmt.Stringer.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(order=%d, size=%d, vertices=%v, edges=%v)", g.Order(), g.Size(), g.vertices, g.edges)
}
