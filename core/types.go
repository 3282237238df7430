// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types used by the
// diffusion engine, together with the validation rules every builder relies on.
//
// A Graph owns an ordered vertex list fixed for its lifetime and an ordered
// edge list. Edges are undirected and reference their endpoints by pointer;
// they never own them. Graphs are immutable once built: a topology change
// produces a new Graph rather than patching the old one.
//
// Errors:
//
//	ErrValidation      - umbrella kind for malformed vertices, edges and fields.
//	ErrConfiguration   - umbrella kind for unknown rules and invalid run settings.
//	ErrNilVertex       - vertex pointer is nil.
//	ErrEndpointCount   - edge built from other than exactly two endpoints.
//	ErrSameEndpoint    - both endpoints are the same vertex object.
//	ErrBadWeight       - edge weight is NaN or ±Inf.
//	ErrNilEdge         - edge pointer is nil.
//	ErrDuplicateVertex - two vertices share one id inside a graph.
//	ErrForeignVertex   - edge endpoint is not a member of the graph's vertices.
//	ErrVertexNotFound  - requested vertex id does not exist.
//	ErrFieldLength     - field vector length differs from the graph order.
//	ErrNonFinite       - field vector holds NaN or ±Inf.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds. Every specific sentinel below wraps exactly one of them, so
// callers may branch either on the kind or on the precise condition.
var (
	// ErrValidation marks malformed input detected at construction or call time.
	ErrValidation = errors.New("core: validation error")

	// ErrConfiguration marks an unrecognised or inconsistent configuration.
	ErrConfiguration = errors.New("core: configuration error")
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates that a nil *Vertex was supplied.
	ErrNilVertex = fmt.Errorf("%w: nil vertex", ErrValidation)

	// ErrEndpointCount indicates an edge built from other than two endpoints.
	ErrEndpointCount = fmt.Errorf("%w: edge needs exactly two endpoints", ErrValidation)

	// ErrSameEndpoint indicates both endpoints are the same vertex object.
	ErrSameEndpoint = fmt.Errorf("%w: edge endpoints must be distinct vertices", ErrValidation)

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = fmt.Errorf("%w: edge weight must be finite", ErrValidation)

	// ErrNilEdge indicates that a nil *Edge was supplied to NewGraph.
	ErrNilEdge = fmt.Errorf("%w: nil edge", ErrValidation)

	// ErrDuplicateVertex indicates two vertices with the same id in one graph.
	ErrDuplicateVertex = fmt.Errorf("%w: duplicate vertex id", ErrValidation)

	// ErrForeignVertex indicates an edge endpoint that is not part of the graph.
	ErrForeignVertex = fmt.Errorf("%w: edge references a vertex outside the graph", ErrValidation)

	// ErrVertexNotFound indicates a lookup of an id the graph does not hold.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found", ErrValidation)

	// ErrFieldLength indicates a field vector whose length differs from Order().
	ErrFieldLength = fmt.Errorf("%w: field length does not match graph order", ErrValidation)

	// ErrNonFinite indicates a NaN or infinite entry in a field vector.
	ErrNonFinite = fmt.Errorf("%w: field holds NaN or Inf", ErrValidation)
)

// DefaultEdgeWeight is the weight assigned when no WithWeight option is given.
const DefaultEdgeWeight = 1.0

// Vertex is an identified scalar carrier.
//
// The id is assigned by the caller (typically the owning entity's global
// identifier) and never changes. The optional value slot is independent of
// any density field a simulation keeps alongside the graph.
type Vertex struct {
	id       int
	value    float64
	hasValue bool
}

// VertexOption configures a Vertex at creation time.
type VertexOption func(v *Vertex)

// WithValue fills the vertex's optional scalar slot.
func WithValue(x float64) VertexOption {
	return func(v *Vertex) {
		v.value = x
		v.hasValue = true
	}
}

// NewVertex returns a vertex carrying id.
// Complexity: O(len(opts)).
func NewVertex(id int, opts ...VertexOption) *Vertex {
	v := &Vertex{id: id}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// ID returns the immutable vertex identifier.
func (v *Vertex) ID() int { return v.id }

// Value returns the scalar slot and whether it has been set.
func (v *Vertex) Value() (float64, bool) { return v.value, v.hasValue }

// SetValue stores x in the scalar slot.
func (v *Vertex) SetValue(x float64) {
	v.value = x
	v.hasValue = true
}

// ClearValue empties the scalar slot.
func (v *Vertex) ClearValue() {
	v.value = 0
	v.hasValue = false
}

// String implements fmt.Stringer.
func (v *Vertex) String() string {
	if !v.hasValue {
		return fmt.Sprintf("Vertex(id=%d)", v.id)
	}

	return fmt.Sprintf("Vertex(id=%d, value=%g)", v.id, v.value)
}

// Edge is an undirected connection between two vertices with a scalar weight.
//
// The edge does not own its endpoints: both pointers must reference vertices
// held by the Graph the edge is added to. (a,b) and (b,a) describe the same
// connection, yet two Edge values over one pair are two parallel edges.
type Edge struct {
	id     int
	hasID  bool
	a, b   *Vertex
	weight float64
}

// EdgeOption configures properties of an individual edge.
type EdgeOption func(e *Edge)

// WithEdgeID attaches an optional identifier to the edge.
func WithEdgeID(id int) EdgeOption {
	return func(e *Edge) {
		e.id = id
		e.hasID = true
	}
}

// WithWeight overrides DefaultEdgeWeight.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.weight = w }
}

// NewEdge connects the two vertices in endpoints.
//
// Implementation:
//   - Stage 1: Check the endpoint count and reject nil or identical endpoints.
//   - Stage 2: Apply options and reject non-finite weights.
//
// Errors:
//   - ErrEndpointCount, ErrNilVertex, ErrSameEndpoint, ErrBadWeight
//     (all matching ErrValidation).
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func NewEdge(endpoints []*Vertex, opts ...EdgeOption) (*Edge, error) {
	if len(endpoints) != 2 {
		return nil, fmt.Errorf("NewEdge: got %d endpoints: %w", len(endpoints), ErrEndpointCount)
	}
	a, b := endpoints[0], endpoints[1]
	if a == nil || b == nil {
		return nil, fmt.Errorf("NewEdge: %w", ErrNilVertex)
	}
	if a == b {
		return nil, fmt.Errorf("NewEdge: vertex %d: %w", a.id, ErrSameEndpoint)
	}

	e := &Edge{a: a, b: b, weight: DefaultEdgeWeight}
	for _, opt := range opts {
		opt(e)
	}
	if math.IsNaN(e.weight) || math.IsInf(e.weight, 0) {
		return nil, fmt.Errorf("NewEdge(%d,%d): %w", a.id, b.id, ErrBadWeight)
	}

	return e, nil
}

// Connect is shorthand for NewEdge([]*Vertex{a, b}, opts...).
func Connect(a, b *Vertex, opts ...EdgeOption) (*Edge, error) {
	return NewEdge([]*Vertex{a, b}, opts...)
}

// ID returns the optional edge identifier and whether it was set.
func (e *Edge) ID() (int, bool) { return e.id, e.hasID }

// Endpoints returns both endpoints in construction order.
func (e *Edge) Endpoints() (a, b *Vertex) { return e.a, e.b }

// Weight returns the edge weight.
func (e *Edge) Weight() float64 { return e.weight }

// Joins reports whether the edge connects the vertices with ids x and y, in
// either order.
func (e *Edge) Joins(x, y int) bool {
	return (e.a.id == x && e.b.id == y) || (e.a.id == y && e.b.id == x)
}

// String implements fmt.Stringer.
func (e *Edge) String() string {
	if e.hasID {
		return fmt.Sprintf("Edge(id=%d, %d-%d, w=%g)", e.id, e.a.id, e.b.id, e.weight)
	}

	return fmt.Sprintf("Edge(%d-%d, w=%g)", e.a.id, e.b.id, e.weight)
}

// Graph owns a fixed, ordered vertex list and an ordered edge list.
//
// index maps a vertex id to its position in vertices; pairs caches the
// endpoint indices of every edge in edge order. Both are derived once in
// NewGraph and never change, so a *Graph is safe for concurrent reads.
type Graph struct {
	vertices []*Vertex
	edges    []*Edge
	index    map[int]int
	pairs    [][2]int
}

// NewGraph validates vertices and edges and assembles a Graph.
//
// Implementation:
//   - Stage 1: Index vertices by id, rejecting nil entries and duplicate ids.
//   - Stage 2: Check every edge endpoint is a member of vertices (pointer
//     identity, so a look-alike vertex with the same id is still foreign).
//   - Stage 3: Cache endpoint index pairs in edge order.
//
// Behavior highlights:
//   - The input slices are copied; later caller mutations do not leak in.
//   - Empty inputs are legal and produce a zero-order graph.
//
// Errors:
//   - ErrNilVertex, ErrDuplicateVertex, ErrNilEdge, ErrForeignVertex.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func NewGraph(vertices []*Vertex, edges []*Edge) (*Graph, error) {
	g := &Graph{
		vertices: make([]*Vertex, len(vertices)),
		edges:    make([]*Edge, len(edges)),
		index:    make(map[int]int, len(vertices)),
		pairs:    make([][2]int, len(edges)),
	}
	copy(g.vertices, vertices)
	copy(g.edges, edges)

	for i, v := range g.vertices {
		if v == nil {
			return nil, fmt.Errorf("NewGraph: vertex #%d: %w", i, ErrNilVertex)
		}
		if _, dup := g.index[v.id]; dup {
			return nil, fmt.Errorf("NewGraph: id %d: %w", v.id, ErrDuplicateVertex)
		}
		g.index[v.id] = i
	}

	var (
		i, j   int
		ok     bool
		member bool
	)
	for k, e := range g.edges {
		if e == nil {
			return nil, fmt.Errorf("NewGraph: edge #%d: %w", k, ErrNilEdge)
		}
		if i, ok = g.index[e.a.id]; ok {
			member = g.vertices[i] == e.a
		}
		if !ok || !member {
			return nil, fmt.Errorf("NewGraph: edge #%d endpoint %d: %w", k, e.a.id, ErrForeignVertex)
		}
		if j, ok = g.index[e.b.id]; ok {
			member = g.vertices[j] == e.b
		}
		if !ok || !member {
			return nil, fmt.Errorf("NewGraph: edge #%d endpoint %d: %w", k, e.b.id, ErrForeignVertex)
		}
		g.pairs[k] = [2]int{i, j}
	}

	return g, nil
}
