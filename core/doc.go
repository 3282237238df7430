// Package core provides the vertex, edge and graph primitives of the
// diffusion engine.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices carry a caller-assigned integer id and an optional scalar slot.
//   - Edges are undirected, weighted, and reference endpoints by pointer.
//   - Parallel edges are legal; nothing is deduplicated.
//   - A Graph is validated once in NewGraph and is immutable afterwards.
//   - Vertex order is the caller's order; every field vector (density,
//     attractant) is index-aligned with it.
//
// Why immutable?
//
//	Topology changes in a simulation replace the whole edge set. Building a
//	fresh Graph makes every derived matrix stale by construction, so nothing
//	can read a Laplacian from an outdated edge list.
//
// Operators:
//
//	– Divergence(u, c)
//	    Edge-wise symmetric chemotactic flux, summed per vertex. Conserves
//	    total mass exactly: sum(div) == 0 up to rounding.
//
//	– Components()
//	    Connected components; diffusion conserves mass inside each of them.
//
// Matrix views (adjacency, incidence, Laplacian, normalized Laplacian) live
// in package matrix and consume a *Graph through EdgeIndices.
//
// Errors are sentinel values wrapping one of two kinds, ErrValidation or
// ErrConfiguration; branch with errors.Is.
package core
