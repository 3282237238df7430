// Package cellgraph places biological entities on the vertices of a graph and
// keeps the graph's edges in step with a connectivity rule as the entities move.
//
// An EntityGraph owns three things that must agree at all times: the ordered
// entity list, the id-keyed position map, and the core.Graph built from them.
// Index i in the vertex list, in every field vector and in every operator
// matrix refers to entity i. Topology is never patched in place: Rebuild
// constructs a fresh core.Graph, so operators computed afterwards always see
// the current edges.
//
// Movement is stochastic. The RNG is injected with WithRand or WithSeed and
// defaults to a fixed seed, so runs are reproducible unless told otherwise.
package cellgraph
