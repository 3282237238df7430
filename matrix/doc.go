// Package matrix provides a small dense linear-algebra kernel and the graph
// operators that drive diffusion on a core.Graph.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional NaN/Inf guard.
//   - Kernels: Sub, Mul, MatVec, RowSums, and a Jacobi Eigen for symmetric
//     matrices. Vector helpers Sum, Norm2 and Axpy serve the Euler update.
//   - Graph operators: Adjacency, Incidence, Laplacian (L = D − A),
//     NormalizedLaplacian (I − D^-1/2 A D^-1/2) and DegreeVector.
//
// Row i of every graph operator corresponds to vertex i of the graph in
// insertion order, which is also the index of the density and attractant
// fields used by the simulation driver. Operators are recomputed on every call
// and an empty graph produces a 0×0 matrix rather than an error.
//
// Parallel edges overwrite each other in adjacency by default; pass
// WithAccumulate to count them. WithWeighted exports edge weights.
//
// Matrices are best for the small graphs this library targets, where O(V²)
// memory and O(V² + E) build time (O(V³) worst case for the normalized
// Laplacian) are acceptable.
package matrix
