// SPDX-License-Identifier: MIT

// Package matrix - graph operators.
//
// Purpose:
//   - Materialize the adjacency, incidence, Laplacian and normalized Laplacian
//     of a *core.Graph as fresh *Dense matrices.
//   - Index i in every operator is the graph position of vertex i (insertion
//     order of core.Graph.Vertices), which is also the index of the density
//     and attractant fields.
//
// Determinism & Policy:
//   - Edges are visited in graph order; with the overwrite policy the result is
//     independent of that order, with WithAccumulate it is a plain sum.
//   - Operators are rebuilt from scratch on every call; nothing is cached, so a
//     graph rebuilt after a topology change never sees stale matrices.
//   - An empty graph yields a legal 0×0 result instead of an error.

package matrix

import (
	"math"

	"github.com/katalvlaran/cellgraph/core"
)

const (
	opAdjacency   = "Adjacency"
	opIncidence   = "Incidence"
	opLaplacian   = "Laplacian"
	opNormLap     = "NormalizedLaplacian"
	opDegreeVec   = "DegreeVector"
	unitEntry     = 1.0
	identityEntry = 1.0
)

// Adjacency returns the symmetric order×order adjacency matrix of g.
//
// Implementation:
//   - Stage 1: reject a nil graph; allocate order×order zeros.
//   - Stage 2: for each edge (i,j) write value into A[i,j] and A[j,i], where value
//     is 1 (or the edge weight under WithWeighted).
//
// Behavior highlights:
//   - Default overwrite policy: parallel edges collapse into a single entry.
//   - WithAccumulate sums parallel edges (edge counts, or summed weights).
//
// Errors:
//   - ErrGraphNil.
//
// Complexity:
//   - Time O(V² + E), Space O(V²).
func Adjacency(g *core.Graph, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opAdjacency, ErrGraphNil)
	}
	o := gatherOptions(opts...)
	n := g.Order()
	a, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjacency, err)
	}

	edges := g.Edges()
	var i, j int
	var value float64
	for k, pair := range g.EdgeIndices() {
		i, j = pair[0], pair[1]
		value = unitEntry
		if o.weighted {
			value = edges[k].Weight()
		}
		if o.accumulate {
			a.data[i*n+j] += value
			if i != j {
				a.data[j*n+i] += value
			}
			continue
		}
		a.data[i*n+j] = value
		a.data[j*n+i] = value
	}

	return a, nil
}

// Incidence returns the unsigned order×size incidence matrix of g:
// column k holds 1 in the rows of both endpoints of edge k.
//
// Behavior highlights:
//   - Parallel edges get distinct columns. Weights are ignored.
//   - A graph with vertices and no edges yields order×0.
//
// Errors:
//   - ErrGraphNil.
//
// Complexity:
//   - Time O(V·E), Space O(V·E).
func Incidence(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opIncidence, ErrGraphNil)
	}
	n, m := g.Order(), g.Size()
	inc, err := newDenseZeroOK(n, m)
	if err != nil {
		return nil, matrixErrorf(opIncidence, err)
	}
	for k, pair := range g.EdgeIndices() {
		inc.data[pair[0]*m+k] = unitEntry
		inc.data[pair[1]*m+k] = unitEntry
	}

	return inc, nil
}

// DegreeVector returns the row sums of Adjacency(g, opts...).
//
// Errors:
//   - ErrGraphNil.
//
// Complexity: O(V²).
func DegreeVector(g *core.Graph, opts ...Option) ([]float64, error) {
	a, err := Adjacency(g, opts...)
	if err != nil {
		return nil, matrixErrorf(opDegreeVec, err)
	}
	deg, err := RowSums(a)
	if err != nil {
		return nil, matrixErrorf(opDegreeVec, err)
	}

	return deg, nil
}

// Laplacian returns L = D − A, where D = diag(row sums of A).
//
// Implementation:
//   - Stage 1: A = Adjacency(g, opts...), degrees from its rows.
//   - Stage 2: L = −A off the diagonal, L[i,i] = deg[i] − A[i,i].
//
// Behavior highlights:
//   - Every row of L sums to zero, so diffusion conserves total mass.
//   - L is symmetric positive semi-definite.
//
// Errors:
//   - ErrGraphNil.
//
// Complexity:
//   - Time O(V² + E), Space O(V²).
func Laplacian(g *core.Graph, opts ...Option) (*Dense, error) {
	a, err := Adjacency(g, opts...)
	if err != nil {
		return nil, matrixErrorf(opLaplacian, err)
	}
	deg, err := RowSums(a)
	if err != nil {
		return nil, matrixErrorf(opLaplacian, err)
	}
	n := a.r
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if a.data[base+j] != 0 { // keep +0 for absent edges
				a.data[base+j] = -a.data[base+j]
			}
		}
		a.data[base+i] += deg[i]
	}

	return a, nil
}

// NormalizedLaplacian returns Lsym = I − D^{-1/2} A D^{-1/2}.
//
// Implementation:
//   - Stage 1: A = Adjacency(g, opts...), degrees from its rows.
//   - Stage 2: S = diag(1/√deg), M = S·A·S via Mul, Lsym = I − M via Sub.
//
// Behavior highlights:
//   - A vertex of degree 0 gets a zero scaling factor, so its row and column of
//     S·A·S vanish and Lsym[i,i] = 1 for it.
//   - The spectrum of Lsym lies in [0, 2].
//
// Errors:
//   - ErrGraphNil.
//
// Complexity:
//   - Time O(V³) worst case (Mul skips zero entries of the left factor), Space O(V²).
func NormalizedLaplacian(g *core.Graph, opts ...Option) (*Dense, error) {
	a, err := Adjacency(g, opts...)
	if err != nil {
		return nil, matrixErrorf(opNormLap, err)
	}
	deg, err := RowSums(a)
	if err != nil {
		return nil, matrixErrorf(opNormLap, err)
	}
	n := a.r
	s, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, matrixErrorf(opNormLap, err)
	}
	for i, d := range deg {
		if d > 0 {
			s.data[i*n+i] = 1.0 / math.Sqrt(d)
		}
	}

	sa, err := Mul(s, a)
	if err != nil {
		return nil, matrixErrorf(opNormLap, err)
	}
	m, err := Mul(sa, s)
	if err != nil {
		return nil, matrixErrorf(opNormLap, err)
	}
	id, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opNormLap, err)
	}
	lsym, err := Sub(id, m)
	if err != nil {
		return nil, matrixErrorf(opNormLap, err)
	}

	return lsym.(*Dense), nil
}
