// SPDX-License-Identifier: MIT

package simulate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/matrix"
)

// StationaryState returns the diffusive equilibrium for a Laplacian lap:
// the eigenvector of the eigenvalue closest to zero, scaled so its entries
// sum to mass.
//
// For a connected graph under D − A the result is uniform, mass/n per
// vertex. A disconnected graph has a null space of dimension > 1 and the
// chosen vector depends on the rotation order; prefer one component at a
// time there (core.Graph.Components).
//
// A vector whose entries sum to less than the tolerance in magnitude counts
// as zero-sum. The tolerance is matrix.DefaultEpsilon unless opts carry
// matrix.WithEpsilon.
//
// Errors:
//   - matrix errors from Eigen (asymmetric input, no convergence).
//   - ErrNoStationary when the chosen vector sums to zero.
func StationaryState(lap matrix.Matrix, mass float64, opts ...matrix.Option) ([]float64, error) {
	eigs, q, err := matrix.Eigen(lap, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	if err != nil {
		return nil, fmt.Errorf("StationaryState: %w", err)
	}
	n := len(eigs)
	if n == 0 {
		return []float64{}, nil
	}

	best := 0
	for i := 1; i < n; i++ {
		if math.Abs(eigs[i]) < math.Abs(eigs[best]) {
			best = i
		}
	}

	v := make([]float64, n)
	for i := 0; i < n; i++ {
		if v[i], err = q.At(i, best); err != nil {
			return nil, fmt.Errorf("StationaryState: %w", err)
		}
	}
	s := matrix.Sum(v)
	if math.Abs(s) < matrix.NewMatrixOptions(opts...).Epsilon() {
		return nil, fmt.Errorf("StationaryState: %w", ErrNoStationary)
	}
	scale := mass / s
	for i := range v {
		v[i] *= scale
	}

	return v, nil
}

// Equilibrium returns the field that uniform D − A diffusion from u0 tends
// to: every vertex holds the mean of u0 over its connected component. Unlike
// StationaryState it is well defined on disconnected graphs.
//
// Errors:
//   - core.ErrFieldLength, core.ErrNonFinite for a malformed u0.
//
// Complexity: O(V+E).
func Equilibrium(g *core.Graph, u0 []float64) ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("Equilibrium: %w", matrix.ErrGraphNil)
	}
	mass, err := g.ComponentMass(u0)
	if err != nil {
		return nil, fmt.Errorf("Equilibrium: %w", err)
	}
	out := make([]float64, len(u0))
	for k, comp := range g.Components() {
		mean := mass[k] / float64(len(comp))
		for _, i := range comp {
			out[i] = mean
		}
	}

	return out, nil
}
