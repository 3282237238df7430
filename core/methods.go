// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Field operators and local topology queries on Graph.
// Determinism:
//   - Every loop walks edges or vertices in graph order, so results are
//     bit-identical for identical inputs.

package core

import (
	"fmt"
	"math"
)

// Divergence computes the Keller-Segel chemotactic flux balance of density u
// driven by attractant c.
//
// For each edge (i,j) in edge order:
//
//	flux   = 0.5*(u[i]+u[j])*(c[j]-c[i])
//	div[i] += flux
//	div[j] -= flux
//
// Behavior highlights:
//   - Central (symmetric) discretisation of u·∇c projected on each edge.
//   - Each edge adds +flux and -flux, so sum(div) == 0 up to rounding.
//   - Edge weight is NOT applied; flux depends on topology only.
//   - Parallel edges contribute once each.
//
// Errors:
//   - ErrFieldLength if len(u) or len(c) differs from Order().
//   - ErrNonFinite if u or c holds NaN or ±Inf.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) Divergence(u, c []float64) ([]float64, error) {
	if err := g.ValidateField(u); err != nil {
		return nil, fmt.Errorf("Divergence: u: %w", err)
	}
	if err := g.ValidateField(c); err != nil {
		return nil, fmt.Errorf("Divergence: c: %w", err)
	}

	div := make([]float64, len(g.vertices))
	var flux float64
	for _, p := range g.pairs {
		i, j := p[0], p[1]
		flux = 0.5 * (u[i] + u[j]) * (c[j] - c[i])
		div[i] += flux
		div[j] -= flux
	}

	return div, nil
}

// ValidateField checks that x is index-aligned with the vertex list and
// holds only finite values.
// Complexity: O(V).
func (g *Graph) ValidateField(x []float64) error {
	if len(x) != len(g.vertices) {
		return fmt.Errorf("len=%d, order=%d: %w", len(x), len(g.vertices), ErrFieldLength)
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("index %d: %w", i, ErrNonFinite)
		}
	}

	return nil
}

// Degree returns the number of edge ends incident to vertex id. Parallel
// edges are counted once each.
//
// Errors:
//   - ErrVertexNotFound when id is unknown.
//
// Complexity: O(E).
func (g *Graph) Degree(id int) (int, error) {
	i, err := g.IndexOf(id)
	if err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}

	var deg int
	for _, p := range g.pairs {
		if p[0] == i {
			deg++
		}
		if p[1] == i {
			deg++
		}
	}

	return deg, nil
}

// Neighbors returns the ids adjacent to vertex id, without duplicates, in the
// order their connecting edges first appear.
//
// Errors:
//   - ErrVertexNotFound when id is unknown.
//
// Complexity: O(E).
func (g *Graph) Neighbors(id int) ([]int, error) {
	i, err := g.IndexOf(id)
	if err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}

	seen := make(map[int]struct{})
	var out []int
	var other int
	for _, p := range g.pairs {
		switch i {
		case p[0]:
			other = p[1]
		case p[1]:
			other = p[0]
		default:
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, g.vertices[other].id)
	}

	return out, nil
}

// adjacencyLists returns, per vertex position, the positions of its
// neighbours in first-seen edge order.
func (g *Graph) adjacencyLists() [][]int {
	adj := make([][]int, len(g.vertices))
	for _, p := range g.pairs {
		adj[p[0]] = append(adj[p[0]], p[1])
		adj[p[1]] = append(adj[p[1]], p[0])
	}

	return adj
}
