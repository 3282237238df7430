// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for graph→matrix operators and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Multi-edge representation:
//   - Dense adjacency has one cell per (u,v); it cannot losslessly represent
//     parallel edges. The default policy is OVERWRITE: every edge writes its
//     value into both symmetric cells, so duplicates collapse to one entry.
//     WithAccumulate switches to summation so A[i][j] counts the parallel edges
//     (or sums their weights under WithWeighted).
//   - Incidence matrices represent multi-edges naturally (one column per edge).
//   - Weighted semantics:
//   - adapters emit a binary structure by default; WithWeighted exports
//     edge weights into adjacency (and therefore into the Laplacians).
//   - incidence is structural; numeric weights are ignored there.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// and by the stationary-state zero-mass test.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultEigenTol is the off-diagonal convergence tolerance for Eigen.
	DefaultEigenTol = 1e-10

	// DefaultEigenMaxIter caps Jacobi sweeps (rotations) for Eigen.
	DefaultEigenMaxIter = 10000
)

// Build policy for graph operators.
const (
	// DefaultWeighted controls whether edge weights are exported.
	// false ⇒ binary adjacency with unit entries.
	DefaultWeighted = false

	// DefaultAccumulate controls how parallel edges land in dense adjacency.
	// false ⇒ overwrite (duplicates collapse to a single entry).
	DefaultAccumulate = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps        float64 // >= 0; DefaultEpsilon
	weighted   bool    // DefaultWeighted
	accumulate bool    // DefaultAccumulate
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by structural checks.
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or Inf.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithWeighted exports edge weights instead of unit entries.
// Affects Adjacency, Laplacian, NormalizedLaplacian and DegreeVector.
func WithWeighted() Option {
	return func(o *Options) { o.weighted = true }
}

// WithAccumulate sums parallel edges into the same adjacency cell instead of
// overwriting it.
func WithAccumulate() Option {
	return func(o *Options) { o.accumulate = true }
}

// NewMatrixOptions resolves a sequence of Option setters into Options.
// Callers outside the package read the effective tolerance through Epsilon.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters apply in order (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:        DefaultEpsilon,
		weighted:   DefaultWeighted,
		accumulate: DefaultAccumulate,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
