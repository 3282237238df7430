// SPDX-License-Identifier: MIT
// Package: cellgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Rules themselves MUST NOT panic.
//   - No hidden globals; everything flows through builderConfig.

package builder

import "math"

// BuilderOption customizes a rule by mutating a builderConfig instance before
// edges are emitted.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRadius sets the proximity threshold: vertices i<j are joined when their
// distance is at most r. Panics unless r is finite and > 0.
func WithRadius(r float64) BuilderOption {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("builder: WithRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithWeight sets a constant edge weight. Panics on non-finite w.
func WithWeight(w float64) BuilderOption {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		panic("builder: WithWeight(non-finite)")
	}
	return func(c *builderConfig) {
		c.weight = w
		c.weightFn = nil
	}
}

// WithWeightFn derives each edge weight from the distance between its
// endpoints. Positions become mandatory for every rule. Panics on nil.
func WithWeightFn(fn func(dist float64) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
