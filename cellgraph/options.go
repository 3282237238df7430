// SPDX-License-Identifier: MIT

package cellgraph

import (
	"math/rand"

	"github.com/katalvlaran/cellgraph/builder"
	"github.com/katalvlaran/cellgraph/cell"
)

// Option customizes an EntityGraph at construction.
// Option constructors panic on nil arguments (programmer error).
type Option func(*EntityGraph)

// WithRand injects the RNG used by AdvancePositions. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cellgraph: WithRand(nil)")
	}
	return func(g *EntityGraph) { g.rng = r }
}

// WithSeed seeds a private RNG; seed 0 selects the package default.
func WithSeed(seed int64) Option {
	return func(g *EntityGraph) { g.rng = rngFromSeed(seed) }
}

// WithRegistry sets the kind registry used for initial densities and
// reaction terms. Panics on nil.
func WithRegistry(r *cell.Registry) Option {
	if r == nil {
		panic("cellgraph: WithRegistry(nil)")
	}
	return func(g *EntityGraph) { g.reg = r }
}

// WithBuilderOptions forwards rule options (radius, weights) to every
// topology build, including rebuilds.
func WithBuilderOptions(opts ...builder.BuilderOption) Option {
	return func(g *EntityGraph) {
		g.bopts = append(g.bopts, opts...)
	}
}
