// SPDX-License-Identifier: MIT
// Package: cellgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Edges(rule, vertices, positions, opts...). Resolves cfg,
//     asks the rule for index pairs, then materializes core edges.
//   - Every rule is implemented in its own impl_*.go file.
//   - Determinism: pairs are always emitted in increasing (i, j) order, so the
//     same inputs always produce the same edge list.
//   - Safety: never panic; return sentinel errors from rules.

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/geom"
)

// Rule names a connectivity rule.
type Rule string

// Built-in rules.
const (
	Linear         Rule = "linear"
	FullyConnected Rule = "fully_connected"
	Ring           Rule = "ring"
	Proximity      Rule = "proximity"
)

// pairer lists the (i, j) index pairs a rule connects among n vertices.
// pos is nil unless the caller supplied positions.
type pairer func(n int, pos []geom.Point, cfg builderConfig) ([][2]int, error)

// ruleImpl binds a pairer to its requirements; needsPos marks rules that
// cannot run without positions.
type ruleImpl struct {
	pairs    pairer
	needsPos bool
}

func rules() map[Rule]ruleImpl {
	return map[Rule]ruleImpl{
		Linear:         {pairs: linearPairs},
		FullyConnected: {pairs: completePairs},
		Ring:           {pairs: ringPairs},
		Proximity:      {pairs: proximityPairs, needsPos: true},
	}
}

// Rules returns the known rule names in lexicographic order.
func Rules() []Rule {
	m := rules()
	out := make([]Rule, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Lookup validates a rule name. Matching is case-insensitive and accepts
// '-' in place of '_'.
func Lookup(name string) (Rule, error) {
	r := Rule(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	if _, ok := rules()[r]; !ok {
		return "", fmt.Errorf("Lookup(%q): %w", name, ErrUnknownRule)
	}

	return r, nil
}

// ParseRule is Lookup under the name used by flag and config parsers.
func ParseRule(name string) (Rule, error) { return Lookup(name) }

// String implements fmt.Stringer.
func (r Rule) String() string { return string(r) }

// Pairs returns the vertex index pairs rule connects among n vertices.
// positions must be nil or have length n; proximity requires them.
func Pairs(rule Rule, n int, positions []geom.Point, opts ...BuilderOption) ([][2]int, error) {
	impl, ok := rules()[rule]
	if !ok {
		return nil, fmt.Errorf("Pairs(%q): %w", rule, ErrUnknownRule)
	}
	cfg := newBuilderConfig(opts...)
	if positions != nil && len(positions) != n {
		return nil, builderErrorf(string(rule), "%d positions for %d vertices", ErrPositions, len(positions), n)
	}
	if positions == nil && (impl.needsPos || cfg.needsPositions()) && n > 1 {
		return nil, builderErrorf(string(rule), "no positions", ErrPositions)
	}

	return impl.pairs(n, positions, cfg)
}

// Edges builds the edge list of rule over vertices.
//
// Implementation:
//   - Stage 1: resolve options and compute index pairs via the rule.
//   - Stage 2: connect vertices[i] and vertices[j] for each pair, weighting
//     by the constant weight or WithWeightFn(distance).
//
// Errors:
//   - ErrUnknownRule, ErrOptionViolation, ErrPositions.
//   - core validation errors for nil vertices.
//
// Complexity:
//   - O(n) for linear/ring, O(n²) for fully_connected/proximity.
func Edges(rule Rule, vertices []*core.Vertex, positions []geom.Point, opts ...BuilderOption) ([]*core.Edge, error) {
	pairs, err := Pairs(rule, len(vertices), positions, opts...)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	edges := make([]*core.Edge, 0, len(pairs))
	var w float64
	for _, p := range pairs {
		if w, err = cfg.edgeWeight(positions, p[0], p[1]); err != nil {
			return nil, builderErrorf(string(rule), "weight(%d,%d)", err, p[0], p[1])
		}
		e, err := core.Connect(vertices[p[0]], vertices[p[1]], core.WithWeight(w))
		if err != nil {
			return nil, builderErrorf(string(rule), "Connect(%d,%d)", err, p[0], p[1])
		}
		edges = append(edges, e)
	}

	return edges, nil
}
