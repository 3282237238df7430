// SPDX-License-Identifier: MIT

package cellgraph

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/katalvlaran/cellgraph/builder"
	"github.com/katalvlaran/cellgraph/cell"
	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/geom"
)

// Sentinel errors.
var (
	// ErrNilEntity reports a nil entry in the entity list.
	ErrNilEntity = fmt.Errorf("%w: cellgraph: entity is nil", core.ErrValidation)

	// ErrStepSize reports a negative or non-finite movement scale.
	ErrStepSize = fmt.Errorf("%w: cellgraph: step size must be finite and >= 0", core.ErrValidation)
)

// Entity is anything that can sit on a vertex: it has a stable id, a kind,
// a position, and a capability flag saying whether it may move.
type Entity interface {
	ID() int
	Kind() cell.Kind
	Position() geom.Point
	SetPosition(p geom.Point) error
	Movable() bool
}

// EntityGraph binds an ordered list of entities to the vertices of a
// core.Graph whose edges follow a connectivity rule.
//
// Vertex i carries entity i's id, so field index i, matrix row i and entity i
// always refer to the same thing. The vertex list is fixed for the lifetime of
// the EntityGraph; Rebuild only replaces the edges.
//
// All methods are safe for concurrent use; one mutex guards the whole
// structure so entity positions, the position map and the graph change
// together.
type EntityGraph struct {
	mu        sync.Mutex
	entities  []Entity
	vertices  []*core.Vertex
	graph     *core.Graph
	rule      builder.Rule
	bopts     []builder.BuilderOption
	positions map[int]geom.Point
	rng       *rand.Rand
	reg       *cell.Registry
}

// New builds the entity graph: one vertex per entity (id = entity id,
// value 0) and edges from rule over the current positions.
//
// Errors:
//   - ErrNilEntity; core.ErrDuplicateVertex for repeated ids.
//   - builder.ErrUnknownRule (core.ErrConfiguration) for an unknown rule.
//   - builder option and position errors from the rule.
//
// Complexity: that of the rule plus O(n).
func New(entities []Entity, rule builder.Rule, opts ...Option) (*EntityGraph, error) {
	g := &EntityGraph{
		entities:  make([]Entity, len(entities)),
		vertices:  make([]*core.Vertex, len(entities)),
		positions: make(map[int]geom.Point, len(entities)),
	}
	for i, e := range entities {
		if e == nil {
			return nil, fmt.Errorf("New: entity %d: %w", i, ErrNilEntity)
		}
		g.entities[i] = e
		g.vertices[i] = core.NewVertex(e.ID(), core.WithValue(0))
		g.positions[e.ID()] = e.Position()
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rngFromSeed(defaultRNGSeed)
	}
	if g.reg == nil {
		g.reg = cell.DefaultRegistry()
	}

	if err := g.rebuildLocked(rule); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return g, nil
}

// rebuildLocked replaces the edge set. The rule name is resolved through
// builder.Lookup and stored in canonical form. The previous graph stays in
// place when the rule fails. Caller holds mu (or owns g exclusively).
func (g *EntityGraph) rebuildLocked(rule builder.Rule) error {
	canon, err := builder.Lookup(string(rule))
	if err != nil {
		return err
	}
	edges, err := builder.Edges(canon, g.vertices, g.positionListLocked(), g.bopts...)
	if err != nil {
		return err
	}
	graph, err := core.NewGraph(g.vertices, edges)
	if err != nil {
		return err
	}
	g.graph, g.rule = graph, canon

	return nil
}

func (g *EntityGraph) positionListLocked() []geom.Point {
	out := make([]geom.Point, len(g.entities))
	for i, e := range g.entities {
		out[i] = g.positions[e.ID()]
	}

	return out
}

// Rebuild recomputes the edges under rule from the current positions.
// rule is matched like builder.Lookup. Positions are not touched. With unchanged positions and rule the new graph
// has exactly the same edge list as before.
func (g *EntityGraph) Rebuild(rule builder.Rule) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.rebuildLocked(rule); err != nil {
		return fmt.Errorf("Rebuild: %w", err)
	}

	return nil
}

// AdvancePositions moves every movable entity by an independent Gaussian
// step N(0,1)·stepSize per axis, clamps each coordinate into bounds and
// refreshes the position map. Fixed entities are skipped. The topology is
// left alone; call Rebuild afterwards, or use Evolve.
//
// Errors:
//   - ErrStepSize, geom.ErrBounds on invalid arguments (nothing moves).
//   - Errors from Entity.SetPosition; entities already moved keep their moves.
//
// Returns the number of entities that moved.
func (g *EntityGraph) AdvancePositions(stepSize float64, bounds geom.Bounds) (int, error) {
	if err := checkMove(stepSize, bounds); err != nil {
		return 0, fmt.Errorf("AdvancePositions: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	moved, err := g.advanceLocked(stepSize, bounds)
	if err != nil {
		return moved, fmt.Errorf("AdvancePositions: %w", err)
	}

	return moved, nil
}

// Evolve performs the topology half of one simulation step as a single unit:
// advance positions, snapshot them, rebuild the edges under rule. It returns
// the snapshot (vertex order) and the rebuilt graph, which is what the field
// update of the same step must read.
//
// On a rebuild failure the entities stay moved and the previous graph stays
// in place.
func (g *EntityGraph) Evolve(stepSize float64, bounds geom.Bounds, rule builder.Rule) ([]geom.Point, *core.Graph, error) {
	if err := checkMove(stepSize, bounds); err != nil {
		return nil, nil, fmt.Errorf("Evolve: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.advanceLocked(stepSize, bounds); err != nil {
		return nil, nil, fmt.Errorf("Evolve: %w", err)
	}
	snap := g.positionListLocked()
	if err := g.rebuildLocked(rule); err != nil {
		return snap, nil, fmt.Errorf("Evolve: %w", err)
	}

	return snap, g.graph, nil
}

func checkMove(stepSize float64, bounds geom.Bounds) error {
	if stepSize < 0 || math.IsNaN(stepSize) || math.IsInf(stepSize, 0) {
		return fmt.Errorf("step %g: %w", stepSize, ErrStepSize)
	}

	return bounds.Validate()
}

func (g *EntityGraph) advanceLocked(stepSize float64, bounds geom.Bounds) (int, error) {
	moved := 0
	for _, e := range g.entities {
		if !e.Movable() {
			continue
		}
		cur := e.Position()
		next, err := cur.Offset(gaussianStep(g.rng, cur.Dim(), stepSize))
		if err != nil {
			return moved, fmt.Errorf("entity %d: %w", e.ID(), err)
		}
		next = bounds.Clamp(next)
		if err = e.SetPosition(next); err != nil {
			return moved, fmt.Errorf("entity %d: %w", e.ID(), err)
		}
		g.positions[e.ID()] = next
		moved++
	}

	return moved, nil
}

// Refresh re-reads every entity's position into the position map. Use it
// after moving entities directly instead of through AdvancePositions.
func (g *EntityGraph) Refresh() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.entities {
		g.positions[e.ID()] = e.Position()
	}
}

// InitialDensity returns the starting density field.
//
// With nil overrides every entry is the registry's InitialDensity for the
// entity's kind. Otherwise entry i is overrides[id(i)], or 0 when absent.
//
// Errors:
//   - cell.ErrUnknownKind when nil overrides meet an unregistered kind.
func (g *EntityGraph) InitialDensity(overrides map[int]float64) ([]float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	u := make([]float64, len(g.entities))
	for i, e := range g.entities {
		if overrides != nil {
			u[i] = overrides[e.ID()]
			continue
		}
		p, err := g.reg.Lookup(e.Kind())
		if err != nil {
			return nil, fmt.Errorf("InitialDensity: entity %d: %w", e.ID(), err)
		}
		u[i] = p.InitialDensity
	}

	return u, nil
}

// Reaction evaluates each entity's kind-specific source term at (u[i], c[i]).
//
// Errors:
//   - core.ErrFieldLength, core.ErrNonFinite for malformed fields.
//   - cell.ErrUnknownKind for an unregistered kind.
func (g *EntityGraph) Reaction(u, c []float64) ([]float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := errors.Join(g.graph.ValidateField(u), g.graph.ValidateField(c)); err != nil {
		return nil, fmt.Errorf("Reaction: %w", err)
	}
	r := make([]float64, len(g.entities))
	for i, e := range g.entities {
		p, err := g.reg.Lookup(e.Kind())
		if err != nil {
			return nil, fmt.Errorf("Reaction: entity %d: %w", e.ID(), err)
		}
		r[i] = p.Rate(u[i], c[i])
	}

	return r, nil
}

// Divergence evaluates the chemotactic flux balance on the current graph.
func (g *EntityGraph) Divergence(u, c []float64) ([]float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.graph.Divergence(u, c)
}

// Graph returns the current topology. core.Graph is immutable, so the value
// stays valid (and stale) after later rebuilds.
func (g *EntityGraph) Graph() *core.Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.graph
}

// Rule returns the rule of the last successful build.
func (g *EntityGraph) Rule() builder.Rule {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rule
}

// Order returns the number of entities (and vertices).
func (g *EntityGraph) Order() int { return len(g.vertices) }

// Positions returns a snapshot of the position map keyed by entity id.
func (g *EntityGraph) Positions() map[int]geom.Point {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make(map[int]geom.Point, len(g.positions))
	for id, p := range g.positions {
		out[id] = p
	}

	return out
}

// PositionList returns positions in vertex order.
func (g *EntityGraph) PositionList() []geom.Point {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.positionListLocked()
}

// Entities returns the entities in vertex order.
func (g *EntityGraph) Entities() []Entity {
	out := make([]Entity, len(g.entities))
	copy(out, g.entities)

	return out
}

// Kinds returns each entity's kind in vertex order.
func (g *EntityGraph) Kinds() []cell.Kind {
	out := make([]cell.Kind, len(g.entities))
	for i, e := range g.entities {
		out[i] = e.Kind()
	}

	return out
}

// Mobile reports whether any entity may move.
func (g *EntityGraph) Mobile() bool {
	for _, e := range g.entities {
		if e.Movable() {
			return true
		}
	}

	return false
}

// Registry returns the kind registry in use.
func (g *EntityGraph) Registry() *cell.Registry { return g.reg }
