// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/geom"
)

// ErrImmobile is returned when a fixed cell is asked to move.
// It matches core.ErrValidation.
var ErrImmobile = fmt.Errorf("%w: cell: entity cannot move", core.ErrValidation)

// Issuer hands out increasing identifiers starting at 1.
// It is safe for concurrent use; the zero value is ready.
type Issuer struct {
	last atomic.Int64
}

// Next returns the next identifier.
func (i *Issuer) Next() int { return int(i.last.Add(1)) }

// Option configures a Cell.
type Option func(*Cell)

// WithMovable sets the mobility of a cell. Registry.Spawn passes the
// kind's Profile.Movable here.
func WithMovable(movable bool) Option {
	return func(c *Cell) { c.movable = movable }
}

// Cell is a positioned entity with a kind tag and a movement history.
// Cell is not safe for concurrent mutation; the entity graph serializes access.
type Cell struct {
	id      int
	kind    Kind
	pos     geom.Point
	movable bool
	history []geom.Point
}

// New creates a fixed cell; pass WithMovable(true) to let it move. Use
// Registry.Spawn to take mobility from the kind's profile.
func New(id int, kind Kind, pos geom.Point, opts ...Option) *Cell {
	c := &Cell{
		id:      id,
		kind:    kind,
		pos:     pos,
		history: []geom.Point{pos},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ID returns the entity identifier.
func (c *Cell) ID() int { return c.id }

// Kind returns the kind tag.
func (c *Cell) Kind() Kind { return c.kind }

// Position returns the current position.
func (c *Cell) Position() geom.Point { return c.pos }

// Movable reports whether MoveTo is permitted.
func (c *Cell) Movable() bool { return c.movable }

// MoveTo relocates the cell and records the new position in its history.
//
// Errors:
//   - ErrImmobile for fixed cells.
//   - geom.ErrDimension when p and the current position differ in dimension.
func (c *Cell) MoveTo(p geom.Point) error {
	if !c.movable {
		return fmt.Errorf("MoveTo: %v %d: %w", c.kind, c.id, ErrImmobile)
	}
	if p.Dim() != c.pos.Dim() {
		return fmt.Errorf("MoveTo: %v %d: %w", c.kind, c.id, geom.ErrDimension)
	}
	c.pos = p
	c.history = append(c.history, p)

	return nil
}

// SetPosition is MoveTo under the entity-graph contract.
func (c *Cell) SetPosition(p geom.Point) error { return c.MoveTo(p) }

// History returns every position the cell has held, oldest first.
func (c *Cell) History() []geom.Point {
	out := make([]geom.Point, len(c.history))
	copy(out, c.history)

	return out
}

// String implements fmt.Stringer.
func (c *Cell) String() string {
	return fmt.Sprintf("%v(id=%d, pos=%v, moves=%d)", c.kind, c.id, c.pos, len(c.history)-1)
}
