// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"

	"github.com/katalvlaran/cellgraph/builder"
	"github.com/katalvlaran/cellgraph/cell"
	"github.com/katalvlaran/cellgraph/cellgraph"
	"github.com/katalvlaran/cellgraph/geom"
	"github.com/katalvlaran/cellgraph/simulate"
)

// System is a scenario turned into live objects, ready for simulate.Run.
type System struct {
	Name   string
	Graph  *cellgraph.EntityGraph
	Cells  []*cell.Cell
	U0     []float64
	C      []float64
	Config simulate.Config
	// Options carries the chemotaxis and reaction switches.
	Options []simulate.RunOption
}

// Build creates the cells, the entity graph, the initial density and the
// attractant. Cells without an id get the next free id from an Issuer:
// issued ids skip every id that some cell sets explicitly. Two cells that set
// the same id still collide (core.ErrDuplicateVertex).
//
// The initial density uses every cell's density override when at least one
// cell sets one (absent entries are 0); otherwise every cell starts at its
// kind's default density.
func (s *Scenario) Build(reg *cell.Registry) (*System, error) {
	if reg == nil {
		reg = cell.DefaultRegistry()
	}

	taken := make(map[int]bool, len(s.Cells))
	for _, cs := range s.Cells {
		if cs.ID != 0 {
			taken[cs.ID] = true
		}
	}
	var iss cell.Issuer
	cells := make([]*cell.Cell, len(s.Cells))
	ents := make([]cellgraph.Entity, len(s.Cells))
	var overrides map[int]float64
	for i, cs := range s.Cells {
		pos, err := geom.FromCoords(cs.Pos)
		if err != nil {
			return nil, fmt.Errorf("cells[%d]: %w", i, err)
		}
		prof, err := reg.Lookup(cs.Kind)
		if err != nil {
			return nil, fmt.Errorf("cells[%d]: %w", i, err)
		}
		id := cs.ID
		if id == 0 {
			for id = iss.Next(); taken[id]; id = iss.Next() {
			}
		}
		movable := prof.Movable
		if cs.Movable != nil {
			movable = *cs.Movable
		}
		cells[i] = cell.New(id, cs.Kind, pos, cell.WithMovable(movable))
		ents[i] = cells[i]
		if cs.Density != nil {
			if overrides == nil {
				overrides = make(map[int]float64, len(s.Cells))
			}
			overrides[id] = *cs.Density
		}
	}

	var bopts []builder.BuilderOption
	if s.Radius > 0 {
		bopts = append(bopts, builder.WithRadius(s.Radius))
	}
	if s.Weight != 0 {
		bopts = append(bopts, builder.WithWeight(s.Weight))
	}
	eg, err := cellgraph.New(ents, s.Rule,
		cellgraph.WithSeed(s.Seed),
		cellgraph.WithRegistry(reg),
		cellgraph.WithBuilderOptions(bopts...),
	)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	u0, err := eg.InitialDensity(overrides)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	sys := &System{
		Name:   s.Name,
		Graph:  eg,
		Cells:  cells,
		U0:     u0,
		C:      s.attractant(cells),
		Config: s.Run,
	}
	if s.NoChemotaxis {
		sys.Options = append(sys.Options, simulate.WithoutChemotaxis())
	}
	if s.NoReaction {
		sys.Options = append(sys.Options, simulate.WithoutReaction())
	}

	return sys, nil
}

func (s *Scenario) attractant(cells []*cell.Cell) []float64 {
	c := make([]float64, len(cells))
	switch {
	case s.Attractant != nil:
		copy(c, s.Attractant)
	case s.Gradient != nil:
		for i, cl := range cells {
			coords := cl.Position().Coords()
			if s.Gradient.Axis < len(coords) {
				c[i] = s.Gradient.Offset + s.Gradient.Slope*coords[s.Gradient.Axis]
			} else {
				c[i] = s.Gradient.Offset
			}
		}
	}

	return c
}
