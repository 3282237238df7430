// SPDX-License-Identifier: MIT

package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/cellgraph/builder"
	"github.com/katalvlaran/cellgraph/cell"
	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/internal/valid"
	"github.com/katalvlaran/cellgraph/simulate"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario reports a scenario file that fails validation.
var ErrInvalidScenario = fmt.Errorf("%w: scenario: invalid scenario", core.ErrConfiguration)

// CellSpec describes one entity.
type CellSpec struct {
	// ID is the entity id; 0 asks for the next issued id.
	ID      int       `yaml:"id,omitempty" json:"id,omitempty" validate:"gte=0"`
	Kind    cell.Kind `yaml:"kind" json:"kind" validate:"required"`
	Pos     []float64 `yaml:"pos" json:"pos" validate:"min=2,max=3"`
	Density *float64  `yaml:"density,omitempty" json:"density,omitempty"`
	Movable *bool     `yaml:"movable,omitempty" json:"movable,omitempty"`
}

// Gradient defines the attractant as a linear function of position:
// c = Offset + Slope·x along Axis (0, 1 or 2).
type Gradient struct {
	Axis   int     `yaml:"axis" json:"axis" validate:"gte=0,lte=2"`
	Slope  float64 `yaml:"slope" json:"slope"`
	Offset float64 `yaml:"offset" json:"offset"`
}

// Scenario is the on-disk description of a simulation.
//
//	name: wound
//	seed: 42
//	rule: proximity
//	radius: 1.5
//	cells:
//	  - {kind: neuron, pos: [0, 0]}
//	  - {kind: microglia, pos: [1, 0], density: 0.4}
//	gradient: {axis: 0, slope: 1}
//	run:
//	  steps: 500
//	  dt: 0.01
//	  diffusion: 1
//	  move: {step_size: 0.05, bounds: {min: 0, max: 5}}
type Scenario struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	// Seed drives entity movement; 0 selects the default seed.
	Seed   int64        `yaml:"seed,omitempty" json:"seed,omitempty"`
	Rule   builder.Rule `yaml:"rule" json:"rule" validate:"required"`
	Radius float64      `yaml:"radius,omitempty" json:"radius,omitempty" validate:"gte=0"`
	// Weight is the constant edge weight; 0 keeps core.DefaultEdgeWeight.
	Weight float64    `yaml:"weight,omitempty" json:"weight,omitempty"`
	Cells  []CellSpec `yaml:"cells" json:"cells" validate:"dive"`
	// Attractant lists c per cell; mutually exclusive with Gradient.
	Attractant   []float64       `yaml:"attractant,omitempty" json:"attractant,omitempty"`
	Gradient     *Gradient       `yaml:"gradient,omitempty" json:"gradient,omitempty"`
	NoChemotaxis bool            `yaml:"no_chemotaxis,omitempty" json:"no_chemotaxis,omitempty"`
	NoReaction   bool            `yaml:"no_reaction,omitempty" json:"no_reaction,omitempty"`
	Run          simulate.Config `yaml:"run" json:"run"`
}

// Load reads and validates a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML scenario. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the scenario and its run configuration.
func (s *Scenario) Validate() error {
	if err := valid.Struct(ErrInvalidScenario, s); err != nil {
		return err
	}
	if math.IsInf(s.Radius, 0) || math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
		return fmt.Errorf("%w: radius and weight must be finite", ErrInvalidScenario)
	}
	rule, err := builder.Lookup(string(s.Rule))
	if err != nil {
		return err
	}
	s.Rule = rule
	if rule == builder.Proximity && s.Radius == 0 {
		return fmt.Errorf("%w: rule %s needs a radius", ErrInvalidScenario, rule)
	}
	if s.Attractant != nil && s.Gradient != nil {
		return fmt.Errorf("%w: attractant and gradient are mutually exclusive", ErrInvalidScenario)
	}
	if s.Attractant != nil && len(s.Attractant) != len(s.Cells) {
		return fmt.Errorf("%w: %d attractant values for %d cells", ErrInvalidScenario, len(s.Attractant), len(s.Cells))
	}
	if err = s.Run.Validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}

// Marshal encodes the scenario back to YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
