// SPDX-License-Identifier: MIT

package simulate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cellgraph/builder"
	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/geom"
	"github.com/katalvlaran/cellgraph/internal/valid"
	"github.com/katalvlaran/cellgraph/matrix"
)

// Sentinel errors.
var (
	// ErrInvalidConfig reports a run configuration that fails validation.
	ErrInvalidConfig = fmt.Errorf("%w: simulate: invalid run configuration", core.ErrConfiguration)

	// ErrNilSystem reports a nil *cellgraph.EntityGraph.
	ErrNilSystem = fmt.Errorf("%w: simulate: system is nil", core.ErrValidation)

	// ErrNoStationary reports a null-space vector whose entries sum to zero,
	// so it cannot be scaled to a prescribed mass.
	ErrNoStationary = fmt.Errorf("%w: simulate: null-space vector has zero sum", core.ErrValidation)
)

// Defaults used by DefaultConfig.
const (
	DefaultSteps     = 100
	DefaultDt        = 0.01
	DefaultDiffusion = 1.0
)

// Move enables entity movement between steps.
type Move struct {
	// StepSize scales the per-axis Gaussian displacement.
	StepSize float64     `yaml:"step_size" json:"step_size" validate:"gte=0"`
	Bounds   geom.Bounds `yaml:"bounds" json:"bounds"`
}

// Config holds the parameters of one run.
type Config struct {
	// Steps is the number of forward-Euler steps.
	Steps int `yaml:"steps" json:"steps" validate:"gte=0"`
	// Dt is the time step. The driver does no stability control.
	Dt float64 `yaml:"dt" json:"dt" validate:"gt=0"`
	// Diffusion is the uniform diffusion coefficient.
	Diffusion float64 `yaml:"diffusion" json:"diffusion" validate:"gte=0"`
	// DiffusionPerVertex, when set, replaces Diffusion with one coefficient
	// per vertex, in vertex order.
	DiffusionPerVertex []float64 `yaml:"diffusion_per_vertex,omitempty" json:"diffusion_per_vertex,omitempty" validate:"omitempty,dive,gte=0"`
	// Normalized selects I − D^{-1/2} A D^{-1/2} instead of D − A.
	Normalized bool `yaml:"normalized" json:"normalized"`
	// Rule is the topology rule applied on rebuild; empty keeps the
	// system's current rule.
	Rule builder.Rule `yaml:"rule,omitempty" json:"rule,omitempty"`
	// Move, when non-nil, advances movable entities every step.
	Move *Move `yaml:"move,omitempty" json:"move,omitempty"`
}

// DefaultConfig returns a static, pure-diffusion configuration.
func DefaultConfig() Config {
	return Config{Steps: DefaultSteps, Dt: DefaultDt, Diffusion: DefaultDiffusion}
}

// Validate checks struct tags, finiteness, the rule name and the movement
// bounds. Every failure wraps ErrInvalidConfig or builder.ErrUnknownRule,
// both of kind core.ErrConfiguration.
func (c Config) Validate() error {
	if err := valid.Struct(ErrInvalidConfig, c); err != nil {
		return err
	}
	if err := matrix.ValidateFinite([]float64{c.Dt, c.Diffusion}); err != nil {
		return fmt.Errorf("%w: dt and diffusion must be finite: %w", ErrInvalidConfig, err)
	}
	if err := matrix.ValidateFinite(c.DiffusionPerVertex); err != nil {
		return fmt.Errorf("%w: diffusion_per_vertex must be finite: %w", ErrInvalidConfig, err)
	}
	if c.Rule != "" {
		if _, err := builder.Lookup(string(c.Rule)); err != nil {
			return err
		}
	}
	if c.Move != nil {
		if math.IsInf(c.Move.StepSize, 0) {
			return fmt.Errorf("%w: move.step_size must be finite", ErrInvalidConfig)
		}
		if err := c.Move.Bounds.Validate(); err != nil {
			return fmt.Errorf("%w: move: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// coefficients expands the diffusion settings to one value per vertex.
func (c Config) coefficients(n int) ([]float64, error) {
	if c.DiffusionPerVertex != nil {
		if len(c.DiffusionPerVertex) != n {
			return nil, fmt.Errorf("diffusion_per_vertex has %d entries for %d vertices: %w",
				len(c.DiffusionPerVertex), n, core.ErrFieldLength)
		}
		out := make([]float64, n)
		copy(out, c.DiffusionPerVertex)
		return out, nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = c.Diffusion
	}

	return out, nil
}
