// SPDX-License-Identifier: MIT

package simulate

import (
	"github.com/katalvlaran/cellgraph/geom"
	"go.uber.org/zap"
)

// StepInfo is handed to observers after every completed step.
// Field and Positions are copies owned by the observer.
type StepInfo struct {
	Step      int
	Field     []float64
	Mass      float64
	Residual  float64
	Edges     int
	Positions []geom.Point
}

// Observer receives per-step diagnostics. It runs on the driver goroutine.
type Observer func(StepInfo)

// RunOption customizes Run.
type RunOption func(*runOptions)

type runOptions struct {
	chemotaxis bool
	reaction   bool
	observers  []Observer
	logger     *zap.Logger
}

func defaultRunOptions() runOptions {
	return runOptions{chemotaxis: true, reaction: true, logger: zap.NewNop()}
}

func gatherRunOptions(opts ...RunOption) runOptions {
	ro := defaultRunOptions()
	for _, opt := range opts {
		opt(&ro)
	}

	return ro
}

// WithoutChemotaxis drops the divergence term; the attractant is ignored.
func WithoutChemotaxis() RunOption {
	return func(o *runOptions) { o.chemotaxis = false }
}

// WithoutReaction drops the per-kind reaction term.
func WithoutReaction() RunOption {
	return func(o *runOptions) { o.reaction = false }
}

// WithObserver registers fn to be called after every step. Panics on nil.
func WithObserver(fn Observer) RunOption {
	if fn == nil {
		panic("simulate: WithObserver(nil)")
	}
	return func(o *runOptions) { o.observers = append(o.observers, fn) }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) RunOption {
	if l == nil {
		panic("simulate: WithLogger(nil)")
	}
	return func(o *runOptions) { o.logger = l }
}
