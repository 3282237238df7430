// SPDX-License-Identifier: MIT

package simulate

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/katalvlaran/cellgraph/builder"
	"github.com/katalvlaran/cellgraph/cellgraph"
	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/geom"
	"github.com/katalvlaran/cellgraph/matrix"
	"go.uber.org/zap"
)

// Result is the outcome of Run.
//
// Trajectory, Mass and Residual are indexed by step: entry 0 is the initial
// state and entry k the state after k steps. Positions holds one snapshot
// per step (vertex order) and stays empty when nothing moves.
type Result struct {
	RunID      uuid.UUID
	Field      []float64
	Trajectory [][]float64
	Mass       []float64
	Residual   []float64
	Positions  [][]geom.Point
	// Completed counts the steps actually taken; it is below Config.Steps
	// only when the run was interrupted.
	Completed int
}

func (r *Result) record(u []float64, lap matrix.Matrix) (mass, residual float64, err error) {
	lu, err := matrix.MatVec(lap, u)
	if err != nil {
		return 0, 0, err
	}
	mass, residual = matrix.Sum(u), matrix.Norm2(lu)
	r.Trajectory = append(r.Trajectory, u)
	r.Mass = append(r.Mass, mass)
	r.Residual = append(r.Residual, residual)

	return mass, residual, nil
}

type laplacianFunc func(g *core.Graph, opts ...matrix.Option) (*matrix.Dense, error)

func laplacianFor(normalized bool) laplacianFunc {
	if normalized {
		return matrix.NormalizedLaplacian
	}

	return matrix.Laplacian
}

// Run integrates the density field u0 on sys for cfg.Steps forward-Euler
// steps, with c as the attractant field.
//
// Each step, in this order:
//  1. advance the positions of movable entities (only with cfg.Move set),
//  2. snapshot the positions,
//  3. rebuild the topology from that snapshot,
//  4. recompute the Laplacian and the divergence on the rebuilt graph,
//  5. u ← u + dt·(−D⊙(L·u) + div(u, c) + reaction(u, c)).
//
// Steps 1 to 3 run as one unit under the system's lock (EntityGraph.Evolve).
// A static system builds L once. A nil c is read as the zero field.
//
// The context is checked between steps. On cancellation Run returns the
// partial Result together with the context error; the field and the graph
// are consistent at every step boundary.
//
// Errors:
//   - ErrNilSystem; ErrInvalidConfig and builder.ErrUnknownRule from cfg.
//   - core.ErrFieldLength, core.ErrNonFinite for malformed fields or
//     per-vertex coefficients.
//   - cell.ErrUnknownKind when reaction meets an unregistered kind.
func Run(ctx context.Context, sys *cellgraph.EntityGraph, u0, c []float64, cfg Config, opts ...RunOption) (*Result, error) {
	if sys == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilSystem)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	ro := gatherRunOptions(opts...)

	rule := sys.Rule()
	if cfg.Rule != "" {
		want, err := builder.Lookup(string(cfg.Rule))
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		if want != rule {
			if err = sys.Rebuild(want); err != nil {
				return nil, fmt.Errorf("Run: %w", err)
			}
			rule = want
		}
	}
	g := sys.Graph()
	n := g.Order()

	if err := g.ValidateField(u0); err != nil {
		return nil, fmt.Errorf("Run: u0: %w", err)
	}
	if c == nil {
		c = make([]float64, n)
	} else if err := g.ValidateField(c); err != nil {
		return nil, fmt.Errorf("Run: attractant: %w", err)
	}
	d, err := cfg.coefficients(n)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	lapOf := laplacianFor(cfg.Normalized)
	lap, err := lapOf(g)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	moving := cfg.Move != nil && sys.Mobile()

	res := &Result{RunID: uuid.New()}
	log := ro.logger.With(zap.String("run_id", res.RunID.String()))
	log.Info("run started",
		zap.Int("steps", cfg.Steps),
		zap.Float64("dt", cfg.Dt),
		zap.Int("order", n),
		zap.Int("edges", g.Size()),
		zap.String("rule", rule.String()),
		zap.Bool("normalized", cfg.Normalized),
		zap.Bool("moving", moving),
	)

	u := append([]float64(nil), u0...)
	if _, _, err = res.record(u, lap); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	var (
		snap           []geom.Point
		div, reac      []float64
		mass, residual float64
	)
	for k := 0; k < cfg.Steps; k++ {
		if err = ctx.Err(); err != nil {
			log.Warn("run interrupted", zap.Int("step", k), zap.Error(err))
			res.Field = u
			return res, fmt.Errorf("Run: step %d: %w", k, err)
		}

		if moving {
			if snap, g, err = sys.Evolve(cfg.Move.StepSize, cfg.Move.Bounds, rule); err != nil {
				return res, fmt.Errorf("Run: step %d: %w", k, err)
			}
			if lap, err = lapOf(g); err != nil {
				return res, fmt.Errorf("Run: step %d: %w", k, err)
			}
			res.Positions = append(res.Positions, snap)
			log.Debug("topology rebuilt", zap.Int("step", k), zap.Int("edges", g.Size()))
		}

		div, reac = nil, nil
		if ro.chemotaxis {
			if div, err = g.Divergence(u, c); err != nil {
				return res, fmt.Errorf("Run: step %d: %w", k, err)
			}
		}
		if ro.reaction {
			if reac, err = sys.Reaction(u, c); err != nil {
				return res, fmt.Errorf("Run: step %d: %w", k, err)
			}
		}
		if u, err = Step(lap, u, d, cfg.Dt, div, reac); err != nil {
			return res, fmt.Errorf("Run: step %d: %w", k, err)
		}

		if mass, residual, err = res.record(u, lap); err != nil {
			return res, fmt.Errorf("Run: step %d: %w", k, err)
		}
		res.Completed = k + 1
		res.Field = u

		if len(ro.observers) > 0 {
			info := StepInfo{
				Step:      k + 1,
				Field:     append([]float64(nil), u...),
				Mass:      mass,
				Residual:  residual,
				Edges:     g.Size(),
				Positions: append([]geom.Point(nil), snap...),
			}
			for _, fn := range ro.observers {
				fn(info)
			}
		}
	}
	res.Field = u

	log.Info("run finished",
		zap.Int("completed", res.Completed),
		zap.Float64("mass", res.Mass[len(res.Mass)-1]),
		zap.Float64("residual", res.Residual[len(res.Residual)-1]),
	)

	return res, nil
}

// Step returns one forward-Euler update
//
//	u' = u + dt·(−d⊙(L·u) + div + react)
//
// as a new slice. div and react may be nil, meaning zero. d holds one
// diffusion coefficient per vertex.
//
// Errors:
//   - matrix errors for an L that does not match u.
//   - core.ErrFieldLength when d, div or react has the wrong length.
//   - ErrInvalidConfig for a non-finite dt.
func Step(lap matrix.Matrix, u, d []float64, dt float64, div, react []float64) ([]float64, error) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("Step: dt %g: %w", dt, ErrInvalidConfig)
	}
	lu, err := matrix.MatVec(lap, u)
	if err != nil {
		return nil, fmt.Errorf("Step: %w", err)
	}
	n := len(u)
	if len(d) != n {
		return nil, fmt.Errorf("Step: %d coefficients for %d vertices: %w", len(d), n, core.ErrFieldLength)
	}
	if (div != nil && len(div) != n) || (react != nil && len(react) != n) {
		return nil, fmt.Errorf("Step: term length mismatch: %w", core.ErrFieldLength)
	}

	rate := make([]float64, n)
	for i := 0; i < n; i++ {
		rate[i] = -d[i] * lu[i]
		if div != nil {
			rate[i] += div[i]
		}
		if react != nil {
			rate[i] += react[i]
		}
	}
	next, err := matrix.Axpy(dt, rate, u)
	if err != nil {
		return nil, fmt.Errorf("Step: %w", err)
	}

	return next, nil
}
