// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/cellgraph/geom"
	"github.com/katalvlaran/cellgraph/scenario"
	"github.com/katalvlaran/cellgraph/simulate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runSteps      int
	runDt         float64
	runNormalized bool
	runEvery      int
)

var runCmd = &cobra.Command{
	Use:   "run <scenario-file>",
	Short: "Run a scenario and print the result",
	Long: `Run a scenario with forward-Euler time stepping and print the final
field, per-step mass and residual as JSON.

Interrupting the run (Ctrl-C) stops it at the next step boundary and still
prints the partial result.

Examples:
  cellsim run wound.yaml
  cellsim run wound.yaml --steps 5000 --every 100
  cellsim run wound.yaml --normalized --output result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&runSteps, "steps", -1, "Override the number of steps")
	runCmd.Flags().Float64Var(&runDt, "dt", 0, "Override the time step")
	runCmd.Flags().BoolVar(&runNormalized, "normalized", false, "Use the normalized Laplacian")
	runCmd.Flags().IntVar(&runEvery, "every", 0, "Keep every n-th field and position snapshot (0: none)")
}

// runReport is the JSON document written by run.
type runReport struct {
	RunID      string    `json:"run_id"`
	Scenario   string    `json:"scenario"`
	Completed  int       `json:"completed"`
	Steps      int       `json:"steps"`
	Field      []float64 `json:"field"`
	Mass       []float64 `json:"mass"`
	Residual   []float64 `json:"residual"`
	Trajectory []frame   `json:"trajectory,omitempty"`
	Error      string    `json:"error,omitempty"`
}

type frame struct {
	Step      int         `json:"step"`
	Field     []float64   `json:"field"`
	Positions [][]float64 `json:"positions,omitempty"`
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := scenario.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	if runSteps >= 0 {
		s.Run.Steps = runSteps
	}
	if runDt != 0 {
		s.Run.Dt = runDt
	}
	if runNormalized {
		s.Run.Normalized = true
	}
	if err = s.Run.Validate(); err != nil {
		return err
	}
	if runEvery < 0 {
		return fmt.Errorf("--every must be >= 0, got %d", runEvery)
	}

	sys, err := s.Build(nil)
	if err != nil {
		return fmt.Errorf("failed to build scenario: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	opts := append(sys.Options, simulate.WithLogger(logger.Named("simulate")))
	res, runErr := simulate.Run(ctx, sys.Graph, sys.U0, sys.C, sys.Config, opts...)
	if res == nil {
		return runErr
	}

	report := runReport{
		RunID:     res.RunID.String(),
		Scenario:  s.Name,
		Completed: res.Completed,
		Steps:     s.Run.Steps,
		Field:     res.Field,
		Mass:      res.Mass,
		Residual:  res.Residual,
	}
	if runEvery > 0 {
		report.Trajectory = sample(res, runEvery)
	}
	if runErr != nil {
		if !errors.Is(runErr, context.Canceled) {
			return runErr
		}
		logger.Warn("run interrupted", zap.Int("completed", res.Completed))
		report.Error = runErr.Error()
	}

	return writeJSON(cmd, report)
}

// sample keeps every n-th trajectory entry plus the last one.
func sample(res *simulate.Result, n int) []frame {
	var out []frame
	last := len(res.Trajectory) - 1
	for k := 0; k <= last; k++ {
		if k%n != 0 && k != last {
			continue
		}
		f := frame{Step: k, Field: res.Trajectory[k]}
		// Positions[k-1] is the snapshot taken during step k
		if k > 0 && k-1 < len(res.Positions) {
			f.Positions = coords(res.Positions[k-1])
		}
		out = append(out, f)
	}

	return out
}

func coords(ps []geom.Point) [][]float64 {
	out := make([][]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Coords()
	}

	return out
}
