// SPDX-License-Identifier: MIT

package scenario_test

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/cellgraph/builder"
	"github.com/katalvlaran/cellgraph/cell"
	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/geom"
	"github.com/katalvlaran/cellgraph/scenario"
	"github.com/katalvlaran/cellgraph/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wound = `
name: wound
seed: 42
rule: Proximity
radius: 1.5
cells:
  - {kind: neuron, pos: [0, 0]}
  - {kind: astrocyte, pos: [1, 0]}
  - {kind: microglia, pos: [2, 0], density: 0.4}
  - {id: 10, kind: Microglia, pos: [3, 0], movable: false}
gradient: {axis: 0, slope: 2, offset: 1}
no_reaction: true
run:
  steps: 20
  dt: 0.01
  diffusion: 1
  move: {step_size: 0.05, bounds: {min: 0, max: 3}}
`

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := scenario.Parse([]byte(wound))
	require.NoError(t, err)

	assert.Equal(t, "wound", s.Name)
	assert.Equal(t, builder.Proximity, s.Rule)
	require.Len(t, s.Cells, 4)
	assert.Equal(t, cell.Microglia, s.Cells[3].Kind)
	assert.Equal(t, 10, s.Cells[3].ID)
	require.NotNil(t, s.Run.Move)
	assert.Equal(t, geom.Bounds{Min: 0, Max: 3}, s.Run.Move.Bounds)
	assert.Equal(t, 20, s.Run.Steps)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	s, err := scenario.Parse([]byte(wound))
	require.NoError(t, err)
	sys, err := s.Build(nil)
	require.NoError(t, err)

	ids := make([]int, len(sys.Cells))
	for i, c := range sys.Cells {
		ids[i] = c.ID()
	}
	assert.Equal(t, []int{1, 2, 3, 10}, ids)
	assert.True(t, sys.Cells[2].Movable())
	assert.False(t, sys.Cells[3].Movable(), "override")

	// one override present: the rest start at 0
	assert.Equal(t, []float64{0, 0, 0.4, 0}, sys.U0)
	assert.Equal(t, []float64{1, 3, 5, 7}, sys.C)
	assert.Equal(t, 3, sys.Graph.Graph().Size())
	assert.Len(t, sys.Options, 1)

	res, err := simulate.Run(context.Background(), sys.Graph, sys.U0, sys.C, sys.Config, sys.Options...)
	require.NoError(t, err)
	assert.Equal(t, 20, res.Completed)
	assert.Len(t, res.Positions, 20)
}

func TestBuild_DefaultDensities(t *testing.T) {
	t.Parallel()

	s, err := scenario.Parse([]byte(`
name: line
rule: linear
cells:
  - {kind: neuron, pos: [0, 0, 0]}
  - {kind: astrocyte, pos: [1, 0, 0]}
  - {kind: microglia, pos: [2, 0, 0]}
attractant: [3, 2, 1]
run: {steps: 1, dt: 0.1}
`))
	require.NoError(t, err)
	sys, err := s.Build(cell.DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5, 0.2}, sys.U0)
	assert.Equal(t, []float64{3, 2, 1}, sys.C)
	assert.Empty(t, sys.Options)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing name":   "rule: linear\ncells: []\nrun: {steps: 1, dt: 0.1}\n",
		"bad dt":         "name: x\nrule: linear\nrun: {steps: 1, dt: 0}\n",
		"radius needed":  "name: x\nrule: proximity\nrun: {steps: 1, dt: 0.1}\n",
		"short pos":      "name: x\nrule: linear\ncells: [{kind: neuron, pos: [1]}]\nrun: {steps: 1, dt: 0.1}\n",
		"both c sources": "name: x\nrule: linear\ncells: [{kind: neuron, pos: [1, 1]}]\nattractant: [1]\ngradient: {axis: 0}\nrun: {steps: 1, dt: 0.1}\n",
		"c length":       "name: x\nrule: linear\ncells: [{kind: neuron, pos: [1, 1]}]\nattractant: [1, 2]\nrun: {steps: 1, dt: 0.1}\n",
		"empty":          "",
	}
	for name, doc := range cases {
		doc := doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := scenario.Parse([]byte(doc))
			require.ErrorIs(t, err, core.ErrConfiguration)
		})
	}

	_, err := scenario.Parse([]byte("name: x\nrule: star\nrun: {steps: 1, dt: 0.1}\n"))
	require.ErrorIs(t, err, builder.ErrUnknownRule)

	_, err = scenario.Parse([]byte("name: x\nrule: linear\ncells: [{kind: pericyte, pos: [0, 0]}]\nrun: {steps: 1, dt: 0.1}\n"))
	require.ErrorIs(t, err, cell.ErrUnknownKind)

	_, err = scenario.Parse([]byte("name: x\nrule: linear\ncolour: red\nrun: {steps: 1, dt: 0.1}\n"))
	require.Error(t, err, "unknown keys are rejected")
}

func TestBuild_IssuedIDsSkipExplicitOnes(t *testing.T) {
	t.Parallel()

	s, err := scenario.Parse([]byte(`
name: mixed
rule: linear
cells:
  - {kind: neuron, pos: [0, 0]}
  - {id: 2, kind: neuron, pos: [1, 0]}
  - {kind: neuron, pos: [2, 0]}
  - {id: 1, kind: neuron, pos: [3, 0]}
  - {kind: neuron, pos: [4, 0]}
run: {steps: 1, dt: 0.1}
`))
	require.NoError(t, err)
	sys, err := s.Build(nil)
	require.NoError(t, err)

	ids := make([]int, len(sys.Cells))
	for i, c := range sys.Cells {
		ids[i] = c.ID()
	}
	assert.Equal(t, []int{3, 2, 4, 1, 5}, ids)
	assert.Equal(t, 4, sys.Graph.Graph().Size())
}

func TestBuild_DuplicateIDs(t *testing.T) {
	t.Parallel()

	s, err := scenario.Parse([]byte(`
name: clash
rule: linear
cells:
  - {id: 1, kind: neuron, pos: [0, 0]}
  - {id: 1, kind: neuron, pos: [1, 0]}
run: {steps: 1, dt: 0.1}
`))
	require.NoError(t, err)
	_, err = s.Build(nil)
	require.ErrorIs(t, err, core.ErrDuplicateVertex)
}

func TestLoadAndMarshal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wound.yaml")
	require.NoError(t, os.WriteFile(path, []byte(wound), 0o600))

	s, err := scenario.Load(path)
	require.NoError(t, err)

	out, err := s.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: microglia")

	again, err := scenario.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, s, again)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestShippedExamples(t *testing.T) {
	t.Parallel()

	paths, err := filepath.Glob(filepath.Join("..", "examples", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()
			s, err := scenario.Load(path)
			require.NoError(t, err)
			sys, err := s.Build(nil)
			require.NoError(t, err)

			res, err := simulate.Run(context.Background(), sys.Graph, sys.U0, sys.C, sys.Config, sys.Options...)
			require.NoError(t, err)
			assert.Equal(t, s.Run.Steps, res.Completed)
			for _, v := range res.Field {
				assert.False(t, math.IsNaN(v), "NaN in field")
			}
		})
	}
}
