// SPDX-License-Identifier: MIT

package cellgraph_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/cellgraph/builder"
	"github.com/katalvlaran/cellgraph/cell"
	"github.com/katalvlaran/cellgraph/cellgraph"
	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tissue returns neuron, astrocyte, microglia, microglia on a line.
func tissue() []cellgraph.Entity {
	return []cellgraph.Entity{
		cell.New(1, cell.Neuron, geom.Pt2(0, 0)),
		cell.New(2, cell.Astrocyte, geom.Pt2(1, 0)),
		cell.New(3, cell.Microglia, geom.Pt2(2, 0), cell.WithMovable(true)),
		cell.New(4, cell.Microglia, geom.Pt2(3, 0), cell.WithMovable(true)),
	}
}

func TestNew_LinearTopology(t *testing.T) {
	t.Parallel()

	eg, err := cellgraph.New(tissue(), builder.Linear)
	require.NoError(t, err)

	g := eg.Graph()
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, g.EdgeIndices())
	assert.Equal(t, builder.Linear, eg.Rule())

	for i, v := range g.Vertices() {
		assert.Equal(t, i+1, v.ID())
		val, ok := v.Value()
		assert.True(t, ok)
		assert.Equal(t, 0.0, val)
	}
	assert.Equal(t, []cell.Kind{cell.Neuron, cell.Astrocyte, cell.Microglia, cell.Microglia}, eg.Kinds())
	assert.True(t, eg.Mobile())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := cellgraph.New(tissue(), builder.Rule("hexagonal"))
	require.ErrorIs(t, err, builder.ErrUnknownRule)
	require.ErrorIs(t, err, core.ErrConfiguration)

	_, err = cellgraph.New([]cellgraph.Entity{nil}, builder.Linear)
	require.ErrorIs(t, err, cellgraph.ErrNilEntity)

	dup := []cellgraph.Entity{
		cell.New(1, cell.Neuron, geom.Pt2(0, 0)),
		cell.New(1, cell.Neuron, geom.Pt2(1, 0)),
	}
	_, err = cellgraph.New(dup, builder.Linear)
	require.ErrorIs(t, err, core.ErrDuplicateVertex)
}

func TestNew_ZeroAndOneEntity(t *testing.T) {
	t.Parallel()

	for _, rule := range []builder.Rule{builder.Linear, builder.FullyConnected, builder.Ring} {
		empty, err := cellgraph.New(nil, rule)
		require.NoError(t, err, rule)
		assert.Equal(t, 0, empty.Graph().Size())

		one, err := cellgraph.New([]cellgraph.Entity{cell.New(7, cell.Neuron, geom.Pt2(0, 0))}, rule)
		require.NoError(t, err, rule)
		assert.Equal(t, 1, one.Order())
		assert.Equal(t, 0, one.Graph().Size())
	}
}

func TestInitialDensity(t *testing.T) {
	t.Parallel()

	eg, err := cellgraph.New(tissue(), builder.Linear)
	require.NoError(t, err)

	u, err := eg.InitialDensity(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 0.5, 0.2, 0.2}, u)

	u, err = eg.InitialDensity(map[int]float64{2: 3, 4: 7})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 0, 7}, u)

	odd, err := cellgraph.New([]cellgraph.Entity{cell.New(1, cell.Kind(99), geom.Pt2(0, 0))}, builder.Linear)
	require.NoError(t, err)
	_, err = odd.InitialDensity(nil)
	require.ErrorIs(t, err, cell.ErrUnknownKind)
}

func TestRebuild_Idempotent(t *testing.T) {
	t.Parallel()

	eg, err := cellgraph.New(tissue(), builder.FullyConnected)
	require.NoError(t, err)
	before := eg.Graph().EdgeIndices()

	require.NoError(t, eg.Rebuild(builder.FullyConnected))
	assert.Equal(t, before, eg.Graph().EdgeIndices())
	assert.Equal(t, 6, eg.Graph().Size())

	require.NoError(t, eg.Rebuild(builder.Ring))
	assert.Equal(t, 4, eg.Graph().Size())
	assert.Equal(t, builder.Ring, eg.Rule())

	// rule names resolve like builder.Lookup and are stored canonically
	require.NoError(t, eg.Rebuild("Fully-Connected"))
	assert.Equal(t, builder.FullyConnected, eg.Rule())
	assert.Equal(t, 6, eg.Graph().Size())
	require.NoError(t, eg.Rebuild(" RING "))
	assert.Equal(t, builder.Ring, eg.Rule())

	// a failing rebuild keeps the last good topology
	require.ErrorIs(t, eg.Rebuild(builder.Rule("nope")), builder.ErrUnknownRule)
	assert.Equal(t, builder.Ring, eg.Rule())
	assert.Equal(t, 4, eg.Graph().Size())
}

func TestAdvancePositions(t *testing.T) {
	t.Parallel()

	eg, err := cellgraph.New(tissue(), builder.Linear, cellgraph.WithSeed(42))
	require.NoError(t, err)
	bounds := geom.Bounds{Min: 0, Max: 3}

	moved, err := eg.AdvancePositions(0.5, bounds)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	pos := eg.Positions()
	assert.Equal(t, geom.Pt2(0, 0), pos[1], "neuron is fixed")
	assert.Equal(t, geom.Pt2(1, 0), pos[2], "astrocyte is fixed")
	for _, id := range []int{3, 4} {
		assert.True(t, bounds.Contains(pos[id]), "entity %d at %v", id, pos[id])
	}

	// entity state and the snapshot agree
	for i, e := range eg.Entities() {
		assert.Equal(t, e.Position(), eg.PositionList()[i])
	}

	_, err = eg.AdvancePositions(-1, bounds)
	require.ErrorIs(t, err, cellgraph.ErrStepSize)
	_, err = eg.AdvancePositions(1, geom.Bounds{Min: 1, Max: 0})
	require.ErrorIs(t, err, geom.ErrBounds)
}

func TestAdvancePositions_ClampsIntoBounds(t *testing.T) {
	t.Parallel()

	ents := []cellgraph.Entity{cell.New(1, cell.Microglia, geom.Pt3(0, 0, 0), cell.WithMovable(true))}
	eg, err := cellgraph.New(ents, builder.Linear, cellgraph.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)

	b := geom.Bounds{Min: 0, Max: 0.1}
	for i := 0; i < 50; i++ {
		_, err = eg.AdvancePositions(10, b)
		require.NoError(t, err)
		assert.True(t, b.Contains(eg.Positions()[1]))
	}
	assert.Len(t, ents[0].(*cell.Cell).History(), 51)
}

func TestAdvancePositions_SameSeedSameTrajectory(t *testing.T) {
	t.Parallel()

	run := func() []geom.Point {
		eg, err := cellgraph.New(tissue(), builder.Linear, cellgraph.WithSeed(7))
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			_, err = eg.AdvancePositions(0.3, geom.Bounds{Min: -10, Max: 10})
			require.NoError(t, err)
		}
		return eg.PositionList()
	}
	assert.Equal(t, run(), run())
}

func TestProximityRebuildFollowsMovement(t *testing.T) {
	t.Parallel()

	a := cell.New(1, cell.Microglia, geom.Pt2(0, 0), cell.WithMovable(true))
	b := cell.New(2, cell.Neuron, geom.Pt2(5, 0))
	eg, err := cellgraph.New([]cellgraph.Entity{a, b}, builder.Proximity,
		cellgraph.WithBuilderOptions(builder.WithRadius(1)))
	require.NoError(t, err)
	assert.Equal(t, 0, eg.Graph().Size())

	require.NoError(t, a.MoveTo(geom.Pt2(4.5, 0)))
	require.NoError(t, eg.Rebuild(builder.Proximity))
	assert.Equal(t, 0, eg.Graph().Size(), "map not refreshed yet")

	eg.Refresh()
	require.NoError(t, eg.Rebuild(builder.Proximity))
	assert.Equal(t, 1, eg.Graph().Size())
}

func TestDivergenceAndReaction(t *testing.T) {
	t.Parallel()

	eg, err := cellgraph.New(tissue(), builder.Linear)
	require.NoError(t, err)

	div, err := eg.Divergence([]float64{1, 1, 1, 1}, []float64{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, -1}, div)

	r, err := eg.Reaction([]float64{0.5, 2, 9, 9}, []float64{0, 0, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.025, r[0], 1e-15)
	assert.InDelta(t, -0.1, r[1], 1e-15)
	assert.InDelta(t, 0.02, r[2], 1e-15)
	assert.InDelta(t, 0.04, r[3], 1e-15)

	_, err = eg.Reaction([]float64{1}, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, core.ErrFieldLength)
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	eg, err := cellgraph.New(tissue(), builder.FullyConnected, cellgraph.WithSeed(3))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				_, _ = eg.AdvancePositions(0.1, geom.Bounds{Min: 0, Max: 3})
				_ = eg.Rebuild(builder.FullyConnected)
				_ = eg.Positions()
				_ = eg.Graph()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 6, eg.Graph().Size())
}

func TestEvolve_MovesThenRebuilds(t *testing.T) {
	t.Parallel()

	a := cell.New(1, cell.Microglia, geom.Pt2(0, 0), cell.WithMovable(true))
	b := cell.New(2, cell.Neuron, geom.Pt2(0.5, 0))
	eg, err := cellgraph.New([]cellgraph.Entity{a, b}, builder.Proximity,
		cellgraph.WithSeed(11), cellgraph.WithBuilderOptions(builder.WithRadius(1)))
	require.NoError(t, err)
	require.Equal(t, 1, eg.Graph().Size())

	// bounds pin the mover far away, so the rebuilt graph has no edge
	snap, g, err := eg.Evolve(0.1, geom.Bounds{Min: 10, Max: 10}, builder.Proximity)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt2(10, 10), geom.Pt2(0.5, 0)}, snap)
	assert.Equal(t, 0, g.Size())
	assert.Same(t, g, eg.Graph())

	_, _, err = eg.Evolve(-1, geom.Bounds{Min: 0, Max: 1}, builder.Proximity)
	require.ErrorIs(t, err, cellgraph.ErrStepSize)

	// rule failure: moved, but the last good graph stays
	snap, g, err = eg.Evolve(0, geom.Bounds{Min: 10, Max: 10}, builder.Rule("nope"))
	require.ErrorIs(t, err, builder.ErrUnknownRule)
	assert.Nil(t, g)
	assert.Len(t, snap, 2)
	assert.Equal(t, builder.Proximity, eg.Rule())
}
