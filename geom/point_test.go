package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDist(t *testing.T) {
	t.Parallel()

	d, err := geom.Pt2(0, 0).Dist(geom.Pt2(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	d, err = geom.Pt3(1, 2, 3).Dist(geom.Pt3(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	_, err = geom.Pt2(0, 0).Dist(geom.Pt3(0, 0, 1))
	require.ErrorIs(t, err, geom.ErrDimension)
	require.ErrorIs(t, err, core.ErrValidation)
}

func TestFromCoords(t *testing.T) {
	t.Parallel()

	p, err := geom.FromCoords([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Dim())
	assert.Equal(t, []float64{1, 2, 3}, p.Coords())

	_, err = geom.FromCoords([]float64{1})
	require.ErrorIs(t, err, geom.ErrDimension)

	_, err = geom.FromCoords([]float64{1, math.NaN()})
	require.ErrorIs(t, err, core.ErrNonFinite)
}

func TestOffset(t *testing.T) {
	t.Parallel()

	p, err := geom.Pt2(1, 1).Offset([]float64{0.5, -1})
	require.NoError(t, err)
	assert.True(t, p.Equal(geom.Pt2(1.5, 0)))

	_, err = geom.Pt2(1, 1).Offset([]float64{1, 2, 3})
	require.ErrorIs(t, err, geom.ErrDimension)
}

func TestBounds(t *testing.T) {
	t.Parallel()

	b := geom.Bounds{Min: 0, Max: 3}
	require.NoError(t, b.Validate())

	assert.Equal(t, geom.Pt2(0, 3), b.Clamp(geom.Pt2(-1, 7)))
	assert.Equal(t, geom.Pt3(1, 0, 3), b.Clamp(geom.Pt3(1, -0.1, 3.2)))
	assert.True(t, b.Contains(geom.Pt2(0, 3)))
	assert.False(t, b.Contains(geom.Pt2(0, 3.01)))

	require.ErrorIs(t, geom.Bounds{Min: 2, Max: 1}.Validate(), geom.ErrBounds)
	require.ErrorIs(t, geom.Bounds{Min: 0, Max: math.Inf(1)}.Validate(), geom.ErrBounds)
}
