package analyze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruoitrau86/differentiable-atomistic-potentials/geom"
	"github.com/ruoitrau86/differentiable-atomistic-potentials/neighborlist"
)

// triangleGrid is three bonded atoms in a cell too large for images: bond
// lengths 0.9686, 0.9686, and 1.5265.
func triangleGrid(t *testing.T) *neighborlist.DistanceGrid {
	half := 1.5265 / 2
	leg := math.Sqrt(0.9686*0.9686 - half*half)
	positions := []geom.Vec{
		{5, 5, 5},
		{5 + leg, 5 + half, 5},
		{5 + leg, 5 - half, 5},
	}
	g, err := neighborlist.Distances(positions, geom.CubicCell(20), 3.0)
	require.NoError(t, err)
	return g
}

// fccGrid is a single fcc atom with its twelve first-shell images at
// 3.6/sqrt(2).
func fccGrid(t *testing.T) *neighborlist.DistanceGrid {
	cell := geom.Cell{{0, 1.8, 1.8}, {1.8, 0, 1.8}, {1.8, 1.8, 0}}
	g, err := neighborlist.Distances([]geom.Vec{{0, 0, 0}}, cell, 3.0)
	require.NoError(t, err)
	return g
}

func loneGrid(t *testing.T) *neighborlist.DistanceGrid {
	g, err := neighborlist.Distances([]geom.Vec{{1, 1, 1}}, geom.CubicCell(30), 2.0)
	require.NoError(t, err)
	return g
}

func TestCoordination(t *testing.T) {
	assert.Equal(t, []int{2, 2, 2}, Coordination(triangleGrid(t)))
	assert.Equal(t, []int{12}, Coordination(fccGrid(t)))
	assert.Equal(t, []int{0}, Coordination(loneGrid(t)))
}

func TestPairDistances(t *testing.T) {
	ds := PairDistances(triangleGrid(t))
	require.Len(t, ds, 3)
	assert.InDelta(t, 0.9686, ds[0], 1e-9)
	assert.InDelta(t, 0.9686, ds[1], 1e-9)
	assert.InDelta(t, 1.5265, ds[2], 1e-9)

	// Each bond once: half the bothways total.
	fcc := fccGrid(t)
	ds = PairDistances(fcc)
	require.Len(t, ds, 6)
	for _, d := range ds {
		assert.InDelta(t, 3.6/math.Sqrt2, d, 1e-9)
	}

	assert.Empty(t, PairDistances(loneGrid(t)))
}

func TestMinimumDistance(t *testing.T) {
	d, ok := MinimumDistance(triangleGrid(t))
	require.True(t, ok)
	assert.InDelta(t, 0.9686, d, 1e-9)

	_, ok = MinimumDistance(loneGrid(t))
	assert.False(t, ok)
}

func TestDistanceHistogram(t *testing.T) {
	centers, counts, err := DistanceHistogram(fccGrid(t), 3, 3.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 2.5}, centers)
	assert.Equal(t, []float64{0, 0, 6}, counts)

	// A range below every bond still yields a full set of empty bins.
	_, counts, err = DistanceHistogram(fccGrid(t), 2, 1.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, counts)

	_, _, err = DistanceHistogram(fccGrid(t), 0, 3.0)
	assert.Error(t, err)
	_, _, err = DistanceHistogram(fccGrid(t), 3, 0)
	assert.Error(t, err)
}
