package mesh_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astriden/twopoint/mesh"
	"github.com/astriden/twopoint/paircount"
)

// TestBuild_Validation exercises the boundary rejections.
func TestBuild_Validation(t *testing.T) {
	box := paircount.Box{LX: 10, LY: 10, LZ: 10}

	t.Run("sample length", func(t *testing.T) {
		_, err := mesh.Build([]float64{1}, []float64{1, 2}, []float64{1}, box, mesh.DefaultOptions(2))
		assert.ErrorIs(t, err, mesh.ErrSampleLength)
	})

	t.Run("bad box", func(t *testing.T) {
		_, err := mesh.Build([]float64{1}, []float64{1}, []float64{1},
			paircount.Box{LX: 0, LY: 10, LZ: 10}, mesh.DefaultOptions(2))
		assert.ErrorIs(t, err, mesh.ErrBadBox)
	})

	t.Run("bad cell size", func(t *testing.T) {
		_, err := mesh.Build([]float64{1}, []float64{1}, []float64{1}, box, mesh.DefaultOptions(0))
		assert.ErrorIs(t, err, mesh.ErrBadCellSize)
	})

	t.Run("out of box", func(t *testing.T) {
		_, err := mesh.Build([]float64{-1}, []float64{1}, []float64{1}, box, mesh.DefaultOptions(2))
		assert.ErrorIs(t, err, mesh.ErrOutOfBox)
	})

	t.Run("bad refine", func(t *testing.T) {
		_, _, err := mesh.BuildPair([]float64{1}, []float64{1}, []float64{1},
			[]float64{1}, []float64{1}, []float64{1}, box, mesh.Options{CellSize: 2, Refine: 0})
		assert.ErrorIs(t, err, mesh.ErrBadRefine)
	})
}

// TestBuild_GridSizing verifies division counts are floor(period/size)
// clamped to one, with actual cell sizes covering the box exactly.
func TestBuild_GridSizing(t *testing.T) {
	box := paircount.Box{LX: 10, LY: 7, LZ: 3}
	p, err := mesh.Build(nil, nil, nil, box, mesh.DefaultOptions(4))
	require.NoError(t, err)

	assert.Equal(t, 2, p.Grid.NX, "floor(10/4)")
	assert.Equal(t, 1, p.Grid.NY, "floor(7/4)")
	assert.Equal(t, 1, p.Grid.NZ, "clamped to one division")
	assert.InDelta(t, 5.0, p.Grid.CellX, 1e-12, "actual cell spans the period exactly")
	assert.InDelta(t, 7.0, p.Grid.CellY, 1e-12)
	assert.InDelta(t, 3.0, p.Grid.CellZ, 1e-12)
}

// TestBuild_CellTableInvariants checks the index table on a random
// sample: monotone, correct total, and every point stored in the cell
// its coordinates select.
func TestBuild_CellTableInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := 500
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64() * 10
		y[i] = rng.Float64() * 10
		z[i] = rng.Float64() * 10
	}
	box := paircount.Box{LX: 10, LY: 10, LZ: 10, Periodic: true}
	p, err := mesh.Build(x, y, z, box, mesh.DefaultOptions(2))
	require.NoError(t, err)

	g := p.Grid
	require.Len(t, g.CellStart, g.NumCells()+1)
	assert.Equal(t, 0, g.CellStart[0])
	assert.Equal(t, n, g.CellStart[g.NumCells()], "table ends at the sample length")

	for c := 0; c < g.NumCells(); c++ {
		require.LessOrEqual(t, g.CellStart[c], g.CellStart[c+1], "table must be non-decreasing")
		iz := c % g.NZ
		iy := (c / g.NZ) % g.NY
		ix := c / (g.NY * g.NZ)
		for i := g.CellStart[c]; i < g.CellStart[c+1]; i++ {
			assert.Equal(t, ix, int(p.Sample.X[i]/g.CellX), "x cell of point %d", i)
			assert.Equal(t, iy, int(p.Sample.Y[i]/g.CellY), "y cell of point %d", i)
			assert.Equal(t, iz, int(p.Sample.Z[i]/g.CellZ), "z cell of point %d", i)
		}
	}
}

// TestBuild_PeriodicWrap verifies out-of-box coordinates fold into
// [0, period) before cell assignment.
func TestBuild_PeriodicWrap(t *testing.T) {
	box := paircount.Box{LX: 10, LY: 10, LZ: 10, Periodic: true}
	p, err := mesh.Build([]float64{-0.5, 12.5}, []float64{3, 3}, []float64{3, 3}, box, mesh.DefaultOptions(2))
	require.NoError(t, err)

	// Sorted order: 2.5 (cell 1) before 9.5 (cell 4).
	assert.InDelta(t, 2.5, p.Sample.X[0], 1e-12, "12.5 wraps to 2.5")
	assert.InDelta(t, 9.5, p.Sample.X[1], 1e-12, "-0.5 wraps to 9.5")
}

// TestBuild_TopFaceLandsInside verifies a non-periodic point at exactly
// the box period falls in the last cell instead of overflowing.
func TestBuild_TopFaceLandsInside(t *testing.T) {
	box := paircount.Box{LX: 10, LY: 10, LZ: 10}
	p, err := mesh.Build([]float64{10}, []float64{10}, []float64{10}, box, mesh.DefaultOptions(2))
	require.NoError(t, err)

	last := p.Grid.NumCells()
	assert.Equal(t, 1, p.Grid.CellStart[last]-p.Grid.CellStart[last-1],
		"the top-face point sits in the final cell")
}

// TestBuildPair_RefinementRatio verifies the secondary grid divisions
// are the primary divisions times the refinement factor on every axis,
// and that the result passes the engine's ratio validation.
func TestBuildPair_RefinementRatio(t *testing.T) {
	box := paircount.Box{LX: 20, LY: 20, LZ: 20, Periodic: true}
	x := []float64{1, 5, 19}
	p1, p2, err := mesh.BuildPair(x, x, x, x, x, x, box, mesh.Options{CellSize: 4, Refine: 3})
	require.NoError(t, err)

	assert.Equal(t, 5, p1.Grid.NX)
	assert.Equal(t, 15, p2.Grid.NX, "refined by 3")
	assert.Equal(t, p1.Grid.NY*3, p2.Grid.NY)
	assert.Equal(t, p1.Grid.NZ*3, p2.Grid.NZ)

	_, err = paircount.CountRange(p1, p2, box, []float64{1}, []float64{1},
		paircount.WorkRange{First: 0, Last: p1.Grid.NumCells()})
	assert.NoError(t, err, "refined pair must satisfy the engine's grid-ratio check")
}

// TestSearchLength verifies the derived search extent caps at the box
// period.
func TestSearchLength(t *testing.T) {
	assert.Equal(t, 2.0, mesh.SearchLength(2, 10), "radius smaller than the box")
	assert.Equal(t, 10.0, mesh.SearchLength(12, 10), "radius capped by the box")
}

// TestBuild_DoesNotMutateInput verifies the input slices survive
// construction untouched.
func TestBuild_DoesNotMutateInput(t *testing.T) {
	box := paircount.Box{LX: 10, LY: 10, LZ: 10, Periodic: true}
	x := []float64{9, 1, 5}
	y := []float64{2, 8, 5}
	z := []float64{7, 3, 5}
	_, err := mesh.Build(x, y, z, box, mesh.DefaultOptions(2))
	require.NoError(t, err)

	assert.Equal(t, []float64{9, 1, 5}, x, "input x untouched")
	assert.Equal(t, []float64{2, 8, 5}, y, "input y untouched")
	assert.Equal(t, []float64{7, 3, 5}, z, "input z untouched")
}
