package mesh

import (
	"math"

	"github.com/astriden/twopoint/paircount"
)

// Build sorts one point sample into a rectangular cell grid.
//
// Division counts along each axis are floor(period/CellSize), clamped to
// at least 1; the actual cell size is period/divisions. Points are
// reordered with a counting sort so each cell's points are contiguous,
// and the returned Meshed carries the reordered coordinates plus the
// cell index table the pair-counting engine consumes. The input slices
// are never mutated.
//
// When box.Periodic is set, coordinates are wrapped into [0, period)
// before cell assignment; otherwise points outside the box yield
// ErrOutOfBox.
//
// Complexity: O(N + cells) time and memory.
func Build(x, y, z []float64, box paircount.Box, opts Options) (paircount.Meshed, error) {
	if err := checkInputs(x, y, z, box, opts); err != nil {
		return paircount.Meshed{}, err
	}
	grid := sizeGrid(box, opts.CellSize, 1)

	return sortIntoCells(x, y, z, box, grid)
}

// BuildPair builds the matched double mesh for a cross-correlation: a
// coarse primary grid for the first sample and a secondary grid refined
// by an exact integer factor along every axis for the second. The
// refinement keeps the two grids commensurate, which is what lets the
// engine enumerate candidate secondary cells deterministically.
func BuildPair(x1, y1, z1, x2, y2, z2 []float64, box paircount.Box, opts Options) (p1, p2 paircount.Meshed, err error) {
	if err = checkInputs(x1, y1, z1, box, opts); err != nil {
		return paircount.Meshed{}, paircount.Meshed{}, err
	}
	if len(x2) != len(y2) || len(x2) != len(z2) {
		return paircount.Meshed{}, paircount.Meshed{}, ErrSampleLength
	}
	if opts.Refine < 1 {
		return paircount.Meshed{}, paircount.Meshed{}, ErrBadRefine
	}

	coarse := sizeGrid(box, opts.CellSize, 1)
	fine := sizeGrid(box, opts.CellSize, opts.Refine)

	p1, err = sortIntoCells(x1, y1, z1, box, coarse)
	if err != nil {
		return paircount.Meshed{}, paircount.Meshed{}, err
	}
	p2, err = sortIntoCells(x2, y2, z2, box, fine)
	if err != nil {
		return paircount.Meshed{}, paircount.Meshed{}, err
	}

	return p1, p2, nil
}

// SearchLength returns the physical extent a search radius can reach
// along one axis: the radius itself, unless the box period is smaller.
// It is the quantity covering-step counts are derived from.
func SearchLength(sMax, period float64) float64 {
	if period < sMax {
		return period
	}

	return sMax
}

// sizeGrid derives division counts and actual cell sizes for one box.
// refine multiplies the base divisions along every axis.
func sizeGrid(box paircount.Box, cellSize float64, refine int) paircount.Grid {
	nx := divisions(box.LX, cellSize) * refine
	ny := divisions(box.LY, cellSize) * refine
	nz := divisions(box.LZ, cellSize) * refine

	return paircount.Grid{
		NX: nx, NY: ny, NZ: nz,
		CellX: box.LX / float64(nx),
		CellY: box.LY / float64(ny),
		CellZ: box.LZ / float64(nz),
	}
}

// divisions returns floor(period/cellSize) clamped to at least 1, so
// actual cells are never smaller than the requested size.
func divisions(period, cellSize float64) int {
	n := int(period / cellSize)
	if n < 1 {
		n = 1
	}

	return n
}

// sortIntoCells reorders the sample by cell id with a counting sort and
// fills in the grid's cell index table.
func sortIntoCells(x, y, z []float64, box paircount.Box, grid paircount.Grid) (paircount.Meshed, error) {
	n := len(x)
	// Wrapped copies: periodic points are folded into [0, period) so the
	// stored coordinate always matches the assigned cell.
	wx := make([]float64, n)
	wy := make([]float64, n)
	wz := make([]float64, n)
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ix, vx, err := axisCell(x[i], box.LX, grid.CellX, grid.NX, box.Periodic)
		if err != nil {
			return paircount.Meshed{}, err
		}
		iy, vy, err := axisCell(y[i], box.LY, grid.CellY, grid.NY, box.Periodic)
		if err != nil {
			return paircount.Meshed{}, err
		}
		iz, vz, err := axisCell(z[i], box.LZ, grid.CellZ, grid.NZ, box.Periodic)
		if err != nil {
			return paircount.Meshed{}, err
		}
		wx[i], wy[i], wz[i] = vx, vy, vz
		ids[i] = ix*(grid.NY*grid.NZ) + iy*grid.NZ + iz
	}

	numCells := grid.NumCells()
	start := make([]int, numCells+1)
	for _, id := range ids {
		start[id+1]++
	}
	for c := 1; c <= numCells; c++ {
		start[c] += start[c-1]
	}

	out := paircount.Sample{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
	cursor := make([]int, numCells)
	copy(cursor, start[:numCells])
	for i, id := range ids {
		at := cursor[id]
		cursor[id]++
		out.X[at] = wx[i]
		out.Y[at] = wy[i]
		out.Z[at] = wz[i]
	}

	grid.CellStart = start

	return paircount.Meshed{Sample: out, Grid: grid}, nil
}

// axisCell maps one coordinate to its cell index along an axis, wrapping
// into the box when periodic, and returns the possibly wrapped
// coordinate. The top box face maps into the last cell.
func axisCell(v, period, cellSize float64, n int, periodic bool) (int, float64, error) {
	if periodic {
		v = math.Mod(v, period)
		if v < 0 {
			v += period
		}
	} else if v < 0 || v > period {
		return 0, 0, ErrOutOfBox
	}
	c := int(v / cellSize)
	if c >= n {
		c = n - 1
	}

	return c, v, nil
}

func checkInputs(x, y, z []float64, box paircount.Box, opts Options) error {
	if len(x) != len(y) || len(x) != len(z) {
		return ErrSampleLength
	}
	if box.LX <= 0 || box.LY <= 0 || box.LZ <= 0 {
		return ErrBadBox
	}
	if opts.CellSize <= 0 {
		return ErrBadCellSize
	}

	return nil
}
