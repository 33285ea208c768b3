// Package paircount defines core types, options, and sentinel errors
// for the paircount subpackage of github.com/astriden/twopoint.
package paircount

import (
	"errors"
	"runtime"
)

// Sentinel errors for pair-counting operations.
var (
	// ErrEmptyBins indicates a bin-edge slice with no entries.
	ErrEmptyBins = errors.New("paircount: bin edges must contain at least one entry")
	// ErrBinsNotAscending indicates bin edges that are not strictly increasing.
	ErrBinsNotAscending = errors.New("paircount: bin edges must be strictly ascending")
	// ErrSampleLength indicates coordinate slices of differing lengths.
	ErrSampleLength = errors.New("paircount: sample coordinate slices must have equal length")
	// ErrCellTable indicates a malformed cell index table.
	ErrCellTable = errors.New("paircount: cell index table must be non-decreasing with NumCells+1 entries")
	// ErrBadGrid indicates non-positive division counts or cell sizes.
	ErrBadGrid = errors.New("paircount: grid divisions and cell sizes must be positive")
	// ErrGridRatio indicates secondary grid divisions that are not an
	// integer multiple of the primary grid divisions along every axis.
	ErrGridRatio = errors.New("paircount: secondary grid must be an integer refinement of the primary grid")
	// ErrWorkRange indicates a work range outside [0, NumCells] or with First > Last.
	ErrWorkRange = errors.New("paircount: work range out of bounds")
	// ErrBadBox indicates a box with a non-positive period along some axis.
	ErrBadBox = errors.New("paircount: box periods must be positive")
	// ErrShapeMismatch indicates an element-wise operation on matrices of different shapes.
	ErrShapeMismatch = errors.New("paircount: matrix shapes do not match")
)

// Sample holds one point cloud as three parallel coordinate slices.
// Points must already be grouped contiguously by the cell they fall in;
// mesh.Build produces samples in this layout.
type Sample struct {
	X, Y, Z []float64
}

// Len returns the number of points in the sample.
func (s Sample) Len() int { return len(s.X) }

// Grid describes the rectangular cell decomposition of one sample.
//
// Cells are addressed by the row-major linear id ix*(NY*NZ) + iy*NZ + iz.
// CellStart has NumCells()+1 entries: points of cell c occupy the
// half-open index range [CellStart[c], CellStart[c+1]) of the sample's
// coordinate slices.
type Grid struct {
	// NX, NY, NZ are the division counts along each axis.
	NX, NY, NZ int
	// CellX, CellY, CellZ are the physical cell sizes along each axis.
	CellX, CellY, CellZ float64
	// CellStart maps cell id to the start of its point range; the final
	// entry equals the sample length.
	CellStart []int
}

// NumCells returns the total number of cells in the grid.
func (g Grid) NumCells() int { return g.NX * g.NY * g.NZ }

// cellID forms the row-major linear id of cell (ix, iy, iz).
func (g Grid) cellID(ix, iy, iz int) int { return ix*(g.NY*g.NZ) + iy*g.NZ + iz }

// Meshed pairs a cell-sorted sample with its grid. It is the unit the
// engine consumes; build one per sample with the mesh package or by hand.
type Meshed struct {
	Sample Sample
	Grid   Grid
}

// Box describes the rectangular volume containing both samples.
// When Periodic is true, separations wrap through the box faces;
// otherwise the periods only bound the mesh extent.
type Box struct {
	LX, LY, LZ float64
	Periodic   bool
}

// WorkRange is a half-open [First, Last) range of primary-cell linear ids.
// Disjoint contiguous ranges partition the full cell space for external
// parallelization: their raw count matrices sum exactly.
type WorkRange struct {
	First, Last int
}

// Options configures the parallel Count orchestrator.
//
// Fields:
//   - Workers — number of concurrent work ranges. Values < 1 fall back
//     to runtime.GOMAXPROCS(0).
type Options struct {
	Workers int
}

// DefaultOptions returns Options with Workers set to GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}
