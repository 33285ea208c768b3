// Package mesh defines options and sentinel errors for cell-mesh
// construction in github.com/astriden/twopoint.
package mesh

import "errors"

// Sentinel errors for mesh construction.
var (
	// ErrSampleLength indicates coordinate slices of differing lengths.
	ErrSampleLength = errors.New("mesh: coordinate slices must have equal length")
	// ErrBadBox indicates a box with a non-positive period along some axis.
	ErrBadBox = errors.New("mesh: box periods must be positive")
	// ErrBadCellSize indicates a non-positive approximate cell size.
	ErrBadCellSize = errors.New("mesh: approximate cell size must be positive")
	// ErrBadRefine indicates a refinement factor below 1.
	ErrBadRefine = errors.New("mesh: refinement factor must be at least 1")
	// ErrOutOfBox indicates a point outside the box of a non-periodic mesh.
	ErrOutOfBox = errors.New("mesh: point lies outside a non-periodic box")
)

// Options configures mesh construction.
//
// Fields:
//   - CellSize — target physical cell edge. Division counts are
//     floor(period/CellSize), clamped to at least 1, so actual cells are
//     never smaller than CellSize. Setting it to the maximum search
//     radius of the downstream pair count keeps the covered neighborhood
//     at one cell per direction.
//   - Refine — integer refinement of the secondary grid relative to the
//     primary grid in BuildPair: the secondary mesh has Refine times as
//     many divisions along every axis.
type Options struct {
	CellSize float64
	Refine   int
}

// DefaultOptions returns Options targeting cells of the given size with
// no secondary refinement.
func DefaultOptions(cellSize float64) Options {
	return Options{CellSize: cellSize, Refine: 1}
}
