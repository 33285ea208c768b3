// Package mesh sorts 3-D point samples into rectangular cell grids for
// the pair-counting engine.
//
// 🚀 What is mesh?
//
//	The spatial decomposition step of a correlation-function pipeline:
//	it sizes a uniform grid to a rectangular box, assigns every point to
//	a cell, reorders the sample so each cell's points are contiguous,
//	and records the per-cell index table. A matched "double mesh" —
//	a coarse primary grid plus an integer-refined secondary grid —
//	is what lets the engine enumerate candidate neighbor cells
//	deterministically.
//
// ✨ Key features:
//   - counting-sort reordering: O(N + cells), no comparisons
//   - periodic wrapping of out-of-box points into [0, period)
//   - exact integer refinement between the two grids of a cross-pair
//   - actual cells never smaller than the requested size, so covering
//     steps stay bounded
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/astriden/twopoint/mesh"
//	    "github.com/astriden/twopoint/paircount"
//	)
//
//	box := paircount.Box{LX: 250, LY: 250, LZ: 250, Periodic: true}
//	p1, p2, err := mesh.BuildPair(x1, y1, z1, x2, y2, z2, box, mesh.DefaultOptions(sMax))
//	cum, err := paircount.Count(p1, p2, box, sBins, muBins, paircount.DefaultOptions())
//
// Choosing CellSize: the maximum search radius is the natural target —
// larger cells waste inner-loop comparisons, smaller cells widen the
// covered neighborhood.
package mesh
