package paircount

import "math"

// CountRange - cell-mesh pair counting over one primary work range.
//
// Description:
//
//	For every pair of points drawn one from each meshed sample, with the
//	first point in a primary cell inside wr, CountRange classifies the
//	pair by its total separation s and angular proxy mu = |dz|/s and
//	accumulates a raw per-bin histogram. The cell meshes restrict the
//	comparison to secondary cells within the maximum search radius, so
//	the cost is proportional to the true neighbor count rather than
//	Len1·Len2.
//
// Algorithm Outline:
//  1. Precompute sMax = max(sBins), muMax = max(muBins), the per-axis
//     covering-step counts ceil(min(sMax, period)/secondaryCellSize),
//     and the per-axis secondary/primary division ratios.
//  2. For each primary cell id in [wr.First, wr.Last): decompose it into
//     grid coordinates, skip when empty, and enumerate the unclamped
//     candidate secondary range [ix*ratio-cover, (ix+1)*ratio+cover)
//     along each axis.
//  3. Candidate coordinates outside [0, N) wrap to the far side of the
//     grid and carry a coordinate shift of ±period (0 when the box is
//     not periodic; wrap indexing still applies so only valid cells are
//     touched).
//  4. For each point pair, difference the shifted primary point against
//     the secondary point, form s = sqrt(dx²+dy²+dz²) and
//     mu = |dz|/s (mu = 0 when s = 0), discard pairs beyond sMax or
//     muMax, and increment the bin located by downward scan: the largest
//     k with s > sBins[k], so a value equal to an edge stays in the
//     lower bin.
//
// The output is raw (non-cumulative); call Cumulate on the summed result.
// Inputs are never mutated, and every invocation owns its output matrix,
// so disjoint ranges may run concurrently over shared inputs.
//
// Preconditions (validated up front, returning a sentinel error):
//   - coordinate slices of equal length per sample;
//   - cell tables non-decreasing, length NumCells+1, final entry = length;
//   - secondary divisions an exact integer multiple of primary divisions;
//   - bin edges non-empty and strictly ascending;
//   - 0 ≤ wr.First ≤ wr.Last ≤ primary NumCells;
//   - box periods positive.
//
// Not validated: covering ranges that wrap more than once around an axis
// (possible only when the search radius exceeds the box period) produce
// duplicate visits; keep sMax below the smallest period.
//
// Complexity: O(cells in range · neighbor cells · pts/cell²).
func CountRange(p1, p2 Meshed, box Box, sBins, muBins []float64, wr WorkRange) (*Matrix, error) {
	if err := validate(p1, p2, box, sBins, muBins, wr); err != nil {
		return nil, err
	}

	return countRange(p1, p2, box, sBins, muBins, wr), nil
}

// countRange is the hot path; callers have already validated inputs.
func countRange(p1, p2 Meshed, box Box, sBins, muBins []float64, wr WorkRange) *Matrix {
	m := NewMatrix(len(sBins), len(muBins))

	s1, g1 := p1.Sample, p1.Grid
	s2, g2 := p2.Sample, p2.Grid

	sMax := sBins[len(sBins)-1]
	muMax := muBins[len(muBins)-1]

	// Covering steps derive from the secondary cell size only; the
	// refinement-ratio invariant guarantees this covers the primary cell.
	coverX := coveringSteps(searchLength(sMax, box.LX), g2.CellX)
	coverY := coveringSteps(searchLength(sMax, box.LY), g2.CellY)
	coverZ := coveringSteps(searchLength(sMax, box.LZ), g2.CellZ)

	ratioX := g2.NX / g1.NX
	ratioY := g2.NY / g1.NY
	ratioZ := g2.NZ / g1.NZ

	var pbc float64
	if box.Periodic {
		pbc = 1
	}

	nyz1 := g1.NY * g1.NZ
	nyz2 := g2.NY * g2.NZ

	for icell1 := wr.First; icell1 < wr.Last; icell1++ {
		lo1, hi1 := g1.CellStart[icell1], g1.CellStart[icell1+1]
		if lo1 == hi1 {
			continue
		}
		ix1 := icell1 / nyz1
		iy1 := (icell1 % nyz1) / g1.NZ
		iz1 := icell1 % g1.NZ

		for cx := ix1*ratioX - coverX; cx < (ix1+1)*ratioX+coverX; cx++ {
			ix2, shiftX := wrapCell(cx, g2.NX, box.LX, pbc)
			for cy := iy1*ratioY - coverY; cy < (iy1+1)*ratioY+coverY; cy++ {
				iy2, shiftY := wrapCell(cy, g2.NY, box.LY, pbc)
				for cz := iz1*ratioZ - coverZ; cz < (iz1+1)*ratioZ+coverZ; cz++ {
					iz2, shiftZ := wrapCell(cz, g2.NZ, box.LZ, pbc)

					icell2 := ix2*nyz2 + iy2*g2.NZ + iz2
					lo2, hi2 := g2.CellStart[icell2], g2.CellStart[icell2+1]
					if lo2 == hi2 {
						continue
					}

					for i := lo1; i < hi1; i++ {
						// Shift the primary point by the periodic offset
						// once, outside the inner loop.
						px := s1.X[i] - shiftX
						py := s1.Y[i] - shiftY
						pz := s1.Z[i] - shiftZ

						for j := lo2; j < hi2; j++ {
							dx := px - s2.X[j]
							dy := py - s2.Y[j]
							dz := pz - s2.Z[j]

							perpSq := dx*dx + dy*dy
							losSq := dz * dz
							s := math.Sqrt(perpSq + losSq)

							var mu float64
							if s != 0 {
								// Coincident points: mu stays 0.
								mu = math.Sqrt(losSq) / s
							}
							if s > sMax || mu > muMax {
								continue
							}

							k := lowerBin(s, sBins)
							g := lowerBin(mu, muBins)
							m.counts[(k+1)*m.nmu+(g+1)]++
						}
					}
				}
			}
		}
	}

	return m
}

// searchLength returns the physical extent the search radius can reach
// along one axis: the radius itself, unless the box is smaller.
func searchLength(sMax, period float64) float64 {
	if period < sMax {
		return period
	}

	return sMax
}

// coveringSteps returns the number of secondary cells per direction that
// guarantee no in-range point is missed along one axis.
func coveringSteps(searchLen, cellSize float64) int {
	return int(math.Ceil(searchLen / cellSize))
}

// wrapCell maps an unclamped candidate cell coordinate into [0, n) and
// reports the coordinate shift to apply to primary points before
// differencing. The shift is exactly 0 when pbc is 0, but the index
// still wraps so cells outside the box are never touched.
func wrapCell(c, n int, period, pbc float64) (int, float64) {
	switch {
	case c < 0:
		return c + n, -period * pbc
	case c >= n:
		return c - n, period * pbc
	default:
		return c, 0
	}
}

// lowerBin returns the largest index k with v > edges[k], or -1 when v
// is at or below the first edge. Bins are right-inclusive: equality with
// an edge stays in the lower bin. Scans downward from the second-to-last
// edge; callers have already discarded v > edges[len-1].
func lowerBin(v float64, edges []float64) int {
	k := len(edges) - 2
	for k >= 0 && v <= edges[k] {
		k--
	}

	return k
}

// validate rejects malformed inputs at the boundary so the hot loop can
// index without checks.
func validate(p1, p2 Meshed, box Box, sBins, muBins []float64, wr WorkRange) error {
	if err := validateMeshed(p1); err != nil {
		return err
	}
	if err := validateMeshed(p2); err != nil {
		return err
	}
	if box.LX <= 0 || box.LY <= 0 || box.LZ <= 0 {
		return ErrBadBox
	}
	if err := validateBins(sBins); err != nil {
		return err
	}
	if err := validateBins(muBins); err != nil {
		return err
	}
	g1, g2 := p1.Grid, p2.Grid
	if g2.NX < g1.NX || g2.NY < g1.NY || g2.NZ < g1.NZ ||
		g2.NX%g1.NX != 0 || g2.NY%g1.NY != 0 || g2.NZ%g1.NZ != 0 {
		return ErrGridRatio
	}
	if wr.First < 0 || wr.First > wr.Last || wr.Last > g1.NumCells() {
		return ErrWorkRange
	}

	return nil
}

func validateMeshed(p Meshed) error {
	if len(p.Sample.Y) != len(p.Sample.X) || len(p.Sample.Z) != len(p.Sample.X) {
		return ErrSampleLength
	}
	g := p.Grid
	if g.NX <= 0 || g.NY <= 0 || g.NZ <= 0 ||
		g.CellX <= 0 || g.CellY <= 0 || g.CellZ <= 0 {
		return ErrBadGrid
	}
	if len(g.CellStart) != g.NumCells()+1 {
		return ErrCellTable
	}
	if g.CellStart[0] != 0 || g.CellStart[len(g.CellStart)-1] != p.Sample.Len() {
		return ErrCellTable
	}
	for c := 1; c < len(g.CellStart); c++ {
		if g.CellStart[c] < g.CellStart[c-1] {
			return ErrCellTable
		}
	}

	return nil
}

func validateBins(edges []float64) error {
	if len(edges) == 0 {
		return ErrEmptyBins
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return ErrBinsNotAscending
		}
	}

	return nil
}
