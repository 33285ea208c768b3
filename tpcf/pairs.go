package tpcf

import (
	"math"

	"github.com/astriden/twopoint/paircount"
)

// SeparationCounts extracts the cumulative separation profile N(s ≤ edge)
// from a cumulated count matrix: the column at the largest mu edge, which
// marginalizes the angular axis when the mu bins extend to 1.
func SeparationCounts(m *paircount.Matrix) []float64 {
	out := make([]float64, m.NumS())
	g := m.NumMu() - 1
	for k := range out {
		out[k] = float64(m.At(k, g))
	}

	return out
}

// DiffPairs converts a cumulative count profile into per-shell counts:
// out[i] = cum[i+1] − cum[i], one entry per shell (edge_i, edge_i+1].
//
// Self-pairs of an auto-count (separation exactly 0) appear in every
// cumulative entry and therefore cancel in the differences.
func DiffPairs(cum []float64) []float64 {
	if len(cum) < 2 {
		return nil
	}
	out := make([]float64, len(cum)-1)
	for i := range out {
		out[i] = cum[i+1] - cum[i]
	}

	return out
}

// ShellVolumes returns the volume of each spherical shell between
// successive separation edges, one entry per shell (edge_i, edge_i+1].
func ShellVolumes(sBins []float64) []float64 {
	if len(sBins) < 2 {
		return nil
	}
	out := make([]float64, len(sBins)-1)
	for i := range out {
		out[i] = sphereVolume(sBins[i+1]) - sphereVolume(sBins[i])
	}

	return out
}

// AnalyticRandoms returns the expected per-shell pair counts between a
// sample of n1 points and a uniform random field of density n2/V in a
// periodic box: n1 · shellVolume · n2/V. In periodic volumes this
// replaces a random catalog entirely — the uniform expectation is exact.
//
// One entry per shell, matching DiffPairs output.
func AnalyticRandoms(n1, n2 float64, sBins []float64, box paircount.Box) ([]float64, error) {
	if n1 <= 0 || n2 <= 0 {
		return nil, ErrBadSampleSize
	}
	if box.LX <= 0 || box.LY <= 0 || box.LZ <= 0 {
		return nil, ErrBadBox
	}
	volume := box.LX * box.LY * box.LZ
	rho := n2 / volume

	out := ShellVolumes(sBins)
	for i := range out {
		out[i] *= n1 * rho
	}

	return out, nil
}

// sphereVolume is the volume of a 3-ball of radius r.
func sphereVolume(r float64) float64 {
	return 4.0 / 3.0 * math.Pi * r * r * r
}
