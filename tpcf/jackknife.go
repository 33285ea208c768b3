package tpcf

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/astriden/twopoint/paircount"
)

// SubvolumeLabels tags each point with the index of its jackknife
// subvolume on an nsub³ grid over the box: label = ix·nsub² + iy·nsub + iz
// with ix = floor(x / (LX/nsub)), clamped so the top box face falls in
// the last subvolume. Points are assumed to lie inside the box (mesh
// construction wraps them there).
//
// Returns the per-point labels and the total number of subvolumes.
func SubvolumeLabels(x, y, z []float64, box paircount.Box, nsub int) ([]int, int, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return nil, 0, ErrSampleLength
	}
	if box.LX <= 0 || box.LY <= 0 || box.LZ <= 0 {
		return nil, 0, ErrBadBox
	}
	if nsub < 2 {
		return nil, 0, ErrBadSubdivision
	}

	dx := box.LX / float64(nsub)
	dy := box.LY / float64(nsub)
	dz := box.LZ / float64(nsub)

	labels := make([]int, len(x))
	for i := range x {
		ix := clampIndex(int(math.Floor(x[i]/dx)), nsub)
		iy := clampIndex(int(math.Floor(y[i]/dy)), nsub)
		iz := clampIndex(int(math.Floor(z[i]/dz)), nsub)
		labels[i] = ix*nsub*nsub + iy*nsub + iz
	}

	return labels, nsub * nsub * nsub, nil
}

// SubvolumeSizes counts the points carrying each label.
func SubvolumeSizes(labels []int, numSub int) []int {
	sizes := make([]int, numSub)
	for _, l := range labels {
		sizes[l]++
	}

	return sizes
}

// ExcludeSubvolume returns the delete-one jackknife sample: all points
// whose label differs from sub. The inputs are not mutated.
func ExcludeSubvolume(x, y, z []float64, labels []int, sub int) (xs, ys, zs []float64) {
	xs = make([]float64, 0, len(x))
	ys = make([]float64, 0, len(y))
	zs = make([]float64, 0, len(z))
	for i, l := range labels {
		if l == sub {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
		zs = append(zs, z[i])
	}

	return xs, ys, zs
}

// JackknifeCovariance builds the jackknife covariance matrix from
// delete-one xi samples: with deviations d_k about the per-bin mean of
// the samples,
//
//	C_ij = (N−1)/N · Σ_k d_k,i · d_k,j
//
// for N = len(samples) subvolumes. Returns the covariance as a symmetric
// matrix along with the per-bin errors sqrt(C_ii).
//
// All samples must have equal length; at least two are required.
func JackknifeCovariance(samples [][]float64) (*mat.SymDense, []float64, error) {
	n := len(samples)
	if n < 2 {
		return nil, nil, ErrTooFewSamples
	}
	bins := len(samples[0])
	for _, s := range samples[1:] {
		if len(s) != bins {
			return nil, nil, ErrLengthMismatch
		}
	}

	// Per-bin mean across the delete-one samples.
	mean := make([]float64, bins)
	col := make([]float64, n)
	for i := 0; i < bins; i++ {
		for k := 0; k < n; k++ {
			col[k] = samples[k][i]
		}
		mean[i] = stat.Mean(col, nil)
	}

	norm := float64(n-1) / float64(n)
	cov := mat.NewSymDense(bins, nil)
	for i := 0; i < bins; i++ {
		for j := i; j < bins; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += (samples[k][i] - mean[i]) * (samples[k][j] - mean[j])
			}
			cov.SetSym(i, j, norm*sum)
		}
	}

	errs := make([]float64, bins)
	for i := range errs {
		errs[i] = math.Sqrt(cov.At(i, i))
	}

	return cov, errs, nil
}

// clampIndex bounds idx into [0, n).
func clampIndex(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}

	return idx
}
