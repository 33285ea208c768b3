// Package tpcf turns pair counts into two-point correlation-function
// estimates with jackknife errors.
//
// 🚀 What is tpcf?
//
//	The estimation layer above the pair-counting engine: it converts
//	cumulative (s, mu) count matrices into per-shell DD, DR and RR
//	counts, combines them with the classical estimators, and attaches
//	jackknife covariance matrices from delete-one subvolume resampling.
//
// ✨ Key features:
//   - five estimators: Natural, Davis-Peebles, Hewett, Hamilton,
//     Landy-Szalay — each rescaled by the exact sample-size factors
//   - analytic randoms for periodic boxes: shell volume × density,
//     no random catalog needed
//   - deterministic uniform catalogs for the non-periodic case
//   - jackknife covariance via gonum (mat.SymDense), errors on the
//     diagonal
//
// ⚙️ Usage:
//
//	import "github.com/astriden/twopoint/tpcf"
//
//	dd := tpcf.DiffPairs(tpcf.SeparationCounts(cum)) // per-shell counts
//	rr, _ := tpcf.AnalyticRandoms(n, n, sBins, box)
//	xi, err := tpcf.Estimate(dd, nil, rr, n, n, n, n, tpcf.Natural)
//
// For error bars, label points with SubvolumeLabels, recount with each
// subvolume excluded (ExcludeSubvolume), estimate xi per delete-one
// sample, and feed the samples to JackknifeCovariance.
//
// Requirements reports which of DD, DR, RR an estimator consumes, so
// pipelines can skip counts they do not need.
package tpcf
