// Package tpcf defines estimators and sentinel errors for two-point
// correlation-function estimation in github.com/astriden/twopoint.
package tpcf

import "errors"

// Sentinel errors for estimation operations.
var (
	// ErrUnknownEstimator indicates an Estimator value outside the supported set.
	ErrUnknownEstimator = errors.New("tpcf: unsupported estimator")
	// ErrLengthMismatch indicates per-bin count slices of differing lengths.
	ErrLengthMismatch = errors.New("tpcf: per-bin count slices must have equal length")
	// ErrMissingCounts indicates a nil count slice the chosen estimator requires.
	ErrMissingCounts = errors.New("tpcf: estimator requires counts that were not supplied")
	// ErrBadSampleSize indicates a non-positive effective sample size.
	ErrBadSampleSize = errors.New("tpcf: sample sizes must be positive")
	// ErrBadSubdivision indicates a jackknife subdivision count below 2.
	ErrBadSubdivision = errors.New("tpcf: jackknife subdivision must be at least 2")
	// ErrTooFewSamples indicates fewer than two jackknife samples.
	ErrTooFewSamples = errors.New("tpcf: covariance needs at least two jackknife samples")
	// ErrBadBox indicates a box with a non-positive period along some axis.
	ErrBadBox = errors.New("tpcf: box periods must be positive")
	// ErrSampleLength indicates coordinate slices of differing lengths.
	ErrSampleLength = errors.New("tpcf: coordinate slices must have equal length")
)

// Estimator selects the two-point correlation-function estimator.
type Estimator int

const (
	// Natural — DD/RR − 1.
	Natural Estimator = iota
	// DavisPeebles — DD/DR − 1.
	DavisPeebles
	// Hewett — (DD − DR)/RR.
	Hewett
	// Hamilton — DD·RR/DR² − 1.
	Hamilton
	// LandySzalay — (DD − 2·DR + RR)/RR.
	LandySzalay
)

// String returns the conventional name of the estimator.
func (e Estimator) String() string {
	switch e {
	case Natural:
		return "Natural"
	case DavisPeebles:
		return "Davis-Peebles"
	case Hewett:
		return "Hewett"
	case Hamilton:
		return "Hamilton"
	case LandySzalay:
		return "Landy-Szalay"
	default:
		return "unknown"
	}
}

// Requirements reports which pair counts the estimator consumes.
func (e Estimator) Requirements() (needDD, needDR, needRR bool, err error) {
	switch e {
	case Natural:
		return true, false, true, nil
	case DavisPeebles:
		return true, true, false, nil
	case Hewett, Hamilton, LandySzalay:
		return true, true, true, nil
	default:
		return false, false, false, ErrUnknownEstimator
	}
}
