package tpcf

// Estimate evaluates the chosen correlation-function estimator per bin.
//
// dd, dr and rr are per-shell pair counts (see DiffPairs); slices the
// estimator does not consume may be nil. nd1 and nd2 are the data sample
// sizes behind dd, nr1 and nr2 the random sample sizes behind rr (and
// nr2 behind the random side of dr). The count ratios are rescaled by
// the sample-size factors before combining, exactly as the classical
// estimator definitions require:
//
//	Natural        (1/f)·DD/RR − 1,              f = nd1·nd2/(nr1·nr2)
//	Davis-Peebles  (1/f)·DD/DR − 1,              f = nd2/nr2
//	Hewett         (1/f1)·DD/RR − (1/f2)·DR/RR
//	Hamilton       DD·RR/DR² − 1
//	Landy-Szalay   (1/f1)·DD/RR − (1/f2)·2·DR/RR + 1
//
// with f1 = nd1·nd2/(nr1·nr2) and f2 = nd1·nr2/(nr1·nr2).
//
// Returns one xi value per bin. Bins whose required denominator is zero
// yield NaN rather than an error: empty shells are a data property, not
// a misuse of the API.
func Estimate(dd, dr, rr []float64, nd1, nd2, nr1, nr2 float64, est Estimator) ([]float64, error) {
	needDD, needDR, needRR, err := est.Requirements()
	if err != nil {
		return nil, err
	}
	if nd1 <= 0 || nd2 <= 0 || nr1 <= 0 || nr2 <= 0 {
		return nil, ErrBadSampleSize
	}
	if needDD && dd == nil {
		return nil, ErrMissingCounts
	}
	if needDR && dr == nil {
		return nil, ErrMissingCounts
	}
	if needRR && rr == nil {
		return nil, ErrMissingCounts
	}
	n := len(dd)
	if (dr != nil && len(dr) != n) || (rr != nil && len(rr) != n) {
		return nil, ErrLengthMismatch
	}

	xi := make([]float64, n)
	switch est {
	case Natural:
		factor := nd1 * nd2 / (nr1 * nr2)
		for i := range xi {
			xi[i] = (1.0/factor)*dd[i]/rr[i] - 1.0
		}
	case DavisPeebles:
		factor := nd1 * nd2 / (nd1 * nr2)
		for i := range xi {
			xi[i] = (1.0/factor)*dd[i]/dr[i] - 1.0
		}
	case Hewett:
		factor1 := nd1 * nd2 / (nr1 * nr2)
		factor2 := nd1 * nr2 / (nr1 * nr2)
		for i := range xi {
			xi[i] = (1.0/factor1)*dd[i]/rr[i] - (1.0/factor2)*dr[i]/rr[i]
		}
	case Hamilton:
		for i := range xi {
			xi[i] = (dd[i]*rr[i])/(dr[i]*dr[i]) - 1.0
		}
	case LandySzalay:
		factor1 := nd1 * nd2 / (nr1 * nr2)
		factor2 := nd1 * nr2 / (nr1 * nr2)
		for i := range xi {
			xi[i] = (1.0/factor1)*dd[i]/rr[i] - (1.0/factor2)*2.0*dr[i]/rr[i] + 1.0
		}
	}

	return xi, nil
}
