package paircount

import "golang.org/x/sync/errgroup"

// Count runs the pair-counting engine over the full primary cell space,
// fanning contiguous work ranges out across opts.Workers goroutines, and
// returns the cumulative count matrix N(s ≤ edge_k, mu ≤ edge_g).
//
// Each worker owns a private raw matrix over a disjoint range; the raw
// matrices are summed and Cumulate is applied exactly once to the total
// (cumulation does not distribute over range partitioning). All shared
// inputs are read-only, so no further synchronization is needed.
//
// The result is identical to a single CountRange over the full range
// followed by Cumulate, for any worker count.
func Count(p1, p2 Meshed, box Box, sBins, muBins []float64, opts Options) (*Matrix, error) {
	full := WorkRange{First: 0, Last: p1.Grid.NumCells()}
	if err := validate(p1, p2, box, sBins, muBins, full); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers < 1 {
		workers = DefaultOptions().Workers
	}
	if workers > full.Last {
		workers = full.Last
	}
	if workers <= 1 {
		m := countRange(p1, p2, box, sBins, muBins, full)
		m.Cumulate()

		return m, nil
	}

	parts := splitRange(full, workers)
	raws := make([]*Matrix, len(parts))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for w, wr := range parts {
		w, wr := w, wr
		eg.Go(func() error {
			raws[w] = countRange(p1, p2, box, sBins, muBins, wr)

			return nil
		})
	}
	// Workers return no errors; Wait only joins them.
	_ = eg.Wait()

	total := raws[0]
	for _, raw := range raws[1:] {
		_ = total.Add(raw) // shapes match by construction
	}
	total.Cumulate()

	return total, nil
}

// splitRange partitions wr into at most n contiguous non-empty ranges of
// near-equal size.
func splitRange(wr WorkRange, n int) []WorkRange {
	size := wr.Last - wr.First
	if n > size {
		n = size
	}
	parts := make([]WorkRange, 0, n)
	for w := 0; w < n; w++ {
		first := wr.First + size*w/n
		last := wr.First + size*(w+1)/n
		parts = append(parts, WorkRange{First: first, Last: last})
	}

	return parts
}
