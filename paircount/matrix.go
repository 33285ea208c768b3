package paircount

// Matrix is a NumS × NumMu grid of pair counts. Counts are int64 so the
// total can reach the product of the two sample sizes without overflow.
//
// A Matrix produced by CountRange holds raw per-bin counts; Cumulate
// converts it in place to the cumulative form N(s ≤ edge_k, mu ≤ edge_g).
type Matrix struct {
	ns, nmu int
	counts  []int64
}

// NewMatrix returns a zeroed ns × nmu count matrix.
func NewMatrix(ns, nmu int) *Matrix {
	return &Matrix{ns: ns, nmu: nmu, counts: make([]int64, ns*nmu)}
}

// NumS returns the number of separation bins (rows).
func (m *Matrix) NumS() int { return m.ns }

// NumMu returns the number of angular bins (columns).
func (m *Matrix) NumMu() int { return m.nmu }

// At returns the count in separation bin k, angular bin g.
func (m *Matrix) At(k, g int) int64 { return m.counts[k*m.nmu+g] }

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.ns, m.nmu)
	copy(c.counts, m.counts)
	return c
}

// Add accumulates o into m element-wise. Summing raw matrices from
// disjoint work ranges reproduces the full-range raw matrix exactly.
// Returns ErrShapeMismatch if the shapes differ.
func (m *Matrix) Add(o *Matrix) error {
	if m.ns != o.ns || m.nmu != o.nmu {
		return ErrShapeMismatch
	}
	for i, v := range o.counts {
		m.counts[i] += v
	}

	return nil
}

// Cumulate converts m in place from raw per-bin counts to the 2-D
// cumulative form: entry (k, g) becomes the sum of all raw entries with
// row ≤ k and column ≤ g. The result is monotone non-decreasing along
// both axes.
//
// Cumulate is not distributive over work-range partitioning: sum the raw
// matrices first, then cumulate the total exactly once.
//
// Complexity: O(NumS·NumMu), exact integer arithmetic.
func (m *Matrix) Cumulate() {
	// Prefix-sum along mu within each row, then along s down each column.
	for k := 0; k < m.ns; k++ {
		row := m.counts[k*m.nmu : (k+1)*m.nmu]
		for g := 1; g < m.nmu; g++ {
			row[g] += row[g-1]
		}
	}
	for k := 1; k < m.ns; k++ {
		prev := m.counts[(k-1)*m.nmu : k*m.nmu]
		row := m.counts[k*m.nmu : (k+1)*m.nmu]
		for g := 0; g < m.nmu; g++ {
			row[g] += prev[g]
		}
	}
}
