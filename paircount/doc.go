// Package paircount computes exact two-point pair counts between 3-D
// point samples, binned jointly in total separation s and the angular
// proxy mu = |line-of-sight separation| / s, with optional periodic
// boundary conditions.
//
// 🚀 What is paircount?
//
//	The counting core of a correlation-function analysis: given two
//	cell-sorted samples, it visits only the secondary cells that can
//	contain points within the maximum search radius of each primary
//	cell, classifies every candidate pair into its (s, mu) bin, and
//	returns the cumulative matrix N(s ≤ edge_k, mu ≤ edge_g).
//
// ✨ Key features:
//   - cell-mesh traversal: O(neighbors) instead of O(N₁·N₂)
//   - periodic wrap logic that never double-counts or misses face pairs
//   - right-inclusive bins located by exact downward edge scan
//   - int64 counts — no overflow up to N₁·N₂ pairs, no float drift
//   - raw matrices from disjoint work ranges sum exactly (additivity),
//     enabling embarrassingly parallel execution
//
// ⚙️ Usage:
//
//	import "github.com/astriden/twopoint/paircount"
//
//	// p1, p2 are Meshed values (see the mesh package).
//	cum, err := paircount.Count(p1, p2, box, sBins, muBins, paircount.DefaultOptions())
//
//	// Or drive the partitioning yourself:
//	raw, err := paircount.CountRange(p1, p2, box, sBins, muBins, wr)
//	... sum raw matrices over ranges, then call Cumulate once ...
//
// Conventions:
//   - the line of sight is the z axis; mu lies in [0, 1], and mu = 0 for
//     coincident points;
//   - bins are right-inclusive: s equal to an edge stays in the lower bin;
//   - counting a sample against itself includes self-pairs and both
//     orderings; callers correct for this downstream (see tpcf).
//
// Performance:
//
//   - Time:   O(cells · covered neighbor cells · points-per-cell²)
//   - Memory: O(NumS·NumMu) per invocation; inputs are never copied
//
// See example_test.go for runnable walkthroughs.
package paircount
