// Package twopoint is an in-memory toolkit for two-point correlation
// analysis of 3-D point samples — from cell-mesh construction to exact
// pair counting and correlation-function estimation.
//
// 🚀 What is twopoint?
//
//	A pure-Go library for spatial clustering statistics that brings together:
//		• Mesh construction: sort point clouds into rectangular cell grids,
//		  with matched coarse/fine double meshes for cross-correlation
//		• Pair counting: exact cumulative (s, mu) histograms over cell
//		  neighborhoods, with optional periodic boundary conditions
//		• Parallel orchestration: partition the cell space into work
//		  ranges and fan them out across a bounded worker pool
//		• Estimators: Natural, Davis-Peebles, Hewett, Hamilton and
//		  Landy-Szalay, plus analytic randoms for periodic boxes
//		• Jackknife resampling: delete-one subvolume covariance matrices
//
// ✨ Why choose twopoint?
//
//   - Exact by construction – integer pair counts, right-inclusive bins,
//     no floating-point accumulation drift
//   - Deterministic – seeded randoms, no time-based sources, stable output
//   - Embarrassingly parallel – disjoint work ranges share only read-only
//     input and sum exactly
//
// Everything is organized under three subpackages:
//
//	mesh/      — cell grids: sizing, point sorting, index tables, periodic boxes
//	paircount/ — the (s, mu) pair-counting engine and cumulative reducer
//	tpcf/      — correlation-function estimators, randoms and jackknife errors
//
// Quick sketch of the data flow:
//
//	points ──mesh──▶ sorted samples + cell tables ──paircount──▶ N(≤s, ≤mu)
//	                                                      │
//	                                   tpcf ◀── DD, DR, RR┘ ──▶ xi(s), cov
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/astriden/twopoint
package twopoint
