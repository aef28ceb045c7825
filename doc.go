// Package anticluster is your in-memory toolkit for anticlustering —
// partitioning elements into groups that are as similar to each other as
// possible, by making every group internally diverse.
//
// 🚀 What is anticluster?
//
//	A deterministic, concurrency-ready library that brings together:
//		• Objectives: diversity (pairwise distances), variance (centroid
//		  spread), k-plus (means + spreads), or your own scoring callable
//		• Exchange search: single-pass and run-to-local-maximum variants
//		  with O(1)/O(d) incremental swap deltas
//		• Preclustering: nearest-neighbour matching that keeps look-alikes
//		  out of the same group
//		• Categorical balance: proportional spread of one or more
//		  categorical variables across groups
//		• Restarts: parallel repetitions with reproducible per-run seeds
//		• Exact boundary: a 0/1 program builder for external MILP solvers
//
// ✨ Why choose anticluster?
//
//   - Deterministic – same seed, same partition, at any worker count
//   - Rock-solid guarantees – group sizes are fixed up front and never drift
//   - Strict sentinel errors – every failure mode is a matchable errors.Is
//   - Extensible – plug in a custom objective or an external exact solver
//
// Under the hood, everything is organized under three subpackages:
//
//	anticlust/ — objectives, exchange search, matching, constraints, restarts
//	ilp/       — the 0/1 cluster-editing formulation & solution parsing
//	matrix/    — dense tables, Euclidean distances, validation, k-plus augmentation
//
// Quick ASCII example:
//
//	features            groups (K=2)
//	  1  2 10 11   →      A  B  A  B
//
//	each group receives one low and one high value, so the two groups end
//	up statistically alike.
//
// Dive into the anticlust package docs for the full option surface, and
// into ilp for wiring an exact backend.
//
//	go get github.com/katalvlaran/anticluster
package anticluster
