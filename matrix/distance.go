// SPDX-License-Identifier: MIT

// Package matrix - pairwise distances & self-describing input classification.
//
// This file contains small, tight, deterministic helpers that:
//  1. Derive a symmetric Euclidean distance matrix from an N×d feature table.
//  2. Classify tabular input (distance matrix vs. feature table) by structure:
//     a square matrix with a ~0 diagonal, symmetry and no negative entries is
//     treated as a distance matrix; anything else is a feature table.
//  3. Validate distance matrices (shape, diagonal, negativity, NaN/Inf,
//     symmetry) and feature tables (shape, finiteness).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n²·d) worst case for EuclideanDistances; O(n²) for validation.

package matrix

import "math"

// SymTol is the structural tolerance for symmetry/diagonal checks.
// It is independent from any optimizer acceptance epsilon.
const SymTol = 1e-12

// EuclideanDistances returns the symmetric N×N matrix of pairwise Euclidean
// distances between the rows of features.
//
// Contracts:
//   - features must pass ValidateFeatures (non-nil, n≥2, finite).
//   - The result has a zero diagonal and exact symmetry (each pair is
//     computed once and mirrored).
//
// Complexity: O(n²·d) time, O(n²) space.
func EuclideanDistances(features *Dense) (*Dense, error) {
	if err := ValidateFeatures(features); err != nil {
		return nil, err
	}

	var (
		n    = features.r
		d    = features.c
		buf  = features.data
		out  = &Dense{r: n, c: n, data: make([]float64, n*n)}
		i, j int     // pair indices
		k    int     // feature index
		diff float64 // per-coordinate difference
		sum  float64 // squared accumulator
		dist float64 // resulting distance
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < d; k++ {
				diff = buf[i*d+k] - buf[j*d+k]
				sum += diff * diff
			}
			dist = math.Sqrt(sum)
			// Mirror once; the diagonal stays at its zero initialization.
			out.data[i*n+j] = dist
			out.data[j*n+i] = dist
		}
	}

	return out, nil
}

// IsDistanceMatrix reports whether m is structurally a distance matrix:
// square, n≥2, finite, |diag|≤tol, non-negative, |a_ij−a_ji|≤tol.
//
// This is the self-describing input rule: callers that pass a raw table get
// it classified by structure, with explicit constructors available when the
// heuristic is undesirable (a genuinely square symmetric feature table).
//
// Complexity: O(n²).
func IsDistanceMatrix(m *Dense, tol float64) bool {
	return ValidateDistances(m, tol) == nil
}

// ValidateDistances performs full distance-matrix validation:
//   - non-nil, square, n≥2,
//   - diagonal ≈ 0 (|a_ii| ≤ tol), finite,
//   - no negative entries, no NaN/±Inf anywhere,
//   - |a_ij − a_ji| ≤ tol.
//
// Complexity: O(n²).
func ValidateDistances(m *Dense, tol float64) error {
	// Stage 1: shape checks (non-nil, square, non-trivial).
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c || m.r <= 0 {
		return ErrNonSquare
	}
	if m.r < 2 {
		return ErrBadShape
	}

	var (
		n    = m.r
		i, j int     // loop indices
		aij  float64 // entry a[i][j]
		abs  float64 // scratch for |value|
	)

	// Stage 2: diagonal ≈ 0 within tol.
	for i = 0; i < n; i++ {
		aij = m.data[i*n+i]
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return ErrNaNInf
		}
		abs = aij
		if abs < 0 {
			abs = -abs
		}
		if abs > tol {
			return ErrNonZeroDiagonal
		}
	}

	// Stage 3: off-diagonal finiteness, non-negativity and symmetry.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij = m.data[i*n+j]
			if math.IsNaN(aij) || math.IsInf(aij, 0) {
				return ErrNaNInf
			}
			if aij < 0 {
				return ErrNegativeWeight
			}
			abs = aij - m.data[j*n+i]
			if math.IsNaN(abs) {
				return ErrNaNInf
			}
			if abs < 0 {
				abs = -abs
			}
			if abs > tol {
				return ErrAsymmetry
			}
			// The mirrored entry needs its own finiteness/negativity check
			// only when it differs; within tol it inherits a_ij's checks.
			aij = m.data[j*n+i]
			if aij < 0 && -aij > tol {
				return ErrNegativeWeight
			}
		}
	}

	return nil
}

// ValidateFeatures checks a feature table: non-nil, n≥2 rows, d≥1 columns,
// all entries finite.
//
// Complexity: O(n·d).
func ValidateFeatures(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r < 2 || m.c < 1 {
		return ErrBadShape
	}

	var i int
	for i = 0; i < len(m.data); i++ {
		if math.IsNaN(m.data[i]) || math.IsInf(m.data[i], 0) {
			return ErrNaNInf
		}
	}

	return nil
}
