// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics backing the variance-family objectives:
//     per-column means and the "k-plus" augmentation that appends, for every
//     original feature, a column holding its squared deviation from the
//     grand (column) mean.
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; no map iteration.
//   - Operates on the flat row-major buffer directly.

package matrix

// ColumnMeans returns the per-column means of m (length Cols()).
//
// Errors: ErrNilMatrix; ErrBadShape on zero rows/cols.
//
// Complexity: O(r*c) time, O(c) space.
func ColumnMeans(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.r <= 0 || m.c <= 0 {
		return nil, ErrBadShape
	}

	var (
		means = make([]float64, m.c)
		i, j  int
		inv   = 1.0 / float64(m.r)
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			means[j] += m.data[i*m.c+j]
		}
	}
	for j = 0; j < m.c; j++ {
		means[j] *= inv
	}

	return means, nil
}

// AugmentSquaredDeviations returns the N×2d matrix [X | (X−mean)²]: the input
// features followed, column-for-column, by the squared deviation of each
// feature from its grand mean. Running the variance objective on the
// augmented matrix balances both group means and group spreads (the k-plus
// objective).
//
// Contracts:
//   - features must pass ValidateFeatures.
//   - The input is not mutated; the result is freshly allocated.
//
// Complexity: O(n·d) time, O(n·d) space.
func AugmentSquaredDeviations(features *Dense) (*Dense, error) {
	if err := ValidateFeatures(features); err != nil {
		return nil, err
	}

	means, err := ColumnMeans(features)
	if err != nil {
		return nil, err
	}

	var (
		n    = features.r
		d    = features.c
		out  = &Dense{r: n, c: 2 * d, data: make([]float64, n*2*d)}
		i, j int
		dev  float64 // deviation from the grand mean
	)
	for i = 0; i < n; i++ {
		copy(out.data[i*2*d:i*2*d+d], features.data[i*d:(i+1)*d])
		for j = 0; j < d; j++ {
			dev = features.data[i*d+j] - means[j]
			out.data[i*2*d+d+j] = dev * dev
		}
	}

	return out, nil
}
