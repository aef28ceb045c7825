// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c); FromRows: O(r*c).

package matrix

import "math"

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a zero-initialized r×c matrix.
//
// Errors: ErrBadShape when r<=0 or c<=0.
//
// Complexity: O(r*c).
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}, nil
}

// FromRows builds a Dense from a slice of equal-length rows (copied).
//
// Errors:
//   - ErrBadShape on empty input, empty rows, or ragged rows.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}

	var (
		r = len(rows)
		c = len(rows[0])
		i int // row index
	)
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrBadShape
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows. Nil-safe (returns 0).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the number of columns. Nil-safe (returns 0).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// At returns the element at (i,j).
//
// Errors: ErrNilMatrix on nil receiver; ErrOutOfRange on bad indices.
//
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.c+j], nil
}

// Set stores v at (i,j). NaN/±Inf values are rejected: every consumer in this
// module requires finite entries, so the policy is enforced at the single
// mutation point.
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrNaNInf.
//
// Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	m.data[i*m.c+j] = v

	return nil
}

// Row returns row i as a no-copy view into the underlying buffer.
// Mutations through the returned slice reflect in the matrix; callers that
// need an independent lifetime must copy.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= m.r {
		return nil, ErrOutOfRange
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Clone returns a deep copy of m. Nil-safe (returns nil).
//
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Data exposes the flat row-major buffer (no copy) for hot-path consumers
// that want to avoid At's bounds checks after validating shape once.
// The formula is data[i*Cols()+j].
func (m *Dense) Data() []float64 {
	if m == nil {
		return nil
	}

	return m.data
}
