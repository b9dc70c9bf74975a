// SPDX-License-Identifier: MIT

// Package matrix - Dense storage.
//
// Entry (i, j) of an r×c Dense lives at data[i*c+j]. Every write goes through
// Set, which is the only place the finite-only policy is enforced; readers get
// errors, not panics, for bad indices.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Method tags used in wrapped errors.
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFromRows = "FromRows"
)

// denseErrorf tags err with the method and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an r×c float64 matrix over one row-major buffer.
type Dense struct {
	r, c int
	data []float64 // len == r*c
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns an all-zero rows×cols matrix.
// Errors: ErrInvalidDimensions unless both sizes are positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows copies a rectangular [][]float64 into a new Dense.
// This is how geometric types export their fixed-size matrices.
//
// Implementation:
//   - Stage 1: the first row fixes the column count; empty input is rejected.
//   - Stage 2: each entry is written with Set, so NaN/Inf never get in.
//
// Errors:
//   - ErrInvalidDimensions for no rows or an empty first row.
//   - ErrDimensionMismatch when a later row has a different length.
//   - ErrNaNInf (with coordinates) for a non-finite entry.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(row), m.c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) offset(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}

	return row*m.c + col, true
}

// At reads entry (row, col).
// Errors: ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, ok := m.offset(row, col)
	if !ok {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[off], nil
}

// Set writes v at (row, col); the matrix is left unchanged on error.
// Errors: ErrOutOfRange, ErrNaNInf.
func (m *Dense) Set(row, col int, v float64) error {
	off, ok := m.offset(row, col)
	if !ok {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// RawRowView returns a copy of row i; nil when i is out of range.
func (m *Dense) RawRowView(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// String prints one bracketed, comma-separated row per line: "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
