// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write surface shared by the helpers in this package.
// Implementations report bad indices as errors rather than panicking.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns entry (i, j), or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns entry (i, j); ErrOutOfRange for bad indices, ErrNaNInf for non-finite v.
	Set(i, j int, v float64) error
}
