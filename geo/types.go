// SPDX-License-Identifier: MIT

package geo

import (
	"fmt"

	"github.com/katalvlaran/symgeo/matrix"
	"github.com/katalvlaran/symgeo/scalar"
)

// Vector2 is a column 2-vector (x, y).
type Vector2[T scalar.Float] [2]T

// Matrix2 is a row-major 2×2 matrix: m[row][col].
type Matrix2[T scalar.Float] [2][2]T

// ToDense exports v as a 2×1 float64 matrix.
// Errors: matrix.ErrNaNInf when an entry is not finite.
func (v Vector2[T]) ToDense() (*matrix.Dense, error) {
	return matrix.FromRows([][]float64{{float64(v[0])}, {float64(v[1])}})
}

// ToDense exports m as a 2×2 float64 matrix for solver interop.
// Errors: matrix.ErrNaNInf when an entry is not finite.
func (m Matrix2[T]) ToDense() (*matrix.Dense, error) {
	return matrix.FromRows([][]float64{
		{float64(m[0][0]), float64(m[0][1])},
		{float64(m[1][0]), float64(m[1][1])},
	})
}

// MulVec returns m·v.
func (m Matrix2[T]) MulVec(v Vector2[T]) Vector2[T] {
	return Vector2[T]{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// CheckRotation verifies that m is a proper rotation: R·Rᵀ = I entrywise within
// tol, and det R = 1 within tol. It is a debug hook, computed in float64.
//
// Implementation:
//   - Stage 1: export to matrix.Dense (non-finite entries fail here).
//   - Stage 2: compare R·Rᵀ with the identity using matrix.AllClose.
//   - Stage 3: take det R through gonum; reflections fail with det = −1.
//
// Errors: ErrNotRotation, or matrix.ErrNaNInf from the export.
func (m Matrix2[T]) CheckRotation(tol float64) error {
	d, err := m.ToDense()
	if err != nil {
		return err
	}
	dt, err := matrix.Transpose(d)
	if err != nil {
		return err
	}
	gram, err := matrix.Mul(d, dt)
	if err != nil {
		return err
	}
	eye, err := matrix.FromRows([][]float64{{1, 0}, {0, 1}})
	if err != nil {
		return err
	}
	if ok, err := matrix.AllClose(gram, eye, 0, tol); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("R·Rᵀ = %v: %w", gram.String(), ErrNotRotation)
	}

	det, err := matrix.Det(d)
	if err != nil {
		return err
	}
	if dev := det - 1; dev > tol || dev < -tol {
		return fmt.Errorf("det R = %g: %w", det, ErrNotRotation)
	}

	return nil
}
