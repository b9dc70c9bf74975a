// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToMat copies d into a gonum *mat.Dense for solver interop.
// The result owns its buffer; later changes to d do not show through.
// Complexity: O(r*c).
func ToMat(d *Dense) *mat.Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf)
}

// Det returns the determinant of a square d, computed by gonum.
// Errors: ErrNilMatrix, ErrDimensionMismatch for non-square input.
func Det(d *Dense) (float64, error) {
	if err := ValidateNotNil(d); err != nil {
		return 0, err
	}
	if d.r != d.c {
		return 0, validatorErrorf("Det", ErrDimensionMismatch)
	}

	return mat.Det(ToMat(d)), nil
}
