// SPDX-License-Identifier: MIT

package cam

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/symgeo/matrix"
	"github.com/katalvlaran/symgeo/scalar"
)

// Storage offsets shared by every calibration in this package.
const (
	idxFx = iota
	idxFy
	idxCx
	idxCy
	idxOmega // ATAN only
)

// validateFinite returns ErrNonFinite naming the first offending entry.
func validateFinite[T scalar.Float](name string, data []T) error {
	for i, v := range data {
		if !scalar.IsFinite(v) {
			return fmt.Errorf("%s: storage[%d] = %s: %w", name, i, scalar.Format(v), ErrNonFinite)
		}
	}

	return nil
}

// cameraMatrix builds K = [[fx, 0, cx], [0, fy, cy], [0, 0, 1]] as float64.
func cameraMatrix[T scalar.Float](data []T) (*matrix.Dense, error) {
	fx, fy := float64(data[idxFx]), float64(data[idxFy])
	cx, cy := float64(data[idxCx]), float64(data[idxCy])

	return matrix.FromRows([][]float64{
		{fx, 0, cx},
		{0, fy, cy},
		{0, 0, 1},
	})
}

// formatCal renders "<Name [a, b, ...]>".
func formatCal[T scalar.Float](name string, data []T) string {
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = scalar.Format(v)
	}

	return "<" + name + " [" + strings.Join(parts, ", ") + "]>"
}
