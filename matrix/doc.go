// SPDX-License-Identifier: MIT

// Package matrix provides the small row-major float64 matrix used to hand
// geometric results (rotation matrices, camera matrices, jacobians) to solver code.
//
// The matrix package provides:
//
//   - Dense, a flat row-major buffer with safe accessors (At/Set return errors,
//     never panic) and a finite-only numeric policy on Set.
//   - Mul, Transpose and AllClose for the handful of checks geometric code needs.
//   - ToMat to hand data to gonum's mat package, which is what most external
//     optimizers consume, and Det built on it.
//
// Matrices here are tiny (2×2, 3×3, 2×1), so the implementation favors clarity
// and deterministic loop orders over blocking or SIMD.
//
//	d, err := matrix.FromRows([][]float64{{1, 0}, {0, 1}})
//	m := matrix.ToMat(d) // *mat.Dense
package matrix
