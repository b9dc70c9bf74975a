// SPDX-License-Identifier: MIT

// Package geo provides closed-form group-algebra types for optimization.
//
// 🚀 What is here?
//
//	Rot2 is an element of SO(2), the group of planar rotations, stored as the
//	pair (cos θ, sin θ). Every operation is a straight-line formula: no loops,
//	no branches on data, no assertions. Values are immutable; each operation
//	returns a new value.
//
// ✨ Key features:
//   - storage contract (StorageDim, ToStorage, Rot2FromStorage) shared with package storage
//   - canonical construction (Rot2FromAngle) and matrix conversion (ToRotationMatrix)
//   - Lie-group pattern: Identity, Inverse, ComposeRot, Between, Retract, LocalCoordinates
//   - analytic jacobians of every group operation with respect to its inputs
//
// ⚙️ Usage:
//
//	a := geo.Rot2FromAngle(math.Pi / 2)
//	b := geo.Rot2FromAngle(math.Pi / 2)
//	v := a.Compose(b.Vector())      // ≈ [-1, 0]
//	m := a.ToRotationMatrix()       // [[c, -s], [s, c]]
//
// Precision: Rot2d (float64) and Rot2f (float32) are the supported instantiations.
//
// Import does NOT re-check c²+s²=1. A pair imported from storage that is not
// unit-norm still evaluates, but the results are not rotations. Call Validate
// when the source of the data is untrusted.
package geo
