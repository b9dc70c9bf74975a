// SPDX-License-Identifier: MIT

// Package geo - Lie-group operations of Rot2 and their jacobians.
//
// Conventions:
//   - Tangent space is 1-D (the angle); perturbations act on the right:
//     retract(a, δ) = a · exp(δ).
//   - Jacobians are taken with respect to those right perturbations, so for
//     the commutative group SO(2) the group-operation jacobians are ±1.
//   - epsilon shifts atan2 away from its singularity at the origin; pass 0 for
//     the exact angle, scalar.Epsilon[T]() inside optimization loops.

package geo

import "github.com/katalvlaran/symgeo/scalar"

// Rot2TangentDim is the dimension of the Rot2 tangent space.
const Rot2TangentDim = 1

// Rot2FromTangent maps a tangent vector (an angle) to a rotation.
func Rot2FromTangent[T scalar.Float](delta T) Rot2[T] {
	return Rot2FromAngle(delta)
}

// ToTangent maps r to its angle in (−π, π] via atan2(s, c + ε·sign₀(c)).
func (r Rot2[T]) ToTangent(epsilon T) T {
	c, s := r.data[0], r.data[1]

	return scalar.Atan2(s, c+epsilon*scalar.SignNoZero(c))
}

// Angle returns the exact angle of r, ToTangent(0).
func (r Rot2[T]) Angle() T { return r.ToTangent(0) }

// Retract applies a tangent perturbation: r · FromTangent(δ).
func (r Rot2[T]) Retract(delta T) Rot2[T] {
	return r.ComposeRot(Rot2FromTangent(delta))
}

// LocalCoordinates returns the tangent perturbation taking r to b:
// ToTangent(r⁻¹·b). It is the inverse of Retract.
func (r Rot2[T]) LocalCoordinates(b Rot2[T], epsilon T) T {
	return r.Between(b).ToTangent(epsilon)
}

// ComposeRotWithJacobians returns r·b and d(r·b)/dr, d(r·b)/db.
func (r Rot2[T]) ComposeRotWithJacobians(b Rot2[T]) (res Rot2[T], resDr, resDb T) {
	return r.ComposeRot(b), 1, 1
}

// InverseWithJacobian returns r⁻¹ and d(r⁻¹)/dr.
func (r Rot2[T]) InverseWithJacobian() (res Rot2[T], resDr T) {
	return r.Inverse(), -1
}

// BetweenWithJacobians returns r⁻¹·b and its jacobians w.r.t. r and b.
func (r Rot2[T]) BetweenWithJacobians(b Rot2[T]) (res Rot2[T], resDr, resDb T) {
	return r.Between(b), -1, 1
}

// RetractWithJacobians returns r·exp(δ) and its jacobians w.r.t. r and δ.
func (r Rot2[T]) RetractWithJacobians(delta T) (res Rot2[T], resDr, resDdelta T) {
	return r.Retract(delta), 1, 1
}

// LocalCoordinatesWithJacobians returns ToTangent(r⁻¹·b) and its jacobians.
//
// With d = r⁻¹·b = (c, s) and c' = c + ε·sign₀(c), the derivative of
// atan2(s, c') under a right perturbation of d is (c'·c + s²) / (c'² + s²);
// it is exactly 1 for ε = 0 and a unit-norm d.
func (r Rot2[T]) LocalCoordinatesWithJacobians(b Rot2[T], epsilon T) (res, resDr, resDb T) {
	d := r.Between(b)
	c, s := d.data[0], d.data[1]
	cs := c + epsilon*scalar.SignNoZero(c)
	dTangent := (cs*c + s*s) / (cs*cs + s*s)

	return scalar.Atan2(s, cs), -dTangent, dTangent
}

// ComposeWithJacobians returns R·v with d(R·v)/dr (2×1) and d(R·v)/dv (2×2):
//
//	d/dr = [−s·x − c·y, c·x − s·y]ᵀ
//	d/dv = R
func (r Rot2[T]) ComposeWithJacobians(v Vector2[T]) (res, resDr Vector2[T], resDv Matrix2[T]) {
	c, s := r.data[0], r.data[1]
	resDr = Vector2[T]{
		-s*v[0] - c*v[1],
		c*v[0] - s*v[1],
	}

	return r.Compose(v), resDr, r.ToRotationMatrix()
}
