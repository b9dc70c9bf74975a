// SPDX-License-Identifier: MIT

package geo

import (
	"fmt"

	"github.com/katalvlaran/symgeo/scalar"
	"github.com/katalvlaran/symgeo/storage"
)

// Rot2StorageDim is the length of a Rot2 storage vector: [cos θ, sin θ].
const Rot2StorageDim = 2

// Rot2 is a planar rotation stored as (cos θ, sin θ).
// The zero value is NOT a rotation; use Rot2Identity or Rot2FromAngle.
type Rot2[T scalar.Float] struct {
	data [Rot2StorageDim]T // (c, s)
}

// Rot2d and Rot2f are the two supported precisions.
type (
	Rot2d = Rot2[float64]
	Rot2f = Rot2[float32]
)

var (
	_ storage.Storable[float64] = Rot2d{}
	_ storage.Storable[float32] = Rot2f{}
	_ fmt.Stringer              = Rot2d{}
)

// NewRot2 wraps a raw (c, s) pair without normalizing or validating it.
func NewRot2[T scalar.Float](c, s T) Rot2[T] {
	return Rot2[T]{data: [Rot2StorageDim]T{c, s}}
}

// Rot2Identity returns the identity rotation (1, 0).
func Rot2Identity[T scalar.Float]() Rot2[T] {
	return NewRot2[T](1, 0)
}

// Rot2FromAngle is the canonical constructor: (cos θ, sin θ).
// Total for every real θ; the result satisfies c²+s²=1 up to rounding.
// Complexity: O(1).
func Rot2FromAngle[T scalar.Float](theta T) Rot2[T] {
	return NewRot2(scalar.Cos(theta), scalar.Sin(theta))
}

// Rot2FromStorage imports a storage vector [c, s].
// Errors:
//   - storage.ErrInvalidArgument when len(vec) != Rot2StorageDim.
//
// The pair is copied verbatim; unit norm is not checked (see Validate).
func Rot2FromStorage[T scalar.Float](vec []T) (Rot2[T], error) {
	return storage.Import(rot2Name[T](), Rot2StorageDim, vec, func(buf []T) Rot2[T] {
		return NewRot2(buf[0], buf[1])
	})
}

// rot2Name returns the precision-tagged type name, e.g. "Rot2d".
func rot2Name[T scalar.Float]() string {
	return "Rot2" + scalar.Tag[T]()
}

// StorageDim returns Rot2StorageDim.
func (r Rot2[T]) StorageDim() int { return Rot2StorageDim }

// ToStorage returns a fresh [c, s] slice.
func (r Rot2[T]) ToStorage() []T {
	return []T{r.data[0], r.data[1]}
}

// Data returns the raw (c, s) pair.
func (r Rot2[T]) Data() [Rot2StorageDim]T { return r.data }

// Vector returns the (c, s) pair as a Vector2, the argument shape of Compose.
func (r Rot2[T]) Vector() Vector2[T] { return Vector2[T](r.data) }

// Compose applies r's rotation matrix to v:
//
//	x' = c·x − s·y
//	y' = s·x + c·y
//
// When v is the (c, s) pair of another rotation b, the result is the pair of
// r·b by the angle-addition identities. Pure and total.
func (r Rot2[T]) Compose(v Vector2[T]) Vector2[T] {
	c, s := r.data[0], r.data[1]

	return Vector2[T]{
		c*v[0] - s*v[1],
		s*v[0] + c*v[1],
	}
}

// ComposeRot returns the group product r·b.
func (r Rot2[T]) ComposeRot(b Rot2[T]) Rot2[T] {
	return Rot2[T]{data: r.Compose(b.Vector())}
}

// Inverse returns r⁻¹ = (c, −s).
func (r Rot2[T]) Inverse() Rot2[T] {
	return NewRot2(r.data[0], -r.data[1])
}

// Between returns r⁻¹·b, the rotation taking r to b.
func (r Rot2[T]) Between(b Rot2[T]) Rot2[T] {
	return r.Inverse().ComposeRot(b)
}

// ToRotationMatrix returns [[c, −s], [s, c]].
func (r Rot2[T]) ToRotationMatrix() Matrix2[T] {
	c, s := r.data[0], r.data[1]

	return Matrix2[T]{
		{c, -s},
		{s, c},
	}
}

// Validate is the debug hook for the unit-norm postcondition.
// It returns ErrNotNormalized when |c²+s²−1| > tol. Nothing calls it implicitly.
func (r Rot2[T]) Validate(tol T) error {
	c, s := r.data[0], r.data[1]
	if dev := scalar.Abs(c*c + s*s - 1); !(dev <= tol) {
		return fmt.Errorf("%s: |c²+s²-1| = %s > %s: %w",
			rot2Name[T](), scalar.Format(dev), scalar.Format(tol), ErrNotNormalized)
	}

	return nil
}

// String renders the diagnostic form, e.g. "<Rot2d [1, 0]>".
// It is not a serialization format.
func (r Rot2[T]) String() string {
	return fmt.Sprintf("<%s [%s, %s]>", rot2Name[T](), scalar.Format(r.data[0]), scalar.Format(r.data[1]))
}
