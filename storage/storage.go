// SPDX-License-Identifier: MIT

package storage

import "github.com/katalvlaran/symgeo/scalar"

// Storable is implemented by every geometric value type.
//
// Contract:
//   - StorageDim is a per-type constant (it never depends on the value).
//   - ToStorage returns exactly StorageDim entries in a fixed order and never
//     aliases the value's internal buffer.
type Storable[T scalar.Float] interface {
	StorageDim() int
	ToStorage() []T
}

// Export copies v's parameters into a fresh flat vector.
// MAIN DESCRIPTION:
//   - Total function; the result has length v.StorageDim().
//
// Implementation:
//   - Stage 1: ask the value for its storage.
//   - Stage 2: copy into a caller-owned slice so later mutation cannot leak back.
//
// Complexity:
//   - Time O(StorageDim), Space O(StorageDim).
func Export[T scalar.Float](v Storable[T]) []T {
	src := v.ToStorage()
	out := make([]T, len(src))
	copy(out, src)

	return out
}

// Import builds a value from vec after checking its length against dim.
// MAIN DESCRIPTION:
//   - Precondition len(vec) == dim is enforced and reported as ErrInvalidArgument.
//
// Implementation:
//   - Stage 1: CheckDim (no truncation, no padding).
//   - Stage 2: hand a private copy of vec to build.
//
// Errors:
//   - ErrInvalidArgument (code CodeInvalidArgument) on length mismatch.
//
// Notes:
//   - No semantic validation happens here: an imported Rot2 pair with
//     c²+s² ≠ 1 is accepted as-is. Use the type's Validate hook when needed.
//
// Complexity:
//   - Time O(dim), Space O(dim).
func Import[T scalar.Float, V any](typeName string, dim int, vec []T, build func([]T) V) (V, error) {
	var zero V
	if err := CheckDim(typeName, dim, vec); err != nil {
		return zero, err
	}

	buf := make([]T, dim)
	copy(buf, vec)

	return build(buf), nil
}

// CheckDim returns ErrInvalidArgument when len(vec) != dim.
// Complexity: O(1).
func CheckDim[T scalar.Float](typeName string, dim int, vec []T) error {
	if len(vec) != dim {
		return invalidArgumentf(typeName, dim, len(vec))
	}

	return nil
}
