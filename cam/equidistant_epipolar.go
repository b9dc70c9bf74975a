// SPDX-License-Identifier: MIT

package cam

import (
	"github.com/katalvlaran/symgeo/matrix"
	"github.com/katalvlaran/symgeo/scalar"
	"github.com/katalvlaran/symgeo/storage"
)

// EquidistantEpipolarStorageDim is the storage length of EquidistantEpipolarCameraCal.
const EquidistantEpipolarStorageDim = 4

// EquidistantEpipolarCameraCal holds the intrinsics of an equidistant epipolar
// (rectified fisheye) camera: focal length and principal point.
type EquidistantEpipolarCameraCal[T scalar.Float] struct {
	data [EquidistantEpipolarStorageDim]T // fx, fy, cx, cy
}

// Supported precisions.
type (
	EquidistantEpipolarCameraCald = EquidistantEpipolarCameraCal[float64]
	EquidistantEpipolarCameraCalf = EquidistantEpipolarCameraCal[float32]
)

var _ storage.Storable[float64] = EquidistantEpipolarCameraCald{}

// NewEquidistantEpipolarCameraCal builds a calibration from domain parameters.
func NewEquidistantEpipolarCameraCal[T scalar.Float](focal, principal [2]T) EquidistantEpipolarCameraCal[T] {
	return EquidistantEpipolarCameraCal[T]{data: [EquidistantEpipolarStorageDim]T{
		focal[0], focal[1], principal[0], principal[1],
	}}
}

// EquidistantEpipolarCameraCalFromStorage imports [fx, fy, cx, cy].
// Errors: storage.ErrInvalidArgument when len(vec) != 4.
func EquidistantEpipolarCameraCalFromStorage[T scalar.Float](vec []T) (EquidistantEpipolarCameraCal[T], error) {
	return storage.Import(equidistantName[T](), EquidistantEpipolarStorageDim, vec,
		func(buf []T) EquidistantEpipolarCameraCal[T] {
			var c EquidistantEpipolarCameraCal[T]
			copy(c.data[:], buf)

			return c
		})
}

func equidistantName[T scalar.Float]() string {
	return "EquidistantEpipolarCameraCal" + scalar.Tag[T]()
}

// StorageDim returns EquidistantEpipolarStorageDim.
func (c EquidistantEpipolarCameraCal[T]) StorageDim() int { return EquidistantEpipolarStorageDim }

// ToStorage returns a fresh [fx, fy, cx, cy] slice.
func (c EquidistantEpipolarCameraCal[T]) ToStorage() []T {
	out := make([]T, EquidistantEpipolarStorageDim)
	copy(out, c.data[:])

	return out
}

// FocalLength returns (fx, fy).
func (c EquidistantEpipolarCameraCal[T]) FocalLength() [2]T {
	return [2]T{c.data[idxFx], c.data[idxFy]}
}

// PrincipalPoint returns (cx, cy).
func (c EquidistantEpipolarCameraCal[T]) PrincipalPoint() [2]T {
	return [2]T{c.data[idxCx], c.data[idxCy]}
}

// CameraMatrix returns the 3×3 matrix K = [[fx, 0, cx], [0, fy, cy], [0, 0, 1]].
// The model is not a pinhole: K holds only its linear part, the scaling and
// offset applied after the equidistant epipolar mapping.
func (c EquidistantEpipolarCameraCal[T]) CameraMatrix() (*matrix.Dense, error) {
	return cameraMatrix(c.data[:])
}

// Validate reports ErrNonFinite for NaN/Inf parameters.
func (c EquidistantEpipolarCameraCal[T]) Validate() error {
	return validateFinite(equidistantName[T](), c.data[:])
}

// String renders the diagnostic form.
func (c EquidistantEpipolarCameraCal[T]) String() string {
	return formatCal(equidistantName[T](), c.data[:])
}
