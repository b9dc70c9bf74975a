// SPDX-License-Identifier: MIT

package cam

import (
	"github.com/katalvlaran/symgeo/matrix"
	"github.com/katalvlaran/symgeo/scalar"
	"github.com/katalvlaran/symgeo/storage"
)

// LinearStorageDim is the storage length of LinearCameraCal.
const LinearStorageDim = 4

// LinearCameraCal is a pinhole calibration without distortion.
type LinearCameraCal[T scalar.Float] struct {
	data [LinearStorageDim]T // fx, fy, cx, cy
}

// Supported precisions.
type (
	LinearCameraCald = LinearCameraCal[float64]
	LinearCameraCalf = LinearCameraCal[float32]
)

var _ storage.Storable[float32] = LinearCameraCalf{}

// NewLinearCameraCal builds a calibration from domain parameters.
func NewLinearCameraCal[T scalar.Float](focal, principal [2]T) LinearCameraCal[T] {
	return LinearCameraCal[T]{data: [LinearStorageDim]T{focal[0], focal[1], principal[0], principal[1]}}
}

// LinearCameraCalFromStorage imports [fx, fy, cx, cy].
// Errors: storage.ErrInvalidArgument when len(vec) != 4.
func LinearCameraCalFromStorage[T scalar.Float](vec []T) (LinearCameraCal[T], error) {
	return storage.Import(linearName[T](), LinearStorageDim, vec, func(buf []T) LinearCameraCal[T] {
		var c LinearCameraCal[T]
		copy(c.data[:], buf)

		return c
	})
}

func linearName[T scalar.Float]() string { return "LinearCameraCal" + scalar.Tag[T]() }

// StorageDim returns LinearStorageDim.
func (c LinearCameraCal[T]) StorageDim() int { return LinearStorageDim }

// ToStorage returns a fresh [fx, fy, cx, cy] slice.
func (c LinearCameraCal[T]) ToStorage() []T {
	out := make([]T, LinearStorageDim)
	copy(out, c.data[:])

	return out
}

// FocalLength returns (fx, fy).
func (c LinearCameraCal[T]) FocalLength() [2]T { return [2]T{c.data[idxFx], c.data[idxFy]} }

// PrincipalPoint returns (cx, cy).
func (c LinearCameraCal[T]) PrincipalPoint() [2]T { return [2]T{c.data[idxCx], c.data[idxCy]} }

// CameraMatrix returns K.
func (c LinearCameraCal[T]) CameraMatrix() (*matrix.Dense, error) { return cameraMatrix(c.data[:]) }

// Validate reports ErrNonFinite for NaN/Inf parameters.
func (c LinearCameraCal[T]) Validate() error { return validateFinite(linearName[T](), c.data[:]) }

// String renders the diagnostic form, e.g. "<LinearCameraCald [500, 500, 319.5, 239.5]>".
func (c LinearCameraCal[T]) String() string { return formatCal(linearName[T](), c.data[:]) }
