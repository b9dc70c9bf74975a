// SPDX-License-Identifier: MIT

package cam

import (
	"github.com/katalvlaran/symgeo/matrix"
	"github.com/katalvlaran/symgeo/scalar"
	"github.com/katalvlaran/symgeo/storage"
)

// ATANStorageDim is the storage length of ATANCameraCal.
const ATANStorageDim = 5

// ATANCameraCal is the FOV (arctangent) distortion model: a linear calibration
// plus the field-of-view parameter omega.
type ATANCameraCal[T scalar.Float] struct {
	data [ATANStorageDim]T // fx, fy, cx, cy, omega
}

// Supported precisions.
type (
	ATANCameraCald = ATANCameraCal[float64]
	ATANCameraCalf = ATANCameraCal[float32]
)

var _ storage.Storable[float64] = ATANCameraCald{}

// NewATANCameraCal builds a calibration from domain parameters.
func NewATANCameraCal[T scalar.Float](focal, principal [2]T, omega T) ATANCameraCal[T] {
	return ATANCameraCal[T]{data: [ATANStorageDim]T{focal[0], focal[1], principal[0], principal[1], omega}}
}

// ATANCameraCalFromStorage imports [fx, fy, cx, cy, omega].
// Errors: storage.ErrInvalidArgument when len(vec) != 5.
func ATANCameraCalFromStorage[T scalar.Float](vec []T) (ATANCameraCal[T], error) {
	return storage.Import(atanName[T](), ATANStorageDim, vec, func(buf []T) ATANCameraCal[T] {
		var c ATANCameraCal[T]
		copy(c.data[:], buf)

		return c
	})
}

func atanName[T scalar.Float]() string { return "ATANCameraCal" + scalar.Tag[T]() }

// StorageDim returns ATANStorageDim.
func (c ATANCameraCal[T]) StorageDim() int { return ATANStorageDim }

// ToStorage returns a fresh [fx, fy, cx, cy, omega] slice.
func (c ATANCameraCal[T]) ToStorage() []T {
	out := make([]T, ATANStorageDim)
	copy(out, c.data[:])

	return out
}

// FocalLength returns (fx, fy).
func (c ATANCameraCal[T]) FocalLength() [2]T { return [2]T{c.data[idxFx], c.data[idxFy]} }

// PrincipalPoint returns (cx, cy).
func (c ATANCameraCal[T]) PrincipalPoint() [2]T { return [2]T{c.data[idxCx], c.data[idxCy]} }

// Omega returns the field-of-view distortion parameter.
func (c ATANCameraCal[T]) Omega() T { return c.data[idxOmega] }

// DistortionCoeffs returns the distortion part of the storage, [omega].
func (c ATANCameraCal[T]) DistortionCoeffs() []T { return []T{c.data[idxOmega]} }

// CameraMatrix returns K of the undistorted part.
func (c ATANCameraCal[T]) CameraMatrix() (*matrix.Dense, error) { return cameraMatrix(c.data[:]) }

// Validate reports ErrNonFinite for NaN/Inf parameters.
func (c ATANCameraCal[T]) Validate() error { return validateFinite(atanName[T](), c.data[:]) }

// String renders the diagnostic form, e.g. "<ATANCameraCald [380, 380, 320, 240, 0.9]>".
func (c ATANCameraCal[T]) String() string { return formatCal(atanName[T](), c.data[:]) }
