// SPDX-License-Identifier: MIT

// Package cam provides camera-calibration parameter sets.
//
// In this package a calibration is a fixed-length vector of intrinsics that
// implements the storage contract of package storage. Projection of 3D rays to
// pixels (and back) is not provided here.
//
//	Type                          Storage layout               StorageDim
//	EquidistantEpipolarCameraCal  [fx, fy, cx, cy]             4
//	LinearCameraCal               [fx, fy, cx, cy]             4
//	ATANCameraCal                 [fx, fy, cx, cy, omega]      5
//
// Each type is generic over scalar.Float with "d" (float64) and "f" (float32)
// aliases, e.g. LinearCameraCald.
package cam
