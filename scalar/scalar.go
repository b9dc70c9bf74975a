// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
	"unsafe"
)

// Float is the numeric capability set: arithmetic operators come from the
// underlying float kinds, transcendental functions from the helpers below.
type Float interface {
	~float32 | ~float64
}

// Precision tags used in diagnostic strings (<Rot2d ...>, <Rot2f ...>).
const (
	TagDouble = "d"
	TagSingle = "f"
)

// Default epsilons, roughly 10× machine epsilon of each precision.
const (
	EpsilonDouble = 2.220446049250313e-15
	EpsilonSingle = 1.1920929e-06
)

// Tag returns the precision tag of T.
// Complexity: O(1).
func Tag[T Float]() string {
	if Bits[T]() == 32 {
		return TagSingle
	}

	return TagDouble
}

// Bits returns the bit width of T (32 or 64).
func Bits[T Float]() int {
	var probe T

	return int(unsafe.Sizeof(probe)) * 8
}

// Epsilon returns the default singularity-avoidance epsilon for T.
func Epsilon[T Float]() T {
	if Bits[T]() == 32 {
		return T(EpsilonSingle)
	}

	return T(EpsilonDouble)
}

// Cos returns cos(x) rounded to T.
func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

// Sin returns sin(x) rounded to T.
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Atan2 returns atan2(y, x) rounded to T.
func Atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Sqrt returns the square root of x rounded to T.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Abs returns |x|.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// SignNoZero returns 1 for x >= 0 and -1 otherwise, so that epsilon shifts
// never cancel to zero.
func SignNoZero[T Float](x T) T {
	if x < 0 {
		return -1
	}

	return 1
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T Float](x T) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Format renders x with the shortest representation that round-trips in T.
func Format[T Float](x T) string {
	return strconv.FormatFloat(float64(x), 'g', -1, Bits[T]())
}
