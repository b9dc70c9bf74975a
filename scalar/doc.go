// SPDX-License-Identifier: MIT

// Package scalar defines the numeric capability set shared by every geometric
// type in symgeo.
//
// Every value type is generic over Float and is instantiated for exactly two
// precisions: float64 (tag "d") and float32 (tag "f"). Trigonometric helpers
// evaluate in float64 and round once to the target precision, so float32 results
// are the correctly rounded float64 ones.
//
//	c := scalar.Cos[float32](0.5)
//	tag := scalar.Tag[float64]() // "d"
package scalar
