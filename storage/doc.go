// SPDX-License-Identifier: MIT

// Package storage implements the storage contract shared by every geometric type:
// a bidirectional, lossless mapping between a value's internal parameters and a
// flat numeric vector of fixed, type-specific length (StorageDim).
//
// The flat vector is the only interchange format with external optimizer code.
// Export is total and always returns a fresh slice. Import validates the length
// and reports a mismatch as ErrInvalidArgument; it never truncates or pads.
//
//	vec := storage.Export[float64](rot)                 // [c, s]
//	rot, err := geo.Rot2FromStorage(vec)                // length-checked
//	if errors.Is(err, storage.ErrInvalidArgument) { ... }
//
// Round-trip law: Import(Export(x)) == x exactly, since both directions copy.
package storage
