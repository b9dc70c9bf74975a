// SPDX-License-Identifier: MIT

// Package values assembles optimization variables into one flat vector.
//
// A Values container maps string keys to storage snapshots of geometric values,
// in insertion order. Flattening concatenates the snapshots; the inverse splits
// a solver vector back along the same layout and decodes entries with the
// type's own FromStorage constructor:
//
//	vals := values.New[float64]()
//	_ = vals.Put("calibration", cal)
//	_ = vals.Put("rotation", rot)
//
//	x := vals.ToStorage()                 // hand x to the solver
//	updated, err := vals.FromStorage(x)   // same layout, new numbers
//	rot, err = values.Decode(updated, "rotation", geo.Rot2FromStorage[float64])
//
// A *Values is itself storage.Storable, so containers nest.
// Values is not safe for concurrent mutation; share it read-only or copy.
package values
