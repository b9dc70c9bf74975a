// SPDX-License-Identifier: MIT

package values

import (
	"fmt"

	"github.com/katalvlaran/symgeo/scalar"
	"github.com/katalvlaran/symgeo/storage"
)

// entry is one keyed storage snapshot.
type entry[T scalar.Float] struct {
	key  string
	data []T
}

// Values is an ordered, keyed collection of storage snapshots.
type Values[T scalar.Float] struct {
	entries []entry[T]
	index   map[string]int // key → position in entries
	dim     int            // sum of len(entry.data)
}

var _ storage.Storable[float64] = (*Values[float64])(nil)

// New returns an empty container.
func New[T scalar.Float]() *Values[T] {
	return &Values[T]{index: make(map[string]int)}
}

// Put stores a snapshot of v's storage under key.
// A new key is appended; an existing key is replaced in place (its position in
// the flat layout is kept, its length may change).
// Errors: ErrEmptyKey.
// Complexity: O(v.StorageDim()).
func (v *Values[T]) Put(key string, val storage.Storable[T]) error {
	if key == "" {
		return ErrEmptyKey
	}
	data := storage.Export(val)

	if i, ok := v.index[key]; ok {
		v.dim += len(data) - len(v.entries[i].data)
		v.entries[i].data = data

		return nil
	}
	v.index[key] = len(v.entries)
	v.entries = append(v.entries, entry[T]{key: key, data: data})
	v.dim += len(data)

	return nil
}

// Len returns the number of keys.
func (v *Values[T]) Len() int { return len(v.entries) }

// Keys returns the keys in layout order.
func (v *Values[T]) Keys() []string {
	keys := make([]string, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.key
	}

	return keys
}

// Get returns a copy of the snapshot stored under key.
func (v *Values[T]) Get(key string) ([]T, bool) {
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	out := make([]T, len(v.entries[i].data))
	copy(out, v.entries[i].data)

	return out, true
}

// Offset returns where key lives inside the flat vector.
func (v *Values[T]) Offset(key string) (offset, dim int, ok bool) {
	i, ok := v.index[key]
	if !ok {
		return 0, 0, false
	}
	for _, e := range v.entries[:i] {
		offset += len(e.data)
	}

	return offset, len(v.entries[i].data), true
}

// StorageDim is the total length of the flat vector.
func (v *Values[T]) StorageDim() int { return v.dim }

// ToStorage concatenates every snapshot in key order.
// Complexity: O(StorageDim).
func (v *Values[T]) ToStorage() []T {
	out := make([]T, 0, v.dim)
	for _, e := range v.entries {
		out = append(out, e.data...)
	}

	return out
}

// FromStorage splits vec along v's layout into a NEW container; v is unchanged.
// Errors: storage.ErrInvalidArgument when len(vec) != StorageDim().
// Complexity: O(StorageDim).
func (v *Values[T]) FromStorage(vec []T) (*Values[T], error) {
	if err := storage.CheckDim("Values"+scalar.Tag[T](), v.dim, vec); err != nil {
		return nil, err
	}

	out := &Values[T]{
		entries: make([]entry[T], len(v.entries)),
		index:   make(map[string]int, len(v.index)),
		dim:     v.dim,
	}
	off := 0
	for i, e := range v.entries {
		data := make([]T, len(e.data))
		copy(data, vec[off:off+len(e.data)])
		off += len(e.data)

		out.entries[i] = entry[T]{key: e.key, data: data}
		out.index[e.key] = i
	}

	return out, nil
}

// Decode rebuilds the typed value stored under key with build, typically a
// ...FromStorage constructor such as geo.Rot2FromStorage[float64].
// Errors: ErrKeyNotFound, or whatever build returns (storage.ErrInvalidArgument
// when the snapshot length does not match the target type).
func Decode[T scalar.Float, V any](v *Values[T], key string, build func([]T) (V, error)) (V, error) {
	data, ok := v.Get(key)
	if !ok {
		var zero V

		return zero, fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}

	return build(data)
}
