// SPDX-License-Identifier: MIT
// Package storage_test covers the storage contract with a minimal value type.
package storage_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/symgeo/storage"
	"github.com/stretchr/testify/require"
)

// triple is a three-parameter value used to exercise the contract.
type triple[T float32 | float64] struct{ data [3]T }

func (v triple[T]) StorageDim() int { return 3 }
func (v triple[T]) ToStorage() []T  { return v.data[:] }

func newTriple[T float32 | float64](vec []T) triple[T] {
	var v triple[T]
	copy(v.data[:], vec)

	return v
}

// TestExportLengthAndCopy ensures Export returns StorageDim entries it does not share.
func TestExportLengthAndCopy(t *testing.T) {
	v := triple[float64]{data: [3]float64{1, 2, 3}}

	out := storage.Export[float64](v)
	require.Len(t, out, v.StorageDim()) // exactly StorageDim
	require.Equal(t, []float64{1, 2, 3}, out)

	out[0] = 42                             // mutate the export
	require.Equal(t, 1.0, v.ToStorage()[0]) // source is untouched
}

// TestImportRoundTrip verifies Import(Export(x)) == x bit for bit.
func TestImportRoundTrip(t *testing.T) {
	x := triple[float32]{data: [3]float32{0.1, -7.25, 1e-30}}

	got, err := storage.Import("triple", 3, storage.Export[float32](x), newTriple[float32])
	require.NoError(t, err)
	require.Equal(t, x, got) // exact equality, no precision loss
}

// TestImportRejectsWrongLength covers short, long and empty vectors.
func TestImportRejectsWrongLength(t *testing.T) {
	for _, vec := range [][]float64{nil, {1}, {1, 2}, {1, 2, 3, 4}} {
		_, err := storage.Import("triple", 3, vec, newTriple[float64])
		require.ErrorIs(t, err, storage.ErrInvalidArgument)
		require.True(t, storage.HasCode(err, storage.CodeInvalidArgument))

		ctx := storage.ContextOf(err)
		require.Equal(t, 3, ctx["expected"])
		require.Equal(t, len(vec), ctx["actual"])
	}
}

// TestImportDoesNotAliasInput ensures build receives a private copy.
func TestImportDoesNotAliasInput(t *testing.T) {
	vec := []float64{1, 2, 3}
	var seen []float64

	_, err := storage.Import("triple", 3, vec, func(in []float64) triple[float64] {
		seen = in

		return newTriple(in)
	})
	require.NoError(t, err)

	vec[0] = 99
	require.Equal(t, 1.0, seen[0])
}

// TestCodeOfPlainError returns no code for foreign errors.
func TestCodeOfPlainError(t *testing.T) {
	require.Equal(t, storage.Code(""), storage.CodeOf(nil))
	require.Equal(t, storage.Code(""), storage.CodeOf(errors.New("plain")))
	require.False(t, storage.HasCode(errors.New("plain"), storage.CodeInvalidArgument))
	require.Nil(t, storage.ContextOf(errors.New("plain")))
}

// TestCheckDim accepts the exact length only.
func TestCheckDim(t *testing.T) {
	require.NoError(t, storage.CheckDim("pair", 2, []float32{1, 0}))
	require.ErrorIs(t, storage.CheckDim("pair", 2, []float32{1}), storage.ErrInvalidArgument)
}
