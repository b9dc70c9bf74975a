// SPDX-License-Identifier: MIT
// Package values_test covers flattening and decoding of optimization variables.
package values_test

import (
	"testing"

	"github.com/katalvlaran/symgeo/cam"
	"github.com/katalvlaran/symgeo/geo"
	"github.com/katalvlaran/symgeo/storage"
	"github.com/katalvlaran/symgeo/values"
	"github.com/stretchr/testify/require"
)

// view builds the per-image values of a bundle-adjustment problem.
func view(t *testing.T, theta float64) *values.Values[float64] {
	t.Helper()

	v := values.New[float64]()
	require.NoError(t, v.Put("calibration", cam.NewLinearCameraCal([2]float64{400, 400}, [2]float64{320, 240})))
	require.NoError(t, v.Put("rotation", geo.Rot2FromAngle(theta)))

	return v
}

// TestValuesLayout checks key order, offsets and total dimension.
func TestValuesLayout(t *testing.T) {
	v := view(t, 0)

	require.Equal(t, []string{"calibration", "rotation"}, v.Keys())
	require.Equal(t, 2, v.Len())
	require.Equal(t, cam.LinearStorageDim+geo.Rot2StorageDim, v.StorageDim())

	off, dim, ok := v.Offset("rotation")
	require.True(t, ok)
	require.Equal(t, 4, off)
	require.Equal(t, 2, dim)

	_, _, ok = v.Offset("missing")
	require.False(t, ok)

	require.Equal(t, []float64{400, 400, 320, 240, 1, 0}, v.ToStorage())
}

// TestValuesRoundTrip flattens, rebuilds and decodes typed values exactly.
func TestValuesRoundTrip(t *testing.T) {
	v := view(t, 0.3)

	back, err := v.FromStorage(v.ToStorage())
	require.NoError(t, err)
	require.Equal(t, v.ToStorage(), back.ToStorage())

	rot, err := values.Decode(back, "rotation", geo.Rot2FromStorage[float64])
	require.NoError(t, err)
	require.Equal(t, geo.Rot2FromAngle(0.3), rot)

	c, err := values.Decode(back, "calibration", cam.LinearCameraCalFromStorage[float64])
	require.NoError(t, err)
	require.Equal(t, [2]float64{320, 240}, c.PrincipalPoint())
}

// TestValuesFromStorageIsNew ensures the source container is unchanged.
func TestValuesFromStorageIsNew(t *testing.T) {
	v := view(t, 0)

	updated, err := v.FromStorage([]float64{1, 2, 3, 4, 0, 1})
	require.NoError(t, err)

	got, ok := updated.Get("rotation")
	require.True(t, ok)
	require.Equal(t, []float64{0, 1}, got)

	orig, _ := v.Get("rotation")
	require.Equal(t, []float64{1, 0}, orig)
}

// TestValuesFromStorageLength rejects vectors of the wrong length.
func TestValuesFromStorageLength(t *testing.T) {
	v := view(t, 0)

	_, err := v.FromStorage([]float64{1, 2, 3})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

// TestValuesPutReplace keeps the position of a re-put key.
func TestValuesPutReplace(t *testing.T) {
	v := view(t, 0)
	require.NoError(t, v.Put("calibration", cam.NewATANCameraCal([2]float64{1, 2}, [2]float64{3, 4}, 0.5)))

	require.Equal(t, []string{"calibration", "rotation"}, v.Keys())
	require.Equal(t, 7, v.StorageDim())
	require.Equal(t, []float64{1, 2, 3, 4, 0.5, 1, 0}, v.ToStorage())

	require.ErrorIs(t, v.Put("", geo.Rot2Identity[float64]()), values.ErrEmptyKey)
}

// TestValuesDecodeErrors covers missing keys and type/length mismatches.
func TestValuesDecodeErrors(t *testing.T) {
	v := view(t, 0)

	_, err := values.Decode(v, "pose", geo.Rot2FromStorage[float64])
	require.ErrorIs(t, err, values.ErrKeyNotFound)

	_, err = values.Decode(v, "calibration", geo.Rot2FromStorage[float64]) // 4 values into a Rot2
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

// TestValuesNest stores a container inside another.
func TestValuesNest(t *testing.T) {
	outer := values.New[float64]()
	require.NoError(t, outer.Put("view0", view(t, 0)))
	require.NoError(t, outer.Put("view1", view(t, 0)))

	require.Equal(t, 12, outer.StorageDim())
	off, dim, ok := outer.Offset("view1")
	require.True(t, ok)
	require.Equal(t, 6, off)
	require.Equal(t, 6, dim)
}
