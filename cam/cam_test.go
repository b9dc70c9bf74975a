// SPDX-License-Identifier: MIT
// Package cam_test covers the storage contract of every calibration type.
package cam_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/symgeo/cam"
	"github.com/katalvlaran/symgeo/matrix"
	"github.com/katalvlaran/symgeo/storage"
	"github.com/stretchr/testify/require"
)

// TestEquidistantEpipolarRoundTrip verifies Import(Export(x)) == x and layout.
func TestEquidistantEpipolarRoundTrip(t *testing.T) {
	x := cam.NewEquidistantEpipolarCameraCal([2]float64{380.5, 381.25}, [2]float64{320, 240})

	vec := storage.Export[float64](x)
	require.Equal(t, []float64{380.5, 381.25, 320, 240}, vec) // fixed order
	require.Len(t, vec, cam.EquidistantEpipolarStorageDim)

	got, err := cam.EquidistantEpipolarCameraCalFromStorage(vec)
	require.NoError(t, err)
	require.Equal(t, x, got) // exact

	require.Equal(t, [2]float64{380.5, 381.25}, got.FocalLength())
	require.Equal(t, [2]float64{320, 240}, got.PrincipalPoint())
}

// TestEquidistantEpipolarSinglePrecision runs the same law in float32.
func TestEquidistantEpipolarSinglePrecision(t *testing.T) {
	x := cam.NewEquidistantEpipolarCameraCal([2]float32{0.1, 0.2}, [2]float32{0.3, 0.4})

	got, err := cam.EquidistantEpipolarCameraCalFromStorage(x.ToStorage())
	require.NoError(t, err)
	require.Equal(t, x, got)
	require.Equal(t, "<EquidistantEpipolarCameraCalf [0.1, 0.2, 0.3, 0.4]>", got.String())
}

// TestCalibrationLengthEnforcement checks every type rejects wrong lengths.
func TestCalibrationLengthEnforcement(t *testing.T) {
	_, err := cam.EquidistantEpipolarCameraCalFromStorage([]float64{1, 2, 3})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = cam.LinearCameraCalFromStorage([]float32{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = cam.ATANCameraCalFromStorage([]float64{1, 2, 3, 4})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
	require.True(t, storage.HasCode(err, storage.CodeInvalidArgument))
}

// TestLinearRoundTrip covers the pinhole calibration.
func TestLinearRoundTrip(t *testing.T) {
	x := cam.NewLinearCameraCal([2]float32{500, 500}, [2]float32{319.5, 239.5})

	got, err := cam.LinearCameraCalFromStorage(storage.Export[float32](x))
	require.NoError(t, err)
	require.Equal(t, x, got)
	require.Equal(t, cam.LinearStorageDim, got.StorageDim())
	require.Equal(t, [2]float32{319.5, 239.5}, got.PrincipalPoint())
	require.Equal(t, [2]float32{500, 500}, got.FocalLength())
	require.Equal(t, "<LinearCameraCalf [500, 500, 319.5, 239.5]>", got.String())
}

// TestATANRoundTrip covers the five-parameter calibration.
func TestATANRoundTrip(t *testing.T) {
	x := cam.NewATANCameraCal([2]float64{380, 380}, [2]float64{320, 240}, 0.35)

	vec := x.ToStorage()
	require.Equal(t, []float64{380, 380, 320, 240, 0.35}, vec)

	got, err := cam.ATANCameraCalFromStorage(vec)
	require.NoError(t, err)
	require.Equal(t, x, got)
	require.Equal(t, 0.35, got.Omega())
	require.Equal(t, []float64{0.35}, got.DistortionCoeffs())
	require.Equal(t, cam.ATANStorageDim, got.StorageDim())
	require.Equal(t, "<ATANCameraCald [380, 380, 320, 240, 0.35]>", got.String())
}

// TestCameraMatrix checks K for every type.
func TestCameraMatrix(t *testing.T) {
	want, err := matrix.FromRows([][]float64{{100, 0, 50}, {0, 200, 60}, {0, 0, 1}})
	require.NoError(t, err)

	ks := make([]*matrix.Dense, 0, 3)
	for _, f := range []func() (*matrix.Dense, error){
		cam.NewLinearCameraCal([2]float64{100, 200}, [2]float64{50, 60}).CameraMatrix,
		cam.NewEquidistantEpipolarCameraCal([2]float64{100, 200}, [2]float64{50, 60}).CameraMatrix,
		cam.NewATANCameraCal([2]float64{100, 200}, [2]float64{50, 60}, 0.5).CameraMatrix,
	} {
		k, err := f()
		require.NoError(t, err)
		ks = append(ks, k)
	}
	for _, k := range ks {
		ok, err := matrix.AllClose(k, want, 0, 0)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

// TestStringForms pins the diagnostic rendering in both precisions.
func TestStringForms(t *testing.T) {
	require.Equal(t, "<LinearCameraCald [500, 500, 319.5, 239.5]>",
		cam.NewLinearCameraCal([2]float64{500, 500}, [2]float64{319.5, 239.5}).String())
	require.Equal(t, "<ATANCameraCalf [380, 380, 320, 240, 0.9]>",
		cam.NewATANCameraCal([2]float32{380, 380}, [2]float32{320, 240}, 0.9).String())
}

// TestValidateNonFinite exercises the debug hook; import itself does not validate.
func TestValidateNonFinite(t *testing.T) {
	x, err := cam.LinearCameraCalFromStorage([]float64{math.NaN(), 1, 2, 3})
	require.NoError(t, err) // import copies verbatim
	require.ErrorIs(t, x.Validate(), cam.ErrNonFinite)

	_, err = x.CameraMatrix()
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	a := cam.NewATANCameraCal([2]float64{1, 1}, [2]float64{0, 0}, math.Inf(1))
	require.ErrorIs(t, a.Validate(), cam.ErrNonFinite)

	e := cam.NewEquidistantEpipolarCameraCal([2]float64{1, 1}, [2]float64{0, 0})
	require.NoError(t, e.Validate())
}
