// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symgeo/storage"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "symgeo")
	assert.Contains(t, out, "rot2")
	assert.Contains(t, out, "storage")
	assert.Contains(t, out, "version")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "symgeo dev")
}

func TestRot2FromAngle_Zero(t *testing.T) {
	out, err := run(t, "rot2", "from-angle", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "<Rot2d [1, 0]>")
	assert.Contains(t, out, "storage: [1, 0]")
	assert.Contains(t, out, "angle: 0")
	assert.Contains(t, out, "matrix:\n  [1, -0]\n  [0, 1]\n")
}

func TestRot2FromAngle_DegreesSingle(t *testing.T) {
	out, err := run(t, "rot2", "from-angle", "--degrees", "-p", "f", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "<Rot2f [")
	assert.Contains(t, out, ", 1]>")
}

func TestRot2FromAngle_YAML(t *testing.T) {
	out, err := run(t, "rot2", "from-angle", "-o", "yaml", "0")
	require.NoError(t, err)

	var got struct {
		Type    string      `yaml:"type"`
		Storage []float64   `yaml:"storage"`
		Matrix  [][]float64 `yaml:"matrix"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "rot2", got.Type)
	assert.Equal(t, []float64{1, 0}, got.Storage)
	require.Len(t, got.Matrix, 2)
	assert.Equal(t, 1.0, got.Matrix[0][0])
	assert.Equal(t, 1.0, got.Matrix[1][1])
}

func TestRot2Compose_HalfTurn(t *testing.T) {
	out, err := run(t, "rot2", "compose", "-o", "yaml", "3.141592653589793", "1", "0")
	require.NoError(t, err)

	var got struct {
		Vector []float64 `yaml:"vector"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Vector, 2)
	assert.InDelta(t, -1.0, got.Vector[0], 1e-15)
	assert.InDelta(t, 0.0, got.Vector[1], 1e-15)

	out, err = run(t, "rot2", "compose", "3.141592653589793", "1", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "vector: [-1, "+strconv.FormatFloat(math.Sin(math.Pi), 'g', -1, 64)+"]")
}

func TestRot2FromAngle_NegativeAfterDoubleDash(t *testing.T) {
	out, err := run(t, "rot2", "from-angle", "-o", "yaml", "--", "-1.5")
	require.NoError(t, err)

	var got struct {
		Angle float64 `yaml:"angle"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.InDelta(t, -1.5, got.Angle, 1e-12)
}

func TestStorageImport_NegativeValuesAfterDoubleDash(t *testing.T) {
	out, err := run(t, "storage", "import", "-t", "rot2", "--", "-1", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "<Rot2d [-1, 0]>")
	assert.Contains(t, out, "valid: true")
}

func TestRot2_RejectsNonNumber(t *testing.T) {
	_, err := run(t, "rot2", "from-angle", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestGlobalFlags_Validated(t *testing.T) {
	_, err := run(t, "rot2", "from-angle", "-p", "q", "0")
	require.Error(t, err)

	_, err = run(t, "rot2", "from-angle", "-o", "xml", "0")
	require.Error(t, err)

	_, err = run(t, "--log-format", "xml", "version")
	require.Error(t, err)
}

func TestStorageImport_Calibration(t *testing.T) {
	out, err := run(t, "storage", "import", "--type", "equidistant", "500", "500", "319.5", "239.5")
	require.NoError(t, err)
	assert.Contains(t, out, "<EquidistantEpipolarCameraCald [500, 500, 319.5, 239.5]>")
	assert.Contains(t, out, "storage: [500, 500, 319.5, 239.5]")
	assert.Contains(t, out, "  [0, 0, 1]\n")
	assert.Contains(t, out, "valid: true")
}

func TestStorageImport_ATANSingle(t *testing.T) {
	out, err := run(t, "storage", "import", "-t", "atan", "-p", "f", "380", "380", "320", "240", "0.9")
	require.NoError(t, err)
	assert.Contains(t, out, "<ATANCameraCalf [380, 380, 320, 240, 0.9]>")
}

func TestStorageImport_WrongLength(t *testing.T) {
	_, err := run(t, "storage", "import", "--type", "linear", "1", "2", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrInvalidArgument)
	assert.True(t, storage.HasCode(err, storage.CodeInvalidArgument))
}

func TestStorageImport_UnnormalizedRot2(t *testing.T) {
	out, err := run(t, "storage", "import", "--type", "rot2", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "<Rot2d [3, 4]>")
	assert.Contains(t, out, "valid: false")
	assert.NotContains(t, out, "matrix:")
}

func TestStorageImport_UnknownType(t *testing.T) {
	_, err := run(t, "storage", "import", "--type", "pose3", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pose3")
}

func TestStorageImport_TypeRequired(t *testing.T) {
	_, err := run(t, "storage", "import", "1", "0")
	require.Error(t, err)
}
