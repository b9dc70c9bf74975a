// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symgeo/matrix"
	"github.com/katalvlaran/symgeo/scalar"
)

// report is what every subcommand prints, in text or YAML form.
type report[T scalar.Float] struct {
	Type    string      `yaml:"type"`
	Repr    string      `yaml:"repr"`
	Storage []T         `yaml:"storage"`
	Angle   *T          `yaml:"angle,omitempty"`
	Vector  []T         `yaml:"vector,omitempty"`
	Matrix  [][]float64 `yaml:"matrix,omitempty"`
	Valid   *bool       `yaml:"valid,omitempty"`
}

// withMatrix copies m row by row into the report.
func (r *report[T]) withMatrix(m *matrix.Dense) {
	rows := m.Rows()
	r.Matrix = make([][]float64, rows)
	for i := 0; i < rows; i++ {
		r.Matrix[i] = m.RawRowView(i)
	}
}

func writeReport[T scalar.Float](w io.Writer, format string, r report[T]) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return oops.With("type", r.Type).Wrapf(err, "encoding yaml")
		}

		return enc.Close()
	}

	var b strings.Builder
	fmt.Fprintln(&b, r.Repr)
	fmt.Fprintf(&b, "storage: %s\n", formatSlice(r.Storage))
	if r.Angle != nil {
		fmt.Fprintf(&b, "angle: %s\n", scalar.Format(*r.Angle))
	}
	if r.Vector != nil {
		fmt.Fprintf(&b, "vector: %s\n", formatSlice(r.Vector))
	}
	if r.Matrix != nil {
		b.WriteString("matrix:\n")
		for _, row := range r.Matrix {
			fmt.Fprintf(&b, "  %s\n", formatSlice(row))
		}
	}
	if r.Valid != nil {
		fmt.Fprintf(&b, "valid: %t\n", *r.Valid)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// formatSlice renders "[a, b, ...]" with shortest round-trip digits.
func formatSlice[T scalar.Float](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = scalar.Format(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// parseScalars parses args at the precision of T.
func parseScalars[T scalar.Float](args []string) ([]T, error) {
	out := make([]T, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), scalar.Bits[T]())
		if err != nil {
			return nil, oops.Code(codeBadArg).
				With("position", i, "value", a).
				Wrapf(err, "argument %d is not a number", i+1)
		}
		out[i] = T(v)
	}

	return out, nil
}
