// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/symgeo/cam"
	"github.com/katalvlaran/symgeo/geo"
	"github.com/katalvlaran/symgeo/matrix"
	"github.com/katalvlaran/symgeo/scalar"
	"github.com/katalvlaran/symgeo/storage"
)

const flagType = "type"

// entity is what every importable type offers the CLI.
type entity[T scalar.Float] interface {
	storage.Storable[T]
	String() string
}

type importer[T scalar.Float] func([]T) (entity[T], error)

// lift erases the concrete type returned by a ...FromStorage constructor.
func lift[T scalar.Float, V entity[T]](build func([]T) (V, error)) importer[T] {
	return func(vec []T) (entity[T], error) {
		v, err := build(vec)
		if err != nil {
			return nil, err
		}

		return v, nil
	}
}

// importers lists the types `storage import` accepts, keyed by --type.
func importers[T scalar.Float]() map[string]importer[T] {
	return map[string]importer[T]{
		"rot2":        lift(geo.Rot2FromStorage[T]),
		"linear":      lift(cam.LinearCameraCalFromStorage[T]),
		"equidistant": lift(cam.EquidistantEpipolarCameraCalFromStorage[T]),
		"atan":        lift(cam.ATANCameraCalFromStorage[T]),
	}
}

func importerNames() []string {
	names := make([]string, 0, 4)
	for name := range importers[float64]() {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func newStorageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Storage-vector operations",
	}
	cmd.AddCommand(newStorageImportCmd())

	return cmd
}

func newStorageImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import --type <name> [--] <v1> [v2 ...]",
		Short: "Rebuild a value from its storage vector and describe it",
		Long: "Rebuild a value from its flat storage vector. The vector length must equal the\n" +
			"type's storage dimension. Accepted types: " + strings.Join(importerNames(), ", ") + ".\n" +
			"Put the values after -- when any is negative, e.g. symgeo storage import -t rot2 -- -1 0.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(cmd)
			name, _ := cmd.Flags().GetString(flagType)
			if opts.precision == precisionSingle {
				return runStorageImport[float32](cmd, opts, name, args)
			}

			return runStorageImport[float64](cmd, opts, name, args)
		},
	}
	cmd.Flags().StringP(flagType, "t", "", "type to import: "+strings.Join(importerNames(), "|"))
	_ = cmd.MarkFlagRequired(flagType)

	return cmd
}

func runStorageImport[T scalar.Float](cmd *cobra.Command, opts globalOptions, name string, args []string) error {
	build, ok := importers[T]()[strings.ToLower(name)]
	if !ok {
		return oops.Code(codeBadFlag).
			With("flag", flagType, "value", name, "allowed", importerNames()).
			Errorf("unknown --%s %q", flagType, name)
	}
	vec, err := parseScalars[T](args)
	if err != nil {
		return err
	}

	v, err := build(vec)
	if err != nil {
		slog.Debug("storage import rejected", "type", name, "code", string(storage.CodeOf(err)), "context", storage.ContextOf(err))
		return err
	}

	valid := validate(v)
	if !valid {
		slog.Warn("imported value failed validation", "type", name, "storage", formatSlice(vec))
	}

	rep := report[T]{
		Type:    strings.ToLower(name),
		Repr:    v.String(),
		Storage: storage.Export[T](v),
		Valid:   &valid,
	}
	if valid {
		m, err := matrixOf(v)
		if err != nil {
			return err
		}
		if m != nil {
			rep.withMatrix(m)
		}
	}
	if r, ok := v.(geo.Rot2[T]); ok {
		angle := r.Angle()
		rep.Angle = &angle
	}

	return writeReport(cmd.OutOrStdout(), opts.output, rep)
}

// validate runs the type's debug validation hooks, if it has any.
// Rotations must also pass the matrix-level check.
func validate[T scalar.Float](v entity[T]) bool {
	eps := scalar.Epsilon[T]()
	switch x := v.(type) {
	case geo.Rot2[T]:
		return x.Validate(eps) == nil && x.ToRotationMatrix().CheckRotation(float64(eps)) == nil
	case interface{ Validate(T) error }:
		return x.Validate(eps) == nil
	case interface{ Validate() error }:
		return x.Validate() == nil
	}

	return true
}

// matrixOf returns the rotation or camera matrix of v; nil when it has none.
// Non-finite entries surface as matrix.ErrNaNInf.
func matrixOf[T scalar.Float](v entity[T]) (*matrix.Dense, error) {
	switch x := v.(type) {
	case geo.Rot2[T]:
		return x.ToRotationMatrix().ToDense()
	case interface{ CameraMatrix() (*matrix.Dense, error) }:
		return x.CameraMatrix()
	}

	return nil, nil
}
