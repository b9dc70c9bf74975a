// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symgeo/geo"
	"github.com/katalvlaran/symgeo/scalar"
)

const flagDegrees = "degrees"

func newRot2Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rot2",
		Short: "Planar rotation (Rot2) operations",
	}
	cmd.PersistentFlags().Bool(flagDegrees, false, "read angles in degrees instead of radians")

	cmd.AddCommand(
		newRot2FromAngleCmd(),
		newRot2ComposeCmd(),
	)

	return cmd
}

func newRot2FromAngleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-angle [--] <theta>",
		Short: "Build a rotation from an angle and print its storage and matrix",
		Long: "Build a rotation from an angle and print its storage and matrix.\n" +
			"Put negative angles after --, e.g. symgeo rot2 from-angle -- -1.5.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(cmd)
			if opts.precision == precisionSingle {
				return runRot2FromAngle[float32](cmd, opts, args)
			}

			return runRot2FromAngle[float64](cmd, opts, args)
		},
	}
}

func newRot2ComposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose [--] <theta> <x> <y>",
		Short: "Rotate the point (x, y) by theta",
		Long: "Rotate the point (x, y) by theta.\n" +
			"Put the numbers after -- when any is negative, e.g. symgeo rot2 compose -- 0.5 -1 2.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(cmd)
			if opts.precision == precisionSingle {
				return runRot2Compose[float32](cmd, opts, args)
			}

			return runRot2Compose[float64](cmd, opts, args)
		},
	}
}

// rot2FromArg parses theta, honoring --degrees.
func rot2FromArg[T scalar.Float](cmd *cobra.Command, arg string) (geo.Rot2[T], error) {
	vals, err := parseScalars[T]([]string{arg})
	if err != nil {
		return geo.Rot2[T]{}, err
	}
	theta := vals[0]
	if deg, _ := cmd.Flags().GetBool(flagDegrees); deg {
		theta = T(float64(theta) * math.Pi / 180)
	}
	slog.Debug("rot2 from angle", "theta", float64(theta), "precision", scalar.Tag[T]())

	return geo.Rot2FromAngle(theta), nil
}

func rot2Report[T scalar.Float](r geo.Rot2[T]) (report[T], error) {
	angle := r.Angle()
	rep := report[T]{
		Type:    "rot2",
		Repr:    r.String(),
		Storage: r.ToStorage(),
		Angle:   &angle,
	}
	m, err := r.ToRotationMatrix().ToDense()
	if err != nil {
		return rep, err
	}
	rep.withMatrix(m)

	return rep, nil
}

func runRot2FromAngle[T scalar.Float](cmd *cobra.Command, opts globalOptions, args []string) error {
	r, err := rot2FromArg[T](cmd, args[0])
	if err != nil {
		return err
	}
	rep, err := rot2Report(r)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), opts.output, rep)
}

func runRot2Compose[T scalar.Float](cmd *cobra.Command, opts globalOptions, args []string) error {
	r, err := rot2FromArg[T](cmd, args[0])
	if err != nil {
		return err
	}
	xy, err := parseScalars[T](args[1:])
	if err != nil {
		return err
	}
	out := r.Compose(geo.Vector2[T]{xy[0], xy[1]})

	rep, err := rot2Report(r)
	if err != nil {
		return err
	}
	rep.Vector = out[:]

	return writeReport(cmd.OutOrStdout(), opts.output, rep)
}
