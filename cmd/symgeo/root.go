// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symgeo/logconfig"
)

// Global flag names.
const (
	flagConfig    = "config"
	flagPrecision = "precision"
	flagOutput    = "output"
	flagLogFormat = "log-format"
)

// Accepted flag values.
const (
	precisionDouble = "d"
	precisionSingle = "f"
	outputText      = "text"
	outputYAML      = "yaml"
)

// Error codes attached to CLI input failures.
const (
	codeBadFlag   = "cli.flag.invalid"
	codeBadArg    = "cli.arg.invalid"
	codeBadConfig = "cli.config.invalid"
)

// NewRootCmd creates the root symgeo command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "symgeo",
		Short:         "Inspect geometric primitives and their storage vectors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			initLogging(cmd, opts.logFormat)
			cmd.SetContext(withOptions(cmd.Context(), opts))

			return nil
		},
	}

	root.PersistentFlags().StringP(flagConfig, "c", "", "path to a YAML file with precision, output and log_format")
	root.PersistentFlags().StringP(flagPrecision, "p", precisionDouble, "scalar precision: d (float64) or f (float32)")
	root.PersistentFlags().StringP(flagOutput, "o", outputText, "output format: text or yaml")
	root.PersistentFlags().String(flagLogFormat, "text", "log format on stderr: text or json")

	root.AddCommand(
		newRot2Cmd(),
		newStorageCmd(),
		newVersionCmd(),
	)

	return root
}

// initLogging applies SYMGEO_LOGLEVEL and routes logs to the command's stderr.
func initLogging(cmd *cobra.Command, format string) {
	logger := logconfig.NewLogger(format, cmd.ErrOrStderr())
	logconfig.Init(logconfig.WithDiagnostics(logger))
	slog.SetDefault(logger)
	slog.Debug("symgeo starting", "command", cmd.CommandPath(), "level", logconfig.ActiveLevel().String())
}
