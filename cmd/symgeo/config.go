// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// fileConfig mirrors the optional --config YAML file:
//
//	precision: f
//	output: yaml
//	log_format: json
type fileConfig struct {
	Precision string `koanf:"precision"`
	Output    string `koanf:"output"`
	LogFormat string `koanf:"log_format"`
}

// globalOptions are the resolved persistent settings of one invocation.
type globalOptions struct {
	precision string
	output    string
	logFormat string
}

type optionsKey struct{}

// resolveOptions merges defaults, the config file and explicitly set flags
// (highest precedence last), then validates the result.
func resolveOptions(cmd *cobra.Command) (globalOptions, error) {
	flags := cmd.Flags()
	precision, _ := flags.GetString(flagPrecision)
	output, _ := flags.GetString(flagOutput)
	logFormat, _ := flags.GetString(flagLogFormat)
	opts := globalOptions{precision: precision, output: output, logFormat: logFormat}

	if path, _ := flags.GetString(flagConfig); path != "" {
		cfg, err := loadConfigFile(path)
		if err != nil {
			return globalOptions{}, err
		}
		if cfg.Precision != "" && !flags.Changed(flagPrecision) {
			opts.precision = cfg.Precision
		}
		if cfg.Output != "" && !flags.Changed(flagOutput) {
			opts.output = cfg.Output
		}
		if cfg.LogFormat != "" && !flags.Changed(flagLogFormat) {
			opts.logFormat = cfg.LogFormat
		}
	}

	if err := opts.validate(); err != nil {
		return globalOptions{}, err
	}

	return opts, nil
}

func loadConfigFile(path string) (fileConfig, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fileConfig{}, oops.Code(codeBadConfig).
			With("path", path).
			Wrapf(err, "loading config %s", path)
	}

	var cfg fileConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return fileConfig{}, oops.Code(codeBadConfig).
			With("path", path).
			Wrapf(err, "decoding config %s", path)
	}

	return cfg, nil
}

func (o globalOptions) validate() error {
	checks := []struct {
		flag, value string
		allowed     [2]string
	}{
		{flagPrecision, o.precision, [2]string{precisionDouble, precisionSingle}},
		{flagOutput, o.output, [2]string{outputText, outputYAML}},
		{flagLogFormat, o.logFormat, [2]string{"text", "json"}},
	}
	for _, c := range checks {
		if c.value != c.allowed[0] && c.value != c.allowed[1] {
			return oops.Code(codeBadFlag).
				With("flag", c.flag, "value", c.value).
				Errorf("--%s must be %s or %s, got %q", c.flag, c.allowed[0], c.allowed[1], c.value)
		}
	}

	return nil
}

func withOptions(ctx context.Context, o globalOptions) context.Context {
	return context.WithValue(ctx, optionsKey{}, o)
}

// optionsFrom returns the options stored by the root pre-run hook.
func optionsFrom(cmd *cobra.Command) globalOptions {
	if ctx := cmd.Context(); ctx != nil {
		if o, ok := ctx.Value(optionsKey{}).(globalOptions); ok {
			return o
		}
	}

	return globalOptions{precision: precisionDouble, output: outputText, logFormat: "text"}
}
