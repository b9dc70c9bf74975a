// SPDX-License-Identifier: MIT

package logconfig

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvVar is the environment variable read by Init.
const DefaultEnvVar = "SYMGEO_LOGLEVEL"

// levelKey is the koanf path the variable is loaded under.
const levelKey = "level"

// Configurator applies an environment-sourced verbosity to an slog.LevelVar.
// Build it with New; the zero value is not usable.
type Configurator struct {
	envVar  string
	level   *slog.LevelVar
	diag    *slog.Logger
	diagOut io.Writer
}

// Option customizes a Configurator.
type Option func(*Configurator)

// WithEnvVar reads name instead of DefaultEnvVar. An empty name is ignored.
func WithEnvVar(name string) Option {
	return func(c *Configurator) {
		if name != "" {
			c.envVar = name
		}
	}
}

// WithLevelVar makes Apply write into lv. A nil lv is ignored.
func WithLevelVar(lv *slog.LevelVar) Option {
	return func(c *Configurator) {
		if lv != nil {
			c.level = lv
		}
	}
}

// WithDiagnostics routes the confirmation and warning records to l.
// Without it they go to the default diagnostics handler (see New).
func WithDiagnostics(l *slog.Logger) Option {
	return func(c *Configurator) {
		if l != nil {
			c.diag = l
		}
	}
}

// WithDiagnosticsWriter points the default diagnostics handler at w instead of
// stderr. It has no effect together with WithDiagnostics. A nil w is ignored.
func WithDiagnosticsWriter(w io.Writer) Option {
	return func(c *Configurator) {
		if w != nil {
			c.diagOut = w
		}
	}
}

// New returns a Configurator for DefaultEnvVar writing into a fresh LevelVar
// (initially info), then applies opts in order.
//
// The default diagnostics handler writes text to stderr. It follows the target
// level but never filters above error, so an invalid value is always reported
// even when the level is already critical.
func New(opts ...Option) *Configurator {
	c := &Configurator{envVar: DefaultEnvVar, level: new(slog.LevelVar), diagOut: os.Stderr}
	for _, opt := range opts {
		opt(c)
	}
	if c.diag == nil {
		c.diag = slog.New(newHandler("text", c.diagOut, diagLeveler{c.level}))
	}

	return c
}

// diagLeveler is the target level capped at slog.LevelError.
type diagLeveler struct{ lv slog.Leveler }

func (d diagLeveler) Level() slog.Level {
	return min(d.lv.Level(), slog.LevelError)
}

// EnvVar reports the variable name this Configurator reads.
func (c *Configurator) EnvVar() string { return c.envVar }

// Level reports the current level of the target LevelVar.
func (c *Configurator) Level() Level { return FromSlog(c.level.Level()) }

// Apply reads the variable once and updates the level.
//
// Stage 1: load the variable through the koanf env provider, matching the
// name exactly (a shared prefix such as SYMGEO_LOGLEVEL_X is not a match).
// Stage 2: absent or blank leaves the level alone and logs nothing.
// Stage 3: a known keyword (any case) sets the level and logs a confirmation;
// anything else keeps the level and logs an error with the allowed set.
//
// The returned bool reports whether the level was changed.
func (c *Configurator) Apply() (Level, bool) {
	raw, err := c.lookup()
	if err != nil {
		c.diag.Error("reading log level from environment", "env", c.envVar, "error", err)

		return c.Level(), false
	}
	if raw == "" {
		return c.Level(), false
	}

	value := strings.ToLower(raw)
	lvl, ok := ParseLevel(value)
	if !ok {
		c.diag.Error("invalid log level",
			"env", c.envVar,
			"value", value,
			"current", c.Level().String(),
			"allowed", AllowedLevels(),
		)

		return c.Level(), false
	}

	c.level.Set(lvl.SlogLevel())
	c.diag.Info("log level configured", "env", c.envVar, "level", lvl.String())

	return lvl, true
}

// lookup returns the trimmed value of the variable, or "" when unset.
func (c *Configurator) lookup() (string, error) {
	k := koanf.New(".")
	provider := env.Provider(".", env.Opt{
		Prefix: c.envVar,
		TransformFunc: func(key, value string) (string, any) {
			if key != c.envVar {
				return "", nil
			}

			return levelKey, strings.TrimSpace(value)
		},
	})
	if err := k.Load(provider, nil); err != nil {
		return "", err
	}

	return k.String(levelKey), nil
}

var (
	activeLevel   slog.LevelVar
	initOnce      sync.Once
	defaultLogger = sync.OnceValue(func() *slog.Logger {
		return NewLogger("text", os.Stderr)
	})
)

// Init configures the process-wide level from the environment and installs
// Logger as the slog default. Only the first call has any effect; later calls
// return the active level unchanged.
func Init(opts ...Option) Level {
	initOnce.Do(func() {
		all := make([]Option, 0, len(opts)+2)
		all = append(all, WithLevelVar(&activeLevel), WithDiagnostics(Logger()))
		all = append(all, opts...)
		New(all...).Apply()
		slog.SetDefault(Logger())
	})

	return ActiveLevel()
}

// ActiveLevel reports the process-wide level.
func ActiveLevel() Level { return FromSlog(activeLevel.Level()) }

// Leveler exposes the process-wide level for custom handlers.
func Leveler() slog.Leveler { return &activeLevel }

// Logger returns the shared stderr text logger gated by the process-wide level.
func Logger() *slog.Logger { return defaultLogger() }

// NewLogger builds a logger writing to w, gated by the process-wide level.
// format is "json" or anything else for text.
func NewLogger(format string, w io.Writer) *slog.Logger {
	return slog.New(newHandler(format, w, &activeLevel))
}

func newHandler(format string, w io.Writer, lv slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{Level: lv, ReplaceAttr: renameCritical}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

// renameCritical prints SlogCritical records as CRITICAL instead of ERROR+4.
func renameCritical(groups []string, a slog.Attr) slog.Attr {
	if len(groups) != 0 || a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= SlogCritical {
		a.Value = slog.StringValue("CRITICAL")
	}

	return a
}
