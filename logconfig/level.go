// SPDX-License-Identifier: MIT

package logconfig

import (
	"log/slog"
	"strings"
)

// Level is the five-entry verbosity scale, ordered from most to least verbose.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// SlogCritical is the slog level used for LevelCritical (slog has no such tier).
const SlogCritical = slog.LevelError + 4

// levelNames is indexed by Level; order matters for AllowedLevels.
var levelNames = [...]string{"debug", "info", "warning", "error", "critical"}

// slogLevels is indexed by Level.
var slogLevels = [...]slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError, SlogCritical}

// String returns the keyword of l ("debug" ... "critical").
func (l Level) String() string {
	if l < LevelDebug || l > LevelCritical {
		return "unknown"
	}

	return levelNames[l]
}

// SlogLevel maps l onto slog's scale.
func (l Level) SlogLevel() slog.Level {
	if l < LevelDebug {
		return slog.LevelDebug
	}
	if l > LevelCritical {
		return SlogCritical
	}

	return slogLevels[l]
}

// FromSlog maps an slog level back onto the five-entry scale, rounding up.
func FromSlog(sl slog.Level) Level {
	for l := LevelDebug; l < LevelCritical; l++ {
		if sl <= slogLevels[l] {
			return l
		}
	}

	return LevelCritical
}

// ParseLevel looks s up case-insensitively (surrounding space ignored).
func ParseLevel(s string) (Level, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if name == key {
			return Level(i), true
		}
	}

	return LevelInfo, false
}

// AllowedLevels returns the accepted keywords, most verbose first.
func AllowedLevels() []string {
	out := make([]string, len(levelNames))
	copy(out, levelNames[:])

	return out
}
