// SPDX-License-Identifier: MIT

// Package logconfig owns the process-wide log verbosity.
//
// The level is configured once, explicitly, by the host program:
//
//	func main() {
//	    logconfig.Init() // reads SYMGEO_LOGLEVEL
//	    ...
//	}
//
// Accepted values are debug, info, warning, error and critical, in any letter
// case. An absent or blank variable leaves the default (info) untouched. An
// unrecognized value also leaves it untouched and logs an error naming the
// value and the allowed set.
//
// After Init the level is read-only; readers go through an slog.LevelVar, so
// concurrent reads are safe. Changing the environment variable while Init runs
// is not supported.
//
// Configurator is the testable unit behind Init: it can target any variable
// name, LevelVar and diagnostics logger.
package logconfig
