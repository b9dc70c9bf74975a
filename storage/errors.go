// SPDX-License-Identifier: MIT
// Package storage: sentinel errors and machine-readable codes.
// Callers match the sentinel with errors.Is; code-aware callers (CLI, logs)
// read the oops code with CodeOf.

package storage

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// ErrInvalidArgument signals a malformed input at a public boundary, most
// commonly a storage vector whose length differs from StorageDim.
var ErrInvalidArgument = errors.New("storage: invalid argument")

// Code is the machine-readable identifier attached to boundary errors.
type Code string

const (
	// CodeInvalidArgument tags storage-length violations on import.
	CodeInvalidArgument Code = "storage.import.invalid_argument"
)

// invalidArgumentf wraps ErrInvalidArgument with a code and structured context.
func invalidArgumentf(typeName string, expected, actual int) error {
	return oops.
		Code(CodeInvalidArgument).
		With("type", typeName, "expected", expected, "actual", actual).
		Wrapf(ErrInvalidArgument, "%s: expected %d storage values, got %d", typeName, expected, actual)
}

// CodeOf returns the code carried by err, or "" when err has none.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}

	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}

	switch code := oopsErr.Code().(type) {
	case Code:
		return code
	case string:
		return Code(code)
	case nil:
		return ""
	default:
		return Code(fmt.Sprintf("%v", code))
	}
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return code != "" && CodeOf(err) == code
}

// ContextOf returns the structured key/value context attached to err.
func ContextOf(err error) map[string]any {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return nil
	}

	return oopsErr.Context()
}
