// SPDX-License-Identifier: MIT

// Command symgeo inspects geometric primitives and their storage vectors.
//
// The log level is read once at startup from SYMGEO_LOGLEVEL
// (debug, info, warning, error, critical).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
