// SPDX-License-Identifier: MIT

package values

import "errors"

var (
	// ErrKeyNotFound is returned by Decode for keys that were never Put.
	ErrKeyNotFound = errors.New("values: key not found")

	// ErrEmptyKey is returned by Put for the empty key.
	ErrEmptyKey = errors.New("values: empty key")

	// ErrBadSnapshot is returned by ReadSnapshot for unreadable checkpoints.
	ErrBadSnapshot = errors.New("values: bad snapshot")
)
