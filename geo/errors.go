// SPDX-License-Identifier: MIT

package geo

import "errors"

// ErrNotNormalized is returned by Validate when a rotation pair violates
// c²+s²=1 beyond the given tolerance.
var ErrNotNormalized = errors.New("geo: rotation is not unit-norm")

// ErrNotRotation is returned by Matrix2.CheckRotation when R·Rᵀ differs from
// the identity or det R differs from 1 beyond the given tolerance.
var ErrNotRotation = errors.New("geo: matrix is not a proper rotation")
