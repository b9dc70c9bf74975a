// SPDX-License-Identifier: MIT

package cam

import "errors"

// ErrNonFinite is returned by Validate when a calibration parameter is NaN or ±Inf.
var ErrNonFinite = errors.New("cam: non-finite calibration parameter")
