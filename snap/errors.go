// SPDX-License-Identifier: MIT

package snap

import "errors"

// ErrBadUnit indicates a non-positive unit length.
var ErrBadUnit = errors.New("snap: unit length must be positive")

// ErrBadAngleStep indicates a non-positive angle step.
var ErrBadAngleStep = errors.New("snap: angle step must be positive")

// ErrBadRadius indicates a negative maximum snap radius.
var ErrBadRadius = errors.New("snap: max radius must not be negative")
