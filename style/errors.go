// SPDX-License-Identifier: MIT
// Package: style
//
// errors.go — sentinel errors for the style package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors wrap sentinels with the failing constructor and value.

package style

import (
	"errors"
	"fmt"
)

// ErrShapeConstructor indicates a border kind was passed to a constructor of
// the wrong family, e.g. a rectangle built with NewRegularStyle.
var ErrShapeConstructor = errors.New("style: shape kind requires a different constructor")

// ErrBadExtent indicates a negative or non-finite radius, width, height or
// thickness, or a regular shape with fewer than three points.
var ErrBadExtent = errors.New("style: invalid extent")

// ErrUnsupportedShape indicates a shape value outside the closed set of
// variants reached a dispatch point. It is a programming error and is raised
// by panic.
var ErrUnsupportedShape = errors.New("style: unsupported shape")

// ErrDashConstructor indicates a solid or blank line kind was passed to the
// dashed edge style constructor.
var ErrDashConstructor = errors.New("style: line kind requires a different constructor")

// ErrUnknownName indicates a textual kind name that does not parse.
var ErrUnknownName = errors.New("style: unknown name")

// ErrBadColor indicates a color literal that is not #rrggbb or #rrggbbaa.
var ErrBadColor = errors.New("style: invalid color")

// styleErrorf prefixes a wrapped error with the constructor name. The format
// must contain exactly one %w.
func styleErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
