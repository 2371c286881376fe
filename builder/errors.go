// SPDX-License-Identifier: MIT
// Package: drawgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w: "Ring: n=2 < min=3: ...".
//   • Option constructors (WithX) panic instead of returning errors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a vertex count below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadRadius indicates a radius that is not a positive finite number, or
// a drag point that coincides with the center.
var ErrBadRadius = errors.New("builder: invalid radius")

// ErrBadSize indicates invalid grid dimensions or spacing.
var ErrBadSize = errors.New("builder: invalid size/spacing")

// ErrConstructFailed indicates a nil parent or nil constructor, or a core
// refusal to create an entity.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the method name. A %w verb
// in format keeps the wrapped sentinel visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
