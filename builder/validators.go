// SPDX-License-Identifier: MIT
// Package builder: parameter validation shared by the constructors. Each
// helper returns an error wrapping the matching sentinel.

package builder

import (
	"math"

	"github.com/katalvlaran/drawgraph/geom"
)

// validateMin ensures got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "n=%d < min=%d: %w", got, min, ErrTooFewVertices)
	}

	return nil
}

// validateRadius ensures r is positive and finite.
func validateRadius(method string, r float64) error {
	if !(r > 0) || math.IsInf(r, 0) {
		return builderErrorf(method, "radius=%v: %w", r, ErrBadRadius)
	}

	return nil
}

// validatePoints ensures every point is finite.
func validatePoints(method string, pts []geom.Point) error {
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return builderErrorf(method, "point %d is %v: %w", i, p, ErrConstructFailed)
		}
	}

	return nil
}
