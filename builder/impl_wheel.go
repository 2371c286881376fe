// SPDX-License-Identifier: MIT
// Package: drawgraph/builder
//
// impl_wheel.go — Wheel and Star: rings with a spoked hub.
//
// Canonical definitions:
//   • Wheel(n): n rim vertices joined in a cycle plus a hub with n spokes
//     (n ≥ 3). Rim, hub and spoke options are forced on.
//   • Star(n):  n leaves around a hub with n spokes, no rim (n ≥ 1).
//
// Both honor WithStartAngle, styles and labels.

package builder

import (
	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
)

// Wheel returns a Constructor building a wheel of n rim vertices.
func Wheel(center geom.Point, radius float64, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		cfg.outerRing, cfg.center, cfg.spokes = true, true, true

		return buildRing(MethodWheel, g, cfg, center, radius, n)
	}
}

// Star returns a Constructor building a hub with n leaves.
func Star(center geom.Point, radius float64, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		cfg.outerRing, cfg.center, cfg.spokes = false, true, true
		if err := validateMin(MethodStar, n, MinStarLeaves); err != nil {
			return err
		}

		return buildRing(MethodStar, g, cfg, center, radius, n)
	}
}
