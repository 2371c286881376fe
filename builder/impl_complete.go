// SPDX-License-Identifier: MIT
// Package: drawgraph/builder
//
// impl_complete.go — Complete(center, radius, n): every pair of n ring
// vertices joined.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); radius as in Ring.
//   • Edges emitted for i < j in lexicographic (i, j) order.
//   • Hub options are ignored; the start angle applies.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
)

// Complete returns a Constructor building K_n on a ring layout.
func Complete(center geom.Point, radius float64, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		if err := validateRadius(MethodComplete, radius); err != nil {
			return err
		}
		if err := validatePoints(MethodComplete, []geom.Point{center}); err != nil {
			return err
		}

		ids := cfg.addVertices(g, ringPoints(center, radius, cfg.startAngle, n))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.addEdge(MethodComplete, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
