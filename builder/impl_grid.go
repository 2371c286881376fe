// SPDX-License-Identifier: MIT
// Package: drawgraph/builder
//
// impl_grid.go — Grid(corner, rows, cols, spacing) constructor.
//
// Canonical model:
//   • Orthogonal lattice with 4-neighbourhood; vertex (r, c) sits at
//     corner + (c·spacing, r·spacing).
//   • With WithLabels the label of (r, c) is labelFn(r·cols + c).
//
// Contract:
//   • rows ≥ 1, cols ≥ 1, spacing > 0 and finite (else ErrBadSize).
//   • Vertices in row-major order; for each (r, c) emit Right then Bottom.
//
// Complexity: O(rows·cols) vertices and edges.

package builder

import (
	"math"

	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
)

// Grid returns a Constructor building a rows×cols lattice.
func Grid(corner geom.Point, rows, cols int, spacing float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(MethodGrid, "rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, MinGridDim, ErrBadSize)
		}
		if !(spacing > 0) || math.IsInf(spacing, 0) {
			return builderErrorf(MethodGrid, "spacing=%v: %w", spacing, ErrBadSize)
		}
		if err := validatePoints(MethodGrid, []geom.Point{corner}); err != nil {
			return err
		}

		pts := make([]geom.Point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, corner.Add(geom.Pt(float64(c)*spacing, float64(r)*spacing)))
			}
		}
		ids := cfg.addVertices(g, pts)
		at := func(r, c int) core.VertexID { return ids[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := cfg.addEdge(MethodGrid, g, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.addEdge(MethodGrid, g, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
