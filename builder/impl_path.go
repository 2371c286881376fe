// SPDX-License-Identifier: MIT
// Package: drawgraph/builder
//
// impl_path.go — Path and Polygon constructors over explicit points.
//
// Contract:
//   • Path needs ≥ 2 points, Polygon ≥ 3 (else ErrTooFewVertices).
//   • Vertices are emitted in point order; edges i→i+1, and for Polygon the
//     closing edge last→first.
//   • Non-finite points fail with ErrConstructFailed before anything is made.

package builder

import (
	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
)

// Path returns a Constructor joining pts into an open polyline.
func Path(pts ...geom.Point) Constructor {
	pts = append([]geom.Point(nil), pts...)

	return func(g *core.Graph, cfg builderConfig) error {
		return buildChain(MethodPath, g, cfg, pts, MinPathNodes, false)
	}
}

// Polygon returns a Constructor joining pts into a closed ring.
func Polygon(pts ...geom.Point) Constructor {
	pts = append([]geom.Point(nil), pts...)

	return func(g *core.Graph, cfg builderConfig) error {
		return buildChain(MethodPolygon, g, cfg, pts, MinRingNodes, true)
	}
}

func buildChain(method string, g *core.Graph, cfg builderConfig, pts []geom.Point, min int, closed bool) error {
	if err := validateMin(method, len(pts), min); err != nil {
		return err
	}
	if err := validatePoints(method, pts); err != nil {
		return err
	}

	ids := cfg.addVertices(g, pts)
	for i := 0; i+1 < len(ids); i++ {
		if err := cfg.addEdge(method, g, ids[i], ids[i+1]); err != nil {
			return err
		}
	}
	if closed {
		return cfg.addEdge(method, g, ids[len(ids)-1], ids[0])
	}

	return nil
}
