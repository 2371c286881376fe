// SPDX-License-Identifier: MIT
// Package: drawgraph/builder
//
// impl_ring.go — Ring and RingThrough constructors.
//
// Contract:
//   • n ≥ 3 with the outer ring, n ≥ 1 without (else ErrTooFewVertices).
//   • radius > 0 and finite (else ErrBadRadius).
//   • Ring vertices are emitted in index order at startAngle + i·2π/n.
//   • Edge order: rim i→(i+1)%n for i ascending, then spokes hub→i.
//   • The hub, if any, is emitted after the ring vertices.
//
// Complexity: O(n) vertices and edges.

package builder

import (
	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
)

// Ring returns a Constructor placing n vertices evenly on the circle of the
// given center and radius, shaped by WithOuterRing, WithCenter, WithSpokes
// and WithStartAngle.
func Ring(center geom.Point, radius float64, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return buildRing(MethodRing, g, cfg, center, radius, n)
	}
}

// RingThrough is Ring sized by a drag: the radius is the distance from
// center to through and the first vertex sits on through. The configured
// start angle is ignored.
func RingThrough(center, through geom.Point, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if through.Equal(center) {
			return builderErrorf(MethodRing, "drag point equals center %v: %w", center, ErrBadRadius)
		}
		cfg.startAngle = geom.AngleBetween(through, center)

		return buildRing(MethodRing, g, cfg, center, through.Dist(center), n)
	}
}

func buildRing(method string, g *core.Graph, cfg builderConfig, center geom.Point, radius float64, n int) error {
	min := MinOpenRingNodes
	if cfg.outerRing {
		min = MinRingNodes
	}
	if err := validateMin(method, n, min); err != nil {
		return err
	}
	if err := validateRadius(method, radius); err != nil {
		return err
	}
	if err := validatePoints(method, []geom.Point{center}); err != nil {
		return err
	}

	rim := cfg.addVertices(g, ringPoints(center, radius, cfg.startAngle, n))
	if cfg.outerRing {
		for i := range rim {
			if err := cfg.addEdge(method, g, rim[i], rim[(i+1)%n]); err != nil {
				return err
			}
		}
	}
	if !cfg.hub() {
		return nil
	}

	hub := g.CreateVertex(center, cfg.vertexOptions(-1)...)
	if !cfg.spokes {
		return nil
	}
	for _, v := range rim {
		if err := cfg.addEdge(method, g, hub, v); err != nil {
			return err
		}
	}

	return nil
}
