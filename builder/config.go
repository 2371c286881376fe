// SPDX-License-Identifier: MIT
// Package: drawgraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • outerRing  = true
//   • center     = false
//   • spokes     = false
//   • startAngle = 0
//   • styles     = the target graph's defaults
//   • labelFn    = nil (vertex labels are position strings)

package builder

import (
	"math"

	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
	"github.com/katalvlaran/drawgraph/style"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value, so constructors may adjust a local copy.
type builderConfig struct {
	outerRing  bool
	center     bool
	spokes     bool
	startAngle float64

	vertexStyle    style.VertexStyle
	hasVertexStyle bool
	edgeStyle      style.EdgeStyle
	hasEdgeStyle   bool

	labelFn LabelFn
}

// newBuilderConfig applies opts over the defaults in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{outerRing: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// hub reports whether a center vertex is emitted.
func (c builderConfig) hub() bool { return c.center || c.spokes }

// vertexOptions returns the core options for the vertex at emission index
// idx; idx < 0 denotes the hub.
func (c builderConfig) vertexOptions(idx int) []core.VertexOption {
	var opts []core.VertexOption
	if c.hasVertexStyle {
		opts = append(opts, core.WithVertexStyle(c.vertexStyle))
	}
	if c.labelFn != nil {
		label := CenterLabel
		if idx >= 0 {
			label = c.labelFn(idx)
		}
		opts = append(opts, core.WithLabel(label))
	}

	return opts
}

func (c builderConfig) edgeOptions() []core.EdgeOption {
	if !c.hasEdgeStyle {
		return nil
	}

	return []core.EdgeOption{core.WithEdgeStyle(c.edgeStyle)}
}

// addVertices creates one vertex per point in emission order.
func (c builderConfig) addVertices(g *core.Graph, pts []geom.Point) []core.VertexID {
	ids := make([]core.VertexID, len(pts))
	for i, p := range pts {
		ids[i] = g.CreateVertex(p, c.vertexOptions(i)...)
	}

	return ids
}

// addEdge joins u and v, failing if core refuses the edge.
func (c builderConfig) addEdge(method string, g *core.Graph, u, v core.VertexID) error {
	if g.CreateEdge(u, v, c.edgeOptions()...).IsZero() {
		return builderErrorf(method, "CreateEdge(%s→%s): %w", u, v, ErrConstructFailed)
	}

	return nil
}

// ringPoints returns n points on the circle (center, radius), the first at
// startAngle, advancing by 2π/n.
func ringPoints(center geom.Point, radius, startAngle float64, n int) []geom.Point {
	pts := make([]geom.Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		pts[i] = geom.Polar(center, startAngle+float64(i)*step, radius)
	}

	return pts
}
