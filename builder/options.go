// SPDX-License-Identifier: MIT
// Package: drawgraph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Later options override earlier ones.
//
// AI-Hints:
//   • WithSpokes implies a hub vertex; WithCenter(false) does not remove it.
//   • Styles given here replace the graph defaults for every emitted entity.

package builder

import (
	"math"

	"github.com/katalvlaran/drawgraph/style"
)

// Option customizes a constructor before it runs.
type Option func(*builderConfig)

// WithOuterRing toggles the rim edges joining consecutive ring vertices.
func WithOuterRing(on bool) Option {
	return func(c *builderConfig) { c.outerRing = on }
}

// WithCenter toggles an extra vertex at the ring center.
func WithCenter(on bool) Option {
	return func(c *builderConfig) { c.center = on }
}

// WithSpokes toggles edges from the center vertex to every ring vertex.
func WithSpokes(on bool) Option {
	return func(c *builderConfig) { c.spokes = on }
}

// WithStartAngle sets the angle, in radians, of the first ring vertex.
// Panics on NaN or ±Inf.
func WithStartAngle(theta float64) Option {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		panic("builder: WithStartAngle(non-finite)")
	}
	return func(c *builderConfig) { c.startAngle = theta }
}

// WithVertexStyle sets the style of every emitted vertex.
func WithVertexStyle(vs style.VertexStyle) Option {
	return func(c *builderConfig) {
		c.vertexStyle = vs
		c.hasVertexStyle = true
	}
}

// WithEdgeStyle sets the style of every emitted edge.
func WithEdgeStyle(es style.EdgeStyle) Option {
	return func(c *builderConfig) {
		c.edgeStyle = es
		c.hasEdgeStyle = true
	}
}

// WithLabels labels emitted vertices by index instead of by position.
// Panics on nil.
func WithLabels(fn LabelFn) Option {
	if fn == nil {
		panic("builder: WithLabels(nil)")
	}
	return func(c *builderConfig) { c.labelFn = fn }
}
