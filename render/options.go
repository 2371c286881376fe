// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"math"

	"github.com/katalvlaran/drawgraph/core"
)

// Defaults.
const (
	DefaultMargin   = 10.0
	DefaultScale    = 1.0
	DefaultFontSize = 10.0
)

// DefaultHighlight is the selection stroke color.
var DefaultHighlight = color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}

type options struct {
	margin     float64
	scale      float64
	background color.RGBA
	highlight  *core.Graph
	hiColor    color.RGBA
	labels     bool
	title      string
}

// Option configures SVG output.
type Option func(*options)

func newOptions(opts ...Option) options {
	o := options{
		margin:  DefaultMargin,
		scale:   DefaultScale,
		hiColor: DefaultHighlight,
		title:   "drawgraph",
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMargin sets the empty border around the graph bounds. Panics if m is
// negative or not finite.
func WithMargin(m float64) Option {
	if !(m >= 0) || math.IsInf(m, 0) {
		panic("render: WithMargin(negative or non-finite)")
	}
	return func(o *options) { o.margin = m }
}

// WithScale multiplies every coordinate and length. Panics unless s > 0.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("render: WithScale(non-positive)")
	}
	return func(o *options) { o.scale = s }
}

// WithBackground fills the canvas; the default is transparent.
func WithBackground(c color.RGBA) Option {
	return func(o *options) { o.background = c }
}

// WithHighlight strokes the members of sub in the highlight color.
func WithHighlight(sub *core.Graph) Option {
	return func(o *options) { o.highlight = sub }
}

// WithHighlightColor overrides DefaultHighlight.
func WithHighlightColor(c color.RGBA) Option {
	return func(o *options) { o.hiColor = c }
}

// WithLabels draws vertex labels below each vertex.
func WithLabels(on bool) Option {
	return func(o *options) { o.labels = on }
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}
