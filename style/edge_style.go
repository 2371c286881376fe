// SPDX-License-Identifier: MIT

package style

import (
	"image/color"
)

// EdgeStyle is the immutable visual description of an edge line and its two
// end caps. The zero value is a transparent solid line of zero thickness.
type EdgeStyle struct {
	dash      Dash
	color     color.RGBA
	density   Density
	dashWidth float64
	spacing   float64
	offset    float64
	thickness float64
	source    Cap
	dest      Cap
}

// NewSolidEdgeStyle builds a solid line.
func NewSolidEdgeStyle(c color.RGBA, thickness float64) (EdgeStyle, error) {
	if !validLength(thickness) {
		return EdgeStyle{}, styleErrorf("NewSolidEdgeStyle", "thickness=%v: %w", thickness, ErrBadExtent)
	}

	return EdgeStyle{dash: DashSolid, color: c, thickness: thickness}, nil
}

// NewDashedEdgeStyle builds a patterned line. Solid and none are rejected
// with ErrDashConstructor.
func NewDashedEdgeStyle(d Dash, c color.RGBA, density Density, dashWidth, spacing, offset, thickness float64) (EdgeStyle, error) {
	const method = "NewDashedEdgeStyle"
	if d == DashSolid || d == DashNone || int(d) >= len(dashNames) {
		return EdgeStyle{}, styleErrorf(method, "%s: %w", d, ErrDashConstructor)
	}
	if !validLength(dashWidth) || !validLength(spacing) || !validLength(thickness) {
		return EdgeStyle{}, styleErrorf(method, "width=%v spacing=%v thickness=%v: %w", dashWidth, spacing, thickness, ErrBadExtent)
	}

	return EdgeStyle{
		dash:      d,
		color:     c,
		density:   density,
		dashWidth: dashWidth,
		spacing:   spacing,
		offset:    offset,
		thickness: thickness,
	}, nil
}

// MustSolidEdgeStyle is NewSolidEdgeStyle that panics on error.
func MustSolidEdgeStyle(c color.RGBA, thickness float64) EdgeStyle {
	es, err := NewSolidEdgeStyle(c, thickness)
	if err != nil {
		panic(err)
	}

	return es
}

func (es EdgeStyle) Dash() Dash { return es.dash }
func (es EdgeStyle) Color() color.RGBA { return es.color }
func (es EdgeStyle) Density() Density { return es.density }
func (es EdgeStyle) DashWidth() float64 { return es.dashWidth }
func (es EdgeStyle) DashSpacing() float64 { return es.spacing }
func (es EdgeStyle) PatternOffset() float64 { return es.offset }
func (es EdgeStyle) Thickness() float64 { return es.thickness }
func (es EdgeStyle) SourceCap() Cap { return es.source }
func (es EdgeStyle) DestinationCap() Cap { return es.dest }
func (es EdgeStyle) Directed() bool { return es.source != CapNone || es.dest != CapNone }

// WithSourceCap returns a copy of es with the source-end cap replaced.
func (es EdgeStyle) WithSourceCap(c Cap) EdgeStyle {
	es.source = c
	return es
}

// WithDestinationCap returns a copy of es with the destination-end cap
// replaced.
func (es EdgeStyle) WithDestinationCap(c Cap) EdgeStyle {
	es.dest = c
	return es
}

// WithColor returns a copy of es drawn in c.
func (es EdgeStyle) WithColor(c color.RGBA) EdgeStyle {
	es.color = c
	return es
}

// WithThickness returns a copy of es with the given line width. Invalid
// widths leave es unchanged.
func (es EdgeStyle) WithThickness(t float64) EdgeStyle {
	if validLength(t) {
		es.thickness = t
	}
	return es
}
