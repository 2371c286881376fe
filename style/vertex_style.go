// SPDX-License-Identifier: MIT

package style

import (
	"image/color"
	"math"
)

// VertexStyle is the immutable visual description of a vertex border.
// The zero value is a borderless point (KindNone, radius 0).
type VertexStyle struct {
	shape     Shape
	border    color.RGBA
	fill      color.RGBA
	thickness float64
}

// NewRoundStyle builds a style for a kind drawn from one radius.
// Oblong and regular kinds are rejected with ErrShapeConstructor.
func NewRoundStyle(k Kind, border color.RGBA, thickness, radius float64) (VertexStyle, error) {
	const method = "NewRoundStyle"
	if !k.IsRound() {
		return VertexStyle{}, styleErrorf(method, "%s: %w", k, ErrShapeConstructor)
	}
	if !validLength(radius) || !validLength(thickness) {
		return VertexStyle{}, styleErrorf(method, "radius=%v thickness=%v: %w", radius, thickness, ErrBadExtent)
	}

	return VertexStyle{shape: Round{K: k, Radius: radius}, border: border, thickness: thickness}, nil
}

// NewRegularStyle builds a polygon or star style with the given corner count.
func NewRegularStyle(k Kind, border color.RGBA, thickness, radius float64, points int) (VertexStyle, error) {
	const method = "NewRegularStyle"
	if !k.IsRegular() {
		return VertexStyle{}, styleErrorf(method, "%s: %w", k, ErrShapeConstructor)
	}
	if !validLength(radius) || !validLength(thickness) || points < 3 {
		return VertexStyle{}, styleErrorf(method, "radius=%v thickness=%v points=%d: %w", radius, thickness, points, ErrBadExtent)
	}

	return VertexStyle{shape: Regular{K: k, Radius: radius, Points: points}, border: border, thickness: thickness}, nil
}

// NewOblongStyle builds a rectangle or ellipse style from its full width and
// height.
func NewOblongStyle(k Kind, border color.RGBA, thickness, width, height float64) (VertexStyle, error) {
	const method = "NewOblongStyle"
	if !k.IsOblong() {
		return VertexStyle{}, styleErrorf(method, "%s: %w", k, ErrShapeConstructor)
	}
	if !validLength(width) || !validLength(height) || !validLength(thickness) {
		return VertexStyle{}, styleErrorf(method, "width=%v height=%v thickness=%v: %w", width, height, thickness, ErrBadExtent)
	}

	var s Shape = Rectangle{HalfW: width / 2, HalfH: height / 2}
	if k == KindEllipse {
		s = Ellipse{RX: width / 2, RY: height / 2}
	}

	return VertexStyle{shape: s, border: border, thickness: thickness}, nil
}

// MustRoundStyle is NewRoundStyle that panics on error.
func MustRoundStyle(k Kind, border color.RGBA, thickness, radius float64) VertexStyle {
	return must(NewRoundStyle(k, border, thickness, radius))
}

// MustRegularStyle is NewRegularStyle that panics on error.
func MustRegularStyle(k Kind, border color.RGBA, thickness, radius float64, points int) VertexStyle {
	return must(NewRegularStyle(k, border, thickness, radius, points))
}

// MustOblongStyle is NewOblongStyle that panics on error.
func MustOblongStyle(k Kind, border color.RGBA, thickness, width, height float64) VertexStyle {
	return must(NewOblongStyle(k, border, thickness, width, height))
}

func must(vs VertexStyle, err error) VertexStyle {
	if err != nil {
		panic(err)
	}

	return vs
}

func validLength(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Shape returns the border shape, resolved to a known variant.
func (vs VertexStyle) Shape() Shape { return Resolve(vs.shape) }

// Kind returns the border kind.
func (vs VertexStyle) Kind() Kind { return vs.Shape().Kind() }

// Border returns the border color.
func (vs VertexStyle) Border() color.RGBA { return vs.border }

// Fill returns the fill color; transparent unless set with WithFill.
func (vs VertexStyle) Fill() color.RGBA { return vs.fill }

// Thickness returns the border line width.
func (vs VertexStyle) Thickness() float64 { return vs.thickness }

// AngularRadius forwards to the shape.
func (vs VertexStyle) AngularRadius(theta float64) float64 { return vs.Shape().AngularRadius(theta) }

// WithFill returns a copy of vs with the given fill color.
func (vs VertexStyle) WithFill(c color.RGBA) VertexStyle {
	vs.fill = c
	return vs
}

// WithBorder returns a copy of vs with the given border color.
func (vs VertexStyle) WithBorder(c color.RGBA) VertexStyle {
	vs.border = c
	return vs
}

// WithThickness returns a copy of vs with the given border width. Invalid
// widths leave vs unchanged.
func (vs VertexStyle) WithThickness(t float64) VertexStyle {
	if validLength(t) {
		vs.thickness = t
	}
	return vs
}
