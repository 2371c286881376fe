// SPDX-License-Identifier: MIT
// Package: style
//
// shape.go — the closed set of vertex border shapes.
//
// Every variant answers three questions for the spatial queries:
//   - AngularRadius(θ): distance from the center to the boundary along θ.
//   - ContainsPoint(offset): is a point (relative to the center) inside?
//   - TouchesCircle(offset, r): does a circle centered at offset with
//     radius r touch the shape?
//
// Angles follow geom: radians, y axis down.

package style

import (
	"math"

	"github.com/katalvlaran/drawgraph/geom"
)

// Shape is a vertex border descriptor. The set of implementations is closed
// to this package.
type Shape interface {
	Kind() Kind
	AngularRadius(theta float64) float64
	ContainsPoint(offset geom.Point) bool
	TouchesCircle(offset geom.Point, r float64) bool

	isShape()
}

// Round covers every kind drawn inside a circle of Radius: circle,
// circle-split, no-sign, diamond, cross, strike and none.
type Round struct {
	K      Kind
	Radius float64
}

// Rectangle is an axis-aligned box with half-extents HalfW and HalfH.
type Rectangle struct {
	HalfW, HalfH float64
}

// Ellipse is an axis-aligned ellipse with semi-axes RX and RY.
type Ellipse struct {
	RX, RY float64
}

// Regular is a polygon or star with Points corners on a circle of Radius.
// The first corner points up.
type Regular struct {
	K      Kind
	Radius float64
	Points int
}

func (Round) isShape() {}
func (Rectangle) isShape() {}
func (Ellipse) isShape() {}
func (Regular) isShape() {}

func (s Round) Kind() Kind { return s.K }
func (Rectangle) Kind() Kind { return KindRectangle }
func (Ellipse) Kind() Kind { return KindEllipse }
func (s Regular) Kind() Kind { return s.K }

func (s Round) AngularRadius(float64) float64 { return s.Radius }

func (s Round) ContainsPoint(offset geom.Point) bool { return offset.Len() <= s.Radius }

func (s Round) TouchesCircle(offset geom.Point, r float64) bool {
	return offset.Len() <= s.Radius+r
}

// AngularRadius returns min(halfW/|cos θ|, halfH/|sin θ|).
func (s Rectangle) AngularRadius(theta float64) float64 {
	sin, cos := math.Sincos(theta)
	c, si := math.Abs(cos), math.Abs(sin)
	switch {
	case c < geom.Epsilon:
		return s.HalfH
	case si < geom.Epsilon:
		return s.HalfW
	}

	return math.Min(s.HalfW/c, s.HalfH/si)
}

func (s Rectangle) ContainsPoint(offset geom.Point) bool {
	return math.Abs(offset.X) <= s.HalfW && math.Abs(offset.Y) <= s.HalfH
}

// TouchesCircle treats the circle as its bounding box.
func (s Rectangle) TouchesCircle(offset geom.Point, r float64) bool {
	return math.Abs(offset.X) <= s.HalfW+r && math.Abs(offset.Y) <= s.HalfH+r
}

func (s Ellipse) AngularRadius(theta float64) float64 {
	return geom.EllipseRadius(s.RX, s.RY, theta)
}

func (s Ellipse) ContainsPoint(offset geom.Point) bool {
	return geom.EllipseContains(s.RX, s.RY, offset)
}

// TouchesCircle holds if the boundaries intersect, the circle covers the
// ellipse center, or the ellipse covers the circle center.
func (s Ellipse) TouchesCircle(offset geom.Point, r float64) bool {
	if geom.EllipseBoundaryMeetsCircle(s.RX, s.RY, offset, r) {
		return true
	}
	d := offset.Len()
	if d <= r {
		return true
	}

	return d <= s.AngularRadius(geom.AngleBetween(offset, geom.Point{}))
}

// regularStart is the angle of the first corner: straight up on screen.
const regularStart = 3 * math.Pi / 2

// AngularRadius of a polygon is R·cos(π/n) / cos(((θ−θ0) mod 2π/n) − π/n).
// Stars use their outer radius.
func (s Regular) AngularRadius(theta float64) float64 {
	if s.K == KindStar || s.Points < 3 {
		return s.Radius
	}
	n := float64(s.Points)
	sector := 2 * math.Pi / n
	local := math.Mod(geom.NormalizeAngle(theta-regularStart), sector)

	return s.Radius * math.Cos(math.Pi/n) / math.Cos(local-math.Pi/n)
}

func (s Regular) ContainsPoint(offset geom.Point) bool {
	return offset.Len() <= s.AngularRadius(geom.AngleBetween(offset, geom.Point{}))
}

func (s Regular) TouchesCircle(offset geom.Point, r float64) bool {
	return offset.Len() <= s.Radius+r
}

// Corners returns the corner offsets of a regular shape, relative to its
// center. Stars alternate outer and inner corners, the inner radius being
// inner×Radius.
func (s Regular) Corners(inner float64) []geom.Point {
	if s.Points < 3 {
		return nil
	}
	n := s.Points
	if s.K == KindStar {
		out := make([]geom.Point, 0, 2*n)
		step := math.Pi / float64(n)
		for i := 0; i < 2*n; i++ {
			r := s.Radius
			if i%2 == 1 {
				r *= inner
			}
			out = append(out, geom.Polar(geom.Point{}, regularStart+float64(i)*step, r))
		}

		return out
	}
	out := make([]geom.Point, 0, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		out = append(out, geom.Polar(geom.Point{}, regularStart+float64(i)*step, s.Radius))
	}

	return out
}

// Extent returns the visual extent of s relative to its center, using the
// angular radius in the four cardinal directions.
func Extent(s Shape) (min, max geom.Point) {
	right := s.AngularRadius(0)
	down := s.AngularRadius(math.Pi / 2)
	left := s.AngularRadius(math.Pi)
	up := s.AngularRadius(3 * math.Pi / 2)

	return geom.Point{X: -left, Y: -up}, geom.Point{X: right, Y: down}
}

// Resolve returns s as one of the known variants or panics with
// ErrUnsupportedShape. A nil shape resolves to a zero-radius none.
func Resolve(s Shape) Shape {
	switch v := s.(type) {
	case nil:
		return Round{K: KindNone}
	case Round, Rectangle, Ellipse, Regular:
		return v
	default:
		panic(ErrUnsupportedShape)
	}
}
