// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Epsilon is the absolute tolerance used by ApproxEqual.
const Epsilon = 1e-6

// Point is a 2-D coordinate, also used as a displacement vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return fromVec(r2.Add(p.vec(), q.vec())) }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return fromVec(r2.Sub(p.vec(), q.vec())) }

// Scale returns p multiplied by f.
func (p Point) Scale(f float64) Point { return fromVec(r2.Scale(f, p.vec())) }

// Neg returns -p.
func (p Point) Neg() Point { return Point{X: -p.X, Y: -p.Y} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return r2.Dot(p.vec(), q.vec()) }

// Cross returns the z component of the 3-D cross product of p and q.
func (p Point) Cross(q Point) float64 { return r2.Cross(p.vec(), q.vec()) }

// Len returns the Euclidean length of p.
func (p Point) Len() float64 { return r2.Norm(p.vec()) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return r2.Norm(r2.Sub(p.vec(), q.vec())) }

// Dist2 returns the squared distance between p and q.
func (p Point) Dist2(q Point) float64 { return r2.Norm2(r2.Sub(p.vec(), q.vec())) }

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

// ApproxEqual reports equality within Epsilon on each axis.
func (p Point) ApproxEqual(q Point) bool {
	return scalar.EqualWithinAbs(p.X, q.X, Epsilon) && scalar.EqualWithinAbs(p.Y, q.Y, Epsilon)
}

// AngleTo returns the direction from p towards q, in [0, 2π).
func (p Point) AngleTo(q Point) float64 { return AngleBetween(q, p) }

// String formats p as "(x, y)" with at most two decimals.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", trimFloat(p.X), trimFloat(p.Y))
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		s = "0"
	}

	return s
}

// AngleBetween returns the angle of p as seen from origin, normalized to
// [0, 2π). Coincident points yield 0.
func AngleBetween(p, origin Point) float64 {
	d := p.Sub(origin)
	if d.X == 0 && d.Y == 0 {
		return 0
	}

	return NormalizeAngle(math.Atan2(d.Y, d.X))
}

// NormalizeAngle maps theta into [0, 2π).
func NormalizeAngle(theta float64) float64 {
	a := math.Mod(theta, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}

	return a
}

// Unit returns the unit vector pointing at angle theta.
func Unit(theta float64) Point {
	s, c := math.Sincos(theta)

	return Point{X: c, Y: s}
}

// Polar returns origin displaced by dist along angle theta.
func Polar(origin Point, theta, dist float64) Point {
	return origin.Add(Unit(theta).Scale(dist))
}
