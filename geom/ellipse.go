// SPDX-License-Identifier: MIT

package geom

import "math"

// EllipseRadius returns the distance from the center of an axis-aligned
// ellipse with semi-axes rx, ry to its boundary along angle theta.
func EllipseRadius(rx, ry, theta float64) float64 {
	if rx <= 0 || ry <= 0 {
		return 0
	}
	s, c := math.Sincos(theta)

	return rx * ry / math.Sqrt((ry*c)*(ry*c)+(rx*s)*(rx*s))
}

// EllipseContains reports whether offset (relative to the ellipse center)
// lies inside or on the axis-aligned ellipse with semi-axes rx, ry.
func EllipseContains(rx, ry float64, offset Point) bool {
	if rx <= 0 || ry <= 0 {
		return offset.X == 0 && offset.Y == 0
	}
	nx, ny := offset.X/rx, offset.Y/ry

	return nx*nx+ny*ny <= 1+Epsilon
}

// EllipseBoundaryMeetsCircle reports whether the boundary of the axis-aligned
// ellipse (semi-axes a, b, centered at the origin) meets the boundary of the
// circle centered at c with radius r.
//
// The ellipse is parameterized with u = tan(t/2):
//
//	x = a(1−u²)/(1+u²), y = 2bu/(1+u²)
//
// Substituting into (x−h)² + (y−k)² = r² gives a quartic in u whose real
// roots are the intersections. The point (−a, 0) corresponds to u = ∞ and
// is tested directly. Lengths are normalized by max(a, b) first.
func EllipseBoundaryMeetsCircle(a, b float64, c Point, r float64) bool {
	if a <= 0 || b <= 0 {
		return math.Abs(c.Len()-r) <= Epsilon
	}
	l := math.Max(a, b)
	a, b, h, k, r := a/l, b/l, c.X/l, c.Y/l, r/l

	ah, am := a+h, a-h
	a4 := ah*ah + k*k - r*r
	if math.Abs(a4) <= rootTol {
		return true // (−a, 0) lies on the circle
	}
	a3 := -4 * b * k
	a2 := -2*(a*a-h*h) + 4*b*b + 2*k*k - 2*r*r
	a1 := -4 * b * k
	a0 := am*am + k*k - r*r

	return HasRealRoots(a4, a3, a2, a1, a0)
}
