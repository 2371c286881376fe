// SPDX-License-Identifier: MIT

package geom

import "math"

// SegmentCrossesCircle reports whether the open segment (src, dst) meets the
// boundary of the circle. With d = dst−src and f = src−center it solves
// |f + t·d|² = r² and accepts a root strictly inside (0, 1). A degenerate
// segment never crosses.
func SegmentCrossesCircle(src, dst, center Point, r float64) bool {
	d := dst.Sub(src)
	f := src.Sub(center)
	a := d.Dot(d)
	if a == 0 {
		return false
	}
	b := 2 * f.Dot(d)
	c := f.Dot(f) - r*r
	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	return (t1 > 0 && t1 < 1) || (t2 > 0 && t2 < 1)
}

// Bounds returns the axis-aligned bounding box of pts. An empty slice yields
// two zero points.
func Bounds(pts []Point) (min, max Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}

	return min, max
}

// InRect reports whether p lies in the closed box [min, max].
func InRect(p, min, max Point) bool {
	return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
}

// PointInPolygon reports whether p lies inside the closed ring. It rejects
// on the bounding box, then casts a ray towards +x and counts crossings.
// Vertical sides are handled without computing a slope. Rings with fewer
// than three points contain nothing.
//
// Complexity: O(n).
func PointInPolygon(p Point, ring []Point) bool {
	if len(ring) < 3 {
		return false
	}
	min, max := Bounds(ring)
	if !InRect(p, min, max) {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := range ring {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			var x float64
			if a.X == b.X {
				x = a.X
			} else {
				x = a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			}
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}

	return inside
}

// orientation returns the sign of the turn a→b→c: 1 counter-clockwise,
// -1 clockwise, 0 collinear (within tolerance).
func orientation(a, b, c Point) int {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > Epsilon:
		return 1
	case v < -Epsilon:
		return -1
	default:
		return 0
	}
}

func onSegment(a, b, p Point) bool {
	return p.X >= math.Min(a.X, b.X)-Epsilon && p.X <= math.Max(a.X, b.X)+Epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-Epsilon && p.Y <= math.Max(a.Y, b.Y)+Epsilon
}

// SegmentsIntersect reports whether closed segments p1p2 and q1q2 share a
// point, including touching and collinear overlap.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	switch {
	case o1 == 0 && onSegment(p1, p2, q1):
		return true
	case o2 == 0 && onSegment(p1, p2, q2):
		return true
	case o3 == 0 && onSegment(q1, q2, p1):
		return true
	case o4 == 0 && onSegment(q1, q2, p2):
		return true
	}

	return false
}

// SegmentCrossesPolygon reports whether segment ab meets any side of the
// closed ring.
func SegmentCrossesPolygon(a, b Point, ring []Point) bool {
	if len(ring) < 2 {
		return false
	}
	j := len(ring) - 1
	for i := range ring {
		if SegmentsIntersect(a, b, ring[j], ring[i]) {
			return true
		}
		j = i
	}

	return false
}
