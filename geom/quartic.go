// SPDX-License-Identifier: MIT
// Real-root existence for polynomials of degree ≤ 4.
//
// Method:
//   - Coefficients are normalized by their largest magnitude.
//   - A vanishing leading coefficient drops the degree (cubic → quadratic →
//     linear → constant) instead of dividing by ~0.
//   - A true quartic is made monic and depressed to y⁴ + p·y² + q·y + r.
//     With q ≈ 0 it is biquadratic; otherwise Ferrari's resolvent cubic
//     m³ + p·m² + (p²/4 − r)·m − q²/8 = 0 supplies m > 0 and the quartic
//     splits into two quadratics whose larger discriminant decides.

package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// rootTol is the tolerance applied to normalized coefficients and
// discriminants.
const rootTol = 1e-9

// HasRealRoots reports whether a4·x⁴ + a3·x³ + a2·x² + a1·x + a0 = 0 has at
// least one real solution. The zero polynomial counts as having roots.
//
// Complexity: O(1).
func HasRealRoots(a4, a3, a2, a1, a0 float64) bool {
	scale := math.Max(math.Max(math.Abs(a4), math.Abs(a3)),
		math.Max(math.Max(math.Abs(a2), math.Abs(a1)), math.Abs(a0)))
	if scale == 0 {
		return true
	}
	a4, a3, a2, a1, a0 = a4/scale, a3/scale, a2/scale, a1/scale, a0/scale

	if scalar.EqualWithinAbs(a4, 0, rootTol) {
		return cubicHasRealRoots(a3, a2, a1, a0)
	}

	b, c, d, e := a3/a4, a2/a4, a1/a4, a0/a4
	b2 := b * b
	p := c - 3*b2/8
	q := d - b*c/2 + b2*b/8
	r := e - b*d/4 + b2*c/16 - 3*b2*b2/256

	return depressedQuarticHasRealRoots(p, q, r)
}

// cubicHasRealRoots handles the degree-dropped cascade.
func cubicHasRealRoots(a3, a2, a1, a0 float64) bool {
	switch {
	case !scalar.EqualWithinAbs(a3, 0, rootTol):
		return true // odd degree
	case !scalar.EqualWithinAbs(a2, 0, rootTol):
		return a1*a1-4*a2*a0 >= -rootTol
	case !scalar.EqualWithinAbs(a1, 0, rootTol):
		return true
	default:
		return scalar.EqualWithinAbs(a0, 0, rootTol)
	}
}

func depressedQuarticHasRealRoots(p, q, r float64) bool {
	if scalar.EqualWithinAbs(q, 0, rootTol) {
		// z² + p·z + r with z = y² ≥ 0
		disc := p*p - 4*r
		if disc < -rootTol {
			return false
		}
		z := (-p + math.Sqrt(math.Max(disc, 0))) / 2

		return z >= -rootTol
	}

	m := largestCubicRoot(p, p*p/4-r, -q*q/8)
	if m <= 0 {
		// q ≠ 0 forces a positive resolvent root; only rounding lands here.
		m = rootTol
	}
	s := math.Sqrt(2 * m)
	disc := -2*m - 2*p + math.Abs(s*q)/m

	return disc >= -rootTol*(1+math.Abs(p)+m)
}

// largestCubicRoot returns the largest real root of t³ + a·t² + b·t + c.
func largestCubicRoot(a, b, c float64) float64 {
	shift := a / 3
	p := b - a*a/3
	q := 2*a*a*a/27 - a*b/3 + c
	delta := q*q/4 + p*p*p/27

	var u float64
	switch {
	case delta > 0:
		sq := math.Sqrt(delta)
		u = math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq)
	case p == 0:
		u = math.Cbrt(-q)
	default:
		k := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (p * k)
		arg = math.Max(-1, math.Min(1, arg))
		u = k * math.Cos(math.Acos(arg)/3)
	}

	return u - shift
}
