// SPDX-License-Identifier: MIT

package geom

import "math"

// Round quantizes v to a multiple of step: v minus its remainder, moved one
// further step away from zero when the remainder exceeds half a step. A
// non-positive step returns v unchanged.
//
// Examples:
//
//	Round(9.055, 10) == 10
//	Round(4, 10)     == 0
//	Round(-7, 10)    == -10
func Round(v, step float64) float64 {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return v
	}
	rem := math.Mod(v, step)
	out := v - rem
	if math.Abs(rem) > step/2 {
		out += math.Copysign(step, v)
	}

	return out
}
