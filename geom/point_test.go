// SPDX-License-Identifier: MIT
package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drawgraph/geom"
)

func TestPointArithmetic(t *testing.T) {
	p, q := geom.Pt(3, 4), geom.Pt(1, -2)

	assert.Equal(t, geom.Pt(4, 2), p.Add(q))
	assert.Equal(t, geom.Pt(2, 6), p.Sub(q))
	assert.Equal(t, geom.Pt(6, 8), p.Scale(2))
	assert.Equal(t, geom.Pt(-3, -4), p.Neg())
	assert.InDelta(t, 5.0, p.Len(), 1e-12)
	assert.InDelta(t, 5.0, p.Dist(geom.Point{}), 1e-12)
	assert.InDelta(t, 25.0, p.Dist2(geom.Point{}), 1e-12)
	assert.InDelta(t, -5.0, p.Dot(q), 1e-12)
	assert.InDelta(t, -10.0, p.Cross(q), 1e-12)
}

func TestPointEquality(t *testing.T) {
	p := geom.Pt(1, 1)

	assert.True(t, p.Equal(geom.Pt(1, 1)))
	assert.False(t, p.Equal(geom.Pt(1, 1+1e-9)))
	assert.True(t, p.ApproxEqual(geom.Pt(1, 1+1e-9)))
	assert.False(t, p.ApproxEqual(geom.Pt(1, 1+1e-3)))
}

func TestAngleBetween(t *testing.T) {
	o := geom.Pt(10, 10)
	cases := []struct {
		name string
		p    geom.Point
		want float64
	}{
		{"east", geom.Pt(20, 10), 0},
		{"south (y down)", geom.Pt(10, 20), math.Pi / 2},
		{"west", geom.Pt(0, 10), math.Pi},
		{"north", geom.Pt(10, 0), 3 * math.Pi / 2},
		{"coincident", o, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geom.AngleBetween(tc.p, o)
			assert.InDelta(t, tc.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 2*math.Pi)
		})
	}
	assert.InDelta(t, math.Pi, o.AngleTo(geom.Pt(0, 10)), 1e-12)
}

func TestNormalizeAngleAndPolar(t *testing.T) {
	assert.InDelta(t, math.Pi/2, geom.NormalizeAngle(-3*math.Pi/2), 1e-12)
	assert.InDelta(t, 0, geom.NormalizeAngle(4*math.Pi), 1e-12)

	p := geom.Polar(geom.Pt(1, 1), math.Pi/2, 3)
	assert.True(t, p.ApproxEqual(geom.Pt(1, 4)))
}

func TestPointString(t *testing.T) {
	require.Equal(t, "(1.5, -2)", geom.Pt(1.5, -2).String())
	require.Equal(t, "(0, 0.33)", geom.Pt(-0.0001, 1.0/3).String())
}

func TestRound(t *testing.T) {
	cases := []struct {
		v, step, want float64
	}{
		{9.055, 10, 10},
		{4, 10, 0},
		{5, 10, 0},
		{6, 10, 10},
		{-7, 10, -10},
		{-3, 10, 0},
		{23, 10, 20},
		{7, 0, 7},
		{7, -1, 7},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, geom.Round(tc.v, tc.step), 1e-12, "Round(%v, %v)", tc.v, tc.step)
	}
}

func TestUnits(t *testing.T) {
	assert.InDelta(t, 96.0, geom.InToPx(1), 1e-12)
	assert.InDelta(t, 1.0, geom.PxToIn(96), 1e-12)
	assert.InDelta(t, 37.795275590551, geom.MMToPx(10), 1e-9)
	assert.InDelta(t, 10.0, geom.PxToMM(geom.MMToPx(10)), 1e-12)
	assert.InDelta(t, 25.4, geom.InToMM(1), 1e-12)
	assert.InDelta(t, 1.0, geom.MMToIn(25.4), 1e-12)
}
