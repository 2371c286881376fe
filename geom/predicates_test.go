// SPDX-License-Identifier: MIT
package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/drawgraph/geom"
)

func TestSegmentCrossesCircle(t *testing.T) {
	c := geom.Pt(0, 0)
	cases := []struct {
		name     string
		src, dst geom.Point
		want     bool
	}{
		{"passes through", geom.Pt(-20, 0), geom.Pt(20, 0), true},
		{"misses", geom.Pt(-20, 10), geom.Pt(20, 10), false},
		{"starts inside, exits", geom.Pt(0, 0), geom.Pt(20, 0), true},
		{"fully inside", geom.Pt(-1, 0), geom.Pt(1, 0), false},
		{"stops short", geom.Pt(-20, 0), geom.Pt(-10, 0), false},
		{"degenerate", geom.Pt(5, 0), geom.Pt(5, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.SegmentCrossesCircle(tc.src, tc.dst, c, 5))
		})
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	concave := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(5, 4), geom.Pt(0, 10)}

	assert.True(t, geom.PointInPolygon(geom.Pt(5, 5), square))
	assert.False(t, geom.PointInPolygon(geom.Pt(15, 5), square))
	assert.False(t, geom.PointInPolygon(geom.Pt(5, -1), square))
	assert.True(t, geom.PointInPolygon(geom.Pt(2, 3), concave))
	assert.False(t, geom.PointInPolygon(geom.Pt(5, 8), concave))
	assert.False(t, geom.PointInPolygon(geom.Pt(1, 1), square[:2]))
}

func TestSegmentsIntersect(t *testing.T) {
	assert.True(t, geom.SegmentsIntersect(geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(10, 0)))
	assert.False(t, geom.SegmentsIntersect(geom.Pt(0, 0), geom.Pt(4, 4), geom.Pt(0, 10), geom.Pt(10, 0)))
	assert.True(t, geom.SegmentsIntersect(geom.Pt(0, 0), geom.Pt(5, 5), geom.Pt(5, 5), geom.Pt(9, 0)))
	assert.True(t, geom.SegmentsIntersect(geom.Pt(0, 0), geom.Pt(6, 0), geom.Pt(4, 0), geom.Pt(9, 0)))
	assert.False(t, geom.SegmentsIntersect(geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(4, 0), geom.Pt(9, 0)))
}

func TestSegmentCrossesPolygon(t *testing.T) {
	square := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}

	assert.True(t, geom.SegmentCrossesPolygon(geom.Pt(-5, 5), geom.Pt(15, 5), square))
	assert.False(t, geom.SegmentCrossesPolygon(geom.Pt(2, 2), geom.Pt(8, 8), square))
	assert.False(t, geom.SegmentCrossesPolygon(geom.Pt(-5, -5), geom.Pt(-1, 20), square))
}

func TestBounds(t *testing.T) {
	min, max := geom.Bounds(nil)
	assert.Equal(t, geom.Point{}, min)
	assert.Equal(t, geom.Point{}, max)

	min, max = geom.Bounds([]geom.Point{geom.Pt(3, -1), geom.Pt(-2, 4), geom.Pt(0, 0)})
	assert.Equal(t, geom.Pt(-2, -1), min)
	assert.Equal(t, geom.Pt(3, 4), max)
	assert.True(t, geom.InRect(geom.Pt(3, 4), min, max))
	assert.False(t, geom.InRect(geom.Pt(3.1, 4), min, max))
}
