// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
	"github.com/katalvlaran/drawgraph/style"
)

func TestQueriesOnEmptyGraph(t *testing.T) {
	g := core.NewGraph()

	assert.True(t, g.GetSubgraphWithin(geom.Pt(0, 0), 10, 10).IsEmpty())
	assert.True(t, g.GetSubgraphTouchingCircle(geom.Pt(0, 0), 10).IsEmpty())
	assert.True(t, g.GetSubgraphTouchingPolygon([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1)}).IsEmpty())
	_, ok := g.GetPointClosestTo(geom.Pt(0, 0))
	assert.False(t, ok)
	_, _, ok = g.NearestEdgeEnd(geom.Pt(0, 0), 5)
	assert.False(t, ok)
}

func TestGetSubgraphWithinRequiresFullExtent(t *testing.T) {
	g := core.NewGraph()
	inside := g.CreateVertex(geom.Pt(20, 20))
	straddling := g.CreateVertex(geom.Pt(45, 20))
	e := g.CreateEdge(inside, straddling)

	view := g.GetSubgraphWithin(geom.Pt(0, 0), 50, 50)
	assert.Equal(t, []core.VertexID{inside}, view.VertexIDs())
	assert.Equal(t, []core.EdgeID{e}, view.EdgeIDs(), "edge pulled in by its qualifying endpoint")
	assert.True(t, view.IsDetached())

	// Dragging a rectangle up and to the left selects the same region.
	flipped := g.GetSubgraphWithin(geom.Pt(50, 50), -50, -50)
	assert.Equal(t, view.VertexIDs(), flipped.VertexIDs())
}

func TestGetSubgraphTouchingCircle(t *testing.T) {
	g := core.NewGraph()
	round := g.CreateVertex(geom.Pt(0, 0))
	rect := g.CreateVertex(geom.Pt(100, 0),
		core.WithVertexStyle(style.MustOblongStyle(style.KindRectangle, style.Black, 1, 40, 20)))
	ell := g.CreateVertex(geom.Pt(0, 100),
		core.WithVertexStyle(style.MustOblongStyle(style.KindEllipse, style.Black, 1, 40, 20)))
	far := g.CreateVertex(geom.Pt(300, 300))

	cases := []struct {
		name   string
		center geom.Point
		r      float64
		want   []core.VertexID
	}{
		{"round within r+R", geom.Pt(14, 0), 5, []core.VertexID{round}},
		{"round exactly at r+R", geom.Pt(15, 0), 5, []core.VertexID{round}},
		{"round just outside", geom.Pt(16, 0), 5, nil},
		{"rectangle box overlap", geom.Pt(124, 0), 5, []core.VertexID{rect}},
		{"rectangle corner box", geom.Pt(124, 14), 5, []core.VertexID{rect}},
		{"rectangle miss", geom.Pt(100, 16), 5, nil},
		{"ellipse boundary crossing", geom.Pt(22, 100), 5, []core.VertexID{ell}},
		{"ellipse short axis miss", geom.Pt(0, 116), 5, nil},
		{"point inside ellipse", geom.Pt(5, 102), 0, []core.VertexID{ell}},
		{"covers everything near origin", geom.Pt(50, 50), 80, []core.VertexID{round, rect, ell}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.GetSubgraphTouchingCircle(tc.center, tc.r).VertexIDs()
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
	_ = far
}

func TestCircleQueryTakesCrossingEdges(t *testing.T) {
	g := core.NewGraph()
	a := g.CreateVertex(geom.Pt(0, 0), core.WithVertexStyle(pointStyle))
	b := g.CreateVertex(geom.Pt(100, 0), core.WithVertexStyle(pointStyle))
	e := g.CreateEdge(a, b)

	view := g.GetSubgraphTouchingCircle(geom.Pt(50, 3), 5)
	assert.Empty(t, view.VertexIDs())
	assert.Equal(t, []core.EdgeID{e}, view.EdgeIDs())

	view = g.GetSubgraphTouchingCircle(geom.Pt(50, 30), 5)
	assert.True(t, view.IsEmpty())
}

func TestGetSubgraphTouchingPolygon(t *testing.T) {
	g := core.NewGraph()
	in := g.CreateVertex(geom.Pt(5, 5), core.WithVertexStyle(pointStyle))
	out := g.CreateVertex(geom.Pt(15, 5), core.WithVertexStyle(pointStyle))
	e := g.CreateEdge(in, out)

	square := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(0, 0)}
	view := g.GetSubgraphTouchingPolygon(square)
	assert.Equal(t, []core.VertexID{in}, view.VertexIDs())
	assert.Equal(t, []core.EdgeID{e}, view.EdgeIDs())

	// An edge passing through the ring with both ends outside.
	a := g.CreateVertex(geom.Pt(-5, 8), core.WithVertexStyle(pointStyle))
	b := g.CreateVertex(geom.Pt(20, 8), core.WithVertexStyle(pointStyle))
	through := g.CreateEdge(a, b)
	view = g.GetSubgraphTouchingPolygon(square)
	assert.Contains(t, view.EdgeIDs(), through)
	assert.NotContains(t, view.VertexIDs(), a)

	assert.True(t, g.GetSubgraphTouchingPolygon(square[:2]).IsEmpty(), "fewer than three points")
}

func TestPointPicks(t *testing.T) {
	g, a, b, _, ab, _, _ := triangle(t)

	id, ok := g.GetPointClosestTo(geom.Pt(70, 10))
	require.True(t, ok)
	assert.Equal(t, b, id)

	pos, ok := g.NearestPosition(geom.Pt(-3, 2))
	require.True(t, ok)
	assert.Equal(t, geom.Pt(0, 0), pos)

	assert.Equal(t, []core.VertexID{a}, g.VerticesAt(geom.Pt(9, -9)))
	assert.Empty(t, g.VerticesAt(geom.Pt(50, 50)))

	e, end, ok := g.NearestEdgeEnd(geom.Pt(85, 2), 6)
	require.True(t, ok)
	assert.Equal(t, ab, e)
	assert.Equal(t, core.EndDestination, end)
}

func TestQueryOnSelection(t *testing.T) {
	g, a, _, _, _, _, _ := triangle(t)
	sel := g.GetSubgraphWithin(geom.Pt(-50, -50), 100, 100)

	hit := sel.GetSubgraphTouchingCircle(geom.Pt(0, 0), TinyPick)
	assert.Equal(t, []core.VertexID{a}, hit.VertexIDs())
	miss := sel.GetSubgraphTouchingCircle(geom.Pt(Spacing, 0), TinyPick)
	assert.Empty(t, miss.VertexIDs(), "b is not in the selection")
}
