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

func TestAddSubgraphIsOneStep(t *testing.T) {
	g := core.NewGraph()
	scratch := g.NewSubgraph()
	a := scratch.CreateVertex(geom.Pt(0, 0))
	b := scratch.CreateVertex(geom.Pt(40, 0))
	c := scratch.CreateVertex(geom.Pt(0, 40))
	scratch.CreateEdge(a, b)
	scratch.CreateEdge(b, c)
	require.False(t, g.CanUndo(), "scratch graphs record nothing into g")

	require.True(t, g.AddSubgraph(scratch))
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	requireConsistent(t, g)

	g.Undo()
	assert.True(t, g.IsEmpty())
	assert.False(t, g.CanUndo())

	g.Redo()
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	requireConsistent(t, g)
}

func TestAddSubgraphAtTranslates(t *testing.T) {
	g := core.NewGraph()
	scratch := g.NewSubgraph()
	a := scratch.CreateVertex(geom.Pt(1, 2))

	require.True(t, g.AddSubgraphAt(scratch, geom.Pt(10, 20)))
	pos, ok := g.Position(a)
	require.True(t, ok)
	assert.Equal(t, geom.Pt(11, 22), pos)
}

func TestAddSubgraphForeignArenaPanics(t *testing.T) {
	g := core.NewGraph()
	other := core.NewGraph()
	other.CreateVertex(geom.Pt(0, 0))

	assert.PanicsWithValue(t, core.ErrForeignGraph, func() { g.AddSubgraph(other) })
	assert.PanicsWithValue(t, core.ErrForeignGraph, func() { g.RemoveSubgraph(other) })
	assert.False(t, g.AddSubgraph(nil))
}

// Removing a selection that holds only vertices must also take their edges
// with it, and Undo must bring every one of them back.
func TestRemoveSubgraphRestoresCascadedEdges(t *testing.T) {
	g, a, b, c, ab, bc, ca := triangle(t)
	sel := g.GetSubgraphTouchingCircle(geom.Pt(0, 0), TinyPick)
	require.True(t, sel.HasVertex(a))

	onlyVertex := g.NewSubgraph()
	require.True(t, onlyVertex.AddVertex(a))

	require.True(t, g.RemoveSubgraph(onlyVertex))
	assert.False(t, g.HasVertex(a))
	assert.False(t, g.HasEdge(ab))
	assert.False(t, g.HasEdge(ca))
	assert.True(t, g.HasEdge(bc))
	requireConsistent(t, g)

	g.Undo()
	for _, v := range []core.VertexID{a, b, c} {
		assert.True(t, g.HasVertex(v))
	}
	for _, e := range []core.EdgeID{ab, bc, ca} {
		assert.True(t, g.HasEdge(e))
	}
	requireConsistent(t, g)
}

func TestDeleteSubgraph(t *testing.T) {
	g, a, b, c, ab, bc, ca := triangle(t)
	erased := g.GetSubgraphTouchingCircle(geom.Pt(0, 0), TinyPick)

	n := g.DeleteSubgraph(erased)
	assert.Equal(t, 3, n, "vertex a plus its two edges")
	assert.False(t, g.HasVertex(a))
	assert.False(t, g.HasEdge(ab))
	assert.False(t, g.HasEdge(ca))
	assert.True(t, g.HasVertex(b))
	assert.True(t, g.HasVertex(c))
	assert.True(t, g.HasEdge(bc))
	assert.Equal(t, 0, g.DeleteSubgraph(erased), "handles are stale now")
}

func TestDragSelection(t *testing.T) {
	g, a, b, _, ab, _, _ := triangle(t)
	sel := g.GetSubgraphWithin(geom.Pt(-20, -20), 140, 40)
	require.Equal(t, []core.VertexID{a, b}, sel.VertexIDs())

	require.True(t, g.RemoveSubgraph(sel))
	sel.Translate(geom.Pt(0, 50))
	require.True(t, g.AddSubgraph(sel))

	pa, _ := g.Position(a)
	pb, _ := g.Position(b)
	assert.Equal(t, geom.Pt(0, 50), pa)
	assert.Equal(t, geom.Pt(Spacing, 50), pb)
	assert.True(t, g.HasEdge(ab))
	assert.Equal(t, 3, g.EdgeCount(), "edges to the unselected vertex reconnect too")
	requireConsistent(t, g)
}

func TestClearAndSnapshot(t *testing.T) {
	g, _, _, _, _, _, _ := triangle(t)
	snap := g.Snapshot()
	require.True(t, snap.IsDetached())

	require.True(t, g.Clear())
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 3, snap.VertexCount(), "snapshot membership is independent")

	g.Undo()
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.False(t, g.Clear() && g.Clear(), "second clear has nothing to do")
}

func TestGetBounds(t *testing.T) {
	g := core.NewGraph()
	min, max := g.GetBounds()
	assert.Equal(t, geom.Point{}, min)
	assert.Equal(t, geom.Point{}, max)

	g.CreateVertex(geom.Pt(0, 0))
	ell := style.MustOblongStyle(style.KindEllipse, style.Black, 1, 40, 20)
	g.CreateVertex(geom.Pt(100, 50), core.WithVertexStyle(ell))

	min, max = g.GetBounds()
	assert.True(t, min.ApproxEqual(geom.Pt(-10, -10)))
	assert.True(t, max.ApproxEqual(geom.Pt(120, 60)))
}

func TestTranslateSharedThroughViews(t *testing.T) {
	g, a, _, _, _, _, _ := triangle(t)
	view := g.GetSubgraphTouchingCircle(geom.Pt(0, 0), TinyPick)
	view.Translate(geom.Pt(5, 5))

	pos, _ := g.Position(a)
	assert.Equal(t, geom.Pt(5, 5), pos)
}

func TestSubsetKeepsOnlyMembers(t *testing.T) {
	g, a, b, c, ab, bc, _ := triangle(t)
	other := core.NewGraph()
	stranger := other.CreateVertex(geom.Pt(5, 5))

	sub := g.Subset([]core.VertexID{a, stranger}, []core.EdgeID{bc})
	assert.True(t, sub.IsDetached())
	assert.Equal(t, []core.VertexID{a}, sub.VertexIDs())
	assert.Equal(t, []core.EdgeID{bc}, sub.EdgeIDs())
	assert.False(t, sub.HasEdge(ab), "incident edges are not pulled in")

	require.True(t, g.RemoveSubgraph(sub))
	assert.Equal(t, []core.VertexID{b, c}, g.VertexIDs())
	assert.Equal(t, 0, g.EdgeCount(), "a's edges cascade on removal")
	requireConsistent(t, g)
}

// After a merge the scratch graph is only a view: removing through it must
// not unwire the parent's edges, or the parent's cascades would miss them.
func TestMergedScratchCannotUnwireParent(t *testing.T) {
	g := core.NewGraph()
	scratch := g.NewSubgraph()
	a := scratch.CreateVertex(geom.Pt(0, 0))
	b := scratch.CreateVertex(geom.Pt(50, 0))
	e := scratch.CreateEdge(a, b)
	require.True(t, g.AddSubgraph(scratch))
	assert.True(t, scratch.IsDetached(), "merged scratch becomes detached")

	require.True(t, scratch.RemoveEdge(e))
	assert.False(t, scratch.HasEdge(e))
	edge, ok := g.Edge(e)
	require.True(t, ok)
	assert.True(t, edge.Connected)
	assert.Equal(t, []core.EdgeID{e}, g.IncidentEdges(a))
	requireConsistent(t, g)

	require.True(t, g.RemoveVertex(a))
	assert.False(t, g.HasEdge(e), "removal still cascades")
	requireConsistent(t, g)

	g.Undo()
	assert.True(t, g.HasEdge(e))
	requireConsistent(t, g)
}

func TestOnlyOneConnectedGraphWiresAnEdge(t *testing.T) {
	g, a, b, _, ab, _, _ := triangle(t)
	other := g.NewSubgraph()
	require.True(t, other.AddVertex(a))
	require.True(t, other.AddVertex(b))

	assert.False(t, other.AddEdge(ab), "g owns the wiring")
	assert.False(t, other.RemoveEdge(ab))
	assert.Equal(t, []core.VertexID{b}, g.Neighbors(a))
	requireConsistent(t, g)

	// Once g lets go, the edge is free to be wired elsewhere.
	require.True(t, g.RemoveEdge(ab))
	require.True(t, other.AddEdge(ab))
	assert.True(t, other.IsAdjacentTo(a, b))
	assert.False(t, g.IsAdjacentTo(a, b))
	requireConsistent(t, g)
	requireConsistent(t, other)
}
