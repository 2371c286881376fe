// SPDX-License-Identifier: MIT
// File: methods_subgraph.go
// Role: Whole-subgraph mutations (AddSubgraph, AddSubgraphAt, RemoveSubgraph,
//       DeleteSubgraph, Clear), Translate and GetBounds.
// History:
//   - Add/Remove/Clear record a single subgraph command holding exactly the
//     entities that changed membership, so one Undo reverts the whole step.
// Panics:
//   - ErrForeignGraph when the subgraph was not derived from g's arena.

package core

import (
	"math"

	"github.com/katalvlaran/drawgraph/geom"
	"github.com/katalvlaran/drawgraph/style"
)

// AddSubgraph merges sub's vertices, then its edges, into g and records
// the merge. In a connected g, edges are reconnected and edges whose
// endpoints are not members after the merge are skipped.
//
// A connected sub is detached first and hands its edges' wiring to g, so
// later removals through sub no longer touch g's incidence.
//
// Complexity: O((V + E) log(V + E)) over sub.
func (g *Graph) AddSubgraph(sub *Graph) bool {
	if sub == nil {
		return false
	}
	g.mustShareArena(sub)
	if sub != g && !sub.detached {
		sub.detach()
	}
	added := g.addSubgraphQuiet(sub)
	if added.isEmpty() {
		return false
	}
	g.record(NewSubgraphAdd(added))

	return true
}

// AddSubgraphAt translates sub by offset and merges it into g.
func (g *Graph) AddSubgraphAt(sub *Graph, offset geom.Point) bool {
	if sub == nil {
		return false
	}
	g.mustShareArena(sub)
	sub.Translate(offset)

	return g.AddSubgraph(sub)
}

// RemoveSubgraph removes sub's members from g, together with every member
// edge incident to a removed vertex, and records the removal. Undo restores
// all of it, including the cascaded edges.
func (g *Graph) RemoveSubgraph(sub *Graph) bool {
	if sub == nil {
		return false
	}
	g.mustShareArena(sub)
	closure := g.closure(sub.VertexIDs(), sub.EdgeIDs())
	if closure.isEmpty() {
		return false
	}
	g.removeSubgraphQuiet(closure)
	g.record(NewSubgraphRemove(closure))

	return true
}

// DeleteSubgraph permanently deletes sub's members that belong to g, plus
// every edge connected to a deleted vertex. Nothing is recorded. It returns
// the number of vertices and edges deleted.
func (g *Graph) DeleteSubgraph(sub *Graph) int {
	if sub == nil {
		return 0
	}
	g.mustShareArena(sub)
	closure := g.closure(sub.VertexIDs(), sub.EdgeIDs())
	n := 0
	for _, e := range closure.EdgeIDs() {
		if g.DeleteEdge(e) {
			n++
		}
	}
	for _, v := range closure.VertexIDs() {
		g.deleteVertexQuiet(v)
		n++
	}

	return n
}

// Clear removes every member of g as one undoable step.
func (g *Graph) Clear() bool {
	return g.RemoveSubgraph(g.Snapshot())
}

// Translate shifts every member vertex by delta. Positions are shared with
// every graph over the arena. Nothing is recorded.
//
// Complexity: O(V).
func (g *Graph) Translate(delta geom.Point) {
	for _, id := range g.VertexIDs() {
		rec := g.store.vertex(id)
		rec.attrs.Position = rec.attrs.Position.Add(delta)
	}
}

// GetBounds returns the smallest axis-aligned box containing every member
// vertex's visual extent (center ± angular radius in the four cardinal
// directions). An empty graph yields two zero points.
func (g *Graph) GetBounds() (min, max geom.Point) {
	ids := g.VertexIDs()
	if len(ids) == 0 {
		return geom.Point{}, geom.Point{}
	}
	min = geom.Pt(math.Inf(1), math.Inf(1))
	max = geom.Pt(math.Inf(-1), math.Inf(-1))
	for _, id := range ids {
		lo, hi := g.vertexExtent(id)
		min = geom.Pt(math.Min(min.X, lo.X), math.Min(min.Y, lo.Y))
		max = geom.Pt(math.Max(max.X, hi.X), math.Max(max.Y, hi.Y))
	}

	return min, max
}

// IsEmpty reports whether g has no live members.
func (g *Graph) IsEmpty() bool { return g.VertexCount() == 0 && g.EdgeCount() == 0 }

func (g *Graph) isEmpty() bool { return len(g.vertices) == 0 && len(g.edges) == 0 }

func (g *Graph) vertexExtent(id VertexID) (lo, hi geom.Point) {
	rec := g.store.vertex(id)
	dlo, dhi := style.Extent(rec.attrs.Style.Shape())

	return rec.attrs.Position.Add(dlo), rec.attrs.Position.Add(dhi)
}

func (g *Graph) mustShareArena(sub *Graph) {
	if sub.store != g.store {
		panic(ErrForeignGraph)
	}
}

// addSubgraphQuiet merges sub and returns a detached record of what was
// actually added.
func (g *Graph) addSubgraphQuiet(sub *Graph) *Graph {
	added := g.derive(true)
	for _, v := range sub.VertexIDs() {
		if g.addVertexQuiet(v) {
			added.vertices[v] = struct{}{}
		}
	}
	for _, e := range sub.EdgeIDs() {
		if g.addEdgeQuiet(e) {
			added.edges[e] = struct{}{}
		}
	}

	return added
}

// detach turns g into a membership-only view, giving up its edges' wiring.
func (g *Graph) detach() {
	for _, e := range g.EdgeIDs() {
		g.store.disown(e, g)
	}
	g.detached = true
}

// removeSubgraphQuiet removes sub's edges, then its vertices.
func (g *Graph) removeSubgraphQuiet(sub *Graph) {
	for _, e := range sub.EdgeIDs() {
		g.removeEdgeQuiet(e)
	}
	for _, v := range sub.VertexIDs() {
		g.removeVertexQuiet(v)
	}
}
