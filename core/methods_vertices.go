// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle and lookups: CreateVertex/AddVertex/AddVertices/
//       RemoveVertex/DeleteVertex/EditVertex/MoveVertex, snapshots and counts.
// Determinism:
//   - ViewVertices() and VertexIDs() return vertices in handle order.
// History:
//   - Create/Add/Remove/Edit record one command each; Delete records nothing.
//   - The *Quiet helpers never record; commands replay through them.

package core

import (
	"github.com/katalvlaran/drawgraph/geom"
)

// CreateVertex creates a vertex at pos, adds it to g and records the
// addition. Without options the vertex takes the graph's default style and
// its position string as label.
//
// Complexity: O(1) amortized.
func (g *Graph) CreateVertex(pos geom.Point, opts ...VertexOption) VertexID {
	attrs := VertexAttrs{
		Position: pos,
		Style:    g.defaults.VertexStyle(),
		Label:    pos.String(),
	}
	for _, opt := range opts {
		opt(&attrs)
	}
	id := g.store.newVertex(attrs)
	g.addVertexQuiet(id)
	g.record(NewVertexAdd(id))

	return id
}

// AddVertex adds an existing vertex of the same arena to g and records the
// addition. It reports false, recording nothing, if the vertex is already
// present or the handle is stale.
func (g *Graph) AddVertex(id VertexID) bool {
	if !g.addVertexQuiet(id) {
		return false
	}
	g.record(NewVertexAdd(id))

	return true
}

// AddVertices adds several vertices as one undoable step and returns how
// many were actually added.
func (g *Graph) AddVertices(ids ...VertexID) int {
	added := make([]VertexID, 0, len(ids))
	for _, id := range ids {
		if g.addVertexQuiet(id) {
			added = append(added, id)
		}
	}
	if len(added) > 0 {
		g.record(NewVertexAdd(added...))
	}

	return len(added)
}

// RemoveVertex removes a vertex together with every incident edge present
// in g. The vertex and those edges are recorded as one subgraph removal, so
// Undo restores all of them.
//
// Implementation:
//   - Stage 1: Build the closure {v} ∪ incident member edges.
//   - Stage 2: Remove it quietly and record a subgraph-remove command.
//
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) RemoveVertex(id VertexID) bool {
	if !g.HasVertex(id) {
		return false
	}
	closure := g.closure([]VertexID{id}, nil)
	g.removeSubgraphQuiet(closure)
	g.record(NewSubgraphRemove(closure))

	return true
}

// DeleteVertex permanently deletes a vertex and every edge connected to it.
// Nothing is recorded and the handles become stale everywhere.
func (g *Graph) DeleteVertex(id VertexID) bool {
	if !g.HasVertex(id) {
		return false
	}
	g.deleteVertexQuiet(id)

	return true
}

// EditVertex replaces the attributes of a vertex and records the change.
func (g *Graph) EditVertex(id VertexID, attrs VertexAttrs) bool {
	if !g.HasVertex(id) {
		return false
	}
	before := g.store.vertex(id).attrs
	g.setVertexAttrsQuiet(id, attrs)
	g.record(NewVertexEdit(id, before, attrs))

	return true
}

// MoveVertex relocates one vertex as an undoable edit.
func (g *Graph) MoveVertex(id VertexID, pos geom.Point) bool {
	rec := g.store.vertex(id)
	if rec == nil || !g.HasVertex(id) {
		return false
	}
	attrs := rec.attrs
	attrs.Position = pos

	return g.EditVertex(id, attrs)
}

// HasVertex reports whether id is a live member of g.
func (g *Graph) HasVertex(id VertexID) bool {
	if _, ok := g.vertices[id]; !ok {
		return false
	}

	return g.store.vertex(id) != nil
}

// Vertex returns a snapshot of a member vertex.
func (g *Graph) Vertex(id VertexID) (Vertex, bool) {
	if !g.HasVertex(id) {
		return Vertex{}, false
	}

	return g.snapshotVertex(id), true
}

// Position returns the position of a member vertex.
func (g *Graph) Position(id VertexID) (geom.Point, bool) {
	if !g.HasVertex(id) {
		return geom.Point{}, false
	}

	return g.store.vertex(id).attrs.Position, true
}

// VertexIDs returns the live member vertices in handle order. Stale
// memberships left behind by deletions elsewhere are pruned on the way.
//
// Complexity: O(V log V).
func (g *Graph) VertexIDs() []VertexID {
	out := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		if g.store.vertex(id) == nil {
			delete(g.vertices, id)
			continue
		}
		out = append(out, id)
	}
	sortVertexIDs(out)

	return out
}

// ViewVertices returns snapshots of every member vertex in handle order.
func (g *Graph) ViewVertices() []Vertex {
	ids := g.VertexIDs()
	out := make([]Vertex, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.snapshotVertex(id))
	}

	return out
}

// VertexCount returns the number of live member vertices.
func (g *Graph) VertexCount() int { return len(g.VertexIDs()) }

func (g *Graph) snapshotVertex(id VertexID) Vertex {
	rec := g.store.vertex(id)

	return Vertex{ID: id, VertexAttrs: rec.attrs, Incident: g.store.incident(id)}
}

// addVertexQuiet makes a live vertex a member of g.
func (g *Graph) addVertexQuiet(id VertexID) bool {
	if g.store.vertex(id) == nil || g.HasVertex(id) {
		return false
	}
	g.vertices[id] = struct{}{}

	return true
}

// removeVertexQuiet drops a vertex from g, cascading to member edges
// connected to it.
func (g *Graph) removeVertexQuiet(id VertexID) bool {
	if !g.HasVertex(id) {
		return false
	}
	for _, e := range g.store.incident(id) {
		g.removeEdgeQuiet(e)
	}
	delete(g.vertices, id)

	return true
}

func (g *Graph) deleteVertexQuiet(id VertexID) {
	for _, e := range g.store.incident(id) {
		g.removeEdgeQuiet(e)
		g.store.releaseEdge(e)
	}
	delete(g.vertices, id)
	g.store.releaseVertex(id)
}

func (g *Graph) setVertexAttrsQuiet(id VertexID, attrs VertexAttrs) {
	if rec := g.store.vertex(id); rec != nil {
		rec.attrs = attrs
	}
}
