// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deriving graphs over the same arena: NewSubgraph (connected scratch
//       graphs), Snapshot (detached membership copies) and closure building
//       for removals.
// AI-HINT (file):
//   - Derived graphs alias the parent's entities: moving a vertex through a
//     subgraph moves it in the parent too.
//   - Derived graphs carry no history of their own.

package core

// NewSubgraph returns an empty connected graph sharing g's arena and
// default styles. Build shapes in it, then merge them with g.AddSubgraph as
// one undoable step; the merge detaches it.
func (g *Graph) NewSubgraph() *Graph { return g.derive(false) }

// Snapshot returns a detached graph holding g's current membership. Later
// changes to g's membership do not affect it; entity attributes remain
// shared.
//
// Complexity: O(V + E).
func (g *Graph) Snapshot() *Graph {
	out := g.derive(true)
	for _, v := range g.VertexIDs() {
		out.vertices[v] = struct{}{}
	}
	for _, e := range g.EdgeIDs() {
		out.edges[e] = struct{}{}
	}

	return out
}

// IsDetached reports whether g is a query result or snapshot whose
// membership never touches incidence.
func (g *Graph) IsDetached() bool { return g.detached }

// SameArena reports whether g and o share entities.
func (g *Graph) SameArena(o *Graph) bool { return o != nil && g.store == o.store }

// closure returns a detached graph with the given vertices and edges that
// are members of g, plus every member edge incident to those vertices.
func (g *Graph) closure(vs []VertexID, es []EdgeID) *Graph {
	out := g.derive(true)
	for _, v := range vs {
		if !g.HasVertex(v) {
			continue
		}
		out.vertices[v] = struct{}{}
		for _, e := range g.IncidentEdges(v) {
			out.edges[e] = struct{}{}
		}
	}
	for _, e := range es {
		if g.HasEdge(e) {
			out.edges[e] = struct{}{}
		}
	}

	return out
}

// Subset returns a detached graph holding those of vs and es that are
// members of g. Unlike a removal closure it does not pull in incident
// edges; RemoveSubgraph adds them when the subset is removed.
func (g *Graph) Subset(vs []VertexID, es []EdgeID) *Graph {
	out := g.derive(true)
	for _, v := range vs {
		if g.HasVertex(v) {
			out.vertices[v] = struct{}{}
		}
	}
	for _, e := range es {
		if g.HasEdge(e) {
			out.edges[e] = struct{}{}
		}
	}

	return out
}
