// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (IncidentEdges, Neighbors) and the adjacency and
//       incidence predicates tools use to refuse self-loops and parallel
//       edges.
// Determinism:
//   - IncidentEdges() sorts by edge handle.
//   - Neighbors() returns unique vertex handles sorted by handle.
// AI-HINT (file):
//   - Incidence is arena-wide; these APIs filter it by membership in g, so a
//     subgraph only sees its own edges.

package core

// IncidentEdges returns the member edges connected to a member vertex.
//
// Complexity: O(d log d) for d arena-incident edges.
func (g *Graph) IncidentEdges(id VertexID) []EdgeID {
	if !g.HasVertex(id) {
		return nil
	}
	all := g.store.incident(id)
	out := all[:0]
	for _, e := range all {
		if g.HasEdge(e) {
			out = append(out, e)
		}
	}

	return out
}

// Neighbors returns the distinct vertices joined to id by a member edge.
// A self-loop lists id itself.
func (g *Graph) Neighbors(id VertexID) []VertexID {
	seen := make(map[VertexID]struct{})
	out := make([]VertexID, 0)
	for _, e := range g.IncidentEdges(id) {
		rec := g.store.edge(e)
		other := rec.to
		if other == id {
			other = rec.from
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	sortVertexIDs(out)

	return out
}

// IsAdjacentTo reports whether a and b are distinct vertices joined by a
// member edge in either direction.
func (g *Graph) IsAdjacentTo(a, b VertexID) bool {
	if a == b {
		return false
	}
	for _, e := range g.IncidentEdges(a) {
		rec := g.store.edge(e)
		if rec.from == b || rec.to == b {
			return true
		}
	}

	return false
}

// IsIncidentTo reports whether member edge e has v as an endpoint.
func (g *Graph) IsIncidentTo(e EdgeID, v VertexID) bool {
	if !g.HasEdge(e) {
		return false
	}
	rec := g.store.edge(e)

	return rec.from == v || rec.to == v
}

// EdgesAdjacent reports whether two member edges share an endpoint.
func (g *Graph) EdgesAdjacent(a, b EdgeID) bool {
	ea, ok := g.Edge(a)
	if !ok {
		return false
	}
	eb, ok := g.Edge(b)
	if !ok {
		return false
	}

	return ea.IsAdjacentTo(eb)
}
