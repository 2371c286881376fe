// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle and lookups: CreateEdge/AddEdge/RemoveEdge/RemoveEdges/
//       DeleteEdge/EditEdge/SetEdgeCap, snapshots, counts and endpoints.
// Determinism:
//   - ViewEdges() and EdgeIDs() return edges in handle order.
// Invariants:
//   - In a connected graph a member edge has both endpoints as members and
//     is listed in both endpoints' incidence sets.
//   - Self-loops and parallel edges are not rejected here; callers check
//     IsAdjacentTo before creating an edge when they care.

package core

import (
	"math"

	"github.com/katalvlaran/drawgraph/geom"
	"github.com/katalvlaran/drawgraph/style"
)

// End names one end of an edge.
type End uint8

const (
	// EndSource is the From end.
	EndSource End = iota
	// EndDestination is the To end.
	EndDestination
)

func (e End) String() string {
	if e == EndSource {
		return "source"
	}

	return "destination"
}

// CreateEdge creates an edge from → to, adds it to g and records the
// addition. In a connected graph both endpoints must be members; otherwise
// nothing happens and the zero EdgeID is returned.
//
// Complexity: O(1) amortized.
func (g *Graph) CreateEdge(from, to VertexID, opts ...EdgeOption) EdgeID {
	if g.store.vertex(from) == nil || g.store.vertex(to) == nil {
		return EdgeID{}
	}
	if !g.detached && (!g.HasVertex(from) || !g.HasVertex(to)) {
		return EdgeID{}
	}
	attrs := EdgeAttrs{Style: g.defaults.EdgeStyle()}
	for _, opt := range opts {
		opt(&attrs)
	}
	id := g.store.newEdge(from, to, attrs)
	g.addEdgeQuiet(id)
	g.record(NewEdgeAdd(id))

	return id
}

// AddEdge adds an existing edge of the same arena to g, reconnecting it,
// and records the addition. It reports false when the edge is already
// present or stale, or when g is connected and either misses an endpoint
// or the edge is wired by another connected graph.
func (g *Graph) AddEdge(id EdgeID) bool {
	if !g.addEdgeQuiet(id) {
		return false
	}
	g.record(NewEdgeAdd(id))

	return true
}

// RemoveEdge removes an edge from g, disconnecting it from its endpoints,
// and records the removal. The edge entity survives for Undo.
func (g *Graph) RemoveEdge(id EdgeID) bool {
	if !g.removeEdgeQuiet(id) {
		return false
	}
	g.record(NewEdgeRemove(id))

	return true
}

// RemoveEdges removes several edges as one undoable step and returns how
// many were actually removed.
func (g *Graph) RemoveEdges(ids ...EdgeID) int {
	removed := make([]EdgeID, 0, len(ids))
	for _, id := range ids {
		if g.removeEdgeQuiet(id) {
			removed = append(removed, id)
		}
	}
	if len(removed) > 0 {
		g.record(NewEdgeRemove(removed...))
	}

	return len(removed)
}

// DeleteEdge permanently deletes an edge without recording history.
func (g *Graph) DeleteEdge(id EdgeID) bool {
	if !g.HasEdge(id) {
		return false
	}
	g.removeEdgeQuiet(id)
	g.store.releaseEdge(id)

	return true
}

// EditEdge replaces the attributes of an edge and records the change.
func (g *Graph) EditEdge(id EdgeID, attrs EdgeAttrs) bool {
	if !g.HasEdge(id) {
		return false
	}
	before := g.store.edge(id).attrs
	g.setEdgeAttrsQuiet(id, attrs)
	g.record(NewEdgeEdit(id, before, attrs))

	return true
}

// SetEdgeCap replaces the cap at one end of an edge as an undoable edit.
func (g *Graph) SetEdgeCap(id EdgeID, end End, c style.Cap) bool {
	if !g.HasEdge(id) {
		return false
	}
	attrs := g.store.edge(id).attrs
	if end == EndSource {
		attrs.Style = attrs.Style.WithSourceCap(c)
	} else {
		attrs.Style = attrs.Style.WithDestinationCap(c)
	}

	return g.EditEdge(id, attrs)
}

// HasEdge reports whether id is a live member of g.
func (g *Graph) HasEdge(id EdgeID) bool {
	if _, ok := g.edges[id]; !ok {
		return false
	}

	return g.store.edge(id) != nil
}

// Edge returns a snapshot of a member edge.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	if !g.HasEdge(id) {
		return Edge{}, false
	}

	return g.snapshotEdge(id), true
}

// EdgeIDs returns the live member edges in handle order, pruning stale
// memberships.
func (g *Graph) EdgeIDs() []EdgeID {
	out := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		if g.store.edge(id) == nil {
			delete(g.edges, id)
			continue
		}
		out = append(out, id)
	}
	sortEdgeIDs(out)

	return out
}

// ViewEdges returns snapshots of every member edge in handle order.
func (g *Graph) ViewEdges() []Edge {
	ids := g.EdgeIDs()
	out := make([]Edge, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.snapshotEdge(id))
	}

	return out
}

// EdgeCount returns the number of live member edges.
func (g *Graph) EdgeCount() int { return len(g.EdgeIDs()) }

// EdgeEndpoints returns where an edge meets the borders of its endpoints:
// each end is pulled from the vertex center towards the other vertex by the
// vertex's angular radius in that direction.
func (g *Graph) EdgeEndpoints(id EdgeID) (src, dst geom.Point, ok bool) {
	if !g.HasEdge(id) {
		return geom.Point{}, geom.Point{}, false
	}
	rec := g.store.edge(id)
	from, to := g.store.vertex(rec.from), g.store.vertex(rec.to)
	if from == nil || to == nil {
		return geom.Point{}, geom.Point{}, false
	}
	a, b := from.attrs.Position, to.attrs.Position
	if a.Equal(b) {
		return a, b, true
	}
	theta := geom.AngleBetween(b, a)
	src = geom.Polar(a, theta, from.attrs.Style.AngularRadius(theta))
	back := geom.NormalizeAngle(theta + math.Pi)
	dst = geom.Polar(b, back, to.attrs.Style.AngularRadius(back))

	return src, dst, true
}

func (g *Graph) snapshotEdge(id EdgeID) Edge {
	rec := g.store.edge(id)

	return Edge{
		ID:        id,
		From:      rec.from,
		To:        rec.to,
		EdgeAttrs: rec.attrs,
		Connected: g.store.connected(id),
	}
}

// addEdgeQuiet makes a live edge a member of g. Connected graphs require
// both endpoints to be members and wire the edge into their incidence; an
// edge wired by another connected graph is refused.
func (g *Graph) addEdgeQuiet(id EdgeID) bool {
	rec := g.store.edge(id)
	if rec == nil || g.HasEdge(id) {
		return false
	}
	if !g.detached {
		if !g.HasVertex(rec.from) || !g.HasVertex(rec.to) {
			return false
		}
		if !g.store.connect(id, g) {
			return false
		}
	}
	g.edges[id] = struct{}{}

	return true
}

func (g *Graph) removeEdgeQuiet(id EdgeID) bool {
	if !g.HasEdge(id) {
		return false
	}
	delete(g.edges, id)
	if !g.detached {
		g.store.disconnect(id, g)
	}

	return true
}

func (g *Graph) setEdgeAttrsQuiet(id EdgeID, attrs EdgeAttrs) {
	if rec := g.store.edge(id); rec != nil {
		rec.attrs = attrs
	}
}
