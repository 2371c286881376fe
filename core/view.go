// SPDX-License-Identifier: MIT
// File: view.go
// Role: Spatial queries returning detached views of g: GetSubgraphWithin,
//       GetSubgraphTouchingCircle, GetSubgraphTouchingPolygon, plus point
//       picks (GetPointClosestTo, NearestPosition, VerticesAt, NearestEdgeEnd).
// Determinism:
//   - Results depend only on geometry; ties resolve to the lowest handle.
// AI-HINT (file):
//   - Views do NOT mutate g. Their members alias g's entities, so a caller
//     can remove, translate and re-add a view to drag a selection.
//   - An empty graph or an empty region yields an empty view, never an error.
//   - Edges join a view when either endpoint qualifies; circle and polygon
//     queries also take edges whose segment crosses the region boundary.

package core

import (
	"math"

	"github.com/katalvlaran/drawgraph/geom"
)

// GetSubgraphWithin returns the vertices whose full visual extent lies
// inside the axis-aligned rectangle at corner with the given width and
// height, plus every member edge incident to one of them. Negative sizes
// extend the rectangle left or up.
//
// Complexity: O(V + E).
func (g *Graph) GetSubgraphWithin(corner geom.Point, width, height float64) *Graph {
	min, max := geom.Bounds([]geom.Point{corner, corner.Add(geom.Pt(width, height))})
	out := g.derive(true)
	for _, id := range g.VertexIDs() {
		lo, hi := g.vertexExtent(id)
		if geom.InRect(lo, min, max) && geom.InRect(hi, min, max) {
			g.pullVertex(out, id)
		}
	}

	return out
}

// GetSubgraphTouchingCircle returns the vertices whose shape touches the
// circle, every member edge incident to one of them, and every member edge
// whose segment crosses the circle boundary. A zero radius degenerates to
// a point pick.
//
// Per-vertex tests come from the shape variant:
//   - round kinds: distance ≤ radius + shape radius;
//   - rectangle: bounding-box overlap;
//   - ellipse: boundary intersection (quartic test), circle covering the
//     ellipse center, or ellipse covering the circle center.
func (g *Graph) GetSubgraphTouchingCircle(center geom.Point, radius float64) *Graph {
	out := g.derive(true)
	for _, id := range g.VertexIDs() {
		rec := g.store.vertex(id)
		offset := center.Sub(rec.attrs.Position)
		if rec.attrs.Style.Shape().TouchesCircle(offset, radius) {
			g.pullVertex(out, id)
		}
	}
	for _, id := range g.EdgeIDs() {
		if _, ok := out.edges[id]; ok {
			continue
		}
		a, b, ok := g.segment(id)
		if ok && geom.SegmentCrossesCircle(a, b, center, radius) {
			out.edges[id] = struct{}{}
		}
	}

	return out
}

// GetSubgraphTouchingPolygon returns the vertices whose center lies inside
// the ring, every member edge incident to one of them, and every member
// edge crossing a side of the ring. The ring may repeat its first point at
// the end. Degenerate rings (fewer than three points, zero area or
// self-intersecting) are not validated; the parity test decides.
func (g *Graph) GetSubgraphTouchingPolygon(ring []geom.Point) *Graph {
	out := g.derive(true)
	if len(ring) < 3 {
		return out
	}
	for _, id := range g.VertexIDs() {
		if geom.PointInPolygon(g.store.vertex(id).attrs.Position, ring) {
			g.pullVertex(out, id)
		}
	}
	for _, id := range g.EdgeIDs() {
		if _, ok := out.edges[id]; ok {
			continue
		}
		a, b, ok := g.segment(id)
		if ok && geom.SegmentCrossesPolygon(a, b, ring) {
			out.edges[id] = struct{}{}
		}
	}

	return out
}

// GetPointClosestTo returns the member vertex whose center is nearest p.
// It reports false on an empty graph.
func (g *Graph) GetPointClosestTo(p geom.Point) (VertexID, bool) {
	best, bestD := VertexID{}, math.Inf(1)
	for _, id := range g.VertexIDs() {
		if d := g.store.vertex(id).attrs.Position.Dist2(p); d < bestD {
			best, bestD = id, d
		}
	}

	return best, !best.IsZero()
}

// NearestPosition returns the center of the vertex closest to p.
func (g *Graph) NearestPosition(p geom.Point) (geom.Point, bool) {
	id, ok := g.GetPointClosestTo(p)
	if !ok {
		return geom.Point{}, false
	}

	return g.store.vertex(id).attrs.Position, true
}

// VerticesAt returns the member vertices whose visual extent box contains
// p, in handle order.
func (g *Graph) VerticesAt(p geom.Point) []VertexID {
	var out []VertexID
	for _, id := range g.VertexIDs() {
		lo, hi := g.vertexExtent(id)
		if geom.InRect(p, lo, hi) {
			out = append(out, id)
		}
	}

	return out
}

// NearestEdgeEnd finds, among the edges touching the circle (p, radius),
// the edge end closest to p, measured at the point where the edge meets its
// vertex border.
func (g *Graph) NearestEdgeEnd(p geom.Point, radius float64) (EdgeID, End, bool) {
	var (
		best  EdgeID
		end   End
		bestD = math.Inf(1)
	)
	for _, id := range g.GetSubgraphTouchingCircle(p, radius).EdgeIDs() {
		src, dst, ok := g.EdgeEndpoints(id)
		if !ok {
			continue
		}
		if d := src.Dist2(p); d < bestD {
			best, end, bestD = id, EndSource, d
		}
		if d := dst.Dist2(p); d < bestD {
			best, end, bestD = id, EndDestination, d
		}
	}

	return best, end, !best.IsZero()
}

// pullVertex adds a vertex and its member edges to a view.
func (g *Graph) pullVertex(out *Graph, id VertexID) {
	out.vertices[id] = struct{}{}
	for _, e := range g.IncidentEdges(id) {
		out.edges[e] = struct{}{}
	}
}

// segment returns the centers of an edge's endpoints.
func (g *Graph) segment(id EdgeID) (a, b geom.Point, ok bool) {
	rec := g.store.edge(id)
	from, to := g.store.vertex(rec.from), g.store.vertex(rec.to)
	if from == nil || to == nil {
		return geom.Point{}, geom.Point{}, false
	}

	return from.attrs.Position, to.attrs.Position, true
}
