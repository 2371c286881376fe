// SPDX-License-Identifier: MIT
// Package core provides the mutable planar graph behind the drawgraph editor:
// vertices and edges with positions and styles, spatial queries that map
// pointer and region input to graph elements, and a bounded undo/redo
// history.
//
// Entities live in an arena shared by a graph and every graph derived from
// it, and are addressed by generation-checked handles (VertexID, EdgeID).
// Deriving is how selections work: a query result aliases the same
// entities, so a caller can remove it, translate it and add it back.
//
//   - Connected graphs (NewGraph, NewSubgraph) keep incidence in sync: an
//     edge is wired into both endpoints while it is a member. One connected
//     graph owns an edge's wiring at a time; AddSubgraph detaches a
//     connected sub and takes over its edges.
//   - Detached graphs (query results, Snapshot) hold membership only.
//
// Mutations:
//
//	CreateVertex / AddVertex / AddVertices / RemoveVertex / DeleteVertex
//	CreateEdge / AddEdge / RemoveEdge / RemoveEdges / DeleteEdge
//	EditVertex / MoveVertex / EditEdge / SetEdgeCap
//	AddSubgraph / AddSubgraphAt / RemoveSubgraph / DeleteSubgraph / Clear
//	Translate (unrecorded)
//
// Queries:
//
//	GetSubgraphWithin(corner, w, h)      rectangle, full visual extent
//	GetSubgraphTouchingCircle(c, r)      per-shape circle test + edge crossings
//	GetSubgraphTouchingPolygon(ring)     center-in-polygon + edge crossings
//	GetPointClosestTo / NearestPosition / VerticesAt / NearestEdgeEnd
//	GetBounds
//
// History:
//
// Remove* records a command and keeps the entity alive for Undo; Delete*
// frees it and records nothing. The ring holds DefaultHistoryCapacity
// commands unless WithHistoryCapacity says otherwise; recording after an
// Undo discards the redo branch.
//
// Errors:
//
// Mutations and queries never return errors. Operations on stale handles
// or absent members are no-ops reporting false. Caller contract violations
// (a subgraph from another arena, a plural edit command) panic with a
// sentinel error.
//
// Concurrency:
//
// A Graph is single-threaded; callers serialize access.
package core
