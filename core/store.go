// SPDX-License-Identifier: MIT
// File: store.go
// Role: Entity arena shared by a graph and all of its subgraphs.
// Policy:
//   - Slots are recycled only after Delete*; the slot's generation is bumped
//     so outstanding handles go stale.
//   - Incidence lives here, per vertex, so every graph over the arena sees
//     the same connection state.
//   - At most one connected graph owns an edge's wiring. Only the owner
//     connects or disconnects it; other graphs are refused.
//   - Every accessor tolerates stale or zero handles.

package core

import "sort"

type vertexRecord struct {
	gen      uint32
	live     bool
	attrs    VertexAttrs
	incident map[EdgeID]struct{}
}

type edgeRecord struct {
	gen      uint32
	live     bool
	from, to VertexID
	attrs    EdgeAttrs
	owner    *Graph
}

type store struct {
	vertices  []vertexRecord
	edges     []edgeRecord
	freeVerts []uint32
	freeEdges []uint32
}

func newStore() *store { return &store{} }

func (s *store) newVertex(attrs VertexAttrs) VertexID {
	var idx uint32
	if n := len(s.freeVerts); n > 0 {
		idx = s.freeVerts[n-1]
		s.freeVerts = s.freeVerts[:n-1]
	} else {
		idx = uint32(len(s.vertices))
		s.vertices = append(s.vertices, vertexRecord{})
	}
	rec := &s.vertices[idx]
	rec.gen++
	rec.live = true
	rec.attrs = attrs
	rec.incident = make(map[EdgeID]struct{})

	return VertexID{idx: idx, gen: rec.gen}
}

func (s *store) newEdge(from, to VertexID, attrs EdgeAttrs) EdgeID {
	var idx uint32
	if n := len(s.freeEdges); n > 0 {
		idx = s.freeEdges[n-1]
		s.freeEdges = s.freeEdges[:n-1]
	} else {
		idx = uint32(len(s.edges))
		s.edges = append(s.edges, edgeRecord{})
	}
	rec := &s.edges[idx]
	rec.gen++
	rec.live = true
	rec.from, rec.to = from, to
	rec.attrs = attrs
	rec.owner = nil

	return EdgeID{idx: idx, gen: rec.gen}
}

// vertex returns the live record for id, or nil.
func (s *store) vertex(id VertexID) *vertexRecord {
	if id.gen == 0 || int(id.idx) >= len(s.vertices) {
		return nil
	}
	rec := &s.vertices[id.idx]
	if !rec.live || rec.gen != id.gen {
		return nil
	}

	return rec
}

// edge returns the live record for id, or nil.
func (s *store) edge(id EdgeID) *edgeRecord {
	if id.gen == 0 || int(id.idx) >= len(s.edges) {
		return nil
	}
	rec := &s.edges[id.idx]
	if !rec.live || rec.gen != id.gen {
		return nil
	}

	return rec
}

// connect lists e in both endpoints' incidence sets on behalf of g. It
// reports false when another connected graph owns the wiring.
func (s *store) connect(id EdgeID, g *Graph) bool {
	e := s.edge(id)
	if e == nil || (e.owner != nil && e.owner != g) {
		return false
	}
	e.owner = g
	if v := s.vertex(e.from); v != nil {
		v.incident[id] = struct{}{}
	}
	if v := s.vertex(e.to); v != nil {
		v.incident[id] = struct{}{}
	}

	return true
}

// disconnect unwires e if g owns it.
func (s *store) disconnect(id EdgeID, g *Graph) {
	if e := s.edge(id); e != nil && e.owner == g {
		s.unwire(id)
	}
}

// disown hands e's wiring back without unwiring it, so the next connected
// graph to add it takes over.
func (s *store) disown(id EdgeID, g *Graph) {
	if e := s.edge(id); e != nil && e.owner == g {
		e.owner = nil
	}
}

// unwire removes e from both endpoints' incidence sets whoever owns it.
func (s *store) unwire(id EdgeID) {
	e := s.edge(id)
	if e == nil {
		return
	}
	e.owner = nil
	if v := s.vertex(e.from); v != nil {
		delete(v.incident, id)
	}
	if v := s.vertex(e.to); v != nil {
		delete(v.incident, id)
	}
}

// connected reports whether e is listed by both endpoints.
func (s *store) connected(id EdgeID) bool {
	e := s.edge(id)
	if e == nil {
		return false
	}
	from, to := s.vertex(e.from), s.vertex(e.to)
	if from == nil || to == nil {
		return false
	}
	_, a := from.incident[id]
	_, b := to.incident[id]

	return a && b
}

// incident returns the edges connected to v, sorted.
func (s *store) incident(id VertexID) []EdgeID {
	v := s.vertex(id)
	if v == nil {
		return nil
	}
	out := make([]EdgeID, 0, len(v.incident))
	for e := range v.incident {
		out = append(out, e)
	}
	sortEdgeIDs(out)

	return out
}

// releaseEdge unwires an edge and frees its slot.
func (s *store) releaseEdge(id EdgeID) {
	e := s.edge(id)
	if e == nil {
		return
	}
	s.unwire(id)
	e.live = false
	e.attrs = EdgeAttrs{}
	s.freeEdges = append(s.freeEdges, id.idx)
}

// releaseVertex frees a vertex slot. Edges still listed as incident are
// disconnected first so no edge points into a recycled slot's incidence.
func (s *store) releaseVertex(id VertexID) {
	v := s.vertex(id)
	if v == nil {
		return
	}
	for e := range v.incident {
		s.unwire(e)
	}
	v.live = false
	v.attrs = VertexAttrs{}
	v.incident = nil
	s.freeVerts = append(s.freeVerts, id.idx)
}

func sortVertexIDs(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].idx < ids[j].idx })
}

func sortEdgeIDs(ids []EdgeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].idx < ids[j].idx })
}
