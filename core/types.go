// SPDX-License-Identifier: MIT
// Package core defines the Graph container, its entity handles and
// snapshots, functional options and sentinel errors.
//
// This file declares VertexID, EdgeID, VertexAttrs, EdgeAttrs, the Vertex
// and Edge snapshots, Graph, GraphOption, VertexOption, EdgeOption, the
// sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrForeignGraph     - a subgraph from another arena was merged.
//	ErrUnsupportedEdit  - a plural or subgraph edit command was constructed.
//	ErrEmptyEdit        - a command was constructed with no entities.
//	ErrBadCapacity      - a history capacity below one was requested.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/drawgraph/geom"
	"github.com/katalvlaran/drawgraph/style"
)

// Sentinel errors for core graph operations. All of them flag caller
// contract violations and are raised by panic; mutations and queries on
// valid input never fail.
var (
	// ErrForeignGraph indicates AddSubgraph/RemoveSubgraph received a graph
	// backed by a different entity arena.
	ErrForeignGraph = errors.New("core: subgraph belongs to a different graph")

	// ErrUnsupportedEdit indicates an edit command variant that has no
	// meaning: a plural edit, or an edit of a whole subgraph.
	ErrUnsupportedEdit = errors.New("core: unsupported edit command")

	// ErrEmptyEdit indicates a command built over zero entities.
	ErrEmptyEdit = errors.New("core: edit command has no entities")

	// ErrBadCapacity indicates a history capacity below one.
	ErrBadCapacity = errors.New("core: history capacity must be positive")
)

// DefaultHistoryCapacity is the number of commands a graph remembers.
const DefaultHistoryCapacity = 500

// VertexID is a generation-checked handle to a vertex in a graph's arena.
// The zero value never refers to a vertex. A handle goes stale once its
// vertex is deleted, after which every operation given it is a no-op.
type VertexID struct {
	idx, gen uint32
}

// IsZero reports whether id is the zero handle.
func (id VertexID) IsZero() bool { return id.gen == 0 }

func (id VertexID) String() string { return fmt.Sprintf("v%d", id.idx) }

// EdgeID is a generation-checked handle to an edge; see VertexID.
type EdgeID struct {
	idx, gen uint32
}

// IsZero reports whether id is the zero handle.
func (id EdgeID) IsZero() bool { return id.gen == 0 }

func (id EdgeID) String() string { return fmt.Sprintf("e%d", id.idx) }

// VertexAttrs are the editable attributes of a vertex.
type VertexAttrs struct {
	Position geom.Point
	Style    style.VertexStyle
	Label    string
	Value    float64
}

// EdgeAttrs are the editable attributes of an edge.
type EdgeAttrs struct {
	Style  style.EdgeStyle
	Label  string
	Weight float64
}

// Vertex is a read-only snapshot of a vertex.
type Vertex struct {
	ID VertexID
	VertexAttrs

	// Incident lists the edges currently connected to this vertex, in
	// handle order.
	Incident []EdgeID
}

// IsIncidentTo reports whether e was connected to v when the snapshot
// was taken.
func (v Vertex) IsIncidentTo(e EdgeID) bool {
	for _, id := range v.Incident {
		if id == e {
			return true
		}
	}

	return false
}

// Edge is a read-only snapshot of an edge.
type Edge struct {
	ID       EdgeID
	From, To VertexID
	EdgeAttrs

	// Connected is true while the edge is listed in both endpoints'
	// incidence sets.
	Connected bool
}

// IsIncidentTo reports whether v is one of e's endpoints.
func (e Edge) IsIncidentTo(v VertexID) bool { return e.From == v || e.To == v }

// IsAdjacentTo reports whether e and o share an endpoint.
func (e Edge) IsAdjacentTo(o Edge) bool {
	return e.IsIncidentTo(o.From) || e.IsIncidentTo(o.To)
}

// Other returns the endpoint of e opposite v, or the zero handle if v is not
// an endpoint.
func (e Edge) Other(v VertexID) VertexID {
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return VertexID{}
	}
}

// Graph is a mutable planar graph: a membership set of vertices and edges
// over an entity arena shared with every subgraph derived from it.
//
// A graph built with NewGraph or NewSubgraph is connected: adding an edge
// wires it into both endpoints' incidence sets and removing it unwires it.
// An edge is wired by at most one connected graph at a time.
// Query results and history snapshots are detached: their membership never
// touches incidence, and an edge may be present without its endpoints.
//
// Graph is not safe for concurrent use.
type Graph struct {
	store    *store
	detached bool
	defaults style.Provider

	vertices map[VertexID]struct{}
	edges    map[EdgeID]struct{}

	history *History
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithHistoryCapacity sets how many commands Undo can reach back.
// Panics with ErrBadCapacity if n < 1.
func WithHistoryCapacity(n int) GraphOption {
	if n < 1 {
		panic(ErrBadCapacity)
	}
	return func(g *Graph) { g.history = NewHistory(n) }
}

// WithoutHistory disables edit recording; Undo and Redo become no-ops.
func WithoutHistory() GraphOption {
	return func(g *Graph) { g.history = nil }
}

// WithDefaults sets the provider of styles for entities created without an
// explicit one. Panics on nil.
func WithDefaults(p style.Provider) GraphOption {
	if p == nil {
		panic("core: WithDefaults(nil)")
	}
	return func(g *Graph) { g.defaults = p }
}

// NewGraph creates an empty connected graph with its own arena, stock
// default styles and a history of DefaultHistoryCapacity commands.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		store:    newStore(),
		defaults: style.StockDefaults(),
		vertices: make(map[VertexID]struct{}),
		edges:    make(map[EdgeID]struct{}),
		history:  NewHistory(DefaultHistoryCapacity),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// derive returns an empty graph over the same arena and defaults, without
// history.
func (g *Graph) derive(detached bool) *Graph {
	return &Graph{
		store:    g.store,
		detached: detached,
		defaults: g.defaults,
		vertices: make(map[VertexID]struct{}),
		edges:    make(map[EdgeID]struct{}),
	}
}

// VertexOption configures a vertex created by CreateVertex.
type VertexOption func(*VertexAttrs)

// WithVertexStyle sets the vertex style instead of the graph default.
func WithVertexStyle(vs style.VertexStyle) VertexOption {
	return func(a *VertexAttrs) { a.Style = vs }
}

// WithLabel sets the vertex label instead of its position string.
func WithLabel(label string) VertexOption {
	return func(a *VertexAttrs) { a.Label = label }
}

// WithValue sets the vertex scalar value.
func WithValue(v float64) VertexOption {
	return func(a *VertexAttrs) { a.Value = v }
}

// EdgeOption configures an edge created by CreateEdge.
type EdgeOption func(*EdgeAttrs)

// WithEdgeStyle sets the edge style instead of the graph default.
func WithEdgeStyle(es style.EdgeStyle) EdgeOption {
	return func(a *EdgeAttrs) { a.Style = es }
}

// WithEdgeLabel sets the edge label.
func WithEdgeLabel(label string) EdgeOption {
	return func(a *EdgeAttrs) { a.Label = label }
}

// WithWeight sets the edge weight.
func WithWeight(w float64) EdgeOption {
	return func(a *EdgeAttrs) { a.Weight = w }
}

// WithCaps sets both end caps on top of whatever style is in effect.
func WithCaps(source, dest style.Cap) EdgeOption {
	return func(a *EdgeAttrs) {
		a.Style = a.Style.WithSourceCap(source).WithDestinationCap(dest)
	}
}
