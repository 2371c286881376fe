// SPDX-License-Identifier: MIT
// File: commands.go
// Role: The three command variants recorded by the history: VertexEdit,
//       EdgeEdit and SubgraphEdit.
// Contract:
//   - A command is immutable once built. Redo re-applies it, Undo reverts it,
//     both through the graph's non-recording helpers.
//   - Add and Remove may cover several entities (plural). Edit covers
//     exactly one vertex or edge: a plural edit and any subgraph edit panic
//     with ErrUnsupportedEdit at construction.
//   - Commands hold handles, so replaying one whose entities were deleted
//     since is a no-op for those entities.

package core

import (
	"fmt"
	"strings"
)

// Quantifier says what a command did.
type Quantifier uint8

const (
	QuantifierAdd Quantifier = iota + 1
	QuantifierRemove
	QuantifierEdit
)

func (q Quantifier) String() string {
	switch q {
	case QuantifierAdd:
		return "Add"
	case QuantifierRemove:
		return "Remove"
	case QuantifierEdit:
		return "Edit"
	default:
		return fmt.Sprintf("Quantifier(%d)", uint8(q))
	}
}

// Command is one reversible step in a graph's history.
type Command interface {
	Redo(g *Graph)
	Undo(g *Graph)
	Description() string
}

// VertexEdit adds, removes or edits vertices.
type VertexEdit struct {
	q      Quantifier
	ids    []VertexID
	before VertexAttrs
	after  VertexAttrs
}

// NewVertexAdd records the addition of one or more vertices.
func NewVertexAdd(ids ...VertexID) *VertexEdit { return newVertexEdit(QuantifierAdd, ids) }

// NewVertexRemove records the removal of one or more vertices. Edges are
// not captured; use a subgraph command for vertices with edges.
func NewVertexRemove(ids ...VertexID) *VertexEdit { return newVertexEdit(QuantifierRemove, ids) }

// NewVertexEdit records a change of one vertex's attributes.
func NewVertexEdit(id VertexID, before, after VertexAttrs) *VertexEdit {
	c := newVertexEdit(QuantifierEdit, []VertexID{id})
	c.before, c.after = before, after

	return c
}

// NewVertexEdits stands for a plural vertex edit, which is not supported.
// It panics with ErrUnsupportedEdit whatever it is given, one id included;
// use NewVertexEdit per vertex.
func NewVertexEdits(ids []VertexID, before, after []VertexAttrs) *VertexEdit {
	panic(ErrUnsupportedEdit)
}

func newVertexEdit(q Quantifier, ids []VertexID) *VertexEdit {
	if len(ids) == 0 {
		panic(ErrEmptyEdit)
	}
	if q == QuantifierEdit && len(ids) > 1 {
		panic(ErrUnsupportedEdit)
	}

	return &VertexEdit{q: q, ids: append([]VertexID(nil), ids...)}
}

func (c *VertexEdit) Quantifier() Quantifier { return c.q }
func (c *VertexEdit) Plural() bool { return len(c.ids) > 1 }

// IDs returns a copy of the vertices the command covers.
func (c *VertexEdit) IDs() []VertexID { return append([]VertexID(nil), c.ids...) }

func (c *VertexEdit) Redo(g *Graph) {
	switch c.q {
	case QuantifierAdd:
		for _, id := range c.ids {
			g.addVertexQuiet(id)
		}
	case QuantifierRemove:
		for _, id := range c.ids {
			g.removeVertexQuiet(id)
		}
	case QuantifierEdit:
		g.setVertexAttrsQuiet(c.ids[0], c.after)
	}
}

func (c *VertexEdit) Undo(g *Graph) {
	switch c.q {
	case QuantifierAdd:
		for _, id := range c.ids {
			g.removeVertexQuiet(id)
		}
	case QuantifierRemove:
		for _, id := range c.ids {
			g.addVertexQuiet(id)
		}
	case QuantifierEdit:
		g.setVertexAttrsQuiet(c.ids[0], c.before)
	}
}

func (c *VertexEdit) Description() string {
	return describe(c.q, "vertex", "vertices", vertexNames(c.ids))
}

// EdgeEdit adds, removes or edits edges.
type EdgeEdit struct {
	q      Quantifier
	ids    []EdgeID
	before EdgeAttrs
	after  EdgeAttrs
}

// NewEdgeAdd records the addition of one or more edges.
func NewEdgeAdd(ids ...EdgeID) *EdgeEdit { return newEdgeEdit(QuantifierAdd, ids) }

// NewEdgeRemove records the removal of one or more edges.
func NewEdgeRemove(ids ...EdgeID) *EdgeEdit { return newEdgeEdit(QuantifierRemove, ids) }

// NewEdgeEdit records a change of one edge's attributes.
func NewEdgeEdit(id EdgeID, before, after EdgeAttrs) *EdgeEdit {
	c := newEdgeEdit(QuantifierEdit, []EdgeID{id})
	c.before, c.after = before, after

	return c
}

// NewEdgeEdits panics with ErrUnsupportedEdit for any input: plural edge
// edits are not supported.
func NewEdgeEdits(ids []EdgeID, before, after []EdgeAttrs) *EdgeEdit {
	panic(ErrUnsupportedEdit)
}

func newEdgeEdit(q Quantifier, ids []EdgeID) *EdgeEdit {
	if len(ids) == 0 {
		panic(ErrEmptyEdit)
	}
	if q == QuantifierEdit && len(ids) > 1 {
		panic(ErrUnsupportedEdit)
	}

	return &EdgeEdit{q: q, ids: append([]EdgeID(nil), ids...)}
}

func (c *EdgeEdit) Quantifier() Quantifier { return c.q }
func (c *EdgeEdit) Plural() bool { return len(c.ids) > 1 }

// IDs returns a copy of the edges the command covers.
func (c *EdgeEdit) IDs() []EdgeID { return append([]EdgeID(nil), c.ids...) }

func (c *EdgeEdit) Redo(g *Graph) {
	switch c.q {
	case QuantifierAdd:
		for _, id := range c.ids {
			g.addEdgeQuiet(id)
		}
	case QuantifierRemove:
		for _, id := range c.ids {
			g.removeEdgeQuiet(id)
		}
	case QuantifierEdit:
		g.setEdgeAttrsQuiet(c.ids[0], c.after)
	}
}

func (c *EdgeEdit) Undo(g *Graph) {
	switch c.q {
	case QuantifierAdd:
		for _, id := range c.ids {
			g.removeEdgeQuiet(id)
		}
	case QuantifierRemove:
		for _, id := range c.ids {
			g.addEdgeQuiet(id)
		}
	case QuantifierEdit:
		g.setEdgeAttrsQuiet(c.ids[0], c.before)
	}
}

func (c *EdgeEdit) Description() string {
	names := make([]string, len(c.ids))
	for i, id := range c.ids {
		names[i] = id.String()
	}

	return describe(c.q, "edge", "edges", names)
}

// SubgraphEdit adds or removes a whole subgraph. It holds a detached
// snapshot of the members, so later changes to the caller's subgraph do not
// leak into history.
type SubgraphEdit struct {
	q    Quantifier
	snap *Graph
}

// NewSubgraphAdd records the merge of sub.
func NewSubgraphAdd(sub *Graph) *SubgraphEdit { return NewSubgraphEdit(QuantifierAdd, sub) }

// NewSubgraphRemove records the removal of sub.
func NewSubgraphRemove(sub *Graph) *SubgraphEdit { return NewSubgraphEdit(QuantifierRemove, sub) }

// NewSubgraphEdit builds a subgraph command. QuantifierEdit panics with
// ErrUnsupportedEdit; a nil sub panics with ErrEmptyEdit.
func NewSubgraphEdit(q Quantifier, sub *Graph) *SubgraphEdit {
	if q == QuantifierEdit {
		panic(ErrUnsupportedEdit)
	}
	if sub == nil {
		panic(ErrEmptyEdit)
	}

	return &SubgraphEdit{q: q, snap: sub.Snapshot()}
}

func (c *SubgraphEdit) Quantifier() Quantifier { return c.q }

// Plural is always false: a subgraph is one entity for history purposes.
func (c *SubgraphEdit) Plural() bool { return false }

// Subgraph returns a fresh detached copy of the recorded members.
func (c *SubgraphEdit) Subgraph() *Graph { return c.snap.Snapshot() }

func (c *SubgraphEdit) Redo(g *Graph) {
	if c.q == QuantifierAdd {
		g.addSubgraphQuiet(c.snap)
	} else {
		g.removeSubgraphQuiet(c.snap)
	}
}

func (c *SubgraphEdit) Undo(g *Graph) {
	if c.q == QuantifierAdd {
		g.removeSubgraphQuiet(c.snap)
	} else {
		g.addSubgraphQuiet(c.snap)
	}
}

func (c *SubgraphEdit) Description() string {
	return fmt.Sprintf("%s subgraph (%d vertices, %d edges)",
		c.q, len(c.snap.vertices), len(c.snap.edges))
}

func vertexNames(ids []VertexID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

func describe(q Quantifier, one, many string, names []string) string {
	noun := one
	if len(names) > 1 {
		noun = many
	}

	return fmt.Sprintf("%s %s %s", q, noun, strings.Join(names, ", "))
}
