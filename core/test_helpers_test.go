// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for drawgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep coordinates and radii named so test bodies avoid magic numbers.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drawgraph/core"
	"github.com/katalvlaran/drawgraph/geom"
	"github.com/katalvlaran/drawgraph/style"
)

// Common geometry used across core tests.
const (
	Radius10  = 10.0
	Spacing   = 100.0
	TinyPick  = 1.0
	EraserRad = 50.0
)

// pointStyle is a zero-extent vertex so containment tests reduce to centers.
var pointStyle = style.MustRoundStyle(style.KindNone, style.Black, 0, 0)

// triangle builds A(0,0), B(100,0), C(0,100) with edges AB, BC, CA using
// the stock radius-10 circle style.
func triangle(t *testing.T) (g *core.Graph, a, b, c core.VertexID, ab, bc, ca core.EdgeID) {
	t.Helper()
	g = core.NewGraph()
	a = g.CreateVertex(geom.Pt(0, 0), core.WithLabel("A"))
	b = g.CreateVertex(geom.Pt(Spacing, 0), core.WithLabel("B"))
	c = g.CreateVertex(geom.Pt(0, Spacing), core.WithLabel("C"))
	ab = g.CreateEdge(a, b)
	bc = g.CreateEdge(b, c)
	ca = g.CreateEdge(c, a)
	require.False(t, ab.IsZero())
	require.False(t, bc.IsZero())
	require.False(t, ca.IsZero())

	return g, a, b, c, ab, bc, ca
}

// requireConsistent checks the connected-graph invariants: every member
// edge has member endpoints and is listed by both, and every vertex lists
// only edges that name it as an endpoint.
func requireConsistent(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, e := range g.ViewEdges() {
		require.True(t, g.HasVertex(e.From), "edge %s: source %s missing", e.ID, e.From)
		require.True(t, g.HasVertex(e.To), "edge %s: destination %s missing", e.ID, e.To)
		require.True(t, e.Connected, "edge %s not connected", e.ID)
	}
	for _, v := range g.ViewVertices() {
		for _, id := range v.Incident {
			if !g.HasEdge(id) {
				continue
			}
			require.True(t, g.IsIncidentTo(id, v.ID), "vertex %s lists foreign edge %s", v.ID, id)
		}
	}
}
