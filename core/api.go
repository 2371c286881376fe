// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents its complexity.

package core

import (
	"fmt"

	"github.com/katalvlaran/drawgraph/geom"
)

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	Vertices  int
	Edges     int
	Detached  bool
	UndoDepth int
	RedoDepth int
	Min, Max  geom.Point
}

// Stats returns counts, history depth and bounds in one snapshot.
//
// Complexity: O((V + E) log(V + E)).
func (g *Graph) Stats() GraphStats {
	st := GraphStats{
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Detached: g.detached,
	}
	if g.history != nil {
		st.UndoDepth = g.history.Position()
		st.RedoDepth = g.history.Len() - g.history.Position()
	}
	st.Min, st.Max = g.GetBounds()

	return st
}

// String renders the summary on one line.
func (s GraphStats) String() string {
	return fmt.Sprintf("vertices=%d edges=%d undo=%d redo=%d bounds=%s..%s",
		s.Vertices, s.Edges, s.UndoDepth, s.RedoDepth, s.Min, s.Max)
}
