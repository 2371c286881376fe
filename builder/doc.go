// SPDX-License-Identifier: MIT
// Package builder constructs regular shapes (rings, wheels, stars, paths,
// polygons, grids and complete figures) inside a scratch subgraph and merges
// them into a parent graph as one undoable step, the way the editor's shape
// tool does.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build:       run constructors in parent.NewSubgraph(), then AddSubgraph.
//     – BuildGraph:  same, over a fresh core.Graph.
//   - Constructors (Constructor closures, implemented in impl_*.go):
//     – Ring, RingThrough:  n vertices evenly spaced on a circle.
//     – Wheel, Star:        a ring with a hub, with or without the rim.
//     – Path, Polygon:      vertices at given points, open or closed.
//     – Grid:               a rows×cols lattice with 4-neighbour edges.
//     – Complete:           a ring layout with every chord.
//   - Options (Option, resolved into builderConfig):
//     – WithOuterRing, WithCenter, WithSpokes, WithStartAngle.
//     – WithVertexStyle, WithEdgeStyle, WithLabels.
//   - Label schemes (LabelFn): DecimalLabels, LetterLabels.
//
// Guarantees:
//
//   - A successful Build adds exactly one SubgraphEdit to the parent's
//     history; a failed Build deletes whatever it created and records nothing.
//   - Vertices are emitted in index order, counter-clockwise in mathematical
//     orientation starting at the start angle; edges follow a documented order.
//   - Invalid parameters return sentinel errors (errors.Is); option
//     constructors panic on meaningless input.
package builder
