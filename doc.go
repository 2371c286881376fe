// Package drawgraph is the editing engine behind a planar diagram editor:
// vertices with shapes and styles, straight edges clipped at vertex
// borders, spatial queries, undoable edits and snapping.
//
// What is inside?
//
//	geom/     points, angles, segment and shape predicates, quartic roots
//	style/    vertex shapes, edge dash patterns and caps, colors, defaults
//	core/     the Graph, its mutation API, spatial queries and undo/redo
//	snap/     grid, unit-length and angle snapping of new vertices
//	builder/  one-step shape constructors: ring, wheel, star, grid, ...
//	config/   YAML editor settings: snapping, history, tools, default styles
//	render/   SVG output
//	script/   a line-oriented edit language replayed against a Graph
//	cmd/drawgraph  the command line front end
//
// Quick sketch:
//
//	g := core.NewGraph()
//	a := g.CreateVertex(geom.Pt(0, 0))
//	b := g.CreateVertex(geom.Pt(100, 0))
//	g.CreateEdge(a, b)
//	g.Undo() // the edge is gone again
//
// Every exported mutation of a connected graph is one history step; query
// results and snapshots are detached graphs that share entities with their
// parent but never record history.
package drawgraph
