// SPDX-License-Identifier: MIT
// Package script interprets line-oriented edit scripts against a graph,
// replaying what the editor's tools do: placing snapped vertices, joining
// them, erasing and selecting by region, dragging out shapes, changing end
// caps and stepping through history.
//
// One command per line; blank lines and text after '#' are ignored.
// Vertices are named when created and edges are named "A-B".
//
//	vertex NAME X Y              place a vertex, snapped like the vertex tool
//	edge A B                     join two vertices (no loops, no parallels)
//	link X1 Y1 X2 Y2             join the vertices under two points
//	remove NAME...               remove vertices/edges as one undoable step
//	delete NAME...               delete permanently, without history
//	move NAME X Y                move a vertex
//	select circle X Y R          select what touches a circle
//	select rect X Y W H          select what lies within a rectangle
//	select polygon X Y X Y X Y…  select what touches a lasso polygon
//	select none                  drop the selection
//	click X Y                    select what is directly under a point
//	erase X Y                    delete what the eraser touches (no undo)
//	cut                          remove the selection
//	shape N CX CY X Y [norim] [center] [spokes]
//	                             drag a regular shape from CX,CY to X,Y
//	cap X Y NAME                 set the nearest edge end's cap
//	snap unit|angle|grid on|off  toggle a snapping policy
//	undo [N], redo [N], clear
//	bounds, info, history        print to the output writer
package script
