// SPDX-License-Identifier: MIT
// Package render draws a graph snapshot as SVG.
//
// Vertices are drawn by border kind (circles, split and crossed circles,
// diamonds, rectangles, ellipses, polygons and stars), edges as straight
// lines clipped at the vertex borders with their dash pattern and end caps.
// A highlighted subgraph, typically the current selection, is stroked in
// the highlight color on top of the regular styles.
//
// The canvas covers the graph bounds plus a margin; coordinates are
// rounded to whole device units after scaling.
package render
