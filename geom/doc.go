// SPDX-License-Identifier: MIT
// Package geom provides the planar primitives used by the drawgraph engine:
// points and vectors, angles, tolerant comparisons, the quantizing round used
// by snapping, the quartic real-root test behind ellipse/circle intersection,
// segment and polygon predicates, and length-unit conversion.
//
// Coordinates are device units (pixels) with the y axis pointing down, so a
// positive angle turns clockwise on screen. Angles are radians in [0, 2π).
//
// Complexity:
//   - Point arithmetic and predicates are O(1); polygon predicates are O(n)
//     in the number of polygon vertices.
//
// Determinism:
//   - Every function is pure and allocation-free unless it returns a slice.
package geom
