// SPDX-License-Identifier: MIT
// Package style defines the immutable visual descriptors attached to graph
// entities: vertex border shapes, vertex styles, edge line styles and edge
// end caps.
//
// Shapes form a closed tagged union (Round, Ellipse, Rectangle, Regular).
// Each variant carries its own angular radius and containment tests, so the
// spatial queries in core never switch over a shape enum themselves.
//
// Styles are values. "Editing" a style means building a new value with one
// of the With* methods and storing it on the entity; nothing is shared by
// reference between entities.
//
// Construction policy:
//   - Constructors validate kind against constructor family and extents and
//     return ErrShapeConstructor / ErrBadExtent on misuse. Nothing is ever
//     partially constructed.
//   - Must* wrappers panic with the same error for literal, known-good input.
package style
