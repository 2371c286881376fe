// SPDX-License-Identifier: MIT
// Package snap aligns a proposed point to existing geometry, the way the
// editor places new vertices under the pointer.
//
// Policies (Settings):
//
//	Grid   round both coordinates to the unit length; nothing else applies.
//	Unit   round the distance from the nearest vertex to whole units.
//	Angle  round the direction from the nearest vertex to AngleStep.
//
// Without grid snapping a point only snaps when a nearest vertex exists
// within MaxRadius units; otherwise it is returned unchanged.
package snap
