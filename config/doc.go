// SPDX-License-Identifier: MIT
// Package config loads editor settings from YAML: the snapping policy, the
// history depth, tool radii and the default vertex and edge styles.
//
// A document only needs the keys it changes; everything else keeps the
// values of Default:
//
//	snap:
//	  unit_length: 37.795      # device units (10 mm at 96 px/in)
//	  angle_step_degrees: 15
//	  max_radius_units: 4
//	  unit: false
//	  angle: true
//	  grid: false
//	history:
//	  capacity: 500
//	tools:
//	  eraser_radius: 50
//	  select_radius: 1
//	defaults:
//	  vertex: {shape: circle, border: "#000000", thickness: 1, radius: 10}
//	  edge:   {dash: solid, color: "#000000", thickness: 1}
//
// Unknown keys are rejected so that typos do not pass silently.
package config
