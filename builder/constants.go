// SPDX-License-Identifier: MIT

package builder

// Method names used as error prefixes.
const (
	MethodBuild    = "Build"
	MethodRing     = "Ring"
	MethodWheel    = "Wheel"
	MethodStar     = "Star"
	MethodPath     = "Path"
	MethodPolygon  = "Polygon"
	MethodGrid     = "Grid"
	MethodComplete = "Complete"
)

// CenterLabel is the hub label used by Wheel, Star and WithCenter when a
// LabelFn is configured.
const CenterLabel = "Center"

// Minimum vertex counts.
const (
	// MinRingNodes is the smallest closed ring without parallel edges.
	MinRingNodes = 3
	// MinOpenRingNodes applies to rings built WithOuterRing(false).
	MinOpenRingNodes = 1
	// MinStarLeaves is the smallest star.
	MinStarLeaves = 1
	// MinPathNodes is the smallest path with an edge.
	MinPathNodes = 2
	// MinGridDim is the smallest grid side.
	MinGridDim = 1
	// MinCompleteNodes is the smallest complete figure with an edge.
	MinCompleteNodes = 2
)
