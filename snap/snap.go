// SPDX-License-Identifier: MIT

package snap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/drawgraph/geom"
)

// Default policy values.
const (
	// DefaultUnitMM is the default unit length in millimetres.
	DefaultUnitMM = 10.0
	// DefaultAngleStep is 15 degrees.
	DefaultAngleStep = math.Pi / 12
	// DefaultMaxRadius is the snap reach in units.
	DefaultMaxRadius = 4.0
)

// Locator finds the vertex nearest a point. *core.Graph implements it.
type Locator interface {
	NearestPosition(p geom.Point) (geom.Point, bool)
}

// Settings is a snapping policy. The zero value is not usable; start from
// Default.
type Settings struct {
	// UnitLength is one unit in device coordinates.
	UnitLength float64
	// AngleStep is the angular quantum in radians.
	AngleStep float64
	// MaxRadius is how far, in units, a vertex attracts the pointer.
	MaxRadius float64

	Unit  bool
	Angle bool
	Grid  bool
}

// Default returns angle snapping at 15° with a 10 mm unit and a reach of
// four units; unit and grid snapping are off.
func Default() Settings {
	return Settings{
		UnitLength: geom.MMToPx(DefaultUnitMM),
		AngleStep:  DefaultAngleStep,
		MaxRadius:  DefaultMaxRadius,
		Angle:      true,
	}
}

// Validate checks that the quanta are usable.
func (s Settings) Validate() error {
	switch {
	case !(s.UnitLength > 0) || math.IsInf(s.UnitLength, 0):
		return fmt.Errorf("Validate: unit=%v: %w", s.UnitLength, ErrBadUnit)
	case !(s.AngleStep > 0) || math.IsInf(s.AngleStep, 0):
		return fmt.Errorf("Validate: step=%v: %w", s.AngleStep, ErrBadAngleStep)
	case s.MaxRadius < 0 || math.IsNaN(s.MaxRadius):
		return fmt.Errorf("Validate: radius=%v: %w", s.MaxRadius, ErrBadRadius)
	}

	return nil
}

// Reach returns MaxRadius in device units.
func (s Settings) Reach() float64 { return s.MaxRadius * s.UnitLength }

// Reposition returns where a vertex proposed at p should go.
//
// Steps:
//  1. Grid on: round p to the unit grid and stop.
//  2. No nearest vertex: return p.
//  3. Otherwise snap relative to the nearest vertex (RepositionFrom).
func (s Settings) Reposition(loc Locator, p geom.Point) geom.Point {
	if s.Grid {
		return s.gridPoint(p)
	}
	if loc == nil {
		return p
	}
	origin, ok := loc.NearestPosition(p)
	if !ok {
		return p
	}

	return s.RepositionFrom(origin, p)
}

// RepositionFrom snaps p relative to a fixed origin: p is returned as is
// when it coincides with origin or lies beyond the reach; otherwise the
// distance is rounded to units (Unit) and the direction to AngleStep
// (Angle), and the point is rebuilt from origin.
func (s Settings) RepositionFrom(origin, p geom.Point) geom.Point {
	if s.Grid {
		return s.gridPoint(p)
	}
	if p.Equal(origin) || (!s.Unit && !s.Angle) {
		return p
	}
	dist := p.Dist(origin)
	if dist > s.Reach() {
		return p
	}
	theta := geom.AngleBetween(p, origin)
	if s.Unit {
		dist = geom.Round(dist, s.UnitLength)
	}
	if s.Angle {
		theta = geom.Round(theta, s.AngleStep)
	}

	return geom.Polar(origin, theta, dist)
}

// Engaged reports whether Reposition would move p or p lies within the
// reach of a vertex: the condition under which the editor previews the
// snapped placement.
func (s Settings) Engaged(loc Locator, p geom.Point) bool {
	if !s.Reposition(loc, p).Equal(p) {
		return true
	}
	if loc == nil {
		return false
	}
	origin, ok := loc.NearestPosition(p)

	return ok && p.Dist(origin) <= s.Reach()
}

func (s Settings) gridPoint(p geom.Point) geom.Point {
	return geom.Pt(geom.Round(p.X, s.UnitLength), geom.Round(p.Y, s.UnitLength))
}
