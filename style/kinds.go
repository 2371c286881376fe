// SPDX-License-Identifier: MIT

package style

import (
	"fmt"
	"strings"
)

// Kind enumerates vertex border shapes.
type Kind uint8

const (
	KindCircle Kind = iota
	KindCircleSplit
	KindNoSign
	KindDiamond
	KindCross
	KindStrike
	KindRectangle
	KindEllipse
	KindPolygon
	KindStar
	KindNone
)

var kindNames = [...]string{
	KindCircle:      "circle",
	KindCircleSplit: "circle-split",
	KindNoSign:      "no-sign",
	KindDiamond:     "diamond",
	KindCross:       "cross",
	KindStrike:      "strike",
	KindRectangle:   "rectangle",
	KindEllipse:     "ellipse",
	KindPolygon:     "polygon",
	KindStar:        "star",
	KindNone:        "none",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsRound reports whether k is drawn from a single radius.
func (k Kind) IsRound() bool { return k <= KindStrike || k == KindNone }

// IsOblong reports whether k is sized by width and height.
func (k Kind) IsOblong() bool { return k == KindRectangle || k == KindEllipse }

// IsRegular reports whether k is sized by radius and point count.
func (k Kind) IsRegular() bool { return k == KindPolygon || k == KindStar }

// ParseKind parses a border kind name as produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	idx, err := parseName(s, kindNames[:])
	if err != nil {
		return 0, fmt.Errorf("ParseKind: %w", err)
	}

	return Kind(idx), nil
}

// Dash enumerates edge line patterns.
type Dash uint8

const (
	DashSolid Dash = iota
	DashDash
	DashDot
	DashDotDash
	DashDashDot
	DashDashDotDot
	DashNone
)

var dashNames = [...]string{
	DashSolid:      "solid",
	DashDash:       "dash",
	DashDot:        "dot",
	DashDotDash:    "dot-dash",
	DashDashDot:    "dash-dot",
	DashDashDotDot: "dash-dot-dot",
	DashNone:       "none",
}

func (d Dash) String() string {
	if int(d) < len(dashNames) {
		return dashNames[d]
	}

	return fmt.Sprintf("Dash(%d)", uint8(d))
}

// ParseDash parses a line pattern name.
func ParseDash(s string) (Dash, error) {
	idx, err := parseName(s, dashNames[:])
	if err != nil {
		return 0, fmt.Errorf("ParseDash: %w", err)
	}

	return Dash(idx), nil
}

// Density is the spacing class of a dashed pattern.
type Density uint8

const (
	DensityRegular Density = iota
	DensityLoose
	DensityDense
)

var densityNames = [...]string{
	DensityRegular: "regular",
	DensityLoose:   "loose",
	DensityDense:   "dense",
}

func (d Density) String() string {
	if int(d) < len(densityNames) {
		return densityNames[d]
	}

	return fmt.Sprintf("Density(%d)", uint8(d))
}

// ParseDensity parses a density name.
func ParseDensity(s string) (Density, error) {
	idx, err := parseName(s, densityNames[:])
	if err != nil {
		return 0, fmt.Errorf("ParseDensity: %w", err)
	}

	return Density(idx), nil
}

// Cap is the decoration drawn at one end of an edge.
type Cap uint8

const (
	CapNone Cap = iota
	CapArrow
	CapStealth
	CapBar
	CapCircle
)

var capNames = [...]string{
	CapNone:    "none",
	CapArrow:   "arrow",
	CapStealth: "stealth",
	CapBar:     "bar",
	CapCircle:  "circle",
}

func (c Cap) String() string {
	if int(c) < len(capNames) {
		return capNames[c]
	}

	return fmt.Sprintf("Cap(%d)", uint8(c))
}

// ParseCap parses a cap name.
func ParseCap(s string) (Cap, error) {
	idx, err := parseName(s, capNames[:])
	if err != nil {
		return 0, fmt.Errorf("ParseCap: %w", err)
	}

	return Cap(idx), nil
}

func parseName(s string, names []string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownName)
}
