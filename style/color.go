// SPDX-License-Identifier: MIT

package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Common colors.
var (
	Black       = color.RGBA{A: 0xff}
	White       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Transparent = color.RGBA{}
)

// ParseHex parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("ParseHex(%q): %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("ParseHex(%q): %w", s, ErrBadColor)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}

	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
