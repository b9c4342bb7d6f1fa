package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

var namedColors = map[string]Color{
	"black":     Black,
	"white":     White,
	"red":       {255, 0, 0},
	"green":     {0, 128, 0},
	"blue":      {0, 0, 255},
	"gray":      {128, 128, 128},
	"grey":      {128, 128, 128},
	"lightgray": {211, 211, 211},
	"lightgrey": {211, 211, 211},
	"silver":    {192, 192, 192},
	"yellow":    {255, 255, 0},
	"orange":    {255, 165, 0},
}

// ParseColor parses "#rgb", "#rrggbb" or one of a handful of basic color
// names (case-insensitive).
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	if !strings.HasPrefix(v, "#") {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	hex := v[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Floats returns the components scaled to 0..1 as used by PDF color operators.
func (c Color) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// TextAlignment represents horizontal text alignment
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a TextAlignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParseAlignment accepts "left", "center", "right", "justify" or the
// single-letter forms L, C, R, J.
func ParseAlignment(s string) (TextAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "l", "left":
		return AlignLeft, nil
	case "c", "center", "centre", "middle":
		return AlignCenter, nil
	case "r", "right":
		return AlignRight, nil
	case "j", "justify":
		return AlignJustify, nil
	}
	return AlignLeft, fmt.Errorf("invalid alignment %q", s)
}

// VerticalAlignment represents vertical alignment
type VerticalAlignment int

const (
	VAlignTop VerticalAlignment = iota
	VAlignMiddle
	VAlignBottom
)

func (v VerticalAlignment) String() string {
	switch v {
	case VAlignMiddle:
		return "middle"
	case VAlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

// ParseVerticalAlignment accepts "top", "middle", "bottom" or T, M, B.
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "t", "top":
		return VAlignTop, nil
	case "m", "middle", "center", "centre":
		return VAlignMiddle, nil
	case "b", "bottom":
		return VAlignBottom, nil
	}
	return VAlignTop, fmt.Errorf("invalid vertical alignment %q", s)
}

// Border is a set of box sides
type Border uint8

const (
	BorderLeft Border = 1 << iota
	BorderTop
	BorderRight
	BorderBottom

	BorderNone Border = 0
	BorderAll         = BorderLeft | BorderTop | BorderRight | BorderBottom
)

// Has reports whether every side in s is part of the border.
func (b Border) Has(s Border) bool {
	return b&s == s
}

func (b Border) String() string {
	if b == BorderNone {
		return "0"
	}
	var sb strings.Builder
	for _, side := range []struct {
		s Border
		c byte
	}{{BorderLeft, 'L'}, {BorderTop, 'T'}, {BorderRight, 'R'}, {BorderBottom, 'B'}} {
		if b.Has(side.s) {
			sb.WriteByte(side.c)
		}
	}
	return sb.String()
}

// ParseBorder parses "1" (all sides), "0" or "" (none), or any combination
// of the letters L, T, R and B.
func ParseBorder(s string) (Border, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	switch v {
	case "", "0":
		return BorderNone, nil
	case "1":
		return BorderAll, nil
	}
	var b Border
	for _, c := range v {
		switch c {
		case 'L':
			b |= BorderLeft
		case 'T':
			b |= BorderTop
		case 'R':
			b |= BorderRight
		case 'B':
			b |= BorderBottom
		default:
			return BorderNone, fmt.Errorf("invalid border %q", s)
		}
	}
	return b, nil
}
