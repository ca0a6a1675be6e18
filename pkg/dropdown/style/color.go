package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color. In TOML it is written as "#rrggbb",
// "#rrggbbaa" or "#rgb".
type Color struct {
	R, G, B, A uint8
}

// Transparent is the zero-alpha color.
var Transparent = Color{}

// HexColor builds an opaque color from 0xRRGGBB.
func HexColor(hex uint32) Color {
	return Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// ParseColor parses a CSS-style hex color.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(raw) {
	case 3:
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]}) + "ff"
	case 6:
		raw += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("style: invalid color %q", s)
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("style: invalid color %q: %w", s, err)
	}

	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustParseColor is ParseColor for constants; it panics on bad input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
