package polynest

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an RGBA color with components in [0, 1]. Not premultiplied;
// premultiplication happens at render submission time.
type Color struct {
	R, G, B, A float64
}

var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// namedColors maps color names to values. The C0–C9 names are the default
// plot color cycle the CLI defaults refer to.
var namedColors = map[string]Color{
	"C0": rgb8(0x1f, 0x77, 0xb4),
	"C1": rgb8(0xff, 0x7f, 0x0e),
	"C2": rgb8(0x2c, 0xa0, 0x2c),
	"C3": rgb8(0xd6, 0x27, 0x28),
	"C4": rgb8(0x94, 0x67, 0xbd),
	"C5": rgb8(0x8c, 0x56, 0x4b),
	"C6": rgb8(0xe3, 0x77, 0xc2),
	"C7": rgb8(0x7f, 0x7f, 0x7f),
	"C8": rgb8(0xbc, 0xbd, 0x22),
	"C9": rgb8(0x17, 0xbe, 0xcf),

	"black":   ColorBlack,
	"white":   ColorWhite,
	"red":     rgb8(0xff, 0x00, 0x00),
	"green":   rgb8(0x00, 0x80, 0x00),
	"blue":    rgb8(0x00, 0x00, 0xff),
	"yellow":  rgb8(0xff, 0xff, 0x00),
	"cyan":    rgb8(0x00, 0xff, 0xff),
	"magenta": rgb8(0xff, 0x00, 0xff),
	"orange":  rgb8(0xff, 0xa5, 0x00),
	"purple":  rgb8(0x80, 0x00, 0x80),
	"gray":    rgb8(0x80, 0x80, 0x80),
}

func rgb8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// ParseColor resolves a color name (case-insensitive, except the C0–C9 cycle
// names) or a #rrggbb / #rrggbbaa hex literal.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("parse color: empty string")
	}

	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}

	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("parse color: unknown color %q", s)
}

func parseHexColor(s string) (Color, error) {
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("parse color: %q is not #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("parse color: %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// NRGBA converts to 8-bit straight-alpha color for CPU rasterization.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clamp8(c.R),
		G: clamp8(c.G),
		B: clamp8(c.B),
		A: clamp8(c.A),
	}
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// LevelColor returns the fill color for a nesting level: ColorA and ColorB
// alternate by level parity, and the deepest allowed slot is always the
// boundary color so a fully-recursed frame ends in a solid center.
func (c Config) LevelColor(level int) Color {
	if level == c.MaxPolygons-1 {
		return ColorBlack
	}
	if level%2 == 0 {
		return c.ColorA
	}
	return c.ColorB
}
