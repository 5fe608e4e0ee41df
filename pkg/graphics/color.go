package graphics

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is stored as ARGB (0xAARRGGBB).
//
// The same layout is used by packed color output ranges: bits 0-7 hold blue,
// 8-15 green, 16-23 red and 24-31 alpha.
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// A returns the alpha byte.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red byte.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green byte.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue byte.
func (c Color) B() uint8 { return uint8(c) }

// Packed returns the color as a float64 holding the unsigned 32-bit pattern,
// the form used for color entries of an interpolation output range.
func (c Color) Packed() float64 {
	return float64(uint32(c))
}

// FromPacked converts a packed float64 back to a Color. Negative inputs are
// treated as signed 32-bit values and keep their bit pattern.
func FromPacked(v float64) Color {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ColorTransparent
	}
	return Color(uint32(int64(v)))
}

// Hex formats the color as #AARRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor resolves a textual color. Accepted forms are #RRGGBB (opaque),
// #AARRGGBB and CSS color names such as "cornflowerblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("graphics: empty color")
	}
	if strings.HasPrefix(s, "#") {
		switch len(s) {
		case 7:
			c, err := colorful.Hex(s)
			if err != nil {
				return 0, fmt.Errorf("graphics: invalid color %q: %w", s, err)
			}
			r, g, b := c.RGB255()
			return RGB(r, g, b), nil
		case 9:
			var v uint32
			if _, err := fmt.Sscanf(s, "#%08x", &v); err != nil {
				return 0, fmt.Errorf("graphics: invalid color %q: %w", s, err)
			}
			return Color(v), nil
		default:
			return 0, fmt.Errorf("graphics: invalid color %q", s)
		}
	}
	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("graphics: unknown color name %q", s)
	}
	return RGBA8(named.R, named.G, named.B, named.A), nil
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
