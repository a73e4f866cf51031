package themecraft

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color as three 8-bit channels.
// Channels outside [0,255] are clamped whenever the color is formatted or converted.
type RGB struct {
	R, G, B int
}

// HSL is a color as hue (degrees, [0,360)), saturation and lightness (percent, [0,100]).
type HSL struct {
	H, S, L int
}

// Black is returned by the lenient converters when input cannot be parsed.
var Black = RGB{}

// ParseHex parses a 6-digit hex color, with or without a leading '#'.
// Parsing is case-insensitive and ignores surrounding whitespace.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Black, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}, nil
}

// HexToRGB is the lenient form of ParseHex used for free-typed input.
// Malformed input yields Black instead of an error.
func HexToRGB(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

// Clamp returns the color with every channel limited to [0,255].
func (c RGB) Clamp() RGB {
	return RGB{R: clampInt(c.R, 0, 255), G: clampInt(c.G, 0, 255), B: clampInt(c.B, 0, 255)}
}

// Hex returns the canonical form: six uppercase hex digits, no '#'.
func (c RGB) Hex() string {
	c = c.Clamp()
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the display form "#RRGGBB".
func (c RGB) String() string {
	return "#" + c.Hex()
}

// HSL converts the color to rounded HSL. Grays have hue and saturation 0.
func (c RGB) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	hue := int(math.Round(h))
	if hue >= 360 {
		hue -= 360
	}
	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

func (c RGB) colorful() colorful.Color {
	c = c.Clamp()
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Normalize wraps the hue into [0,360) and clamps saturation and lightness to [0,100].
func (h HSL) Normalize() HSL {
	return HSL{H: wrapHue(h.H), S: clampInt(h.S, 0, 100), L: clampInt(h.L, 0, 100)}
}

// RGB converts the color to RGB with channels rounded to the nearest integer.
func (h HSL) RGB() RGB {
	h = h.Normalize()
	return hslToRGB(float64(h.H), h.S, h.L)
}

// hslToRGB accepts a fractional hue so harmony angles are not rounded
// before conversion.
func hslToRGB(hue float64, s, l int) RGB {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsl(hue, float64(s)/100, float64(l)/100).Clamped().RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}
}

func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
