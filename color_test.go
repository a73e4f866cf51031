package themecraft_test

import (
	"testing"

	"github.com/fwojciec/themecraft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  themecraft.RGB
	}{
		{"uppercase with hash", "#48A971", themecraft.RGB{R: 72, G: 169, B: 113}},
		{"lowercase without hash", "48a971", themecraft.RGB{R: 72, G: 169, B: 113}},
		{"mixed case", "#fFfF00", themecraft.RGB{R: 255, G: 255, B: 0}},
		{"surrounding whitespace", "  #000001\n", themecraft.RGB{R: 0, G: 0, B: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := themecraft.ParseHex(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"", "#", "#FFF", "#1234567", "GGGGGG", "#12 456", "+12345"} {
			_, err := themecraft.ParseHex(input)
			assert.ErrorIs(t, err, themecraft.ErrInvalidHex, "input %q", input)
		}
	})
}

func TestHexToRGB(t *testing.T) {
	t.Parallel()

	t.Run("falls back to black on malformed input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, themecraft.Black, themecraft.HexToRGB("not a color"))
		assert.Equal(t, themecraft.RGB{}, themecraft.HexToRGB("#12"))
	})

	t.Run("round trips every channel value through Hex", func(t *testing.T) {
		t.Parallel()

		for r := 0; r <= 255; r += 15 {
			for g := 0; g <= 255; g += 17 {
				for b := 0; b <= 255; b += 5 {
					c := themecraft.RGB{R: r, G: g, B: b}
					require.Equal(t, c, themecraft.HexToRGB(c.Hex()), "color %v", c)
				}
			}
		}
	})
}

func TestRGB_Hex(t *testing.T) {
	t.Parallel()

	t.Run("formats six uppercase digits without hash", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "0A0B0C", themecraft.RGB{R: 10, G: 11, B: 12}.Hex())
		assert.Equal(t, "FFFFFF", themecraft.RGB{R: 255, G: 255, B: 255}.Hex())
	})

	t.Run("clamps out-of-range channels", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "FF0000", themecraft.RGB{R: 300, G: -5, B: 0}.Hex())
	})

	t.Run("String adds the display hash", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "#48A971", themecraft.RGB{R: 72, G: 169, B: 113}.String())
	})
}

func TestRGB_HSL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rgb  themecraft.RGB
		want themecraft.HSL
	}{
		{"red", themecraft.RGB{R: 255}, themecraft.HSL{H: 0, S: 100, L: 50}},
		{"green", themecraft.RGB{G: 255}, themecraft.HSL{H: 120, S: 100, L: 50}},
		{"blue", themecraft.RGB{B: 255}, themecraft.HSL{H: 240, S: 100, L: 50}},
		{"white", themecraft.RGB{R: 255, G: 255, B: 255}, themecraft.HSL{H: 0, S: 0, L: 100}},
		{"black", themecraft.RGB{}, themecraft.HSL{}},
		{"gray", themecraft.RGB{R: 128, G: 128, B: 128}, themecraft.HSL{H: 0, S: 0, L: 50}},
		{"sea green", themecraft.RGB{R: 72, G: 169, B: 113}, themecraft.HSL{H: 145, S: 40, L: 47}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.rgb.HSL())
		})
	}
}

func TestHSL_RGB(t *testing.T) {
	t.Parallel()

	t.Run("converts primaries", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, themecraft.RGB{R: 255}, themecraft.HSL{H: 0, S: 100, L: 50}.RGB())
		assert.Equal(t, themecraft.RGB{G: 255}, themecraft.HSL{H: 120, S: 100, L: 50}.RGB())
		assert.Equal(t, themecraft.RGB{B: 255}, themecraft.HSL{H: 240, S: 100, L: 50}.RGB())
	})

	t.Run("wraps hue and clamps saturation and lightness", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, themecraft.HSL{H: 0, S: 100, L: 50}.RGB(), themecraft.HSL{H: 360, S: 150, L: 50}.RGB())
		assert.Equal(t, themecraft.HSL{H: 350, S: 0, L: 100}.RGB(), themecraft.HSL{H: -10, S: -20, L: 120}.RGB())
	})

	t.Run("round trips within one unit per component", func(t *testing.T) {
		t.Parallel()

		// Hue is only recoverable when chroma is large enough to survive 8-bit rounding.
		for h := 0; h < 360; h++ {
			for s := 60; s <= 100; s += 5 {
				for l := 35; l <= 65; l += 5 {
					in := themecraft.HSL{H: h, S: s, L: l}
					out := in.RGB().HSL()
					require.LessOrEqual(t, hueDistance(in.H, out.H), 1, "hue of %v -> %v", in, out)
					require.InDelta(t, in.S, out.S, 1, "saturation of %v -> %v", in, out)
					require.InDelta(t, in.L, out.L, 1, "lightness of %v -> %v", in, out)
				}
			}
		}
	})

	t.Run("grays round trip exactly in lightness", func(t *testing.T) {
		t.Parallel()

		for l := 0; l <= 100; l++ {
			out := themecraft.HSL{H: 200, S: 0, L: l}.RGB().HSL()
			require.Equal(t, 0, out.H)
			require.Equal(t, 0, out.S)
			require.InDelta(t, l, out.L, 1)
		}
	})
}

func hueDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}
