package themecraft

import (
	"fmt"
	"math"
	"sort"
)

// Scheme is a rule for deriving a palette from one base color.
type Scheme int

// Harmony schemes.
const (
	Complementary Scheme = iota
	Analogous
	Triadic
	Tetradic
	SplitComplementary
	Accented
	Fibonacci
	Monochromatic
)

// goldenAngle is the Fibonacci scheme's hue step in degrees.
const goldenAngle = 137.508

var schemeNames = map[Scheme]string{
	Complementary:      "complementary",
	Analogous:          "analogous",
	Triadic:            "triadic",
	Tetradic:           "tetradic",
	SplitComplementary: "split-complementary",
	Accented:           "accented",
	Fibonacci:          "fibonacci",
	Monochromatic:      "monochromatic",
}

// hueOffsets lists each hue-rotating scheme's offsets in degrees.
var hueOffsets = map[Scheme][]float64{
	Complementary:      {0, 30, -30, 180, 210, 150},
	Analogous:          {0, 15, 30, 45, 60, -15, -30, -45},
	Triadic:            {0, 60, 120, 180, 240, 300},
	Tetradic:           {0, 45, 90, 135, 180, 225, 270, 315},
	SplitComplementary: {0, 30, -30, 150, 180, 210},
	Accented:           {0, 20, -20, 40, 150, 180},
	Fibonacci:          fibonacciOffsets(8),
}

// monochromeLadder is the Monochromatic lightness sequence. There is no 50.
var monochromeLadder = []int{10, 15, 20, 25, 30, 35, 40, 45, 55, 60, 65, 70, 75, 80, 85, 90}

func fibonacciOffsets(n int) []float64 {
	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = float64(i) * goldenAngle
	}
	return offsets
}

// Schemes returns every scheme in declaration order.
func Schemes() []Scheme {
	return []Scheme{
		Complementary, Analogous, Triadic, Tetradic,
		SplitComplementary, Accented, Fibonacci, Monochromatic,
	}
}

// ParseScheme resolves a scheme from its identifier, e.g. "split-complementary".
func ParseScheme(name string) (Scheme, error) {
	for _, s := range Schemes() {
		if schemeNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// String returns the scheme identifier.
func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// Next returns the following scheme, wrapping around.
func (s Scheme) Next() Scheme {
	all := Schemes()
	return all[(int(s)+1)%len(all)]
}

// Prev returns the preceding scheme, wrapping around.
func (s Scheme) Prev() Scheme {
	all := Schemes()
	return all[(int(s)-1+len(all))%len(all)]
}

// Swatch is one derived palette entry.
type Swatch struct {
	Angle float64 // Unreduced hue angle (base hue + offset)
	HSL   HSL     // Hue reduced to [0,360), rounded
	Color RGB
}

// Harmony derives the palette for base under scheme.
// Hue-rotating schemes keep saturation and lightness and are ordered by the
// unreduced angle, so Fibonacci stays in rainbow order across rotations.
// Monochromatic keeps hue and saturation and walks the lightness ladder.
func Harmony(base RGB, scheme Scheme) []Swatch {
	hsl := base.HSL()

	if scheme == Monochromatic {
		swatches := make([]Swatch, 0, len(monochromeLadder))
		for _, l := range monochromeLadder {
			v := HSL{H: hsl.H, S: hsl.S, L: l}
			swatches = append(swatches, Swatch{Angle: float64(hsl.H), HSL: v, Color: v.RGB()})
		}
		return swatches
	}

	offsets, ok := hueOffsets[scheme]
	if !ok {
		return nil
	}

	swatches := make([]Swatch, 0, len(offsets))
	for _, off := range offsets {
		angle := float64(hsl.H) + off
		reduced := math.Mod(angle, 360)
		if reduced < 0 {
			reduced += 360
		}
		swatches = append(swatches, Swatch{
			Angle: angle,
			HSL:   HSL{H: wrapHue(int(math.Round(reduced))), S: hsl.S, L: hsl.L},
			Color: hslToRGB(reduced, hsl.S, hsl.L),
		})
	}
	sort.SliceStable(swatches, func(i, j int) bool {
		return swatches[i].Angle < swatches[j].Angle
	})
	return swatches
}
