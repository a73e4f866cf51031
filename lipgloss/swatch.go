package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/themecraft"
)

// SwatchWidth is the width in cells of one rendered swatch.
const SwatchWidth = 9

// TextOn returns black or white, whichever reads better on c.
func TextOn(c themecraft.RGB) themecraft.RGB {
	if c.HSL().L > 55 {
		return themecraft.RGB{}
	}
	return themecraft.RGB{R: 255, G: 255, B: 255}
}

// Swatch renders label on a block of color c. A selected swatch is bracketed.
// If renderer is nil, the default lipgloss renderer is used.
func Swatch(c themecraft.RGB, label string, selected bool, renderer *lipgloss.Renderer) string {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	if selected {
		label = "[" + label + "]"
	}
	return renderer.NewStyle().
		Width(SwatchWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(c.String())).
		Foreground(lipgloss.Color(TextOn(c).String())).
		Render(label)
}

// SwatchStrip renders harmony swatches left to right, labelled with their hex codes.
func SwatchStrip(swatches []themecraft.Swatch, selected int, renderer *lipgloss.Renderer) string {
	if len(swatches) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(swatches))
	for i, sw := range swatches {
		blocks = append(blocks, Swatch(sw.Color, sw.Color.Hex(), i == selected, renderer))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// Gauge renders value on a 0..limit bar of the given width, e.g. "█████░░░░░".
func Gauge(value, limit, width int) string {
	if width <= 0 || limit <= 0 {
		return ""
	}
	filled := value * width / limit
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
