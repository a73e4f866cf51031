// Package lipgloss provides the editor chrome and swatch rendering using the Lipgloss styling library.
package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/themecraft"
)

// Compile-time interface verification.
var _ themecraft.Chrome = (*Chrome)(nil)

// Chrome implements themecraft.Chrome with Lipgloss-compatible colors.
type Chrome struct {
	styles themecraft.Styles
}

// Styles returns the interface styles for this chrome.
func (c *Chrome) Styles() themecraft.Styles {
	return c.styles
}

// DefaultChrome picks the dark or light chrome from the terminal background.
func DefaultChrome() *Chrome {
	if lipgloss.HasDarkBackground() {
		return DarkChrome()
	}
	return LightChrome()
}

// ChromeFor returns the chrome for a themecraft chrome mode; anything but
// dark or light follows the terminal background.
func ChromeFor(mode string) *Chrome {
	switch mode {
	case themecraft.ChromeDark:
		return DarkChrome()
	case themecraft.ChromeLight:
		return LightChrome()
	default:
		return DefaultChrome()
	}
}

// DarkChrome returns chrome optimized for dark terminal backgrounds.
func DarkChrome() *Chrome {
	return &Chrome{
		styles: themecraft.Styles{
			Title: themecraft.ColorPair{
				Foreground: "#1e1e2e", // Dark text on accent bar
				Background: "#89b4fa", // Blue
			},
			Slot: themecraft.ColorPair{
				Foreground: "#a6adc8", // Subtext
			},
			ActiveSlot: themecraft.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			Channel: themecraft.ColorPair{
				Foreground: "#cdd6f4",
			},
			Muted: themecraft.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Status: themecraft.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			Error: themecraft.ColorPair{
				Foreground: "#f38ba8", // Red
			},
		},
	}
}

// LightChrome returns chrome optimized for light terminal backgrounds.
func LightChrome() *Chrome {
	return &Chrome{
		styles: themecraft.Styles{
			Title: themecraft.ColorPair{
				Foreground: "#ffffff",
				Background: "#1e66f5", // Blue
			},
			Slot: themecraft.ColorPair{
				Foreground: "#6c6f85",
			},
			ActiveSlot: themecraft.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			Channel: themecraft.ColorPair{
				Foreground: "#4c4f69",
			},
			Muted: themecraft.ColorPair{
				Foreground: "#9ca0b0",
			},
			Status: themecraft.ColorPair{
				Foreground: "#40a02b", // Green
			},
			Error: themecraft.ColorPair{
				Foreground: "#d20f39", // Red
			},
		},
	}
}

// StyleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func StyleFromColorPair(cp themecraft.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	style := renderer.NewStyle()
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}
