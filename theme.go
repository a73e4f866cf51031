package themecraft

import (
	"fmt"
	"strings"
	"time"
)

// Theme is a named, persisted set of committed slot colors.
// Colors are stored as "#RRGGBB" keyed by role name.
type Theme struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	BaseColors       map[string]string `json:"baseColors"`
	JobColors        map[string]string `json:"jobColors"`
	SelectedJobColor string            `json:"selectedJobColor"`
	Date             time.Time         `json:"date"`
}

// Validate checks the theme can be stored and reloaded without loss.
func (t Theme) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyThemeName
	}
	for role, hex := range t.BaseColors {
		if !contains(BaseRoles, role) {
			return fmt.Errorf("base color: %w: %q", ErrUnknownSlot, role)
		}
		if _, err := ParseHex(hex); err != nil {
			return fmt.Errorf("base color %s: %w", role, err)
		}
	}
	for role, hex := range t.JobColors {
		if !contains(JobRoles, role) {
			return fmt.Errorf("job color: %w: %q", ErrUnknownSlot, role)
		}
		if _, err := ParseHex(hex); err != nil {
			return fmt.Errorf("job color %s: %w", role, err)
		}
	}
	if t.SelectedJobColor != "" && !contains(JobRoles, t.SelectedJobColor) {
		return fmt.Errorf("selected job color: %w: %q", ErrUnknownSlot, t.SelectedJobColor)
	}
	return nil
}

// Color returns the stored color for slot, leniently parsed.
// The bool is false when the theme has no entry for the slot.
func (t Theme) Color(slot Slot) (RGB, bool) {
	var m map[string]string
	switch slot.Kind {
	case KindBase:
		m = t.BaseColors
	case KindJob:
		m = t.JobColors
	}
	hex, ok := m[slot.Name]
	if !ok {
		return Black, false
	}
	return HexToRGB(hex), true
}

// DefaultTheme returns the built-in theme every session starts from.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		BaseColors: map[string]string{
			"primary":    "#48A971",
			"secondary":  "#3B6E8F",
			"accent":     "#F2A541",
			"background": "#1E1E2E",
			"surface":    "#313244",
			"text":       "#CDD6F4",
		},
		JobColors: map[string]string{
			"red":    "#F38BA8",
			"orange": "#FAB387",
			"yellow": "#F9E2AF",
			"green":  "#A6E3A1",
			"teal":   "#94E2D5",
			"blue":   "#89B4FA",
			"purple": "#CBA6F7",
			"pink":   "#F5C2E7",
		},
		SelectedJobColor: "blue",
	}
}
