package themecraft

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for the editor's own interface elements.
type Styles struct {
	Title      ColorPair // Header bar
	Slot       ColorPair // Inactive slot labels
	ActiveSlot ColorPair // The slot being edited
	Channel    ColorPair // Channel gauge labels
	Muted      ColorPair // Help line, disabled controls
	Status     ColorPair // Status messages
	Error      ColorPair // Error messages
}

// Chrome modes name which chrome the editor uses; auto follows the terminal background.
const (
	ChromeAuto  = "auto"
	ChromeDark  = "dark"
	ChromeLight = "light"
)

// Chrome provides the interface styles, independent of the theme being edited.
// Different implementations can provide light/dark variants.
type Chrome interface {
	Styles() Styles
}
