package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the theme editor.
type KeyMap struct {
	// Slots
	NextSlot key.Binding
	PrevSlot key.Binding

	// Channel adjustment (a drag gesture until Release)
	Channel    key.Binding
	Decrease   key.Binding
	Increase   key.Binding
	DecreaseBy key.Binding
	IncreaseBy key.Binding
	Release    key.Binding

	// Harmony
	NextScheme  key.Binding
	PrevScheme  key.Binding
	NextSwatch  key.Binding
	PrevSwatch  key.Binding
	ApplySwatch key.Binding

	// History
	Undo key.Binding
	Redo key.Binding

	// Clipboard and input
	Copy      key.Binding
	Paste     key.Binding
	HexInput  key.Binding
	SelectJob key.Binding
	Save      key.Binding

	// Input mode
	Submit key.Binding
	Cancel key.Binding

	// General
	Quit key.Binding
	Help key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSlot: key.NewBinding(
			key.WithKeys("tab", "j", "down"),
			key.WithHelp("tab/j", "next slot"),
		),
		PrevSlot: key.NewBinding(
			key.WithKeys("shift+tab", "k", "up"),
			key.WithHelp("S-tab/k", "previous slot"),
		),
		Channel: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle channel"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "increase"),
		),
		DecreaseBy: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "decrease by 10"),
		),
		IncreaseBy: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "increase by 10"),
		),
		Release: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "commit"),
		),
		NextScheme: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next scheme"),
		),
		PrevScheme: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "previous scheme"),
		),
		NextSwatch: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next swatch"),
		),
		PrevSwatch: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous swatch"),
		),
		ApplySwatch: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "apply swatch"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+r", "ctrl+y"),
			key.WithHelp("ctrl+r", "redo"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy hex"),
		),
		Paste: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "paste hex"),
		),
		HexInput: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "type hex"),
		),
		SelectJob: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "select job color"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save theme"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSlot, k.Channel, k.Increase, k.Release, k.NextScheme, k.Undo, k.Save, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSlot, k.PrevSlot, k.SelectJob},
		{k.Channel, k.Decrease, k.Increase, k.DecreaseBy, k.IncreaseBy, k.Release},
		{k.NextScheme, k.PrevScheme, k.PrevSwatch, k.NextSwatch, k.ApplySwatch},
		{k.Undo, k.Redo, k.Copy, k.Paste, k.HexInput, k.Save},
		{k.Help, k.Quit},
	}
}
