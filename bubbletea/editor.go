// Package bubbletea provides a terminal theme editor using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/themecraft"
	chrome "github.com/fwojciec/themecraft/lipgloss"
)

// Channel identifies which HSL component the adjust keys change.
type Channel int

// Channel constants.
const (
	ChannelHue Channel = iota
	ChannelSaturation
	ChannelLightness
)

func (c Channel) String() string {
	switch c {
	case ChannelHue:
		return "Hue"
	case ChannelSaturation:
		return "Saturation"
	default:
		return "Lightness"
	}
}

// Mode identifies the current interaction mode.
type Mode int

// Mode constants.
const (
	ModeEdit Mode = iota
	ModeHex
	ModeSave
)

// gaugeWidth is the width of each channel bar.
const gaugeWidth = 24

// Model is the Bubble Tea model for editing a theme.
type Model struct {
	// Data
	session *themecraft.Session
	slots   []themecraft.Slot

	// Editing state
	channel Channel
	drag    themecraft.HSL // Accumulated HSL while session.Pending()
	swatch  int
	mode    Mode

	// UI Components
	input textinput.Model
	help  help.Model

	// Rendering
	styles   themecraft.Styles
	renderer *lipgloss.Renderer
	width    int
	height   int
	ready    bool

	// Boundaries
	store     themecraft.ThemeStore
	clipboard themecraft.Clipboard
	themeName string
	now       func() time.Time

	status    string
	statusErr bool

	keymap KeyMap
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithThemeStore sets the store used by the save prompt.
func WithThemeStore(store themecraft.ThemeStore) ModelOption {
	return func(m *Model) {
		m.store = store
	}
}

// WithClipboard sets the clipboard used for copy and paste.
func WithClipboard(cb themecraft.Clipboard) ModelOption {
	return func(m *Model) {
		m.clipboard = cb
	}
}

// WithChrome sets the interface colors.
func WithChrome(c themecraft.Chrome) ModelOption {
	return func(m *Model) {
		m.styles = c.Styles()
	}
}

// WithRenderer sets the lipgloss renderer, mainly for tests.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithThemeName sets the name offered by the save prompt.
func WithThemeName(name string) ModelOption {
	return func(m *Model) {
		m.themeName = name
	}
}

// WithClock sets the time source for saved theme dates.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// NewModel creates a Model editing session.
func NewModel(session *themecraft.Session, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64

	m := Model{
		session:  session,
		slots:    themecraft.Slots(),
		mode:     ModeEdit,
		input:    ti,
		help:     help.New(),
		styles:   chrome.DarkChrome().Styles(),
		renderer: lipgloss.DefaultRenderer(),
		now:      time.Now,
		keymap:   DefaultKeyMap(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Session returns the session being edited.
func (m Model) Session() *themecraft.Session {
	return m.session
}

// Mode returns the current interaction mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Channel returns the channel the adjust keys change.
func (m Model) Channel() Channel {
	return m.channel
}

// Swatch returns the index of the highlighted palette swatch.
func (m Model) Swatch() int {
	return m.swatch
}

// Status returns the last status message and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == ModeEdit {
			return m.handleEditKeys(msg)
		}
		return m.handleInputKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil
	}

	if m.mode != ModeEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.session.Release()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.NextSlot):
		m.selectSlot(1)

	case key.Matches(msg, m.keymap.PrevSlot):
		m.selectSlot(-1)

	case key.Matches(msg, m.keymap.Channel):
		m.channel = (m.channel + 1) % 3

	case key.Matches(msg, m.keymap.Decrease):
		m.adjust(-1)

	case key.Matches(msg, m.keymap.Increase):
		m.adjust(1)

	case key.Matches(msg, m.keymap.DecreaseBy):
		m.adjust(-10)

	case key.Matches(msg, m.keymap.IncreaseBy):
		m.adjust(10)

	case key.Matches(msg, m.keymap.Release):
		if m.session.Pending() {
			m.session.Release()
			m.setStatus("committed " + m.activeColor().String())
		}

	case key.Matches(msg, m.keymap.NextScheme):
		m.session.SetScheme(m.session.Scheme().Next())
		m.swatch = 0

	case key.Matches(msg, m.keymap.PrevScheme):
		m.session.SetScheme(m.session.Scheme().Prev())
		m.swatch = 0

	case key.Matches(msg, m.keymap.NextSwatch):
		m.moveSwatch(1)

	case key.Matches(msg, m.keymap.PrevSwatch):
		m.moveSwatch(-1)

	case key.Matches(msg, m.keymap.ApplySwatch):
		m.session.Release()
		if err := m.session.ApplySwatch(m.swatch); err != nil {
			m.setError(err)
		} else {
			m.setStatus("applied " + m.activeColor().String())
		}

	case key.Matches(msg, m.keymap.Undo):
		if _, ok := m.session.Undo(); ok {
			m.setStatus("undo: " + m.activeColor().String())
		} else {
			m.setStatus("nothing to undo")
		}

	case key.Matches(msg, m.keymap.Redo):
		if _, ok := m.session.Redo(); ok {
			m.setStatus("redo: " + m.activeColor().String())
		} else {
			m.setStatus("nothing to redo")
		}

	case key.Matches(msg, m.keymap.Copy):
		m.copyHex()

	case key.Matches(msg, m.keymap.Paste):
		m.pasteHex()

	case key.Matches(msg, m.keymap.SelectJob):
		active := m.session.Active()
		if active.Kind != themecraft.KindJob {
			m.setStatus("select a job color slot first")
		} else if err := m.session.SelectJobColor(active.Name); err != nil {
			m.setError(err)
		} else {
			m.setStatus(active.Name + " is the selected job color")
		}

	case key.Matches(msg, m.keymap.HexInput):
		return m.enterInput(ModeHex, m.activeColor().Hex(), "RRGGBB")

	case key.Matches(msg, m.keymap.Save):
		if m.store == nil {
			m.setStatus("no theme store configured")
			return m, nil
		}
		return m.enterInput(ModeSave, m.themeName, "theme name")
	}

	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.mode = ModeEdit
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = ModeEdit
		m.input.Blur()
		if mode == ModeHex {
			m.session.Release()
			m.session.SetHex(value)
			m.setStatus("set " + m.activeColor().String())
		} else {
			m.saveTheme(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) enterInput(mode Mode, value, placeholder string) (tea.Model, tea.Cmd) {
	m.session.Release()
	m.mode = mode
	m.input.Reset()
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) selectSlot(delta int) {
	idx := 0
	for i, s := range m.slots {
		if s == m.session.Active() {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(m.slots)) % len(m.slots)
	if err := m.session.Select(m.slots[idx]); err != nil {
		m.setError(err)
		return
	}
	m.swatch = 0
}

// adjust moves the current channel by delta as part of a drag.
// The first step of a drag starts from the committed color.
func (m *Model) adjust(delta int) {
	if !m.session.Pending() {
		m.drag = m.activeColor().HSL()
	}
	switch m.channel {
	case ChannelHue:
		m.drag.H = ((m.drag.H+delta)%360 + 360) % 360
	case ChannelSaturation:
		m.drag.S = clamp(m.drag.S+delta, 0, 100)
	case ChannelLightness:
		m.drag.L = clamp(m.drag.L+delta, 0, 100)
	}
	m.session.Preview(m.drag.RGB())
}

func (m *Model) moveSwatch(delta int) {
	n := len(m.session.Palette())
	if n == 0 {
		return
	}
	m.swatch = (m.swatch + delta + n) % n
}

func (m *Model) copyHex() {
	if m.clipboard == nil {
		m.setStatus("clipboard unavailable")
		return
	}
	hex := m.activeColor().String()
	if err := m.clipboard.Copy(hex); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("copied " + hex)
}

func (m *Model) pasteHex() {
	if m.clipboard == nil {
		m.setStatus("clipboard unavailable")
		return
	}
	content, err := m.clipboard.Paste()
	if err != nil {
		m.setError(err)
		return
	}
	m.session.Release()
	m.session.SetHex(content)
	m.setStatus("pasted " + m.activeColor().String())
}

func (m *Model) saveTheme(name string) {
	theme := m.session.Theme(name, m.now())
	if err := m.store.Save(theme); err != nil {
		m.setError(fmt.Errorf("save %q: %w", name, err))
		return
	}
	m.themeName = name
	m.setStatus(fmt.Sprintf("saved theme %q", name))
}

func (m *Model) activeColor() themecraft.RGB {
	return m.session.Color(m.session.Active())
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Editor implements themecraft.Editor using a Bubble Tea TUI.
type Editor struct {
	opts     []ModelOption
	debugLog string
}

// Compile-time interface verification.
var _ themecraft.Editor = (*Editor)(nil)

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithModelOptions sets the options used to build each editing model.
func WithModelOptions(opts ...ModelOption) EditorOption {
	return func(e *Editor) {
		e.opts = append(e.opts, opts...)
	}
}

// WithDebugLog writes session events to the file at path while editing.
// An empty path disables logging.
func WithDebugLog(path string) EditorOption {
	return func(e *Editor) {
		e.debugLog = path
	}
}

// NewEditor creates an Editor.
func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Edit runs the editor on session and blocks until the user quits.
func (e *Editor) Edit(ctx context.Context, session *themecraft.Session) error {
	if e.debugLog != "" {
		f, err := tea.LogToFile(e.debugLog, "themecraft")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		unsubscribe := session.Subscribe(logEvent)
		defer unsubscribe()
	}

	m := NewModel(session, e.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

func logEvent(e themecraft.Event) {
	log.Printf("%s %s %s", e.Kind, e.Slot, e.Color)
}
