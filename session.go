package themecraft

import (
	"fmt"
	"time"
)

// EventKind describes what changed in a Session.
type EventKind int

// Event kinds.
const (
	EventSelected EventKind = iota
	EventPreviewed
	EventCommitted
	EventUndone
	EventRedone
	EventSchemeChanged
	EventJobColorSelected
	EventLoaded
)

// String returns a short lowercase label for logs.
func (k EventKind) String() string {
	switch k {
	case EventSelected:
		return "selected"
	case EventPreviewed:
		return "previewed"
	case EventCommitted:
		return "committed"
	case EventUndone:
		return "undone"
	case EventRedone:
		return "redone"
	case EventSchemeChanged:
		return "scheme"
	case EventJobColorSelected:
		return "job-color"
	case EventLoaded:
		return "loaded"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is delivered to observers after the change it describes is applied.
type Event struct {
	Kind  EventKind
	Slot  Slot
	Color RGB // The slot's color after the change
}

// Session is one open editing session: the committed color of every slot,
// the active slot, the harmony scheme and per-slot history.
// A Session is not safe for concurrent use; it is driven by a single event loop.
type Session struct {
	colors      map[Slot]RGB
	active      Slot
	pending     *RGB
	scheme      Scheme
	selectedJob string
	history     *History

	observers map[int]func(Event)
	nextObs   int
}

// NewSession starts a session from theme. Roles missing from theme take
// their color from DefaultTheme. The first base slot is active.
func NewSession(theme Theme) *Session {
	s := &Session{
		history:   NewHistory(),
		observers: make(map[int]func(Event)),
		scheme:    Complementary,
	}
	s.load(theme)
	return s
}

func (s *Session) load(theme Theme) {
	defaults := DefaultTheme()
	s.colors = make(map[Slot]RGB, len(BaseRoles)+len(JobRoles))
	for _, slot := range Slots() {
		c, ok := theme.Color(slot)
		if !ok {
			c, _ = defaults.Color(slot)
		}
		s.colors[slot] = c
	}
	s.selectedJob = theme.SelectedJobColor
	if !contains(JobRoles, s.selectedJob) {
		s.selectedJob = defaults.SelectedJobColor
	}
	s.pending = nil
	s.history.Reset()
	s.active = BaseSlot(BaseRoles[0])
	s.history.Open(s.active, s.colors[s.active])
}

// Subscribe registers fn to be called after every change.
// The returned function removes the registration.
func (s *Session) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

func (s *Session) notify(kind EventKind, slot Slot) {
	e := Event{Kind: kind, Slot: slot, Color: s.Color(slot)}
	// Observers added during delivery see only later events.
	n := s.nextObs
	for i := 0; i < n; i++ {
		if fn, ok := s.observers[i]; ok {
			fn(e)
		}
	}
}

// Active returns the slot being edited.
func (s *Session) Active() Slot {
	return s.active
}

// Select makes slot active, committing any pending preview on the previous slot.
func (s *Session) Select(slot Slot) error {
	if !slot.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}
	s.Release()
	s.active = slot
	s.history.Open(slot, s.colors[slot])
	s.notify(EventSelected, slot)
	return nil
}

// Color returns the slot's current color, including an uncommitted preview.
func (s *Session) Color(slot Slot) RGB {
	if slot == s.active && s.pending != nil {
		return *s.pending
	}
	return s.colors[slot]
}

// Committed returns the slot's last committed color, ignoring any preview.
func (s *Session) Committed(slot Slot) RGB {
	return s.colors[slot]
}

// Pending reports whether the active slot has an uncommitted preview.
func (s *Session) Pending() bool {
	return s.pending != nil
}

// Preview sets an intermediate value for the active slot, as during a drag.
// The value is not recorded in history until Release.
func (s *Session) Preview(c RGB) {
	c = c.Clamp()
	s.pending = &c
	s.notify(EventPreviewed, s.active)
}

// Release ends a drag gesture by committing the pending preview, if any.
func (s *Session) Release() {
	if s.pending == nil {
		return
	}
	c := *s.pending
	s.pending = nil
	s.Commit(c)
}

// Commit sets the active slot's color and records it in history.
func (s *Session) Commit(c RGB) {
	c = c.Clamp()
	s.pending = nil
	s.colors[s.active] = c
	s.history.Commit(s.active, c)
	s.notify(EventCommitted, s.active)
}

// SetHex commits a free-typed hex value. Malformed input commits black.
func (s *Session) SetHex(hex string) {
	s.Commit(HexToRGB(hex))
}

// Undo restores the active slot's previous committed color.
// During a drag it discards the preview instead.
// Navigation is not itself recorded. It reports false at the start of history.
func (s *Session) Undo() (RGB, bool) {
	if s.pending != nil {
		s.pending = nil
		s.notify(EventUndone, s.active)
		return s.colors[s.active], true
	}
	c, ok := s.history.Undo(s.active)
	if !ok {
		return s.colors[s.active], false
	}
	s.colors[s.active] = c
	s.notify(EventUndone, s.active)
	return c, true
}

// Redo reapplies the active slot's next committed color, discarding any preview.
// At the end of history it reports false and leaves a preview in place.
func (s *Session) Redo() (RGB, bool) {
	c, ok := s.history.Redo(s.active)
	if !ok {
		return s.Color(s.active), false
	}
	s.pending = nil
	s.colors[s.active] = c
	s.notify(EventRedone, s.active)
	return c, true
}

// CanUndo reports whether Undo would change the active slot.
func (s *Session) CanUndo() bool {
	return s.pending != nil || s.history.CanUndo(s.active)
}

// CanRedo reports whether Redo would change the active slot.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo(s.active)
}

// History exposes the per-slot logs for inspection.
func (s *Session) History() *History {
	return s.history
}

// Scheme returns the harmony scheme used by Palette.
func (s *Session) Scheme() Scheme {
	return s.scheme
}

// SetScheme changes the harmony scheme.
func (s *Session) SetScheme(scheme Scheme) {
	s.scheme = scheme
	s.notify(EventSchemeChanged, s.active)
}

// Palette derives the current scheme's swatches from the active slot's color.
func (s *Session) Palette() []Swatch {
	return Harmony(s.Color(s.active), s.scheme)
}

// ApplySwatch commits palette entry i to the active slot.
func (s *Session) ApplySwatch(i int) error {
	palette := s.Palette()
	if i < 0 || i >= len(palette) {
		return fmt.Errorf("swatch %d out of range [0,%d)", i, len(palette))
	}
	s.Commit(palette[i].Color)
	return nil
}

// SelectedJobColor returns the job role marked as selected.
func (s *Session) SelectedJobColor() string {
	return s.selectedJob
}

// SelectJobColor marks role as the selected job color.
func (s *Session) SelectJobColor(role string) error {
	if !contains(JobRoles, role) {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, JobSlot(role))
	}
	s.selectedJob = role
	s.notify(EventJobColorSelected, JobSlot(role))
	return nil
}

// Theme snapshots the committed colors as a named theme.
// Previews and history are not included.
func (s *Session) Theme(name string, now time.Time) Theme {
	t := Theme{
		Name:             name,
		BaseColors:       make(map[string]string, len(BaseRoles)),
		JobColors:        make(map[string]string, len(JobRoles)),
		SelectedJobColor: s.selectedJob,
		Date:             now,
	}
	for _, r := range BaseRoles {
		t.BaseColors[r] = s.colors[BaseSlot(r)].String()
	}
	for _, r := range JobRoles {
		t.JobColors[r] = s.colors[JobSlot(r)].String()
	}
	return t
}

// Load replaces every color with theme's and discards history.
func (s *Session) Load(theme Theme) {
	s.load(theme)
	s.notify(EventLoaded, s.active)
}
