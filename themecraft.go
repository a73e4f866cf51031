// Package themecraft provides domain types for creating and editing color themes.
package themecraft

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	ErrInvalidHex     = errors.New("invalid hex color")
	ErrUnknownScheme  = errors.New("unknown harmony scheme")
	ErrUnknownSlot    = errors.New("unknown color slot")
	ErrThemeNotFound  = errors.New("theme not found")
	ErrEmptyThemeName = errors.New("theme name is empty")
)

// SlotKind separates the two families of editable colors.
type SlotKind int

// Slot kinds.
const (
	KindBase SlotKind = iota
	KindJob
)

// String returns the identifier used in storage and on the command line.
func (k SlotKind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindJob:
		return "job"
	default:
		return fmt.Sprintf("SlotKind(%d)", int(k))
	}
}

// Base color roles, in swatch order.
var BaseRoles = []string{"primary", "secondary", "accent", "background", "surface", "text"}

// Job color roles, in swatch order.
var JobRoles = []string{"red", "orange", "yellow", "green", "teal", "blue", "purple", "pink"}

// Slot identifies one independently edited color.
type Slot struct {
	Kind SlotKind
	Name string
}

// BaseSlot returns the base slot for role.
func BaseSlot(role string) Slot { return Slot{Kind: KindBase, Name: role} }

// JobSlot returns the job slot for role.
func JobSlot(role string) Slot { return Slot{Kind: KindJob, Name: role} }

// String returns "kind/name", e.g. "base/primary".
func (s Slot) String() string {
	return s.Kind.String() + "/" + s.Name
}

// Valid reports whether the slot names a declared role of its kind.
func (s Slot) Valid() bool {
	return contains(rolesFor(s.Kind), s.Name)
}

// ParseSlot parses "base/primary", "job/red" or a bare role name.
// Bare names are looked up among base roles first.
func ParseSlot(s string) (Slot, error) {
	if kind, name, ok := strings.Cut(s, "/"); ok {
		var slot Slot
		switch kind {
		case "base":
			slot = BaseSlot(name)
		case "job":
			slot = JobSlot(name)
		default:
			return Slot{}, fmt.Errorf("%w: %s", ErrUnknownSlot, s)
		}
		if !slot.Valid() {
			return Slot{}, fmt.Errorf("%w: %s", ErrUnknownSlot, s)
		}
		return slot, nil
	}
	if contains(BaseRoles, s) {
		return BaseSlot(s), nil
	}
	if contains(JobRoles, s) {
		return JobSlot(s), nil
	}
	return Slot{}, fmt.Errorf("%w: %s", ErrUnknownSlot, s)
}

// Slots returns every slot in declaration order: base roles, then job roles.
func Slots() []Slot {
	slots := make([]Slot, 0, len(BaseRoles)+len(JobRoles))
	for _, r := range BaseRoles {
		slots = append(slots, BaseSlot(r))
	}
	for _, r := range JobRoles {
		slots = append(slots, JobSlot(r))
	}
	return slots
}

func rolesFor(k SlotKind) []string {
	switch k {
	case KindBase:
		return BaseRoles
	case KindJob:
		return JobRoles
	default:
		return nil
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ThemeStore persists named themes.
type ThemeStore interface {
	// Save inserts or replaces the theme with the same name.
	Save(theme Theme) error
	// Load returns the named theme or ErrThemeNotFound.
	Load(name string) (*Theme, error)
	// List returns every theme sorted by name.
	List() ([]Theme, error)
	// Delete removes the named theme or returns ErrThemeNotFound.
	Delete(name string) error
}

// Clipboard provides copy and paste of plain text.
type Clipboard interface {
	Copy(content string) error
	Paste() (string, error)
}

// Editor runs an interactive editing session and blocks until the user exits.
type Editor interface {
	Edit(ctx context.Context, session *Session) error
}
