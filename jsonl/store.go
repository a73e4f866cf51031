package jsonl

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/fwojciec/themecraft"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ themecraft.ThemeStore = (*Store)(nil)

// Store persists themes in a single JSONL file, rewriting it on every change.
type Store struct {
	path string
}

// NewStore creates a Store for the file at path. The file is created on first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// load returns no themes if the file doesn't exist yet.
func (s *Store) load() ([]themecraft.Theme, error) {
	themes, err := Load(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return themes, err
}

// Save inserts or replaces the theme with the same name.
func (s *Store) Save(theme themecraft.Theme) error {
	if err := theme.Validate(); err != nil {
		return err
	}
	themes, err := s.load()
	if err != nil {
		return err
	}

	idx := -1
	for i := range themes {
		if themes[i].Name == theme.Name {
			idx = i
			break
		}
	}
	if theme.ID == "" && idx >= 0 {
		theme.ID = themes[idx].ID
	}
	if theme.ID == "" {
		theme.ID = uuid.NewString()
	}
	if idx >= 0 {
		themes[idx] = theme
	} else {
		themes = append(themes, theme)
	}

	sort.SliceStable(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return Save(s.path, themes)
}

// Load returns the named theme or themecraft.ErrThemeNotFound.
func (s *Store) Load(name string) (*themecraft.Theme, error) {
	themes, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range themes {
		if themes[i].Name == name {
			return &themes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", themecraft.ErrThemeNotFound, name)
}

// List returns every theme sorted by name.
func (s *Store) List() ([]themecraft.Theme, error) {
	themes, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes, nil
}

// Delete removes the named theme or returns themecraft.ErrThemeNotFound.
func (s *Store) Delete(name string) error {
	themes, err := s.load()
	if err != nil {
		return err
	}
	kept := themes[:0]
	for _, t := range themes {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(themes) {
		return fmt.Errorf("%w: %q", themecraft.ErrThemeNotFound, name)
	}
	return Save(s.path, kept)
}
