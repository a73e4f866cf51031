// Package bolt provides a theme store backed by a bbolt database file.
package bolt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/themecraft"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// Compile-time interface verification.
var _ themecraft.ThemeStore = (*Store)(nil)

var themesBucket = []byte("themes")

// Store persists themes in a single bucket keyed by theme name.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database at path, creating parent directories if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open theme db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(themesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces the theme with the same name.
// A theme without an ID keeps the stored theme's ID, or gets a new one.
func (s *Store) Save(theme themecraft.Theme) error {
	if err := theme.Validate(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(themesBucket)
		key := []byte(theme.Name)
		if theme.ID == "" {
			if data := b.Get(key); data != nil {
				var existing themecraft.Theme
				if err := json.Unmarshal(data, &existing); err == nil {
					theme.ID = existing.ID
				}
			}
		}
		if theme.ID == "" {
			theme.ID = uuid.NewString()
		}
		data, err := json.Marshal(theme)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// Load returns the named theme or themecraft.ErrThemeNotFound.
func (s *Store) Load(name string) (*themecraft.Theme, error) {
	var theme themecraft.Theme
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(themesBucket).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("%w: %q", themecraft.ErrThemeNotFound, name)
		}
		return json.Unmarshal(data, &theme)
	})
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// List returns every theme sorted by name.
func (s *Store) List() ([]themecraft.Theme, error) {
	var themes []themecraft.Theme
	err := s.db.View(func(tx *bolt.Tx) error {
		// Keys iterate in byte order, which is name order.
		return tx.Bucket(themesBucket).ForEach(func(k, v []byte) error {
			var theme themecraft.Theme
			if err := json.Unmarshal(v, &theme); err != nil {
				return fmt.Errorf("theme %q: %w", k, err)
			}
			themes = append(themes, theme)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return themes, nil
}

// Delete removes the named theme or returns themecraft.ErrThemeNotFound.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(themesBucket)
		key := []byte(name)
		if b.Get(key) == nil {
			return fmt.Errorf("%w: %q", themecraft.ErrThemeNotFound, name)
		}
		return b.Delete(key)
	})
}
