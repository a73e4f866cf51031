// Package fs resolves where themecraft keeps its files.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultDataDir returns the default data directory for themecraft.
// Uses XDG_DATA_HOME if set, otherwise falls back to ~/.local/share/themecraft,
// or system temp directory if home is unavailable.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "themecraft")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "themecraft")
	}
	return filepath.Join(home, ".local", "share", "themecraft")
}
