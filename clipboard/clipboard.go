// Package clipboard provides clipboard operations through the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/themecraft"
)

// Ensure System implements the Clipboard interface.
var _ themecraft.Clipboard = (*System)(nil)

// ErrUnsupported is returned when no clipboard utility is available
// (pbcopy, xclip, xsel, wl-copy or the Windows API).
var ErrUnsupported = errors.New("clipboard unavailable")

// System implements Clipboard using the platform's clipboard.
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

// Paste reads the system clipboard.
func (s *System) Paste() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	content, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("paste: %w", err)
	}
	return content, nil
}
