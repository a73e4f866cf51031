package mock

import "github.com/fwojciec/themecraft"

// Compile-time interface verification.
var _ themecraft.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of themecraft.Clipboard.
type Clipboard struct {
	CopyFn  func(text string) error
	PasteFn func() (string, error)
}

func (c *Clipboard) Copy(text string) error {
	return c.CopyFn(text)
}

func (c *Clipboard) Paste() (string, error) {
	return c.PasteFn()
}
