package mock

import (
	"context"

	"github.com/fwojciec/themecraft"
)

// Compile-time interface verification.
var _ themecraft.Editor = (*Editor)(nil)

// Editor is a mock implementation of themecraft.Editor.
type Editor struct {
	EditFn func(ctx context.Context, session *themecraft.Session) error
}

func (e *Editor) Edit(ctx context.Context, session *themecraft.Session) error {
	return e.EditFn(ctx, session)
}
