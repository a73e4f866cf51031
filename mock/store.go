package mock

import "github.com/fwojciec/themecraft"

// Compile-time interface verification.
var _ themecraft.ThemeStore = (*ThemeStore)(nil)

// ThemeStore is a mock implementation of themecraft.ThemeStore.
type ThemeStore struct {
	SaveFn   func(theme themecraft.Theme) error
	LoadFn   func(name string) (*themecraft.Theme, error)
	ListFn   func() ([]themecraft.Theme, error)
	DeleteFn func(name string) error
}

func (s *ThemeStore) Save(theme themecraft.Theme) error {
	return s.SaveFn(theme)
}

func (s *ThemeStore) Load(name string) (*themecraft.Theme, error) {
	return s.LoadFn(name)
}

func (s *ThemeStore) List() ([]themecraft.Theme, error) {
	return s.ListFn()
}

func (s *ThemeStore) Delete(name string) error {
	return s.DeleteFn(name)
}
