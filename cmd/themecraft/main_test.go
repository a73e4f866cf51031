package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/themecraft"
	main "github.com/fwojciec/themecraft/cmd/themecraft"
	"github.com/fwojciec/themecraft/jsonl"
	"github.com/fwojciec/themecraft/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedTheme(name, primary string) themecraft.Theme {
	th := themecraft.DefaultTheme()
	th.Name = name
	th.BaseColors["primary"] = primary
	th.Date = time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	return th
}

// memStore is a mock.ThemeStore backed by a map.
func memStore(themes ...themecraft.Theme) (*mock.ThemeStore, map[string]themecraft.Theme) {
	var mu sync.Mutex
	saved := make(map[string]themecraft.Theme)
	for _, th := range themes {
		saved[th.Name] = th
	}
	store := &mock.ThemeStore{
		SaveFn: func(th themecraft.Theme) error {
			mu.Lock()
			defer mu.Unlock()
			saved[th.Name] = th
			return nil
		},
		LoadFn: func(name string) (*themecraft.Theme, error) {
			mu.Lock()
			defer mu.Unlock()
			th, ok := saved[name]
			if !ok {
				return nil, themecraft.ErrThemeNotFound
			}
			return &th, nil
		},
		ListFn: func() ([]themecraft.Theme, error) {
			return themes, nil
		},
		DeleteFn: func(name string) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := saved[name]; !ok {
				return themecraft.ErrThemeNotFound
			}
			delete(saved, name)
			return nil
		},
	}
	return store, saved
}

func TestApp_Edit(t *testing.T) {
	t.Parallel()

	t.Run("opens a saved theme", func(t *testing.T) {
		t.Parallel()

		store, _ := memStore(namedTheme("dusk", "#112233"))
		var gotName string
		var gotSession *themecraft.Session
		app := &main.App{
			Store: store,
			NewEditor: func(name string) themecraft.Editor {
				gotName = name
				return &mock.Editor{
					EditFn: func(ctx context.Context, s *themecraft.Session) error {
						gotSession = s
						return nil
					},
				}
			},
		}

		err := app.Edit(context.Background(), "dusk")

		require.NoError(t, err)
		assert.Equal(t, "dusk", gotName)
		assert.Equal(t, "112233", gotSession.Color(themecraft.BaseSlot("primary")).Hex())
	})

	t.Run("unknown names start from the defaults", func(t *testing.T) {
		t.Parallel()

		store, _ := memStore()
		var gotSession *themecraft.Session
		app := &main.App{
			Store: store,
			NewEditor: func(string) themecraft.Editor {
				return &mock.Editor{
					EditFn: func(ctx context.Context, s *themecraft.Session) error {
						gotSession = s
						return nil
					},
				}
			},
		}

		require.NoError(t, app.Edit(context.Background(), "new"))
		assert.Equal(t, "48A971", gotSession.Color(themecraft.BaseSlot("primary")).Hex())
	})

	t.Run("returns store and editor errors", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("disk gone")
		app := &main.App{
			Store: &mock.ThemeStore{
				LoadFn: func(string) (*themecraft.Theme, error) { return nil, storeErr },
			},
		}
		assert.ErrorIs(t, app.Edit(context.Background(), "dusk"), storeErr)

		editErr := errors.New("terminal error")
		app = &main.App{
			NewEditor: func(string) themecraft.Editor {
				return &mock.Editor{
					EditFn: func(context.Context, *themecraft.Session) error { return editErr },
				}
			},
		}
		assert.ErrorIs(t, app.Edit(context.Background(), ""), editErr)
	})
}

func TestApp_List(t *testing.T) {
	t.Parallel()

	t.Run("prints a row per theme", func(t *testing.T) {
		t.Parallel()

		store, _ := memStore(namedTheme("dawn", "#FFAA00"), namedTheme("night", "#112233"))
		var out bytes.Buffer
		app := &main.App{Store: store, Output: &out}

		require.NoError(t, app.List())

		assert.Contains(t, out.String(), "NAME")
		assert.Contains(t, out.String(), "dawn")
		assert.Contains(t, out.String(), "#FFAA00")
		assert.Contains(t, out.String(), "night")
	})

	t.Run("reports an empty store", func(t *testing.T) {
		t.Parallel()

		store, _ := memStore()
		var out bytes.Buffer
		app := &main.App{Store: store, Output: &out}

		require.NoError(t, app.List())

		assert.Equal(t, "no themes saved\n", out.String())
	})
}

func TestApp_Show(t *testing.T) {
	t.Parallel()

	store, _ := memStore(namedTheme("dawn", "#FFAA00"))
	var out bytes.Buffer
	app := &main.App{Store: store, Output: &out}

	require.NoError(t, app.Show("dawn"))

	assert.Contains(t, out.String(), "base/primary")
	assert.Contains(t, out.String(), "#FFAA00")
	assert.Contains(t, out.String(), "job/blue")
	assert.Contains(t, out.String(), "(selected)")

	assert.ErrorIs(t, app.Show("missing"), themecraft.ErrThemeNotFound)
}

func TestApp_Delete(t *testing.T) {
	t.Parallel()

	store, saved := memStore(namedTheme("dawn", "#FFAA00"))
	var out bytes.Buffer
	app := &main.App{Store: store, Output: &out}

	require.NoError(t, app.Delete("dawn"))

	assert.NotContains(t, saved, "dawn")
	assert.Contains(t, out.String(), `deleted theme "dawn"`)
	assert.ErrorIs(t, app.Delete("dawn"), themecraft.ErrThemeNotFound)
}

func TestApp_Harmony(t *testing.T) {
	t.Parallel()

	t.Run("prints one scheme", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		app := &main.App{Output: &out}

		require.NoError(t, app.Harmony("#48A971", "triadic"))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		assert.Equal(t, "triadic", lines[0])
		assert.Contains(t, out.String(), "hsl(145, 40%, 47%)")
	})

	t.Run("prints every scheme", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		app := &main.App{Output: &out}

		require.NoError(t, app.Harmony("48A971", "all"))

		for _, s := range themecraft.Schemes() {
			assert.Contains(t, out.String(), s.String()+"\n")
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		t.Parallel()

		app := &main.App{Output: &bytes.Buffer{}}

		assert.ErrorIs(t, app.Harmony("#48A9", "triadic"), themecraft.ErrInvalidHex)
		assert.ErrorIs(t, app.Harmony("#48A971", "pentadic"), themecraft.ErrUnknownScheme)
	})
}

func TestApp_Copy(t *testing.T) {
	t.Parallel()

	store, _ := memStore(namedTheme("dawn", "#FFAA00"))
	var copied string
	var out bytes.Buffer
	app := &main.App{
		Store:  store,
		Output: &out,
		Clipboard: &mock.Clipboard{
			CopyFn: func(text string) error {
				copied = text
				return nil
			},
		},
	}

	require.NoError(t, app.Copy("dawn", "primary"))
	assert.Equal(t, "#FFAA00", copied)

	require.NoError(t, app.Copy("dawn", "job/blue"))
	assert.Equal(t, "#89B4FA", copied)

	assert.ErrorIs(t, app.Copy("dawn", "mauve"), themecraft.ErrUnknownSlot)
}

func TestApp_ExportImport(t *testing.T) {
	t.Parallel()

	t.Run("exports every theme", func(t *testing.T) {
		t.Parallel()

		store, _ := memStore(namedTheme("dawn", "#FFAA00"), namedTheme("night", "#112233"))
		path := filepath.Join(t.TempDir(), "out.jsonl")
		var out bytes.Buffer
		app := &main.App{Store: store, Output: &out}

		require.NoError(t, app.Export(path))

		themes, err := jsonl.Load(path)
		require.NoError(t, err)
		require.Len(t, themes, 2)
		assert.Equal(t, "dawn", themes[0].Name)
		assert.Contains(t, out.String(), "exported 2 themes")
	})

	t.Run("exports named themes", func(t *testing.T) {
		t.Parallel()

		store, _ := memStore(namedTheme("dawn", "#FFAA00"), namedTheme("night", "#112233"))
		path := filepath.Join(t.TempDir(), "out.jsonl")
		app := &main.App{Store: store, Output: &bytes.Buffer{}}

		require.NoError(t, app.Export(path, "night"))

		themes, err := jsonl.Load(path)
		require.NoError(t, err)
		require.Len(t, themes, 1)
		assert.Equal(t, "night", themes[0].Name)

		assert.ErrorIs(t, app.Export(path, "missing"), themecraft.ErrThemeNotFound)
	})

	t.Run("imports files in argument order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := filepath.Join(dir, "first.jsonl")
		second := filepath.Join(dir, "second.jsonl")
		require.NoError(t, jsonl.Save(first, []themecraft.Theme{
			namedTheme("dawn", "#111111"),
			namedTheme("night", "#222222"),
		}))
		require.NoError(t, jsonl.Save(second, []themecraft.Theme{
			namedTheme("dawn", "#333333"),
		}))

		store, saved := memStore()
		var out bytes.Buffer
		app := &main.App{Store: store, Output: &out, Workers: 2}

		require.NoError(t, app.Import(context.Background(), first, second))

		assert.Equal(t, "#333333", saved["dawn"].BaseColors["primary"], "later files win")
		assert.Equal(t, "#222222", saved["night"].BaseColors["primary"])
		assert.Contains(t, out.String(), "imported 3 themes: dawn, night, dawn")
	})

	t.Run("saves nothing when a file fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		good := filepath.Join(dir, "good.jsonl")
		bad := filepath.Join(dir, "bad.jsonl")
		require.NoError(t, jsonl.Save(good, []themecraft.Theme{namedTheme("dawn", "#111111")}))
		require.NoError(t, os.WriteFile(bad, []byte("{not json\n"), 0o644))

		store, saved := memStore()
		app := &main.App{Store: store, Output: &bytes.Buffer{}}

		err := app.Import(context.Background(), good, bad)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.jsonl")
		assert.Empty(t, saved)
	})

	t.Run("saves nothing when a theme is invalid", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "mixed.jsonl")
		require.NoError(t, jsonl.Save(path, []themecraft.Theme{
			namedTheme("dawn", "#111111"),
			namedTheme("broken", "#12"),
		}))

		store, saved := memStore()
		app := &main.App{Store: store, Output: &bytes.Buffer{}}

		err := app.Import(context.Background(), path)

		require.ErrorIs(t, err, themecraft.ErrInvalidHex)
		assert.Contains(t, err.Error(), "broken")
		assert.Empty(t, saved)
	})
}

func TestRootCmd(t *testing.T) {
	t.Parallel()

	t.Run("runs subcommands against the given app", func(t *testing.T) {
		t.Parallel()

		store, _ := memStore(namedTheme("dawn", "#FFAA00"))
		var out bytes.Buffer
		app := &main.App{Store: store, Output: &out}
		cmd := main.NewRootCmd(app, &out)
		cmd.SetArgs([]string{"show", "dawn"})

		require.NoError(t, cmd.Execute())

		assert.Contains(t, out.String(), "#FFAA00")
	})

	t.Run("harmony scheme flag", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		app := &main.App{Output: &out}
		cmd := main.NewRootCmd(app, &out)
		cmd.SetArgs([]string{"harmony", "48A971", "--scheme", "monochromatic"})

		require.NoError(t, cmd.Execute())

		assert.True(t, strings.HasPrefix(out.String(), "monochromatic\n"))
	})

	t.Run("rejects wrong argument counts", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		cmd := main.NewRootCmd(&main.App{Output: &out}, &out)
		cmd.SetArgs([]string{"copy", "dawn"})

		assert.Error(t, cmd.Execute())
	})
}

// Not parallel: changes the environment and working directory.
func TestRootCmd_BuildsStoreFromFlags(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("THEMECRAFT_STORE", "")
	t.Setenv("THEMECRAFT_DATA_DIR", "")
	t.Setenv("THEMECRAFT_CHROME", "")
	t.Setenv("THEMECRAFT_IMPORT_WORKERS", "")

	var out bytes.Buffer
	cmd := main.NewRootCmd(nil, &out)
	cmd.SetArgs([]string{"list", "--store", "jsonl", "--data-dir", dir})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "no themes saved\n", out.String())
}
