package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/themecraft"
	"github.com/fwojciec/themecraft/jsonl"
	chrome "github.com/fwojciec/themecraft/lipgloss"
	"golang.org/x/sync/errgroup"
)

// DefaultImportWorkers is used when App.Workers is unset.
const DefaultImportWorkers = 4

// App encapsulates the application logic for testing.
type App struct {
	Store     themecraft.ThemeStore
	Clipboard themecraft.Clipboard
	// NewEditor returns the editor for a session on the named theme.
	NewEditor func(themeName string) themecraft.Editor
	Output    io.Writer
	Renderer  *lipgloss.Renderer // Defaults to a renderer for Output
	Workers   int                // Concurrent file reads during Import
}

func (a *App) renderer() *lipgloss.Renderer {
	if a.Renderer != nil {
		return a.Renderer
	}
	return lipgloss.NewRenderer(a.Output)
}

// Edit opens the named theme in the editor. An unknown name starts a new
// theme from the defaults; an empty name edits the defaults unnamed.
func (a *App) Edit(ctx context.Context, name string) error {
	theme := themecraft.DefaultTheme()
	if name != "" {
		stored, err := a.Store.Load(name)
		switch {
		case errors.Is(err, themecraft.ErrThemeNotFound):
			theme.Name = name
		case err != nil:
			return err
		default:
			theme = *stored
		}
	}
	session := themecraft.NewSession(theme)
	return a.NewEditor(name).Edit(ctx, session)
}

// List prints a table of saved themes.
func (a *App) List() error {
	themes, err := a.Store.List()
	if err != nil {
		return err
	}
	if len(themes) == 0 {
		fmt.Fprintln(a.Output, "no themes saved")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "PRIMARY", "JOB COLOR", "SAVED")
	for _, th := range themes {
		saved := ""
		if !th.Date.IsZero() {
			saved = th.Date.Local().Format("2006-01-02 15:04")
		}
		t.Row(th.Name, th.BaseColors["primary"], th.SelectedJobColor, saved)
	}
	fmt.Fprintln(a.Output, t.Render())
	return nil
}

// Show prints every slot of the named theme with a swatch.
func (a *App) Show(name string) error {
	stored, err := a.Store.Load(name)
	if err != nil {
		return err
	}
	session := themecraft.NewSession(*stored)
	r := a.renderer()

	fmt.Fprintln(a.Output, stored.Name)
	for _, slot := range themecraft.Slots() {
		c := session.Color(slot)
		marker := ""
		if slot.Kind == themecraft.KindJob && slot.Name == session.SelectedJobColor() {
			marker = " (selected)"
		}
		fmt.Fprintf(a.Output, "  %-16s %s %s%s\n", slot, c, chrome.Swatch(c, "", false, r), marker)
	}
	return nil
}

// Delete removes the named theme.
func (a *App) Delete(name string) error {
	if err := a.Store.Delete(name); err != nil {
		return err
	}
	fmt.Fprintf(a.Output, "deleted theme %q\n", name)
	return nil
}

// Harmony prints the palette scheme derives from hex.
func (a *App) Harmony(hex, scheme string) error {
	base, err := themecraft.ParseHex(hex)
	if err != nil {
		return err
	}

	schemes := themecraft.Schemes()
	if scheme != "all" {
		s, err := themecraft.ParseScheme(scheme)
		if err != nil {
			return err
		}
		schemes = []themecraft.Scheme{s}
	}

	r := a.renderer()
	for _, s := range schemes {
		palette := themecraft.Harmony(base, s)
		fmt.Fprintf(a.Output, "%s\n", s)
		fmt.Fprintln(a.Output, chrome.SwatchStrip(palette, -1, r))
		for _, sw := range palette {
			fmt.Fprintf(a.Output, "  %s  hsl(%d, %d%%, %d%%)\n", sw.Color, sw.HSL.H, sw.HSL.S, sw.HSL.L)
		}
	}
	return nil
}

// Copy puts one slot of the named theme on the clipboard.
func (a *App) Copy(name, slotName string) error {
	slot, err := themecraft.ParseSlot(slotName)
	if err != nil {
		return err
	}
	stored, err := a.Store.Load(name)
	if err != nil {
		return err
	}
	hex := themecraft.NewSession(*stored).Color(slot).String()
	if err := a.Clipboard.Copy(hex); err != nil {
		return err
	}
	fmt.Fprintf(a.Output, "copied %s\n", hex)
	return nil
}

// Export writes the named themes, or every theme, to a JSONL file.
func (a *App) Export(path string, names ...string) error {
	var themes []themecraft.Theme
	if len(names) == 0 {
		all, err := a.Store.List()
		if err != nil {
			return err
		}
		themes = all
	} else {
		for _, name := range names {
			th, err := a.Store.Load(name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			themes = append(themes, *th)
		}
	}

	if err := jsonl.Save(path, themes); err != nil {
		return err
	}
	fmt.Fprintf(a.Output, "exported %d %s to %s\n", len(themes), plural(len(themes)), path)
	return nil
}

// Import reads JSONL theme files concurrently, then saves their themes in
// argument order so later files win on duplicate names.
func (a *App) Import(ctx context.Context, paths ...string) error {
	workers := a.Workers
	if workers <= 0 {
		workers = DefaultImportWorkers
	}

	results := make([][]themecraft.Theme, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			themes, err := jsonl.Load(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = themes
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Nothing is saved unless every theme is valid.
	for i, themes := range results {
		for _, th := range themes {
			if err := th.Validate(); err != nil {
				return fmt.Errorf("%s: theme %q: %w", paths[i], th.Name, err)
			}
		}
	}

	var count int
	var names []string
	for _, themes := range results {
		for _, th := range themes {
			if err := a.Store.Save(th); err != nil {
				return fmt.Errorf("save %q: %w", th.Name, err)
			}
			count++
			names = append(names, th.Name)
		}
	}
	fmt.Fprintf(a.Output, "imported %d %s", count, plural(count))
	if count > 0 {
		fmt.Fprintf(a.Output, ": %s", strings.Join(names, ", "))
	}
	fmt.Fprintln(a.Output)
	return nil
}

func plural(n int) string {
	if n == 1 {
		return "theme"
	}
	return "themes"
}
