package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/themecraft"
	"github.com/fwojciec/themecraft/bolt"
	"github.com/fwojciec/themecraft/bubbletea"
	"github.com/fwojciec/themecraft/clipboard"
	"github.com/fwojciec/themecraft/config"
	"github.com/fwojciec/themecraft/jsonl"
	chrome "github.com/fwojciec/themecraft/lipgloss"
	"github.com/spf13/cobra"
)

func main() {
	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd(nil, os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootFlags override the environment configuration when set.
type rootFlags struct {
	backend string
	dataDir string
	chrome  string
	debug   string
	workers int
}

// NewRootCmd builds the command tree. When app is nil it is assembled from
// the configuration before each command runs.
func NewRootCmd(app *App, out io.Writer) *cobra.Command {
	var flags rootFlags
	var closeStore func() error

	root := &cobra.Command{
		Use:   "themecraft",
		Short: "Create and edit color themes in the terminal",
		Long: `themecraft edits named color themes: six base colors and eight job colors.

Each color is adjusted in HSL with per-color undo history, and harmony
schemes derive palettes from the color being edited.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app != nil {
				return nil
			}
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			built, closer, err := newApp(cfg, out)
			if err != nil {
				return err
			}
			app, closeStore = built, closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeStore == nil {
				return nil
			}
			return closeStore()
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.backend, "store", "", "theme store backend: bolt or jsonl (env THEMECRAFT_STORE)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory holding the theme store (env THEMECRAFT_DATA_DIR)")
	pf.StringVar(&flags.chrome, "chrome", "", "editor colors: auto, dark or light (env THEMECRAFT_CHROME)")
	pf.StringVar(&flags.debug, "debug-log", "", "write editor events to this file (env THEMECRAFT_DEBUG_LOG)")
	pf.IntVar(&flags.workers, "workers", 0, "files read concurrently by import (env THEMECRAFT_IMPORT_WORKERS)")

	// Commands read app at run time, after PersistentPreRunE has set it.
	current := func() *App { return app }

	root.AddCommand(
		newEditCmd(current),
		newListCmd(current),
		newShowCmd(current),
		newDeleteCmd(current),
		newHarmonyCmd(current),
		newCopyCmd(current),
		newExportCmd(current),
		newImportCmd(current),
	)
	return root
}

// loadConfig reads the environment, then applies flags the user set.
func loadConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	pf := cmd.Flags()
	if pf.Changed("store") {
		cfg.Backend = flags.backend
	}
	if pf.Changed("data-dir") {
		cfg.DataDir = flags.dataDir
	}
	if pf.Changed("chrome") {
		cfg.Chrome = flags.chrome
	}
	if pf.Changed("debug-log") {
		cfg.DebugLog = flags.debug
	}
	if pf.Changed("workers") {
		cfg.ImportWorkers = flags.workers
	}
	return cfg, cfg.Validate()
}

// newApp wires the configured store, the system clipboard and the editor.
func newApp(cfg config.Config, out io.Writer) (*App, func() error, error) {
	var store themecraft.ThemeStore
	closer := func() error { return nil }

	switch cfg.Backend {
	case config.BackendJSONL:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data directory: %w", err)
		}
		store = jsonl.NewStore(cfg.StorePath())
	default:
		db, err := bolt.Open(cfg.StorePath())
		if err != nil {
			return nil, nil, err
		}
		store, closer = db, db.Close
	}

	cb := clipboard.NewSystem()
	app := &App{
		Store:     store,
		Clipboard: cb,
		Output:    out,
		Workers:   cfg.ImportWorkers,
		NewEditor: func(themeName string) themecraft.Editor {
			return bubbletea.NewEditor(
				bubbletea.WithDebugLog(cfg.DebugLog),
				bubbletea.WithModelOptions(
					bubbletea.WithThemeStore(store),
					bubbletea.WithClipboard(cb),
					bubbletea.WithChrome(chrome.ChromeFor(cfg.Chrome)),
					bubbletea.WithThemeName(themeName),
				),
			)
		},
	}
	return app, closer, nil
}

func newEditCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [theme]",
		Short: "Edit a theme in the terminal editor",
		Long: `Open the named theme in the editor. An unknown name starts a new theme
from the default colors; press w in the editor to save it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return app().Edit(cmd.Context(), name)
		},
	}
}

func newListCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved themes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().List()
		},
	}
}

func newShowCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <theme>",
		Short: "Print every color of a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Show(args[0])
		},
	}
}

func newDeleteCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <theme>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved theme",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Delete(args[0])
		},
	}
}

func newHarmonyCmd(app func() *App) *cobra.Command {
	var scheme string
	cmd := &cobra.Command{
		Use:   "harmony <hex>",
		Short: "Print the palette a harmony scheme derives from a color",
		Long: `Print the palette a harmony scheme derives from a color.

Examples:
  themecraft harmony 48A971                  # complementary palette
  themecraft harmony '#48A971' -s triadic    # triadic palette
  themecraft harmony 48A971 -s all           # every scheme`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Harmony(args[0], scheme)
		},
	}
	cmd.Flags().StringVarP(&scheme, "scheme", "s", themecraft.Complementary.String(), "harmony scheme, or all")
	return cmd
}

func newCopyCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <theme> <slot>",
		Short: "Copy one color of a theme to the clipboard",
		Long: `Copy one color of a theme to the clipboard as #RRGGBB.

The slot is a role name such as primary or teal, or kind/role such as job/red.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Copy(args[0], args[1])
		},
	}
}

func newExportCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file> [theme...]",
		Short: "Write themes to a JSONL file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Export(args[0], args[1:]...)
		},
	}
}

func newImportCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Save the themes from JSONL files",
		Long: `Save the themes from JSONL files. Themes replace saved themes with the
same name; when files repeat a name, the last file wins.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Import(cmd.Context(), args...)
		},
	}
}
