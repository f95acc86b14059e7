package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/infestation/internal/platform/tui"
	"github.com/arcadelab/infestation/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level, or the campaign entry point when
no level is given.

Controls:
  WASD/Arrows  - Move (moving into an enemy kills it)
  Space        - Wait one turn
  U            - Undo last turn
  R            - Restart level
  Q/Ctrl+C     - Quit

Examples:
  infestation play
  infestation play rat-cellar
  infestation play --config ./my-config.yaml demolition`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive level picker",
	Run:   runMenu,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	reg, err := loadRegistry(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	levelID := reg.First()
	if len(args) == 1 {
		levelID = args[0]
	}
	lvl, ok := reg.Get(levelID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'infestation list' to see available levels.")
		os.Exit(1)
	}

	// Refuse terminals the board cannot fit into.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < lvl.Grid.Width()+4 || h < lvl.Grid.Height()+4 {
			fmt.Fprintf(os.Stderr, "Error: terminal %dx%d is too small for this %dx%d board\n",
				w, h, lvl.Grid.Width(), lvl.Grid.Height())
			os.Exit(1)
		}
	}

	store := openStore(cfg.Storage.Path)
	defer closeStore(store)

	if err := tui.Run(reg, store, cfg, levelID); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

func runMenu(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	reg, err := loadRegistry(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg.Storage.Path)
	defer closeStore(store)

	if err := tui.RunMenu(reg, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the progress database, returning nil when it cannot
// be opened; the game still runs, progress just isn't saved.
func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
