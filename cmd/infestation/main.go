// infestation is a turn-based grid puzzle game played in the terminal.
//
// Usage:
//
//	infestation menu          - Interactive level picker
//	infestation play [level]  - Play a level (campaign start by default)
//	infestation list          - List available levels
//	infestation progress      - Show campaign progress
//	infestation serve         - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--levels <dir>   - Load levels from a directory instead of the built-in campaign
//	--db <path>      - Progress database path (default: ~/.infestation/progress.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadelab/infestation/internal/config"
	"github.com/arcadelab/infestation/internal/levels"
)

var (
	// Global flags
	flagConfig    string
	flagLevelsDir string
	flagDBPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "infestation",
	Short: "Infestation - A turn-based grid puzzle in your terminal",
	Long: `Infestation is a turn-based puzzle game: every move you make, the
rats move too. Push planks, lure enemies into voids, step on triggers,
and set off explosives to clear each board.

Available commands:
  menu      - Interactive level picker
  play      - Play a specific level directly
  list      - Show all available levels
  progress  - View campaign progress
  serve     - Start SSH server for remote play

Examples:
  infestation menu
  infestation play rat-cellar
  infestation play --levels ./my-levels custom-level
  infestation serve --ssh :2222
  infestation progress`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (default: built-in campaign)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.infestation/progress.db", "Path to progress database")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the runtime configuration from flags and files.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}

// loadRegistry loads levels from the configured directory, or the
// embedded campaign when none is set.
func loadRegistry(cfg config.Config) (*levels.Registry, error) {
	if cfg.Levels.Dir != "" {
		return levels.LoadDir(cfg.Levels.Dir)
	}
	return levels.Embedded()
}
