package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadelab/infestation/internal/storage"
)

var flagClearProgress bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show campaign progress",
	Long: `Show every cleared level with its best move count.

Examples:
  infestation progress
  infestation progress --clear`,
	Run: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagClearProgress, "clear", false, "Delete all recorded progress")
}

func runProgress(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearProgress {
		if err := store.ClearProgress(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Progress cleared.")
		return
	}

	entries, err := store.Completed()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No levels cleared yet.")
		return
	}

	fmt.Printf("%-16s %-12s %s\n", "LEVEL", "BEST MOVES", "COMPLETED")
	for _, e := range entries {
		fmt.Printf("%-16s %-12d %s\n", e.LevelID, e.BestMoves, e.CompletedAt.Format("2006-01-02 15:04"))
	}
}
