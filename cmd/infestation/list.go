package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available levels",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
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

	names := reg.Names()
	fmt.Printf("%-16s %-24s %s\n", "ID", "NAME", "STATUS")
	for _, id := range reg.IDs() {
		status := ""
		if store != nil {
			if done, err := store.IsCompleted(id); err == nil && done {
				if moves, ok, err := store.BestMoves(id); err == nil && ok {
					status = fmt.Sprintf("cleared in %d", moves)
				} else {
					status = "cleared"
				}
			}
		}
		fmt.Printf("%-16s %-24s %s\n", id, names[id], status)
	}
}
