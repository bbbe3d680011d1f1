package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/magicset/internal/games/magicset/layouts"
	"github.com/vovakirdan/magicset/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants and puzzles",
	Long: `Shows the registered board variants and the puzzle layouts found in the
embedded set and the user layout directory (~/.magicset/layouts).`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagLayoutDir, "layout-dir", defaultLayoutDir(), "Directory with extra puzzle layouts")
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	fmt.Println("Board variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s - %s\n", maxIDLen, g.ID, g.Title, g.Description)
	}

	all, err := layouts.All(flagLayoutDir)
	if err != nil {
		return fmt.Errorf("cannot load layouts: %w", err)
	}

	fmt.Println()
	fmt.Println("Puzzles:")
	fmt.Println()

	maxIDLen = 2
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}
	fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxIDLen, "ID", "Size", "Arity", "Name")
	fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "----")
	for _, l := range all {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-5s  %-5d  %s\n", maxIDLen, l.ID, size, l.Arity, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'magicset play <variant>' or 'magicset play --layout <id>' to play.")
	return nil
}
