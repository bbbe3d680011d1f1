package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/magicset/internal/games/magicset"
	"github.com/vovakirdan/magicset/internal/registry"
	"github.com/vovakirdan/magicset/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [variant]",
	Short: "Show game history",
	Long: `Show recorded games.

Without arguments, prints a summary line for every variant played.
With a variant, prints its totals and best games (or the most recent
with --recent). Puzzles are recorded together under "magicset_puzzle".

Examples:
  magicset stats
  magicset stats magicset_compact
  magicset stats magicset --recent --limit 20
  magicset stats magicset --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent games instead of the best")
	statsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of games to list")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded history of the variant")
}

func runStats(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open history database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a variant")
		}
		return printSummary(store)
	}

	variant := args[0]
	title, ok := variantTitle(variant)
	if !ok {
		return fmt.Errorf("unknown variant %q (run 'magicset list')", variant)
	}

	if flagClear {
		if err := store.ClearSessions(variant); err != nil {
			return err
		}
		logger.Info("history cleared", "variant", variant)
		return nil
	}

	return printVariant(store, variant, title)
}

func variantTitle(id string) (string, bool) {
	if id == magicset.PuzzleID {
		return "Puzzles", true
	}
	if !registry.Exists(id) {
		return "", false
	}
	for _, info := range registry.List() {
		if info.ID == id {
			return info.Title, true
		}
	}
	return id, true
}

func printSummary(store *storage.Store) error {
	all, err := store.AllTotals()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'magicset play' to record the first one!")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Printf("  %-20s  %5s  %7s  %5s  %4s  %12s  %s\n", "Variant", "Games", "Cleared", "Stuck", "Quit", "Best removed", "Last played")
	fmt.Printf("  %-20s  %5s  %7s  %5s  %4s  %12s  %s\n", "-------", "-----", "-------", "-----", "----", "------------", "-----------")
	for _, id := range ids {
		t := all[id]
		fmt.Printf("  %-20s  %5d  %7d  %5d  %4d  %12d  %s\n",
			id, t.Games, t.Cleared, t.Stuck, t.Quit, t.BestRemoved, t.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printVariant(store *storage.Store, variant, title string) error {
	totals, err := store.Totals(variant)
	if err != nil {
		return err
	}

	var sessions []storage.Session
	if flagRecent {
		sessions, err = store.RecentSessions(variant, flagLimit)
	} else {
		sessions, err = store.BestSessions(variant, flagLimit)
	}
	if err != nil {
		return err
	}

	heading := "Best Games"
	if flagRecent {
		heading = "Recent Games"
	}
	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if totals.Games == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		if variant == magicset.PuzzleID {
			fmt.Println("Play 'magicset play --layout <id>' to record the first one!")
		} else {
			fmt.Printf("Play 'magicset play %s' to record the first one!\n", variant)
		}
		return nil
	}

	fmt.Printf("  %d games: %d cleared, %d stuck, %d quit\n", totals.Games, totals.Cleared, totals.Stuck, totals.Quit)
	fmt.Printf("  %d sets, %d misses, %.1f tiles removed on average\n", totals.Matches, totals.Misses, totals.AvgRemoved)
	fmt.Println()

	fmt.Printf("  %-4s  %-8s  %-9s  %4s  %6s  %6s  %s\n", "Rank", "Result", "Removed", "Sets", "Misses", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %4s  %6s  %6s  %s\n", "----", "------", "-------", "----", "------", "----", "----")
	for i, s := range sessions {
		removed := fmt.Sprintf("%d/%d", s.Removed, s.Removed+s.Remaining)
		dur := fmt.Sprintf("%d:%02d", s.DurationSecs/60, s.DurationSecs%60)
		fmt.Printf("  %-4d  %-8s  %-9s  %4d  %6d  %6s  %s\n",
			i+1, s.Outcome, removed, s.Matches, s.Misses, dur, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d tiles removed\n", totals.BestRemoved)
	return nil
}
