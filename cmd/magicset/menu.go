package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/magicset/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

The menu lists the board variants followed by the puzzle layouts. After a
game ends, press Esc to return to the menu. Tab opens the session history.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Session history
  Q            - Quit

Examples:
  magicset menu
  magicset menu --theme neon
  magicset menu --db ./history.db`,
	RunE: runMenu,
}

func init() {
	addBoardFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := configure(flagConfig, flagPreset, flagTheme); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg, flagLayoutDir)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsStats {
			goBack, err := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := menuResult.Item.NewGame()
		if err != nil {
			logger.Error("cannot create game", "id", menuResult.Item.GameID, "error", err)
			continue
		}

		// New seed for each game unless one was fixed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("error running game", "error", err)
		}
	}
}
