package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/magicset/internal/config"
	"github.com/vovakirdan/magicset/internal/games/magicset"
	"github.com/vovakirdan/magicset/internal/games/magicset/layouts"
	"github.com/vovakirdan/magicset/internal/platform/tui"
	"github.com/vovakirdan/magicset/internal/registry"
)

var (
	flagConfig    string
	flagPreset    string
	flagTheme     string
	flagLayout    string
	flagLayoutDir string
	flagTrace     string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing a board. Without arguments the classic variant is played
with the board size from the configuration file.

Controls:
  Arrows/WASD/HJKL  - Move the cursor (wraps around the edges)
  Space/Enter       - Mark the tile under the cursor
  X/Backspace       - Drop all marks
  P/Esc             - Pause
  R                 - Restart (after the game ends)
  Ctrl+S            - Save a screenshot to ~/.magicset/screenshots
  Q/Ctrl+C          - Quit

Layout presets:
  classic  - 12x6 (keeps the configured size)
  compact  - 4x8
  tall     - 12x8
  wide     - 20x8

Examples:
  magicset play
  magicset play magicset_wide
  magicset play --preset compact
  magicset play --layout b01_pyramid
  magicset play --config ./magicset.yaml --trace trace.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addBoardFlags(playCmd)
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Play a puzzle layout by ID instead of a random board")
	playCmd.Flags().StringVar(&flagTrace, "trace", "", "Write every engine notification to this file")
}

// addBoardFlags registers the flags that shape a board.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML (env MAGICSET_CONFIG)")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Layout preset: classic, compact, tall, wide")
	cmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme: default, monochrome, neon, pastel")
	cmd.Flags().StringVar(&flagLayoutDir, "layout-dir", defaultLayoutDir(), "Directory with extra puzzle layouts")
}

func defaultLayoutDir() string {
	return config.UserDir("layouts")
}

func runPlay(_ *cobra.Command, args []string) error {
	if err := configure(flagConfig, flagPreset, flagTheme); err != nil {
		return err
	}

	game, err := newGame(args)
	if err != nil {
		return err
	}

	if flagTrace != "" {
		f, err := os.Create(flagTrace)
		if err != nil {
			return fmt.Errorf("cannot create trace file: %w", err)
		}
		defer f.Close()
		game.SetEventSink(magicset.NewTraceSink(f))
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	logger.Debug("starting game", "id", game.ID(), "seed", cfg.Seed, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// newGame builds the game named on the command line: a puzzle layout when
// --layout is set, otherwise a registered variant.
func newGame(args []string) (*magicset.Game, error) {
	if flagLayout != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--layout cannot be combined with variant %q", args[0])
		}
		l, err := layouts.Find(flagLayout, flagLayoutDir)
		if err != nil {
			return nil, err
		}
		return magicset.NewPuzzle(l), nil
	}

	id := "magicset"
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown variant %q, run 'magicset list' to see available boards", id)
	}

	g, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	mg, ok := g.(*magicset.Game)
	if !ok {
		return nil, fmt.Errorf("variant %q is not a Magic Set board", id)
	}
	return mg, nil
}
