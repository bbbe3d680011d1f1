package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vovakirdan/magicset/internal/config"
	"github.com/vovakirdan/magicset/internal/core"
	"github.com/vovakirdan/magicset/internal/games/magicset"
	"github.com/vovakirdan/magicset/internal/platform/tui"
	"github.com/vovakirdan/magicset/internal/storage"
)

// runtimeConfig sizes the screen from the terminal, falling back to 80×24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the history database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// configure loads the board configuration, applies a layout preset and the
// theme, and hands the result to the game package.
func configure(path, preset, theme string) error {
	cfg, err := config.LoadMagicSet(path)
	if err != nil {
		return err
	}

	if preset != "" {
		p, err := config.ParseLayoutPreset(preset)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, p)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if theme != "" {
		t, ok := tui.ThemeByName(theme)
		if !ok {
			return fmt.Errorf("unknown theme %q (available: %s)", theme, strings.Join(tui.ThemeNames(), ", "))
		}
		tui.SetTheme(t)
	}

	logger.Debug("configuration loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"arity", cfg.Rules.Arity,
		"cascade", cfg.Cascade.Mode,
	)
	magicset.Configure(cfg)
	return nil
}
