// magicset is a terminal match-three puzzle: mark tiles whose colors and
// shapes are each all the same or all different, and clear the board.
//
// Usage:
//
//	magicset list              - List board variants and puzzles
//	magicset play [variant]    - Play a board
//	magicset menu              - Start menu to pick boards interactively
//	magicset sim               - Run a board headless and print it
//	magicset stats [variant]   - Show session history
//	magicset serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.magicset/history.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
//
// A .env file in the working directory is loaded first; MAGICSET_DB,
// MAGICSET_CONFIG and MAGICSET_SSH_ADDR provide flag defaults.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/magicset/internal/core"
)

const defaultDBPath = "~/.magicset/history.db"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "magicset",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "magicset",
	Short: "Magic Set - a match-three puzzle in your terminal",
	Long: `Magic Set is a terminal puzzle played on a grid of colored shapes.

Mark three tiles whose colors are all the same or all different and whose
shapes are all the same or all different. A valid set disappears and the
tiles above fall down. Clear the board before you run out of sets.

Available commands:
  list     - Show board variants and puzzles
  play     - Play a board directly
  menu     - Interactive board picker
  sim      - Run a board without a terminal UI
  stats    - View session history
  serve    - Start SSH server for remote play

Examples:
  magicset list
  magicset play
  magicset play magicset_wide
  magicset play --layout a02_twins
  magicset sim --layout a01_first_steps --script "c; r c; r c"
  magicset serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to session history database (env MAGICSET_DB)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads .env, applies environment defaults to flags the user did not set
// and configures the logger.
func setup(cmd *cobra.Command, _ []string) error {
	//nolint:errcheck // A missing .env file is fine
	godotenv.Load()

	envDefault(cmd, "db", "MAGICSET_DB")
	envDefault(cmd, "config", "MAGICSET_CONFIG")
	envDefault(cmd, "ssh", "MAGICSET_SSH_ADDR")

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

// envDefault sets flag name from an environment variable unless it was given
// on the command line or the command has no such flag.
func envDefault(cmd *cobra.Command, name, env string) {
	value, ok := os.LookupEnv(env)
	if !ok || value == "" {
		return
	}
	f := cmd.Flags().Lookup(name)
	if f == nil || f.Changed {
		return
	}
	if err := cmd.Flags().Set(name, value); err != nil {
		logger.Warn("ignoring environment variable", "name", env, "error", err)
	}
}
