package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/magicset/internal/config"
	"github.com/vovakirdan/magicset/internal/games/magicset"
	"github.com/vovakirdan/magicset/internal/games/magicset/engine"
	"github.com/vovakirdan/magicset/internal/games/magicset/layouts"
)

var (
	flagScript     string
	flagScriptFile string
	flagRandom     int
	flagVerbose    bool
	flagEvents     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a board without a terminal UI",
	Long: `Run a board headless and print it as text.

Intents are given as a script: ticks separated by ';' or newlines, intents
within a tick separated by ',' or spaces. Intent names are up, down, left,
right, confirm (mark) and cancel, or their first letters (c marks, x cancels).
"wait" advances one tick without input.

Without a script, --random plays that many ticks of random input.

Board text uses one cell per tile: color letter (B, R, Y) then shape letter
(D, C, T). The cursor is shown as <..>, marked tiles as [..].

Examples:
  magicset sim --layout a01_first_steps --script "c; r c; r c"
  magicset sim --layout a02_twins --script-file twins.txt -v
  magicset sim --seed 7 --preset compact --random 500`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML (env MAGICSET_CONFIG)")
	simCmd.Flags().StringVar(&flagPreset, "preset", "", "Layout preset: classic, compact, tall, wide")
	simCmd.Flags().StringVar(&flagLayout, "layout", "", "Start from a puzzle layout by ID")
	simCmd.Flags().StringVar(&flagLayoutDir, "layout-dir", defaultLayoutDir(), "Directory with extra puzzle layouts")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Intent script")
	simCmd.Flags().StringVar(&flagScriptFile, "script-file", "", "Read the intent script from a file")
	simCmd.Flags().IntVar(&flagRandom, "random", 0, "Play this many ticks of random input")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the board after every tick")
	simCmd.Flags().BoolVar(&flagEvents, "events", false, "Log engine notifications to stderr")
}

func runSim(_ *cobra.Command, _ []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := simSession(seed)
	if err != nil {
		return err
	}

	script, err := simScript(seed)
	if err != nil {
		return err
	}

	var sink magicset.EventSink
	if flagEvents {
		sink = magicset.NewTraceSink(os.Stderr)
	}

	fmt.Println(engine.RenderASCII(session))

	for i, intents := range script {
		res := session.Step(intents)
		if sink != nil && len(res.Events) > 0 {
			sink.HandleEvents(res.Tick, res.Events)
		}
		if flagVerbose {
			fmt.Printf("\ntick %d: %v\n", res.Tick, intents)
			if res.Verdict != nil {
				fmt.Printf("check: %s\n", verdictText(*res.Verdict))
			}
			fmt.Println(engine.RenderASCII(session))
		}
		if session.Cleared() || session.Exhausted() {
			logger.Debug("board finished early", "tick", i+1, "of", len(script))
			break
		}
	}

	// Let pending gravity finish so the final board is settled
	for !session.IsSettled() {
		session.Step(nil)
	}

	if !flagVerbose && len(script) > 0 {
		fmt.Println()
		fmt.Println(engine.RenderASCII(session))
	}

	stats := session.Stats()
	fmt.Println()
	fmt.Printf("Seed:    %d\n", seed)
	fmt.Printf("Ticks:   %d\n", session.Tick())
	fmt.Printf("Sets:    %d\n", stats.Matches)
	fmt.Printf("Misses:  %d\n", stats.Misses)
	fmt.Printf("Removed: %d\n", stats.Removed)
	fmt.Printf("Tiles:   %d\n", session.TileCount())
	fmt.Printf("Result:  %s\n", simOutcome(session))
	return nil
}

// simSession builds the board: a puzzle layout or a random board from config.
func simSession(seed int64) (*engine.Session, error) {
	cfg, err := config.LoadMagicSet(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagPreset != "" {
		p, err := config.ParseLayoutPreset(flagPreset)
		if err != nil {
			return nil, err
		}
		config.ApplyPreset(&cfg, p)
	}

	opts, err := cfg.Options(seed)
	if err != nil {
		return nil, err
	}

	if flagLayout != "" {
		l, err := layouts.Find(flagLayout, flagLayoutDir)
		if err != nil {
			return nil, err
		}
		return l.NewSession(opts)
	}
	return engine.NewSession(opts), nil
}

// simScript returns the intents to play, one slice per tick.
func simScript(seed int64) ([][]engine.Intent, error) {
	switch {
	case flagScript != "" && flagScriptFile != "":
		return nil, fmt.Errorf("--script and --script-file are mutually exclusive")
	case flagScriptFile != "":
		data, err := os.ReadFile(flagScriptFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read script: %w", err)
		}
		return engine.ParseScript(string(data))
	case flagScript != "":
		return engine.ParseScript(flagScript)
	case flagRandom > 0:
		return randomScript(rand.New(rand.NewSource(seed)), flagRandom), nil
	}
	return nil, nil
}

// randomScript produces n ticks of one random intent each. Marks are
// weighted up so random play actually checks sets.
func randomScript(rng *rand.Rand, n int) [][]engine.Intent {
	choices := []engine.Intent{
		engine.IntentMoveUp,
		engine.IntentMoveDown,
		engine.IntentMoveLeft,
		engine.IntentMoveRight,
		engine.IntentConfirm,
		engine.IntentConfirm,
		engine.IntentConfirm,
	}
	script := make([][]engine.Intent, n)
	for i := range script {
		script[i] = []engine.Intent{choices[rng.Intn(len(choices))]}
	}
	return script
}

func verdictText(v engine.Verdict) string {
	if v.Match() {
		return "set"
	}
	switch {
	case !v.ColorMatch && !v.ShapeMatch:
		return "not a set (colors and shapes)"
	case !v.ColorMatch:
		return "not a set (colors)"
	default:
		return "not a set (shapes)"
	}
}

func simOutcome(s *engine.Session) string {
	switch {
	case s.Cleared():
		return string(magicset.OutcomeCleared)
	case s.Exhausted():
		return string(magicset.OutcomeStuck)
	default:
		return "in progress"
	}
}
