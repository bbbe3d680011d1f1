// Package magicset adapts the Magic Set rule engine to the platform's Game
// interface: it maps input frames to intents, steps the session once per tick,
// detects the end of a game and draws the board.
package magicset

import (
	"sync"

	"github.com/vovakirdan/magicset/internal/config"
	"github.com/vovakirdan/magicset/internal/core"
	"github.com/vovakirdan/magicset/internal/games/magicset/engine"
	"github.com/vovakirdan/magicset/internal/games/magicset/layouts"
	"github.com/vovakirdan/magicset/internal/registry"
)

// Outcome describes how a game ended.
type Outcome string

const (
	OutcomePlaying Outcome = ""
	OutcomeCleared Outcome = "cleared" // Every tile removed
	OutcomeStuck   Outcome = "stuck"   // Settled board with no set left
	OutcomeQuit    Outcome = "quit"    // Player left mid-game
)

// PuzzleID is the game ID shared by every puzzle layout.
const PuzzleID = "magicset_puzzle"

// Variant is a registered board size.
type Variant struct {
	ID          string
	Title       string
	Description string
	Preset      config.LayoutPreset
}

// Variants returns the registered board sizes. The classic variant keeps the
// configured board size; the others force their preset.
func Variants() []Variant {
	return []Variant{
		{ID: "magicset", Title: "Magic Set", Description: "Classic 12×6 board", Preset: config.LayoutClassic},
		{ID: "magicset_compact", Title: "Magic Set (Compact)", Description: "Narrow 4×8 board", Preset: config.LayoutCompact},
		{ID: "magicset_tall", Title: "Magic Set (Tall)", Description: "12×8 board", Preset: config.LayoutTall},
		{ID: "magicset_wide", Title: "Magic Set (Wide)", Description: "20×8 board", Preset: config.LayoutWide},
	}
}

// EventSink receives the notifications raised during each tick.
type EventSink interface {
	HandleEvents(tick uint64, events []engine.Event)
}

var (
	cfgMu      sync.RWMutex
	defaultCfg = config.DefaultMagicSetConfig()
)

// Configure sets the configuration used by games created afterwards.
func Configure(cfg config.MagicSetConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	defaultCfg = cfg
}

func currentConfig() config.MagicSetConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return defaultCfg
}

func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// removal is a cleared cell still shown as a spark.
type removal struct {
	pos engine.Coord
	ttl int
}

// Game implements registry.Game for one Magic Set board.
type Game struct {
	variant Variant
	cfg     config.MagicSetConfig
	layout  *layouts.Layout
	sink    EventSink

	session *engine.Session
	seed    int64
	err     error
	tick    uint64

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Feedback
	verdict      *engine.Verdict
	verdictTicks int
	sparks       []removal

	paused   bool
	tooSmall bool
	outcome  Outcome
}

// New creates a game for a registered variant with the current configuration.
func New(v Variant) *Game {
	cfg := currentConfig()
	if v.Preset != config.LayoutClassic {
		config.ApplyPreset(&cfg, v.Preset)
	}
	return &Game{variant: v, cfg: cfg}
}

// NewPuzzle creates a game that starts from a fixed layout instead of a random board.
func NewPuzzle(l layouts.Layout) *Game {
	return &Game{
		variant: Variant{
			ID:          PuzzleID,
			Title:       "Magic Set: " + l.Name,
			Description: l.Description,
		},
		cfg:    currentConfig(),
		layout: &l,
	}
}

// SetEventSink attaches a receiver for engine notifications. nil detaches it.
func (g *Game) SetEventSink(s EventSink) {
	g.sink = s
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description returns the one-line menu description.
func (g *Game) Description() string {
	return g.variant.Description
}

// Reset builds a new board seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.verdict = nil
	g.verdictTicks = 0
	g.sparks = nil
	g.paused = false
	g.outcome = OutcomePlaying
	g.session, g.err = g.newSession(cfg.Seed)

	g.checkScreenSize()
}

func (g *Game) newSession(seed int64) (*engine.Session, error) {
	if g.layout != nil {
		opts := engine.Options{Seed: seed, DragSelect: g.cfg.Input.DragSelect}
		return g.layout.NewSession(opts)
	}
	opts, err := g.cfg.Options(seed)
	if err != nil {
		return nil, err
	}
	return engine.NewSession(opts), nil
}

// Resize follows a terminal resize and keeps the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the board and the HUD.
func (g *Game) checkScreenSize() {
	if g.session == nil {
		g.tooSmall = false
		return
	}
	w, h := g.session.Bounds()
	boardW, boardH := boardSize(w, h)
	g.tooSmall = g.screenW < boardW || g.screenH < boardH+hudHeight+footerHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.session == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.outcome != OutcomePlaying {
		return core.StepResult{State: g.State()}
	}

	g.ageFeedback()

	res := g.session.Step(intents(in))
	if g.sink != nil && len(res.Events) > 0 {
		g.sink.HandleEvents(res.Tick, res.Events)
	}
	if res.Verdict != nil {
		v := *res.Verdict
		g.verdict = &v
		g.verdictTicks = g.tickRate
	}
	for _, e := range res.Events {
		if e.Kind == engine.EventTileRemoved {
			g.sparks = append(g.sparks, removal{pos: e.Pos, ttl: g.tickRate / 3})
		}
	}

	switch {
	case g.session.Cleared():
		g.outcome = OutcomeCleared
	case g.session.Exhausted():
		g.outcome = OutcomeStuck
	}

	return core.StepResult{State: g.State()}
}

// ageFeedback counts down the verdict banner and removal sparks.
func (g *Game) ageFeedback() {
	if g.verdictTicks > 0 {
		g.verdictTicks--
	}
	kept := g.sparks[:0]
	for _, s := range g.sparks {
		s.ttl--
		if s.ttl > 0 {
			kept = append(kept, s)
		}
	}
	g.sparks = kept
}

// intents translates platform actions into engine intents, in arrival order.
func intents(in core.InputFrame) []engine.Intent {
	var out []engine.Intent
	for _, a := range in.Actions() {
		switch a {
		case core.ActionUp:
			out = append(out, engine.IntentMoveUp)
		case core.ActionDown:
			out = append(out, engine.IntentMoveDown)
		case core.ActionLeft:
			out = append(out, engine.IntentMoveLeft)
		case core.ActionRight:
			out = append(out, engine.IntentMoveRight)
		case core.ActionConfirm:
			out = append(out, engine.IntentConfirm)
		case core.ActionBack:
			out = append(out, engine.IntentCancel)
		}
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	stats := g.session.Stats()
	return core.GameState{
		Removed:   stats.Removed,
		Remaining: g.session.TileCount(),
		Matches:   stats.Matches,
		Misses:    stats.Misses,
		GameOver:  g.outcome != OutcomePlaying,
		Won:       g.outcome == OutcomeCleared,
		Paused:    g.paused || g.tooSmall,
	}
}

// Outcome returns how the game ended, or OutcomePlaying.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Session returns the running session, nil if the configuration was invalid.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Err returns the error that prevented the board from being built.
func (g *Game) Err() error {
	return g.err
}

// Seed returns the seed the current board was built from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | Space/Enter: Mark | X: Drop marks | P: Pause | R: Restart | Q: Quit"
}
