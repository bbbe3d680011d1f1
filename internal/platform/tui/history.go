package tui

import (
	"time"

	"github.com/vovakirdan/magicset/internal/core"
	"github.com/vovakirdan/magicset/internal/games/magicset"
	"github.com/vovakirdan/magicset/internal/registry"
	"github.com/vovakirdan/magicset/internal/storage"
)

// historyRecorder writes one history row per game.
type historyRecorder struct {
	store   *storage.Store
	started time.Time
	saved   bool
}

func newHistoryRecorder(store *storage.Store) *historyRecorder {
	return &historyRecorder{store: store, started: time.Now()}
}

// restart arms the recorder for a new board.
func (r *historyRecorder) restart() {
	r.started = time.Now()
	r.saved = false
}

// finish records a game that ended on the board.
func (r *historyRecorder) finish(game registry.Game, st core.GameState) {
	if r.saved || !st.GameOver {
		return
	}
	r.save(sessionRecord(game, st, time.Since(r.started)))
}

// abandon records a game the player left mid-way.
// Games where nothing was tried are not recorded.
func (r *historyRecorder) abandon(game registry.Game, st core.GameState) {
	if r.saved || st.GameOver || st.Matches+st.Misses == 0 {
		return
	}
	r.save(sessionRecord(game, st, time.Since(r.started)))
}

func (r *historyRecorder) save(rec storage.Session) {
	r.saved = true
	if r.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	r.store.SaveSession(rec)
}

// sessionRecord describes a game for the history table.
func sessionRecord(game registry.Game, st core.GameState, played time.Duration) storage.Session {
	rec := storage.Session{
		Variant:      game.ID(),
		Matches:      st.Matches,
		Misses:       st.Misses,
		Removed:      st.Removed,
		Remaining:    st.Remaining,
		DurationSecs: int(played.Round(time.Second) / time.Second),
	}

	switch {
	case st.Won:
		rec.Outcome = string(magicset.OutcomeCleared)
	case st.GameOver:
		rec.Outcome = string(magicset.OutcomeStuck)
	default:
		rec.Outcome = string(magicset.OutcomeQuit)
	}

	if mg, ok := game.(*magicset.Game); ok && mg.Session() != nil {
		rec.Seed = mg.Seed()
		rec.Width, rec.Height = mg.Session().Bounds()
		rec.Arity = mg.Session().Arity()
	}

	return rec
}
