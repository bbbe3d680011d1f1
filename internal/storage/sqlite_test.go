package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSession(Session{Variant: "magicset", Outcome: "stuck"}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions("magicset", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("Expected 1 session after reopen, got %d", len(sessions))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rec := Session{
		Variant:      "magicset",
		Seed:         42,
		Width:        12,
		Height:       6,
		Arity:        3,
		Matches:      5,
		Misses:       2,
		Removed:      15,
		Remaining:    57,
		Outcome:      "stuck",
		DurationSecs: 93,
	}
	id, err := store.SaveSession(rec)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive id, got %d", id)
	}

	sessions, err := store.RecentSessions("magicset", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}

	got := sessions[0]
	rec.ID = id
	rec.CreatedAt = got.CreatedAt
	if got != rec {
		t.Errorf("got %+v, expected %+v", got, rec)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreSaveRequiresVariant(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSession(Session{Outcome: "quit"}); err == nil {
		t.Error("SaveSession() without variant should fail")
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		if _, err := store.SaveSession(Session{Variant: "magicset", Seed: int64(i), Outcome: "stuck"}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	if _, err := store.SaveSession(Session{Variant: "magicset_wide", Seed: 99, Outcome: "quit"}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	recent, err := store.RecentSessions("magicset", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(recent))
	}
	// Newest first
	for i, want := range []int64{4, 3, 2} {
		if recent[i].Seed != want {
			t.Errorf("recent[%d].Seed = %d, expected %d", i, recent[i].Seed, want)
		}
	}

	all, err := store.RecentSessions("", 0)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 sessions across variants, got %d", len(all))
	}
	if all[0].Variant != "magicset_wide" {
		t.Errorf("Expected newest session first, got %s", all[0].Variant)
	}
}

func TestStoreBestSessions(t *testing.T) {
	store := openTestStore(t)

	entries := []Session{
		{Variant: "magicset", Seed: 1, Removed: 30, Misses: 4, Outcome: "stuck"},
		{Variant: "magicset", Seed: 2, Removed: 72, Misses: 9, Outcome: "cleared"},
		{Variant: "magicset", Seed: 3, Removed: 30, Misses: 1, Outcome: "stuck"},
		{Variant: "magicset", Seed: 4, Removed: 6, Outcome: "quit"},
		{Variant: "magicset_tall", Seed: 5, Removed: 96, Outcome: "cleared"},
	}
	for _, e := range entries {
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	best, err := store.BestSessions("magicset", 3)
	if err != nil {
		t.Fatalf("BestSessions() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(best))
	}
	// Most removed first, ties broken by fewer misses
	for i, want := range []int64{2, 3, 1} {
		if best[i].Seed != want {
			t.Errorf("best[%d].Seed = %d, expected %d", i, best[i].Seed, want)
		}
	}

	none, err := store.BestSessions("magicset_compact", 10)
	if err != nil {
		t.Fatalf("BestSessions() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no sessions for an unplayed variant, got %d", len(none))
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	entries := []Session{
		{Variant: "magicset", Matches: 24, Misses: 3, Removed: 72, Outcome: "cleared"},
		{Variant: "magicset", Matches: 10, Misses: 5, Removed: 30, Outcome: "stuck"},
		{Variant: "magicset", Matches: 1, Removed: 3, Outcome: "quit"},
		{Variant: "magicset_wide", Matches: 2, Removed: 6, Outcome: "quit"},
	}
	for _, e := range entries {
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	totals, err := store.Totals("magicset")
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}

	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"games", totals.Games, 3},
		{"cleared", totals.Cleared, 1},
		{"stuck", totals.Stuck, 1},
		{"quit", totals.Quit, 1},
		{"matches", totals.Matches, 35},
		{"misses", totals.Misses, 8},
		{"best removed", totals.BestRemoved, 72},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %d, expected %d", tt.got, tt.expected)
			}
		})
	}

	if totals.AvgRemoved != 35 {
		t.Errorf("AvgRemoved = %f, expected 35", totals.AvgRemoved)
	}
	if totals.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreTotalsUnplayed(t *testing.T) {
	store := openTestStore(t)

	totals, err := store.Totals("magicset")
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Games != 0 || totals.BestRemoved != 0 {
		t.Errorf("Expected zero totals, got %+v", totals)
	}
	if !totals.LastPlayed.IsZero() {
		t.Errorf("Expected zero LastPlayed, got %v", totals.LastPlayed)
	}
}

func TestStoreAllTotals(t *testing.T) {
	store := openTestStore(t)

	for _, v := range []string{"magicset", "magicset", "magicset_tall"} {
		if _, err := store.SaveSession(Session{Variant: v, Outcome: "stuck"}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	all, err := store.AllTotals()
	if err != nil {
		t.Fatalf("AllTotals() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 variants, got %d", len(all))
	}
	if all["magicset"].Games != 2 || all["magicset_tall"].Games != 1 {
		t.Errorf("unexpected counts: magicset=%d magicset_tall=%d",
			all["magicset"].Games, all["magicset_tall"].Games)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	for _, v := range []string{"magicset", "magicset_wide"} {
		if _, err := store.SaveSession(Session{Variant: v, Outcome: "quit"}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	if err := store.ClearSessions("magicset"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	left, _ := store.RecentSessions("", 10)
	if len(left) != 1 || left[0].Variant != "magicset_wide" {
		t.Errorf("Expected only magicset_wide left, got %+v", left)
	}

	if err := store.ClearSessions(""); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	left, _ = store.RecentSessions("", 10)
	if len(left) != 0 {
		t.Errorf("Expected empty history, got %d sessions", len(left))
	}
}
