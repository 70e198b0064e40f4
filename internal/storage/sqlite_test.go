package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rounds := []Round{
		{Player: "local", Outcome: "lose", Score: 100, BricksDestroyed: 10, BricksTotal: 56, Seed: 1, Layout: "classic"},
		{Player: "local", Outcome: "lose", Score: 50, BricksDestroyed: 5, BricksTotal: 56, Seed: 2, Layout: "classic"},
		{Player: "alice", Outcome: "win", Score: 560, BricksDestroyed: 56, BricksTotal: 56, LivesLeft: 2, Ticks: 9000, Seed: 3, Layout: "pyramid"},
	}
	ids := make([]string, 0, len(rounds))
	for _, r := range rounds {
		id, err := store.SaveRound(r)
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("SaveRound() returned non-UUID id %q", id)
		}
		ids = append(ids, id)
	}

	top, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(top))
	}
	want := []int{560, 100, 50}
	for i, r := range top {
		if r.Score != want[i] {
			t.Errorf("top[%d].Score = %d, expected %d", i, r.Score, want[i])
		}
	}
	if w := top[0]; w.Player != "alice" || w.Outcome != "win" || w.LivesLeft != 2 || w.Ticks != 9000 || w.Seed != 3 || w.Layout != "pyramid" {
		t.Errorf("round fields not preserved: %+v", w)
	}

	recent, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != ids[2] || recent[1].ID != ids[1] {
		t.Errorf("RecentRounds() order wrong: %+v", recent)
	}

	got, err := store.RoundByID(ids[0])
	if err != nil || got == nil || got.Score != 100 {
		t.Errorf("RoundByID() = %+v, %v", got, err)
	}
	if missing, err := store.RoundByID("nope"); err != nil || missing != nil {
		t.Errorf("RoundByID(missing) = %+v, %v", missing, err)
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	got, err := store.SaveRound(Round{ID: id, Outcome: "win", Score: 1})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if got != id {
		t.Errorf("SaveRound() id = %q, expected %q", got, id)
	}
	if _, err := store.SaveRound(Round{ID: id, Outcome: "win", Score: 2}); err == nil {
		t.Error("duplicate id should fail")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty store, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveRound(Round{Outcome: "lose", Score: score}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRound(Round{Outcome: "win", Score: 560, BricksDestroyed: 56})
	store.SaveRound(Round{Outcome: "lose", Score: 40, BricksDestroyed: 4})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.Wins != 1 || stats.HighScore != 560 || stats.AvgScore != 300 || stats.Bricks != 60 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)
	store.SaveRound(Round{Outcome: "lose", Score: 10})

	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}
	rounds, err := store.TopRounds(0)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("Expected no rounds after clear, got %d", len(rounds))
	}
}
