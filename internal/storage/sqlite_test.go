package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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

func mustSave(t *testing.T, store *Store, r Run) Run {
	t.Helper()
	saved, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return saved
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Run{Player: "ann", Outcome: "victory", LevelReached: 6, Score: 70})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Player != "ann" {
		t.Errorf("runs after reopen = %+v", runs)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	saved := mustSave(t, store, Run{
		Player:        "ann",
		Outcome:       "caught",
		LevelReached:  3,
		LevelsCleared: 2,
		Score:         40,
		Moves:         57,
		Seed:          42,
		CreatedAt:     at,
	})

	if saved.ID == 0 {
		t.Error("expected an ID")
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a uuid: %v", saved.RunID, err)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("run not found")
	}
	if got.Player != "ann" || got.Outcome != "caught" || got.LevelReached != 3 ||
		got.LevelsCleared != 2 || got.Score != 40 || got.Moves != 57 || got.Seed != 42 {
		t.Errorf("stored run = %+v", got)
	}
	if !got.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, at)
	}
}

func TestStoreSaveRunDefaults(t *testing.T) {
	store := openTestStore(t)

	a := mustSave(t, store, Run{Player: "p", Outcome: "quit", LevelReached: 1})
	b := mustSave(t, store, Run{Player: "p", Outcome: "quit", LevelReached: 1})

	if a.RunID == b.RunID {
		t.Error("run IDs must be unique")
	}
	if a.CreatedAt.IsZero() {
		t.Error("CreatedAt should default to now")
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	mustSave(t, store, Run{RunID: id, Player: "p", Outcome: "quit", LevelReached: 1})
	if _, err := store.SaveRun(Run{RunID: id, Player: "p", Outcome: "quit", LevelReached: 1}); err == nil {
		t.Error("expected unique constraint error")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestStoreTopRunsOrder(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Player: "a", Outcome: "caught", LevelReached: 2, Score: 50, Moves: 30})
	mustSave(t, store, Run{Player: "b", Outcome: "victory", LevelReached: 6, Score: 90, Moves: 200})
	mustSave(t, store, Run{Player: "c", Outcome: "quit", LevelReached: 3, Score: 50, Moves: 20})
	mustSave(t, store, Run{Player: "d", Outcome: "caught", LevelReached: 1, Score: 10, Moves: 5})

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Score descending, fewer moves first on ties.
	want := []string{"b", "c", "a"}
	for i, r := range runs {
		if r.Player != want[i] {
			t.Errorf("runs[%d].Player = %q, want %q", i, r.Player, want[i])
		}
	}
}

func TestStoreTopRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		mustSave(t, store, Run{Player: "p", Outcome: "caught", LevelReached: 1, Score: i * 10})
	}

	runs, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != DefaultLimit {
		t.Errorf("Expected %d runs, got %d", DefaultLimit, len(runs))
	}
	if runs[0].Score != 140 {
		t.Errorf("Expected best score 140, got %d", runs[0].Score)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Player: "ann", Outcome: "caught", LevelReached: 1, Score: 1})
	mustSave(t, store, Run{Player: "bob", Outcome: "caught", LevelReached: 1, Score: 2})
	mustSave(t, store, Run{Player: "ann", Outcome: "quit", LevelReached: 2, Score: 3})

	runs, err := store.RecentRuns("ann", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 3 || runs[1].Score != 1 {
		t.Errorf("ann's runs = %+v", runs)
	}

	all, err := store.RecentRuns("", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 2 || all[0].Score != 3 || all[1].Score != 2 {
		t.Errorf("recent runs = %+v", all)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestScore("")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty history, got %d", best)
	}

	mustSave(t, store, Run{Player: "ann", Outcome: "caught", LevelReached: 1, Score: 100})
	mustSave(t, store, Run{Player: "bob", Outcome: "victory", LevelReached: 6, Score: 300})
	mustSave(t, store, Run{Player: "ann", Outcome: "quit", LevelReached: 2, Score: 200})

	if best, _ = store.BestScore(""); best != 300 {
		t.Errorf("Expected overall best of 300, got %d", best)
	}
	if best, _ = store.BestScore("ann"); best != 200 {
		t.Errorf("Expected ann's best of 200, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats("")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Run{Player: "ann", Outcome: "victory", LevelReached: 6, Score: 80})
	mustSave(t, store, Run{Player: "ann", Outcome: "caught", LevelReached: 4, Score: 40})
	mustSave(t, store, Run{Player: "bob", Outcome: "quit", LevelReached: 1, Score: 0})

	stats, err := store.GetStats("ann")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Victories != 1 || stats.BestScore != 80 || stats.BestLevel != 6 {
		t.Errorf("ann stats = %+v", stats)
	}
	if stats.AvgScore != 60 {
		t.Errorf("AvgScore = %v, want 60", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Player: "ann", Outcome: "caught", LevelReached: 1, Score: 100})
	mustSave(t, store, Run{Player: "bob", Outcome: "caught", LevelReached: 1, Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
