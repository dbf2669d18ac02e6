package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Outcome: "lost", BlocksDestroyed: 10, BallsLost: 3, Duration: 40 * time.Second, Seed: 1, Difficulty: "normal", Source: "local"},
		{Outcome: "won", BlocksDestroyed: 45, LivesLeft: 2, Duration: 90 * time.Second, Seed: 2, Difficulty: "hard", Source: "ssh"},
		{Outcome: "lost", BlocksDestroyed: 3, BallsLost: 3, Duration: 5 * time.Second, Seed: 3, Difficulty: "easy", Source: "window"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}

	// Newest first
	if recent[0].Seed != 3 || recent[2].Seed != 1 {
		t.Errorf("Expected newest first, got seeds %d..%d", recent[0].Seed, recent[2].Seed)
	}
	won := recent[1]
	if won.Outcome != "won" || won.BlocksDestroyed != 45 || won.LivesLeft != 2 {
		t.Errorf("Unexpected run: %+v", won)
	}
	if won.Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected 1m30s", won.Duration)
	}
	if won.Difficulty != "hard" || won.Source != "ssh" {
		t.Errorf("Difficulty/Source = %q/%q", won.Difficulty, won.Source)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveRun(Run{Outcome: "lost", BlocksDestroyed: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}

	runs, err = store.RecentRuns(0) // default limit
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 15 {
		t.Errorf("Expected 15 runs, got %d", len(runs))
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run on an empty ledger, got %+v", best)
	}

	store.SaveRun(Run{Outcome: "won", BlocksDestroyed: 45, Duration: 120 * time.Second, Seed: 1})
	store.SaveRun(Run{Outcome: "won", BlocksDestroyed: 45, Duration: 80 * time.Second, Seed: 2})
	store.SaveRun(Run{Outcome: "lost", BlocksDestroyed: 20, Duration: 10 * time.Second, Seed: 3})

	best, err = store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Seed != 2 {
		t.Errorf("Expected the faster full clear, got %+v", best)
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 0 || !sum.LastPlayed.IsZero() {
		t.Errorf("Expected empty summary, got %+v", sum)
	}

	store.SaveRun(Run{Outcome: "won", BlocksDestroyed: 45})
	store.SaveRun(Run{Outcome: "lost", BlocksDestroyed: 12})

	sum, err = store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 2 || sum.Wins != 1 || sum.TotalBlocks != 57 || sum.MostBlocks != 45 {
		t.Errorf("Unexpected summary: %+v", sum)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Outcome: "lost"})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
