package platform

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/screen"
	"github.com/vovakirdan/breakout/internal/storage"
)

func TestRun(t *testing.T) {
	sum := screen.RunSummary{
		Outcome: screen.OutcomeWon,
		Stats: breakout.Stats{
			BlocksDestroyed:   45,
			PowerupsCollected: 4,
			BallsLost:         1,
			PlayTimeMS:        61500,
		},
		LivesLeft: 2,
		Seed:      99,
	}

	r := Run(sum, SourceWindow, "hard")

	if r.Outcome != "won" || r.BlocksDestroyed != 45 || r.PowerupsCollected != 4 || r.BallsLost != 1 {
		t.Errorf("unexpected run: %+v", r)
	}
	if r.Duration != 61500*time.Millisecond {
		t.Errorf("Duration = %v, expected 1m1.5s", r.Duration)
	}
	if r.LivesLeft != 2 || r.Seed != 99 || r.Source != "window" || r.Difficulty != "hard" {
		t.Errorf("unexpected run: %+v", r)
	}
}

func TestRecordRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	logger := log.New(io.Discard)
	RecordRun(store, logger, screen.RunSummary{Outcome: screen.OutcomeLost}, SourceLocal, "normal")
	RecordRun(nil, logger, screen.RunSummary{Outcome: screen.OutcomeLost}, SourceLocal, "normal")

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Outcome != "lost" || runs[0].Source != "local" {
		t.Errorf("unexpected runs: %+v", runs)
	}
}
