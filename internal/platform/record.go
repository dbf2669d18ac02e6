// Package platform holds what the terminal and window shells share.
package platform

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/screen"
	"github.com/vovakirdan/breakout/internal/storage"
)

// Run sources recorded in the ledger.
const (
	SourceLocal  = "local"
	SourceWindow = "window"
	SourceSSH    = "ssh"
)

// Run converts a finished round into a ledger record.
func Run(sum screen.RunSummary, source, difficulty string) storage.Run {
	return storage.Run{
		Outcome:           string(sum.Outcome),
		BlocksDestroyed:   sum.Stats.BlocksDestroyed,
		PowerupsCollected: sum.Stats.PowerupsCollected,
		BallsLost:         sum.Stats.BallsLost,
		LivesLeft:         sum.LivesLeft,
		Duration:          time.Duration(sum.Stats.PlayTimeMS * float64(time.Millisecond)),
		Seed:              sum.Seed,
		Difficulty:        difficulty,
		Source:            source,
	}
}

// RecordRun saves a finished round. A nil store records nothing; failures
// are logged and play continues.
func RecordRun(store *storage.Store, logger *log.Logger, sum screen.RunSummary, source, difficulty string) {
	if store == nil {
		return
	}
	id, err := store.SaveRun(Run(sum, source, difficulty))
	if err != nil {
		logger.Error("cannot record run", "err", err)
		return
	}
	logger.Info("run recorded",
		"id", id,
		"outcome", sum.Outcome,
		"blocks", sum.Stats.BlocksDestroyed,
		"lives", sum.LivesLeft,
	)
}
