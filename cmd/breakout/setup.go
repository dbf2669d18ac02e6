package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout/internal/audio"
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/settings"
	"github.com/vovakirdan/breakout/internal/storage"
)

// gameSetup is what every way of playing shares.
type gameSetup struct {
	game       config.BreakoutConfig
	settings   settings.Settings
	difficulty config.DifficultyPreset
	seed       int64
}

// loadSetup reads the game config and applies the global flags.
func loadSetup() (gameSetup, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return gameSetup{}, err
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return gameSetup{}, err
	}
	config.ApplyPreset(&cfg, preset)

	s := settings.Default()
	s.FPS = max(flagFPS, settings.MinFPS)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return gameSetup{game: cfg, settings: s, difficulty: preset, seed: seed}, nil
}

// newLogger builds the command's logger. Logs go to --log-file when set,
// otherwise to fallback.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the run ledger. Play continues without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		return nil
	}
	return store
}

// openPlayer opens the speaker, or falls back to silence.
func openPlayer(logger *log.Logger) audio.Player {
	if flagMute {
		return audio.NewSilent()
	}
	synth, err := audio.NewSynth(audio.WithSynthLogger(logger))
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.NewSilent()
	}
	return synth
}

// terminalSize reports the size of stdout, or the default screen size.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	cfg := core.DefaultConfig()
	return cfg.ScreenW, cfg.ScreenH
}
