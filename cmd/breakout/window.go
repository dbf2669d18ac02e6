package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/platform/desktop"
	"github.com/vovakirdan/breakout/internal/screen"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Breakout in a desktop window.

The controls match the terminal version. The settings screen can switch
the window between 800x600, 1080x720 and 400x300; the game keeps its
aspect ratio with black bars where needed. F11 toggles fullscreen.

Examples:
  breakout window
  breakout window --difficulty hard --fps 120`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, _ []string) error {
	setup, err := loadSetup()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player := openPlayer(logger)
	defer player.Close()

	logger.Info("starting round", "seed", setup.seed, "difficulty", setup.difficulty)
	machine := screen.New(setup.game, setup.settings, setup.seed, screen.WithLogger(logger))

	return desktop.Run(desktop.Options{
		Machine:    machine,
		Player:     player,
		Store:      store,
		Logger:     logger,
		Difficulty: string(setup.difficulty),
	})
}
