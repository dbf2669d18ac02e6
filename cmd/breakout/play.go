package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/platform"
	"github.com/vovakirdan/breakout/internal/platform/tui"
	"github.com/vovakirdan/breakout/internal/screen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Breakout in the terminal.

Controls:
  A/D, Left/Right  - Move the paddle
  P                - Play from the menu, pause and resume
  L                - Launch the ball
  I                - Instructions
  S                - Settings (W/S select, A/D change, Enter apply)
  M                - Back to the menu
  R                - Restart after a round ends
  Q                - Quit from the menu or end screens
  Ctrl+C           - Exit immediately

Difficulty options:
  easy   - More lives and a wider paddle
  normal - The default game
  hard   - Fewer lives, a narrow paddle and a ball that speeds up

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --seed 42 --fps 30
  breakout play --config ./my-breakout.yaml --log-file breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	setup, err := loadSetup()
	if err != nil {
		return err
	}

	// The alternate screen owns stderr, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
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

	width, height := terminalSize()

	logger.Info("starting round", "seed", setup.seed, "difficulty", setup.difficulty)
	machine := screen.New(setup.game, setup.settings, setup.seed, screen.WithLogger(logger))

	return tui.Run(tui.Options{
		Machine:    machine,
		Player:     player,
		Store:      store,
		Logger:     logger,
		Source:     platform.SourceLocal,
		Difficulty: string(setup.difficulty),
		Width:      width,
		Height:     height,
	})
}
