// Package desktop runs Breakout in a window with ebiten. The game area is
// letterboxed into the configured resolution, which the settings screen can
// change while the game runs.
package desktop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/breakout/internal/audio"
	"github.com/vovakirdan/breakout/internal/input"
	"github.com/vovakirdan/breakout/internal/instruction"
	"github.com/vovakirdan/breakout/internal/platform"
	"github.com/vovakirdan/breakout/internal/screen"
	"github.com/vovakirdan/breakout/internal/settings"
	"github.com/vovakirdan/breakout/internal/storage"
)

// Options configures a windowed Game.
type Options struct {
	Machine    *screen.Machine
	Player     audio.Player   // nil plays nothing
	Store      *storage.Store // nil disables the run ledger
	Logger     *log.Logger
	Difficulty string
}

// Game adapts a screen Machine to ebiten.Game.
type Game struct {
	machine    *screen.Machine
	player     audio.Player
	store      *storage.Store
	logger     *log.Logger
	difficulty string

	tracker  *input.Tracker
	clock    platform.FrameClock
	renderer *renderer
	graphics instruction.Graphics
	res      settings.GraphicsSettings
	fps      int
}

// NewGame creates a windowed game for the given options.
func NewGame(opts Options) *Game {
	if opts.Player == nil {
		opts.Player = audio.NewSilent()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := opts.Machine.Settings()
	world := opts.Machine.World()
	return &Game{
		machine:    opts.Machine,
		player:     opts.Player,
		store:      opts.Store,
		logger:     opts.Logger,
		difficulty: opts.Difficulty,
		tracker:    input.NewTracker(),
		renderer:   newRenderer(world.Width, world.Height, s.Graphics),
		res:        s.Graphics,
		fps:        s.FPS,
	}
}

// Update runs one frame of the state machine.
func (g *Game) Update() error {
	now := time.Now()

	g.tracker.Sync(input.DownActions(bindings, ebiten.IsKeyPressed), now)
	if ebiten.IsWindowBeingClosed() {
		g.tracker.Close()
	}
	if inpututil.IsKeyJustPressed(fullscreenKey) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	frame := g.machine.Update(g.clock.Tick(now), g.tracker.Snapshot())
	g.tracker.Advance()

	if err := g.machine.CheckInvariants(); err != nil {
		g.logger.Error("frame invariant violated", "err", err)
	}

	g.player.Play(frame.Audio)
	g.graphics = frame.Graphics

	if change := frame.Graphics.SettingsChange; change != nil && *change != g.res {
		g.logger.Info("resolution changed", "resolution", change)
		g.res = *change
		g.renderer.setResolution(g.res)
		ebiten.SetWindowSize(g.res.ResolutionWidth, g.res.ResolutionHeight)
	}
	if fps := g.machine.Settings().FPS; fps != g.fps {
		g.logger.Info("frame rate changed", "fps", fps)
		g.fps = fps
		ebiten.SetTPS(fps)
	}

	if frame.Finished != nil {
		platform.RecordRun(g.store, g.logger, *frame.Finished, platform.SourceWindow, g.difficulty)
	}

	if frame.Exit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the last frame's graphics.
func (g *Game) Draw(dst *ebiten.Image) {
	g.renderer.draw(dst, g.graphics)
}

// Layout keeps the logical screen at the configured resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.res.ResolutionWidth, g.res.ResolutionHeight
}

// Run opens the window and blocks until the player quits or closes it.
func Run(opts Options) error {
	g := NewGame(opts)

	ebiten.SetWindowTitle("Breakout")
	ebiten.SetWindowSize(g.res.ResolutionWidth, g.res.ResolutionHeight)
	ebiten.SetTPS(max(g.fps, settings.MinFPS))
	ebiten.SetWindowClosingHandled(true)

	return ebiten.RunGame(g)
}
