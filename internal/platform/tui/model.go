package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/audio"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/input"
	"github.com/vovakirdan/breakout/internal/instruction"
	"github.com/vovakirdan/breakout/internal/platform"
	"github.com/vovakirdan/breakout/internal/screen"
	"github.com/vovakirdan/breakout/internal/storage"
)

// Terminals send one event when a key goes down and start autorepeat only
// after a delay, so a key counts as held for DefaultRepeatDelay until its
// first repeat and for DefaultHoldTimeout after each later one.
const (
	DefaultRepeatDelay = 600 * time.Millisecond
	DefaultHoldTimeout = 150 * time.Millisecond
)

// Options configures a terminal Model.
type Options struct {
	Machine     *screen.Machine
	Player      audio.Player   // nil plays nothing
	Store       *storage.Store // nil disables the run ledger
	Logger      *log.Logger
	Source      string // ledger source, platform.SourceLocal by default
	Difficulty  string
	Width       int // initial terminal size
	Height      int
	RepeatDelay time.Duration
	HoldTimeout time.Duration
}

// Model is the Bubble Tea model running one Breakout session.
type Model struct {
	machine *screen.Machine
	player  audio.Player
	store   *storage.Store
	logger  *log.Logger
	tracker *input.Tracker
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	raster  *Raster

	source      string
	difficulty  string
	repeatDelay time.Duration
	holdTimeout time.Duration
	fps         int
	clock       platform.FrameClock
	graphics    instruction.Graphics
	quitting    bool
}

// NewModel creates a model for the given options.
func NewModel(opts Options) Model {
	if opts.Player == nil {
		opts.Player = audio.NewSilent()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Source == "" {
		opts.Source = platform.SourceLocal
	}
	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = DefaultRepeatDelay
	}
	if opts.HoldTimeout <= 0 {
		opts.HoldTimeout = DefaultHoldTimeout
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		cfg := core.DefaultConfig()
		opts.Width, opts.Height = cfg.ScreenW, cfg.ScreenH
	}

	world := opts.Machine.World()
	scr := core.NewScreen(opts.Width, playRows(opts.Height))

	return Model{
		machine:     opts.Machine,
		player:      opts.Player,
		store:       opts.Store,
		logger:      opts.Logger,
		tracker:     input.NewTracker(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		screen:      scr,
		raster:      NewRaster(scr, world.Width, world.Height),
		source:      opts.Source,
		difficulty:  opts.Difficulty,
		repeatDelay: opts.RepeatDelay,
		holdTimeout: opts.HoldTimeout,
		fps:         opts.Machine.Settings().FPS,
	}
}

// playRows is the number of rows left for the game after the help line.
func playRows(height int) int {
	return max(height-1, 1)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the actions a key triggers for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	actions, closing := m.keys.Actions(msg)
	if closing {
		m.tracker.Close()
		return m, nil
	}
	m.tracker.PressAll(actions, time.Now())
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame of the state machine.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)

	m.tracker.Expire(now, m.repeatDelay, m.holdTimeout)
	frame := m.machine.Update(dt, m.tracker.Snapshot())
	m.tracker.Advance()

	if err := m.machine.CheckInvariants(); err != nil {
		m.logger.Error("frame invariant violated", "err", err)
	}

	m.player.Play(frame.Audio)
	m.graphics = frame.Graphics

	if change := frame.Graphics.SettingsChange; change != nil {
		m.logger.Debug("resolution change has no effect in a terminal", "resolution", change)
	}
	if fps := m.machine.Settings().FPS; fps != m.fps {
		m.logger.Info("frame rate changed", "fps", fps)
		m.fps = fps
	}

	if frame.Finished != nil {
		platform.RecordRun(m.store, m.logger, *frame.Finished, m.source, m.difficulty)
	}

	if frame.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.raster.Draw(m.graphics)

	dir := filepath.Join(os.Getenv("HOME"), ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("breakout_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.raster.Draw(m.graphics)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Machine returns the state machine the model drives.
func (m Model) Machine() *screen.Machine {
	return m.machine
}

// Run starts a full-screen Bubble Tea program for the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
