package screen

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/breakout"
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/input"
	"github.com/vovakirdan/breakout/internal/instruction"
	"github.com/vovakirdan/breakout/internal/settings"
)

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// RunSummary describes a finished round.
type RunSummary struct {
	Outcome   Outcome
	Stats     breakout.Stats
	LivesLeft int
	Seed      int64
}

// Frame is everything one Update produces for the platform to flush.
type Frame struct {
	Audio    instruction.Audio
	Graphics instruction.Graphics

	// Exit is set once the player quit or the window was closed.
	Exit bool

	// Finished is non-nil only on the frame a round ends.
	Finished *RunSummary
}

// Machine is the top-level screen state machine. It is not safe for
// concurrent use; each frame loop owns one.
type Machine struct {
	cfg      config.BreakoutConfig
	settings settings.Settings
	seed     int64
	rng      *breakout.SimpleRNG
	logger   *log.Logger

	state   State
	engine  *breakout.Engine // nil outside a round
	session *SettingsSession // nil outside the settings screen
	exit    bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger transitions are reported to.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a machine on the menu screen. All rounds draw from one
// generator seeded with seed, so a session replays exactly.
func New(cfg config.BreakoutConfig, s settings.Settings, seed int64, opts ...Option) *Machine {
	m := &Machine{
		cfg:      cfg,
		settings: s,
		seed:     seed,
		rng:      breakout.NewSimpleRNG(seed),
		logger:   log.New(io.Discard),
		state:    StateMenu,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Update runs one frame: dt is the elapsed time in milliseconds.
func (m *Machine) Update(dt float64, snap input.Snapshot) Frame {
	var (
		transition instruction.Audio
		finished   *RunSummary
	)
	if next, ok := m.nextState(snap); ok {
		transition = transitionAudio(m.state, next)
		finished = m.enter(next)
	}
	if snap.Closed {
		m.exit = true
	}

	var (
		simulation instruction.Audio
		scene      instruction.Graphics
		overlay    instruction.Graphics
	)
	if m.state.runsEngine() && m.engine != nil {
		res := m.engine.Update(dt, snap, m.state == StatePlay)
		simulation.Sounds = res.Sounds
		scene.Objects = res.Objects
	} else if m.state == StateSettings && m.session != nil {
		committed, ui := m.session.Update(snap)
		if committed != nil {
			m.settings = *committed
			g := committed.Graphics
			overlay.SettingsChange = &g
			m.logger.Info("settings changed", "fps", committed.FPS, "resolution", committed.Graphics)
		}
		overlay.UI = ui
	}
	scene.UI = screenText(m.state, m.cfg.World, m.session)

	return Frame{
		Audio: transition.Merge(simulation),
		Graphics: instruction.Graphics{SettingsChange: overlay.SettingsChange}.
			Merge(scene).
			Merge(instruction.Graphics{UI: overlay.UI}),
		Exit:     m.exit,
		Finished: finished,
	}
}

// nextState evaluates the transition table for the current screen.
func (m *Machine) nextState(snap input.Snapshot) (State, bool) {
	switch m.state {
	case StateMenu:
		switch {
		case snap.JustPressed(input.ActionPlay):
			return StatePrePlay, true
		case snap.Down(input.ActionQuit):
			return StateQuit, true
		case snap.Down(input.ActionInstructions):
			return StateInstructions, true
		case snap.Down(input.ActionSettings):
			return StateSettings, true
		}

	case StateInstructions, StateSettings:
		if snap.Down(input.ActionMenu) {
			return StateMenu, true
		}

	case StateGameOver, StateGameWin:
		switch {
		case snap.Down(input.ActionRestart):
			return StatePrePlay, true
		case snap.Down(input.ActionQuit):
			return StateQuit, true
		}

	case StatePlay:
		switch {
		case m.engine.GameOver():
			return StateGameOver, true
		case m.engine.GameWon():
			return StateGameWin, true
		case m.engine.StartNewLife():
			return StatePrePlay, true
		case snap.JustPressed(input.ActionPause):
			return StatePause, true
		}

	case StatePause:
		if snap.JustPressed(input.ActionPause) {
			return StatePlay, true
		}

	case StatePrePlay:
		if snap.Down(input.ActionLaunch) {
			return StatePlay, true
		}
	}
	return m.state, false
}

// transitionAudio is the music and sound a screen change triggers.
func transitionAudio(from, to State) instruction.Audio {
	switch {
	case to == StateGameWin:
		return instruction.Audio{Sounds: []instruction.Sound{instruction.SoundWin}, Music: instruction.MusicVictory}
	case to == StateGameOver:
		return instruction.Audio{Music: instruction.MusicGameOver}
	case to == StatePrePlay && from != StatePlay:
		return instruction.Audio{Music: instruction.MusicGameplay}
	}
	return instruction.Audio{}
}

// enter switches to next and applies its entry effects. It returns a run
// summary when the switch ends a round.
func (m *Machine) enter(next State) *RunSummary {
	prev := m.state
	m.logger.Debug("screen transition", "from", prev, "to", next)

	var finished *RunSummary
	switch next {
	case StatePrePlay:
		if prev == StatePlay {
			m.engine.MakeNewBall()
		} else {
			m.engine = breakout.New(m.cfg, m.rng)
		}
	case StatePlay:
		if prev == StatePrePlay {
			m.engine.Launch()
		}
	case StateGameOver:
		finished = m.summary(OutcomeLost)
		m.engine = nil
	case StateGameWin:
		finished = m.summary(OutcomeWon)
	case StateSettings:
		m.session = NewSettingsSession(m.settings, m.cfg.World)
	case StateMenu:
		m.session = nil
	case StateQuit:
		m.exit = true
	}

	m.state = next
	return finished
}

func (m *Machine) summary(outcome Outcome) *RunSummary {
	return &RunSummary{
		Outcome:   outcome,
		Stats:     m.engine.Stats(),
		LivesLeft: m.engine.Lives(),
		Seed:      m.seed,
	}
}

// State returns the current screen.
func (m *Machine) State() State {
	return m.state
}

// Settings returns the authoritative settings.
func (m *Machine) Settings() settings.Settings {
	return m.settings
}

// World returns the size of the game area.
func (m *Machine) World() config.BreakoutWorld {
	return m.cfg.World
}

// Engine returns the running round's engine, or nil outside a round.
func (m *Machine) Engine() *breakout.Engine {
	return m.engine
}

// Exit reports whether the owning loop should stop.
func (m *Machine) Exit() bool {
	return m.exit
}

// CheckInvariants verifies cross-component consistency after a frame: a
// settings session never holds committed settings the machine does not.
func (m *Machine) CheckInvariants() error {
	if m.session != nil && m.session.Settings() != m.settings {
		return fmt.Errorf("screen: session settings %+v differ from machine settings %+v", m.session.Settings(), m.settings)
	}
	if m.state.runsEngine() && m.engine == nil {
		return fmt.Errorf("screen: state %s has no engine", m.state)
	}
	return nil
}
