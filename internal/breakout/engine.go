package breakout

import (
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/entity"
	"github.com/vovakirdan/breakout/internal/input"
	"github.com/vovakirdan/breakout/internal/instruction"
)

// Result is what one frame of the engine produces.
type Result struct {
	Sounds   []instruction.Sound
	Objects  []entity.Object // paddle, ball (if any), live blocks, powerups
	BallLost bool            // the ball fell out during this frame
}

// Stats summarizes a round for the run ledger.
type Stats struct {
	BlocksDestroyed   int
	PowerupsCollected int
	BallsLost         int
	PlayTimeMS        float64 // simulated time spent in play
}

// optionalBall is the ball slot: between a fall and a respawn there is no ball.
type optionalBall struct {
	value entity.Ball
	ok    bool
}

// stepResult is the output of a single physics sub-step.
type stepResult struct {
	sounds   []instruction.Sound
	ballLost bool
}

// Engine owns one round: the paddle, the ball, the block arena and falling
// powerups. It is not safe for concurrent use.
type Engine struct {
	cfg  config.BreakoutConfig
	rng  *SimpleRNG
	ramp *config.DifficultyManager

	paddle   entity.Paddle
	ball     optionalBall
	arena    *Arena
	powerups []entity.Powerup
	lives    int

	newLife bool // pending until StartNewLife reads it
	stats   Stats
}

// New creates an engine with a freshly initialized round.
func New(cfg config.BreakoutConfig, rng *SimpleRNG) *Engine {
	e := &Engine{
		cfg:  cfg,
		rng:  rng,
		ramp: config.NewDifficultyManager(cfg.Difficulty),
	}
	e.Initialize()
	return e
}

// Initialize starts a new round: full lives, the paddle centered near the
// bottom, a resting ball on top of it and a freshly generated block grid.
func (e *Engine) Initialize() {
	w, h := e.cfg.World.Width, e.cfg.World.Height

	e.lives = e.cfg.Gameplay.Lives
	e.paddle = entity.Paddle{
		X:      w/2 - e.cfg.Paddle.Width/2,
		Y:      e.cfg.Paddle.YFraction * h,
		Width:  e.cfg.Paddle.Width,
		Height: e.cfg.Paddle.Height,
		Lives:  e.lives,
	}
	e.ball = optionalBall{value: e.restingBall(w / 2), ok: true}
	e.arena = NewArena(e.cfg, e.rng)
	e.powerups = nil
	e.newLife = false
	e.stats = Stats{}
}

// restingBall places a ball on top of the paddle at x with a random
// horizontal velocity and no vertical velocity.
func (e *Engine) restingBall(x float64) entity.Ball {
	r := e.cfg.Ball.Radius
	maxVX := e.cfg.Ball.MaxLaunchSpeedX
	return entity.Ball{
		X:      x,
		Y:      e.paddle.Y - r,
		VelX:   e.rng.Uniform(-maxVX, maxVX),
		VelY:   0,
		Radius: r,
	}
}

// Update advances the round by dt milliseconds. Physics only runs while
// running is true (the play screen); otherwise the frame just reports the
// objects to draw.
func (e *Engine) Update(dt float64, in input.Snapshot, running bool) Result {
	var res Result

	if running {
		n := e.cfg.Physics.Substeps
		sub := dt / float64(n)
		dir := direction(in)
		for i := 0; i < n; i++ {
			step := e.substep(sub, dir)
			res.Sounds = append(res.Sounds, step.sounds...)
			res.BallLost = res.BallLost || step.ballLost
		}
		e.stats.PlayTimeMS += dt
	}

	res.Objects = e.Objects()
	return res
}

// direction maps held movement actions to -1, 0 or +1. Left wins a tie.
func direction(in input.Snapshot) float64 {
	switch {
	case in.Down(input.ActionLeft):
		return -1
	case in.Down(input.ActionRight):
		return 1
	}
	return 0
}

func (e *Engine) substep(dt, dir float64) stepResult {
	var res stepResult

	stepPaddle(&e.paddle, dir, dt, e.cfg.Physics, e.cfg.World.Width)
	if e.ball.ok {
		res = e.stepBall(dt)
	}
	res.sounds = append(res.sounds, e.stepPowerups(dt)...)

	return res
}

func (e *Engine) stepBall(dt float64) stepResult {
	var res stepResult
	b := &e.ball.value

	b.VelY += e.cfg.Physics.Gravity * dt
	clampSpeedX(b, e.ramp.MaxSpeedX(e.cfg.Ball.MaxSpeedX, e.stats.BlocksDestroyed))

	if b.Y > e.cfg.World.Height+b.Radius {
		e.loseBall()
		res.ballLost = true
		return res
	}

	b.X += b.VelX * dt
	b.Y += b.VelY * dt

	if collidePaddle(b, e.paddle) {
		res.sounds = append(res.sounds, instruction.SoundHit)
	}
	collideWalls(b, e.cfg.World.Width)

	for k := range e.arena.slots {
		s := &e.arena.slots[k]
		if s.destroyed || !collideBlock(b, s.block) {
			continue
		}
		if damage(&s.block) {
			e.breakBlock(s.block)
			res.sounds = append(res.sounds, instruction.SoundBlock)
		}
	}

	if b.Modifier != entity.ModifierNone {
		b.ModifierLeft -= dt
		if b.ModifierLeft <= 0 {
			b.ModifierLeft = 0
			b.Modifier = entity.ModifierNone
		}
	}

	return res
}

// breakBlock removes a block from play, dropping a powerup from its center
// if it carried one.
func (e *Engine) breakBlock(blk entity.Block) {
	if blk.Kind == entity.BlockPowerup {
		cx, cy := blk.Box().Center()
		e.spawnPowerup(cx, cy, blk.Height/2)
	}
	e.arena.destroy(blk.ID)
	e.stats.BlocksDestroyed++
}

func (e *Engine) loseBall() {
	if e.lives > 0 {
		e.lives--
	}
	e.paddle.Lives = e.lives
	e.ball = optionalBall{}
	e.newLife = true
	e.stats.BallsLost++
}

// GameOver reports whether the last life is gone.
func (e *Engine) GameOver() bool {
	return e.lives == 0
}

// GameWon reports whether every block has been destroyed.
func (e *Engine) GameWon() bool {
	return e.arena.Live() == 0
}

// StartNewLife reports a ball loss exactly once: it returns true on the first
// call after the ball falls and false afterwards until the next fall.
func (e *Engine) StartNewLife() bool {
	pending := e.newLife
	e.newLife = false
	return pending
}

// MakeNewBall puts a fresh resting ball on the center of the paddle.
func (e *Engine) MakeNewBall() {
	e.ball = optionalBall{value: e.restingBall(e.paddle.X + e.paddle.Width/2), ok: true}
}

// Launch sends the resting ball upward. It does nothing without a ball.
func (e *Engine) Launch() {
	if e.ball.ok {
		e.ball.value.VelY = e.cfg.Ball.LaunchSpeedY
	}
}

// Ball returns the ball and true, or false while no ball is in play.
func (e *Engine) Ball() (entity.Ball, bool) {
	return e.ball.value, e.ball.ok
}

// Paddle returns the paddle.
func (e *Engine) Paddle() entity.Paddle {
	return e.paddle
}

// Lives returns the remaining lives.
func (e *Engine) Lives() int {
	return e.lives
}

// Blocks returns the live blocks in collision order.
func (e *Engine) Blocks() []entity.Block {
	return e.arena.Blocks()
}

// Powerups returns a copy of the falling powerups.
func (e *Engine) Powerups() []entity.Powerup {
	return append([]entity.Powerup(nil), e.powerups...)
}

// Stats returns the round's running totals.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Objects lists everything to draw: the paddle, the ball if present, every
// live block and every powerup.
func (e *Engine) Objects() []entity.Object {
	blocks := e.arena.Blocks()
	out := make([]entity.Object, 0, 2+len(blocks)+len(e.powerups))

	out = append(out, e.paddle)
	if e.ball.ok {
		out = append(out, e.ball.value)
	}
	for _, b := range blocks {
		out = append(out, b)
	}
	for _, p := range e.powerups {
		out = append(out, p)
	}
	return out
}
