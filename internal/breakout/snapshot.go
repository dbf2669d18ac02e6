package breakout

import "math"

// Snapshot contains the complete round state for replay and determinism
// checks. Floats are stored as their IEEE-754 bits so two runs compare
// exactly.
type Snapshot struct {
	PaddleX    uint64
	PaddleVelX uint64
	Lives      int
	NewLife    bool

	// Ball state; BallData is empty while no ball is in play.
	// Layout: X, Y, VelX, VelY, Modifier, ModifierLeft, MaxPierce, Pierced.
	HasBall  bool
	BallData []uint64

	// Block states in collision order, 3 values each: Alive, Health, Protection.
	BlockData []int

	// Powerups, 3 values each: Kind, X, Y.
	PowerupData []uint64

	BlocksDestroyed int
	RNGState        uint64
}

// Snapshot returns the current round state.
func (e *Engine) Snapshot() Snapshot {
	blockData := make([]int, 0, len(e.arena.slots)*3)
	for _, s := range e.arena.slots {
		alive := 1
		if s.destroyed {
			alive = 0
		}
		blockData = append(blockData, alive, s.block.Health, s.block.Protection)
	}

	var ballData []uint64
	if e.ball.ok {
		b := e.ball.value
		ballData = []uint64{
			math.Float64bits(b.X),
			math.Float64bits(b.Y),
			math.Float64bits(b.VelX),
			math.Float64bits(b.VelY),
			uint64(b.Modifier),
			math.Float64bits(b.ModifierLeft),
			uint64(b.MaxPierce), //#nosec G115 -- pierce budget is never negative
			uint64(b.Pierced),   //#nosec G115 -- pierce count is never negative
		}
	}

	powerupData := make([]uint64, 0, len(e.powerups)*3)
	for _, p := range e.powerups {
		powerupData = append(powerupData, uint64(p.Kind), math.Float64bits(p.X), math.Float64bits(p.Y))
	}

	return Snapshot{
		PaddleX:    math.Float64bits(e.paddle.X),
		PaddleVelX: math.Float64bits(e.paddle.VelX),
		Lives:      e.lives,
		NewLife:    e.newLife,

		HasBall:  e.ball.ok,
		BallData: ballData,

		BlockData:   blockData,
		PowerupData: powerupData,

		BlocksDestroyed: e.stats.BlocksDestroyed,
		RNGState:        e.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.PaddleX
	h = h*31 + snap.PaddleVelX
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksDestroyed) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.NewLife)
	h = h*31 + boolBit(snap.HasBall)

	for _, v := range snap.BallData {
		h = h*31 + v
	}

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.PowerupData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
