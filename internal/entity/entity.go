// Package entity defines the plain data records of a Breakout round: the
// paddle, the ball, blocks and falling powerups. Behavior lives in the
// breakout package; renderers consume these records through Object.
package entity

import "github.com/vovakirdan/breakout/internal/core"

// Paddle is the player-controlled bar. Lives mirrors the engine's life count
// so renderers can draw life markers on it.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	VelX          float64
	Lives         int
}

// Box returns the paddle's bounding box.
func (p Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// LifeMarkerWidth is the width of one life marker drawn on the paddle.
const LifeMarkerWidth = 5.0

// LifeMarkers returns the x-centers of one marker per life, spread
// symmetrically around the paddle's middle within its central half.
func (p Paddle) LifeMarkers() []float64 {
	n := p.Lives
	if n <= 0 {
		return nil
	}

	mids := make([]float64, 0, n)
	switch {
	case n == 1:
		mids = append(mids, 0.5)
	case n%2 == 1:
		side := (n - 1) / 2
		for i := -side; i <= side; i++ {
			mids = append(mids, 0.5+0.25/float64(side)*float64(i))
		}
	default:
		for i := -(n - 1); i <= n-1; i += 2 {
			mids = append(mids, 0.5+float64(i)*0.25/float64(n))
		}
	}

	for i, m := range mids {
		mids[i] = p.X + p.Width*m
	}
	return mids
}

// BallModifier is a temporary effect applied to the ball.
type BallModifier uint8

const (
	ModifierNone BallModifier = iota
	ModifierPiercing
)

func (m BallModifier) String() string {
	switch m {
	case ModifierNone:
		return "none"
	case ModifierPiercing:
		return "piercing"
	default:
		return "unknown"
	}
}

// Ball is the bouncing ball.
type Ball struct {
	X, Y       float64
	VelX, VelY float64
	Radius     float64

	Modifier     BallModifier
	ModifierLeft float64 // milliseconds until the modifier wears off
	MaxPierce    int     // blocks the ball may pass through before bouncing
	Pierced      int     // blocks passed through since the last bounce
}

// MakePiercing lets the ball pass through up to count blocks for the given
// duration.
func (b *Ball) MakePiercing(ms float64, count int) {
	b.Modifier = ModifierPiercing
	b.ModifierLeft = ms
	b.MaxPierce = count
	b.Pierced = 0
}

// BlockID is the grid cell a block was generated in. It never changes.
type BlockID struct {
	Col, Row int
}

// BlockKind distinguishes block behavior.
type BlockKind uint8

const (
	BlockNormal    BlockKind = iota
	BlockPowerup             // drops a powerup when destroyed
	BlockProtector           // shields the three cells below it
)

func (k BlockKind) String() string {
	switch k {
	case BlockNormal:
		return "normal"
	case BlockPowerup:
		return "powerup"
	case BlockProtector:
		return "protector"
	default:
		return "unknown"
	}
}

// Block is a destructible brick.
type Block struct {
	X, Y          float64
	Width, Height float64
	ID            BlockID
	Kind          BlockKind
	Health        int
	Protection    int // number of live protectors covering this block
	Color         core.Color
}

// Box returns the block's bounding box.
func (b Block) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// PowerupKind is the effect a falling powerup grants on pickup.
type PowerupKind uint8

const (
	PowerupPiercing PowerupKind = iota
	PowerupLife
)

func (k PowerupKind) String() string {
	switch k {
	case PowerupPiercing:
		return "piercing"
	case PowerupLife:
		return "life"
	default:
		return "unknown"
	}
}

// Powerup is a pickup falling from a destroyed powerup block.
type Powerup struct {
	Kind   PowerupKind
	X, Y   float64
	Radius float64 // hitbox radius
}
