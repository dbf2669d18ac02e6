package breakout

import (
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/entity"
)

// hitAxis is the velocity component a block collision reflects.
type hitAxis uint8

const (
	axisNone hitAxis = iota
	axisVertical
	axisHorizontal
)

// stepPaddle applies the input impulse and drag for dt milliseconds, then
// keeps the paddle inside the playfield.
func stepPaddle(p *entity.Paddle, dir, dt float64, phys config.BreakoutPhysics, worldW float64) {
	p.VelX += dt * (dir*phys.Impulse - phys.Drag*p.VelX)
	p.X += dt * p.VelX

	if p.X > worldW-p.Width {
		p.X = worldW - p.Width
	} else if p.X < 0 {
		p.X = 0
	}
}

// collidePaddle bounces a falling ball off the paddle and reports whether it
// hit. A ball landing on top picks up a fifth of the paddle's velocity; a
// ball clipped by a side picks up all of it.
func collidePaddle(b *entity.Ball, p entity.Paddle) bool {
	if b.VelY <= 0 {
		return false
	}

	inBand := p.Y-b.Radius <= b.Y && b.Y <= p.Y+p.Height &&
		p.X-b.Radius <= b.X && b.X <= p.X+p.Width+b.Radius
	if !inBand {
		return false
	}

	switch {
	case b.Y <= p.Y:
		b.VelY = -b.VelY
		b.VelX += p.VelX / 5
		return true
	case b.X < p.X || b.X > p.X+p.Width:
		b.VelY = -b.VelY
		b.VelX += p.VelX
		return true
	}
	return false
}

// collideWalls reflects the ball off the left, right and top walls.
// The bottom is open.
func collideWalls(b *entity.Ball, worldW float64) {
	if b.X < b.Radius && b.VelX < 0 {
		b.VelX = -b.VelX
	} else if b.X > worldW-b.Radius && b.VelX > 0 {
		b.VelX = -b.VelX
	}
	if b.Y < b.Radius && b.VelY < 0 {
		b.VelY = -b.VelY
	}
}

// classifyBlockHit decides whether the ball is striking the block and along
// which axis. The ball must be strictly inside the block grown by its radius
// and moving toward the face it is beyond.
func classifyBlockHit(b entity.Ball, blk entity.Block) hitAxis {
	r := b.Radius
	inside := blk.X-r < b.X && b.X < blk.X+blk.Width+r &&
		blk.Y-r < b.Y && b.Y < blk.Y+blk.Height+r
	if !inside {
		return axisNone
	}

	switch {
	case b.Y > blk.Y+blk.Height && b.VelY < 0:
		return axisVertical
	case b.Y < blk.Y && b.VelY > 0:
		return axisVertical
	case b.X > blk.X+blk.Width && b.VelX < 0:
		return axisHorizontal
	case b.X < blk.X && b.VelX > 0:
		return axisHorizontal
	}
	return axisNone
}

// collideBlock resolves a ball-block contact and reports whether the block
// was hit. A piercing ball with budget left passes through a block it can
// break (one hit point left, or unprotected); every other hit bounces and
// resets the pierce counter.
func collideBlock(b *entity.Ball, blk entity.Block) bool {
	axis := classifyBlockHit(*b, blk)
	if axis == axisNone {
		return false
	}

	canPierce := b.Modifier == entity.ModifierPiercing &&
		b.Pierced < b.MaxPierce &&
		(blk.Health <= 1 || blk.Protection <= 0)
	if canPierce {
		b.Pierced++
		return true
	}

	b.Pierced = 0
	if axis == axisVertical {
		b.VelY = -b.VelY
	} else {
		b.VelX = -b.VelX
	}
	return true
}

// damage applies one hit to a block and reports whether it broke.
// Protected blocks take no damage.
func damage(blk *entity.Block) bool {
	if blk.Protection == 0 {
		blk.Health--
	}
	return blk.Health <= 0
}

// clampSpeedX keeps the ball's horizontal speed within ±max.
func clampSpeedX(b *entity.Ball, max float64) {
	b.VelX = core.ClampF(b.VelX, -max, max)
}
