package breakout

import (
	"github.com/vovakirdan/breakout/internal/entity"
	"github.com/vovakirdan/breakout/internal/instruction"
)

// spawnPowerup drops a powerup at (x, y), choosing its kind by the
// configured weights.
func (e *Engine) spawnPowerup(x, y, radius float64) {
	pc := e.cfg.Powerups
	kind := entity.PowerupLife
	if e.rng.Float64()*(pc.WeightPiercing+pc.WeightLife) < pc.WeightPiercing {
		kind = entity.PowerupPiercing
	}
	e.powerups = append(e.powerups, entity.Powerup{Kind: kind, X: x, Y: y, Radius: radius})
}

// stepPowerups moves every powerup down and collects those touching the
// paddle. Survivors are compacted in place, so several pickups in one pass
// neither skip nor repeat an entry.
func (e *Engine) stepPowerups(dt float64) []instruction.Sound {
	var sounds []instruction.Sound

	active := e.powerups[:0]
	for _, p := range e.powerups {
		p.Y += dt * e.cfg.Powerups.FallSpeed
		if touchesPaddle(p, e.paddle) {
			sounds = append(sounds, instruction.SoundPowerup)
			e.applyPowerup(p.Kind)
			continue
		}
		active = append(active, p)
	}
	e.powerups = active

	return sounds
}

// touchesPaddle reports whether the powerup's center lies within the paddle
// box grown by the powerup's hitbox radius, edges included.
func touchesPaddle(p entity.Powerup, pad entity.Paddle) bool {
	r := p.Radius
	return pad.Y-r <= p.Y && p.Y <= pad.Y+pad.Height+r &&
		pad.X-r <= p.X && p.X <= pad.X+pad.Width+r
}

func (e *Engine) applyPowerup(kind entity.PowerupKind) {
	e.stats.PowerupsCollected++

	switch kind {
	case entity.PowerupPiercing:
		// Nothing to pierce with while the next ball waits on the paddle.
		if e.ball.ok {
			e.ball.value.MakePiercing(e.cfg.Powerups.PiercingDurationMS, e.cfg.Powerups.PiercingCount)
		}
	case entity.PowerupLife:
		e.lives++
		e.paddle.Lives++
	}
}
