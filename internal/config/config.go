// Package config provides YAML-based tuning for the Breakout simulation and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains every tunable constant of a Breakout round.
// All lengths are game units (the playfield is World.Width x World.Height)
// and all times are milliseconds.
type BreakoutConfig struct {
	World      BreakoutWorld    `yaml:"world"`
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Ball       BreakoutBall     `yaml:"ball"`
	Blocks     BreakoutBlocks   `yaml:"blocks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Powerups   BreakoutPowerups `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutWorld defines the logical playfield size.
type BreakoutWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutPhysics defines integration parameters.
type BreakoutPhysics struct {
	Substeps int     `yaml:"substeps"` // physics sub-steps per frame
	Gravity  float64 `yaml:"gravity"`  // added to ball y-velocity per ms
	Drag     float64 `yaml:"drag"`     // paddle air resistance coefficient
	Impulse  float64 `yaml:"impulse"`  // paddle acceleration per ms while a direction is held
}

// BreakoutPaddle defines the paddle geometry.
type BreakoutPaddle struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	YFraction float64 `yaml:"y_fraction"` // top edge as a fraction of world height
}

// BreakoutBall defines the ball parameters.
type BreakoutBall struct {
	Radius          float64 `yaml:"radius"`
	LaunchSpeedY    float64 `yaml:"launch_speed_y"`     // y-velocity applied on launch (negative is up)
	MaxLaunchSpeedX float64 `yaml:"max_launch_speed_x"` // spawn x-velocity is uniform in [-v, v]
	MaxSpeedX       float64 `yaml:"max_speed_x"`        // x-velocity clamp applied every sub-step
}

// BreakoutBlocks defines the block grid.
type BreakoutBlocks struct {
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	Gap        float64 `yaml:"gap"`
	GridHeight float64 `yaml:"grid_height"` // height of the whole grid, starting at the top wall
	ToughRows  []int   `yaml:"tough_rows"`  // rows whose blocks take one extra hit
	Protectors [][]int `yaml:"protectors"`  // [col, row] cells forced to protector blocks
}

// BreakoutGameplay defines round rules.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// BreakoutPowerups defines powerup spawning and effects.
type BreakoutPowerups struct {
	SpawnChance        float64 `yaml:"spawn_chance"`    // probability a block carries a powerup
	WeightPiercing     float64 `yaml:"weight_piercing"` // relative weight of piercing drops
	WeightLife         float64 `yaml:"weight_life"`     // relative weight of life drops
	FallSpeed          float64 `yaml:"fall_speed"`
	PiercingDurationMS float64 `yaml:"piercing_duration_ms"`
	PiercingCount      int     `yaml:"piercing_count"`
}

// DifficultyConfig controls the optional speed ramp: as blocks are destroyed
// the ball's horizontal speed cap grows up to (1 + SpeedMultiplier) times its
// base value.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	InitialLevel    float64 `yaml:"initial_level"` // 0.0 = base speed, 1.0 = full ramp
	MaxAt           int     `yaml:"max_at"`        // blocks destroyed at which the ramp peaks
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// Validate reports every inconsistent value in the configuration.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.Physics.Substeps > 0, "physics.substeps must be positive, got %d", c.Physics.Substeps)
	check(c.Paddle.Width > 0 && c.Paddle.Width <= c.World.Width, "paddle.width must be in (0, world.width], got %v", c.Paddle.Width)
	check(c.Paddle.Height > 0, "paddle.height must be positive, got %v", c.Paddle.Height)
	check(c.Paddle.YFraction > 0 && c.Paddle.YFraction < 1, "paddle.y_fraction must be in (0, 1), got %v", c.Paddle.YFraction)
	check(c.Ball.Radius > 0, "ball.radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.MaxSpeedX > 0, "ball.max_speed_x must be positive, got %v", c.Ball.MaxSpeedX)
	check(c.Blocks.Columns > 0 && c.Blocks.Rows > 0, "blocks grid must be non-empty, got %dx%d", c.Blocks.Columns, c.Blocks.Rows)
	check(c.Blocks.GridHeight > 0 && c.Blocks.GridHeight <= c.World.Height, "blocks.grid_height must be in (0, world.height], got %v", c.Blocks.GridHeight)
	for _, cell := range c.Blocks.Protectors {
		check(len(cell) == 2, "blocks.protectors entries must be [col, row], got %v", cell)
		if len(cell) == 2 {
			// A protector shields the row below it, one column to each side,
			// so it may not sit on the left, right or bottom edge.
			check(cell[0] >= 1 && cell[0] < c.Blocks.Columns-1 && cell[1] >= 0 && cell[1] < c.Blocks.Rows-1,
				"protector %v must be inside the %dx%d grid and off its edges", cell, c.Blocks.Columns, c.Blocks.Rows)
		}
	}
	check(c.Gameplay.Lives > 0, "gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	check(c.Powerups.SpawnChance >= 0 && c.Powerups.SpawnChance <= 1, "powerups.spawn_chance must be in [0, 1], got %v", c.Powerups.SpawnChance)
	check(c.Powerups.WeightPiercing >= 0 && c.Powerups.WeightLife >= 0 && c.Powerups.WeightPiercing+c.Powerups.WeightLife > 0,
		"powerup weights must be non-negative and not both zero")
	check(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1, "difficulty.initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel)

	if len(errs) > 0 {
		return fmt.Errorf("invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}
