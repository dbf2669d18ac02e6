package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// It matches defaults/breakout.yaml and is used if the embedded file fails to parse.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: BreakoutWorld{
			Width:  800,
			Height: 600,
		},
		Physics: BreakoutPhysics{
			Substeps: 50,
			Gravity:  0.0004,
			Drag:     0.01,
			Impulse:  0.01,
		},
		Paddle: BreakoutPaddle{
			Width:     100,
			Height:    10,
			YFraction: 0.9,
		},
		Ball: BreakoutBall{
			Radius:          5,
			LaunchSpeedY:    -0.8,
			MaxLaunchSpeedX: 0.4,
			MaxSpeedX:       0.1,
		},
		Blocks: BreakoutBlocks{
			Columns:    9,
			Rows:       5,
			Gap:        2,
			GridHeight: 200,
			ToughRows:  []int{0, 2},
			Protectors: [][]int{{4, 2}},
		},
		Gameplay: BreakoutGameplay{
			Lives: 3,
		},
		Powerups: BreakoutPowerups{
			SpawnChance:        0.4,
			WeightPiercing:     0.8,
			WeightLife:         0.2,
			FallSpeed:          0.4,
			PiercingDurationMS: 3000,
			PiercingCount:      1,
		},
		Difficulty: DifficultyConfig{
			Enabled:         false,
			InitialLevel:    0.0,
			MaxAt:           45,
			SpeedMultiplier: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
