package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultBricksConfig returns the default bricks configuration.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:   100,
			Height:  20,
			KeyStep: 25,
		},
		Ball: BallConfig{
			Radius:      12,
			SpawnOffset: 30,
			CatchSpeed:  5,
		},
		Bricks: BrickConfig{
			Columns:   8,
			Width:     75,
			Height:    20,
			Padding:   15,
			OffsetTop: 30,
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			ClearTicks: 150, // 2.5s at 60fps
		},
		Trail: TrailConfig{
			Length: 15,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBricksYAML
}
