// Package config provides YAML-based game configuration loading and
// difficulty preset parsing for the bricks platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BricksConfig contains all configuration for the bricks game.
// Distances are in arena units; the renderer scales them to the terminal.
type BricksConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BrickConfig    `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Trail    TrailConfig    `yaml:"trail"`
}

// ArenaConfig defines the playfield size.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	KeyStep float64 `yaml:"key_step"` // Pointer nudge per arrow key press
}

// BallConfig defines the ball and its spawn point.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance of the spawn point above the bottom edge
	CatchSpeed  float64 `yaml:"catch_speed"`  // Horizontal speed at the paddle edge after a catch
}

// BrickConfig defines brick grid geometry.
type BrickConfig struct {
	Columns   int     `yaml:"columns"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Padding   float64 `yaml:"padding"`
	OffsetTop float64 `yaml:"offset_top"`
}

// GameplayConfig defines lives and level transition timing.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	ClearTicks int `yaml:"clear_ticks"` // Ticks the level-cleared animation lasts
}

// TrailConfig defines the cosmetic ball trail.
type TrailConfig struct {
	Length int `yaml:"length"`
}

// RowWidth returns the width of one full row of bricks including inner padding.
func (c BrickConfig) RowWidth() float64 {
	return float64(c.Columns)*(c.Width+c.Padding) - c.Padding
}

// Validate checks that the configuration describes a playable arena.
func (c BricksConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive size, got %gx%g", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have positive size", ErrInvalidConfig)
	case c.Paddle.Width > c.Arena.Width:
		return fmt.Errorf("%w: paddle width %g exceeds arena width %g", ErrInvalidConfig, c.Paddle.Width, c.Arena.Width)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.Ball.SpawnOffset <= c.Ball.Radius || c.Ball.SpawnOffset >= c.Arena.Height:
		return fmt.Errorf("%w: spawn offset %g must lie between the radius and the arena height", ErrInvalidConfig, c.Ball.SpawnOffset)
	case c.Bricks.Columns < 1:
		return fmt.Errorf("%w: need at least one brick column", ErrInvalidConfig)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0 || c.Bricks.Padding < 0:
		return fmt.Errorf("%w: brick geometry must be positive", ErrInvalidConfig)
	case c.Bricks.RowWidth() > c.Arena.Width:
		return fmt.Errorf("%w: brick row width %g exceeds arena width %g", ErrInvalidConfig, c.Bricks.RowWidth(), c.Arena.Width)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalidConfig)
	case c.Gameplay.ClearTicks < 1:
		return fmt.Errorf("%w: clear_ticks must be at least 1", ErrInvalidConfig)
	case c.Trail.Length < 0:
		return fmt.Errorf("%w: trail length must not be negative", ErrInvalidConfig)
	}
	return nil
}
