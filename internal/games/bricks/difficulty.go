// Package bricks implements a brick breaker simulation: a ball bouncing in a
// bounded arena, a pointer-driven paddle and a grid of multi-hit bricks.
//
// Simulation owns the whole game and advances one frame per Tick. Game adapts
// it to the platform contract (terminal input, screen rendering).
package bricks

import (
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Profile describes how a difficulty seeds a level.
// Profiles are immutable and selected once per game.
type Profile struct {
	Name      config.DifficultyPreset
	BallSpeed core.Vec // Launch velocity; negative Y moves toward the top
	RowCount  int

	hitPattern func(row int) int
}

// HitsForRow returns how many hits a brick in the given row needs.
func (p Profile) HitsForRow(row int) int {
	return p.hitPattern(row)
}

// ResolveProfile returns the profile for a difficulty tag.
// Unknown tags fail with *config.ConfigError.
func ResolveProfile(tag string) (Profile, error) {
	preset, err := config.ParseDifficultyPreset(tag)
	if err != nil {
		return Profile{}, err
	}
	return profileFor(preset), nil
}

func profileFor(preset config.DifficultyPreset) Profile {
	switch preset {
	case config.DifficultyMedium:
		return Profile{
			Name:       preset,
			BallSpeed:  core.Vec{X: 5, Y: -5},
			RowCount:   6,
			hitPattern: mediumHits,
		}
	case config.DifficultyHard:
		return Profile{
			Name:       preset,
			BallSpeed:  core.Vec{X: 8, Y: -8},
			RowCount:   7,
			hitPattern: hardHits,
		}
	default:
		return Profile{
			Name:       config.DifficultyEasy,
			BallSpeed:  core.Vec{X: 3, Y: -3},
			RowCount:   5,
			hitPattern: easyHits,
		}
	}
}

func easyHits(int) int {
	return 1
}

// mediumHits alternates single and double hit rows.
func mediumHits(row int) int {
	if row%2 == 0 {
		return 1
	}
	return 2
}

// hardHits applies the multiple-of-5 rule last so row 0 ends up at 3.
func hardHits(row int) int {
	hits := 2
	if row%3 == 0 {
		hits = 1
	}
	if row%5 == 0 {
		hits = 3
	}
	return hits
}
