package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns all presets in ascending difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ConfigError reports a difficulty tag outside the known presets.
// It is a caller bug, not a runtime condition to recover from.
type ConfigError struct {
	Tag string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: unknown difficulty %q (want easy, medium or hard)", e.Tag)
}

// ParseDifficultyPreset converts a tag to a preset.
func ParseDifficultyPreset(tag string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == tag {
			return p, nil
		}
	}
	return "", &ConfigError{Tag: tag}
}
