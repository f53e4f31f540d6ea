package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "bricks.yaml"

// LoadBricks loads the bricks configuration.
// Search order: customPath -> ~/.bricks/configs/bricks.yaml -> ./configs/bricks.yaml -> embedded default.
// Only a custom path reports read or parse errors; the other locations are
// skipped when missing or broken.
func LoadBricks(customPath string) (BricksConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BricksConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BricksConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultBricksYAML)
	if err != nil {
		return DefaultBricksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so a file only needs the keys
// it changes, then validates the result.
func Parse(data []byte) (BricksConfig, error) {
	cfg := DefaultBricksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BricksConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BricksConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricks", "configs", filename)
}
