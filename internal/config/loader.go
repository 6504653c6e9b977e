package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the ski configuration.
// Search order: customPath -> ~/.tui-ski/config.yaml -> ./configs/ski.yaml -> embedded default
func Load(customPath string) (SkiConfig, error) {
	var cfg SkiConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/ski.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSkiYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-ski", filename)
}

// ApplyPreset overwrites the tuning knobs a preset controls. The zero-value
// and "normal" presets leave the config untouched.
func ApplyPreset(cfg *SkiConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset

	switch preset {
	case DifficultyEasy:
		cfg.Player.StartingSpeed = 4
		cfg.Player.SpeedUpEvery = 900
		cfg.Obstacles.BaseChance = 0.15
		cfg.Obstacles.BoostEvery = 600
		cfg.Yeti.TriggerScore = 4000

	case DifficultyHard:
		cfg.Player.StartingSpeed = 6
		cfg.Player.SpeedUpEvery = 450
		cfg.Obstacles.BaseChance = 0.3
		cfg.Obstacles.MaxChance = 0.8
		cfg.Obstacles.BoostEvery = 300
		cfg.Yeti.TriggerScore = 1500
		cfg.Yeti.Speed = 7.5

	case DifficultyFixed:
		// Flat run: nothing ramps, the yeti still shows up
		cfg.Player.SpeedUpEvery = 0
		cfg.Obstacles.BoostEvery = 0
	}
}
