package config

import (
	_ "embed"
)

//go:embed defaults/ski.yaml
var defaultSkiYAML []byte

// Default returns the default ski configuration. It mirrors
// defaults/ski.yaml and is the fallback if the embedded file cannot be
// parsed.
func Default() SkiConfig {
	return SkiConfig{
		Player: SkiPlayer{
			StartingSpeed: 5,
			Sidestep:      10,
			SpeedUpEvery:  600,
		},
		Jump: SkiJump{
			Frames:        4,
			TicksPerFrame: 12,
		},
		Obstacles: SkiObstacles{
			InitialCount: 40,
			BaseChance:   0.22,
			ChanceStep:   0.04,
			MaxChance:    0.65,
			BoostEvery:   400,
		},
		Yeti: SkiYeti{
			TriggerScore: 2400,
			Speed:        6.5,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default YAML, for `ski config` dumps.
func DefaultYAML() []byte {
	return defaultSkiYAML
}
