// Package config provides YAML-based configuration loading and difficulty
// presets for the skiing game.
package config

import "fmt"

// SkiConfig contains all tunables for a run down the slope.
type SkiConfig struct {
	Player     SkiPlayer        `yaml:"player"`
	Jump       SkiJump          `yaml:"jump"`
	Obstacles  SkiObstacles     `yaml:"obstacles"`
	Yeti       SkiYeti          `yaml:"yeti"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// SkiPlayer defines the skier's movement parameters.
type SkiPlayer struct {
	// StartingSpeed is the downhill speed, in world units per tick, at the
	// start of a run and after standing up from a crash.
	StartingSpeed float64 `yaml:"starting_speed"`

	// Sidestep is the fixed horizontal (or uphill) nudge, in world units,
	// applied when the skier shuffles while stopped sideways.
	Sidestep float64 `yaml:"sidestep"`

	// SpeedUpEvery is the score interval at which speed increases by one.
	// Zero disables the ramp.
	SpeedUpEvery int `yaml:"speed_up_every"`
}

// SkiJump defines the jump animation timing.
type SkiJump struct {
	Frames        int `yaml:"frames"`          // Airborne sprite frames per jump
	TicksPerFrame int `yaml:"ticks_per_frame"` // Simulation ticks each frame is held
}

// SkiObstacles defines slope population parameters.
type SkiObstacles struct {
	// InitialCount is how many obstacles are scattered across the first
	// viewport when a run starts.
	InitialCount int `yaml:"initial_count"`

	// BaseChance is the per-tick probability of dropping one obstacle into
	// freshly revealed terrain.
	BaseChance float64 `yaml:"base_chance"`

	// ChanceStep is how much the spawn chance grows per difficulty bump.
	ChanceStep float64 `yaml:"chance_step"`

	// MaxChance caps the spawn chance.
	MaxChance float64 `yaml:"max_chance"`

	// BoostEvery is the score interval at which the spawn chance is bumped.
	// Zero disables the ramp.
	BoostEvery int `yaml:"boost_every"`
}

// SkiYeti defines the pursuer.
type SkiYeti struct {
	// TriggerScore is the score at which the yeti wakes up and gives chase.
	TriggerScore int `yaml:"trigger_score"`

	// Speed is the yeti's pace in world units per tick.
	Speed float64 `yaml:"speed"`
}

// DifficultyPreset names a bundled set of tuning overrides.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No ramps: speed and spawn chance stay flat
)

// ValidPreset reports whether the preset name is one we know.
func ValidPreset(p DifficultyPreset) bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed, "":
		return true
	}
	return false
}

// Validate checks the config for values the simulation cannot run with.
func (c SkiConfig) Validate() error {
	if c.Player.StartingSpeed <= 0 {
		return fmt.Errorf("player.starting_speed must be positive, got %v", c.Player.StartingSpeed)
	}
	if c.Player.Sidestep < 0 {
		return fmt.Errorf("player.sidestep must not be negative, got %v", c.Player.Sidestep)
	}
	if c.Player.SpeedUpEvery < 0 {
		return fmt.Errorf("player.speed_up_every must not be negative, got %d", c.Player.SpeedUpEvery)
	}
	if c.Jump.Frames < 1 {
		return fmt.Errorf("jump.frames must be at least 1, got %d", c.Jump.Frames)
	}
	if c.Jump.TicksPerFrame < 1 {
		return fmt.Errorf("jump.ticks_per_frame must be at least 1, got %d", c.Jump.TicksPerFrame)
	}
	if c.Obstacles.InitialCount < 0 {
		return fmt.Errorf("obstacles.initial_count must not be negative, got %d", c.Obstacles.InitialCount)
	}
	if c.Obstacles.BaseChance < 0 || c.Obstacles.BaseChance > 1 {
		return fmt.Errorf("obstacles.base_chance must be in [0, 1], got %v", c.Obstacles.BaseChance)
	}
	if c.Obstacles.MaxChance < c.Obstacles.BaseChance || c.Obstacles.MaxChance > 1 {
		return fmt.Errorf("obstacles.max_chance must be in [base_chance, 1], got %v", c.Obstacles.MaxChance)
	}
	if c.Obstacles.ChanceStep < 0 {
		return fmt.Errorf("obstacles.chance_step must not be negative, got %v", c.Obstacles.ChanceStep)
	}
	if c.Obstacles.BoostEvery < 0 {
		return fmt.Errorf("obstacles.boost_every must not be negative, got %d", c.Obstacles.BoostEvery)
	}
	if c.Yeti.TriggerScore < 0 {
		return fmt.Errorf("yeti.trigger_score must not be negative, got %d", c.Yeti.TriggerScore)
	}
	if c.Yeti.Speed < 0 {
		return fmt.Errorf("yeti.speed must not be negative, got %v", c.Yeti.Speed)
	}
	if !ValidPreset(c.Difficulty) {
		return fmt.Errorf("unknown difficulty preset %q", c.Difficulty)
	}
	return nil
}
