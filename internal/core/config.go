package core

// RuntimeConfig is what the platform hands the game at reset time.
// The game adapts to screen size from it and seeds its RNG from Seed,
// so an identical config replays an identical run.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the game's externally visible status, returned by State()
// for the platform to schedule ticks and persist finished runs.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the simulation is frozen
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
