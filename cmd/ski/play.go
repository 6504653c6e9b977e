package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/platform/tui"
	"github.com/vovakirdan/tui-ski/internal/ski"
	"github.com/vovakirdan/tui-ski/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Ski down the slope",
	Long: `Start a run down the slope.

Controls:
  Left/Right  - Steer (also a/d, h/l)
  Down        - Point straight downhill
  Up          - Stand up after a crash
  Space       - Jump
  P/Esc       - Pause
  Tab         - Leaderboard (while paused or after a run)
  R           - Restart
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start, sparse obstacles, patient yeti
  normal - The standard slope
  hard   - Fast start, dense obstacles, eager yeti
  fixed  - No ramping, the run stays at its starting pace

Examples:
  ski play
  ski play --difficulty hard
  ski play --config ./my-slope.yaml`,
	Run: runPlay,
}

// loadTuning resolves the game config and difficulty flags shared by the
// play and serve commands.
func loadTuning() (config.SkiConfig, error) {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		return tuning, err
	}

	preset := config.DifficultyPreset(flagDifficulty)
	if !config.ValidPreset(preset) {
		return tuning, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if preset != "" {
		config.ApplyPreset(&tuning, preset)
	}

	return tuning, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	atlas, err := ski.LoadAtlas()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sprites: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open the session leaderboard
	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	player := os.Getenv("USER")

	// Run the game
	game := ski.New(atlas, tuning)
	runErr := tui.Run(game, store, cfg, player)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
