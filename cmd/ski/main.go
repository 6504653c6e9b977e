// ski is an endless skiing game for the terminal.
//
// Usage:
//
//	ski play     - Ski down the slope
//	ski serve    - Start SSH server for remote play
//	ski config   - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ski",
	Short: "Ski - Outrun the yeti in your terminal",
	Long: `Ski is an endless terminal skiing game. Steer down the slope,
dodge trees and rocks, hit ramps for air, and keep moving once
the yeti wakes up.

Running ski without a subcommand starts a run, same as 'ski play'.

Available commands:
  play     - Ski down the slope
  serve    - Start SSH server for remote play
  config   - Print the default game config

Examples:
  ski
  ski play --difficulty hard
  ski serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
