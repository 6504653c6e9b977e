package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ski/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Prints the default slope tuning as YAML.

Save it and edit to taste; the game picks it up from
~/.tui-ski/config.yaml or via --config.

Example:
  mkdir -p ~/.tui-ski && ski config > ~/.tui-ski/config.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
