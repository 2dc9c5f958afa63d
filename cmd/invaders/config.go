package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in game configuration as YAML.

Save the output, edit it, and pass it back with --config.

Examples:
  invaders config > my-invaders.yaml
  invaders play --config my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
