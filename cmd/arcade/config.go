package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reflection-razor/internal/config"
	"github.com/vovakirdan/reflection-razor/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config for a game mode",
	Long: `Prints the built-in default YAML config for a game mode.

Save the output to ~/.arcade/configs/razor.yaml (or pass it with --config)
and edit it to tune the round length, beam speed and difficulty ramp.

Examples:
  arcade config
  arcade config razor > ~/.arcade/configs/razor.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := "razor"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no default config for %q", gameID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
