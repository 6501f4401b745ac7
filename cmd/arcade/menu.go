package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reflection-razor/internal/config"
	"github.com/vovakirdan/reflection-razor/internal/platform/tui"
	"github.com/vovakirdan/reflection-razor/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a mode and difficulty picker",
	Long: `Start the arcade in interactive menu mode.

Use Up/Down to pick a mode and Left/Right to pick a difficulty.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Q               - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty easy`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	base, err := config.LoadRazor(flagConfig)
	if err != nil {
		logger.Warn("using default config for preset preview", "error", err)
		base = config.DefaultRazorConfig()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg, base, preset)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = result.Config
		if result.Quit || result.GameID == "" {
			return nil
		}

		preset = result.Difficulty
		configureGames(preset)

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("creating game", "game", result.GameID, "error", err)
			continue
		}

		// Fresh seed for each round unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
