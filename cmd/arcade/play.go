package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reflection-razor/internal/config"
	"github.com/vovakirdan/reflection-razor/internal/core"
	"github.com/vovakirdan/reflection-razor/internal/games/razor"
	"github.com/vovakirdan/reflection-razor/internal/platform/tui"
	"github.com/vovakirdan/reflection-razor/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game mode",
	Long: `Start playing the specified game mode.

Controls:
  Arrows/WASD  - Move the cursor around the mirrors
  Mouse        - Point at a mirror
  Space/Click  - Fire the laser
  T/X/R-Click  - Flip the selected mirror
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 90s rounds, slow beam, progression from the lowest level
  normal - 60s rounds, progression from 30%
  hard   - 45s rounds, fast beam, progression from 70%
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play razor
  arcade play razor --difficulty easy
  arcade play razor_endless --seed 42
  arcade play razor --config ./my-razor.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	configureGames(preset)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// configureGames passes config flags to the game packages before creation.
func configureGames(preset config.DifficultyPreset) {
	razor.SetConfigPath(flagConfig)
	razor.SetDifficultyPreset(preset)
	razor.SetLogger(logger)
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
