// arcade runs Reflection Razor, a mirror-and-laser puzzle, in the terminal.
//
// Usage:
//
//	arcade list              - List available game modes
//	arcade play <game>       - Play a game mode
//	arcade menu              - Pick a mode and difficulty interactively
//	arcade config [game]     - Print the default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file (default: no logging)
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/reflection-razor/internal/games/razor"
	"github.com/vovakirdan/reflection-razor/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	logger    = logging.Discard()
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Reflection Razor - bounce a laser off mirrors in your terminal",
	Long: `Reflection Razor is a terminal puzzle arcade game. A laser leaves the
player's cell and bounces off the ring of diagonal mirrors around it.
Flip mirrors and aim to hit the enemy without hitting yourself.

Available commands:
  list     - Show all game modes
  play     - Play a specific mode directly
  menu     - Interactive mode and difficulty picker
  config   - Print the default config

Examples:
  arcade list
  arcade play razor
  arcade play razor_endless --difficulty hard
  arcade menu --log-file ~/.arcade/razor.log --log-level debug`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (empty = no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the shared logger from the global flags.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	l, closer, err := logging.New(logging.Options{Path: flagLogFile, Level: flagLogLevel})
	if err != nil {
		return err
	}
	logger = l
	logCloser = closer
	log.SetDefault(logger)
	return nil
}
