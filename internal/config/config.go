// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// RazorConfig contains all configuration for the Reflection Razor game.
type RazorConfig struct {
	Gameplay   RazorGameplay    `yaml:"gameplay"`
	Laser      RazorLaser       `yaml:"laser"`
	Board      RazorBoard       `yaml:"board"`
	Effects    RazorEffects     `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RazorGameplay defines round parameters.
type RazorGameplay struct {
	TimeLimit float64 `yaml:"time_limit"` // Seconds per timed round
}

// RazorLaser defines how the beam is animated.
type RazorLaser struct {
	StepSeconds  float64 `yaml:"step_seconds"`  // Time for the beam head to cross one cell
	TrailSeconds float64 `yaml:"trail_seconds"` // How long the path stays visible after the beam stops
}

// RazorBoard defines how the board is laid out on the terminal.
type RazorBoard struct {
	CellLength float64 `yaml:"cell_length"` // Terminal rows per cell
	Aspect     float64 `yaml:"aspect"`      // Columns per row, compensates for tall glyphs
}

// RazorEffects defines hit effect parameters.
type RazorEffects struct {
	BurstSeconds float64 `yaml:"burst_seconds"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to laser speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
