package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRazor loads Reflection Razor configuration.
// Search order: customPath -> ~/.arcade/configs/razor.yaml -> ./configs/razor.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadRazor(customPath string) (RazorConfig, error) {
	cfg := DefaultRazorConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("razor.yaml"), filepath.Join("configs", "razor.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRazorYAML, &cfg); err != nil {
		return DefaultRazorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (RazorConfig, bool) {
	cfg := DefaultRazorConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that all parameters are usable.
func (c RazorConfig) Validate() error {
	var errs []error
	if c.Gameplay.TimeLimit <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.time_limit must be positive, got %v", c.Gameplay.TimeLimit))
	}
	if c.Laser.StepSeconds <= 0 {
		errs = append(errs, fmt.Errorf("laser.step_seconds must be positive, got %v", c.Laser.StepSeconds))
	}
	if c.Laser.TrailSeconds < 0 {
		errs = append(errs, fmt.Errorf("laser.trail_seconds must not be negative, got %v", c.Laser.TrailSeconds))
	}
	if c.Board.CellLength < 1 {
		errs = append(errs, fmt.Errorf("board.cell_length must be at least 1, got %v", c.Board.CellLength))
	}
	if c.Board.Aspect <= 0 {
		errs = append(errs, fmt.Errorf("board.aspect must be positive, got %v", c.Board.Aspect))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

// ParsePreset converts a flag value to a difficulty preset.
// An empty value means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyRazorPreset modifies the config based on a difficulty preset.
func ApplyRazorPreset(cfg *RazorConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust round length based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.TimeLimit = 90
		cfg.Laser.StepSeconds = 0.25
	case DifficultyHard:
		cfg.Gameplay.TimeLimit = 45
		cfg.Laser.StepSeconds = 0.15
	}
}
