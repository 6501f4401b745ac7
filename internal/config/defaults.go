package config

import (
	_ "embed"
)

//go:embed defaults/razor.yaml
var defaultRazorYAML []byte

// DefaultRazorConfig returns the default Reflection Razor configuration.
func DefaultRazorConfig() RazorConfig {
	return RazorConfig{
		Gameplay: RazorGameplay{
			TimeLimit: 60,
		},
		Laser: RazorLaser{
			StepSeconds:  0.2,
			TrailSeconds: 0.5,
		},
		Board: RazorBoard{
			CellLength: 3,
			Aspect:     2,
		},
		Effects: RazorEffects{
			BurstSeconds: 0.4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "razor", "razor_endless":
		return defaultRazorYAML
	default:
		return nil
	}
}
