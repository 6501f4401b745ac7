package config

import "testing"

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(DefaultRazorConfig().Difficulty)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{15, 0.5},
		{30, 1.0},
		{100, 1.0},
	}

	for _, tt := range tests {
		if got := d.Level(tt.score, 0); got != tt.expected {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	cfg := DefaultRazorConfig().Difficulty
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level(0) = %v, expected 0.5", got)
	}
	if got := d.Level(15, 0); got != 0.75 {
		t.Errorf("Level(15) = %v, expected 0.75", got)
	}

	cfg.InitialLevel = 3
	d = NewDifficultyManager(cfg)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("initial level should clamp to 1.0, got %v", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultRazorConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(1000, 1000); got != 0.3 {
		t.Errorf("Level() = %v, expected fixed 0.3", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 2.0},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 50); got != 0.5 {
		t.Errorf("Level(ticks=50) = %v, expected 0.5", got)
	}
	if got := d.Speed(1.0, 0, 50); got != 2.0 {
		t.Errorf("Speed(ticks=50) = %v, expected 2.0", got)
	}
	if got := d.Speed(1.0, 0, 0); got != 1.0 {
		t.Errorf("Speed(ticks=0) = %v, expected 1.0", got)
	}
}
