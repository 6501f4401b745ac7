package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "razor.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	chdir(t, tmp)

	cfg, err := LoadRazor("")
	if err != nil {
		t.Fatalf("LoadRazor() failed: %v", err)
	}
	if cfg != DefaultRazorConfig() {
		t.Errorf("embedded defaults differ from DefaultRazorConfig():\n%+v\n%+v", cfg, DefaultRazorConfig())
	}
	if len(GetDefaultYAML("razor")) == 0 {
		t.Error("GetDefaultYAML(razor) should return embedded YAML")
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("GetDefaultYAML should return nil for unknown games")
	}
}

func TestLoadRazorCustomPathPartialOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "gameplay:\n  time_limit: 30\nlaser:\n  step_seconds: 0.1\n")

	cfg, err := LoadRazor(path)
	if err != nil {
		t.Fatalf("LoadRazor() failed: %v", err)
	}
	if cfg.Gameplay.TimeLimit != 30 {
		t.Errorf("TimeLimit = %v, expected 30", cfg.Gameplay.TimeLimit)
	}
	if cfg.Laser.StepSeconds != 0.1 {
		t.Errorf("StepSeconds = %v, expected 0.1", cfg.Laser.StepSeconds)
	}
	// Untouched sections keep defaults
	if cfg.Board != DefaultRazorConfig().Board {
		t.Errorf("Board = %+v, expected defaults", cfg.Board)
	}
}

func TestLoadRazorLocalConfigDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	chdir(t, tmp)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	writeConfig(t, "configs", "gameplay:\n  time_limit: 15\n")

	cfg, err := LoadRazor("")
	if err != nil {
		t.Fatalf("LoadRazor() failed: %v", err)
	}
	if cfg.Gameplay.TimeLimit != 15 {
		t.Errorf("TimeLimit = %v, expected 15 from ./configs", cfg.Gameplay.TimeLimit)
	}
}

func TestLoadRazorErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRazor(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := writeConfig(t, dir, "gameplay: [not, a, map]\n")
	if _, err := LoadRazor(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := writeConfig(t, dir, "gameplay:\n  time_limit: -1\nboard:\n  aspect: 0\n")
	_, err := LoadRazor(invalid)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "time_limit") || !strings.Contains(err.Error(), "aspect") {
		t.Errorf("validation error should name every bad field, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if got, err := ParsePreset(""); err != nil || got != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected no preset", got, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestApplyRazorPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		initial   float64
		timeLimit float64
	}{
		{DifficultyEasy, true, 0.0, 90},
		{DifficultyNormal, true, 0.3, 60},
		{DifficultyHard, true, 0.7, 45},
		{DifficultyFixed, false, 0.0, 60},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultRazorConfig()
			ApplyRazorPreset(&cfg, tt.preset)

			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.initial)
			}
			if cfg.Gameplay.TimeLimit != tt.timeLimit {
				t.Errorf("TimeLimit = %v, expected %v", cfg.Gameplay.TimeLimit, tt.timeLimit)
			}
		})
	}

	cfg := DefaultRazorConfig()
	ApplyRazorPreset(&cfg, "")
	if cfg != DefaultRazorConfig() {
		t.Error("empty preset should leave the config untouched")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
