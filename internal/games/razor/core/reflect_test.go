package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/reflection-razor/internal/games/razor/core"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		dir      core.Vec
		wall     core.CellState
		expected core.Vec
	}{
		{"left off A", core.Left, core.WallA, core.Down},
		{"right off A", core.Right, core.WallA, core.Up},
		{"down off A", core.Down, core.WallA, core.Left},
		{"up off A", core.Up, core.WallA, core.Right},
		{"left off B", core.Left, core.WallB, core.Up},
		{"right off B", core.Right, core.WallB, core.Down},
		{"down off B", core.Down, core.WallB, core.Right},
		{"up off B", core.Up, core.WallB, core.Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := core.Reflect(tt.dir, tt.wall)
			if err != nil {
				t.Fatalf("Reflect(%v, %v) error: %v", tt.dir, tt.wall, err)
			}
			if got != tt.expected {
				t.Errorf("Reflect(%v, %v) = %v, want %v", tt.dir, tt.wall, got, tt.expected)
			}
		})
	}
}

func TestReflectRejectsInvalidDirection(t *testing.T) {
	for _, dir := range []core.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: -1, Y: -1}} {
		if _, err := core.Reflect(dir, core.WallA); !errors.Is(err, core.ErrInvalidDirection) {
			t.Errorf("Reflect(%v) error = %v, want ErrInvalidDirection", dir, err)
		}
	}
}

func TestReflectRejectsNonWall(t *testing.T) {
	for _, cell := range []core.CellState{core.Empty, core.Player, core.SpawnCandidate, core.Enemy} {
		if _, err := core.Reflect(core.Right, cell); !errors.Is(err, core.ErrNotWall) {
			t.Errorf("Reflect off %v error = %v, want ErrNotWall", cell, err)
		}
	}
}
