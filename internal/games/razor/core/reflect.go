package core

import "fmt"

// Reflect returns the direction of a beam travelling along dir after it
// bounces off a mirror of the given type.
//
// Mirrors sit at 45 degrees, so a reflection only swaps the components:
//
//	WallA "/": (x, y) -> (y, x)
//	WallB "\": (x, y) -> (-y, -x)
func Reflect(dir Vec, wall CellState) (Vec, error) {
	if !dir.IsAxisUnit() {
		return Vec{}, fmt.Errorf("reflect (%d,%d): %w", dir.X, dir.Y, ErrInvalidDirection)
	}

	switch wall {
	case WallA:
		return Vec{X: dir.Y, Y: dir.X}, nil
	case WallB:
		return Vec{X: -dir.Y, Y: -dir.X}, nil
	default:
		return Vec{}, fmt.Errorf("reflect off %v: %w", wall, ErrNotWall)
	}
}
