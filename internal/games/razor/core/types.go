// Package core provides the grid and reflection logic for Reflection Razor.
// This package is UI-agnostic and deterministic given its random source.
package core

// CellState is the discrete content of one grid cell.
type CellState uint8

const (
	Empty          CellState = iota // Outside the playable ring (corners)
	WallA                           // "/" mirror: (x, y) -> (y, x)
	WallB                           // "\" mirror: (x, y) -> (-y, -x)
	Player                          // Fixed at the board center
	SpawnCandidate                  // May host the enemy on the next spawn
	Enemy                           // Currently hosts the enemy
)

// String returns the string representation of a cell state.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case WallA:
		return "WallA"
	case WallB:
		return "WallB"
	case Player:
		return "Player"
	case SpawnCandidate:
		return "SpawnCandidate"
	case Enemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// IsWall returns true for both mirror variants.
func (s CellState) IsWall() bool {
	return s == WallA || s == WallB
}

// Vec is an integer direction vector. Beams only travel along the four
// unit axis directions.
type Vec struct {
	X int
	Y int
}

// Unit directions in game coordinates (Y grows upward).
var (
	Up    = Vec{X: 0, Y: 1}
	Down  = Vec{X: 0, Y: -1}
	Left  = Vec{X: -1, Y: 0}
	Right = Vec{X: 1, Y: 0}
)

// IsAxisUnit reports whether v is one of (±1, 0) or (0, ±1).
func (v Vec) IsAxisUnit() bool {
	switch v {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// String returns a human-readable name for unit directions.
func (v Vec) String() string {
	switch v {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Invalid"
	}
}

// Vec2 is a continuous position used for placing visuals.
type Vec2 struct {
	X float64
	Y float64
}

// Lerp interpolates between a and b; t is clamped to [0, 1].
func Lerp(a, b Vec2, t float64) Vec2 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
