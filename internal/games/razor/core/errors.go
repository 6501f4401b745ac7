package core

import "errors"

var (
	// ErrInvalidWallSlot is returned for wall slot indices outside 0..7.
	ErrInvalidWallSlot = errors.New("invalid wall slot")

	// ErrNotWall is returned when a mirror operation targets a non-wall cell
	// or reflection is asked for a non-wall cell state.
	ErrNotWall = errors.New("cell is not a wall")

	// ErrInvalidDirection is returned when a direction is not a unit axis vector.
	ErrInvalidDirection = errors.New("direction must be a unit axis vector")

	// ErrNoSpawnCandidate is returned when no cell can host the enemy.
	ErrNoSpawnCandidate = errors.New("no spawn candidate available")
)
