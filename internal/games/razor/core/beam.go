package core

import "fmt"

// StepLimit bounds the number of cells a beam may enter.
const StepLimit = 10

// Outcome classifies how a beam trace ended.
type Outcome uint8

const (
	OutcomeTraveling Outcome = iota // Not terminal; never returned by Trace
	OutcomeExited                   // Left the board: a miss
	OutcomeHitEnemy                 // Entered the enemy cell
	OutcomeHitPlayer                // Came back to the player
	OutcomeStepLimit                // Still travelling after StepLimit steps
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeTraveling:
		return "Traveling"
	case OutcomeExited:
		return "Exited"
	case OutcomeHitEnemy:
		return "HitEnemy"
	case OutcomeHitPlayer:
		return "HitPlayer"
	case OutcomeStepLimit:
		return "StepLimit"
	default:
		return "Unknown"
	}
}

// Beam is the result of one trace.
type Beam struct {
	// Waypoints starts at the origin and holds one entry per step,
	// including the final cell that ended the trace (which may be off-board).
	Waypoints []Coord
	Outcome   Outcome
	Steps     int
}

// End returns the last waypoint.
func (b Beam) End() Coord {
	return b.Waypoints[len(b.Waypoints)-1]
}

// Trace fires a beam from origin along dir and follows it across the field
// until it leaves the board, hits the enemy or the player, or runs out of
// steps. The field is only read.
func Trace(f *Field, origin Coord, dir Vec) (Beam, error) {
	if !dir.IsAxisUnit() {
		return Beam{}, fmt.Errorf("trace from %v: %w", origin, ErrInvalidDirection)
	}

	beam := Beam{
		Waypoints: make([]Coord, 0, StepLimit+1),
		Outcome:   OutcomeTraveling,
	}
	beam.Waypoints = append(beam.Waypoints, origin)

	pos := origin
	for beam.Steps < StepLimit {
		pos = pos.Add(dir)
		beam.Steps++
		beam.Waypoints = append(beam.Waypoints, pos)

		if f.IsOutOfRange(pos) {
			beam.Outcome = OutcomeExited
			return beam, nil
		}

		switch cell := f.Cell(pos); cell {
		case Enemy:
			beam.Outcome = OutcomeHitEnemy
			return beam, nil
		case Player:
			beam.Outcome = OutcomeHitPlayer
			return beam, nil
		case WallA, WallB:
			next, err := Reflect(dir, cell)
			if err != nil {
				return beam, fmt.Errorf("trace at %v: %w", pos, err)
			}
			dir = next
		}
	}

	beam.Outcome = OutcomeStepLimit
	return beam, nil
}
