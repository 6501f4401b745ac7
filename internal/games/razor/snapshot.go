package razor

import "github.com/vovakirdan/reflection-razor/internal/games/razor/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateFiring      GameStateType = "firing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Score    int
	TimeLeft float64
	Cursor   int
	Aim      core.Vec
	Enemy    core.Coord
	HasEnemy bool
	Grid     *core.Grid
	Beam     []core.Coord // Waypoints of the beam in flight, nil when idle
	Outcome  core.Outcome // Outcome of the beam in flight
	Reason   EndReason
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.shot != nil:
		state = StateFiring
	}

	enemy, hasEnemy := g.field.EnemyPosition()
	snap := Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Score:    g.score,
		TimeLeft: g.timeLeft,
		Cursor:   g.cursor,
		Aim:      g.aim,
		Enemy:    enemy,
		HasEnemy: hasEnemy,
		Grid:     g.field.Snapshot(),
		Reason:   g.endReason,
		State:    state,
	}
	if g.shot != nil {
		snap.Beam = append([]core.Coord(nil), g.shot.beam.Waypoints...)
		snap.Outcome = g.shot.beam.Outcome
	}
	return snap
}
