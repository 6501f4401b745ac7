package core

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Field defaults.
const (
	// DefaultCellLength is the side length of one cell in anchor units.
	DefaultCellLength = 120.0

	// MaxSpawnAttempts bounds the random re-rolls when a spawn lands on the
	// previous enemy cell.
	MaxSpawnAttempts = 8

	// WallSlotCount is the number of mirror slots around the player.
	WallSlotCount = 8
)

// Origin is the player's cell.
var Origin = C(0, 0)

// wallSlots maps wall slot indices to coordinates, bottom row first.
var wallSlots = [WallSlotCount]Coord{
	{X: -1, Y: -1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// initialRows is the starting layout, top row first.
var initialRows = [BoardSize][BoardSize]CellState{
	{Empty, SpawnCandidate, SpawnCandidate, SpawnCandidate, Empty},
	{SpawnCandidate, WallA, WallA, WallA, SpawnCandidate},
	{SpawnCandidate, WallA, Player, WallA, SpawnCandidate},
	{SpawnCandidate, WallA, WallA, WallA, SpawnCandidate},
	{Empty, SpawnCandidate, SpawnCandidate, SpawnCandidate, Empty},
}

// Rand is the random source used for enemy placement.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Field owns the board state: walls, player, enemy and spawn candidates.
type Field struct {
	grid       *Grid
	rng        Rand
	logger     *log.Logger
	cellLength float64

	enemy    Coord
	hasEnemy bool
}

// Option configures a Field.
type Option func(*Field)

// WithRand sets the random source for enemy placement.
func WithRand(r Rand) Option {
	return func(f *Field) {
		f.rng = r
	}
}

// WithLogger sets the logger used for spawn diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(f *Field) {
		f.logger = l
	}
}

// WithCellLength sets the per-cell length used by AnchorPosition.
func WithCellLength(length float64) Option {
	return func(f *Field) {
		f.cellLength = length
	}
}

// NewField creates a field with the initial layout and no enemy.
func NewField(opts ...Option) *Field {
	rows := make([][]CellState, BoardSize)
	for i := range initialRows {
		rows[i] = initialRows[i][:]
	}

	f := &Field{
		grid:       NewGridFromRows(rows),
		cellLength: DefaultCellLength,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if f.logger == nil {
		f.logger = log.New(io.Discard)
	}
	return f
}

// Cell returns the state at c. Panics when c is out of range.
func (f *Field) Cell(c Coord) CellState {
	return f.grid.At(ToIndex(c))
}

// SetCell stores a state at c. Panics when c is out of range.
func (f *Field) SetCell(c Coord, s CellState) {
	f.grid.Set(ToIndex(c), s)
}

// IsOutOfRange reports whether c lies outside the board.
func (f *Field) IsOutOfRange(c Coord) bool {
	return IsOutOfRange(c)
}

// AnchorPosition returns the visual anchor of a cell: its coordinate
// scaled by the cell length.
func (f *Field) AnchorPosition(c Coord) Vec2 {
	return Vec2{
		X: float64(c.X) * f.cellLength,
		Y: float64(c.Y) * f.cellLength,
	}
}

// CellLength returns the per-cell length used for anchors.
func (f *Field) CellLength() float64 {
	return f.cellLength
}

// EnemyPosition returns the current enemy cell, if one was spawned.
func (f *Field) EnemyPosition() (Coord, bool) {
	return f.enemy, f.hasEnemy
}

// SpawnEnemy moves the enemy to a random spawn candidate different from
// its previous cell. When the previous cell is the only candidate, the
// enemy stays there.
func (f *Field) SpawnEnemy() (Coord, error) {
	prev, hadEnemy := f.enemy, f.hasEnemy
	if hadEnemy && f.Cell(prev) == Enemy {
		f.SetCell(prev, SpawnCandidate)
	}

	candidates := f.grid.Find(SpawnCandidate)
	if len(candidates) == 0 {
		return Coord{}, ErrNoSpawnCandidate
	}

	target, ok := f.pickSpawn(candidates, prev, hadEnemy)
	if !ok {
		target = f.fallbackSpawn(candidates, prev)
	}

	f.SetCell(target, Enemy)
	f.enemy = target
	f.hasEnemy = true
	f.logger.Debug("enemy spawned", "cell", target, "candidates", len(candidates))
	return target, nil
}

// pickSpawn draws random candidates until one differs from prev.
func (f *Field) pickSpawn(candidates []Index, prev Coord, hadEnemy bool) (Coord, bool) {
	if len(candidates) == 1 {
		c := ToCoord(candidates[0])
		return c, !hadEnemy || c != prev
	}
	for attempt := 1; attempt <= MaxSpawnAttempts; attempt++ {
		c := ToCoord(candidates[f.rng.Intn(len(candidates))])
		if !hadEnemy || c != prev {
			return c, true
		}
		f.logger.Warn("enemy spawn matches previous cell, retrying", "cell", c, "attempt", attempt)
	}
	return Coord{}, false
}

// fallbackSpawn picks among candidates other than prev, or prev itself
// when nothing else is available.
func (f *Field) fallbackSpawn(candidates []Index, prev Coord) Coord {
	others := make([]Coord, 0, len(candidates))
	for _, idx := range candidates {
		if c := ToCoord(idx); c != prev {
			others = append(others, c)
		}
	}
	if len(others) == 0 {
		f.logger.Warn("no alternate spawn cell, keeping previous", "cell", prev)
		return prev
	}
	return others[f.rng.Intn(len(others))]
}

// WallSlotCoord returns the coordinate of a wall slot.
func (f *Field) WallSlotCoord(slot int) (Coord, error) {
	return WallSlotCoord(slot)
}

// WallSlotCoord returns the coordinate of a wall slot (0..7).
func WallSlotCoord(slot int) (Coord, error) {
	if slot < 0 || slot >= WallSlotCount {
		return Coord{}, fmt.Errorf("wall slot %d: %w", slot, ErrInvalidWallSlot)
	}
	return wallSlots[slot], nil
}

// WallSlotAt returns the wall slot located at c.
func WallSlotAt(c Coord) (int, bool) {
	for slot, sc := range wallSlots {
		if sc == c {
			return slot, true
		}
	}
	return 0, false
}

// WallCell returns the mirror type at a wall slot.
func (f *Field) WallCell(slot int) (CellState, error) {
	c, err := WallSlotCoord(slot)
	if err != nil {
		return Empty, err
	}
	return f.Cell(c), nil
}

// ToggleWall flips the mirror at a wall slot between WallA and WallB.
func (f *Field) ToggleWall(slot int) error {
	c, err := WallSlotCoord(slot)
	if err != nil {
		return err
	}

	switch cell := f.Cell(c); cell {
	case WallA:
		f.SetCell(c, WallB)
	case WallB:
		f.SetCell(c, WallA)
	default:
		return fmt.Errorf("wall slot %d at %v holds %v: %w", slot, c, cell, ErrNotWall)
	}
	return nil
}

// Snapshot returns a copy of the underlying grid.
func (f *Field) Snapshot() *Grid {
	return f.grid.Clone()
}
