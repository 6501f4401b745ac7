package razor

import (
	platformcore "github.com/vovakirdan/reflection-razor/internal/core"
	"github.com/vovakirdan/reflection-razor/internal/games/razor/core"
)

// startSlot is the mirror right of the player, matching the initial aim.
const startSlot = 4

// aimSlots maps the four orthogonal mirror slots to the direction the laser
// is fired in while the cursor rests on them.
var aimSlots = map[int]core.Vec{
	1: core.Down,
	3: core.Left,
	4: core.Right,
	6: core.Up,
}

// moveVectors maps movement actions to board directions.
var moveVectors = []struct {
	action platformcore.Action
	dir    core.Vec
}{
	{platformcore.ActionUp, core.Up},
	{platformcore.ActionDown, core.Down},
	{platformcore.ActionLeft, core.Left},
	{platformcore.ActionRight, core.Right},
}

// handleAim applies pointer and movement input to the cursor.
func (g *Game) handleAim(in platformcore.InputFrame) {
	if in.Pointer.Valid {
		if slot, ok := g.layout.slotAt(in.Pointer.X, in.Pointer.Y); ok {
			g.selectSlot(slot)
		}
	}

	for _, m := range moveVectors {
		if in.Has(m.action) {
			g.selectSlot(nextSlot(g.cursor, m.dir))
		}
	}
}

// selectSlot moves the cursor and updates the aim when the slot is orthogonal.
func (g *Game) selectSlot(slot int) {
	g.cursor = slot
	if dir, ok := aimSlots[slot]; ok {
		g.aim = dir
	}
}

// nextSlot returns the slot reached by moving from slot in dir.
// Moving onto the player jumps over it; moving off the ring stays put.
func nextSlot(slot int, dir core.Vec) int {
	from, err := core.WallSlotCoord(slot)
	if err != nil {
		return slot
	}

	to := from.Add(dir)
	if to == core.Origin {
		to = to.Add(dir)
	}
	if next, ok := core.WallSlotAt(to); ok {
		return next
	}
	return slot
}
