package razor

import (
	"math"

	"github.com/vovakirdan/reflection-razor/internal/config"
	platformcore "github.com/vovakirdan/reflection-razor/internal/core"
	"github.com/vovakirdan/reflection-razor/internal/games/razor/core"
)

const (
	hudRows    = 1 // Score line above the board
	footerRows = 1 // Controls hint below the board
)

// layout projects anchor positions onto terminal cells.
type layout struct {
	field   *core.Field
	aspect  float64
	originX int // Screen column of the player anchor
	originY int // Screen row of the player anchor
	halfW   int
	halfH   int
}

func newLayout(f *core.Field, board config.RazorBoard, screenW, screenH int) layout {
	aspect := board.Aspect
	if aspect <= 0 {
		aspect = 1
	}

	// The frame reaches half a cell past the outer ring.
	extent := (float64(core.HalfSize) + 0.5) * f.CellLength()
	l := layout{
		field:  f,
		aspect: aspect,
		halfW:  int(math.Round(extent * aspect)),
		halfH:  int(math.Round(extent)),
	}

	top := (screenH - l.frameHeight()) / 2
	if top < hudRows {
		top = hudRows
	}
	l.originX = screenW / 2
	l.originY = top + l.halfH
	return l
}

func (l layout) frameWidth() int  { return 2*l.halfW + 1 }
func (l layout) frameHeight() int { return 2*l.halfH + 1 }

// minSize returns the smallest screen that fits the board, HUD and footer.
func (l layout) minSize() (int, int) {
	return l.frameWidth(), l.frameHeight() + hudRows + footerRows
}

// frame returns the rectangle drawn around the board.
func (l layout) frame() platformcore.Rect {
	return platformcore.NewRect(l.originX-l.halfW, l.originY-l.halfH, l.frameWidth(), l.frameHeight())
}

// inside reports whether a screen cell lies strictly within the frame.
func (l layout) inside(x, y int) bool {
	return l.frame().Inset(1).Contains(x, y)
}

// project converts an anchor position to a screen cell.
func (l layout) project(v core.Vec2) (int, int) {
	x := l.originX + int(math.Round(v.X*l.aspect))
	y := l.originY - int(math.Round(v.Y))
	return x, y
}

// cell returns the screen cell of a board coordinate.
func (l layout) cell(c core.Coord) (int, int) {
	return l.project(l.field.AnchorPosition(c))
}

// slotAt returns the mirror slot closest to a screen position inside the frame.
func (l layout) slotAt(x, y int) (int, bool) {
	if !l.inside(x, y) {
		return 0, false
	}

	best, bestDist := 0, math.Inf(1)
	for slot := 0; slot < core.WallSlotCount; slot++ {
		c, _ := core.WallSlotCoord(slot)
		cx, cy := l.cell(c)
		dx := float64(x-cx) / l.aspect
		dy := float64(y - cy)
		if d := dx*dx + dy*dy; d < bestDist {
			best, bestDist = slot, d
		}
	}
	return best, true
}
