package razor

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/reflection-razor/internal/core"
	"github.com/vovakirdan/reflection-razor/internal/games/razor/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.layout.frame(), platformcore.ColorGray)

	if g.trail != nil {
		g.drawPath(dst, g.trail.beam.Waypoints, platformcore.ColorGray)
	}
	g.renderBoard(dst)
	if g.shot != nil {
		g.renderShot(dst)
	}
	g.renderBursts(dst)
	g.renderCursor(dst)
	g.renderFooter(dst)

	switch {
	case g.gameOver:
		g.renderGameOver(dst)
	case g.paused:
		g.renderPaused(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	minW, minH := g.layout.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and the remaining time.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	frame := g.layout.frame()
	y := frame.Y - 1

	hud := fmt.Sprintf("Score: %02d Time: %02d", g.score, g.secondsLeft())
	if g.mode == ModeEndless {
		hud = fmt.Sprintf("Score: %02d Endless", g.score)
	}
	dst.DrawTextColor(frame.X, y, hud, platformcore.ColorBrightWhite)

	if g.mode == ModeTimed && g.secondsLeft() <= 10 && !g.gameOver {
		dst.DrawTextColor(frame.X+len(hud)-2, y, fmt.Sprintf("%02d", g.secondsLeft()), platformcore.ColorBrightRed)
	}
}

// secondsLeft returns the countdown rounded up to whole seconds.
func (g *Game) secondsLeft() int {
	return int(math.Ceil(g.timeLeft))
}

// renderBoard draws every cell of the field.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	for y := core.HalfSize; y >= -core.HalfSize; y-- {
		for x := -core.HalfSize; x <= core.HalfSize; x++ {
			c := core.C(x, y)
			r, color := g.glyph(g.field.Cell(c))
			if r == ' ' {
				continue
			}
			sx, sy := g.layout.cell(c)
			dst.SetColor(sx, sy, r, color)
		}
	}
}

// glyph returns the rune and color for a cell state.
func (g *Game) glyph(s core.CellState) (rune, platformcore.Color) {
	switch s {
	case core.WallA:
		return '/', platformcore.ColorCyan
	case core.WallB:
		return '\\', platformcore.ColorCyan
	case core.Player:
		if !g.playerAlive {
			return '*', platformcore.ColorRed
		}
		return aimGlyph(g.aim), platformcore.ColorBrightGreen
	case core.Enemy:
		return 'X', platformcore.ColorBrightRed
	case core.SpawnCandidate:
		return '·', platformcore.ColorGray
	default:
		return ' ', platformcore.ColorDefault
	}
}

// aimGlyph returns the arrow pointing along dir.
func aimGlyph(dir core.Vec) rune {
	switch dir {
	case core.Up:
		return '↑'
	case core.Down:
		return '↓'
	case core.Left:
		return '←'
	default:
		return '→'
	}
}

// renderCursor brackets the selected mirror.
func (g *Game) renderCursor(dst *platformcore.Screen) {
	c, err := core.WallSlotCoord(g.cursor)
	if err != nil {
		return
	}
	x, y := g.layout.cell(c)
	dst.SetColor(x-1, y, '[', platformcore.ColorYellow)
	dst.SetColor(x+1, y, ']', platformcore.ColorYellow)
}

// renderShot draws the travelled part of the beam and its head.
func (g *Game) renderShot(dst *platformcore.Screen) {
	s := g.shot
	wp := s.beam.Waypoints
	g.drawPath(dst, wp[:s.segment+1], platformcore.ColorYellow)

	hx, hy := g.layout.project(s.head(g.field))
	g.drawSegment(dst, g.point(wp[s.segment]), [2]int{hx, hy}, platformcore.ColorYellow)

	if g.layout.inside(hx, hy) {
		dst.SetColor(hx, hy, '●', platformcore.ColorBrightYellow)
	}
}

// drawPath draws line segments between consecutive waypoints.
func (g *Game) drawPath(dst *platformcore.Screen, path []core.Coord, color platformcore.Color) {
	for i := 1; i < len(path); i++ {
		from := g.point(path[i-1])
		to := g.point(path[i])
		g.drawSegment(dst, from, to, color)
	}
}

func (g *Game) point(c core.Coord) [2]int {
	x, y := g.layout.cell(c)
	return [2]int{x, y}
}

// drawSegment draws an axis-aligned line on blank cells inside the frame.
// Cell glyphs already on screen are kept.
func (g *Game) drawSegment(dst *platformcore.Screen, from, to [2]int, color platformcore.Color) {
	dx := sign(to[0] - from[0])
	dy := sign(to[1] - from[1])
	r := '─'
	if dx == 0 {
		r = '│'
	}

	x, y := from[0], from[1]
	for {
		if g.layout.inside(x, y) {
			switch dst.Get(x, y) {
			case ' ', '─', '│', '·':
				dst.SetColor(x, y, r, color)
			}
		}
		if x == to[0] && y == to[1] {
			return
		}
		x += dx
		y += dy
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// renderBursts draws expanding rings around recent hits.
func (g *Game) renderBursts(dst *platformcore.Screen) {
	for _, b := range g.bursts {
		x, y := g.layout.cell(b.at)
		radius := 1 + (b.total-b.ticks)*2/b.total
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			px := x + d[0]*radius*int(g.layout.aspect)
			py := y + d[1]*radius
			if g.layout.inside(px, py) {
				dst.SetColor(px, py, '*', b.color)
			}
		}
	}
}

// renderFooter draws the controls hint under the board.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	frame := g.layout.frame()
	hint := "←↑↓→ aim  Space fire  T flip  P pause  Q quit"
	if len([]rune(hint)) > g.screenW {
		hint = "Space fire  T flip  Q quit"
	}
	dst.DrawTextCenteredColor(frame.Bottom(), hint, platformcore.ColorGray)
}

// renderGameOver draws the end-of-round overlay.
func (g *Game) renderGameOver(dst *platformcore.Screen) {
	title := "GAME OVER"
	reason := "Time's up!"
	switch g.endReason {
	case EndSelfHit:
		reason = "You hit yourself!"
	case EndFault:
		reason = "The board jammed"
	}

	y := g.layout.originY - 2
	g.clearBand(dst, y-1, 7)
	dst.DrawTextCenteredColor(y, title, platformcore.ColorBrightRed)
	dst.DrawTextCentered(y+1, reason)
	dst.DrawTextCentered(y+2, fmt.Sprintf("Final Score: %d", g.score))
	if g.promptVisible() {
		dst.DrawTextCenteredColor(y+4, "Press R to play again", platformcore.ColorYellow)
	}
}

// promptBlinkSeconds is how long the replay prompt stays on or off.
const promptBlinkSeconds = 0.5

// promptVisible blinks the replay prompt, starting visible when the round ends.
func (g *Game) promptVisible() bool {
	half := uint64(max(g.secondsToTicks(promptBlinkSeconds), 1))
	return (g.tick-g.overTick)/half%2 == 0
}

// renderPaused draws the pause overlay.
func (g *Game) renderPaused(dst *platformcore.Screen) {
	y := g.layout.originY - 1
	g.clearBand(dst, y-1, 4)
	dst.DrawTextCenteredColor(y, "PAUSED", platformcore.ColorBrightYellow)
	dst.DrawTextCentered(y+1, "Press P to resume")
}

// clearBand blanks rows inside the frame so overlay text stays readable.
func (g *Game) clearBand(dst *platformcore.Screen, y, rows int) {
	frame := g.layout.frame()
	dst.DrawRect(platformcore.NewRect(frame.X+1, y, frame.W-2, rows), ' ')
}
