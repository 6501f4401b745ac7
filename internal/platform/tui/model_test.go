package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reflection-razor/internal/core"
	"github.com/vovakirdan/reflection-razor/internal/games/razor"
	razorcore "github.com/vovakirdan/reflection-razor/internal/games/razor/core"
)

// recordingGame captures the input frames it is stepped with.
type recordingGame struct {
	frames   []core.InputFrame
	resets   int
	resized  [2]int
	gameOver bool
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.gameOver = false
}
func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	frame.Pointer = in.Pointer
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.State()}
}
func (g *recordingGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "recording") }
func (g *recordingGame) State() core.GameState    { return core.GameState{GameOver: g.gameOver} }
func (g *recordingGame) Resize(width, height int) { g.resized = [2]int{width, height} }

func newTestModel(g *recordingGame) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func TestModelForwardsInputOnTick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = update(t, m, tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))

	if len(g.frames) != 1 {
		t.Fatalf("Step called %d times, expected 1", len(g.frames))
	}
	in := g.frames[0]
	if !in.Has(core.ActionToggle) || !in.Has(core.ActionFire) {
		t.Errorf("frame actions = %v, expected toggle and fire", in.Actions)
	}
	if !in.Pointer.Valid || in.Pointer.X != 3 || in.Pointer.Y != 2 {
		t.Errorf("frame pointer = %+v, expected (3,2)", in.Pointer)
	}

	// Input is cleared between ticks
	update(t, m, TickMsg(time.Now()))
	if len(g.frames[1].Actions) != 0 || g.frames[1].Pointer.Valid {
		t.Errorf("second frame not cleared: %+v", g.frames[1])
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	g.gameOver = true
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	update(t, m, TickMsg(time.Now()))

	if g.resets != 2 {
		t.Errorf("Reset called %d times, expected 2", g.resets)
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", g.resets)
	}
	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v, expected [100 30]", g.resized)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&recordingGame{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestModelHoverAimsRazor(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := razor.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	m.Init()

	// The first arrow from the top is the player; the footer hint comes later.
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	px, py := -1, -1
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if px < 0 && screen.Get(x, y) == '→' {
				px, py = x, y
			}
		}
	}
	if px < 0 {
		t.Fatalf("player arrow not found:\n%s", screen.String())
	}

	// The mirror left of the player, with no button held.
	m = update(t, m, tea.MouseMsg{X: px - 6, Y: py, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	update(t, m, TickMsg(time.Now()))

	snap := g.Snapshot()
	if snap.Cursor != 3 {
		t.Errorf("Cursor = %d, expected 3", snap.Cursor)
	}
	if snap.Aim != razorcore.Left {
		t.Errorf("Aim = %v, expected %v", snap.Aim, razorcore.Left)
	}
}
