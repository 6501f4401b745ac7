// Package razor implements Reflection Razor: a laser bounces across a 5x5
// board of diagonal mirrors and the player flips mirrors to steer it into
// the enemy without shooting themselves.
package razor

import (
	"errors"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reflection-razor/internal/config"
	platformcore "github.com/vovakirdan/reflection-razor/internal/core"
	"github.com/vovakirdan/reflection-razor/internal/games/razor/core"
	"github.com/vovakirdan/reflection-razor/internal/logging"
	"github.com/vovakirdan/reflection-razor/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeTimed   Mode = "timed"
	ModeEndless Mode = "endless"
)

// EndReason records why a round ended.
type EndReason string

const (
	EndNone    EndReason = ""
	EndTimeUp  EndReason = "time_up"
	EndSelfHit EndReason = "self_hit"
	EndFault   EndReason = "fault"
)

// defaultTickRate is used when the platform does not provide one.
const defaultTickRate = 60

// Game implements the Reflection Razor arcade game.
type Game struct {
	mode       Mode
	cfg        config.RazorConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger
	field      *core.Field

	tick     uint64
	tickRate int
	score    int
	timeLeft float64 // Seconds remaining in a timed round

	cursor int      // Selected wall slot
	aim    core.Vec // Direction the next laser is fired in

	shot   *shot   // Beam currently travelling, nil when idle
	trail  *trail  // Afterglow of the last finished beam
	bursts []burst // Active hit effects

	// Screen dimensions
	screenW int
	screenH int
	layout  layout

	// Game state flags
	playerAlive bool
	gameOver    bool
	endReason   EndReason
	overTick    uint64 // Tick the round ended on
	paused      bool
	tooSmall    bool
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = logging.Discard()
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by new rounds.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

func init() {
	registry.Register("razor", func() registry.Game {
		return New()
	})
	registry.Register("razor_endless", func() registry.Game {
		return NewEndless()
	})
}

// New creates a new timed Reflection Razor game.
func New() *Game {
	return &Game{mode: ModeTimed}
}

// NewEndless creates a game without a countdown; it only ends on a self-hit.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "razor_endless"
	}
	return "razor"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Reflection Razor (Endless)"
	}
	return "Reflection Razor"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.logger = logger.WithPrefix(g.ID())

	gameCfg, err := config.LoadRazor(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		gameCfg = config.DefaultRazorConfig()
	}
	config.ApplyRazorPreset(&gameCfg, difficultyPreset)
	g.cfg = gameCfg
	g.difficulty = config.NewDifficultyManager(gameCfg.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.field = core.NewField(
		core.WithRand(g.rng),
		core.WithLogger(g.logger.WithPrefix("field")),
		core.WithCellLength(gameCfg.Board.CellLength),
	)

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = defaultTickRate
	}
	g.tick = 0
	g.score = 0
	g.timeLeft = gameCfg.Gameplay.TimeLimit
	g.cursor = startSlot
	g.aim = core.Right
	g.shot = nil
	g.trail = nil
	g.bursts = nil
	g.playerAlive = true
	g.gameOver = false
	g.endReason = EndNone
	g.overTick = 0
	g.paused = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout = newLayout(g.field, gameCfg.Board, g.screenW, g.screenH)
	g.checkScreenSize()

	if _, err := g.field.SpawnEnemy(); err != nil {
		g.fault("initial enemy spawn failed", err)
	}
	g.logger.Info("round started", "mode", g.mode, "seed", cfg.Seed, "time_limit", g.cfg.Gameplay.TimeLimit)
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.field == nil {
		return
	}
	g.layout = newLayout(g.field, g.cfg.Board, width, height)
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.layout.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	// Restart is performed by the platform
	if g.gameOver {
		g.updateEffects()
		return platformcore.StepResult{State: g.State()}
	}

	g.handleAim(in)

	if in.Has(platformcore.ActionToggle) {
		g.toggleWall()
	}
	if in.Has(platformcore.ActionFire) {
		g.fire()
	}

	g.updateShot()
	g.updateEffects()
	g.updateTimer()

	return platformcore.StepResult{State: g.State()}
}

// toggleWall flips the mirror under the cursor.
func (g *Game) toggleWall() {
	if err := g.field.ToggleWall(g.cursor); err != nil {
		g.fault("toggle failed", err)
		return
	}
	wall, _ := g.field.WallCell(g.cursor)
	g.logger.Debug("mirror flipped", "slot", g.cursor, "wall", wall)
}

// fire traces a new beam unless one is already in flight.
func (g *Game) fire() {
	if g.shot != nil || g.gameOver {
		return
	}

	beam, err := core.Trace(g.field, core.Origin, g.aim)
	if err != nil {
		g.fault("trace failed", err)
		return
	}

	g.logger.Debug("laser fired", "aim", g.aim, "outcome", beam.Outcome, "steps", beam.Steps, "end", beam.End())
	g.shot = newShot(beam)
	g.trail = nil
}

// updateShot advances the beam animation and resolves it when complete.
func (g *Game) updateShot() {
	if g.shot == nil {
		return
	}

	speed := g.difficulty.Speed(1.0, g.score, g.tick)
	perTick := speed / (g.cfg.Laser.StepSeconds * float64(g.tickRate))
	if !g.shot.advance(perTick) {
		return
	}

	beam := g.shot.beam
	g.shot = nil
	g.trail = newTrail(beam, g.secondsToTicks(g.cfg.Laser.TrailSeconds))
	g.resolve(beam)
}

// resolve applies the outcome of a finished beam.
func (g *Game) resolve(beam core.Beam) {
	switch beam.Outcome {
	case core.OutcomeHitEnemy:
		g.score++
		g.addBurst(beam.End(), platformcore.ColorOrange)
		enemy, err := g.field.SpawnEnemy()
		if err != nil {
			g.fault("enemy respawn failed", err)
			return
		}
		g.logger.Info("enemy destroyed", "score", g.score, "next", enemy)

	case core.OutcomeHitPlayer:
		g.playerAlive = false
		g.addBurst(core.Origin, platformcore.ColorBrightRed)
		g.end(EndSelfHit)

	case core.OutcomeExited:
		g.logger.Debug("laser missed", "exit", beam.End())

	case core.OutcomeStepLimit:
		g.logger.Warn("laser exceeded step limit", "steps", beam.Steps, "end", beam.End())
	}
}

// updateTimer counts down a timed round.
func (g *Game) updateTimer() {
	if g.mode != ModeTimed || g.gameOver {
		return
	}
	g.timeLeft -= 1.0 / float64(g.tickRate)
	if g.timeLeft < 0 {
		g.timeLeft = 0
		// A beam still in flight no longer counts
		g.shot = nil
		g.end(EndTimeUp)
	}
}

// end finishes the round.
func (g *Game) end(reason EndReason) {
	g.gameOver = true
	g.endReason = reason
	g.overTick = g.tick
	g.logger.Info("round over", "reason", reason, "score", g.score, "ticks", g.tick)
}

// fault ends the round after an unexpected core error.
func (g *Game) fault(msg string, err error) {
	level := log.ErrorLevel
	if errors.Is(err, core.ErrNoSpawnCandidate) {
		level = log.WarnLevel
	}
	g.logger.Log(level, msg, "error", err)
	g.end(EndFault)
}

// secondsToTicks converts a duration in seconds to whole ticks.
func (g *Game) secondsToTicks(seconds float64) int {
	return int(seconds*float64(g.tickRate) + 0.5)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
