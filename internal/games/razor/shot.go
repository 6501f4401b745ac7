package razor

import (
	platformcore "github.com/vovakirdan/reflection-razor/internal/core"
	"github.com/vovakirdan/reflection-razor/internal/games/razor/core"
)

// shot animates a traced beam one segment at a time.
type shot struct {
	beam     core.Beam
	segment  int     // Index of the waypoint the head is leaving
	progress float64 // 0..1 along the current segment
}

func newShot(beam core.Beam) *shot {
	return &shot{beam: beam}
}

// advance moves the head forward by delta segments and reports whether the
// beam reached its last waypoint.
func (s *shot) advance(delta float64) bool {
	if s.done() {
		return true
	}
	s.progress += delta
	for s.progress >= 1 {
		s.progress--
		s.segment++
		if s.done() {
			s.progress = 0
			return true
		}
	}
	return false
}

func (s *shot) done() bool {
	return s.segment >= len(s.beam.Waypoints)-1
}

// head returns the interpolated head position in anchor space.
func (s *shot) head(f *core.Field) core.Vec2 {
	wp := s.beam.Waypoints
	if s.done() {
		return f.AnchorPosition(wp[len(wp)-1])
	}
	from := f.AnchorPosition(wp[s.segment])
	to := f.AnchorPosition(wp[s.segment+1])
	return core.Lerp(from, to, s.progress)
}

// trail keeps a finished beam visible for a while.
type trail struct {
	beam  core.Beam
	ticks int
}

func newTrail(beam core.Beam, ticks int) *trail {
	return &trail{beam: beam, ticks: ticks}
}

// burst is a short hit effect drawn around a cell.
type burst struct {
	at    core.Coord
	color platformcore.Color
	ticks int
	total int
}

// addBurst starts a hit effect at the given cell.
func (g *Game) addBurst(at core.Coord, color platformcore.Color) {
	ticks := g.secondsToTicks(g.cfg.Effects.BurstSeconds)
	if ticks <= 0 {
		return
	}
	g.bursts = append(g.bursts, burst{at: at, color: color, ticks: ticks, total: ticks})
}

// updateEffects ages the trail and bursts.
func (g *Game) updateEffects() {
	if g.trail != nil {
		g.trail.ticks--
		if g.trail.ticks <= 0 {
			g.trail = nil
		}
	}

	alive := g.bursts[:0]
	for _, b := range g.bursts {
		b.ticks--
		if b.ticks > 0 {
			alive = append(alive, b)
		}
	}
	g.bursts = alive
}
