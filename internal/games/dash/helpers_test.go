package dash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/pixel-dash/internal/config"
	"github.com/vovakirdan/pixel-dash/internal/core"
)

// recorder captures every listener event and audio cue.
type recorder struct {
	scores    []int
	results   []RunResult
	jumps     int
	crashes   int
	collected []PowerUpKind
	modes     []Phase
}

func (r *recorder) ScoreChanged(score int)   { r.scores = append(r.scores, score) }
func (r *recorder) RunEnded(res RunResult)   { r.results = append(r.results, res) }
func (r *recorder) Jump()                    { r.jumps++ }
func (r *recorder) Collect(kind PowerUpKind) { r.collected = append(r.collected, kind) }
func (r *recorder) Crash()                   { r.crashes++ }
func (r *recorder) ModeChanged(phase Phase)  { r.modes = append(r.modes, phase) }

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestSim returns a running simulation wired to a recorder.
func newTestSim(t *testing.T, cfg config.DashConfig) (*Simulation, *recorder, *fakeClock) {
	t.Helper()
	rec := &recorder{}
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewSimulation(cfg, rand.New(rand.NewSource(1)),
		WithListener(rec),
		WithNotifier(rec),
		WithClock(clock.Now),
	)
	s.Start()
	return s, rec, clock
}

// quietConfig disables obstacle and power-up spawning.
func quietConfig() config.DashConfig {
	cfg := config.DefaultDashConfig()
	cfg.Obstacles.InitialCooldown = 1e12
	cfg.PowerUps.Cadence = 0
	return cfg
}

// atPlayer returns a box of the given size whose left edge sits just past
// the player, so that after one frame of scrolling it overlaps the player.
func atPlayer(s *Simulation, w, h float64) core.Box {
	p := s.World().Player
	return core.Box{X: p.X + s.World().Speed, Y: p.Bottom() - h, W: w, H: h}
}
