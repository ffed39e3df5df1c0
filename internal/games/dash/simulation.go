package dash

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/pixel-dash/internal/config"
)

// options collects the capabilities injected into a Simulation.
type options struct {
	listener Listener
	notifier Notifier
	now      func() time.Time
}

// Option configures a Simulation or Game.
type Option func(*options)

// WithListener routes score and run-ended events to l.
func WithListener(l Listener) Option {
	return func(o *options) {
		if l != nil {
			o.listener = l
		}
	}
}

// WithNotifier routes audio cues to n.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		if n != nil {
			o.notifier = n
		}
	}
}

// WithClock replaces the wall clock used by the trail effect.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		listener: NopListener{},
		notifier: NopNotifier{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Simulation owns the world of one player and advances it one frame per Tick.
// It is not safe for concurrent use; the host calls it from its frame loop.
type Simulation struct {
	rules
	world    World
	phase    Phase
	listener Listener
	notifier Notifier
}

// NewSimulation creates a simulation idling in the menu phase.
// A nil rng is replaced by a time-seeded one.
func NewSimulation(cfg config.DashConfig, rng *rand.Rand, opts ...Option) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	o := buildOptions(opts)

	s := &Simulation{
		rules: rules{
			cfg:  cfg,
			diff: config.NewDifficultyManager(cfg.Difficulty),
			rng:  rng,
			now:  o.now,
		},
		phase:    PhaseMenu,
		listener: o.listener,
		notifier: o.notifier,
	}
	s.resetWorld()
	return s
}

// resetWorld restores run-start defaults.
func (s *Simulation) resetWorld() {
	s.world.reset()
	s.world.Player = s.spawnPlayer()
	s.world.Speed = s.diff.StartSpeed(s.cfg.Physics.InitialSpeed)
	s.world.SpawnCooldown = s.cfg.Obstacles.InitialCooldown
}

// Start begins a fresh run, from any phase.
func (s *Simulation) Start() {
	s.resetWorld()
	s.phase = PhaseRunning
	s.notifier.ModeChanged(PhaseRunning)
	s.listener.ScoreChanged(0)
}

// StopToMenu abandons the current run and returns to the menu.
func (s *Simulation) StopToMenu() {
	s.resetWorld()
	s.phase = PhaseMenu
	s.notifier.ModeChanged(PhaseMenu)
}

// Jump requests a jump. It reports whether the jump was taken;
// requests outside a run or while airborne are ignored.
func (s *Simulation) Jump() bool {
	if s.phase != PhaseRunning {
		return false
	}
	if !s.jump(&s.world) {
		return false
	}
	s.notifier.Jump()
	return true
}

// Tick advances one frame when both the host and the simulation consider
// the run active. It reports whether a frame was simulated.
func (s *Simulation) Tick(observed Phase) bool {
	if observed != PhaseRunning || s.phase != PhaseRunning {
		return false
	}

	w := &s.world
	w.Frame++

	s.advancePlayer(w)
	w.Speed += s.diff.SpeedStep(s.cfg.Physics.SpeedStep)
	effective := s.effectiveSpeed(w)

	s.spawnObstacles(w, effective)
	s.spawnPowerUps(w)

	if killer, dead := s.resolveObstacles(w, effective, s.notifier); dead {
		s.end(killer.Shape.DeathReason())
		return true
	}
	s.resolvePowerUps(w, effective, s.notifier)

	s.advanceParticles(w)
	s.emitStatusTrail(w)

	w.Score += effective / s.cfg.Scoring.DistanceDivisor
	if w.Frame%s.cfg.Scoring.SnapshotEvery == 0 {
		s.listener.ScoreChanged(s.Score())
	}
	return true
}

// end finishes the run and publishes its result once.
func (s *Simulation) end(reason string) {
	s.phase = PhaseEnded
	w := &s.world
	s.listener.RunEnded(RunResult{
		Score:            s.Score(),
		Reason:           reason,
		Frames:           w.Frame,
		ObstaclesCleared: w.ObstaclesCleared,
		PowerUps:         w.PowerUpsCollected,
	})
	s.notifier.ModeChanged(PhaseEnded)
}

// Score returns the accumulated score truncated to an integer.
func (s *Simulation) Score() int {
	return int(math.Floor(s.world.Score))
}

// Phase returns the simulation's own phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// World exposes the current state for rendering. Callers must not mutate it.
func (s *Simulation) World() *World {
	return &s.world
}

// EffectiveSpeed returns the scroll distance of the current frame.
func (s *Simulation) EffectiveSpeed() float64 {
	return s.effectiveSpeed(&s.world)
}

// Level returns the difficulty level shown on the HUD.
func (s *Simulation) Level() float64 {
	return s.diff.Level(s.Score(), s.world.Frame)
}

// Config returns the tuning the simulation runs with.
func (s *Simulation) Config() config.DashConfig {
	return s.cfg
}
