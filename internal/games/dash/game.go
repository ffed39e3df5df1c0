// Package dash implements Pixel Dash, a side-scrolling runner where the
// player jumps obstacles and collects power-ups that stack timed effects.
package dash

import (
	"math/rand"

	"github.com/vovakirdan/pixel-dash/internal/config"
	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "dash"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// hostOptions are applied to every game the registry builds.
var hostOptions []Option

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetOptions sets the options registry-built games start with. Call it
// before the host creates any game.
func SetOptions(opts ...Option) {
	hostOptions = opts
}

// LoadConfig resolves the tuning for a new session, applying the preset.
func LoadConfig() (config.DashConfig, error) {
	cfg, err := config.LoadDash(configPath)
	if err != nil {
		cfg = config.DefaultDashConfig()
	}
	config.ApplyDashPreset(&cfg, difficultyPreset)
	return cfg, err
}

// eventBuffer collects simulation events between host steps.
type eventBuffer struct {
	events []core.Event
}

func (b *eventBuffer) ScoreChanged(score int) {
	b.events = append(b.events, core.Event{Kind: core.EventScore, Score: score})
}

func (b *eventBuffer) RunEnded(result RunResult) {
	b.events = append(b.events, core.Event{
		Kind:   core.EventRunOver,
		Score:  result.Score,
		Reason: result.Reason,
		Stats: core.RunStats{
			Frames:    result.Frames,
			Obstacles: result.ObstaclesCleared,
			PowerUps:  result.PowerUps,
		},
	})
}

func (b *eventBuffer) drain() []core.Event {
	if len(b.events) == 0 {
		return nil
	}
	out := b.events
	b.events = nil
	return out
}

// Game adapts a Simulation to the registry host contract: it maps input
// frames onto simulation commands and reports events through StepResult.
type Game struct {
	sim     *Simulation
	runtime core.RuntimeConfig
	opts    options
	buf     eventBuffer
	paused  bool
}

// New creates a new Pixel Dash game instance.
func New(opts ...Option) *Game {
	return &Game{opts: buildOptions(opts)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pixel Dash"
}

// Reset loads the tuning and returns the game to its title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, _ := LoadConfig() // falls back to defaults

	g.buf = eventBuffer{}
	g.paused = false
	g.sim = NewSimulation(cfg, rand.New(rand.NewSource(runtime.Seed)),
		WithListener(Listeners{&g.buf, g.opts.listener}),
		WithNotifier(g.opts.notifier),
		WithClock(g.opts.now),
	)
	g.opts.notifier.ModeChanged(PhaseMenu)
}

// Step maps the input frame onto commands and advances one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.sim.Phase() {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.sim.Start()
		}

	case PhaseEnded:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.sim.Start()
		} else if in.Has(core.ActionBack) {
			g.sim.StopToMenu()
		}

	case PhaseRunning:
		switch {
		case in.Has(core.ActionBack):
			g.paused = false
			g.sim.StopToMenu()
		case in.Has(core.ActionRestart):
			g.paused = false
			g.sim.Start()
		case in.Has(core.ActionPause):
			g.paused = !g.paused
		case in.Has(core.ActionJump) && !g.paused:
			g.sim.Jump()
		}
	}

	g.sim.Tick(g.observedPhase())
	return core.StepResult{State: g.State(), Events: g.buf.drain()}
}

// observedPhase is the phase the host shows, which differs from the
// simulation's only while paused.
func (g *Game) observedPhase() Phase {
	if g.paused && g.sim.Phase() == PhaseRunning {
		return PhasePaused
	}
	return g.sim.Phase()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.sim.Phase()
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: phase == PhaseEnded,
		Paused:   g.paused && phase == PhaseRunning,
		InMenu:   phase == PhaseMenu,
	}
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(hostOptions...)
	})
}
