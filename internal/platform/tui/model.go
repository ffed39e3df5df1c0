package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-dash/internal/commentary"
	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/games/dash"
	"github.com/vovakirdan/pixel-dash/internal/registry"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

// Deps are the collaborators shared by every session of the process.
// Any of them may be nil.
type Deps struct {
	Store      *storage.Store
	Commentary *commentary.Service
	Logger     *log.Logger
}

type view int

const (
	viewGame view = iota
	viewScores
)

// runSummary is what the game-over panel shows.
type runSummary struct {
	id      int64 // Stored row, 0 when not persisted
	score   int
	reason  string
	comment string
	pending bool
	newBest bool
}

// Model is the Bubble Tea model for running Pixel Dash.
type Model struct {
	game       registry.Game
	deps       Deps
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	view       view
	scoreboard ScoreboardModel
	best       int
	run        runSummary
	runSeq     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		deps:       deps,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
	}
	if deps.Store != nil {
		if best, err := deps.Store.HighScore(game.ID()); err == nil {
			m.best = best
		}
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case CommentMsg:
		return m.handleComment(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view == viewScores {
		return m.updateScoreboard(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionScoreboard:
		if m.gameState.InMenu || m.gameState.GameOver {
			m.scoreboard = NewScoreboardModel(m.deps.Store, m.game.ID(), m.config.ScreenW, m.config.ScreenH)
			m.view = viewScores
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// updateScoreboard forwards a message to the leaderboard and handles leaving it.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}
	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.view = viewGame
		return m, nil
	}
	return m, cmd
}

// handleResize processes window resize events.
// The game projects its playfield onto whatever size the screen has, so
// a resize never resets the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.view == viewScores {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	tick := tickCmd(m.config.TickRate)
	if m.view == viewScores {
		return m, tick
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if ev, ok := result.RunOver(); ok {
		return m, tea.Batch(tick, m.finishRun(ev))
	}
	return m, tick
}

// finishRun persists a finished run and asks for its commentary.
func (m *Model) finishRun(ev core.Event) tea.Cmd {
	m.runSeq++
	m.run = runSummary{score: ev.Score, reason: ev.Reason}
	if ev.Score > m.best {
		m.best = ev.Score
		m.run.newBest = true
	}

	m.deps.Logger.Info("run ended",
		"score", ev.Score,
		"reason", ev.Reason,
		"frames", ev.Stats.Frames,
		"obstacles", ev.Stats.Obstacles,
		"powerups", ev.Stats.PowerUps,
	)

	if m.deps.Store != nil {
		id, err := m.deps.Store.SaveRun(m.game.ID(), storage.Run{
			Score:     ev.Score,
			Reason:    ev.Reason,
			Frames:    ev.Stats.Frames,
			Obstacles: ev.Stats.Obstacles,
			PowerUps:  ev.Stats.PowerUps,
		})
		if err != nil {
			m.deps.Logger.Warn("could not save score", "error", err)
		} else {
			m.run.id = id
		}
	}

	if m.deps.Commentary == nil {
		return nil
	}
	m.run.pending = true
	return commentCmd(m.deps.Commentary, m.runSeq, ev.Score, ev.Reason)
}

// handleComment attaches a remark to the run it was requested for.
func (m Model) handleComment(msg CommentMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.runSeq {
		return m, nil
	}
	m.run.comment = msg.Text
	m.run.pending = false

	if m.deps.Store != nil && m.run.id != 0 {
		if err := m.deps.Store.SetComment(m.run.id, msg.Text); err != nil {
			m.deps.Logger.Warn("could not save comment", "error", err)
		}
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".pixeldash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	content := m.screen.String()
	if g, ok := m.game.(*dash.Game); ok {
		content = dash.Describe(g.Simulation()) + "\n" + content
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.deps.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.deps.Logger.Info("screenshot saved", "path", path)
}

// render draws the game and, after a run, the result panel.
func (m *Model) render() {
	m.game.Render(m.screen)
	if m.gameState.GameOver && m.runSeq > 0 {
		drawRunPanel(m.screen, m.run, m.best)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == viewScores {
		return m.scoreboard.View()
	}

	m.render()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewModel(game, deps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
