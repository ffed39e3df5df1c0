package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-dash/internal/audio"
	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/games/dash"
	"github.com/vovakirdan/pixel-dash/internal/platform/tui"
	"github.com/vovakirdan/pixel-dash/internal/settings"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start Pixel Dash in this terminal.

Controls:
  Space/Up/W  - Jump (also starts a run)
  Enter       - Start / play again
  P           - Pause
  R           - Restart after game over
  B/Esc       - Back to the title screen
  Tab         - Leaderboard (title and game-over screens)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Wider gaps between obstacles
  normal - The default tuning
  hard   - Faster start, tighter gaps
  fixed  - No speed progression

Examples:
  pixeldash play
  pixeldash play --difficulty hard
  pixeldash play --seed 42 --mute
  pixeldash play --config ./my-dash.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s := settings.Current()

	// The TUI owns stdout, so logs go to a file while playing.
	logOut := os.Stderr
	if s.LogFile != "" {
		f, err := openLogFile(s.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, s.LogLevel)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.FPS,
		Seed:     s.Seed,
	}

	dash.SetConfigPath(s.ConfigPath)
	dash.SetDifficultyPreset(s.Difficulty)
	if _, err := dash.LoadConfig(); err != nil {
		logger.Warn("invalid game config, using defaults", "path", s.ConfigPath, "error", err)
	}

	deps := newDeps(s, logger)
	if deps.Store != nil {
		defer deps.Store.Close()
	}

	player := newPlayer(s.Mute, logger)
	defer player.Cleanup()

	dash.SetOptions(dashOptions(newRecorder(logger), player)...)
	game, err := newGame()
	if err != nil {
		return err
	}

	logger.Info("starting run", "seed", cfg.Seed, "difficulty", s.Difficulty, "fps", cfg.TickRate)
	return tui.Run(game, deps, cfg)
}

// newPlayer opens the audio device. Without one the game stays silent.
func newPlayer(muted bool, logger *log.Logger) *audio.Player {
	player := audio.NewPlayer()
	player.SetMuted(muted)
	if muted {
		return player
	}
	if err := player.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	return player
}
