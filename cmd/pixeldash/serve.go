package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-dash/internal/games/dash"
	"github.com/vovakirdan/pixel-dash/internal/platform/tui"
	"github.com/vovakirdan/pixel-dash/internal/registry"
	"github.com/vovakirdan/pixel-dash/internal/settings"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pixel Dash SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own run. Scores are stored per-server
(all users share the same leaderboard). Sessions have no sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pixeldash/host_key

Examples:
  pixeldash serve                           # Listen on :23234 with auto-generated key
  pixeldash serve --ssh :2222               # Listen on port 2222
  pixeldash serve --host-key ./my_host_key  # Use specific host key
  pixeldash serve --idle-timeout 10m        # Drop idle players sooner

Users can connect with:
  ssh -t localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().String("host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().Duration("idle-timeout", 0, "Idle timeout before disconnecting (default 30m)")
}

func runServe(_ *cobra.Command, _ []string) error {
	s := settings.Current()

	// The server has no TUI of its own, so it logs to stderr.
	logger := newLogger(os.Stderr, s.LogLevel)

	dash.SetConfigPath(s.ConfigPath)
	dash.SetDifficultyPreset(s.Difficulty)
	if _, err := dash.LoadConfig(); err != nil {
		logger.Warn("invalid game config, using defaults", "path", s.ConfigPath, "error", err)
	}

	deps := newDeps(s, logger)
	if deps.Store != nil {
		defer deps.Store.Close()
	}

	rec := newRecorder(logger)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = s.SSHAddr
	cfg.HostKeyPath = settings.ExpandHome(s.HostKeyPath)
	if s.IdleTimeout > 0 {
		cfg.IdleTimeout = s.IdleTimeout
	}
	if s.FPS > 0 {
		cfg.TickRate = s.FPS
	}
	dash.SetOptions(dashOptions(rec)...)
	if _, err := newGame(); err != nil {
		return err
	}
	cfg.NewGame = func() registry.Game {
		// Checked above, so Create cannot fail here.
		game, _ := registry.Create(dash.GameID)
		return game
	}

	server, err := tui.NewSSHServer(cfg, deps)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Pixel Dash SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
