// pixeldash is a terminal side-scroller: jump the obstacles, grab the
// power-ups and see how far you get.
//
// Usage:
//
//	pixeldash                - Play (same as "pixeldash play")
//	pixeldash play           - Play a run in this terminal
//	pixeldash scores         - Show the leaderboard and recent runs
//	pixeldash serve          - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.pixeldash/scores.db)
//	--config <path>       - Load game tuning from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Where logs go while the game owns the terminal
//	--mute                - Disable sound
//
// Every flag can also be set in ~/.pixeldash/settings.yaml or through a
// PIXELDASH_* environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-dash/internal/settings"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixeldash",
	Short: "Pixel Dash - a side-scrolling runner for your terminal",
	Long: `Pixel Dash is a side-scrolling runner played in the terminal.

Jump over cacti, rocks and birds, collect power-ups and chase the high
score. After each run an announcer comments on how you did.

Available commands:
  play     - Play a run (default)
  scores   - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  pixeldash
  pixeldash play --difficulty hard
  pixeldash scores --interactive
  pixeldash serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int("fps", 60, "Tick rate (frames per second)")
	pf.Int64("seed", 0, "RNG seed (0 = random based on time)")
	pf.String("db", "~/.pixeldash/scores.db", "Path to scores database")
	pf.String("config", "", "Path to custom game config YAML")
	pf.String("difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-file", "~/.pixeldash/pixeldash.log", "Log file used while playing")
	pf.Bool("mute", false, "Disable sound effects and music")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings resolves defaults, settings.yaml, environment and flags,
// in increasing order of precedence.
func loadSettings(cmd *cobra.Command, _ []string) error {
	if err := settings.Load(settings.Dir()); err != nil {
		return err
	}
	if err := settings.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	return nil
}
