package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-dash/internal/games/dash"
	"github.com/vovakirdan/pixel-dash/internal/platform/tui"
	"github.com/vovakirdan/pixel-dash/internal/settings"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

var (
	flagLimit       int
	flagRecent      bool
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best Pixel Dash runs, or the most recent ones.

Examples:
  pixeldash scores
  pixeldash scores --recent --limit 20
  pixeldash scores --interactive
  pixeldash scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run")
}

func runScores(_ *cobra.Command, _ []string) error {
	s := settings.Current()

	store, err := storage.Open(s.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if moved := store.Quarantined(); moved != "" {
		fmt.Fprintf(os.Stderr, "Warning: scores database was unreadable, moved to %s\n", moved)
	}

	if flagClear {
		if err := store.ClearScores(dash.GameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("All scores deleted.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, dash.GameID, width, height)
	}

	title := "High Scores"
	var entries []storage.ScoreEntry
	if flagRecent {
		title = "Recent Runs"
		entries, err = store.History(dash.GameID, flagLimit)
	} else {
		entries, err = store.TopScores(dash.GameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("%s - Pixel Dash\n", title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pixeldash play' to set the first high score!")
		return nil
	}

	printEntries(entries)

	stats, err := store.GetGameStats(dash.GameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		fmt.Printf("Obstacles cleared: %d   Power-ups: %d\n", stats.TotalObstacles, stats.TotalPowerUps)
	}
	return nil
}

func printEntries(entries []storage.ScoreEntry) {
	fmt.Printf("  %-4s  %-8s  %-16s  %-16s  %s\n", "Rank", "Score", "Cause", "Date", "Comment")
	fmt.Printf("  %-4s  %-8s  %-16s  %-16s  %s\n", "----", "-----", "-----", "----", "-------")

	for i, entry := range entries {
		reason := entry.Reason
		if reason == "" {
			reason = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-16s  %-16s  %s\n",
			i+1,
			entry.Score,
			clip(reason, 16),
			entry.CreatedAt.Format("2006-01-02 15:04"),
			clip(entry.Comment, 48),
		)
	}
}

// clip shortens s to at most n runes.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
