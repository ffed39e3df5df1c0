// Package tui provides the Bubble Tea host for Pixel Dash.
// It handles the terminal UI loop, input mapping, score persistence and
// the game-over commentary, locally or over SSH.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-dash/internal/commentary"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// CommentMsg delivers the remark for run Seq.
type CommentMsg struct {
	Seq  int
	Text string
}

// commentCmd fetches a remark off the UI goroutine.
func commentCmd(svc *commentary.Service, seq, score int, reason string) tea.Cmd {
	return func() tea.Msg {
		return CommentMsg{Seq: seq, Text: svc.Comment(context.Background(), score, reason)}
	}
}
