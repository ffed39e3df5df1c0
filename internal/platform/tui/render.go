package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPink:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

const (
	panelMaxWidth = 60
	pendingText   = "The announcer is thinking..."
)

// wrapText breaks text into lines no wider than width.
func wrapText(text string, width int) []string {
	if width <= 0 || text == "" {
		return nil
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// drawRunPanel draws cause of death, best score and commentary below the
// game-over message.
func drawRunPanel(dst *core.Screen, run runSummary, best int) {
	w, h := dst.Width(), dst.Height()
	panelW := min(w-4, panelMaxWidth)
	if panelW < 12 {
		return
	}

	var lines []string
	commentColor := core.ColorBrightCyan
	switch {
	case run.pending:
		lines, commentColor = wrapText(pendingText, panelW-4), core.ColorGray
	case run.comment != "":
		lines = wrapText("\""+run.comment+"\"", panelW-4)
	}

	bestLine := fmt.Sprintf("Best: %d", best)
	if run.newBest {
		bestLine += "  NEW RECORD!"
	}

	panelH := 4 + len(lines)
	if len(lines) > 0 {
		panelH++
	}
	x := (w - panelW) / 2
	y := h/2 + 3 // Just under the centred game-over box
	if y+panelH > h {
		y = max(0, h-panelH)
	}

	r := core.NewRect(x, y, panelW, panelH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)

	if run.reason != "" {
		dst.DrawTextColored(x+2, y+1, "Cause: "+run.reason, core.ColorBrightRed)
	}
	bestColor := core.ColorWhite
	if run.newBest {
		bestColor = core.ColorBrightYellow
	}
	dst.DrawTextColored(x+2, y+2, bestLine, bestColor)

	for i, line := range lines {
		dst.DrawTextColored(x+2, y+4+i, line, commentColor)
	}
}
