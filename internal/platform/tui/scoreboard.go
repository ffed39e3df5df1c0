package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-dash/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of stats sidebar
	maxScores          = 100 // Max scores to load
)

// boardTab selects which list the scoreboard shows.
type boardTab int

const (
	tabTop boardTab = iota
	tabRecent
)

func (t boardTab) String() string {
	if t == tabRecent {
		return "Recent Runs"
	}
	return "High Scores"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "switch list"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "switch list"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	gameID      string
	tab         boardTab
	store       *storage.Store
	scores      []storage.ScoreEntry
	stats       *storage.GameStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the stats sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		gameID:      gameID,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Cause", Width: 16},
		{Title: "Date", Width: 12},
		{Title: "Comment", Width: 10},
	}

	tableWidth := m.width - 6 // Margins and border
	if m.showSidebar {
		tableWidth -= sidebarWidth + 4 // Sidebar + border + gap
	}

	// The comment column takes whatever is left
	fixed := 0
	for _, c := range columns[:4] {
		fixed += c.Width + 2
	}
	if rest := tableWidth - fixed - 2; rest > columns[4].Width {
		columns[4].Width = rest
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)), // Leave room for header, tabs, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the current tab's rows and the aggregate stats.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		var scores []storage.ScoreEntry
		var err error
		if m.tab == tabRecent {
			scores, err = m.store.History(m.gameID, maxScores)
		} else {
			scores, err = m.store.TopScores(m.gameID, maxScores)
		}
		if err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	commentW := 10
	if cols := m.table.Columns(); len(cols) == 5 {
		commentW = cols[4].Width
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rank := fmt.Sprintf("#%d", i+1)
		if m.tab == tabRecent {
			rank = fmt.Sprintf("%d", i+1)
		}
		rows[i] = table.Row{
			rank,
			fmt.Sprintf("%d", s.Score),
			s.Reason,
			s.CreatedAt.Format("Jan 02 15:04"),
			truncate(s.Comment, commentW),
		}
	}
	m.table.SetRows(rows)

	m.table.GotoTop()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
			m.tab = 1 - m.tab
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("PIXEL DASH - "+strings.ToUpper(m.tab.String()), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the list switcher.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, 2)
	for _, t := range []boardTab{tabTop, tabRecent} {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(" "+t.String()+" "))
		}
	}
	return strings.Join(tabs, " ")
}

// renderSidebar renders the aggregate statistics.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		sb.WriteString(labelStyle.Render("no runs yet"))
		return sidebarStyle.Render(sb.String())
	}

	line := func(label, value string) {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", label)))
		sb.WriteString(value)
		sb.WriteString("\n")
	}
	line("Runs", fmt.Sprintf("%d", m.stats.GamesCount))
	line("Best", fmt.Sprintf("%d", m.stats.HighScore))
	line("Average", fmt.Sprintf("%.0f", m.stats.AvgScore))
	line("Cleared", fmt.Sprintf("%d", m.stats.TotalObstacles))
	line("Power-ups", fmt.Sprintf("%d", m.stats.TotalPowerUps))
	if !m.stats.LastPlayed.IsZero() {
		line("Last", m.stats.LastPlayed.Format("Jan 02"))
	}

	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nGo set a high score!")
	}

	return m.table.View()
}

// centerText pads text on the left so it is centred in width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return strings.Repeat(" ", (width-textWidth)/2) + text
}

// IsGoingBack returns true if user wants to leave the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// standaloneBoard runs a scoreboard as its own program; back quits it.
type standaloneBoard struct {
	ScoreboardModel
}

func (s standaloneBoard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.ScoreboardModel.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		s.ScoreboardModel = sb
	}
	if s.goingBack {
		return s, tea.Quit
	}
	return s, cmd
}

// RunScoreboard runs the scoreboard screen on its own.
func RunScoreboard(store *storage.Store, gameID string, width, height int) error {
	p := tea.NewProgram(
		standaloneBoard{NewScoreboardModel(store, gameID, width, height)},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
