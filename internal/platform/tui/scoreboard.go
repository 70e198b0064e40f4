package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bricker/internal/storage"
)

const maxRounds = 100 // Max rounds to load per view

// RoundSource reads round history. *storage.Store implements it.
type RoundSource interface {
	TopRounds(limit int) ([]storage.Round, error)
	RecentRounds(limit int) ([]storage.Round, error)
	Stats() (*storage.Stats, error)
}

// scoreView selects which rounds the scoreboard lists.
type scoreView int

const (
	viewTop scoreView = iota
	viewRecent
	viewCount
)

func (v scoreView) String() string {
	if v == viewRecent {
		return "RECENT ROUNDS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	SwitchView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SwitchView},
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
		SwitchView: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top/recent"),
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

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	source    RoundSource
	view      scoreView
	rounds    []storage.Round
	stats     *storage.Stats
	err       error
	table     table.Model
	columns   int
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard. source may be nil.
func NewScoreboardModel(source RoundSource, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 6},
		{Title: "Bricks", Width: 7},
		{Title: "Layout", Width: 9},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}
	// Drop trailing columns that do not fit.
	avail := m.width - 6
	used := 0
	for i, c := range columns {
		used += c.Width + 2
		if used > avail && i >= 3 {
			columns = columns[:i]
			break
		}
	}

	m.columns = len(columns)
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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

func (m *ScoreboardModel) load() {
	m.rounds, m.stats, m.err = nil, nil, nil
	if m.source != nil {
		if m.view == viewRecent {
			m.rounds, m.err = m.source.RecentRounds(maxRounds)
		} else {
			m.rounds, m.err = m.source.TopRounds(maxRounds)
		}
		if m.err == nil {
			m.stats, m.err = m.source.Stats()
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Outcome,
			fmt.Sprintf("%d/%d", r.BricksDestroyed, r.BricksTotal),
			r.Layout,
			r.Player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
		rows[i] = row[:m.columns]
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
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
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchView):
			m.view = (m.view + 1) % viewCount
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
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

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.view.String()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render(m.summary()), m.width))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(centerText("Could not load rounds: "+m.err.Error(), m.width))
	case len(m.rounds) == 0:
		b.WriteString(centerText("No rounds played yet", m.width))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return ""
	}
	return fmt.Sprintf("%d rounds  |  %d won  |  best %d  |  avg %.0f",
		m.stats.Rounds, m.stats.Wins, m.stats.HighScore, m.stats.AvgScore)
}

// IsQuitting returns true if user requested to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// GoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) GoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard and returns true if the user went back.
func RunScoreboard(source RoundSource, width, height int) (bool, error) {
	p := tea.NewProgram(NewScoreboardModel(source, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.GoingBack(), nil
}
