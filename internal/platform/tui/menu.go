package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/games/bricker"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// Menu rows.
const (
	rowPlay = iota
	rowLayout
	rowDifficulty
	rowScores
	rowQuit
	rowCount
)

// presets in menu order. "fixed" keeps the configured speeds.
var presets = []config.DifficultyPreset{
	config.DifficultyFixed,
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	layouts   []string
	layoutIdx int
	presetIdx int
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a menu with layout preselected.
func NewMenuModel(layout string, width, height int) MenuModel {
	m := MenuModel{
		layouts:   bricker.LayoutNames(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, name := range m.layouts {
		if name == layout {
			m.layoutIdx = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuQuit
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + rowCount - 1) % rowCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % rowCount

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		switch m.cursor {
		case rowPlay:
			m.choice = MenuPlay
		case rowScores:
			m.choice = MenuScores
		case rowQuit:
			m.choice = MenuQuit
		default:
			m.cycle(1)
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m *MenuModel) cycle(step int) {
	switch m.cursor {
	case rowLayout:
		m.layoutIdx = (m.layoutIdx + len(m.layouts) + step) % len(m.layouts)
	case rowDifficulty:
		m.presetIdx = (m.presetIdx + len(presets) + step) % len(presets)
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}

	rows := [rowCount]string{
		rowPlay:       "Play",
		rowLayout:     fmt.Sprintf("Layout:     < %s >", m.Layout()),
		rowDifficulty: fmt.Sprintf("Difficulty: < %s >", m.Preset()),
		rowScores:     "High Scores",
		rowQuit:       "Quit",
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B R I C K E R"), m.width))
	b.WriteString("\n\n")
	for i, row := range rows {
		line := "  " + row
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render("Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns what the player picked, or MenuNone.
func (m MenuModel) Choice() MenuChoice { return m.choice }

// Layout returns the selected layout name.
func (m MenuModel) Layout() string { return m.layouts[m.layoutIdx] }

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset { return presets[m.presetIdx] }

// Apply writes the menu selections into cfg.
func (m MenuModel) Apply(cfg *config.BrickerConfig) {
	cfg.Bricks.Layout = m.Layout()
	config.ApplyPreset(cfg, m.Preset())
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Layout string
	Preset config.DifficultyPreset
}

// RunMenu runs the menu and returns the selection.
func RunMenu(layout string, width, height int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(layout, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit}, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuResult{Choice: MenuQuit}, nil
	}
	return MenuResult{Choice: m.Choice(), Layout: m.Layout(), Preset: m.Preset()}, nil
}
