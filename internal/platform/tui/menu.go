package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

// MenuItem represents a selectable difficulty in the picker.
type MenuItem struct {
	Difficulty config.DifficultyPreset
	GameID     string
	Profile    bricks.Profile
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items    []MenuItem
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	config   core.RuntimeConfig
	columns  int // Bricks per row, for the brick count column
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a new picker listing every difficulty.
func NewMenuModel(cfg core.RuntimeConfig, columns int) MenuModel {
	presets := config.Presets()
	items := make([]MenuItem, 0, len(presets))
	for _, p := range presets {
		profile, err := bricks.ResolveProfile(string(p))
		if err != nil {
			continue
		}
		items = append(items, MenuItem{
			Difficulty: p,
			GameID:     bricks.GameID(p),
			Profile:    profile,
		})
	}

	h := help.New()
	h.ShowAll = false

	m := MenuModel{
		items:   items,
		help:    h,
		keys:    DefaultPickerKeyMap(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		columns: columns,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the difficulty table.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Difficulty", Width: 12},
		{Title: "Speed", Width: 7},
		{Title: "Rows", Width: 6},
		{Title: "Bricks", Width: 8},
		{Title: "Hits", Width: 6},
	}

	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		rows[i] = table.Row{
			string(it.Difficulty),
			fmt.Sprintf("%g", it.Profile.BallSpeed.X),
			fmt.Sprintf("%d", it.Profile.RowCount),
			fmt.Sprintf("%d", it.Profile.RowCount*m.columns),
			hitRange(it.Profile),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
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

// hitRange summarizes the hits a brick may need, e.g. "1-3".
func hitRange(p bricks.Profile) string {
	lo, hi := p.HitsForRow(0), p.HitsForRow(0)
	for r := 1; r < p.RowCount; r++ {
		lo = min(lo, p.HitsForRow(r))
		hi = max(hi, p.HitsForRow(r))
	}
	if lo == hi {
		return fmt.Sprintf("%d", lo)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}

// Init initializes the picker.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if c := m.table.Cursor(); c >= 0 && c < len(m.items) {
				selected := m.items[c]
				m.selected = &selected
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("B R I C K S", m.width)))
	b.WriteString("\n")
	b.WriteString(centerText("Select a difficulty", m.width))
	b.WriteString("\n\n")

	tbl := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(m.table.View())
	b.WriteString(tbl)
	b.WriteString("\n\n")

	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the picker.
type MenuResult struct {
	Difficulty config.DifficultyPreset
	GameID     string
	Config     core.RuntimeConfig
	Quit       bool
}

// RunMenu runs the difficulty picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig, columns int) (MenuResult, error) {
	model := NewMenuModel(cfg, columns)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Difficulty = m.Selected().Difficulty
	result.GameID = m.Selected().GameID
	return result, nil
}
