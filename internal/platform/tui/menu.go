package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/reflection-razor/internal/config"
	"github.com/vovakirdan/reflection-razor/internal/core"
	"github.com/vovakirdan/reflection-razor/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226"))
	menuLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// menuPresets lists the difficulty rows; the empty preset keeps the
// values from the config file.
var menuPresets = append([]config.DifficultyPreset{""}, config.Presets...)

// presetLabel returns the table label for a preset.
func presetLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "config"
	}
	return string(p)
}

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	presets    *table.Model
	help       help.Model
	keys       MenuKeyMap
	width      int
	height     int
	config     core.RuntimeConfig
	quitting   bool
	selected   *MenuItem
	difficulty config.DifficultyPreset
}

// NewMenuModel creates a new menu model. base is the game config the
// difficulty presets are applied to for the preview table.
func NewMenuModel(cfg core.RuntimeConfig, base config.RazorConfig, preset config.DifficultyPreset) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	presets := newPresetTable(base)
	for i, p := range menuPresets {
		if p == preset {
			presets.SetCursor(i)
		}
	}

	return MenuModel{
		items:      items,
		presets:    &presets,
		help:       help.New(),
		keys:       DefaultMenuKeyMap(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		difficulty: preset,
	}
}

// newPresetTable builds a table comparing the difficulty presets.
func newPresetTable(base config.RazorConfig) table.Model {
	columns := []table.Column{
		{Title: "Preset", Width: 8},
		{Title: "Time", Width: 6},
		{Title: "Beam", Width: 6},
		{Title: "Ramp", Width: 6},
	}

	rows := make([]table.Row, 0, len(menuPresets))
	for _, p := range menuPresets {
		cfg := base
		config.ApplyRazorPreset(&cfg, p)
		ramp := "off"
		if cfg.Difficulty.Enabled {
			ramp = fmt.Sprintf("%.0f%%", cfg.Difficulty.InitialLevel*100)
		}
		rows = append(rows, table.Row{
			presetLabel(p),
			fmt.Sprintf("%.0fs", cfg.Gameplay.TimeLimit),
			fmt.Sprintf("%.2fs", cfg.Laser.StepSeconds),
			ramp,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		m.shiftDifficulty(-1)

	case key.Matches(msg, m.keys.Right):
		m.shiftDifficulty(1)

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// shiftDifficulty moves the preset selection by delta, clamped to the list.
func (m *MenuModel) shiftDifficulty(delta int) {
	i := core.Clamp(m.presets.Cursor()+delta, 0, len(menuPresets)-1)
	m.presets.SetCursor(i)
	m.difficulty = menuPresets[i]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("R E F L E C T I O N   R A Z O R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuLabelStyle.Render("Select a game"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + menuItemStyle.Render(item.Title)
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuLabelStyle.Render("Difficulty"), m.width))
	b.WriteString("\n")
	for _, line := range strings.Split(m.presets.View(), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the selected difficulty preset, empty for the config
// file's own values.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.difficulty
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID     string
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, base config.RazorConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(cfg, base, preset)

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

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.GameID = m.Selected().GameID
	return result, nil
}
