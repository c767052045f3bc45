package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/registry"
)

// MenuKeyMap defines the key bindings for the preset picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

// MenuModel is the Bubble Tea model for the board preset picker.
type MenuModel struct {
	items    []registry.Preset
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	quitting bool
	selected *registry.Preset // Set when user selects a preset
}

// NewMenuModel creates a new menu model listing the registered presets.
// The cursor starts on the preset matching the configured board size.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	items := registry.List()

	m := MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
	}
	for i, p := range items {
		if p.Width == cfg.BoardW && p.Height == cfg.BoardH {
			m.cursor = i
			break
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
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

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C O N N E C T   F O U R"), len("C O N N E C T   F O U R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board", len("Select a board"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %2dx%-2d", cursor, item.Title, item.Width, item.Height)
		b.WriteString(centerText(line, len(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(hintStyle.Render(controls), len(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected preset, or nil if none selected.
func (m MenuModel) Selected() *registry.Preset {
	return m.selected
}

// Config returns the runtime config with the selected board size applied.
func (m MenuModel) Config() core.RuntimeConfig {
	cfg := m.config
	if m.selected != nil {
		cfg.BoardW = m.selected.Width
		cfg.BoardH = m.selected.Height
	}
	return cfg
}

// centerText pads text to center it within width. textLen is the visible
// length, which differs from len(text) for styled strings.
func centerText(text string, textLen, width int) string {
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the preset picker. ok is false when the user quit without
// choosing.
func RunMenu(cfg core.RuntimeConfig) (core.RuntimeConfig, bool, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return cfg, false, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return cfg, false, nil
	}
	return m.Config(), true, nil
}
