package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Model is the Bubble Tea model for a Connect Four session.
// It owns the engine and replaces it when the board is resized.
type Model struct {
	engine    *connect4.Engine
	screen    *core.Screen
	cfg       config.Connect4Config
	theme     Theme
	keys      GameKeyMap
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger

	cursor     int
	generation int    // incremented on every new game
	announced  string // end-of-game banner, empty until AnnounceMsg
	lastErr    string
	form       *SizeForm
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model driving e. A nil logger discards output.
func NewModel(e *connect4.Engine, cfg config.Connect4Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultGameKeyMap()
	h := help.New()
	h.ShowAll = false

	m := Model{
		engine:    e,
		cfg:       cfg,
		theme:     ThemeFromConfig(cfg.Players),
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      h,
		logger:    logger,
	}
	m.startGame(e)
	return m
}

// startGame installs e as the current game and resets view state.
func (m *Model) startGame(e *connect4.Engine) {
	m.engine = e
	w, h := BoardViewSize(e.Width(), e.Height())
	if m.screen == nil {
		m.screen = core.NewScreen(w, h)
	} else {
		m.screen.Resize(w, h)
	}
	m.cursor = e.Width() / 2
	m.generation++
	m.announced = ""
	m.lastErr = ""
	m.logger.Info("new game", "width", e.Width(), "height", e.Height())
}

// Engine returns the engine of the current game.
func (m Model) Engine() *connect4.Engine {
	return m.engine
}

// Cursor returns the selected column.
func (m Model) Cursor() int {
	return m.cursor
}

// Announcement returns the end-of-game banner text, empty while the game
// is running or the announcement is still pending.
func (m Model) Announcement() string {
	return m.announced
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case AnnounceMsg:
		if msg.Generation == m.generation && m.engine.Status().IsOver() {
			m.announced = m.resultText(m.engine.Status())
		}
		return m, nil

	case SizeSubmittedMsg:
		return m.handleResize(msg)

	case SizeCancelledMsg:
		m.form = nil
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			form, cmd := m.form.Update(msg)
			m.form = &form
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.form != nil {
		form, cmd := m.form.Update(msg)
		m.form = &form
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if col, ok := m.keyMapper.MapColumn(msg); ok {
		if col < m.engine.Width() {
			m.cursor = col
		}
		return m, nil
	}

	switch m.keyMapper.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.cursor = core.Clamp(m.cursor-1, 0, m.engine.Width()-1)
	case core.ActionRight:
		m.cursor = core.Clamp(m.cursor+1, 0, m.engine.Width()-1)
	case core.ActionDrop:
		return m.drop()
	case core.ActionRestart:
		m.engine.Reset()
		m.startGame(m.engine)
	case core.ActionResize:
		form := NewSizeForm(m.engine.Width(), m.engine.Height())
		m.form = &form
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// drop drops a piece into the selected column.
func (m Model) drop() (tea.Model, tea.Cmd) {
	res, err := m.engine.DropPiece(m.cursor)
	if err != nil {
		m.logger.Error("drop failed", "column", m.cursor, "err", err)
		m.lastErr = err.Error()
		return m, nil
	}
	if !res.Accepted {
		m.logger.Debug("move ignored", "column", res.Column, "status", res.Status)
		return m, nil
	}

	m.lastErr = ""
	m.logger.Debug("piece dropped", "player", int(res.Player), "row", res.Row, "column", res.Column)

	if res.Status.IsOver() {
		m.logger.Info("game over", "result", res.Status, "moves", m.engine.Moves())
		return m, announceCmd(m.cfg.UI.AnnounceDelay(), m.generation)
	}
	return m, nil
}

// handleResize rebuilds the game with the submitted dimensions.
func (m Model) handleResize(msg SizeSubmittedMsg) (tea.Model, tea.Cmd) {
	e, err := connect4.New(msg.Width, msg.Height)
	if err != nil {
		m.logger.Warn("rejected board size", "width", msg.Width, "height", msg.Height, "err", err)
		if m.form != nil {
			m.form.SetError(err)
		}
		return m, nil
	}
	m.form = nil
	m.startGame(e)
	return m, nil
}

// resultText formats a terminal status with the configured player names.
func (m Model) resultText(s connect4.GameStatus) string {
	switch s.Kind {
	case connect4.Won:
		return fmt.Sprintf("%s won!", m.theme.Name(s.Winner))
	case connect4.Tied:
		return "Tie!"
	}
	return ""
}

// statusLine describes whose turn it is or how the game ended.
func (m Model) statusLine() string {
	s := m.engine.Status()
	if s.IsOver() {
		if m.announced != "" {
			return "Game over. Press r to play again or s to change the board."
		}
		return "Game over."
	}
	p := m.engine.CurrentPlayer()
	piece := styleFor(m.theme.Colors[p]).Render(string(m.theme.Symbols[p]))
	return fmt.Sprintf("%s %s's turn", piece, m.theme.Name(p))
}

// viewHeight returns the rows View stacks around a board of boardRows rows.
func (m Model) viewHeight(boardRows int) int {
	rows := 1 + boardRows + 1 // title, board, status
	if m.announced != "" {
		rows += lipgloss.Height(bannerStyle.Render(m.announced))
	}
	if m.lastErr != "" {
		rows += lipgloss.Height(errorStyle.Render(m.lastErr))
	}
	if m.cfg.UI.ShowHelp {
		rows += lipgloss.Height(m.help.View(m.keys))
	}
	return rows
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.form != nil {
		return m.form.View()
	}

	bw, bh := BoardViewSize(m.engine.Width(), m.engine.Height())
	if need := m.viewHeight(bh); m.width > 0 && m.height > 0 && (m.width < bw || m.height < need) {
		return fmt.Sprintf("Terminal too small for a %dx%d board (need %dx%d).\nResize the window or press s to pick a smaller board.",
			m.engine.Width(), m.engine.Height(), bw, need)
	}

	DrawBoard(m.screen, m.engine, m.cursor, m.theme)

	parts := []string{
		titleStyle.Render("Connect Four"),
		RenderScreen(m.screen),
		statusStyle.Render(m.statusLine()),
	}
	if m.announced != "" {
		parts = append(parts, bannerStyle.Render(m.announced))
	}
	if m.lastErr != "" {
		parts = append(parts, errorStyle.Render(m.lastErr))
	}
	if m.cfg.UI.ShowHelp {
		parts = append(parts, m.help.View(m.keys))
	}

	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, parts...), "\n")
}

// Run starts a new game on a board of rt.BoardW x rt.BoardH and blocks
// until the player quits. rt.ScreenW and rt.ScreenH seed the terminal size
// until the first resize event arrives.
func Run(rt core.RuntimeConfig, cfg config.Connect4Config, logger *log.Logger) error {
	e, err := connect4.New(rt.BoardW, rt.BoardH)
	if err != nil {
		return err
	}

	model := NewModel(e, cfg, logger)
	model.width = rt.ScreenW
	model.height = rt.ScreenH

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
