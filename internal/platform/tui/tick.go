// Package tui provides the Bubble Tea front end for Connect Four.
// It maps keys to engine calls, draws the board and announces the result.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AnnounceMsg is sent shortly after a game-ending move so the final piece
// is rendered before the result banner appears.
// Generation identifies the game it belongs to; stale messages from a game
// that has since been restarted are ignored.
type AnnounceMsg struct {
	Generation int
}

// announceCmd returns a command that sends an AnnounceMsg after delay.
func announceCmd(delay time.Duration, generation int) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg {
			return AnnounceMsg{Generation: generation}
		}
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return AnnounceMsg{Generation: generation}
	})
}
