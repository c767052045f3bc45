package tui

import (
	"slices"
	"strings"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/connect4"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Board layout constants
const (
	cellWidth  = 3   // Characters per board column
	emptyRune  = '·' // Unoccupied cell
	cursorRune = '▼' // Column top marker
)

// Theme holds the colors and symbols used to draw pieces.
type Theme struct {
	Names   [3]string // indexed by connect4.Player
	Symbols [3]rune
	Colors  [3]core.Color
	Frame   core.Color
}

// ThemeFromConfig builds a theme from the player styles.
func ThemeFromConfig(p config.PlayersConfig) Theme {
	t := Theme{
		Symbols: [3]rune{emptyRune},
		Colors:  [3]core.Color{core.ColorGray},
		Frame:   core.ColorGray,
	}
	for _, player := range []connect4.Player{connect4.Player1, connect4.Player2} {
		st := p.Style(player)
		t.Names[player] = st.Name
		t.Symbols[player] = st.PieceRune()
		t.Colors[player] = st.PieceColor()
	}
	return t
}

// PlainTheme returns a theme that tells the players apart without color,
// for output that is not a terminal.
func PlainTheme(p config.PlayersConfig) Theme {
	t := ThemeFromConfig(p)
	t.Symbols = [3]rune{'.', 'X', 'O'}
	t.Colors = [3]core.Color{}
	t.Frame = core.ColorDefault
	return t
}

// Name returns the display name of a player.
func (t Theme) Name(p connect4.Player) string {
	if p != connect4.Player1 && p != connect4.Player2 {
		return ""
	}
	if name := t.Names[p]; name != "" {
		return name
	}
	return p.String()
}

// BoardViewSize returns the screen size needed to draw a width x height board.
func BoardViewSize(width, height int) (w, h int) {
	// cursor row, top border, rows, bottom border, column labels
	return width*cellWidth + 2, height + 3 + labelRows(width)
}

// labelRows is 1 for boards up to 9 columns. Wider boards get a tens row
// above the units row so every column number is readable.
func labelRows(width int) int {
	if width > 9 {
		return 2
	}
	return 1
}

// DrawBoard draws the board of e into dst, clearing it first.
// cursor is the selected column; pass -1 to hide the column marker.
// Over a full column the marker takes the frame color.
func DrawBoard(dst *core.Screen, e *connect4.Engine, cursor int, theme Theme) {
	dst.Clear()

	w, _ := BoardViewSize(e.Width(), e.Height())
	frame := core.NewRect(0, 1, w, e.Height()+2)
	dst.DrawBox(frame, theme.Frame)

	if cursor >= 0 && cursor < e.Width() && !e.Status().IsOver() {
		color := theme.Frame
		if slices.Contains(e.ValidColumns(), cursor) {
			color = theme.Colors[e.CurrentPlayer()]
		}
		dst.SetColored(cellCenter(cursor), 0, cursorRune, color)
	}

	line, won := e.WinningLine()
	board := e.Snapshot()
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			p := board[y][x]
			color := theme.Colors[p]
			if won && line.Contains(y, x) {
				color = color.Highlight()
			}
			dst.SetColored(cellCenter(x), y+2, theme.Symbols[p], color)
		}
	}

	for i, label := range columnLabels(e.Width(), w) {
		dst.DrawTextColored(0, frame.Bottom()+i, label, theme.Frame)
	}
}

// columnLabels returns the label rows under the board, each lineWidth wide.
// Column numbers are 1-based; the last row holds the units digit.
func columnLabels(columns, lineWidth int) []string {
	rows := make([][]rune, labelRows(columns))
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", lineWidth))
	}
	for x := 0; x < columns; x++ {
		n := x + 1
		for i := len(rows) - 1; i >= 0 && n > 0; i-- {
			rows[i][cellCenter(x)] = rune('0' + n%10)
			n /= 10
		}
	}
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = string(r)
	}
	return labels
}

// cellCenter returns the screen x of the center of a board column.
func cellCenter(column int) int {
	return 1 + column*cellWidth + cellWidth/2
}
