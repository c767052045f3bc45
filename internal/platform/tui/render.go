package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// palette holds the ANSI colour for each core.Color. ColorDefault is absent
// and renders unstyled.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(palette[core.ColorBrightYellow]))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(palette[core.ColorBrightRed]))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// styleFor returns the style a cell of colour c is drawn with.
// Highlight colours are bold so a winning line stands out without colour.
func styleFor(c core.Color) lipgloss.Style {
	code, ok := palette[c]
	if !ok {
		return lipgloss.NewStyle()
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	if c >= core.ColorBrightRed && c <= core.ColorBrightWhite {
		st = st.Bold(true)
	}
	return st
}

// RenderScreen turns a Screen into a styled string, one line per row.
// Each run of same-coloured cells becomes a single styled segment.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		lines[y] = renderRow(s, y)
	}
	return strings.Join(lines, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run []rune
	runColor := core.ColorDefault

	flush := func() {
		if len(run) > 0 {
			sb.WriteString(styleFor(runColor).Render(string(run)))
			run = run[:0]
		}
	}

	for x := 0; x < s.Width(); x++ {
		c := s.GetCell(x, y)
		if c.Color != runColor {
			flush()
			runColor = c.Color
		}
		run = append(run, c.Rune)
	}
	flush()
	return sb.String()
}
