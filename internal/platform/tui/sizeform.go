package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Largest board the form accepts. The engine has no upper bound; this keeps
// the board on a terminal screen.
const (
	maxFormWidth  = 30
	maxFormHeight = 20
)

// SizeSubmittedMsg is sent when the size form is submitted with numbers.
type SizeSubmittedMsg struct {
	Width  int
	Height int
}

// SizeCancelledMsg is sent when the size form is dismissed.
type SizeCancelledMsg struct{}

// SizeForm asks for new board dimensions. It is embedded in Model and
// receives all key messages while active.
type SizeForm struct {
	inputs [2]textinput.Model // width, height
	focus  int
	err    string
}

// NewSizeForm creates a form prefilled with the current dimensions.
func NewSizeForm(width, height int) SizeForm {
	f := SizeForm{}
	for i, v := range []int{width, height} {
		ti := textinput.New()
		ti.CharLimit = 3
		ti.Width = 4
		ti.SetValue(strconv.Itoa(v))
		f.inputs[i] = ti
	}
	f.inputs[0].Prompt = "Columns: "
	f.inputs[1].Prompt = "Rows:    "
	f.inputs[0].Focus()
	return f
}

// SetError shows a validation message below the inputs.
func (f *SizeForm) SetError(err error) {
	if err == nil {
		f.err = ""
		return
	}
	f.err = err.Error()
}

// Update handles a message while the form is active.
func (f SizeForm) Update(msg tea.Msg) (SizeForm, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return SizeCancelledMsg{} }
		case "tab", "shift+tab", "up", "down":
			f.setFocus(1 - f.focus)
			return f, nil
		case "enter":
			if f.focus == 0 {
				f.setFocus(1)
				return f, nil
			}
			return f.submit()
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *SizeForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f SizeForm) submit() (SizeForm, tea.Cmd) {
	w, err := parseDimension("columns", f.inputs[0].Value(), maxFormWidth)
	if err != nil {
		f.err = err.Error()
		return f, nil
	}
	h, err := parseDimension("rows", f.inputs[1].Value(), maxFormHeight)
	if err != nil {
		f.err = err.Error()
		return f, nil
	}
	f.err = ""
	return f, func() tea.Msg { return SizeSubmittedMsg{Width: w, Height: h} }
}

// parseDimension parses a form value. Range checks other than the upper
// bound are left to the engine, so its configuration error is what the
// user sees for zero or negative sizes.
func parseDimension(field, value string, limit int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", field, value)
	}
	if n > limit {
		return 0, fmt.Errorf("%s: at most %d fit on screen", field, limit)
	}
	return n, nil
}

// View renders the form.
func (f SizeForm) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Board size"))
	sb.WriteString("\n\n")
	sb.WriteString(f.inputs[0].View())
	sb.WriteString("\n")
	sb.WriteString(f.inputs[1].View())
	sb.WriteString("\n\n")
	if f.err != "" {
		sb.WriteString(errorStyle.Render(f.err))
		sb.WriteString("\n\n")
	}
	sb.WriteString(hintStyle.Render("tab: switch  enter: apply  esc: cancel"))
	return sb.String()
}
