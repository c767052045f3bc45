package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, H - move column cursor left
	ActionRight          // Right arrow, L - move column cursor right
	ActionDrop           // Space, Enter, Down - drop into selected column
	ActionRestart        // R - new game with the same board size
	ActionResize         // S - open the board size form
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - exit
)
