// Package connect4 implements the rules engine and turn state machine for
// Connect Four. It has no presentation or I/O dependencies; front ends
// drive it through Engine and render from its queries.
package connect4

import (
	"errors"
	"fmt"
)

// Player identifies the owner of a cell. Empty marks an unoccupied cell.
type Player int

const (
	Empty   Player = 0
	Player1 Player = 1
	Player2 Player = 2
)

// ToWin is the number of aligned pieces needed to win.
const ToWin = 4

// Other returns the opponent of p. Empty has no opponent and is returned as is.
func (p Player) Other() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	case Empty:
		return "Empty"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// StatusKind is the state of the game state machine.
type StatusKind int

const (
	InProgress StatusKind = iota
	Won
	Tied
)

// GameStatus is the outcome of the game so far.
// Winner is set only when Kind is Won.
type GameStatus struct {
	Kind   StatusKind
	Winner Player
}

// IsOver reports whether the status is terminal.
func (s GameStatus) IsOver() bool {
	return s.Kind == Won || s.Kind == Tied
}

// String returns a short description such as "Player 1 won!" or "Tie!".
func (s GameStatus) String() string {
	switch s.Kind {
	case Won:
		return fmt.Sprintf("%s won!", s.Winner)
	case Tied:
		return "Tie!"
	default:
		return "In progress"
	}
}

// Position is a cell coordinate. Row 0 is the top of the board.
type Position struct {
	Row    int
	Column int
}

// Line holds the cells of a four-in-a-row, ordered along its direction.
type Line [ToWin]Position

// Contains reports whether the line passes through (row, column).
func (l Line) Contains(row, column int) bool {
	for _, p := range l {
		if p.Row == row && p.Column == column {
			return true
		}
	}
	return false
}

// MoveResult describes the effect of a DropPiece call.
// Row is -1 when the move was not accepted.
type MoveResult struct {
	Accepted bool
	Row      int
	Column   int
	Player   Player
	Status   GameStatus
}

var (
	// ErrConfiguration is returned when board dimensions are not positive.
	ErrConfiguration = errors.New("invalid board configuration")

	// ErrOutOfRange is returned for a row or column outside the board.
	ErrOutOfRange = errors.New("position out of range")
)
