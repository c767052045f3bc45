package connect4

import "fmt"

// Default board dimensions.
const (
	DefaultWidth  = 7
	DefaultHeight = 6
)

// Engine owns a single game: the board, whose turn it is and the status.
// An Engine is not safe for concurrent use.
type Engine struct {
	width  int
	height int

	board         Board
	currentPlayer Player
	status        GameStatus
	winLine       Line
	moves         int
}

// New creates an engine with an empty width x height board.
// Player 1 moves first.
func New(width, height int) (*Engine, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: width=%d height=%d, both must be at least 1", ErrConfiguration, width, height)
	}

	e := &Engine{
		width:  width,
		height: height,
	}
	e.Reset()
	return e, nil
}

// Reset discards the board and starts a new game with the same dimensions.
func (e *Engine) Reset() {
	e.board = NewBoard(e.width, e.height)
	e.currentPlayer = Player1
	e.status = GameStatus{Kind: InProgress}
	e.winLine = Line{}
	e.moves = 0
}

// Width returns the number of columns.
func (e *Engine) Width() int {
	return e.width
}

// Height returns the number of rows.
func (e *Engine) Height() int {
	return e.height
}

// CurrentPlayer returns the player to move, or the player who made the
// final move once the game is over.
func (e *Engine) CurrentPlayer() Player {
	return e.currentPlayer
}

// Status returns the current game status.
func (e *Engine) Status() GameStatus {
	return e.status
}

// Moves returns the number of accepted moves.
func (e *Engine) Moves() int {
	return e.moves
}

// WinningLine returns the four-in-a-row that ended the game, if any.
func (e *Engine) WinningLine() (Line, bool) {
	if e.status.Kind != Won {
		return Line{}, false
	}
	return e.winLine, true
}

// Cell returns the owner of the cell at (row, column).
func (e *Engine) Cell(row, column int) (Player, error) {
	if !e.board.InBounds(row, column) {
		return Empty, fmt.Errorf("%w: cell (%d, %d) on %dx%d board", ErrOutOfRange, row, column, e.width, e.height)
	}
	return e.board[row][column], nil
}

// Snapshot returns a copy of the board.
func (e *Engine) Snapshot() Board {
	return e.board.Copy()
}

// FindLandingRow returns the row a piece dropped into column would settle
// in. ok is false when the column is full.
func (e *Engine) FindLandingRow(column int) (row int, ok bool, err error) {
	if err := e.checkColumn(column); err != nil {
		return -1, false, err
	}
	row = e.board.landingRow(column)
	return row, row >= 0, nil
}

// ValidColumns returns the columns that can still accept a piece.
// It is empty once the game is over.
func (e *Engine) ValidColumns() []int {
	if e.status.IsOver() {
		return nil
	}
	cols := make([]int, 0, e.width)
	for x := 0; x < e.width; x++ {
		if e.board[0][x] == Empty {
			cols = append(cols, x)
		}
	}
	return cols
}

// DropPiece drops a piece for the current player into column.
//
// An out-of-range column is an error. Dropping into a full column or after
// the game has ended is not an error: the result has Accepted set to false
// and nothing changes.
func (e *Engine) DropPiece(column int) (MoveResult, error) {
	if err := e.checkColumn(column); err != nil {
		return MoveResult{Row: -1, Column: column, Status: e.status}, err
	}

	rejected := MoveResult{Row: -1, Column: column, Player: e.currentPlayer, Status: e.status}
	if e.status.IsOver() {
		return rejected, nil
	}

	row := e.board.landingRow(column)
	if row < 0 {
		return rejected, nil
	}

	player := e.currentPlayer
	e.board[row][column] = player
	e.moves++

	// win takes precedence over tie when the same move does both
	if line, won := CheckWin(e.board, row, column, player); won {
		e.status = GameStatus{Kind: Won, Winner: player}
		e.winLine = line
	} else if e.board.TopRowFull() {
		e.status = GameStatus{Kind: Tied}
	} else {
		e.currentPlayer = player.Other()
	}

	return MoveResult{
		Accepted: true,
		Row:      row,
		Column:   column,
		Player:   player,
		Status:   e.status,
	}, nil
}

func (e *Engine) checkColumn(column int) error {
	if column < 0 || column >= e.width {
		return fmt.Errorf("%w: column %d not in [0, %d)", ErrOutOfRange, column, e.width)
	}
	return nil
}
