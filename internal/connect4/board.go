package connect4

// Board is a height x width grid indexed as board[row][column].
// Row 0 is the top; pieces settle from row height-1 upward.
type Board [][]Player

// NewBoard allocates an empty board. Dimensions must already be validated.
func NewBoard(width, height int) Board {
	b := make(Board, height)
	for y := range b {
		b[y] = make([]Player, width)
	}
	return b
}

// Width returns the number of columns.
func (b Board) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Height returns the number of rows.
func (b Board) Height() int {
	return len(b)
}

// InBounds reports whether (row, column) lies on the board.
func (b Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.Height() && column >= 0 && column < b.Width()
}

// landingRow returns the lowest empty row in column, or -1 if the column is full.
func (b Board) landingRow(column int) int {
	for y := b.Height() - 1; y >= 0; y-- {
		if b[y][column] == Empty {
			return y
		}
	}
	return -1
}

// TopRowFull reports whether every cell of row 0 is occupied.
// Under gravity this is equivalent to the whole board being full.
func (b Board) TopRowFull() bool {
	if b.Height() == 0 {
		return false
	}
	for _, c := range b[0] {
		if c == Empty {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the board.
func (b Board) Copy() Board {
	out := make(Board, len(b))
	for y := range b {
		out[y] = make([]Player, len(b[y]))
		copy(out[y], b[y])
	}
	return out
}
