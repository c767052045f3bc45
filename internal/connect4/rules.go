package connect4

// directions are the four line orientations: right, down, down-right, down-left.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// CheckWin looks for a four-in-a-row of player passing through (row, column).
// Only lines through that cell are examined, so the cost does not depend on
// the board size.
func CheckWin(b Board, row, column int, player Player) (Line, bool) {
	if player == Empty || !b.InBounds(row, column) || b[row][column] != player {
		return Line{}, false
	}

	for _, d := range directions {
		dr, dc := d[0], d[1]

		// walk back to the first piece of the run
		r, c := row, column
		for b.InBounds(r-dr, c-dc) && b[r-dr][c-dc] == player {
			r -= dr
			c -= dc
		}

		var line Line
		n := 0
		for b.InBounds(r, c) && b[r][c] == player {
			if n < ToWin {
				line[n] = Position{Row: r, Column: c}
			}
			n++
			r += dr
			c += dc
		}
		if n >= ToWin {
			return line, true
		}
	}

	return Line{}, false
}

// ScanForWin checks every cell of the board as the start of a line of
// ToWin pieces in each direction. It returns the first line found.
func ScanForWin(b Board, player Player) (Line, bool) {
	if player == Empty {
		return Line{}, false
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			for _, d := range directions {
				if line, ok := lineFrom(b, y, x, d[0], d[1], player); ok {
					return line, true
				}
			}
		}
	}
	return Line{}, false
}

// lineFrom reports whether the ToWin cells starting at (row, column) and
// stepping by (dr, dc) are all on the board and owned by player.
func lineFrom(b Board, row, column, dr, dc int, player Player) (Line, bool) {
	var line Line
	for i := 0; i < ToWin; i++ {
		r, c := row+i*dr, column+i*dc
		if !b.InBounds(r, c) || b[r][c] != player {
			return Line{}, false
		}
		line[i] = Position{Row: r, Column: c}
	}
	return line, true
}
