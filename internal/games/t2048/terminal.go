package t2048

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(board Board) bool {
	n := board.Size()
	for r := range n {
		for c := range n {
			val := board[r][c]
			// Check right neighbor
			if c < n-1 && board[r][c+1] == val {
				return true
			}
			// Check bottom neighbor
			if r < n-1 && board[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return board.HasEmptyCell() || HasPossibleMerge(board)
}

// IsTerminal returns true if no move can change the board: no empty cell and
// no equal horizontal or vertical neighbours.
func IsTerminal(board Board) bool {
	return !CanMove(board)
}
