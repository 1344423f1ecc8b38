package t2048

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all move directions.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction name (or its first letter) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// vertical reports whether the direction moves tiles along columns.
func (d Direction) vertical() bool {
	return d == DirUp || d == DirDown
}

// toFar reports whether tiles travel toward index n-1.
func (d Direction) toFar() bool {
	return d == DirDown || d == DirRight
}

// Move slides every line of the board in the given direction.
// The input board is not modified. Returns the new board, the score gained
// from merges, and whether any cell changed.
func Move(board Board, dir Direction) (Board, int, bool) {
	n := board.Size()
	next := NewBoard(n)
	total := 0

	for i := range n {
		// Read the line in travel order, skipping empty cells.
		tiles := make([]int, 0, n)
		for j := range n {
			if v := board.at(i, j, dir); v != 0 {
				tiles = append(tiles, v)
			}
		}

		line, gained := ReduceLine(tiles, n)
		total += gained

		for j, v := range line {
			next.set(i, j, dir, v)
		}
	}

	return next, total, !next.Equal(board)
}

// at returns the j-th cell of line i as seen when travelling in dir.
func (b Board) at(i, j int, dir Direction) int {
	r, c := b.coord(i, j, dir)
	return b[r][c]
}

// set writes the j-th cell of line i as seen when travelling in dir.
func (b Board) set(i, j int, dir Direction, v int) {
	r, c := b.coord(i, j, dir)
	b[r][c] = v
}

// coord maps (line, offset-from-leading-edge) to (row, col).
func (b Board) coord(i, j int, dir Direction) (row, col int) {
	if dir.toFar() {
		j = b.Size() - 1 - j
	}
	if dir.vertical() {
		return j, i
	}
	return i, j
}
