// Package t2048 implements the 2048 sliding-tile puzzle on an N×N board.
package t2048

import (
	"strconv"
	"strings"
)

// Board size limits.
const (
	MinSize     = 2
	MaxSize     = 6
	DefaultSize = 4
)

// Board is a square grid of tile values indexed [row][col]. 0 means empty.
type Board [][]int

// Cell identifies a board position.
type Cell struct {
	Row int
	Col int
}

// ValidSize reports whether n is an allowed board dimension.
func ValidSize(n int) bool {
	return n >= MinSize && n <= MaxSize
}

// NewBoard allocates an n×n board of zeros.
func NewBoard(n int) Board {
	b := make(Board, n)
	for r := range b {
		b[r] = make([]int, n)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for r := range b {
		c[r] = append([]int(nil), b[r]...)
	}
	return c
}

// Equal reports whether both boards have the same size and values.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for r := range b {
		if len(b[r]) != len(other[r]) {
			return false
		}
		for c := range b[r] {
			if b[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns all empty positions in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for r := range b {
		for c := range b[r] {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (b Board) HasEmptyCell() bool {
	for r := range b {
		for c := range b[r] {
			if b[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for r := range b {
		for _, v := range b[r] {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for r := range b {
		for _, v := range b[r] {
			total += v
		}
	}
	return total
}

// String formats the board as space-separated rows, '.' for empty cells.
func (b Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for _, row := range b {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
