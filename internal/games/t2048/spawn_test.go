package t2048

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/random"
	"github.com/vovakirdan/tui-2048/internal/random/mock"
)

func TestSpawnPicksAmongEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 4},
		{8, 16, 0},
		{32, 64, 128},
	}
	src := mock.New()
	src.QueueIntn(1)
	src.QueueFloat64(0.95)

	cell, value, ok := NewSpawner(src).Spawn(board)

	require.True(t, ok)
	assert.Equal(t, []int{2}, src.IntnCalls, "only empty cells are candidates")
	assert.Equal(t, Cell{Row: 1, Col: 2}, cell)
	assert.Equal(t, 2, value)
	assert.Equal(t, 2, board[1][2])
}

func TestSpawnFour(t *testing.T) {
	board := NewBoard(2)
	src := mock.New()
	src.QueueFloat64(0.05)

	_, value, ok := NewSpawner(src).Spawn(board)

	require.True(t, ok)
	assert.Equal(t, 4, value)
}

func TestSpawnOnFullBoardIsNoOp(t *testing.T) {
	board := Board{
		{2, 4},
		{4, 2},
	}
	before := board.Clone()

	_, _, ok := NewSpawner(random.New(1)).Spawn(board)

	assert.False(t, ok)
	assert.True(t, board.Equal(before))
}

func TestSpawnChangesExactlyOneCell(t *testing.T) {
	src := random.New(5)
	spawner := NewSpawner(src)

	for range 500 {
		board := randomBoard(src, 4)
		if !board.HasEmptyCell() {
			continue
		}
		before := board.Clone()

		cell, value, ok := spawner.Spawn(board)
		require.True(t, ok)
		require.Zero(t, before[cell.Row][cell.Col], "spawned on an occupied cell")
		require.Contains(t, []int{2, 4}, value)

		diffs := 0
		for r := range board {
			for c := range board[r] {
				if board[r][c] != before[r][c] {
					diffs++
				}
			}
		}
		require.Equal(t, 1, diffs)
	}
}

func TestSpawnRatioIsNineToOne(t *testing.T) {
	const trials = 20000
	spawner := NewSpawner(random.New(2024))

	fours := 0
	for range trials {
		_, value, _ := spawner.Spawn(NewBoard(4))
		if value == 4 {
			fours++
		}
	}

	ratio := float64(fours) / trials
	assert.InDelta(t, spawnFourProbability, ratio, 0.015)
}
