package t2048

import "github.com/vovakirdan/tui-2048/internal/random"

// spawnFourProbability is the chance a spawned tile is a 4 instead of a 2.
const spawnFourProbability = 0.1

// Spawner places new tiles on empty cells.
type Spawner struct {
	rng random.Source
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng random.Source) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn picks an empty cell uniformly at random and sets it to 2 (90%) or 4
// (10%). On a full board it does nothing and returns ok == false.
func (s *Spawner) Spawn(board Board) (cell Cell, value int, ok bool) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, 0, false
	}

	cell = empty[s.rng.Intn(len(empty))]

	value = 2
	if s.rng.Float64() < spawnFourProbability {
		value = 4
	}

	board[cell.Row][cell.Col] = value
	return cell, value, true
}
