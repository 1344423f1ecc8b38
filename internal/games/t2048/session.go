package t2048

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/random"
)

// ErrInvalidSize is returned for board sizes outside [MinSize, MaxSize].
var ErrInvalidSize = errors.New("t2048: invalid board size")

// SessionOptions configures a new Session.
type SessionOptions struct {
	Size   int           // Board dimension, 0 means DefaultSize
	Policy Policy        // End-of-game policy, empty means PolicyReach
	Source random.Source // Spawn randomness, required
}

// MoveResult describes what a single Move call did.
type MoveResult struct {
	Changed      bool
	Gained       int
	Spawned      Cell
	SpawnedValue int
	Outcome      Outcome
}

// Session owns the mutable state of one game: the board, the score, the
// in-memory highest score and the game-over flag.
type Session struct {
	size      int
	policy    Policy
	spawner   *Spawner
	board     Board
	score     int
	best      int
	gameOver  bool
	won       bool
	observers []Observer
}

// NewSession validates the options and starts the first round.
func NewSession(opts SessionOptions) (*Session, error) {
	size := opts.Size
	if size == 0 {
		size = DefaultSize
	}
	if !ValidSize(size) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	policy, err := ParsePolicy(string(opts.Policy))
	if err != nil {
		return nil, err
	}

	if opts.Source == nil {
		return nil, errors.New("t2048: session requires a random source")
	}

	s := &Session{
		size:    size,
		policy:  policy,
		spawner: NewSpawner(opts.Source),
	}
	s.Reset()
	return s, nil
}

// Observe registers an observer and immediately renders to it.
func (s *Session) Observe(o Observer) {
	s.observers = append(s.observers, o)
	o.OnRender(s.View())
}

// SetSource replaces the spawn randomness. Takes effect on the next spawn.
func (s *Session) SetSource(src random.Source) {
	s.spawner = NewSpawner(src)
}

// Reset starts a new round: empty board, zero score, two spawned tiles.
// The highest score is kept.
func (s *Session) Reset() {
	s.board = NewBoard(s.size)
	s.gameOver = false
	s.won = false
	s.score = 0
	s.spawner.Spawn(s.board)
	s.spawner.Spawn(s.board)
	s.render()
}

// Resize changes the board dimension and resets the round.
func (s *Session) Resize(n int) error {
	if !ValidSize(n) {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	s.size = n
	s.Reset()
	return nil
}

// Move applies one directional move. It is ignored once the game is over.
// A move that changes nothing does not spawn, render or check for the end of
// the round.
func (s *Session) Move(dir Direction) MoveResult {
	if s.gameOver {
		return MoveResult{}
	}

	next, gained, changed := Move(s.board, dir)
	if !changed {
		return MoveResult{}
	}

	s.board = next
	s.score += gained
	if s.score > s.best {
		s.best = s.score
	}

	res := MoveResult{Changed: true, Gained: gained}
	res.Spawned, res.SpawnedValue, _ = s.spawner.Spawn(s.board)
	s.render()

	res.Outcome = s.policy.Evaluate(s.board)
	if res.Outcome == OutcomeNone && IsTerminal(s.board) {
		res.Outcome = OutcomeNoMoves
	}
	if res.Outcome != OutcomeNone {
		s.finish(res.Outcome)
	}
	return res
}

// finish flags the round as over and tells observers.
func (s *Session) finish(outcome Outcome) {
	s.gameOver = true
	s.won = outcome == OutcomeWin

	ev := Event{
		Score:   s.score,
		Best:    s.best,
		MaxTile: s.board.MaxTile(),
	}
	switch outcome {
	case OutcomeWin:
		ev.Type = EventWin
	case OutcomeOverflow:
		ev.Type = EventOverflow
	default:
		ev.Type = EventNoMoves
	}

	for _, o := range s.observers {
		o.OnEvent(ev)
	}
}

func (s *Session) render() {
	if len(s.observers) == 0 {
		return
	}
	v := s.View()
	for _, o := range s.observers {
		o.OnRender(v)
	}
}

// View returns a copy of the current state.
func (s *Session) View() View {
	return View{
		Board:    s.board.Clone(),
		Size:     s.size,
		Score:    s.score,
		Best:     s.best,
		GameOver: s.gameOver,
		Won:      s.won,
	}
}

// Board returns a copy of the current board.
func (s *Session) Board() Board { return s.board.Clone() }

// Size returns the board dimension.
func (s *Session) Size() int { return s.size }

// Policy returns the active end-of-game policy.
func (s *Session) Policy() Policy { return s.policy }

// Score returns the score of the current round.
func (s *Session) Score() int { return s.score }

// Best returns the highest score seen by this session.
func (s *Session) Best() int { return s.best }

// GameOver reports whether the current round has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Won reports whether the current round ended in a win.
func (s *Session) Won() bool { return s.won }
