package t2048

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/random"
	"github.com/vovakirdan/tui-2048/internal/random/mock"
)

// newMockSession builds a session whose spawns always pick the first empty
// cell and place a 2, unless the mock is told otherwise.
func newMockSession(t *testing.T, size int, policy Policy) (*Session, *mock.Source) {
	t.Helper()
	src := mock.New()
	s, err := NewSession(SessionOptions{Size: size, Policy: policy, Source: src})
	require.NoError(t, err)
	src.Reset()
	return s, src
}

func TestNewSessionSpawnsTwoTiles(t *testing.T) {
	s, err := NewSession(SessionOptions{Source: random.New(7)})
	require.NoError(t, err)

	assert.Equal(t, DefaultSize, s.Size())
	assert.Equal(t, PolicyReach, s.Policy())
	assert.Len(t, s.Board().EmptyCells(), DefaultSize*DefaultSize-2)
	assert.Zero(t, s.Score())
	assert.False(t, s.GameOver())
}

func TestNewSessionRejectsBadOptions(t *testing.T) {
	_, err := NewSession(SessionOptions{Size: 1, Source: random.New(1)})
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewSession(SessionOptions{Size: 7, Source: random.New(1)})
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewSession(SessionOptions{Policy: "sudden-death", Source: random.New(1)})
	require.ErrorIs(t, err, ErrUnknownPolicy)

	_, err = NewSession(SessionOptions{})
	require.Error(t, err)
}

func TestMoveLeftEndToEnd(t *testing.T) {
	src := mock.New()
	s, err := NewSession(SessionOptions{Size: 4, Source: src})
	require.NoError(t, err)

	// The mock fills the first two empty cells with 2s.
	require.True(t, s.Board().Equal(Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}))

	res := s.Move(DirLeft)

	assert.True(t, res.Changed)
	assert.Equal(t, 4, res.Gained)
	assert.Equal(t, 4, s.Score())
	assert.Equal(t, 4, s.Board()[0][0])
	assert.Equal(t, Cell{Row: 0, Col: 1}, res.Spawned)
	assert.Len(t, s.Board().EmptyCells(), 14, "exactly one tile should be added after the merge")
}

func TestNoOpMoveDoesNotSpawn(t *testing.T) {
	s, src := newMockSession(t, 4, PolicyReach)
	s.board = Board{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 4, 8, 0},
	}

	renders := 0
	s.Observe(ObserverFuncs{Render: func(View) { renders++ }})
	renders = 0

	res := s.Move(DirLeft)

	assert.False(t, res.Changed)
	assert.Empty(t, src.IntnCalls, "spawner must not run on a no-op move")
	assert.Zero(t, renders, "observers must not be notified on a no-op move")
	assert.Equal(t, 0, s.Score())
}

func TestMoveIgnoredWhenGameOver(t *testing.T) {
	s, src := newMockSession(t, 4, PolicyReach)
	s.board = Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s.gameOver = true

	res := s.Move(DirLeft)

	assert.False(t, res.Changed)
	assert.Empty(t, src.IntnCalls)
	assert.Equal(t, 2, s.Board()[0][1], "board must stay untouched")
}

func TestScoreEqualsMergeTotal(t *testing.T) {
	s, _ := newMockSession(t, 4, PolicyReach)
	s.board = Board{
		{2, 2, 4, 4},
		{8, 8, 0, 0},
		{0, 0, 0, 0},
		{16, 0, 16, 2},
	}
	sumBefore := s.board.Sum()

	next, gained, changed := Move(s.board, DirLeft)

	require.True(t, changed)
	assert.Equal(t, 4+8+16+32, gained)
	assert.Equal(t, sumBefore, next.Sum(), "merging must conserve the total tile value")

	res := s.Move(DirLeft)
	assert.Equal(t, gained, res.Gained)
	assert.Equal(t, gained, s.Score())
}

func TestMoveConservesTotalForSeededBoards(t *testing.T) {
	src := random.New(99)
	for trial := range 200 {
		n := MinSize + trial%(MaxSize-MinSize+1)
		board := randomBoard(src, n)

		for _, d := range Directions {
			next, gained, _ := Move(board, d)
			require.Equal(t, board.Sum(), next.Sum(), "trial %d dir %s", trial, d)
			require.GreaterOrEqual(t, gained, 0)
		}
	}
}

func TestRepeatedMoveOnlyChangesThroughMerges(t *testing.T) {
	// Compaction is idempotent: a second move in the same direction can only
	// change the board by merging tiles the first pass just produced.
	src := random.New(2048)
	for trial := range 200 {
		board := randomBoard(src, MinSize+trial%(MaxSize-MinSize+1))

		for _, d := range Directions {
			once, _, _ := Move(board, d)
			twice, gained, changed := Move(once, d)

			if gained == 0 {
				require.False(t, changed, "trial %d dir %s:\n%v\n->\n%v", trial, d, once, twice)
			}
		}
	}
}

func TestHighestScoreSurvivesReset(t *testing.T) {
	s, _ := newMockSession(t, 4, PolicyReach)
	s.board = Board{
		{8, 8, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	s.Move(DirLeft)
	require.Equal(t, 16, s.Best())

	s.Reset()

	assert.Zero(t, s.Score())
	assert.Equal(t, 16, s.Best())
	assert.False(t, s.GameOver())
	assert.Len(t, s.Board().EmptyCells(), 14)
}

func TestResize(t *testing.T) {
	s, _ := newMockSession(t, 4, PolicyReach)
	s.best = 100

	require.NoError(t, s.Resize(3))
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 3, s.Board().Size())
	assert.Len(t, s.Board().EmptyCells(), 7)
	assert.Equal(t, 100, s.Best())

	require.ErrorIs(t, s.Resize(MaxSize+1), ErrInvalidSize)
	assert.Equal(t, 3, s.Size(), "failed resize must keep the current size")
}

func TestNoMovesEndsRound(t *testing.T) {
	s, _ := newMockSession(t, 2, PolicyReach)
	// Moving up leaves one hole at the bottom right; the mock fills it with a
	// 2, which leaves no empty cell and no equal neighbours.
	s.board = Board{
		{4, 0},
		{16, 8},
	}

	var events []Event
	s.Observe(ObserverFuncs{Event: func(e Event) { events = append(events, e) }})

	res := s.Move(DirUp)

	require.True(t, res.Changed)
	assert.Equal(t, OutcomeNoMoves, res.Outcome)
	assert.True(t, s.GameOver())
	assert.False(t, s.Won())
	require.Len(t, events, 1)
	assert.Equal(t, EventNoMoves, events[0].Type)
	assert.Equal(t, "No more moves!", events[0].Message())
}

func TestReachPolicyWinsAt2048(t *testing.T) {
	s, _ := newMockSession(t, 4, PolicyReach)
	s.board = Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	var got []Event
	s.Observe(ObserverFuncs{Event: func(e Event) { got = append(got, e) }})

	res := s.Move(DirLeft)

	assert.Equal(t, OutcomeWin, res.Outcome)
	assert.True(t, s.Won())
	assert.True(t, s.GameOver())
	require.Len(t, got, 1)
	assert.Equal(t, EventWin, got[0].Type)
	assert.Equal(t, WinTile, got[0].MaxTile)
}

func TestOverflowPolicy(t *testing.T) {
	s, _ := newMockSession(t, 4, PolicyOverflow)
	s.board = Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := s.Move(DirLeft)
	assert.Equal(t, OutcomeNone, res.Outcome, "reaching 2048 is fine under overflow")
	assert.False(t, s.GameOver())

	s.board = Board{
		{2048, 2048, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	res = s.Move(DirLeft)

	assert.Equal(t, OutcomeOverflow, res.Outcome)
	assert.True(t, s.GameOver())
	assert.False(t, s.Won())
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyReach, p)

	p, err = ParsePolicy("overflow")
	require.NoError(t, err)
	assert.Equal(t, PolicyOverflow, p)

	_, err = ParsePolicy("both")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestObserveRendersImmediately(t *testing.T) {
	s, _ := newMockSession(t, 3, PolicyReach)

	var views []View
	s.Observe(ObserverFuncs{Render: func(v View) { views = append(views, v) }})

	require.Len(t, views, 1)
	assert.Equal(t, 3, views[0].Size)

	// Views are copies; mutating one must not leak into the session.
	views[0].Board[0][0] = 4096
	assert.NotEqual(t, 4096, s.Board()[0][0])
}

// randomBoard fills roughly half the cells with small powers of two.
func randomBoard(src *random.Seeded, n int) Board {
	b := NewBoard(n)
	for r := range n {
		for c := range n {
			if src.Intn(2) == 0 {
				b[r][c] = 2 << src.Intn(4)
			}
		}
	}
	return b
}
