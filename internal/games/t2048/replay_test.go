package t2048

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/random"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func TestEncodeDecodeMoves(t *testing.T) {
	moves := []Direction{DirUp, DirDown, DirLeft, DirRight, DirLeft}

	encoded := EncodeMoves(moves)
	assert.Equal(t, "udlrl", encoded)

	decoded, err := DecodeMoves(encoded)
	require.NoError(t, err)
	assert.Equal(t, moves, decoded)

	_, err = DecodeMoves("udx")
	assert.Error(t, err)
}

func TestReplayReproducesRound(t *testing.T) {
	const seed = 31337
	s, err := NewSession(SessionOptions{Size: 4, Source: random.New(seed)})
	require.NoError(t, err)

	var moves []Direction
	for i := 0; i < 200 && !s.GameOver(); i++ {
		d := Directions[i%len(Directions)]
		if s.Move(d).Changed {
			moves = append(moves, d)
		}
	}
	require.NotEmpty(t, moves)

	snap, err := Replay(Recording{Variant: "classic", Size: 4, Seed: seed, Moves: moves})
	require.NoError(t, err)

	assert.True(t, s.Board().Equal(snap.Board))
	assert.Equal(t, s.Score(), snap.Score)
	assert.Equal(t, len(moves), snap.Moves)
}

func TestReplayDetectsDivergence(t *testing.T) {
	s, err := NewSession(SessionOptions{Size: 4, Source: random.New(1)})
	require.NoError(t, err)

	// Find a direction that is a no-op right after the opening spawn, if any,
	// by trying all four moves on a copy of the board.
	var noop *Direction
	for _, d := range Directions {
		if _, _, changed := Move(s.Board(), d); !changed {
			noop = &d
			break
		}
	}
	if noop == nil {
		t.Skip("every opening move changes this board")
	}

	_, err = Replay(Recording{Variant: "classic", Size: 4, Seed: 1, Moves: []Direction{*noop}})
	assert.ErrorIs(t, err, ErrReplayDiverged)
}

func TestReplayUnknownVariant(t *testing.T) {
	_, err := Replay(Recording{Variant: "tetris", Size: 4, Seed: 1})
	assert.ErrorIs(t, err, registry.ErrUnknownVariant)
}

func TestGameRecordsFinishedRound(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 8}
	g := New(Variants[0])
	g.Reset(cfg)

	seed := g.roundSeed
	g.session.best = 50
	g.session.board = Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 32},
		{0, 8, 16, 8},
	}

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	res := g.Step(in)

	require.True(t, res.Moved)
	require.True(t, res.State.GameOver)
	require.NotNil(t, g.pending)
	assert.Nil(t, g.notice, "notice waits for the final board to paint")

	// Moves are ignored while the round is over.
	g.Step(in)
	assert.Len(t, g.moves, 1)

	for range cfg.TicksFor(defaultNotifyDelayMS) {
		g.Step(core.NewInputFrame())
	}
	require.NotNil(t, g.notice)
	assert.Equal(t, StateNotice, g.Snapshot().State)

	recs := g.DrainRecordings()
	require.Len(t, recs, 1)
	assert.Equal(t, OutcomeNoMoves, recs[0].Outcome)
	assert.Equal(t, seed, recs[0].Seed)
	assert.Equal(t, []Direction{DirLeft}, recs[0].Moves)
	assert.Empty(t, g.DrainRecordings())

	ack := core.NewInputFrame()
	ack.Set(core.ActionConfirm)
	g.Step(ack)

	assert.Nil(t, g.notice)
	assert.False(t, g.session.GameOver())
	assert.Equal(t, 50, g.session.Best())
	assert.NotEqual(t, seed, g.roundSeed, "each round draws its own seed")
	assert.Len(t, g.session.Board().EmptyCells(), 14)
}

func TestGameResizeAbandonsRound(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 9}
	g := New(Variants[0])
	g.Reset(cfg)

	// Make moves until one changes the board.
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		in := core.NewInputFrame()
		in.Set(a)
		if g.Step(in).Moved {
			break
		}
	}
	require.NotEmpty(t, g.moves)

	grow := core.NewInputFrame()
	grow.Set(core.ActionGrow)
	g.Step(grow)

	assert.Equal(t, DefaultSize+1, g.session.Size())
	recs := g.DrainRecordings()
	require.Len(t, recs, 1)
	assert.Equal(t, OutcomeAbandoned, recs[0].Outcome)
	assert.Equal(t, DefaultSize, recs[0].Size)
}
