package t2048

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/random"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// OutcomeAbandoned marks a round the player left before it ended.
const OutcomeAbandoned Outcome = "abandoned"

// ErrReplayDiverged is returned when a recorded move no longer changes the
// board, which means the recording does not match the seed.
var ErrReplayDiverged = errors.New("t2048: replay diverged from recording")

// Recording is everything needed to reproduce one round exactly. Scores are
// not stored; replaying recomputes them.
type Recording struct {
	Variant string
	Size    int
	Seed    int64
	Moves   []Direction
	Outcome Outcome
}

// EncodeMoves packs moves into a compact string, one letter per move.
func EncodeMoves(moves []Direction) string {
	var sb strings.Builder
	sb.Grow(len(moves))
	for _, d := range moves {
		sb.WriteByte(d.String()[0])
	}
	return sb.String()
}

// DecodeMoves reverses EncodeMoves.
func DecodeMoves(s string) ([]Direction, error) {
	moves := make([]Direction, 0, len(s))
	for i := range len(s) {
		d, err := ParseDirection(s[i : i+1])
		if err != nil {
			return nil, fmt.Errorf("t2048: move %d: %w", i, err)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// Replay runs a recording on a headless session and returns the final state.
func Replay(rec Recording) (Snapshot, error) {
	v, ok := VariantByID(rec.Variant)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %q", registry.ErrUnknownVariant, rec.Variant)
	}

	s, err := NewSession(SessionOptions{
		Size:   rec.Size,
		Policy: v.Policy,
		Source: random.New(rec.Seed),
	})
	if err != nil {
		return Snapshot{}, err
	}

	for i, d := range rec.Moves {
		if s.GameOver() {
			return Snapshot{}, fmt.Errorf("%w: round over before move %d", ErrReplayDiverged, i)
		}
		if res := s.Move(d); !res.Changed {
			return Snapshot{}, fmt.Errorf("%w: move %d (%s) changed nothing", ErrReplayDiverged, i, d)
		}
	}

	snap := snapshotOf(s)
	snap.Variant = v.ID
	snap.Seed = rec.Seed
	snap.Moves = len(rec.Moves)
	return snap, nil
}
