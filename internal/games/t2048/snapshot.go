package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWin         GameStateType = "win"
	StateGameOver    GameStateType = "game_over"
	StateNotice      GameStateType = "notice"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Size    int
	Score   int
	Best    int
	Board   Board
	MaxTile int
	State   GameStateType
	Seed    int64 // Seed of the current round
	Moves   int   // Moves made this round
}

// snapshotOf captures the session-level fields.
func snapshotOf(s *Session) Snapshot {
	state := StatePlaying
	switch {
	case s.Won():
		state = StateWin
	case s.GameOver():
		state = StateGameOver
	}

	return Snapshot{
		Size:    s.Size(),
		Score:   s.Score(),
		Best:    s.Best(),
		Board:   s.Board(),
		MaxTile: s.board.MaxTile(),
		State:   state,
	}
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := snapshotOf(g.session)
	snap.Tick = g.tick
	snap.Variant = g.variant.ID
	snap.Seed = g.roundSeed
	snap.Moves = len(g.moves)

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.notice != nil:
		snap.State = StateNotice
	case g.paused:
		snap.State = StatePaused
	}
	return snap
}
