package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/random"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Variant is a registered flavour of the game. Variants differ only in the
// end-of-game policy.
type Variant struct {
	ID          string
	Title       string
	Description string
	Policy      Policy
}

// Variants lists every variant registered with the platform.
var Variants = []Variant{
	{
		ID:          "classic",
		Title:       "2048",
		Description: "Reach the 2048 tile to win",
		Policy:      PolicyReach,
	},
	{
		ID:          "overflow",
		Title:       "2048 (Overflow)",
		Description: "Play on past 2048, but any larger tile ends the round",
		Policy:      PolicyOverflow,
	},
}

// VariantByID finds a variant. Returns false if the ID is unknown.
func VariantByID(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// defaultNotifyDelayMS lets the final board paint before the notice appears.
const defaultNotifyDelayMS = 100

// Package-level defaults applied to games created by the registry.
var (
	selectedSize    = DefaultSize
	notifyDelayMS   = defaultNotifyDelayMS
	selectedVariant = "classic"
)

// SetBoardSize sets the board size for games created afterwards.
// Out-of-range sizes are ignored.
func SetBoardSize(n int) {
	if ValidSize(n) {
		selectedSize = n
	}
}

// BoardSize returns the board size new games start with.
func BoardSize() int {
	return selectedSize
}

// SetNotifyDelay sets how long (ms) a finished board stays visible before
// the end-of-round notice is shown.
func SetNotifyDelay(ms int) {
	if ms >= 0 {
		notifyDelayMS = ms
	}
}

// SetDefaultVariant selects the variant returned by Default.
func SetDefaultVariant(id string) {
	if _, ok := VariantByID(id); ok {
		selectedVariant = id
	}
}

// Default returns the ID of the default variant.
func Default() string {
	return selectedVariant
}

func init() {
	for _, v := range Variants {
		registry.Register(registry.Info{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
		}, func() registry.Game {
			return New(v)
		})
	}
}

// Game runs a Session under the platform's tick loop. It defers the
// end-of-round notice, waits for acknowledgement and then starts a new round.
type Game struct {
	variant Variant
	master  *random.Seeded
	session *Session
	size    int
	tick    uint64

	roundSeed int64
	moves     []Direction
	finished  []Recording

	notifyTicks  int
	pending      *Event // round ended, notice not shown yet
	pendingTicks int
	notice       *Event // notice on screen, waiting for acknowledgement

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game for the given variant with the current default size.
func New(v Variant) *Game {
	return &Game{variant: v, size: selectedSize}
}

// SetSize chooses the board size. Before Reset it only records the size;
// during play it abandons the current round and starts a new one.
func (g *Game) SetSize(n int) error {
	if !ValidSize(n) {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if g.session == nil {
		g.size = n
		return nil
	}
	g.resize(n)
	return nil
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset initializes the game from scratch.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.master = random.New(cfg.Seed)
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.notifyTicks = cfg.TicksFor(notifyDelayMS)
	g.paused = false
	g.pending = nil
	g.notice = nil
	g.finished = nil
	g.session = nil

	g.startRound()
	g.checkScreenSize()
}

// startRound draws a fresh round seed and resets the session with it.
func (g *Game) startRound() {
	g.roundSeed = g.master.Int63()
	g.moves = nil
	src := random.New(g.roundSeed)

	if g.session == nil {
		s, err := NewSession(SessionOptions{Size: g.size, Policy: g.variant.Policy, Source: src})
		if err != nil {
			// Size and policy come from validated defaults.
			panic(err)
		}
		s.Observe(ObserverFuncs{Event: g.onEvent})
		g.session = s
		return
	}

	g.session.SetSource(src)
	if g.session.Size() != g.size {
		//nolint:errcheck // size validated by resize
		g.session.Resize(g.size)
		return
	}
	g.session.Reset()
}

// onEvent records the finished round and schedules the notice.
func (g *Game) onEvent(e Event) {
	g.finished = append(g.finished, g.recording(Outcome(e.Type)))
	g.pending = &e
	g.pendingTicks = 0
}

// recording captures the current round.
func (g *Game) recording(outcome Outcome) Recording {
	return Recording{
		Variant: g.variant.ID,
		Size:    g.size,
		Seed:    g.roundSeed,
		Moves:   append([]Direction(nil), g.moves...),
		Outcome: outcome,
	}
}

// DrainRecordings returns finished rounds not yet handed out and forgets them.
func (g *Game) DrainRecordings() []Recording {
	out := g.finished
	g.finished = nil
	return out
}

// Abandon records the current round as abandoned if any move was made.
// Called when the player leaves mid-round.
func (g *Game) Abandon() {
	if g.session == nil || g.session.GameOver() || len(g.moves) == 0 {
		return
	}
	g.finished = append(g.finished, g.recording(OutcomeAbandoned))
	g.moves = nil
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	w, h := requiredScreen(g.size)
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Let the final board paint before the notice goes up.
	if g.pending != nil {
		g.pendingTicks++
		if g.pendingTicks >= g.notifyTicks {
			g.notice = g.pending
			g.pending = nil
		}
		return core.StepResult{State: g.State()}
	}

	if g.notice != nil {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.notice = nil
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionGrow):
		g.resize(g.size + 1)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionShrink):
		g.resize(g.size - 1)
		return core.StepResult{State: g.State()}
	}

	moved := false
	for _, dir := range directionsFor(in) {
		if g.session.GameOver() {
			break
		}
		// Appended up front so a round-ending move is part of its recording.
		g.moves = append(g.moves, dir)
		res := g.session.Move(dir)
		if !res.Changed {
			g.moves = g.moves[:len(g.moves)-1]
		}
		moved = moved || res.Changed
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// directionsFor lists the moves of this tick in the order they were pressed.
func directionsFor(in core.InputFrame) []Direction {
	var dirs []Direction
	for _, a := range in.Order {
		switch a {
		case core.ActionUp:
			dirs = append(dirs, DirUp)
		case core.ActionDown:
			dirs = append(dirs, DirDown)
		case core.ActionLeft:
			dirs = append(dirs, DirLeft)
		case core.ActionRight:
			dirs = append(dirs, DirRight)
		}
	}
	return dirs
}

// resize changes the board size and starts a new round. The current round is
// recorded as abandoned.
func (g *Game) resize(n int) {
	if !ValidSize(n) || n == g.size {
		return
	}
	g.Abandon()
	g.size = n
	g.startRound()
	g.checkScreenSize()
}

// Resize updates the screen dimensions without restarting the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Best:     g.session.Best(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}
