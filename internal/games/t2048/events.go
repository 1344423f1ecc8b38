package t2048

// EventType identifies a terminal event emitted by a Session.
type EventType string

const (
	EventWin      EventType = "win"
	EventNoMoves  EventType = "no_moves"
	EventOverflow EventType = "overflow"
)

// Event tells the host UI that the round ended and a reset should follow
// once the user has acknowledged it.
type Event struct {
	Type    EventType
	Score   int
	Best    int
	MaxTile int
}

// Message returns the user-facing notice for the event.
func (e Event) Message() string {
	switch e.Type {
	case EventWin:
		return "You win!"
	case EventOverflow:
		return "Tile overflow!"
	default:
		return "No more moves!"
	}
}

// View is a read-only copy of the session state handed to observers.
type View struct {
	Board    Board
	Size     int
	Score    int
	Best     int
	GameOver bool
	Won      bool
}

// Observer is the pluggable presentation side of a Session. OnRender runs
// after every state transition; OnEvent runs when a round ends.
type Observer interface {
	OnRender(v View)
	OnEvent(e Event)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Render func(v View)
	Event  func(e Event)
}

// OnRender implements Observer.
func (o ObserverFuncs) OnRender(v View) {
	if o.Render != nil {
		o.Render(v)
	}
}

// OnEvent implements Observer.
func (o ObserverFuncs) OnEvent(e Event) {
	if o.Event != nil {
		o.Event(e)
	}
}
