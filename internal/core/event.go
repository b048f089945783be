package core

// EventKind identifies a gameplay event for the presentation layer.
type EventKind int

const (
	EventJump EventKind = iota
	EventDied
	EventWon
	EventPickupCoin
	EventPickupExtraLife
	EventGameOver
)

// String returns the event name used in logs and sound lookups.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventDied:
		return "died"
	case EventWon:
		return "won"
	case EventPickupCoin:
		return "coin"
	case EventPickupExtraLife:
		return "extra_life"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is something the simulation wants the platform to react to.
// Score and Level (the last level reached, zero based) are only meaningful
// for EventGameOver.
type Event struct {
	Kind  EventKind
	Score int
	Level int
}
