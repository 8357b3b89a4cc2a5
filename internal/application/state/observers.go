package state

import "github.com/younwookim/brawler/internal/application/event"

// Transition describes one ChangeState call
type Transition struct {
	From    ID
	To      ID
	Initial bool // entering the first state, From is meaningless
}

// Observers fans state changes out to UI listeners. Every feed fires
// synchronously at the point of change.
type Observers struct {
	// ComboProgress carries the current hit index, 0 meaning no combo.
	ComboProgress event.Feed[int]
	// CooldownProgress carries the remaining spin cooldown fraction, 0 meaning ready.
	CooldownProgress event.Feed[float64]
	Transitions      event.Feed[Transition]
}
