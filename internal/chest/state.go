// Package chest tracks the one-shot reward chests placed in the dungeon.
package chest

// State represents the lifecycle of a chest.
type State int

const (
	// StateUnopened is a chest waiting to be triggered.
	StateUnopened State = iota
	// StateOpened is terminal: the reward has been resolved and the chest is inert.
	StateOpened
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpened:
		return "opened"
	default:
		return "unknown"
	}
}
