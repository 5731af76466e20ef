package game

import (
	"time"

	"github.com/samdwyer/dungeonloot/internal/movement"
)

// defaultHoldWindow is how long a key press keeps its direction held. It is
// longer than the typical terminal auto-repeat delay so a held key moves
// continuously.
const defaultHoldWindow = 550 * time.Millisecond

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

// keyHold turns key presses into held direction flags. Terminals report key
// presses and auto-repeats but never releases, so a direction counts as held
// until its hold window expires without another press.
type keyHold struct {
	window time.Duration
	last   [dirCount]time.Time
}

func newKeyHold(window time.Duration) *keyHold {
	return &keyHold{window: window}
}

// press records a key press. Pressing a direction cancels the opposite one so
// reversing is immediate.
func (k *keyHold) press(d direction, now time.Time) {
	k.last[d] = now
	switch d {
	case dirLeft:
		k.last[dirRight] = time.Time{}
	case dirRight:
		k.last[dirLeft] = time.Time{}
	case dirUp:
		k.last[dirDown] = time.Time{}
	case dirDown:
		k.last[dirUp] = time.Time{}
	}
}

// releaseAll stops every direction.
func (k *keyHold) releaseAll() {
	k.last = [dirCount]time.Time{}
}

func (k *keyHold) held(d direction, now time.Time) bool {
	t := k.last[d]
	return !t.IsZero() && now.Sub(t) < k.window
}

// directions returns the flags held at now.
func (k *keyHold) directions(now time.Time) movement.Directions {
	return movement.Directions{
		Left:  k.held(dirLeft, now),
		Right: k.held(dirRight, now),
		Up:    k.held(dirUp, now),
		Down:  k.held(dirDown, now),
	}
}
