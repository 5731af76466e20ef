package game

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonloot/internal/movement"
)

func TestKeyHoldWindow(t *testing.T) {
	k := newKeyHold(500 * time.Millisecond)
	start := time.Unix(1000, 0)

	k.press(dirRight, start)
	if got := k.directions(start.Add(100 * time.Millisecond)); got != (movement.Directions{Right: true}) {
		t.Errorf("directions() inside window = %+v, want right", got)
	}
	if got := k.directions(start.Add(500 * time.Millisecond)); got != (movement.Directions{}) {
		t.Errorf("directions() after window = %+v, want none", got)
	}

	// Auto-repeat extends the hold.
	k.press(dirRight, start.Add(400*time.Millisecond))
	if got := k.directions(start.Add(800 * time.Millisecond)); !got.Right {
		t.Error("repeat press did not extend the hold")
	}
}

func TestKeyHoldOppositeCancels(t *testing.T) {
	k := newKeyHold(defaultHoldWindow)
	now := time.Unix(1000, 0)

	k.press(dirLeft, now)
	k.press(dirUp, now)
	k.press(dirRight, now)
	k.press(dirDown, now)

	want := movement.Directions{Right: true, Down: true}
	if got := k.directions(now); got != want {
		t.Errorf("directions() = %+v, want %+v", got, want)
	}
}

func TestKeyHoldReleaseAll(t *testing.T) {
	k := newKeyHold(defaultHoldWindow)
	now := time.Unix(1000, 0)

	k.press(dirLeft, now)
	k.press(dirUp, now)
	k.releaseAll()

	if got := k.directions(now); got != (movement.Directions{}) {
		t.Errorf("directions() after releaseAll = %+v, want none", got)
	}
}

func TestHandleKeyEvent(t *testing.T) {
	g := &Game{hold: newKeyHold(defaultHoldWindow), running: true}
	now := time.Unix(1000, 0)

	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), now)
	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now)
	if got := g.hold.directions(now); got != (movement.Directions{Right: true, Up: true}) {
		t.Errorf("directions() = %+v, want right+up", got)
	}

	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), now)
	if got := g.hold.directions(now); got != (movement.Directions{}) {
		t.Errorf("directions() after space = %+v, want none", got)
	}

	g.handleKeyEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now)
	if g.running {
		t.Error("q should stop the game")
	}
}
