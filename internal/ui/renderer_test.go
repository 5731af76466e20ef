package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonloot/internal/chest"
	"github.com/samdwyer/dungeonloot/internal/inventory"
	"github.com/samdwyer/dungeonloot/internal/world"
)

type fakeView struct {
	grid    *world.Grid
	x, y    float64
	symbol  rune
	chests  []chest.Chest
	entries []inventory.Entry
}

func (v *fakeView) Grid() *world.Grid                   { return v.grid }
func (v *fakeView) PlayerPosition() (float64, float64)  { return v.x, v.y }
func (v *fakeView) PlayerSymbol() rune                  { return v.symbol }
func (v *fakeView) ActiveChests() []chest.Chest         { return v.chests }
func (v *fakeView) InventoryEntries() []inventory.Entry { return v.entries }

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen() error = %v", err)
	}
	sim.SetSize(60, 20)
	t.Cleanup(screen.Close)
	return NewRenderer(screen, map[string]tcell.Color{"Rare": tcell.ColorBlue}), sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func textAt(sim tcell.SimulationScreen, x, y, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = runeAt(sim, x+i, y)
	}
	return string(out)
}

func TestRenderDrawsMapChestsAndPlayer(t *testing.T) {
	renderer, sim := newTestRenderer(t)
	grid, err := world.ParseRows([]string{
		"#####",
		"#.C.#",
		"#C..#",
		"#####",
	}, 32)
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	reg := chest.NewRegistry(grid)
	active := reg.ActiveChests()

	view := &fakeView{grid: grid, x: 112, y: 80, symbol: 'W', chests: active[:1]}
	renderer.Render(view, nil, nil, time.Now())

	if got := runeAt(sim, 0, 0); got != '#' {
		t.Errorf("wall rune = %q, want '#'", got)
	}
	if got := runeAt(sim, 2, 1); got != '$' {
		t.Errorf("active chest rune = %q, want '$'", got)
	}
	if got := runeAt(sim, 1, 2); got != '.' {
		t.Errorf("opened chest rune = %q, want '.'", got)
	}
	if got := runeAt(sim, 3, 2); got != 'W' {
		t.Errorf("player rune = %q, want the class glyph 'W'", got)
	}
	if got := textAt(sim, 0, 5, 18); got != "Chests: find them!" {
		t.Errorf("HUD = %q, want %q", got, "Chests: find them!")
	}
}

func TestRenderHUDAndPopup(t *testing.T) {
	renderer, sim := newTestRenderer(t)
	grid, _ := world.ParseRows([]string{"#.#"}, 32)

	now := time.Now()
	view := &fakeView{
		grid: grid, x: 48, y: 16, symbol: '@',
		entries: []inventory.Entry{{Item: "Flame Ring", Rarity: "Rare", Seq: 0}},
	}
	popup := &Popup{Text: "Rare: Flame Ring!", Color: tcell.ColorBlue, Until: now.Add(time.Second)}
	renderer.Render(view, popup, nil, now)

	if got := textAt(sim, 0, 2, 20); got != "Inventory: 1 item(s)" {
		t.Errorf("HUD = %q, want %q", got, "Inventory: 1 item(s)")
	}
	if got := textAt(sim, 0, 3, 17); got != "Rare: Flame Ring!" {
		t.Errorf("popup = %q, want %q", got, "Rare: Flame Ring!")
	}
	if got := textAt(sim, 5, 1, 21); got != " 1. Flame Ring (Rare)" {
		t.Errorf("inventory line = %q", got)
	}

	// Expired popups are not drawn.
	renderer.Render(view, popup, nil, now.Add(2*time.Second))
	if got := runeAt(sim, 0, 3); got == 'R' {
		t.Error("expired popup still drawn")
	}
}

func TestRenderBurst(t *testing.T) {
	renderer, sim := newTestRenderer(t)
	grid, err := world.ParseRows([]string{
		"#####",
		"#...#",
		"#.C.#",
		"#####",
	}, 32)
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}

	now := time.Now()
	view := &fakeView{grid: grid, x: 48, y: 48, symbol: '@'}
	burst := &Burst{Cell: world.Cell{Row: 2, Col: 2}, Color: tcell.ColorYellow, Until: now.Add(400 * time.Millisecond)}
	renderer.Render(view, nil, burst, now)

	for _, pos := range [][2]int{{2, 2}, {3, 1}, {3, 2}, {2, 1}} {
		if got := runeAt(sim, pos[0], pos[1]); got != '*' {
			t.Errorf("cell (%d,%d) = %q, want burst '*'", pos[0], pos[1], got)
		}
	}
	if got := runeAt(sim, 2, 3); got != '#' {
		t.Errorf("wall under burst = %q, want '#'", got)
	}
	if got := runeAt(sim, 1, 1); got != '@' {
		t.Errorf("player under burst = %q, want '@'", got)
	}

	renderer.Render(view, nil, burst, now.Add(time.Second))
	if got := runeAt(sim, 2, 2); got == '*' {
		t.Error("expired burst still drawn")
	}
}

func TestPopupVisible(t *testing.T) {
	now := time.Now()
	var nilPopup *Popup
	tests := []struct {
		popup *Popup
		want  bool
	}{
		{nilPopup, false},
		{&Popup{Text: "", Until: now.Add(time.Second)}, false},
		{&Popup{Text: "Epic: Crystal Orb!", Until: now.Add(time.Second)}, true},
		{&Popup{Text: "Epic: Crystal Orb!", Until: now}, false},
	}

	for i, tt := range tests {
		if got := tt.popup.Visible(now); got != tt.want {
			t.Errorf("case %d: Visible() = %v, want %v", i, got, tt.want)
		}
	}
}

func TestRenderMessageWideRunes(t *testing.T) {
	renderer, _ := newTestRenderer(t)

	end := renderer.RenderMessage("宝a", 0, 0, tcell.StyleDefault)
	if end != 3 {
		t.Errorf("RenderMessage() end = %d, want 3", end)
	}
}
