package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/dungeonloot/internal/chest"
	"github.com/samdwyer/dungeonloot/internal/inventory"
	"github.com/samdwyer/dungeonloot/internal/world"
)

// recentLoot is how many inventory entries the side panel lists.
const recentLoot = 12

// View is the read-only game state the renderer draws.
type View interface {
	Grid() *world.Grid
	PlayerPosition() (float64, float64)
	PlayerSymbol() rune
	ActiveChests() []chest.Chest
	InventoryEntries() []inventory.Entry
}

// Popup is a transient reward message shown under the map.
type Popup struct {
	Text  string
	Color tcell.Color
	Until time.Time
}

// Visible reports whether the popup should still be drawn at now.
func (p *Popup) Visible(now time.Time) bool {
	return p != nil && p.Text != "" && now.Before(p.Until)
}

// Burst is a short flash in a rarity's glow colour around an opened chest.
type Burst struct {
	Cell  world.Cell
	Color tcell.Color
	Until time.Time
}

// Visible reports whether the burst should still be drawn at now.
func (b *Burst) Visible(now time.Time) bool {
	return b != nil && now.Before(b.Until)
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen       *Screen
	rarityColors map[string]tcell.Color
}

// NewRenderer creates a new renderer for the given screen. rarityColors maps
// rarity names to the colour used for inventory entries.
func NewRenderer(screen *Screen, rarityColors map[string]tcell.Color) *Renderer {
	return &Renderer{screen: screen, rarityColors: rarityColors}
}

// Render draws the dungeon, chests, player and HUD to the screen.
func (r *Renderer) Render(view View, popup *Popup, burst *Burst, now time.Time) {
	r.screen.Clear()
	grid := view.Grid()

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			tile, _ := grid.TileAt(row, col)
			if tile == world.TileChestSpawn {
				// Opened chests leave plain floor behind.
				tile = world.TileFloor
			}
			r.screen.SetContent(col, row, tile.Rune(), r.getTileStyle(tile, row, col))
		}
	}

	chestStyle := tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	for _, c := range view.ActiveChests() {
		r.screen.SetContent(c.Cell.Col, c.Cell.Row, '$', chestStyle)
	}

	if burst.Visible(now) {
		r.renderBurst(grid, burst)
	}

	px, py := view.PlayerPosition()
	cell := grid.CellAt(px, py)
	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorLime).
		Bold(true)
	r.screen.SetContent(cell.Col, cell.Row, view.PlayerSymbol(), playerStyle)

	entries := view.InventoryEntries()
	hud := "Chests: find them!"
	if len(entries) > 0 {
		hud = fmt.Sprintf("Inventory: %d item(s)", len(entries))
	}
	r.RenderMessage(hud, 0, grid.Rows()+1, tcell.StyleDefault.Foreground(tcell.ColorGray))

	if popup.Visible(now) {
		r.RenderMessage(popup.Text, 0, grid.Rows()+2, tcell.StyleDefault.Foreground(popup.Color).Bold(true))
	}

	r.renderInventory(entries, grid.Cols()+2)
	r.screen.Show()
}

// renderBurst marks the walkable cells around the burst centre.
func (r *Renderer) renderBurst(grid *world.Grid, burst *Burst) {
	style := tcell.StyleDefault.Foreground(burst.Color).Bold(true)
	for row := burst.Cell.Row - 1; row <= burst.Cell.Row+1; row++ {
		for col := burst.Cell.Col - 1; col <= burst.Cell.Col+1; col++ {
			tile, err := grid.TileAt(row, col)
			if err != nil || !tile.IsPassable() {
				continue
			}
			r.screen.SetContent(col, row, '*', style)
		}
	}
}

// renderInventory lists the most recent rewards to the right of the map.
func (r *Renderer) renderInventory(entries []inventory.Entry, x int) {
	r.RenderMessage("Loot", x, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite).Underline(true))

	start := max(0, len(entries)-recentLoot)
	for i, e := range entries[start:] {
		color, ok := r.rarityColors[e.Rarity]
		if !ok {
			color = tcell.ColorWhite
		}
		line := fmt.Sprintf("%2d. %s (%s)", e.Seq+1, e.Item, e.Rarity)
		r.RenderMessage(line, x, i+1, tcell.StyleDefault.Foreground(color))
	}
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile, row, col int) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	case world.TileFloor:
		// Checkerboard shading.
		if (row+col)%2 == 0 {
			return tcell.StyleDefault.Foreground(tcell.ColorDimGray)
		}
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage writes msg starting at (x, y), advancing by each rune's
// display width so wide glyphs do not overlap.
func (r *Renderer) RenderMessage(msg string, x, y int, style tcell.Style) int {
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}
