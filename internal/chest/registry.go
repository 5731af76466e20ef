package chest

import (
	"sync"

	"github.com/samdwyer/dungeonloot/internal/inventory"
	"github.com/samdwyer/dungeonloot/internal/loot"
	"github.com/samdwyer/dungeonloot/internal/world"
)

// chestInset is how much smaller a chest is than its tile, in world units.
const chestInset = 8

// Chest is a reward trigger anchored to a chest spawn tile.
type Chest struct {
	ID         int // row*cols + col, so ascending ID is row-major order
	Cell       world.Cell
	X, Y       float64 // Centre in world coordinates
	HalfExtent float64
	State      State
	Rarity     string // Set once opened
	Item       string // Set once opened
}

// Bounds returns the chest's trigger region.
func (c Chest) Bounds() world.Rect {
	return world.RectAround(c.X, c.Y, c.HalfExtent)
}

// Result describes a resolved chest for the presentation layer.
type Result struct {
	ChestID int
	Rarity  string
	Color   string
	Glow    string
	Item    string
	X, Y    float64
}

// Roller rolls rewards. *loot.Table implements it.
type Roller interface {
	RollRarity(src loot.Source) loot.RarityTier
	RollItem(src loot.Source) (string, error)
}

// Inventory receives resolved rewards. *inventory.Store implements it.
type Inventory interface {
	Append(e inventory.Entry) inventory.Entry
}

// Registry owns every chest in the world. Chests are created once at world
// load and move only from unopened to opened.
type Registry struct {
	mu     sync.Mutex
	chests []Chest     // ascending ID
	index  map[int]int // ID -> position in chests
}

// NewRegistry creates an unopened chest for every chest spawn tile in the grid.
func NewRegistry(grid *world.Grid) *Registry {
	cells := grid.ChestSpawnCells()
	r := &Registry{
		chests: make([]Chest, 0, len(cells)),
		index:  make(map[int]int, len(cells)),
	}

	half := (grid.TileSize() - chestInset) / 2
	for _, cell := range cells {
		x, y := grid.CellCenter(cell.Row, cell.Col)
		id := cell.Row*grid.Cols() + cell.Col
		r.index[id] = len(r.chests)
		r.chests = append(r.chests, Chest{
			ID:         id,
			Cell:       cell,
			X:          x,
			Y:          y,
			HalfExtent: half,
			State:      StateUnopened,
		})
	}
	return r
}

// TryResolve opens the chest and records its reward. It returns false without
// side effects when the chest is unknown or already opened, so it is safe to
// call on every frame the player overlaps the chest.
func (r *Registry) TryResolve(id int, roller Roller, src loot.Source, inv Inventory) (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok || r.chests[i].State == StateOpened {
		return Result{}, false
	}

	tier := roller.RollRarity(src)
	item, err := roller.RollItem(src)
	if err != nil {
		return Result{}, false
	}

	c := &r.chests[i]
	c.State = StateOpened
	c.Rarity = tier.Name
	c.Item = item
	inv.Append(inventory.Entry{Item: item, Rarity: tier.Name})

	return Result{
		ChestID: c.ID,
		Rarity:  tier.Name,
		Color:   tier.Color,
		Glow:    tier.Glow,
		Item:    item,
		X:       c.X,
		Y:       c.Y,
	}, true
}

// ActiveChests returns the unopened chests in ascending ID order.
func (r *Registry) ActiveChests() []Chest {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := make([]Chest, 0, len(r.chests))
	for _, c := range r.chests {
		if c.State == StateUnopened {
			active = append(active, c)
		}
	}
	return active
}

// All returns every chest, opened or not, in ascending ID order.
func (r *Registry) All() []Chest {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Chest(nil), r.chests...)
}

// Len returns the total number of chests.
func (r *Registry) Len() int {
	return len(r.chests)
}

// OpenedCount returns how many chests have been opened.
func (r *Registry) OpenedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, c := range r.chests {
		if c.State == StateOpened {
			count++
		}
	}
	return count
}
