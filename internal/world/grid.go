package world

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrConfiguration is returned when a map definition cannot form a valid world.
	ErrConfiguration = errors.New("invalid world configuration")
	// ErrOutOfBounds is returned by grid queries outside the map extents.
	ErrOutOfBounds = errors.New("grid position out of bounds")
)

// DefaultTileSize is the edge length of one tile in world units.
const DefaultTileSize = 32

// Cell addresses one tile of the grid.
type Cell struct {
	Row, Col int
}

// Grid is the immutable tile map of a dungeon.
type Grid struct {
	rows       int
	cols       int
	tileSize   float64
	tiles      [][]Tile
	chestCells []Cell
}

// Load builds a grid from a row-major tile matrix. The matrix is copied, so
// later changes by the caller do not affect the grid.
func Load(tiles [][]Tile, tileSize float64) (*Grid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size must be positive, got %v", ErrConfiguration, tileSize)
	}
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, fmt.Errorf("%w: empty tile matrix", ErrConfiguration)
	}

	cols := len(tiles[0])
	g := &Grid{
		rows:     len(tiles),
		cols:     cols,
		tileSize: tileSize,
		tiles:    make([][]Tile, len(tiles)),
	}

	walkable := 0
	for row := range tiles {
		if len(tiles[row]) != cols {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d",
				ErrConfiguration, row, len(tiles[row]), cols)
		}
		g.tiles[row] = make([]Tile, cols)
		for col, t := range tiles[row] {
			if !t.valid() {
				return nil, fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrConfiguration, t.Rune(), row, col)
			}
			g.tiles[row][col] = t
			if t.IsPassable() {
				walkable++
			}
			if t == TileChestSpawn {
				g.chestCells = append(g.chestCells, Cell{Row: row, Col: col})
			}
		}
	}

	if walkable == 0 {
		return nil, fmt.Errorf("%w: map has no floor or chest cell to spawn on", ErrConfiguration)
	}
	return g, nil
}

// ParseRows builds a grid from text rows using the tile runes
// ('#' wall, '.' floor, 'C' chest).
func ParseRows(rows []string, tileSize float64) (*Grid, error) {
	tiles := make([][]Tile, len(rows))
	for i, line := range rows {
		for _, r := range line {
			tiles[i] = append(tiles[i], Tile(r))
		}
	}
	return Load(tiles, tileSize)
}

// Rows returns the number of tile rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of tile columns.
func (g *Grid) Cols() int { return g.cols }

// TileSize returns the edge length of a tile in world units.
func (g *Grid) TileSize() float64 { return g.tileSize }

// InBounds reports whether (row, col) is within the map extents.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// TileAt returns the tile at the given position.
func (g *Grid) TileAt(row, col int) (Tile, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.tiles[row][col], nil
}

// IsSolid returns true iff the tile at (row, col) is a wall.
// Positions outside the grid are not walls; use TileAt to detect them.
func (g *Grid) IsSolid(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.tiles[row][col].IsSolid()
}

// WorldBounds returns the size of the map in world units.
func (g *Grid) WorldBounds() (width, height float64) {
	return float64(g.cols) * g.tileSize, float64(g.rows) * g.tileSize
}

// ChestSpawnCells returns every chest spawn in row-major order.
func (g *Grid) ChestSpawnCells() []Cell {
	cells := make([]Cell, len(g.chestCells))
	copy(cells, g.chestCells)
	return cells
}

// CellRect returns the world-space box covered by a tile.
func (g *Grid) CellRect(row, col int) Rect {
	return Rect{
		MinX: float64(col) * g.tileSize,
		MinY: float64(row) * g.tileSize,
		MaxX: float64(col+1) * g.tileSize,
		MaxY: float64(row+1) * g.tileSize,
	}
}

// CellCenter returns the world coordinates of a tile's centre.
func (g *Grid) CellCenter(row, col int) (x, y float64) {
	return float64(col)*g.tileSize + g.tileSize/2, float64(row)*g.tileSize + g.tileSize/2
}

// CellAt returns the cell containing the world point (x, y).
func (g *Grid) CellAt(x, y float64) Cell {
	return Cell{
		Row: int(math.Floor(y / g.tileSize)),
		Col: int(math.Floor(x / g.tileSize)),
	}
}

// SolidRectsOverlapping returns the boxes of all wall tiles that intersect r,
// in row-major order.
func (g *Grid) SolidRectsOverlapping(r Rect) []Rect {
	c0 := max(int(math.Floor(r.MinX/g.tileSize)), 0)
	c1 := min(int(math.Ceil(r.MaxX/g.tileSize))-1, g.cols-1)
	r0 := max(int(math.Floor(r.MinY/g.tileSize)), 0)
	r1 := min(int(math.Ceil(r.MaxY/g.tileSize))-1, g.rows-1)

	var walls []Rect
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !g.tiles[row][col].IsSolid() {
				continue
			}
			cell := g.CellRect(row, col)
			if cell.Intersects(r) {
				walls = append(walls, cell)
			}
		}
	}
	return walls
}

// SpawnPoint returns the player start position: the centre of cell (1,1) when
// it is walkable, otherwise the first walkable cell in row-major order.
func (g *Grid) SpawnPoint() (x, y float64) {
	if g.InBounds(1, 1) && g.tiles[1][1].IsPassable() {
		return g.CellCenter(1, 1)
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.tiles[row][col].IsPassable() {
				return g.CellCenter(row, col)
			}
		}
	}
	// Load guarantees a walkable cell.
	return g.CellCenter(0, 0)
}
