// Package world provides the static dungeon grid and its collision geometry.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileChestSpawn is a floor tile that holds a chest at world load.
	TileChestSpawn Tile = 'C'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileChestSpawn
}

// IsSolid returns true if the tile blocks movement.
func (t Tile) IsSolid() bool {
	return t == TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileChestSpawn:
		return "chest"
	default:
		return "unknown"
	}
}

func (t Tile) valid() bool {
	return t == TileWall || t == TileFloor || t == TileChestSpawn
}
