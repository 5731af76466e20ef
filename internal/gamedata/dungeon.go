package gamedata

import "github.com/samdwyer/dungeonloot/internal/world"

// DungeonDef is the static map definition loaded from JSON.
type DungeonDef struct {
	TileSize float64  `json:"tileSize"`
	Rows     []string `json:"rows"` // '#' wall, '.' floor, 'C' chest
}

// Grid builds the world grid described by the definition.
func (d DungeonDef) Grid() (*world.Grid, error) {
	return world.ParseRows(d.Rows, d.TileSize)
}

// LoadDungeon loads the map from the embedded dungeon.json file.
func LoadDungeon() (DungeonDef, error) {
	return Load[DungeonDef]("dungeon.json")
}
