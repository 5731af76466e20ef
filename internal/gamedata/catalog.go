package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungeonloot/internal/loot"
	"github.com/samdwyer/dungeonloot/internal/world"
)

// Catalog bundles every static table the game needs at startup.
type Catalog struct {
	Dungeon   DungeonDef
	Rarities  []RarityDef
	Items     []string
	Character CharacterFile
}

// LoadCatalog loads all embedded data files and validates them together.
func LoadCatalog() (*Catalog, error) {
	dungeon, err := LoadDungeon()
	if err != nil {
		return nil, err
	}
	rarities, err := LoadRarities()
	if err != nil {
		return nil, err
	}
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	character, err := LoadCharacterOptions()
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{
		Dungeon:   dungeon,
		Rarities:  rarities,
		Items:     items,
		Character: character,
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Validate checks that the map and loot tables build and that character
// creation has at least one class and face to offer.
func (c *Catalog) Validate() error {
	if _, err := c.Grid(); err != nil {
		return err
	}
	if _, err := c.LootTable(); err != nil {
		return err
	}
	if len(c.Character.Classes) == 0 || len(c.Character.Faces) == 0 {
		return errors.New("character options: need at least one class and one face")
	}
	return nil
}

// MustLoadCatalog loads the catalog, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Tiers returns the rarity tiers in file order.
func (c *Catalog) Tiers() []loot.RarityTier {
	tiers := make([]loot.RarityTier, len(c.Rarities))
	for i, r := range c.Rarities {
		tiers[i] = r.Tier()
	}
	return tiers
}

// LootTable builds the validated loot table.
func (c *Catalog) LootTable() (*loot.Table, error) {
	table, err := loot.NewTable(c.Tiers(), c.Items)
	if err != nil {
		return nil, fmt.Errorf("loot tables: %w", err)
	}
	return table, nil
}

// Grid builds the validated world grid.
func (c *Catalog) Grid() (*world.Grid, error) {
	grid, err := c.Dungeon.Grid()
	if err != nil {
		return nil, fmt.Errorf("dungeon map: %w", err)
	}
	return grid, nil
}
