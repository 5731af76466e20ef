package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonloot/internal/loot"
)

// RarityDef defines a rarity tier loaded from JSON.
type RarityDef struct {
	Name   string `json:"name"`   // Display name (e.g., "Legendary")
	Color  string `json:"color"`  // Hex color for the reward popup
	Glow   string `json:"glow"`   // Hex color for the burst effect
	Weight int    `json:"weight"` // Relative drop frequency (higher = more common)
}

// Tier converts the definition into a loot tier.
func (r RarityDef) Tier() loot.RarityTier {
	return loot.RarityTier{
		Name:   r.Name,
		Color:  r.Color,
		Glow:   r.Glow,
		Weight: r.Weight,
	}
}

// TCellColor returns the popup color as a tcell.Color.
func (r RarityDef) TCellColor() tcell.Color {
	return ColorOr(r.Color, tcell.ColorWhite)
}

// RaritiesFile represents the structure of rarities.json.
type RaritiesFile struct {
	Rarities []RarityDef `json:"rarities"`
}

// LoadRarities loads the rarity tiers from the embedded rarities.json file.
func LoadRarities() ([]RarityDef, error) {
	file, err := Load[RaritiesFile]("rarities.json")
	if err != nil {
		return nil, err
	}
	return file.Rarities, nil
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []string `json:"items"`
}

// LoadItems loads the item pool from the embedded items.json file.
func LoadItems() ([]string, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
