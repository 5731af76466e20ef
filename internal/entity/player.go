// Package entity provides the player-controlled entity and the character
// data chosen before entering the dungeon.
package entity

import "github.com/samdwyer/dungeonloot/internal/world"

// DefaultHalfExtent is half the player's box edge: one tile minus 6 units, halved.
const DefaultHalfExtent = (world.DefaultTileSize - 6) / 2

// Player represents the player's body in world space.
type Player struct {
	X, Y       float64 // Centre position
	HalfExtent float64 // Half the edge of the bounding box
	VX, VY     float64 // Velocity from the last update, units per second
	Symbol     rune    // Display symbol
}

// NewPlayer creates a player centred at the given position.
func NewPlayer(x, y, halfExtent float64) *Player {
	return &Player{
		X:          x,
		Y:          y,
		HalfExtent: halfExtent,
		Symbol:     '@',
	}
}

// Position returns the current centre coordinates.
func (p *Player) Position() (float64, float64) {
	return p.X, p.Y
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() world.Rect {
	return world.RectAround(p.X, p.Y, p.HalfExtent)
}
