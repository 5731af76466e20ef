// Package gamedata provides the embedded dungeon map, loot tables and
// character-creation data, and converts them into engine configuration.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
