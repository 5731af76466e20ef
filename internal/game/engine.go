// Package game drives the dungeon one frame at a time and hosts the terminal
// game loop.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonloot/internal/chest"
	"github.com/samdwyer/dungeonloot/internal/entity"
	"github.com/samdwyer/dungeonloot/internal/inventory"
	"github.com/samdwyer/dungeonloot/internal/logger"
	"github.com/samdwyer/dungeonloot/internal/loot"
	"github.com/samdwyer/dungeonloot/internal/movement"
	"github.com/samdwyer/dungeonloot/internal/telemetry"
	"github.com/samdwyer/dungeonloot/internal/world"
)

// EngineConfig is the static configuration of one world instance.
type EngineConfig struct {
	Rows       []string // Tile map: '#' wall, '.' floor, 'C' chest
	TileSize   float64  // 0 means world.DefaultTileSize
	Tiers      []loot.RarityTier
	Items      []string
	Speed      float64     // 0 means movement.DefaultSpeed
	HalfExtent float64     // 0 means entity.DefaultHalfExtent
	Rand       loot.Source // nil means a time-seeded source
	Symbol     rune        // Player glyph, 0 means '@'
	Character  *entity.Character
}

// FrameEvents is what happened during one Update.
type FrameEvents struct {
	Frame          uint64
	X, Y           float64        // Player position after movement
	Loot           []chest.Result // Chests opened this frame, ascending chest ID
	InventoryCount int
}

// Engine composes the world grid, movement, chests, loot and inventory.
// It is driven by calling Update once per frame from a single goroutine.
type Engine struct {
	grid      *world.Grid
	mover     *movement.Controller
	player    *entity.Player
	table     *loot.Table
	chests    *chest.Registry
	inventory *inventory.Store
	rng       loot.Source
	character *entity.Character
	observers []func(chest.Result)
	frame     uint64
}

// NewEngine builds a world from cfg. Configuration problems are returned as
// errors wrapping world.ErrConfiguration or loot.ErrConfiguration.
func NewEngine(ctx context.Context, cfg EngineConfig) (*Engine, error) {
	tracer := telemetry.Tracer("engine")
	_, span := tracer.Start(ctx, "world.load")
	defer span.End()

	if cfg.Speed < 0 || cfg.HalfExtent < 0 {
		err := fmt.Errorf("%w: speed %v and half-extent %v must not be negative",
			world.ErrConfiguration, cfg.Speed, cfg.HalfExtent)
		span.RecordError(err)
		return nil, err
	}

	tileSize := cfg.TileSize
	if tileSize == 0 {
		tileSize = world.DefaultTileSize
	}
	grid, err := world.ParseRows(cfg.Rows, tileSize)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	table, err := loot.NewTable(cfg.Tiers, cfg.Items)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	speed := cfg.Speed
	if speed == 0 {
		speed = movement.DefaultSpeed
	}
	half := cfg.HalfExtent
	if half == 0 {
		half = entity.DefaultHalfExtent
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sx, sy := grid.SpawnPoint()
	player := entity.NewPlayer(sx, sy, half)
	if cfg.Symbol != 0 {
		player.Symbol = cfg.Symbol
	}
	chests := chest.NewRegistry(grid)

	span.SetAttributes(
		attribute.Int("world.rows", grid.Rows()),
		attribute.Int("world.cols", grid.Cols()),
		attribute.Int("world.chests", chests.Len()),
		attribute.Int("loot.tiers", len(table.Tiers())),
		attribute.Int("loot.items", len(table.Items())),
		attribute.Int("loot.total_weight", table.TotalWeight()),
	)
	logger.Log.WithFields(logrus.Fields{
		"rows":   grid.Rows(),
		"cols":   grid.Cols(),
		"chests": chests.Len(),
	}).Debug("world loaded")

	return &Engine{
		grid:      grid,
		mover:     movement.New(grid, player, speed),
		player:    player,
		table:     table,
		chests:    chests,
		inventory: inventory.NewStore(),
		rng:       rng,
		character: cfg.Character,
	}, nil
}

// OnLoot registers a callback invoked for every opened chest, in the order
// the chests are resolved.
func (e *Engine) OnLoot(fn func(chest.Result)) {
	e.observers = append(e.observers, fn)
}

// Update advances the world by one frame: the player moves first, then every
// unopened chest the player now overlaps is opened in ascending ID order.
func (e *Engine) Update(ctx context.Context, dirs movement.Directions, dt float64) FrameEvents {
	e.frame++
	x, y := e.mover.Update(dirs, dt)
	events := FrameEvents{Frame: e.frame, X: x, Y: y}

	box := e.mover.Bounds()
	for _, c := range e.chests.ActiveChests() {
		if !c.Bounds().Intersects(box) {
			continue
		}
		if result, ok := e.resolve(ctx, c.ID); ok {
			events.Loot = append(events.Loot, result)
		}
	}

	events.InventoryCount = e.inventory.Count()
	return events
}

func (e *Engine) resolve(ctx context.Context, id int) (chest.Result, bool) {
	tracer := telemetry.Tracer("chest")
	_, span := tracer.Start(ctx, "chest.resolve")
	defer span.End()

	result, ok := e.chests.TryResolve(id, e.table, e.rng, e.inventory)
	span.SetAttributes(
		attribute.Int("chest.id", id),
		attribute.Bool("chest.opened", ok),
	)
	if !ok {
		return result, false
	}

	span.SetAttributes(
		attribute.String("loot.rarity", result.Rarity),
		attribute.String("loot.item", result.Item),
		attribute.Int64("frame", int64(e.frame)),
	)
	logger.Log.WithFields(logrus.Fields{
		"chest_id": id,
		"rarity":   result.Rarity,
		"item":     result.Item,
	}).Info("chest opened")

	for _, fn := range e.observers {
		fn(result)
	}
	return result, true
}

// Grid returns the world grid.
func (e *Engine) Grid() *world.Grid {
	return e.grid
}

// PlayerPosition returns the player's centre.
func (e *Engine) PlayerPosition() (float64, float64) {
	return e.mover.Position()
}

// PlayerSymbol returns the glyph drawn for the player.
func (e *Engine) PlayerSymbol() rune {
	return e.player.Symbol
}

// ActiveChests returns the unopened chests in ascending ID order.
func (e *Engine) ActiveChests() []chest.Chest {
	return e.chests.ActiveChests()
}

// Chests returns the chest registry.
func (e *Engine) Chests() *chest.Registry {
	return e.chests
}

// Inventory returns the reward log.
func (e *Engine) Inventory() *inventory.Store {
	return e.inventory
}

// InventoryEntries returns the collected rewards in acquisition order.
func (e *Engine) InventoryEntries() []inventory.Entry {
	return e.inventory.Entries()
}

// Character returns the character data carried into the dungeon, if any.
func (e *Engine) Character() *entity.Character {
	return e.character
}
