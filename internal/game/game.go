package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonloot/internal/chest"
	"github.com/samdwyer/dungeonloot/internal/gamedata"
	"github.com/samdwyer/dungeonloot/internal/logger"
	"github.com/samdwyer/dungeonloot/internal/telemetry"
	"github.com/samdwyer/dungeonloot/internal/ui"
)

const (
	popupDuration = 2500 * time.Millisecond // How long a reward message stays on screen
	burstDuration = 400 * time.Millisecond  // How long the opened chest flashes

	// maxFrameDelta caps the seconds simulated by one frame, so a stalled
	// process does not replay the whole pause on resume.
	maxFrameDelta = 0.25
)

// Game runs the engine in a terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *Engine
	rarities []string // Tier names in table order
	hold     *keyHold
	popup    *ui.Popup
	burst    *ui.Burst
	running  bool
}

// New creates a new game instance. It fails if the embedded data does not
// describe a valid world.
func New(ctx context.Context, cfg Config) (*Game, error) {
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, err
	}

	engineCfg, err := cfg.EngineConfig(catalog)
	if err != nil {
		return nil, err
	}
	engine, err := NewEngine(ctx, engineCfg)
	if err != nil {
		return nil, err
	}

	char := engineCfg.Character
	logger.Log.WithFields(logrus.Fields{
		"class":       char.Class.ID(),
		"gender":      char.Gender,
		"face":        char.Face,
		"points_left": char.PointsLeft(),
	}).Info("character entered the dungeon")

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	colors := make(map[string]tcell.Color, len(catalog.Rarities))
	rarities := make([]string, 0, len(catalog.Rarities))
	for _, r := range catalog.Rarities {
		colors[r.Name] = r.TCellColor()
		rarities = append(rarities, r.Name)
	}

	g := &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, colors),
		engine:   engine,
		rarities: rarities,
		hold:     newKeyHold(defaultHoldWindow),
		running:  true,
	}
	engine.OnLoot(g.showLoot)
	return g, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	defer span.End()

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FPS))
	defer ticker.Stop()

	last := time.Now()
	g.renderer.Render(g.engine, g.popup, g.burst, last)

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ev, time.Now())
		case now := <-ticker.C:
			dt := frameDelta(last, now)
			last = now
			g.engine.Update(ctx, g.hold.directions(now), dt)
			g.renderer.Render(g.engine, g.popup, g.burst, now)
		}
	}

	span.SetAttributes(
		attribute.Int("inventory.count", g.engine.Inventory().Count()),
		attribute.Int("chests.opened", g.engine.Chests().OpenedCount()),
	)
	if c := g.engine.Character(); c != nil {
		span.SetAttributes(attribute.String("character.class", c.Class.String()))
	}
	for _, c := range g.engine.Chests().All() {
		logger.Log.WithFields(logrus.Fields{
			"chest_id": c.ID,
			"state":    c.State.String(),
			"rarity":   c.Rarity,
			"item":     c.Item,
		}).Debug("chest at session end")
	}
	logger.Log.WithFields(g.sessionSummary()).Info("session ended")

	g.screen.Close()
	return nil
}

// frameDelta returns the seconds between two ticks, capped at maxFrameDelta.
func frameDelta(last, now time.Time) float64 {
	return min(now.Sub(last).Seconds(), maxFrameDelta)
}

// sessionSummary counts the collected rewards per rarity.
func (g *Game) sessionSummary() logrus.Fields {
	inv := g.engine.Inventory()
	fields := logrus.Fields{"items": inv.Count()}
	for _, name := range g.rarities {
		fields[strings.ToLower(name)] = inv.CountByRarity(name)
	}
	return fields
}

// showLoot turns a resolved chest into the reward popup and a glow burst at
// the chest.
func (g *Game) showLoot(result chest.Result) {
	now := time.Now()
	color := gamedata.ColorOr(result.Color, tcell.ColorWhite)
	g.popup = &ui.Popup{
		Text:  fmt.Sprintf("%s: %s!", result.Rarity, result.Item),
		Color: color,
		Until: now.Add(popupDuration),
	}
	g.burst = &ui.Burst{
		Cell:  g.engine.Grid().CellAt(result.X, result.Y),
		Color: gamedata.ColorOr(result.Glow, color),
		Until: now.Add(burstDuration),
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev, now)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent maps arrow keys and WASD to held directions.
func (g *Game) handleKeyEvent(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.hold.press(dirUp, now)
	case tcell.KeyDown:
		g.hold.press(dirDown, now)
	case tcell.KeyLeft:
		g.hold.press(dirLeft, now)
	case tcell.KeyRight:
		g.hold.press(dirRight, now)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			g.hold.press(dirUp, now)
		case 's', 'S':
			g.hold.press(dirDown, now)
		case 'a', 'A':
			g.hold.press(dirLeft, now)
		case 'd', 'D':
			g.hold.press(dirRight, now)
		case ' ':
			g.hold.releaseAll()
		case 'q', 'Q':
			g.running = false
		}
	}
}
