package game

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/dungeonloot/internal/entity"
	"github.com/samdwyer/dungeonloot/internal/gamedata"
)

// Config holds game configuration options, read from the environment.
type Config struct {
	// Seed for random number generation. Used for reproducible loot.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"DUNGEONLOOT_SEED" envDefault:"0"`

	Speed float64 `env:"DUNGEONLOOT_SPEED" envDefault:"150"` // World units per second
	FPS   int     `env:"DUNGEONLOOT_FPS" envDefault:"60"`

	// Character data carried into the dungeon. It does not affect play.
	Class  string         `env:"DUNGEONLOOT_CLASS" envDefault:"warrior"`
	Gender string         `env:"DUNGEONLOOT_GENDER" envDefault:"male"`
	Face   int            `env:"DUNGEONLOOT_FACE" envDefault:"0"`
	Stats  map[string]int `env:"DUNGEONLOOT_STATS"` // Bonus points per stat, e.g. "STR:2,DEX:1"

	LogFile   string `env:"DUNGEONLOOT_LOG_FILE" envDefault:"dungeonloot.log"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Telemetry bool   `env:"DUNGEONLOOT_TELEMETRY" envDefault:"false"`
}

// LoadConfig parses the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports settings that cannot run. Character choices are checked
// against the game data by Character.
func (c Config) Validate() error {
	var errs []error
	if c.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed must be positive, got %v", c.Speed))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	return errors.Join(errs...)
}

// Rand returns the random source for this session.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Character builds the pass-through character from the configured class,
// gender, face and stat allocation, checked against the creation options.
func (c Config) Character(options *gamedata.CharacterFile) (*entity.Character, error) {
	def := options.ClassByID(strings.ToLower(c.Class))
	if def == nil {
		return nil, fmt.Errorf("unknown class %q", c.Class)
	}
	class, err := entity.ParseClass(def.ID)
	if err != nil {
		return nil, err
	}

	gender := strings.ToLower(c.Gender)
	if !slices.Contains(options.Genders, gender) {
		return nil, fmt.Errorf("unknown gender %q", c.Gender)
	}

	char := entity.NewCharacter(class, entity.Gender(gender), c.Face, len(options.Faces))

	for key := range c.Stats {
		if !slices.ContainsFunc(options.Stats, func(s gamedata.StatDef) bool { return s.Key == key }) {
			return nil, fmt.Errorf("unknown stat %q", key)
		}
	}
	for _, stat := range options.Stats {
		delta, ok := c.Stats[stat.Key]
		if !ok || delta == 0 {
			continue
		}
		if !char.AdjustStat(entity.Stat(stat.Key), delta) {
			return nil, fmt.Errorf("cannot add %d to %s with %d points left", delta, stat.Key, char.PointsLeft())
		}
	}
	return char, nil
}

// EngineConfig assembles the engine configuration from the embedded data.
func (c Config) EngineConfig(catalog *gamedata.Catalog) (EngineConfig, error) {
	char, err := c.Character(&catalog.Character)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("character: %w", err)
	}

	return EngineConfig{
		Rows:      catalog.Dungeon.Rows,
		TileSize:  catalog.Dungeon.TileSize,
		Tiers:     catalog.Tiers(),
		Items:     catalog.Items,
		Speed:     c.Speed,
		Rand:      c.Rand(),
		Symbol:    catalog.Character.ClassByID(char.Class.ID()).SymbolRune(),
		Character: char,
	}, nil
}
