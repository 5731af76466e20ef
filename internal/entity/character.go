package entity

import (
	"fmt"
	"slices"
)

// Character creation rules.
const (
	BaseStat    = 5 // Starting value of every stat; allocation never goes below it
	BonusPoints = 3 // Points to spread across stats
)

// Class represents an adventurer's class.
type Class int

const (
	ClassWarrior Class = iota
	ClassWizard
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassWarrior:
		return "Warrior"
	case ClassWizard:
		return "Wizard"
	default:
		return "Unknown"
	}
}

// ID returns the class identifier for data lookup.
func (c Class) ID() string {
	switch c {
	case ClassWarrior:
		return "warrior"
	case ClassWizard:
		return "wizard"
	default:
		return "unknown"
	}
}

// ParseClass returns the class with the given identifier.
func ParseClass(id string) (Class, error) {
	switch id {
	case "warrior", "":
		return ClassWarrior, nil
	case "wizard":
		return ClassWizard, nil
	default:
		return 0, fmt.Errorf("unknown class %q", id)
	}
}

// Gender is the character's chosen gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Stat identifies an allocatable attribute.
type Stat string

const (
	StatStrength     Stat = "STR"
	StatDexterity    Stat = "DEX"
	StatConstitution Stat = "CON"
	StatIntelligence Stat = "INT"
	StatWisdom       Stat = "WIS"
	StatCharisma     Stat = "CHA"
)

// AllStats lists the stats in display order.
var AllStats = []Stat{
	StatStrength, StatDexterity, StatConstitution,
	StatIntelligence, StatWisdom, StatCharisma,
}

// Character is the data produced by character creation. The dungeon engine
// carries it but none of it affects movement or loot.
type Character struct {
	Class  Class
	Gender Gender
	Face   int
	Stats  map[Stat]int

	pointsLeft int
}

// NewCharacter creates a character with every stat at BaseStat and all bonus
// points unspent. faces is the number of selectable faces; out-of-range faces
// wrap into [0, faces).
func NewCharacter(class Class, gender Gender, face, faces int) *Character {
	stats := make(map[Stat]int, len(AllStats))
	for _, s := range AllStats {
		stats[s] = BaseStat
	}
	if gender != GenderFemale {
		gender = GenderMale
	}
	if faces > 0 {
		face = ((face % faces) + faces) % faces
	} else {
		face = 0
	}
	return &Character{
		Class:      class,
		Gender:     gender,
		Face:       face,
		Stats:      stats,
		pointsLeft: BonusPoints,
	}
}

// AdjustStat moves delta points into (or out of) a stat. It reports false and
// changes nothing if the stat would drop below BaseStat or the pool would go
// negative or above BonusPoints.
func (c *Character) AdjustStat(stat Stat, delta int) bool {
	if !slices.Contains(AllStats, stat) {
		return false
	}
	value := c.Stats[stat] + delta
	points := c.pointsLeft - delta

	if value < BaseStat || points < 0 || points > BonusPoints {
		return false
	}

	c.Stats[stat] = value
	c.pointsLeft = points
	return true
}

// PointsLeft returns the unspent bonus points.
func (c *Character) PointsLeft() int {
	return c.pointsLeft
}
