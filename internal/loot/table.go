// Package loot provides weighted rarity selection and item pools for chest rewards.
package loot

import (
	"errors"
	"fmt"
)

// ErrConfiguration is returned when a rarity or item table is unusable.
var ErrConfiguration = errors.New("invalid loot configuration")

// Source is the random source used for rolls. *math/rand.Rand satisfies it,
// so a fixed seed gives reproducible rewards.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// RarityTier is a named reward-quality bucket with a relative selection weight.
type RarityTier struct {
	Name   string
	Color  string // Hex colour used for the reward popup
	Glow   string // Hex colour used for the burst effect
	Weight int
}

// Table holds the ordered rarity tiers and the item pool.
// A Table is immutable after construction.
type Table struct {
	tiers       []RarityTier
	items       []string
	totalWeight int
}

// NewTable validates and copies the tier and item configuration.
func NewTable(tiers []RarityTier, items []string) (*Table, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no rarity tiers", ErrConfiguration)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty item pool", ErrConfiguration)
	}

	total := 0
	for _, tier := range tiers {
		if tier.Weight <= 0 {
			return nil, fmt.Errorf("%w: tier %q has weight %d", ErrConfiguration, tier.Name, tier.Weight)
		}
		total += tier.Weight
	}

	return &Table{
		tiers:       append([]RarityTier(nil), tiers...),
		items:       append([]string(nil), items...),
		totalWeight: total,
	}, nil
}

// RollRarity selects a tier with probability proportional to its weight.
//
// The draw is scaled to the total weight and each tier's weight is subtracted
// in configured order; the first tier that brings the remainder to zero or
// below wins. If a draw outside [0,1) leaves no tier selected, the last tier
// is returned.
func (t *Table) RollRarity(src Source) RarityTier {
	if len(t.tiers) == 0 {
		return RarityTier{}
	}

	roll := src.Float64() * float64(t.totalWeight)
	for _, tier := range t.tiers {
		roll -= float64(tier.Weight)
		if roll <= 0 {
			return tier
		}
	}

	return t.tiers[len(t.tiers)-1]
}

// RollItem picks an item uniformly from the pool, independent of rarity.
func (t *Table) RollItem(src Source) (string, error) {
	if len(t.items) == 0 {
		return "", fmt.Errorf("%w: empty item pool", ErrConfiguration)
	}
	return t.items[src.Intn(len(t.items))], nil
}

// Tiers returns the rarity tiers in configured order.
func (t *Table) Tiers() []RarityTier {
	return append([]RarityTier(nil), t.tiers...)
}

// Items returns the item pool.
func (t *Table) Items() []string {
	return append([]string(nil), t.items...)
}

// TotalWeight returns the sum of all tier weights.
func (t *Table) TotalWeight() int {
	return t.totalWeight
}
