// Package inventory records the rewards the player has collected.
package inventory

// Entry is one collected reward.
type Entry struct {
	Item   string
	Rarity string
	Seq    int // Acquisition order, starting at 0
}

// Store is an append-only log of collected rewards.
// Entries are never removed or reordered.
type Store struct {
	entries []Entry
}

// NewStore creates an empty inventory.
func NewStore() *Store {
	return &Store{}
}

// Append records a reward and returns it with its sequence index assigned.
func (s *Store) Append(e Entry) Entry {
	e.Seq = len(s.entries)
	s.entries = append(s.entries, e)
	return e
}

// Count returns the number of collected rewards.
func (s *Store) Count() int {
	return len(s.entries)
}

// Entries returns a copy of the log in acquisition order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// CountByRarity returns how many collected rewards have the given rarity.
func (s *Store) CountByRarity(rarity string) int {
	count := 0
	for _, e := range s.entries {
		if e.Rarity == rarity {
			count++
		}
	}
	return count
}
