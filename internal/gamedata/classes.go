package gamedata

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID     string `json:"id"`     // Unique identifier matching entity.Class (e.g., "warrior")
	Name   string `json:"name"`   // Display name (e.g., "Warrior")
	Symbol string `json:"symbol"` // Single character for rendering (e.g., "W")
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *ClassDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return rune(c.Symbol[0])
}

// StatDef describes one allocatable character stat.
type StatDef struct {
	Key  string `json:"key"`  // Short key (e.g., "STR")
	Name string `json:"name"` // Display name (e.g., "Strength")
	Help string `json:"help"` // Tooltip shown by the creation screen
}

// CharacterFile represents the structure of classes.json.
type CharacterFile struct {
	Classes []ClassDef `json:"classes"`
	Genders []string   `json:"genders"`
	Faces   []string   `json:"faces"`
	Stats   []StatDef  `json:"stats"`
}

// LoadCharacterOptions loads the character-creation choices from classes.json.
func LoadCharacterOptions() (CharacterFile, error) {
	return Load[CharacterFile]("classes.json")
}

// ClassByID returns the class definition with the given ID, or nil if not found.
func (f *CharacterFile) ClassByID(id string) *ClassDef {
	for i := range f.Classes {
		if f.Classes[i].ID == id {
			return &f.Classes[i]
		}
	}
	return nil
}
