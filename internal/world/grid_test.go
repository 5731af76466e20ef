package world

import (
	"errors"
	"testing"
)

var testRows = []string{
	"#####",
	"#..C#",
	"#.#.#",
	"#####",
}

func mustParse(t *testing.T, rows []string) *Grid {
	t.Helper()
	g, err := ParseRows(rows, DefaultTileSize)
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	return g
}

func TestLoadRejectsBadMatrices(t *testing.T) {
	tests := []struct {
		name     string
		tiles    [][]Tile
		tileSize float64
	}{
		{"empty", nil, 32},
		{"empty row", [][]Tile{{}}, 32},
		{"ragged", [][]Tile{{TileFloor, TileFloor}, {TileFloor}}, 32},
		{"all walls", [][]Tile{{TileWall, TileWall}}, 32},
		{"unknown tile", [][]Tile{{TileFloor, Tile('?')}}, 32},
		{"zero tile size", [][]Tile{{TileFloor}}, 0},
	}

	for _, tt := range tests {
		_, err := Load(tt.tiles, tt.tileSize)
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("Load(%s) error = %v, want ErrConfiguration", tt.name, err)
		}
	}
}

func TestLoadCopiesInput(t *testing.T) {
	tiles := [][]Tile{{TileFloor, TileWall}}
	g, err := Load(tiles, 32)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	tiles[0][1] = TileFloor

	if !g.IsSolid(0, 1) {
		t.Error("grid changed after caller mutated the source matrix")
	}
}

func TestWallClassification(t *testing.T) {
	g := mustParse(t, testRows)

	for row, line := range testRows {
		for col, r := range line {
			want := Tile(r) == TileWall
			if got := g.IsSolid(row, col); got != want {
				t.Errorf("IsSolid(%d,%d) = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestTileAt(t *testing.T) {
	g := mustParse(t, testRows)

	tile, err := g.TileAt(1, 3)
	if err != nil {
		t.Fatalf("TileAt(1,3) error = %v", err)
	}
	if tile != TileChestSpawn {
		t.Errorf("TileAt(1,3) = %v, want chest", tile)
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 5}}
	for _, pos := range outside {
		if _, err := g.TileAt(pos[0], pos[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("TileAt(%d,%d) error = %v, want ErrOutOfBounds", pos[0], pos[1], err)
		}
	}
}

func TestWorldBounds(t *testing.T) {
	g := mustParse(t, testRows)

	w, h := g.WorldBounds()
	if w != 160 || h != 128 {
		t.Errorf("WorldBounds() = (%v,%v), want (160,128)", w, h)
	}
}

func TestChestSpawnCells(t *testing.T) {
	g := mustParse(t, []string{
		"#C.",
		"C#C",
	})

	got := g.ChestSpawnCells()
	want := []Cell{{0, 1}, {1, 0}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("ChestSpawnCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ChestSpawnCells()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSolidRectsOverlapping(t *testing.T) {
	g := mustParse(t, testRows)

	// Box touching the wall at col 2 row 2 only along an edge.
	edge := Rect{MinX: 32, MinY: 64, MaxX: 64, MaxY: 96}
	if walls := g.SolidRectsOverlapping(edge); len(walls) != 0 {
		t.Errorf("SolidRectsOverlapping(edge) = %v, want none", walls)
	}

	inside := RectAround(70, 80, 4)
	walls := g.SolidRectsOverlapping(inside)
	if len(walls) != 1 || walls[0] != g.CellRect(2, 2) {
		t.Errorf("SolidRectsOverlapping(inside) = %v, want [%v]", walls, g.CellRect(2, 2))
	}

	// Boxes partly outside the map are clipped to the grid.
	if walls := g.SolidRectsOverlapping(RectAround(-10, -10, 20)); len(walls) != 1 {
		t.Errorf("SolidRectsOverlapping(corner) = %v, want 1 wall", walls)
	}
}

func TestSpawnPoint(t *testing.T) {
	g := mustParse(t, testRows)
	if x, y := g.SpawnPoint(); x != 48 || y != 48 {
		t.Errorf("SpawnPoint() = (%v,%v), want (48,48)", x, y)
	}

	blocked := mustParse(t, []string{
		"###",
		"###",
		"#.#",
	})
	if x, y := blocked.SpawnPoint(); x != 48 || y != 80 {
		t.Errorf("SpawnPoint() = (%v,%v), want (48,80)", x, y)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	tests := []struct {
		other Rect
		want  bool
	}{
		{Rect{5, 5, 15, 15}, true},
		{Rect{10, 0, 20, 10}, false},
		{Rect{0, 10, 10, 20}, false},
		{Rect{2, 2, 3, 3}, true},
		{Rect{-5, -5, 0.5, 0.5}, true},
	}

	for _, tt := range tests {
		if got := a.Intersects(tt.other); got != tt.want {
			t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
		}
	}
}
