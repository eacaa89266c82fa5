package sim

import (
	"errors"
	"testing"
)

func TestNewTileMap_AllWalls(t *testing.T) {
	tm := NewTileMap(6, 4)
	if tm.Cols() != 6 || tm.Rows() != 4 {
		t.Fatalf("expected 6x4, got %dx%d", tm.Cols(), tm.Rows())
	}
	for y := 0; y < tm.Rows(); y++ {
		for x := 0; x < tm.Cols(); x++ {
			if got := tm.MustTileAt(Position{x, y}); got != TileWall {
				t.Fatalf("tile (%d,%d)=%v, want wall", x, y, got)
			}
		}
	}
	if tm.Count(TileWall) != 24 {
		t.Fatalf("wall count=%d, want 24", tm.Count(TileWall))
	}
}

func TestTileMap_TileAtOutOfBounds(t *testing.T) {
	tm := NewTileMap(3, 3)
	for _, p := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {99, 99}} {
		if _, err := tm.TileAt(p); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("TileAt(%v) err=%v, want ErrOutOfBounds", p, err)
		}
	}
	if _, err := tm.TileAt(Position{2, 2}); err != nil {
		t.Fatalf("TileAt corner: unexpected error %v", err)
	}
}

func TestTileMap_MustTileAtPanics(t *testing.T) {
	tm := NewTileMap(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("MustTileAt off the grid should panic")
		}
	}()
	tm.MustTileAt(Position{2, 0})
}

func TestTileMap_DigIdempotent(t *testing.T) {
	tm := NewTileMap(3, 3)
	p := Position{1, 1}
	if !tm.Dig(p) {
		t.Fatal("first dig should change the wall")
	}
	if tm.Dig(p) {
		t.Fatal("second dig should be a no-op")
	}
	if tm.MustTileAt(p) != TileFloor {
		t.Fatalf("dug tile=%v, want floor", tm.MustTileAt(p))
	}
}

func TestTileMap_DigLeavesNutrient(t *testing.T) {
	tm := NewTileMap(3, 3)
	p := Position{0, 0}
	tm.SetTile(p, TileNutrient)
	if tm.Dig(p) {
		t.Fatal("dig on nutrient should be a no-op")
	}
	if tm.MustTileAt(p) != TileNutrient {
		t.Fatal("nutrient should survive a dig")
	}
}

func TestTileMap_ConsumeNutrient(t *testing.T) {
	tm := NewTileMap(3, 3)
	p := Position{2, 1}
	if tm.ConsumeNutrient(p) {
		t.Fatal("consuming a wall should be a no-op")
	}
	tm.SetTile(p, TileNutrient)
	if !tm.ConsumeNutrient(p) {
		t.Fatal("consuming a nutrient should succeed")
	}
	if tm.MustTileAt(p) != TileFloor {
		t.Fatalf("consumed tile=%v, want floor", tm.MustTileAt(p))
	}
}

func TestTileMap_ConvertWallsAroundCenter(t *testing.T) {
	tm := NewTileMap(5, 5)
	tm.SetTile(Position{2, 2}, TileFloor)
	tm.SetTile(Position{1, 1}, TileFloor)
	tm.SetTile(Position{3, 3}, TileNutrient)

	n := tm.ConvertWallsToNutrientAround(Position{2, 2}, 1)
	if n != 6 {
		t.Fatalf("converted %d walls, want 6", n)
	}
	if tm.MustTileAt(Position{2, 2}) != TileFloor || tm.MustTileAt(Position{1, 1}) != TileFloor {
		t.Fatal("floor tiles must not become nutrients")
	}
	for _, p := range []Position{{1, 2}, {2, 1}, {3, 1}, {1, 3}, {2, 3}, {3, 2}} {
		if tm.MustTileAt(p) != TileNutrient {
			t.Fatalf("tile %v=%v, want nutrient", p, tm.MustTileAt(p))
		}
	}
	if tm.MustTileAt(Position{0, 0}) != TileWall || tm.MustTileAt(Position{4, 4}) != TileWall {
		t.Fatal("cells outside the radius must stay walls")
	}
}

func TestTileMap_ConvertWallsClipsAtCorner(t *testing.T) {
	tm := NewTileMap(4, 4)
	n := tm.ConvertWallsToNutrientAround(Position{0, 0}, 1)
	if n != 4 {
		t.Fatalf("converted %d walls at the corner, want 4", n)
	}
}

func TestTileMap_Passability(t *testing.T) {
	tm := NewTileMap(3, 1)
	tm.SetTile(Position{1, 0}, TileFloor)
	tm.SetTile(Position{2, 0}, TileNutrient)
	cases := []struct {
		p    Position
		want bool
	}{
		{Position{0, 0}, false},
		{Position{1, 0}, true},
		{Position{2, 0}, true},
		{Position{3, 0}, false},
		{Position{0, -1}, false},
	}
	for _, c := range cases {
		if got := tm.IsPassableForMovement(c.p); got != c.want {
			t.Errorf("IsPassableForMovement(%v)=%v, want %v", c.p, got, c.want)
		}
	}
}

func TestTileMap_CloneIsIndependent(t *testing.T) {
	tm := NewTileMap(3, 3)
	c := tm.Clone()
	tm.Dig(Position{1, 1})
	if c.MustTileAt(Position{1, 1}) != TileWall {
		t.Fatal("clone must not see writes to the original")
	}
	c.SetTile(Position{0, 0}, TileNutrient)
	if tm.MustTileAt(Position{0, 0}) != TileWall {
		t.Fatal("original must not see writes to the clone")
	}
}

func TestTileMap_SetTileIgnoresBadInput(t *testing.T) {
	tm := NewTileMap(2, 2)
	tm.SetTile(Position{5, 5}, TileFloor)
	tm.SetTile(Position{0, 0}, Tile(42))
	if tm.Count(TileWall) != 4 {
		t.Fatal("out-of-bounds or unknown tiles must not be written")
	}
}

func TestTile_StringAndGlyph(t *testing.T) {
	if TileNutrient.String() != "nutrient" || TileWall.Glyph() != '#' || TileFloor.Glyph() != '.' {
		t.Fatal("unexpected tile names or glyphs")
	}
}
