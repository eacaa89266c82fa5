package game

import (
	"image/color"
	"testing"

	"github.com/Garsondee/parasite-swarm/internal/sim"
)

func TestEnemyColor_Ramp(t *testing.T) {
	cases := []struct {
		level int
		wantR uint8
	}{
		{0, 100},
		{50, 177},
		{100, 255},
		{-5, 100},
		{150, 255},
	}
	for _, c := range cases {
		col := enemyColor(c.level)
		if col.R != c.wantR || col.G != 50 || col.B != 50 {
			t.Errorf("level %d: colour=%v, want R=%d G=50 B=50", c.level, col, c.wantR)
		}
	}
}

func TestEnemyColor_Monotonic(t *testing.T) {
	prev := enemyColor(0).R
	for lvl := 1; lvl <= sim.MaxParasiteLevel; lvl++ {
		r := enemyColor(lvl).R
		if r < prev {
			t.Fatalf("red fell from %d to %d at level %d", prev, r, lvl)
		}
		prev = r
	}
}

func TestParasiteBarWidth(t *testing.T) {
	if w := parasiteBarWidth(0, 32); w != 0 {
		t.Fatalf("empty bar width=%v", w)
	}
	if w := parasiteBarWidth(50, 32); w != 16 {
		t.Fatalf("half bar width=%v, want 16", w)
	}
	if w := parasiteBarWidth(300, 32); w != 32 {
		t.Fatalf("overfull bar width=%v, want 32", w)
	}
}

func TestTileColor(t *testing.T) {
	if tileColor(sim.TileWall) != colWall || tileColor(sim.TileFloor) != colFloor || tileColor(sim.TileNutrient) != colNutrient {
		t.Fatal("tile palette mismatch")
	}
}

func TestParasiteBarIsPureRed(t *testing.T) {
	if colBar != (color.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Fatalf("bar colour=%v, want #F00", colBar)
	}
	if colBar == colMinion {
		t.Fatal("the parasite bar must not share the minion colour")
	}
}
