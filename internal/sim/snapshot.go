package sim

import "strings"

// Snapshot is an immutable copy of the world handed to renderers. Nothing in
// it aliases simulation state.
type Snapshot struct {
	Cols    int
	Rows    int
	Tiles   []Tile // row-major: index = y*Cols + x
	Player  Player
	Minions []Minion
	Enemy   Enemy
	Tick    int    // pursuit ticks run so far
	Version uint64 // bumped on every committed action or tick
}

// TileAt returns the tile at (x, y). Out-of-range reads return TileWall.
func (s Snapshot) TileAt(x, y int) Tile {
	if x < 0 || x >= s.Cols || y < 0 || y >= s.Rows {
		return TileWall
	}
	return s.Tiles[y*s.Cols+x]
}

// MinionsAt returns how many minions stand on (x, y).
func (s Snapshot) MinionsAt(x, y int) int {
	n := 0
	for _, m := range s.Minions {
		if m.Pos.X == x && m.Pos.Y == y {
			n++
		}
	}
	return n
}

// Glyph returns the character drawn for (x, y) with entity priority
// player > enemy > minion > terrain.
func (s Snapshot) Glyph(x, y int) rune {
	switch {
	case s.Player.Pos.X == x && s.Player.Pos.Y == y:
		return '@'
	case s.Enemy.Pos.X == x && s.Enemy.Pos.Y == y:
		if s.Enemy.IsDead {
			return 'x'
		}
		return 'E'
	case s.MinionsAt(x, y) > 0:
		return 'm'
	default:
		return s.TileAt(x, y).Glyph()
	}
}

// String renders the snapshot as ASCII rows.
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow((s.Cols + 1) * s.Rows)
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Cols; x++ {
			b.WriteRune(s.Glyph(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
