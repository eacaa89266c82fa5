package sim

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by tile queries outside the grid. Every caller is
// expected to bounds-check first, so seeing it means a caller bug.
var ErrOutOfBounds = errors.New("position out of bounds")

// Tile identifies the terrain of one grid cell.
type Tile uint8

const (
	TileWall     Tile = iota // Impassable; digs to floor
	TileFloor                // Open ground
	TileNutrient             // Passable; consumed to summon a minion
	tileTypeCount            // sentinel
)

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileNutrient:
		return "nutrient"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// Glyph returns the single-character form used by ASCII snapshots.
func (t Tile) Glyph() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileNutrient:
		return '%'
	default:
		return '#'
	}
}

// tilePassable returns true if a minion may step onto the tile.
func tilePassable(t Tile) bool {
	return t == TileFloor || t == TileNutrient
}

// TileMap is the authoritative per-cell terrain representation.
type TileMap struct {
	cols  int
	rows  int
	tiles []Tile // row-major: index = y*cols + x
}

// NewTileMap creates a map filled with walls.
func NewTileMap(cols, rows int) *TileMap {
	// TileWall is the zero value, so make() already yields solid rock.
	return &TileMap{cols: cols, rows: rows, tiles: make([]Tile, cols*rows)}
}

func (tm *TileMap) Cols() int { return tm.cols }
func (tm *TileMap) Rows() int { return tm.rows }

// InBounds returns true if p lies inside the grid.
func (tm *TileMap) InBounds(p Position) bool {
	return p.X >= 0 && p.X < tm.cols && p.Y >= 0 && p.Y < tm.rows
}

func (tm *TileMap) index(p Position) int {
	return p.Y*tm.cols + p.X
}

// TileAt returns the tile at p, or an error wrapping ErrOutOfBounds.
func (tm *TileMap) TileAt(p Position) (Tile, error) {
	if !tm.InBounds(p) {
		return TileWall, fmt.Errorf("tile at %v on %dx%d map: %w", p, tm.cols, tm.rows, ErrOutOfBounds)
	}
	return tm.tiles[tm.index(p)], nil
}

// MustTileAt is TileAt for callers that have already bounds-checked.
// It panics on an out-of-bounds position.
func (tm *TileMap) MustTileAt(p Position) Tile {
	t, err := tm.TileAt(p)
	if err != nil {
		panic(err)
	}
	return t
}

// SetTile overwrites a tile. Used for scenario construction only; gameplay
// goes through Dig, ConsumeNutrient and ConvertWallsToNutrientAround.
func (tm *TileMap) SetTile(p Position, t Tile) {
	if !tm.InBounds(p) || t >= tileTypeCount {
		return
	}
	tm.tiles[tm.index(p)] = t
}

// Dig turns a wall into floor. Returns true if the tile changed.
func (tm *TileMap) Dig(p Position) bool {
	if !tm.InBounds(p) {
		return false
	}
	i := tm.index(p)
	if tm.tiles[i] != TileWall {
		return false
	}
	tm.tiles[i] = TileFloor
	return true
}

// ConsumeNutrient turns a nutrient into floor. Returns true if the tile changed.
func (tm *TileMap) ConsumeNutrient(p Position) bool {
	if !tm.InBounds(p) {
		return false
	}
	i := tm.index(p)
	if tm.tiles[i] != TileNutrient {
		return false
	}
	tm.tiles[i] = TileFloor
	return true
}

// ConvertWallsToNutrientAround turns every wall within Chebyshev distance
// radius of center into a nutrient, clipped to the grid. Returns the number of
// converted cells.
func (tm *TileMap) ConvertWallsToNutrientAround(center Position, radius int) int {
	converted := 0
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			p := Position{X: x, Y: y}
			if !tm.InBounds(p) {
				continue
			}
			i := tm.index(p)
			if tm.tiles[i] == TileWall {
				tm.tiles[i] = TileNutrient
				converted++
			}
		}
	}
	return converted
}

// IsPassableForMovement reports whether a minion can step onto p.
// Out-of-bounds cells are never passable.
func (tm *TileMap) IsPassableForMovement(p Position) bool {
	if !tm.InBounds(p) {
		return false
	}
	return tilePassable(tm.tiles[tm.index(p)])
}

// Count returns how many cells hold the given tile.
func (tm *TileMap) Count(t Tile) int {
	n := 0
	for _, c := range tm.tiles {
		if c == t {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the map.
func (tm *TileMap) Clone() *TileMap {
	tiles := make([]Tile, len(tm.tiles))
	copy(tiles, tm.tiles)
	return &TileMap{cols: tm.cols, rows: tm.rows, tiles: tiles}
}
