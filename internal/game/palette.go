package game

import (
	"image/color"

	"github.com/Garsondee/parasite-swarm/internal/sim"
)

var (
	colWall     = color.RGBA{R: 0x5D, G: 0x40, B: 0x37, A: 0xFF}
	colNutrient = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	colFloor    = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}
	colMinion   = color.RGBA{R: 0xFF, G: 0x80, B: 0xAB, A: 0xFF}
	colPlayer   = color.RGBA{R: 0xE9, G: 0x1E, B: 0x63, A: 0xFF}
	colBar      = color.RGBA{R: 0xFF, A: 0xFF}

	colBackground = color.RGBA{R: 12, G: 10, B: 12, A: 255}
	colBorder     = color.RGBA{R: 90, G: 60, B: 70, A: 255}
	colBarBack    = color.RGBA{R: 40, G: 20, B: 25, A: 230}
	colTitle      = color.RGBA{R: 0xE9, G: 0x1E, B: 0x63, A: 0xFF}
	colHUDText    = color.RGBA{R: 210, G: 200, B: 205, A: 255}
)

// tileColor returns the fill colour for a terrain tile.
func tileColor(t sim.Tile) color.RGBA {
	switch t {
	case sim.TileFloor:
		return colFloor
	case sim.TileNutrient:
		return colNutrient
	default:
		return colWall
	}
}

// enemyColor reddens the enemy as its parasite level rises: rgb(100 + 1.55*level, 50, 50).
func enemyColor(level int) color.RGBA {
	level = max(0, min(level, sim.MaxParasiteLevel))
	return color.RGBA{R: uint8(100 + level*155/sim.MaxParasiteLevel), G: 50, B: 50, A: 255}
}

// parasiteBarWidth is the filled part of a bar of width full at the given level.
func parasiteBarWidth(level int, full float32) float32 {
	level = max(0, min(level, sim.MaxParasiteLevel))
	return full * float32(level) / float32(sim.MaxParasiteLevel)
}

// sourceColor tags event panel rows by who produced them.
func sourceColor(source string) color.RGBA {
	switch source {
	case "player":
		return colPlayer
	case "minion":
		return colMinion
	case "enemy":
		return color.RGBA{R: 200, G: 60, B: 60, A: 255}
	default:
		return color.RGBA{R: 120, G: 120, B: 120, A: 255}
	}
}
