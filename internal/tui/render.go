package tui

import (
	"fmt"

	"github.com/Garsondee/parasite-swarm/internal/sim"
	"github.com/gdamore/tcell/v2"
)

// Screen layout, in terminal cells.
const (
	titleRow  = 0
	statusRow = 1
	gridTop   = 3
	gridLeft  = 1
	panelGap  = 3
)

const title = "PARASITE: SWARM"

const helpLine = "arrows/wasd move+dig  space infect  enter summon  q quit"

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xE91E63)).Bold(true)
	styleWall     = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x8D6E63)).Background(tcell.NewHexColor(0x5D4037))
	styleFloor    = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x444444)).Background(tcell.NewHexColor(0x1A1A1A))
	styleNutrient = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xC8E6C9)).Background(tcell.NewHexColor(0x4CAF50))
	styleMinion   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFF80AB)).Background(tcell.NewHexColor(0x1A1A1A))
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xE91E63)).Background(tcell.NewHexColor(0x1A1A1A)).Bold(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// enemyStyle follows the same red ramp as the window frontend.
func enemyStyle(e sim.Enemy) tcell.Style {
	if e.IsDead {
		return styleDim
	}
	lvl := max(0, min(e.ParasiteLevel, sim.MaxParasiteLevel))
	red := int32(100 + lvl*155/sim.MaxParasiteLevel)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(red, 50, 50)).Bold(true)
}

func tileStyle(t sim.Tile) tcell.Style {
	switch t {
	case sim.TileFloor:
		return styleFloor
	case sim.TileNutrient:
		return styleNutrient
	default:
		return styleWall
	}
}

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer wraps an initialised screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw paints the whole frame: title, status, map, help and event panel.
func (r *Renderer) Draw(snap sim.Snapshot, events []sim.SimLogEntry) {
	r.screen.Clear()
	r.putString(gridLeft, titleRow, title, styleTitle)
	r.putString(gridLeft, statusRow, StatusLine(snap), styleDefault)

	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Cols; x++ {
			r.screen.SetContent(gridLeft+x, gridTop+y, snap.Glyph(x, y), nil, cellStyle(snap, x, y))
		}
	}
	r.putString(gridLeft, gridTop+snap.Rows+1, helpLine, styleDim)

	panelX := gridLeft + snap.Cols + panelGap
	_, h := r.screen.Size()
	r.putString(panelX, gridTop-1, "EVENTS", styleTitle)
	rows := max(0, h-gridTop-1)
	if len(events) > rows {
		events = events[len(events)-rows:]
	}
	for i, e := range events {
		r.putString(panelX, gridTop+i, fmt.Sprintf("%4d %-6s %s", e.Tick, e.Key, e.Value), styleDefault)
	}
	r.screen.Show()
}

func cellStyle(snap sim.Snapshot, x, y int) tcell.Style {
	switch {
	case snap.Player.Pos.X == x && snap.Player.Pos.Y == y:
		return stylePlayer
	case snap.Enemy.Pos.X == x && snap.Enemy.Pos.Y == y:
		return enemyStyle(snap.Enemy)
	case snap.MinionsAt(x, y) > 0:
		return styleMinion
	default:
		return tileStyle(snap.TileAt(x, y))
	}
}

func (r *Renderer) putString(x, y int, s string, style tcell.Style) {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range s {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// StatusLine summarises tick, swarm size and the enemy's infection.
func StatusLine(snap sim.Snapshot) string {
	e := snap.Enemy
	if e.IsDead {
		return fmt.Sprintf("tick %d  minions %d  %s has succumbed", snap.Tick, len(snap.Minions), e.ID)
	}
	return fmt.Sprintf("tick %d  minions %d  %s parasite %d%%", snap.Tick, len(snap.Minions), e.ID, e.ParasiteLevel)
}
