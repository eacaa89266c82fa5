package game

import (
	"fmt"

	"github.com/Garsondee/parasite-swarm/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// hudFace is the fixed 7x13 bitmap font used for the title and legend.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

const hudLineH = 15

var controlsLegend = []string{
	"arrows/WASD move+dig  SPACE infect  ENTER summon",
	"C copy map  H hide help  Q/ESC quit",
}

func drawText(screen *ebiten.Image, s string, x, y int, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(colHUDText)
	text.Draw(screen, s, hudFace, op)
}

// statusLine summarises the world for the title band.
func (g *Game) statusLine() string {
	e := g.snap.Enemy
	enemy := fmt.Sprintf("%s %d%%", e.ID, e.ParasiteLevel)
	if e.IsDead {
		enemy = e.ID + " DEAD"
	}
	line := fmt.Sprintf("tick %d  minions %d  %s", g.snap.Tick, len(g.snap.Minions), enemy)
	if g.lastOutcome != sim.OutcomeRejected {
		line += "  last: " + g.lastOutcome.String()
	}
	return line
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(g.offX), 4)
	op.ColorScale.ScaleWithColor(colTitle)
	text.Draw(screen, Title, hudFace, op)

	drawText(screen, g.statusLine(), g.offX, 32, 1)
	if g.statusLeft > 0 {
		w, _ := text.Measure(g.status, hudFace, 0)
		drawText(screen, g.status, g.offX+g.gameWidth-int(w), 32, 1)
	}
}

// drawHUD renders the controls legend under the map.
func (g *Game) drawHUD(screen *ebiten.Image) {
	y := g.offY + g.gameHeight + 6
	vector.FillRect(screen, float32(g.offX), float32(y-2), float32(g.gameWidth), float32(len(controlsLegend)*hudLineH+4),
		colBarBack, false)
	for i, line := range controlsLegend {
		drawText(screen, line, g.offX+4, y+i*hudLineH, 1)
	}
}
