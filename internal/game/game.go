// Package game is the ebiten window frontend: it turns key presses into
// simulation actions and draws the latest snapshot.
package game

import (
	"fmt"
	"log/slog"

	"github.com/Garsondee/parasite-swarm/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// borderWidth is the pixel gap between the window edge and the map.
	borderWidth = 24
	// titleHeight is the band above the map holding the title and status.
	titleHeight = 48
	// hudHeight is the band below the map holding the controls legend.
	hudHeight = 40
	tileSize  = 32

	// statusFrames is how long a status message stays up (about 2s at 60 TPS).
	statusFrames = 120
)

// Title is the window title.
const Title = "PARASITE: SWARM"

type Game struct {
	sim    *sim.Simulation
	logger *slog.Logger
	snap   sim.Snapshot
	events *EventPanel

	width      int
	height     int
	offX       int // pixel offset from window left to map left
	offY       int // pixel offset from window top to map top
	gameWidth  int
	gameHeight int

	showHUD     bool
	lastOutcome sim.Outcome
	status      string
	statusLeft  int
}

// New builds a window frontend over s. The caller owns s and its tick loop.
func New(s *sim.Simulation, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	snap := s.Snapshot()
	g := &Game{
		sim:        s,
		logger:     logger,
		snap:       snap,
		events:     NewEventPanel(),
		gameWidth:  snap.Cols * tileSize,
		gameHeight: snap.Rows * tileSize,
		offX:       borderWidth,
		offY:       titleHeight,
		showHUD:    true,
	}
	g.width = borderWidth + g.gameWidth + borderWidth + panelWidth
	g.height = titleHeight + g.gameHeight + hudHeight
	g.events.Set(s.Events(panelMaxEntries))
	return g
}

// Size returns the window size the game lays itself out at.
func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	if g.handleInput(inpututil.IsKeyJustPressed) {
		return ebiten.Termination
	}
	select {
	case <-g.sim.Updates():
		g.refresh()
	default:
	}
	if g.statusLeft > 0 {
		g.statusLeft--
	}
	return nil
}

// handleInput applies this frame's key presses. It reports whether the
// player asked to quit.
func (g *Game) handleInput(justPressed func(ebiten.Key) bool) bool {
	if anyPressed(justPressed, quitKeys) {
		return true
	}
	for _, a := range actionsFor(justPressed) {
		g.submit(a)
	}
	if justPressed(keyToggleHUD) {
		g.showHUD = !g.showHUD
	}
	if justPressed(keyCopyMap) {
		g.copyMap()
	}
	return false
}

func (g *Game) submit(a sim.Action) {
	g.lastOutcome = g.sim.SubmitAction(a)
	if g.lastOutcome == sim.OutcomeKilled {
		g.setStatus("the host has succumbed")
	}
}

func (g *Game) refresh() {
	g.snap = g.sim.Snapshot()
	g.events.Set(g.sim.Events(panelMaxEntries))
}

func (g *Game) copyMap() {
	if err := copySnapshot(g.snap); err != nil {
		g.logger.Warn("copy map to clipboard", slog.Any("err", err))
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("map copied to clipboard")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusLeft = statusFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	g.drawTitle(screen)
	g.drawWorld(screen)

	ox, oy := float32(g.offX), float32(g.offY)
	gw, gh := float32(g.gameWidth), float32(g.gameHeight)
	vector.StrokeRect(screen, ox-1, oy-1, gw+2, gh+2, 2.0, colBorder, false)

	g.events.Draw(screen, g.offX+g.gameWidth+borderWidth, g.height)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	snap := g.snap
	ox, oy := float32(g.offX), float32(g.offY)
	const ts = float32(tileSize)

	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Cols; x++ {
			vector.FillRect(screen, ox+float32(x)*ts, oy+float32(y)*ts, ts, ts, tileColor(snap.TileAt(x, y)), false)
		}
	}

	// Minions share cells freely; draw one disc per occupied cell and a count.
	drawn := make(map[sim.Position]bool, len(snap.Minions))
	for _, m := range snap.Minions {
		if drawn[m.Pos] {
			continue
		}
		drawn[m.Pos] = true
		cx := ox + float32(m.Pos.X)*ts + ts/2
		cy := oy + float32(m.Pos.Y)*ts + ts/2
		vector.FillCircle(screen, cx, cy, ts/2-6, colMinion, true)
		if n := snap.MinionsAt(m.Pos.X, m.Pos.Y); n > 1 {
			ebitenutil.DebugPrintAt(screen, fmt.Sprint(n), int(cx)+4, int(cy)-2)
		}
	}

	if e := snap.Enemy; !e.IsDead {
		ex := ox + float32(e.Pos.X)*ts
		ey := oy + float32(e.Pos.Y)*ts
		vector.FillRect(screen, ex+3, ey+3, ts-6, ts-6, enemyColor(e.ParasiteLevel), false)
		// Parasite bar just above the enemy's cell.
		vector.FillRect(screen, ex, ey-5, ts, 4, colBarBack, false)
		vector.FillRect(screen, ex, ey-5, parasiteBarWidth(e.ParasiteLevel, ts), 4, colBar, false)
	}

	p := snap.Player.Pos
	vector.FillCircle(screen, ox+float32(p.X)*ts+ts/2, oy+float32(p.Y)*ts+ts/2, ts/2-4, colPlayer, true)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
