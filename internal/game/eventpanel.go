package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/parasite-swarm/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth      = 320
	panelMaxEntries = 60
	panelLineHeight = 14
	panelTitleH     = 16
	panelRecent     = 3 // how many latest entries to highlight
)

// EventPanel shows the tail of the simulation event log beside the map.
type EventPanel struct {
	entries []sim.SimLogEntry
}

// NewEventPanel creates an empty panel.
func NewEventPanel() *EventPanel {
	return &EventPanel{}
}

// Set replaces the panel contents with the newest entries, oldest first.
func (p *EventPanel) Set(entries []sim.SimLogEntry) {
	if len(entries) > panelMaxEntries {
		entries = entries[len(entries)-panelMaxEntries:]
	}
	p.entries = append(p.entries[:0], entries...)
}

// Visible returns the entries that fit in a panel of height panelH.
func (p *EventPanel) Visible(panelH int) []sim.SimLogEntry {
	maxVisible := (panelH - panelTitleH - 8) / panelLineHeight
	if maxVisible <= 0 {
		return nil
	}
	if len(p.entries) > maxVisible {
		return p.entries[len(p.entries)-maxVisible:]
	}
	return p.entries
}

func formatEvent(e sim.SimLogEntry) string {
	return fmt.Sprintf("%4d %-6s %s", e.Tick, e.Key, e.Value)
}

// Draw renders the panel with its left edge at panelX.
func (p *EventPanel) Draw(screen *ebiten.Image, panelX, panelH int) {
	px := float32(panelX)
	vector.FillRect(screen, px, 0, panelWidth, float32(panelH), color.RGBA{R: 14, G: 10, B: 12, A: 248}, false)
	vector.StrokeLine(screen, px, 0, px, float32(panelH), 1.0, colBorder, false)

	vector.FillRect(screen, px, 0, panelWidth, panelTitleH, color.RGBA{R: 30, G: 18, B: 24, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)
	vector.StrokeLine(screen, px, panelTitleH, px+panelWidth, panelTitleH, 1.0, colBorder, false)

	visible := p.Visible(panelH)
	y := panelTitleH + 4
	for i, e := range visible {
		if i >= len(visible)-panelRecent {
			vector.FillRect(screen, px+2, float32(y), panelWidth-4, panelLineHeight, color.RGBA{R: 40, G: 26, B: 32, A: 160}, false)
		}
		vector.FillRect(screen, px+5, float32(y+4), 3, 6, sourceColor(e.Source), false)
		ebitenutil.DebugPrintAt(screen, formatEvent(e), panelX+12, y-1)
		y += panelLineHeight
	}
}
