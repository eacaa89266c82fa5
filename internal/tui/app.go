// Package tui is a terminal frontend for the simulation built on tcell.
package tui

import (
	"context"
	"log/slog"

	"github.com/Garsondee/parasite-swarm/internal/sim"
	"github.com/gdamore/tcell/v2"
)

const eventTail = 40

// App connects a tcell screen to a running simulation.
type App struct {
	screen   tcell.Screen
	sim      *sim.Simulation
	renderer *Renderer
	logger   *slog.Logger
}

// NewApp builds an App over an initialised screen. The caller owns both the
// screen (Fini) and the simulation (Start/Close).
func NewApp(screen tcell.Screen, s *sim.Simulation, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{screen: screen, sim: s, renderer: NewRenderer(screen), logger: logger}
}

// Run redraws on every simulation update and forwards key presses until the
// player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.handleEvent(ev) {
				return nil
			}
		case <-a.sim.Updates():
			a.draw()
		}
	}
}

func (a *App) draw() {
	a.renderer.Draw(a.sim.Snapshot(), a.sim.Events(eventTail))
}

// handleEvent returns false when the session should end.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
		a.draw()
	}
	return true
}

func (a *App) handleKey(k tcell.Key, r rune) bool {
	if IsQuitKey(k, r) {
		return false
	}
	act, ok := ActionForKey(k, r)
	if !ok {
		return true
	}
	out := a.sim.SubmitAction(act)
	a.logger.Debug("key action", slog.String("action", act.String()), slog.String("outcome", out.String()))
	return true
}
