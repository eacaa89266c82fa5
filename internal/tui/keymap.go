package tui

import (
	"github.com/Garsondee/parasite-swarm/internal/sim"
	"github.com/gdamore/tcell/v2"
)

// ActionForKey maps a terminal key press to a player action.
func ActionForKey(k tcell.Key, r rune) (sim.Action, bool) {
	switch k {
	case tcell.KeyUp:
		return sim.MoveUp, true
	case tcell.KeyDown:
		return sim.MoveDown, true
	case tcell.KeyLeft:
		return sim.MoveLeft, true
	case tcell.KeyRight:
		return sim.MoveRight, true
	case tcell.KeyEnter:
		return sim.Summon, true
	case tcell.KeyRune:
		switch r {
		case ' ':
			return sim.Attack, true
		case 'w':
			return sim.MoveUp, true
		case 's':
			return sim.MoveDown, true
		case 'a':
			return sim.MoveLeft, true
		case 'd':
			return sim.MoveRight, true
		}
	}
	return sim.ActionNone, false
}

// IsQuitKey reports whether the key ends the session.
func IsQuitKey(k tcell.Key, r rune) bool {
	return k == tcell.KeyEscape || k == tcell.KeyCtrlC || (k == tcell.KeyRune && r == 'q')
}
