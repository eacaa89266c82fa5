package game

import (
	"github.com/Garsondee/parasite-swarm/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBinding maps one player action to the keys that trigger it.
type keyBinding struct {
	action sim.Action
	keys   []ebiten.Key
}

// actionBindings lists the player controls in the order they are polled.
var actionBindings = []keyBinding{
	{sim.MoveUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{sim.MoveDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{sim.MoveLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{sim.MoveRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{sim.Attack, []ebiten.Key{ebiten.KeySpace}},
	{sim.Summon, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
}

// Window controls that never reach the simulation.
const (
	keyToggleHUD = ebiten.KeyH
	keyCopyMap   = ebiten.KeyC
)

var quitKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}

// actionsFor returns the actions whose keys were just pressed this frame. A
// binding fires at most once per frame even if several of its keys went down.
func actionsFor(justPressed func(ebiten.Key) bool) []sim.Action {
	var out []sim.Action
	for _, b := range actionBindings {
		for _, k := range b.keys {
			if justPressed(k) {
				out = append(out, b.action)
				break
			}
		}
	}
	return out
}

func anyPressed(justPressed func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if justPressed(k) {
			return true
		}
	}
	return false
}
