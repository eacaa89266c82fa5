package game

import (
	"testing"

	"github.com/Garsondee/parasite-swarm/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// pressed fakes inpututil.IsKeyJustPressed for a fixed set of keys.
func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestActionsFor_Bindings(t *testing.T) {
	cases := []struct {
		key  ebiten.Key
		want sim.Action
	}{
		{ebiten.KeyArrowUp, sim.MoveUp},
		{ebiten.KeyW, sim.MoveUp},
		{ebiten.KeyArrowDown, sim.MoveDown},
		{ebiten.KeyS, sim.MoveDown},
		{ebiten.KeyArrowLeft, sim.MoveLeft},
		{ebiten.KeyA, sim.MoveLeft},
		{ebiten.KeyArrowRight, sim.MoveRight},
		{ebiten.KeyD, sim.MoveRight},
		{ebiten.KeySpace, sim.Attack},
		{ebiten.KeyEnter, sim.Summon},
		{ebiten.KeyNumpadEnter, sim.Summon},
	}
	for _, c := range cases {
		got := actionsFor(pressed(c.key))
		if len(got) != 1 || got[0] != c.want {
			t.Errorf("key %v: actions=%v, want [%v]", c.key, got, c.want)
		}
	}
}

func TestActionsFor_AliasFiresOnce(t *testing.T) {
	got := actionsFor(pressed(ebiten.KeyArrowUp, ebiten.KeyW))
	if len(got) != 1 {
		t.Fatalf("actions=%v, want one move up", got)
	}
}

func TestActionsFor_NothingPressed(t *testing.T) {
	if got := actionsFor(pressed()); len(got) != 0 {
		t.Fatalf("actions=%v, want none", got)
	}
	if got := actionsFor(pressed(ebiten.KeyH, ebiten.KeyC)); len(got) != 0 {
		t.Fatalf("window controls leaked into actions: %v", got)
	}
}
