package sim

import "testing"

func TestInfect_BlastLoggedOnceUnderEnemy(t *testing.T) {
	ts := NewTestSim(WithGridSize(7, 7), WithPlayerAt(0, 0), WithEnemyAt(3, 3), WithParasiteLevel(90))
	s := ts.Sim

	killed, converted := infect(s.entities, s.grid, ts.SimLog, 1, 5, Position{X: 3, Y: 3}, 1)
	if killed || converted != 0 {
		t.Fatalf("non-lethal hit: killed=%v converted=%d", killed, converted)
	}
	if n := len(ts.SimLog.FilterSource("enemy")); n != 0 {
		t.Fatalf("enemy entries=%d before the kill, want 0", n)
	}

	killed, converted = infect(s.entities, s.grid, ts.SimLog, 2, 5, Position{X: 3, Y: 3}, 1)
	if !killed || converted != 9 {
		t.Fatalf("lethal hit: killed=%v converted=%d, want true 9", killed, converted)
	}
	blasts := ts.SimLog.FilterSource("enemy")
	if len(blasts) != 1 || blasts[0].Key != "blast" || blasts[0].Tick != 2 || blasts[0].NumVal != 9 {
		t.Fatalf("enemy entries=%+v, want one blast at tick 2 with 9 nutrients", blasts)
	}

	// A dead enemy takes no further damage, so nothing more is converted or logged.
	killed, converted = infect(s.entities, s.grid, ts.SimLog, 3, 5, Position{X: 3, Y: 3}, 1)
	if killed || converted != 0 || ts.SimLog.Count("map", "blast") != 1 {
		t.Fatal("the death blast fired twice")
	}
}

func TestInfect_NilLog(t *testing.T) {
	ts := NewTestSim(WithGridSize(5, 5), WithPlayerAt(0, 0), WithEnemyAt(2, 2), WithParasiteLevel(99))
	if killed, _ := infect(ts.Sim.entities, ts.Sim.grid, nil, 1, 4, Position{X: 2, Y: 2}, 1); !killed {
		t.Fatal("hit should kill")
	}
}
