package sim

import "fmt"

// TestSim is a headless harness around Simulation used by tests and by the
// headless report command. It builds arbitrary arenas (the real game always
// starts from solid rock) and steps ticks by hand instead of on a timer.
type TestSim struct {
	Sim    *Simulation
	SimLog *SimLog

	cfg       Config
	verbose   bool
	tiles     []tilePlacement
	minions   []Position
	level     int
	sequenced bool
	nextID    int
}

type tilePlacement struct {
	pos  Position
	tile Tile
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra   simOptionKind = iota // config, sizes, spawns, applied first
	simOptTerrain                      // tile placements, applied after the map exists
	simOptEntity                       // minions, parasite level, applied last
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithConfig replaces the whole rule set.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.cfg = cfg }}
}

// WithGridSize sets the arena dimensions.
func WithGridSize(cols, rows int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Cols = cols
		ts.cfg.Rows = rows
	}}
}

// WithPlayerAt sets the player's spawn cell.
func WithPlayerAt(x, y int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.PlayerSpawn = Position{X: x, Y: y}
	}}
}

// WithEnemyAt sets the enemy's spawn cell.
func WithEnemyAt(x, y int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.EnemySpawn = Position{X: x, Y: y}
	}}
}

// WithIncrements sets the minion auto-attack and player attack damage.
func WithIncrements(auto, manual int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.AutoAttackIncrement = auto
		ts.cfg.ParasiteIncrement = manual
	}}
}

// WithVerbose enables per-step logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.verbose = v }}
}

// WithSequentialIDs names minions m-1, m-2, ... instead of random UUIDs.
func WithSequentialIDs() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.sequenced = true }}
}

// WithTile places a single tile.
func WithTile(x, y int, t Tile) SimOption {
	return SimOption{simOptTerrain, func(ts *TestSim) {
		ts.tiles = append(ts.tiles, tilePlacement{Position{X: x, Y: y}, t})
	}}
}

// WithTileRect fills the inclusive rectangle (x0,y0)-(x1,y1) with t.
func WithTileRect(x0, y0, x1, y1 int, t Tile) SimOption {
	return SimOption{simOptTerrain, func(ts *TestSim) {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				ts.tiles = append(ts.tiles, tilePlacement{Position{X: x, Y: y}, t})
			}
		}
	}}
}

// WithMinionAt adds a minion without consuming a nutrient.
func WithMinionAt(x, y int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.minions = append(ts.minions, Position{X: x, Y: y})
	}}
}

// WithParasiteLevel seeds the enemy's parasite level.
func WithParasiteLevel(level int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) { ts.level = level }}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (config, verbose, id source)
//  2. Simulation construction
//  3. Terrain
//  4. Entities
//
// It panics if the resulting config is invalid, since that is a test bug.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{cfg: DefaultConfig()}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	s, err := New(ts.cfg, WithVerboseLog(ts.verbose), WithEventLogCap(0))
	if err != nil {
		panic(fmt.Sprintf("NewTestSim: %v", err))
	}
	ts.Sim = s
	ts.SimLog = s.simLog
	if ts.sequenced {
		s.entities.newID = func() string {
			ts.nextID++
			return fmt.Sprintf("m-%d", ts.nextID)
		}
	}

	for _, o := range opts {
		if o.kind == simOptTerrain {
			o.fn(ts)
		}
	}
	for _, p := range ts.tiles {
		s.grid.SetTile(p.pos, p.tile)
	}

	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	for _, p := range ts.minions {
		s.entities.AddMinion(p)
	}
	if ts.level > 0 {
		s.entities.setParasiteLevel(ts.level)
	}
	return ts
}

// Do submits actions in order and returns their outcomes.
func (ts *TestSim) Do(actions ...Action) []Outcome {
	out := make([]Outcome, len(actions))
	for i, a := range actions {
		out[i] = ts.Sim.SubmitAction(a)
	}
	return out
}

// RunTicks runs n pursuit ticks and returns their reports.
func (ts *TestSim) RunTicks(n int) []TickReport {
	reps := make([]TickReport, 0, n)
	for i := 0; i < n; i++ {
		reps = append(reps, ts.Sim.Tick())
	}
	return reps
}

// RunUntilDead ticks until the enemy dies or maxTicks pass. It returns the
// number of ticks run and whether the enemy died.
func (ts *TestSim) RunUntilDead(maxTicks int) (int, bool) {
	for i := 1; i <= maxTicks; i++ {
		rep := ts.Sim.Tick()
		if rep.Skipped {
			return i - 1, true
		}
		if rep.Killed {
			return i, true
		}
	}
	return maxTicks, ts.Sim.Snapshot().Enemy.IsDead
}

// Snapshot is shorthand for ts.Sim.Snapshot().
func (ts *TestSim) Snapshot() Snapshot { return ts.Sim.Snapshot() }

// Tile returns the current tile at (x, y), panicking off the grid.
func (ts *TestSim) Tile(x, y int) Tile {
	return ts.Sim.grid.MustTileAt(Position{X: x, Y: y})
}
