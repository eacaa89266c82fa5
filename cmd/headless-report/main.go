package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/Garsondee/parasite-swarm/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64

	killed        bool
	ticksToKill   int // pursuit ticks run, -1 if the enemy survived
	playerActions int // accepted actions submitted by the player
	attacks       int // player attacks that landed
	minions       int
	nutrients     int // nutrient tiles created by the death blast
	finalLevel    int
}

func main() {
	var runs int
	var ticks int
	var minions int
	var seedBase int64
	var scenario string
	var configPath string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 600, "maximum pursuit ticks per run")
	flag.IntVar(&minions, "minions", 6, "minions summoned in the swarm scenario")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.StringVar(&scenario, "scenario", "swarm", "scenario name (swarm|solo)")
	flag.StringVar(&configPath, "config", "", "simulation config file (defaults if empty)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if minions < 0 {
		fmt.Println("error: -minions must be >= 0")
		return
	}
	if scenario != "swarm" && scenario != "solo" {
		fmt.Printf("error: unsupported scenario %q (supported: swarm, solo)\n", scenario)
		return
	}

	cfg := sim.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = sim.LoadConfig(configPath); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}

	fmt.Printf("=== Headless Swarm Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d minions=%d seed_base=%d grid=%dx%d\n\n",
		scenario, runs, ticks, minions, seedBase, cfg.Cols, cfg.Rows)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)
		var rs runStats
		if scenario == "swarm" {
			rs = runSwarm(cfg, i+1, seed, ticks, minions)
		} else {
			rs = runSolo(cfg, i+1, seed)
		}
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

// runSwarm clears the box between player and enemy, scatters one nutrient per
// minion inside it, walks the player over each to summon, then lets the swarm
// work until the enemy dies or the tick limit runs out.
func runSwarm(cfg sim.Config, runIndex int, seed int64, ticks, minions int) runStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic report
	p, e := cfg.PlayerSpawn, cfg.EnemySpawn
	x0, x1 := min(p.X, e.X), max(p.X, e.X)
	y0, y1 := min(p.Y, e.Y), max(p.Y, e.Y)

	opts := []sim.SimOption{sim.WithConfig(cfg), sim.WithSequentialIDs(), sim.WithTileRect(x0, y0, x1, y1, sim.TileFloor)}
	w := x1 - x0 + 1
	cells := rng.Perm(w * (y1 - y0 + 1))
	var spots []sim.Position
	for _, c := range cells[:min(minions, len(cells))] {
		pos := sim.Position{X: x0 + c%w, Y: y0 + c/w}
		spots = append(spots, pos)
		opts = append(opts, sim.WithTile(pos.X, pos.Y, sim.TileNutrient))
	}
	ts := sim.NewTestSim(opts...)

	rs := runStats{runIndex: runIndex, seed: seed, ticksToKill: -1}
	at := p
	for _, spot := range spots {
		rs.playerActions += walk(ts, at, spot)
		at = spot
		if ts.Do(sim.Summon)[0] == sim.OutcomeSummoned {
			rs.playerActions++
		}
	}

	before := ts.Snapshot()
	n, died := ts.RunUntilDead(ticks)
	if died {
		rs.killed = true
		rs.ticksToKill = n
	}
	after := ts.Snapshot()
	rs.minions = len(after.Minions)
	rs.nutrients = countTiles(after, sim.TileNutrient) - countTiles(before, sim.TileNutrient)
	rs.finalLevel = after.Enemy.ParasiteLevel
	return rs
}

// runSolo digs the player to a random cell next to the enemy and attacks by
// hand until it dies.
func runSolo(cfg sim.Config, runIndex int, seed int64) runStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic report
	ts := sim.NewTestSim(sim.WithConfig(cfg))
	p, e := cfg.PlayerSpawn, cfg.EnemySpawn

	var approach []sim.Position
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := sim.Position{X: e.X + dx, Y: e.Y + dy}
			if (dx != 0 || dy != 0) && c.X >= 0 && c.X < cfg.Cols && c.Y >= 0 && c.Y < cfg.Rows {
				approach = append(approach, c)
			}
		}
	}

	rs := runStats{runIndex: runIndex, seed: seed, ticksToKill: -1}
	before := ts.Snapshot()
	target := e
	if len(approach) > 0 {
		target = approach[rng.Intn(len(approach))]
	}
	rs.playerActions += walk(ts, p, target)
	for !ts.Snapshot().Enemy.IsDead {
		out := ts.Do(sim.Attack)[0]
		if out == sim.OutcomeRejected {
			break
		}
		rs.playerActions++
		rs.attacks++
	}
	after := ts.Snapshot()
	rs.killed = after.Enemy.IsDead
	if rs.killed {
		rs.ticksToKill = 0
	}
	rs.nutrients = countTiles(after, sim.TileNutrient) - countTiles(before, sim.TileNutrient)
	rs.finalLevel = after.Enemy.ParasiteLevel
	return rs
}

// walk moves the player from one cell to another, x first, and returns how
// many moves were accepted.
func walk(ts *sim.TestSim, from, to sim.Position) int {
	n := 0
	step := func(a sim.Action) {
		if ts.Do(a)[0] != sim.OutcomeRejected {
			n++
		}
	}
	for x := from.X; x < to.X; x++ {
		step(sim.MoveRight)
	}
	for x := from.X; x > to.X; x-- {
		step(sim.MoveLeft)
	}
	for y := from.Y; y < to.Y; y++ {
		step(sim.MoveDown)
	}
	for y := from.Y; y > to.Y; y-- {
		step(sim.MoveUp)
	}
	return n
}

func countTiles(s sim.Snapshot, t sim.Tile) int {
	n := 0
	for _, c := range s.Tiles {
		if c == t {
			n++
		}
	}
	return n
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome: killed=%t ticks_to_kill=%d final_level=%d\n", rs.killed, rs.ticksToKill, rs.finalLevel)
	fmt.Printf("player: actions=%d attacks=%d minions=%d\n", rs.playerActions, rs.attacks, rs.minions)
	fmt.Printf("map: nutrients_created=%d\n\n", rs.nutrients)
}

func printAggregate(all []runStats) {
	kills := 0
	totalActions := 0
	totalNutrients := 0
	var killTicks []int
	for _, rs := range all {
		if rs.killed {
			kills++
			killTicks = append(killTicks, rs.ticksToKill)
		}
		totalActions += rs.playerActions
		totalNutrients += rs.nutrients
	}
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d kills=%d kill_rate=%.0f%%\n", len(all), kills, avg(kills*100, len(all)))
	fmt.Printf("avg_ticks_to_kill=%s avg_player_actions=%.1f avg_nutrients_created=%.1f\n",
		avgTickString(killTicks), avg(totalActions, len(all)), avg(totalNutrients, len(all)))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
