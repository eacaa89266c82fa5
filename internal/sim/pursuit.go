package sim

import "fmt"

// TickReport summarises one pursuit tick.
type TickReport struct {
	Skipped bool // enemy was already dead at tick start
	Moved   int
	Blocked int // minions whose greedy step hit a wall
	Attacks int
	Damage  int // parasite levels actually added this tick
	Killed  bool
}

// PursuitTicker advances every minion one AI step per tick: close in on the
// enemy by greedy axis reduction, or infect it when adjacent.
type PursuitTicker struct {
	grid     *TileMap
	entities *EntityState
	cfg      Config
	log      *SimLog
}

// NewPursuitTicker wires a ticker to the state it mutates.
func NewPursuitTicker(grid *TileMap, entities *EntityState, cfg Config, log *SimLog) *PursuitTicker {
	return &PursuitTicker{grid: grid, entities: entities, cfg: cfg, log: log}
}

// nextStep returns the greedy axis-reduction step from `from` toward `to`.
// The longer axis is reduced first; ties reduce the vertical distance.
func nextStep(from, to Position) Position {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if abs(dx) > abs(dy) {
		return from.Add(sign(dx), 0)
	}
	return from.Add(0, sign(dy))
}

// Tick runs one AI step for every minion. All decisions are taken against the
// enemy position and map as they were when the tick started, so one minion's
// attack cannot change where another minion walks in the same tick.
func (pt *PursuitTicker) Tick(tick int) TickReport {
	var rep TickReport
	start := pt.entities.Enemy()
	if start.IsDead {
		rep.Skipped = true
		return rep
	}
	terrain := pt.grid.Clone()
	target := start.Pos

	for i, m := range pt.entities.Minions() {
		if ChebyshevAdjacent(m.Pos, target) {
			before := pt.entities.Enemy().ParasiteLevel
			killed, converted := infect(pt.entities, pt.grid, pt.log, tick, pt.cfg.AutoAttackIncrement, target, pt.cfg.DeathBlastRadius)
			after := pt.entities.Enemy().ParasiteLevel
			rep.Attacks++
			rep.Damage += after - before
			if after != before {
				pt.log.AddVerbose(tick, "minion", "combat", "infect", fmt.Sprintf("%s level %d", shortID(m.ID), after), float64(after))
			}
			if killed {
				rep.Killed = true
				pt.log.Add(tick, "minion", "combat", "kill",
					fmt.Sprintf("%s died at %v, %d nutrients", start.ID, target, converted), float64(converted))
			}
			continue
		}

		step := nextStep(m.Pos, target)
		if !terrain.IsPassableForMovement(step) {
			rep.Blocked++
			continue
		}
		pt.entities.MoveMinion(i, step)
		rep.Moved++
		pt.log.AddVerbose(tick, "minion", "move", "position", fmt.Sprintf("%s %v", shortID(m.ID), step), 0)
	}

	if rep.Attacks > 0 && !rep.Killed {
		level := pt.entities.Enemy().ParasiteLevel
		pt.log.Add(tick, "minion", "combat", "infect", fmt.Sprintf("%d hits, level %d", rep.Attacks, level), float64(level))
	}
	return rep
}
