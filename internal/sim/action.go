package sim

import (
	"fmt"
	"strings"
)

// Action is one classified player intent.
type Action uint8

const (
	ActionNone Action = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Attack
	Summon
	actionCount // sentinel
)

var actionNames = [actionCount]string{
	ActionNone: "none",
	MoveUp:     "up",
	MoveDown:   "down",
	MoveLeft:   "left",
	MoveRight:  "right",
	Attack:     "attack",
	Summon:     "summon",
}

func (a Action) String() string {
	if a >= actionCount {
		return fmt.Sprintf("action(%d)", uint8(a))
	}
	return actionNames[a]
}

// ParseAction maps a name such as "up" or "summon" to its Action.
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a := MoveUp; a < actionCount; a++ {
		if actionNames[a] == s {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", s)
}

// delta returns the grid step for a movement action.
func (a Action) delta() (dx, dy int, ok bool) {
	switch a {
	case MoveUp:
		return 0, -1, true
	case MoveDown:
		return 0, 1, true
	case MoveLeft:
		return -1, 0, true
	case MoveRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// Outcome describes what an applied action did.
type Outcome uint8

const (
	OutcomeRejected Outcome = iota // Policy rejection; nothing changed
	OutcomeMoved
	OutcomeDug      // Moved into a wall and dug it out
	OutcomeAttacked // Hit the enemy
	OutcomeKilled   // Hit the enemy and killed it
	OutcomeSummoned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeMoved:
		return "moved"
	case OutcomeDug:
		return "dug"
	case OutcomeAttacked:
		return "attacked"
	case OutcomeKilled:
		return "killed"
	case OutcomeSummoned:
		return "summoned"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// ActionProcessor applies player actions to the entity state and map.
type ActionProcessor struct {
	grid     *TileMap
	entities *EntityState
	cfg      Config
	log      *SimLog
}

// NewActionProcessor wires a processor to the state it mutates.
func NewActionProcessor(grid *TileMap, entities *EntityState, cfg Config, log *SimLog) *ActionProcessor {
	return &ActionProcessor{grid: grid, entities: entities, cfg: cfg, log: log}
}

// Apply runs one action to completion. tick stamps the event log.
func (ap *ActionProcessor) Apply(tick int, a Action) Outcome {
	var out Outcome
	switch a {
	case MoveUp, MoveDown, MoveLeft, MoveRight:
		out = ap.move(tick, a)
	case Attack:
		out = ap.attack(tick)
	case Summon:
		out = ap.summon(tick)
	default:
		out = OutcomeRejected
	}
	if out == OutcomeRejected {
		ap.log.AddVerbose(tick, "player", "action", "rejected", a.String(), 0)
	}
	return out
}

// move steps the player one cell; walking into a wall digs it in the same step.
func (ap *ActionProcessor) move(tick int, a Action) Outcome {
	dx, dy, _ := a.delta()
	target := ap.entities.Player().Pos.Add(dx, dy)
	if !ap.entities.MovePlayer(target) {
		return OutcomeRejected
	}
	if ap.grid.Dig(target) {
		ap.log.Add(tick, "player", "map", "dig", target.String(), 0)
		return OutcomeDug
	}
	ap.log.AddVerbose(tick, "player", "move", "position", target.String(), 0)
	return OutcomeMoved
}

func (ap *ActionProcessor) attack(tick int) Outcome {
	enemy := ap.entities.Enemy()
	if enemy.IsDead || !ChebyshevAdjacent(ap.entities.Player().Pos, enemy.Pos) {
		return OutcomeRejected
	}
	killed, converted := infect(ap.entities, ap.grid, ap.log, tick, ap.cfg.ParasiteIncrement, enemy.Pos, ap.cfg.DeathBlastRadius)
	level := ap.entities.Enemy().ParasiteLevel
	ap.log.Add(tick, "player", "combat", "infect", fmt.Sprintf("level %d", level), float64(level))
	if killed {
		ap.log.Add(tick, "player", "combat", "kill",
			fmt.Sprintf("%s died at %v, %d nutrients", enemy.ID, enemy.Pos, converted), float64(converted))
		return OutcomeKilled
	}
	return OutcomeAttacked
}

func (ap *ActionProcessor) summon(tick int) Outcome {
	pos := ap.entities.Player().Pos
	if !ap.grid.ConsumeNutrient(pos) {
		return OutcomeRejected
	}
	m, _ := ap.entities.AddMinion(pos)
	ap.log.Add(tick, "player", "summon", "minion", fmt.Sprintf("%s at %v", shortID(m.ID), pos),
		float64(ap.entities.MinionCount()))
	return OutcomeSummoned
}

// shortID trims a minion id for log lines.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
