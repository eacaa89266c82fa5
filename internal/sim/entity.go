package sim

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxParasiteLevel is the lethal parasite level.
const MaxParasiteLevel = 100

// Position is an integer grid coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ChebyshevAdjacent reports whether a and b differ by at most one cell on each
// axis. A position is adjacent to itself.
func ChebyshevAdjacent(a, b Position) bool {
	return abs(a.X-b.X) <= 1 && abs(a.Y-b.Y) <= 1
}

// Player is the human-controlled parasite.
type Player struct {
	Pos Position
}

// Minion is an allied unit spawned from a nutrient tile.
type Minion struct {
	ID  string
	Pos Position
}

// Enemy is the single infection target.
type Enemy struct {
	ID            string
	Pos           Position
	ParasiteLevel int
	IsDead        bool
}

// EntityState owns the player, the minion list and the enemy. Fields are only
// changed through its methods so that bounds, the parasite clamp and death
// terminality always hold.
type EntityState struct {
	grid    *TileMap
	player  Player
	minions []Minion
	enemy   Enemy
	newID   func() string
}

// NewEntityState places the player and the enemy on grid. Spawns outside the
// grid are rejected with ErrOutOfBounds.
func NewEntityState(grid *TileMap, playerSpawn, enemySpawn Position, enemyID string) (*EntityState, error) {
	if !grid.InBounds(playerSpawn) {
		return nil, fmt.Errorf("player spawn %v: %w", playerSpawn, ErrOutOfBounds)
	}
	if !grid.InBounds(enemySpawn) {
		return nil, fmt.Errorf("enemy spawn %v: %w", enemySpawn, ErrOutOfBounds)
	}
	return &EntityState{
		grid:   grid,
		player: Player{Pos: playerSpawn},
		enemy:  Enemy{ID: enemyID, Pos: enemySpawn},
		newID:  uuid.NewString,
	}, nil
}

// Player returns a copy of the player record.
func (es *EntityState) Player() Player { return es.player }

// Enemy returns a copy of the enemy record.
func (es *EntityState) Enemy() Enemy { return es.enemy }

// MinionCount returns the number of live minions.
func (es *EntityState) MinionCount() int { return len(es.minions) }

// Minions returns a copy of the minion list in insertion order.
func (es *EntityState) Minions() []Minion {
	out := make([]Minion, len(es.minions))
	copy(out, es.minions)
	return out
}

// MovePlayer puts the player on p. Out-of-bounds targets are rejected.
func (es *EntityState) MovePlayer(p Position) bool {
	if !es.grid.InBounds(p) {
		return false
	}
	es.player.Pos = p
	return true
}

// AddMinion appends a minion with a fresh id at p.
func (es *EntityState) AddMinion(p Position) (Minion, bool) {
	if !es.grid.InBounds(p) {
		return Minion{}, false
	}
	m := Minion{ID: es.newID(), Pos: p}
	es.minions = append(es.minions, m)
	return m, true
}

// MoveMinion moves the i-th minion to p.
func (es *EntityState) MoveMinion(i int, p Position) bool {
	if i < 0 || i >= len(es.minions) || !es.grid.InBounds(p) {
		return false
	}
	es.minions[i].Pos = p
	return true
}

// DamageEnemy raises the parasite level by amount, clamped to
// MaxParasiteLevel. justDied is true only for the call that kills the enemy;
// calls on a dead enemy change nothing.
func (es *EntityState) DamageEnemy(amount int) (justDied bool) {
	if es.enemy.IsDead {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	es.enemy.ParasiteLevel = min(es.enemy.ParasiteLevel+amount, MaxParasiteLevel)
	if es.enemy.ParasiteLevel >= MaxParasiteLevel {
		es.enemy.IsDead = true
		return true
	}
	return false
}

// setParasiteLevel seeds the enemy for scenarios. Reaching the lethal level
// kills the enemy without the death side effect.
func (es *EntityState) setParasiteLevel(level int) {
	if es.enemy.IsDead {
		return
	}
	es.enemy.ParasiteLevel = max(0, min(level, MaxParasiteLevel))
	es.enemy.IsDead = es.enemy.ParasiteLevel >= MaxParasiteLevel
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
