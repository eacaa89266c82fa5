package sim

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds the fixed rules of a simulation. It is read once at startup
// and never changed while the simulation runs.
type Config struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`

	// TickPeriodMS is the wall-clock period of the minion AI tick.
	TickPeriodMS int `json:"tick_period_ms"`

	AutoAttackIncrement int `json:"auto_attack_increment"` // per adjacent minion per tick
	ParasiteIncrement   int `json:"parasite_increment"`    // per player attack
	DeathBlastRadius    int `json:"death_blast_radius"`    // walls → nutrients around the corpse

	PlayerSpawn Position `json:"player_spawn"`
	EnemySpawn  Position `json:"enemy_spawn"`
	EnemyID     string   `json:"enemy_id"`
}

// DefaultConfig returns the stock 20x15 arena.
func DefaultConfig() Config {
	return Config{
		Cols:                20,
		Rows:                15,
		TickPeriodMS:        500,
		AutoAttackIncrement: 2,
		ParasiteIncrement:   10,
		DeathBlastRadius:    1,
		PlayerSpawn:         Position{X: 1, Y: 1},
		EnemySpawn:          Position{X: 15, Y: 10},
		EnemyID:             "hero-1",
	}
}

// TickPeriod returns TickPeriodMS as a duration.
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.TickPeriodMS) * time.Millisecond
}

// Validate checks that the rules describe a playable arena.
func (c Config) Validate() error {
	var errs []error
	if c.Cols <= 0 || c.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Cols, c.Rows))
	}
	if c.TickPeriodMS <= 0 {
		errs = append(errs, fmt.Errorf("tick_period_ms must be positive, got %d", c.TickPeriodMS))
	}
	if c.AutoAttackIncrement <= 0 {
		errs = append(errs, fmt.Errorf("auto_attack_increment must be positive, got %d", c.AutoAttackIncrement))
	}
	if c.ParasiteIncrement <= c.AutoAttackIncrement {
		errs = append(errs, fmt.Errorf("parasite_increment (%d) must exceed auto_attack_increment (%d)",
			c.ParasiteIncrement, c.AutoAttackIncrement))
	}
	if c.DeathBlastRadius < 0 {
		errs = append(errs, fmt.Errorf("death_blast_radius must not be negative, got %d", c.DeathBlastRadius))
	}
	inGrid := func(p Position) bool { return p.X >= 0 && p.X < c.Cols && p.Y >= 0 && p.Y < c.Rows }
	if !inGrid(c.PlayerSpawn) {
		errs = append(errs, fmt.Errorf("player_spawn %v: %w", c.PlayerSpawn, ErrOutOfBounds))
	}
	if !inGrid(c.EnemySpawn) {
		errs = append(errs, fmt.Errorf("enemy_spawn %v: %w", c.EnemySpawn, ErrOutOfBounds))
	}
	if c.EnemyID == "" {
		errs = append(errs, errors.New("enemy_id must not be empty"))
	}
	return errors.Join(errs...)
}

// LoadConfig reads rules from a JSON file layered over DefaultConfig. A
// missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read simulation config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}
	return cfg, nil
}
