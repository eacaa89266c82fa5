// Package sim is the display-independent core of the parasite swarm game: a
// bounded tile grid, the player, summoned minions and a single enemy, updated
// by discrete player actions and by a periodic minion AI tick.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultEventLogCap is how many event log entries a Simulation keeps.
const DefaultEventLogCap = 2000

// ErrAlreadyRunning is returned by Run when the tick loop is already active.
var ErrAlreadyRunning = errors.New("simulation tick loop already running")

// Simulation owns the map and the entity state and serialises every change to
// them. Player actions and pursuit ticks each hold the lock for their whole
// run, so a renderer calling Snapshot only ever sees committed state.
type Simulation struct {
	mu       sync.Mutex
	cfg      Config
	grid     *TileMap
	entities *EntityState
	actions  *ActionProcessor
	pursuit  *PursuitTicker
	simLog   *SimLog
	tick     int
	version  uint64

	logger  *slog.Logger
	verbose bool
	logCap  int
	updates chan struct{}

	// Tick loop control.
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// Option configures a Simulation at construction.
type Option func(*Simulation)

// WithLogger sends lifecycle logs and the event mirror to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithVerboseLog records per-step movement and rejected actions in the event log.
func WithVerboseLog(v bool) Option {
	return func(s *Simulation) { s.verbose = v }
}

// WithEventLogCap keeps only the n most recent event log entries. n <= 0
// keeps all of them.
func WithEventLogCap(n int) Option {
	return func(s *Simulation) { s.logCap = n }
}

// New builds a simulation from cfg: a solid-wall map with the player's spawn
// cell dug out.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	s := &Simulation{
		cfg:      cfg,
		logger:   discardLogger(),
		logCap:   DefaultEventLogCap,
		updates:  make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
	for _, o := range opts {
		o(s)
	}

	s.grid = NewTileMap(cfg.Cols, cfg.Rows)
	s.grid.SetTile(cfg.PlayerSpawn, TileFloor)
	entities, err := NewEntityState(s.grid, cfg.PlayerSpawn, cfg.EnemySpawn, cfg.EnemyID)
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	s.entities = entities
	s.simLog = NewSimLog(s.verbose)
	s.simLog.SetLogger(s.logger)
	s.simLog.SetCap(s.logCap)
	s.actions = NewActionProcessor(s.grid, s.entities, cfg, s.simLog)
	s.pursuit = NewPursuitTicker(s.grid, s.entities, cfg, s.simLog)
	return s, nil
}

// Config returns the rules the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// SubmitAction applies one player action synchronously and returns what it did.
func (s *Simulation) SubmitAction(a Action) Outcome {
	s.mu.Lock()
	out := s.actions.Apply(s.tick, a)
	if out != OutcomeRejected {
		s.version++
	}
	if out == OutcomeKilled {
		s.logKillLocked("player")
	}
	s.mu.Unlock()

	if out != OutcomeRejected {
		s.signalUpdate()
	}
	return out
}

// Tick runs one pursuit step. It is what the tick loop calls; tests and the
// headless runner call it directly for deterministic stepping.
func (s *Simulation) Tick() TickReport {
	s.mu.Lock()
	rep := s.tickLocked()
	s.mu.Unlock()

	if !rep.Skipped {
		s.signalUpdate()
	}
	return rep
}

func (s *Simulation) tickLocked() TickReport {
	if s.entities.Enemy().IsDead {
		return TickReport{Skipped: true}
	}
	s.tick++
	rep := s.pursuit.Tick(s.tick)
	s.version++
	if rep.Killed {
		s.logKillLocked("minions")
	}
	return rep
}

func (s *Simulation) logKillLocked(by string) {
	e := s.entities.Enemy()
	s.logger.Info("enemy killed",
		slog.String("enemy", e.ID),
		slog.String("by", by),
		slog.Int("tick", s.tick),
		slog.Int("minions", s.entities.MinionCount()),
	)
}

// Snapshot returns a deep copy of the latest committed state.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.grid.Clone()
	return Snapshot{
		Cols:    g.cols,
		Rows:    g.rows,
		Tiles:   g.tiles,
		Player:  s.entities.Player(),
		Minions: s.entities.Minions(),
		Enemy:   s.entities.Enemy(),
		Tick:    s.tick,
		Version: s.version,
	}
}

// Events returns up to n of the most recent event log entries.
func (s *Simulation) Events(n int) []SimLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.simLog.Tail(n)
}

// EventLog returns a copy of the retained event log.
func (s *Simulation) EventLog() []SimLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.simLog.Entries()
}

// Updates delivers a signal after every committed change. The channel holds
// at most one pending signal; a slow reader sees one wake-up for a burst.
func (s *Simulation) Updates() <-chan struct{} { return s.updates }

func (s *Simulation) signalUpdate() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// Run drives Tick on the configured period until ctx is cancelled, Close is
// called, or a tick finds the enemy already dead. It returns nil in the last
// two cases and ctx.Err() on cancellation.
func (s *Simulation) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.running.Store(false)

	ticker := time.NewTicker(s.cfg.TickPeriod())
	defer ticker.Stop()
	s.logger.Info("tick loop started", slog.Duration("period", s.cfg.TickPeriod()))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("tick loop cancelled")
			return ctx.Err()
		case <-s.stopChan:
			s.logger.Info("tick loop stopped")
			return nil
		case <-ticker.C:
			if rep := s.Tick(); rep.Skipped {
				s.logger.Info("tick loop finished: enemy dead")
				return nil
			}
		}
	}
}

// Start runs the tick loop on its own goroutine. Close waits for it.
func (s *Simulation) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("tick loop exited", slog.Any("err", err))
		}
	}()
}

// Close stops the tick loop and waits for it to return. Safe to call more
// than once.
func (s *Simulation) Close() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
}
