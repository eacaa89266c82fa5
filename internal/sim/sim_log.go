package sim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// SimLogEntry is one recorded simulation event.
type SimLogEntry struct {
	Tick     int
	Source   string  // "player", "minion", "enemy" or "--" for global events
	Category string  // move, map, combat, summon, action, tick
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] minion  combat    infect          level 38
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-7s %-9s %-15s %s",
		e.Tick, e.Source, e.Category, e.Key, e.Value)
}

// SimLog collects structured events. Entries are mirrored to an slog.Logger
// at debug level so a file log shows the same stream the frontends display.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
	logger  *slog.Logger

	maxEntries int // 0 keeps everything
	dropped    int
}

// NewSimLog creates a SimLog. If verbose is true, per-step movement and
// rejected actions are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose, logger: discardLogger()}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetLogger redirects the debug mirror. A nil logger disables it.
func (sl *SimLog) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	sl.logger = l
}

// SetCap bounds the log to the n most recent entries; older ones are dropped
// as new ones arrive. n <= 0 removes the bound.
func (sl *SimLog) SetCap(n int) {
	sl.maxEntries = max(n, 0)
	sl.trim()
}

func (sl *SimLog) trim() {
	if sl.maxEntries == 0 || len(sl.entries) <= sl.maxEntries {
		return
	}
	over := len(sl.entries) - sl.maxEntries
	sl.dropped += over
	sl.entries = sl.entries[over:]
}

// Dropped returns how many entries the cap has discarded.
func (sl *SimLog) Dropped() int { return sl.dropped }

// Add records a new entry.
func (sl *SimLog) Add(tick int, source, category, key, value string, numVal float64) {
	if sl == nil {
		return
	}
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Source:   source,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
	sl.trim()
	sl.logger.LogAttrs(context.Background(), slog.LevelDebug, category+"."+key,
		slog.Int("tick", tick),
		slog.String("source", source),
		slog.String("value", value),
	)
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, source, category, key, value string, numVal float64) {
	if sl == nil || !sl.verbose {
		return
	}
	sl.Add(tick, source, category, key, value, numVal)
}

// Len returns the number of recorded entries.
func (sl *SimLog) Len() int { return len(sl.entries) }

// Entries returns a copy of all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	out := make([]SimLogEntry, len(sl.entries))
	copy(out, sl.entries)
	return out
}

// Tail returns up to n of the most recent entries, oldest first.
func (sl *SimLog) Tail(n int) []SimLogEntry {
	if n > len(sl.entries) {
		n = len(sl.entries)
	}
	if n <= 0 {
		return nil
	}
	out := make([]SimLogEntry, n)
	copy(out, sl.entries[len(sl.entries)-n:])
	return out
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterSource returns entries emitted by one source.
func (sl *SimLog) FilterSource(source string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Source == source {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match the given category and key.
func (sl *SimLog) Count(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		e := sl.entries[i]
		if e.Category == category && e.Key == key {
			return e, true
		}
	}
	return SimLogEntry{}, false
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if e.Category == category && e.Key == key && strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Dump returns all entries as newline-separated log lines.
func (sl *SimLog) Dump() string {
	var b strings.Builder
	for _, e := range sl.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
