package sim

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSimLog_FilterAndCount(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "player", "map", "dig", "(2,1)", 0)
	sl.Add(2, "minion", "combat", "infect", "level 4", 4)
	sl.Add(3, "player", "combat", "infect", "level 14", 14)
	sl.Add(3, "player", "combat", "kill", "hero-1 died", 100)

	if got := sl.Count("combat", ""); got != 3 {
		t.Fatalf("combat entries=%d, want 3", got)
	}
	if got := sl.Count("", "infect"); got != 2 {
		t.Fatalf("infect entries=%d, want 2", got)
	}
	if got := len(sl.FilterSource("player")); got != 3 {
		t.Fatalf("player entries=%d, want 3", got)
	}
	last, ok := sl.LastOf("combat", "infect")
	if !ok || last.NumVal != 14 {
		t.Fatalf("LastOf=%+v,%v", last, ok)
	}
	if _, ok := sl.LastOf("summon", "minion"); ok {
		t.Fatal("LastOf should report missing entries")
	}
	if !sl.HasEntry("combat", "kill", "died") || sl.HasEntry("combat", "kill", "alive") {
		t.Fatal("HasEntry substring match wrong")
	}
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "minion", "move", "step", "(1,0)", 0)
	if quiet.Len() != 0 {
		t.Fatal("verbose entries recorded with verbose off")
	}
	loud := NewSimLog(true)
	loud.AddVerbose(1, "minion", "move", "step", "(1,0)", 0)
	if loud.Len() != 1 {
		t.Fatal("verbose entry missing with verbose on")
	}
}

func TestSimLog_NilSafe(t *testing.T) {
	var sl *SimLog
	sl.Add(0, "--", "tick", "noop", "", 0)
	sl.AddVerbose(0, "--", "tick", "noop", "", 0)
}

func TestSimLog_Tail(t *testing.T) {
	sl := NewSimLog(false)
	for i := 1; i <= 5; i++ {
		sl.Add(i, "--", "tick", "n", "", float64(i))
	}
	tail := sl.Tail(2)
	if len(tail) != 2 || tail[0].Tick != 4 || tail[1].Tick != 5 {
		t.Fatalf("Tail(2)=%+v", tail)
	}
	if got := len(sl.Tail(99)); got != 5 {
		t.Fatalf("Tail(99) len=%d, want 5", got)
	}
	if sl.Tail(0) != nil {
		t.Fatal("Tail(0) should be nil")
	}
	tail[0].Value = "changed"
	if sl.Entries()[3].Value == "changed" {
		t.Fatal("Tail must return a copy")
	}
}

func TestSimLog_MirrorsToSlog(t *testing.T) {
	var buf bytes.Buffer
	sl := NewSimLog(false)
	sl.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	sl.Add(7, "player", "summon", "minion", "m-1 at (3,3)", 0)
	out := buf.String()
	for _, want := range []string{"msg=summon.minion", "tick=7", "source=player"} {
		if !strings.Contains(out, want) {
			t.Fatalf("slog output %q missing %q", out, want)
		}
	}
	sl.SetLogger(nil)
	sl.Add(8, "player", "summon", "minion", "", 0)
}

func TestSimLogEntry_String(t *testing.T) {
	e := SimLogEntry{Tick: 42, Source: "minion", Category: "combat", Key: "infect", Value: "level 38"}
	got := e.String()
	if !strings.HasPrefix(got, "[T=042] minion  combat") || !strings.HasSuffix(got, "level 38") {
		t.Fatalf("String()=%q", got)
	}
	sl := NewSimLog(false)
	sl.Add(1, "a", "b", "c", "d", 0)
	sl.Add(2, "a", "b", "c", "d", 0)
	if strings.Count(sl.Dump(), "\n") != 2 {
		t.Fatal("Dump should emit one line per entry")
	}
}

func TestSimLog_CapDropsOldest(t *testing.T) {
	sl := NewSimLog(false)
	sl.SetCap(3)
	for i := 1; i <= 5; i++ {
		sl.Add(i, "player", "map", "dig", "", 0)
	}
	got := sl.Entries()
	if len(got) != 3 || got[0].Tick != 3 || got[2].Tick != 5 {
		t.Fatalf("entries=%+v, want ticks 3..5", got)
	}
	if sl.Dropped() != 2 {
		t.Fatalf("dropped=%d, want 2", sl.Dropped())
	}

	sl.SetCap(1)
	if sl.Len() != 1 || sl.Tail(1)[0].Tick != 5 || sl.Dropped() != 4 {
		t.Fatalf("tightening the cap should keep only the newest: %+v", sl.Entries())
	}
	sl.SetCap(0)
	sl.Add(6, "player", "map", "dig", "", 0)
	sl.Add(7, "player", "map", "dig", "", 0)
	if sl.Len() != 3 {
		t.Fatalf("len=%d after removing the cap, want 3", sl.Len())
	}
}
