package nav

import (
	"strings"
	"testing"
)

func TestSearchLog_RecordsSearches(t *testing.T) {
	g := mustGrid(t, 5, 5, 32)
	pf := NewPathfinder(g)
	log := NewSearchLog(0)
	pf.SetLog(log)

	sx, sy := g.GridToWorld(0, 0)
	gx, gy := g.GridToWorld(4, 4)
	pf.FindPath(sx, sy, gx, gy)
	g.SetWalkable(4, 4, false)
	pf.FindPath(sx, sy, gx, gy)

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Outcome != OutcomePathFound || entries[1].Outcome != OutcomeNoPathFound {
		t.Fatalf("unexpected outcomes: %s, %s", entries[0].Outcome, entries[1].Outcome)
	}
	if entries[0].Seq != 1 || entries[1].Seq != 2 {
		t.Fatal("sequence numbers should increment per search")
	}
	if entries[0].PathPoints != 5 {
		t.Fatalf("expected 5 recorded path points, got %d", entries[0].PathPoints)
	}
}

func TestSearchLog_Bounded(t *testing.T) {
	g := mustGrid(t, 5, 5, 32)
	pf := NewPathfinder(g)
	log := NewSearchLog(2)
	pf.SetLog(log)

	sx, sy := g.GridToWorld(0, 0)
	gx, gy := g.GridToWorld(4, 4)
	for i := 0; i < 5; i++ {
		pf.FindPath(sx, sy, gx, gy)
	}
	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected the log to keep 2 entries, got %d", len(entries))
	}
	if entries[0].Seq != 4 || entries[1].Seq != 5 {
		t.Fatalf("expected the newest entries, got seq %d and %d", entries[0].Seq, entries[1].Seq)
	}
}

func TestSearchLogEntry_String(t *testing.T) {
	e := SearchLogEntry{Seq: 7, Outcome: OutcomePathFound, NodesExpanded: 42, PathPoints: 9}
	s := e.String()
	if !strings.Contains(s, "path_found") || !strings.Contains(s, "nodes=42") {
		t.Fatalf("unexpected log line: %q", s)
	}
}

func TestSearchOutcome_Names(t *testing.T) {
	cases := map[SearchOutcome]string{
		OutcomeIdle:        "idle",
		OutcomePathFound:   "path_found",
		OutcomeNoPathFound: "no_path",
		OutcomeAborted:     "aborted",
		OutcomePartialPath: "partial",
	}
	for o, want := range cases {
		if o.String() != want {
			t.Fatalf("outcome %d: expected %q, got %q", o, want, o.String())
		}
	}
}
