package nav

import (
	"fmt"
	"time"
)

// SearchOutcome is the terminal state of one search invocation.
type SearchOutcome int

const (
	OutcomeIdle        SearchOutcome = iota // no search run yet
	OutcomePathFound                        // goal reached
	OutcomeNoPathFound                      // open set exhausted, or input rejected
	OutcomeAborted                          // node budget exceeded
	OutcomePartialPath                      // partial search returned a closest-approach route
)

func (o SearchOutcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomePathFound:
		return "path_found"
	case OutcomeNoPathFound:
		return "no_path"
	case OutcomeAborted:
		return "aborted"
	case OutcomePartialPath:
		return "partial"
	default:
		return "unknown"
	}
}

// SearchStats describes the most recent search. Intended for debug overlays
// and for tuning the node budget; never consulted by the search itself.
type SearchStats struct {
	NodesExpanded int
	Duration      time.Duration
	NodeBudget    int
	Outcome       SearchOutcome
}

// SearchLogEntry is one recorded search in a SearchLog.
type SearchLogEntry struct {
	Seq           int
	Outcome       SearchOutcome
	NodesExpanded int
	Duration      time.Duration
	PathPoints    int // length of the returned path, 0 for nil
}

// String formats the entry as a fixed-width log line.
//
//	[#042] path_found  nodes=118   points=9    t=312µs
func (e SearchLogEntry) String() string {
	return fmt.Sprintf("[#%03d] %-11s nodes=%-5d points=%-4d t=%s",
		e.Seq, e.Outcome, e.NodesExpanded, e.PathPoints, e.Duration)
}

// SearchLog collects per-search stat lines for headless reporting. Unlike
// SearchStats (last call only), the log keeps a bounded history.
type SearchLog struct {
	entries []SearchLogEntry
	maxLen  int
	seq     int
}

// NewSearchLog creates a log keeping at most maxLen entries; older entries
// are discarded first. maxLen <= 0 means unbounded.
func NewSearchLog(maxLen int) *SearchLog {
	return &SearchLog{maxLen: maxLen}
}

func (sl *SearchLog) add(stats SearchStats, pathPoints int) {
	sl.seq++
	sl.entries = append(sl.entries, SearchLogEntry{
		Seq:           sl.seq,
		Outcome:       stats.Outcome,
		NodesExpanded: stats.NodesExpanded,
		Duration:      stats.Duration,
		PathPoints:    pathPoints,
	})
	if sl.maxLen > 0 && len(sl.entries) > sl.maxLen {
		sl.entries = sl.entries[len(sl.entries)-sl.maxLen:]
	}
}

// Entries returns the recorded entries, oldest first.
func (sl *SearchLog) Entries() []SearchLogEntry {
	return sl.entries
}
