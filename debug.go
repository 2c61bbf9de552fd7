package scribe

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and workload metrics.
// Only populated when Session.debug is true.
type frameStats struct {
	updateTime time.Duration
	queryTime  time.Duration
	strokes    int
	points     int
	mode       Mode
}

// debugLog prints frame timing and workload stats to stderr. The nearest
// query is the dominant per-frame cost, so it gets its own column.
func (s *Session) debugLog() {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[scribe] mode: %s | update: %v | query: %v | strokes: %d | points: %d\n",
		s.stats.mode, s.stats.updateTime, s.stats.queryTime,
		s.stats.strokes, s.stats.points)
}
