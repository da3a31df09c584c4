// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Lang     string
	Words    int
	Timeout  time.Duration
	CapsPct  float64
	PunctPct float64
	PunctSet string
}

// WordSummary captures one word's outcome for the results screen.
type WordSummary struct {
	Target  string
	Correct int
	Mistype int
	Extra   int
	Missed  int
}

// Summary captures a finished typing session. It lives only for the process
// lifetime; nothing is persisted.
type Summary struct {
	StartedAt time.Time
	EndedAt   time.Time
	TimedOut  bool
	Correct   int
	Incorrect int
	Words     []WordSummary
}

// DurationMs returns the session duration in milliseconds.
func (s Summary) DurationMs() int64 {
	return s.EndedAt.Sub(s.StartedAt).Milliseconds()
}
