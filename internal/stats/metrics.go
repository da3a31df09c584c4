// Package stats contains statistics calculations over finished sessions.
package stats

import (
	"time"

	"toqst/internal/model"
	"toqst/internal/session"
)

// SessionMetrics computes WPM, CPM, and accuracy for a session.
func SessionMetrics(correct, incorrect int, durationMs int64) (wpm, cpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0, 0, 0
	}
	wpm = (float64(correct) / 5.0) / minutes
	cpm = float64(correct) / minutes
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return wpm, cpm, accuracy
}

// Summarize folds a finished session into a Summary for the results screen.
func Summarize(s *session.Session, endedAt time.Time, timedOut bool) model.Summary {
	summary := model.Summary{
		StartedAt: s.StartedAt(),
		EndedAt:   endedAt,
		TimedOut:  timedOut,
	}
	for _, word := range s.Words() {
		ws := model.WordSummary{Target: word.Target()}
		for _, ch := range word.Chars() {
			switch ch.State {
			case session.Correct:
				ws.Correct++
			case session.Mistype:
				ws.Mistype++
			case session.ExtraMistype:
				ws.Extra++
			case session.Untyped:
				ws.Missed++
			}
		}
		summary.Correct += ws.Correct
		summary.Incorrect += ws.Mistype + ws.Extra
		summary.Words = append(summary.Words, ws)
	}
	return summary
}
