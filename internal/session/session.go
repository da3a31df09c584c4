package session

import "time"

// Session owns the ordered word list, the cursor position, and the
// idle/active activity marker. It is single-owner state: one event loop feeds
// it one event at a time and no other goroutine touches it.
type Session struct {
	words   []*Word
	wordIdx int

	deadline  time.Duration
	started   bool
	startedAt time.Time

	now func() time.Time
}

// New builds a session from the supplied target words. The word source owns
// the precondition that the list is non-empty. The deadline is measured from
// the first character or space keystroke; a non-positive deadline disables
// the timeout.
func New(targets []string, deadline time.Duration) *Session {
	words := make([]*Word, len(targets))
	for i, t := range targets {
		words[i] = newWord(t)
	}
	return &Session{
		words:    words,
		deadline: deadline,
		now:      time.Now,
	}
}

// TypeRune applies one printable character. Within the original word the slot
// is marked Correct or Mistype by comparison with the expected rune; past the
// end the rune becomes an extra slot, unless the word is saturated, in which
// case the keystroke has no effect.
func (s *Session) TypeRune(r rune) {
	s.markStarted()
	word := s.words[s.wordIdx]
	if expected, ok := word.charAt(word.offset); ok {
		if expected.Value == r {
			word.setState(word.offset, Correct)
		} else {
			word.setState(word.offset, Mistype)
		}
		word.offset++
		return
	}
	if word.appendExtra(r) {
		word.offset++
	}
}

// NextWord advances the cursor to the next word unconditionally. Remaining
// characters in the abandoned word keep whatever state they already had;
// space is a hard move signal, not a completeness check.
func (s *Session) NextWord() {
	s.markStarted()
	s.wordIdx++
}

// Backspace moves the cursor back one position. At the very first character
// of the first word it does nothing. At the start of a later word it steps
// back to the previous word, whose own stored offset is left exactly as it
// was. Otherwise it undoes one slot: extras are discarded entirely, original
// characters revert to Untyped.
func (s *Session) Backspace() {
	word := s.words[s.wordIdx]
	if word.offset == 0 {
		if s.wordIdx == 0 {
			return
		}
		s.wordIdx--
		return
	}
	word.offset--
	if word.offset >= word.origLen {
		word.removeLast()
		return
	}
	word.setState(word.offset, Untyped)
}

func (s *Session) markStarted() {
	if s.started {
		return
	}
	s.started = true
	s.startedAt = s.now()
}

// Completed reports whether the cursor has moved past the last word.
func (s *Session) Completed() bool {
	return s.wordIdx >= len(s.words)
}

// TimedOut reports whether the deadline has passed since the first keystroke.
// It is a pure comparison against the sampled clock and is safe to call
// redundantly every loop iteration.
func (s *Session) TimedOut() bool {
	if !s.started || s.deadline <= 0 {
		return false
	}
	return s.now().Sub(s.startedAt) > s.deadline
}

// Done reports whether the session accepts no further events.
func (s *Session) Done() bool {
	return s.Completed() || s.TimedOut()
}

// Position returns the cursor as (word index, offset within that word).
func (s *Session) Position() (wordIdx, offset int) {
	if s.Completed() {
		return s.wordIdx, 0
	}
	return s.wordIdx, s.words[s.wordIdx].offset
}

// Words returns the ordered word models for rendering and summaries.
// Callers must not modify them.
func (s *Session) Words() []*Word {
	return s.words
}

// WordCount returns the number of target words.
func (s *Session) WordCount() int {
	return len(s.words)
}

// Started reports whether the first keystroke has been observed.
func (s *Session) Started() bool {
	return s.started
}

// StartedAt returns the activation timestamp; zero while idle.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Elapsed returns time typed so far; zero while idle.
func (s *Session) Elapsed() time.Duration {
	if !s.started {
		return 0
	}
	return s.now().Sub(s.startedAt)
}

// Remaining returns time left before the deadline; zero while idle or when
// the timeout is disabled.
func (s *Session) Remaining() time.Duration {
	if !s.started || s.deadline <= 0 {
		return 0
	}
	left := s.deadline - s.now().Sub(s.startedAt)
	if left < 0 {
		return 0
	}
	return left
}
