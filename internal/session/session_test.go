package session

import (
	"testing"
	"time"
)

func typeString(s *Session, text string) {
	for _, r := range text {
		s.TypeRune(r)
	}
}

func stateAt(t *testing.T, s *Session, wordIdx, i int) CharState {
	t.Helper()
	word := s.Words()[wordIdx]
	ch, ok := word.charAt(i)
	if !ok {
		t.Fatalf("word %d has no slot %d (len %d)", wordIdx, i, word.Len())
	}
	return ch.State
}

func TestExactTypingMarksAllCorrect(t *testing.T) {
	for _, target := range []string{"a", "cat", "dictionary", "if"} {
		s := New([]string{target}, 0)
		typeString(s, target)
		word := s.Words()[0]
		if word.Offset() != word.OrigLen() {
			t.Fatalf("%q: offset = %d, want %d", target, word.Offset(), word.OrigLen())
		}
		for i, ch := range word.Chars() {
			if ch.State != Correct {
				t.Fatalf("%q: slot %d = %v, want correct", target, i, ch.State)
			}
		}
	}
}

func TestMismatchMarksOnlyThatSlot(t *testing.T) {
	s := New([]string{"loop"}, 0)
	typeString(s, "l")
	s.TypeRune('x')
	word := s.Words()[0]
	want := []CharState{Correct, Mistype, Untyped, Untyped}
	for i, state := range want {
		if got := stateAt(t, s, 0, i); got != state {
			t.Fatalf("slot %d = %v, want %v", i, got, state)
		}
	}
	if word.Len() != word.OrigLen() {
		t.Fatalf("length changed on mistype: %d", word.Len())
	}
	// Mistyped slots keep the expected value, never the typed one.
	ch, _ := word.charAt(1)
	if ch.Value != 'o' {
		t.Fatalf("slot 1 value = %q, want 'o'", ch.Value)
	}
}

func TestOvertypingAppendsExtrasUpToBound(t *testing.T) {
	s := New([]string{"go"}, 0)
	typeString(s, "go")
	typeString(s, "xyz")
	word := s.Words()[0]
	if word.Len() != word.OrigLen()+3 {
		t.Fatalf("len = %d, want %d", word.Len(), word.OrigLen()+3)
	}
	for i := word.OrigLen(); i < word.Len(); i++ {
		if got := stateAt(t, s, 0, i); got != ExtraMistype {
			t.Fatalf("extra slot %d = %v, want extra-mistype", i, got)
		}
	}
	if word.Offset() != word.Len() {
		t.Fatalf("offset = %d, want %d", word.Offset(), word.Len())
	}
}

func TestOvertypingSaturatesAtMaxExtra(t *testing.T) {
	s := New([]string{"go"}, 0)
	typeString(s, "go")
	for i := 0; i < MaxExtra+4; i++ {
		s.TypeRune('z')
	}
	word := s.Words()[0]
	if word.Len() != word.OrigLen()+MaxExtra {
		t.Fatalf("len = %d, want cap %d", word.Len(), word.OrigLen()+MaxExtra)
	}
	if word.Offset() != word.OrigLen()+MaxExtra {
		t.Fatalf("offset moved past cap: %d", word.Offset())
	}
}

func TestBackspaceRemovesExtraSlot(t *testing.T) {
	s := New([]string{"go"}, 0)
	typeString(s, "gox")
	word := s.Words()[0]
	if word.Len() != 3 {
		t.Fatalf("len = %d, want 3", word.Len())
	}
	s.Backspace()
	if word.Len() != 2 {
		t.Fatalf("len after backspace = %d, want 2", word.Len())
	}
	if word.Offset() != 2 {
		t.Fatalf("offset after backspace = %d, want 2", word.Offset())
	}
}

func TestBackspaceRevertsOriginalSlotToUntyped(t *testing.T) {
	s := New([]string{"dog"}, 0)
	typeString(s, "dx")
	s.Backspace()
	word := s.Words()[0]
	if got := stateAt(t, s, 0, 1); got != Untyped {
		t.Fatalf("slot 1 = %v, want untyped", got)
	}
	if word.Len() != 3 {
		t.Fatalf("backspace within the word changed length: %d", word.Len())
	}
	if word.Offset() != 1 {
		t.Fatalf("offset = %d, want 1", word.Offset())
	}
}

func TestBackspaceAtSessionStartIsNoop(t *testing.T) {
	s := New([]string{"cat", "dog"}, 0)
	s.Backspace()
	wordIdx, offset := s.Position()
	if wordIdx != 0 || offset != 0 {
		t.Fatalf("position = (%d,%d), want (0,0)", wordIdx, offset)
	}
	if s.Words()[0].Len() != 3 {
		t.Fatalf("no-op backspace changed word length")
	}
}

func TestBackspaceAcrossWordsPreservesStoredOffset(t *testing.T) {
	s := New([]string{"cat", "dog"}, 0)
	typeString(s, "ca")
	s.NextWord()
	typeString(s, "d")
	s.Backspace() // undo 'd'
	s.Backspace() // step back into "cat"
	wordIdx, offset := s.Position()
	if wordIdx != 0 {
		t.Fatalf("wordIdx = %d, want 0", wordIdx)
	}
	if offset != 2 {
		t.Fatalf("offset = %d, want stored 2", offset)
	}
	// The re-entered word was not recomputed or reset.
	if got := stateAt(t, s, 0, 0); got != Correct {
		t.Fatalf("slot 0 = %v, want correct", got)
	}
	if got := stateAt(t, s, 0, 2); got != Untyped {
		t.Fatalf("slot 2 = %v, want untyped", got)
	}
}

func TestSpaceAdvancesUnconditionally(t *testing.T) {
	s := New([]string{"cat", "dog"}, 0)
	typeString(s, "c")
	s.NextWord()
	wordIdx, offset := s.Position()
	if wordIdx != 1 || offset != 0 {
		t.Fatalf("position = (%d,%d), want (1,0)", wordIdx, offset)
	}
	// Abandoned characters keep their state; nothing is marked retroactively.
	want := []CharState{Correct, Untyped, Untyped}
	for i, state := range want {
		if got := stateAt(t, s, 0, i); got != state {
			t.Fatalf("abandoned slot %d = %v, want %v", i, got, state)
		}
	}
}

func TestCompletionIndependentOfAccuracy(t *testing.T) {
	s := New([]string{"cat", "dog"}, 0)
	if s.Completed() {
		t.Fatalf("fresh session already completed")
	}
	s.NextWord()
	if s.Completed() {
		t.Fatalf("completed after one of two words")
	}
	s.NextWord()
	if !s.Completed() {
		t.Fatalf("not completed after skipping every word")
	}
	if !s.Done() {
		t.Fatalf("completed session not done")
	}
}

// The worked example: words cat/dog, type "cat", space, "dx", then three
// backspaces land on word 0 with its stored offset intact.
func TestCatDogWalkthrough(t *testing.T) {
	s := New([]string{"cat", "dog"}, 0)

	typeString(s, "cat")
	for i := 0; i < 3; i++ {
		if got := stateAt(t, s, 0, i); got != Correct {
			t.Fatalf("word 0 slot %d = %v, want correct", i, got)
		}
	}
	if _, offset := s.Position(); offset != 3 {
		t.Fatalf("word 0 offset = %d, want 3", offset)
	}

	s.NextWord()
	wordIdx, offset := s.Position()
	if wordIdx != 1 || offset != 0 {
		t.Fatalf("after space: position = (%d,%d), want (1,0)", wordIdx, offset)
	}

	typeString(s, "dx")
	if got := stateAt(t, s, 1, 0); got != Correct {
		t.Fatalf("word 1 slot 0 = %v, want correct", got)
	}
	if got := stateAt(t, s, 1, 1); got != Mistype {
		t.Fatalf("word 1 slot 1 = %v, want mistype", got)
	}

	s.Backspace()
	if got := stateAt(t, s, 1, 1); got != Untyped {
		t.Fatalf("word 1 slot 1 after backspace = %v, want untyped", got)
	}
	if _, offset := s.Position(); offset != 1 {
		t.Fatalf("word 1 offset = %d, want 1", offset)
	}

	s.Backspace()
	s.Backspace()
	wordIdx, offset = s.Position()
	if wordIdx != 0 {
		t.Fatalf("wordIdx = %d, want 0", wordIdx)
	}
	if offset != 3 {
		t.Fatalf("word 0 offset = %d, want unchanged 3", offset)
	}
}

func TestIdleToActiveOnFirstKeystroke(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	now := base
	s := New([]string{"cat"}, 20*time.Second)
	s.now = func() time.Time { return now }

	if s.Started() {
		t.Fatalf("session active before any keystroke")
	}
	if s.TimedOut() {
		t.Fatalf("idle session timed out")
	}

	s.TypeRune('c')
	if !s.Started() {
		t.Fatalf("session still idle after keystroke")
	}
	if got := s.StartedAt(); !got.Equal(base) {
		t.Fatalf("startedAt = %v, want %v", got, base)
	}

	// The marker is set exactly once.
	now = now.Add(5 * time.Second)
	s.TypeRune('a')
	if got := s.StartedAt(); !got.Equal(base) {
		t.Fatalf("startedAt moved on second keystroke: %v", got)
	}
}

func TestSpaceAlsoActivatesSession(t *testing.T) {
	s := New([]string{"cat", "dog"}, 20*time.Second)
	s.NextWord()
	if !s.Started() {
		t.Fatalf("space did not activate the session")
	}
}

func TestTimeoutForcesCompletion(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	now := base
	s := New([]string{"cat", "dog"}, 20*time.Second)
	s.now = func() time.Time { return now }

	s.TypeRune('c')
	now = base.Add(19 * time.Second)
	if s.TimedOut() {
		t.Fatalf("timed out before the deadline")
	}
	now = base.Add(21 * time.Second)
	if !s.TimedOut() {
		t.Fatalf("not timed out past the deadline")
	}
	if !s.Done() {
		t.Fatalf("timed-out session not done")
	}
	// Redundant checks are pure and harmless.
	for i := 0; i < 10; i++ {
		if !s.TimedOut() {
			t.Fatalf("redundant check %d flipped the result", i)
		}
	}
}

func TestZeroDeadlineDisablesTimeout(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	now := base
	s := New([]string{"cat"}, 0)
	s.now = func() time.Time { return now }
	s.TypeRune('c')
	now = base.Add(time.Hour)
	if s.TimedOut() {
		t.Fatalf("disabled timeout still fired")
	}
}

func TestElapsedAndRemaining(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	now := base
	s := New([]string{"cat"}, 20*time.Second)
	s.now = func() time.Time { return now }

	if s.Elapsed() != 0 || s.Remaining() != 0 {
		t.Fatalf("idle session reports elapsed %v remaining %v", s.Elapsed(), s.Remaining())
	}
	s.TypeRune('c')
	now = base.Add(12 * time.Second)
	if got := s.Elapsed(); got != 12*time.Second {
		t.Fatalf("elapsed = %v, want 12s", got)
	}
	if got := s.Remaining(); got != 8*time.Second {
		t.Fatalf("remaining = %v, want 8s", got)
	}
	now = base.Add(time.Minute)
	if got := s.Remaining(); got != 0 {
		t.Fatalf("remaining past deadline = %v, want 0", got)
	}
}

func TestBackspaceIntoSaturatedWord(t *testing.T) {
	s := New([]string{"go", "on"}, 0)
	typeString(s, "go")
	for i := 0; i < MaxExtra; i++ {
		s.TypeRune('z')
	}
	s.NextWord()
	s.Backspace()
	wordIdx, offset := s.Position()
	if wordIdx != 0 {
		t.Fatalf("wordIdx = %d, want 0", wordIdx)
	}
	if offset != 2+MaxExtra {
		t.Fatalf("offset = %d, want %d", offset, 2+MaxExtra)
	}
	// Undoing an extra reopens one slot of headroom.
	s.Backspace()
	s.TypeRune('q')
	word := s.Words()[0]
	if word.Len() != 2+MaxExtra {
		t.Fatalf("len = %d, want %d", word.Len(), 2+MaxExtra)
	}
	ch, _ := word.charAt(word.Len() - 1)
	if ch.Value != 'q' || ch.State != ExtraMistype {
		t.Fatalf("last slot = %q/%v, want q/extra-mistype", ch.Value, ch.State)
	}
}
