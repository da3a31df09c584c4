package session

import "fmt"

// MaxExtra bounds user-introduced characters per word. Once a word carries
// this many extras, further character input for it is dropped.
const MaxExtra = 5

// Word is one target word as an ordered buffer of typed-character slots.
// The first origLen slots map 1:1 to the target text and only ever change
// state; slots beyond origLen are user-introduced extras. Each word keeps
// its own offset, so leaving and re-entering a word preserves its progress.
type Word struct {
	chars   []TypedChar
	origLen int
	offset  int
}

func newWord(text string) *Word {
	runes := []rune(text)
	chars := make([]TypedChar, len(runes))
	for i, r := range runes {
		chars[i] = TypedChar{Value: r, State: Untyped}
	}
	return &Word{chars: chars, origLen: len(runes)}
}

// charAt reports the slot at i, or ok=false when i is past the end and the
// cursor must append instead of mutate.
func (w *Word) charAt(i int) (TypedChar, bool) {
	if i < 0 || i >= len(w.chars) {
		return TypedChar{}, false
	}
	return w.chars[i], true
}

func (w *Word) setState(i int, state CharState) {
	if i < 0 || i >= len(w.chars) {
		panic(fmt.Sprintf("session: setState index %d out of range (len %d)", i, len(w.chars)))
	}
	w.chars[i].State = state
}

// appendExtra records a character typed beyond the original word. It reports
// whether the slot was added; at the MaxExtra bound the keystroke is silently
// discarded (saturation, not an error).
func (w *Word) appendExtra(r rune) bool {
	if len(w.chars)-w.origLen >= MaxExtra {
		return false
	}
	w.chars = append(w.chars, TypedChar{Value: r, State: ExtraMistype})
	return true
}

// removeLast discards the final slot. Only extras may be removed; original
// characters are re-marked Untyped instead.
func (w *Word) removeLast() {
	if len(w.chars) <= w.origLen {
		panic(fmt.Sprintf("session: removeLast would drop an original character (len %d, origLen %d)", len(w.chars), w.origLen))
	}
	w.chars = w.chars[:len(w.chars)-1]
}

// Chars returns the ordered slots for rendering. Callers must not modify it.
func (w *Word) Chars() []TypedChar {
	return w.chars
}

// Len returns the current slot count, including extras.
func (w *Word) Len() int {
	return len(w.chars)
}

// OrigLen returns the target text length, fixed at creation.
func (w *Word) OrigLen() int {
	return w.origLen
}

// Offset returns how far the cursor has progressed within this word.
func (w *Word) Offset() int {
	return w.offset
}

// Target reconstructs the target text from the original slots.
func (w *Word) Target() string {
	runes := make([]rune, w.origLen)
	for i := 0; i < w.origLen; i++ {
		runes[i] = w.chars[i].Value
	}
	return string(runes)
}
