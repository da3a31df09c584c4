// Package session implements the typing-session state machine: per-word
// character classification, the cursor over the word list, and the
// idle/active deadline.
package session

// CharState classifies one slot of a word after user input.
type CharState int

// Character states. Untyped only applies to characters within the original
// word that the cursor has not reached yet.
const (
	Untyped CharState = iota
	Correct
	Mistype
	ExtraMistype
)

// String returns the state name for logs and test failures.
func (s CharState) String() string {
	switch s {
	case Untyped:
		return "untyped"
	case Correct:
		return "correct"
	case Mistype:
		return "mistype"
	case ExtraMistype:
		return "extra-mistype"
	default:
		return "unknown"
	}
}

// TypedChar is a single input-classified character. Value holds the expected
// rune for slots within the original word, or the rune the user produced for
// slots beyond it.
type TypedChar struct {
	Value rune
	State CharState
}
