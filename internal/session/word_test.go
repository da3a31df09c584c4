package session

import "testing"

func TestNewWordStartsUntyped(t *testing.T) {
	w := newWord("cat")
	if w.OrigLen() != 3 || w.Len() != 3 {
		t.Fatalf("origLen/len = %d/%d, want 3/3", w.OrigLen(), w.Len())
	}
	for i, ch := range w.Chars() {
		if ch.State != Untyped {
			t.Fatalf("slot %d starts %v, want untyped", i, ch.State)
		}
	}
	if w.Target() != "cat" {
		t.Fatalf("target = %q", w.Target())
	}
}

func TestCharAtOutOfRange(t *testing.T) {
	w := newWord("go")
	if _, ok := w.charAt(2); ok {
		t.Fatalf("charAt past end reported ok")
	}
	if _, ok := w.charAt(-1); ok {
		t.Fatalf("charAt(-1) reported ok")
	}
}

func TestAppendExtraSaturates(t *testing.T) {
	w := newWord("go")
	for i := 0; i < MaxExtra; i++ {
		if !w.appendExtra('x') {
			t.Fatalf("append %d rejected below the bound", i)
		}
	}
	if w.appendExtra('x') {
		t.Fatalf("append accepted at the bound")
	}
	if w.Len() != 2+MaxExtra {
		t.Fatalf("len = %d, want %d", w.Len(), 2+MaxExtra)
	}
}

func TestRemoveLastOnlyDropsExtras(t *testing.T) {
	w := newWord("go")
	w.appendExtra('x')
	w.removeLast()
	if w.Len() != 2 {
		t.Fatalf("len = %d, want 2", w.Len())
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("removing an original character did not panic")
		}
	}()
	w.removeLast()
}

func TestSetStateOutOfRangePanics(t *testing.T) {
	w := newWord("go")
	defer func() {
		if recover() == nil {
			t.Fatalf("setState past the end did not panic")
		}
	}()
	w.setState(2, Correct)
}

func TestCharStateString(t *testing.T) {
	cases := map[CharState]string{
		Untyped:      "untyped",
		Correct:      "correct",
		Mistype:      "mistype",
		ExtraMistype: "extra-mistype",
		CharState(9): "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", state, got, want)
		}
	}
}
