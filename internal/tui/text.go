// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"toqst/internal/session"
)

type styledCell struct {
	s     string
	width int
}

// styledWord is one rendered word plus the separator that follows it on the
// same line. The separator of the last word is empty.
type styledWord struct {
	cells    []styledCell
	width    int
	sep      string
	sepWidth int
}

func styleFor(state session.CharState, current bool) lipgloss.Style {
	switch state {
	case session.Correct:
		return correctStyle
	case session.Mistype, session.ExtraMistype:
		return incorrectStyle
	default:
		if current {
			return currentWordStyle
		}
		return pendingStyle
	}
}

// buildStyledWords renders every word of the session into styled cells,
// underlining the cursor position. A cursor sitting past the last slot of a
// word underlines the separator space that follows it.
func buildStyledWords(s *session.Session) []styledWord {
	words := s.Words()
	wordIdx, offset := s.Position()
	active := !s.Completed()

	out := make([]styledWord, 0, len(words))
	for wi, word := range words {
		current := active && wi == wordIdx
		sw := styledWord{cells: make([]styledCell, 0, word.Len())}
		for i, ch := range word.Chars() {
			style := styleFor(ch.State, current)
			if current && i == offset {
				style = style.Underline(true)
			}
			w := runewidth.RuneWidth(ch.Value)
			sw.cells = append(sw.cells, styledCell{s: style.Render(string(ch.Value)), width: w})
			sw.width += w
		}
		if wi < len(words)-1 {
			sepStyle := pendingStyle
			if current && offset >= word.Len() {
				sepStyle = sepStyle.Underline(true)
			}
			sw.sep = sepStyle.Render(" ")
			sw.sepWidth = 1
		}
		out = append(out, sw)
	}
	return out
}

func renderCells(cells []styledCell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.s)
	}
	return b.String()
}

// wrapWords lays words out greedily within the display width, breaking lines
// at word boundaries. Separators at a break are dropped. A word wider than
// the whole line gets a line of its own.
func wrapWords(words []styledWord, width int) string {
	var b strings.Builder
	if width <= 0 {
		for i, w := range words {
			b.WriteString(renderCells(w.cells))
			if i < len(words)-1 {
				b.WriteString(w.sep)
			}
		}
		return b.String()
	}

	var lines []string
	lineWidth := 0
	sep := ""
	sepWidth := 0
	for _, w := range words {
		if lineWidth > 0 {
			if lineWidth+sepWidth+w.width > width {
				lines = append(lines, b.String())
				b.Reset()
				lineWidth = 0
			} else {
				b.WriteString(sep)
				lineWidth += sepWidth
			}
		}
		b.WriteString(renderCells(w.cells))
		lineWidth += w.width
		sep = w.sep
		sepWidth = w.sepWidth
	}
	lines = append(lines, b.String())
	return strings.Join(lines, "\n")
}
