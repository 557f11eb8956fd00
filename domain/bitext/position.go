package bitext

import "strings"

// Position is the running location of a corpus reader within its document:
// the rune offset of the current sentence, the column and line counters at
// the sentence start, and the text of the current line for context display.
//
// A reader owns its Position and must snapshot it synchronously with
// yielding a pair; consumers only read it. Counters are monotonically
// non-decreasing across successive reads within one document.
type Position struct {
	sentenceOffset int
	columnCount    int
	lineCount      int
	currentLine    string
}

// NewPosition creates a Position with explicit counters.
func NewPosition(sentenceOffset, columnCount, lineCount int) Position {
	return Position{
		sentenceOffset: sentenceOffset,
		columnCount:    columnCount,
		lineCount:      lineCount,
	}
}

// SentenceOffset returns the rune offset of the current sentence within the
// document.
func (p Position) SentenceOffset() int { return p.sentenceOffset }

// ColumnCount returns the column counter at the start of the current
// sentence. Columns reset at every line boundary.
func (p Position) ColumnCount() int { return p.columnCount }

// LineCount returns the number of line breaks consumed before the current
// sentence.
func (p Position) LineCount() int { return p.lineCount }

// CurrentLine returns the text of the line the reader is currently on.
func (p Position) CurrentLine() string { return p.currentLine }

// WithCurrentLine returns a copy with the current line text set.
func (p Position) WithCurrentLine(line string) Position {
	p.currentLine = line
	return p
}

// Advance returns the successor Position after consuming the given text.
// Every rune advances the column counter; a newline advances the line
// counter and resets the column to zero.
func (p Position) Advance(text string) Position {
	next := p
	for _, r := range text {
		next.sentenceOffset++
		if r == '\n' {
			next.lineCount++
			next.columnCount = 0
		} else {
			next.columnCount++
		}
	}
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		next.currentLine = text[i+1:]
	} else {
		next.currentLine = p.currentLine + text
	}
	return next
}
