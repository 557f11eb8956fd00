package match

import "github.com/veritext/veritext/domain/bitext"

// ShiftedLines returns a copy of the match with the given flat offset added
// to its start and end lines. Column and rune offsets are untouched; this is
// the single-document adjustment used when a caller checks a fragment that
// starts partway into a larger document.
func (m RuleMatch) ShiftedLines(lineOffset int) RuleMatch {
	m.line += lineOffset
	m.endLine += lineOffset
	return m
}

// AdjustedTo rewrites a sentence-local match to document-global coordinates
// using the reader's position snapshot for the sentence the match was found
// in. Rune offsets shift by the sentence offset and lines by the line count.
// The column shifts by the reader's column count only when the match starts
// on the first line of its sentence — column counters reset at every line
// boundary, so matches on later lines of a multi-line sentence keep their
// own local column.
func (m RuleMatch) AdjustedTo(pos bitext.Position) RuleMatch {
	if m.line == 0 {
		m.column += pos.ColumnCount()
	}
	m.fromPos += pos.SentenceOffset()
	m.toPos += pos.SentenceOffset()
	m.line += pos.LineCount()
	m.endLine += pos.LineCount()
	return m
}

// AdjustAll applies AdjustedTo to every match in the list, preserving order.
func AdjustAll(matches []RuleMatch, pos bitext.Position) []RuleMatch {
	if len(matches) == 0 {
		return nil
	}
	adjusted := make([]RuleMatch, len(matches))
	for i, m := range matches {
		adjusted[i] = m.AdjustedTo(pos)
	}
	return adjusted
}

// ShiftAllLines applies ShiftedLines to every match in the list.
func ShiftAllLines(matches []RuleMatch, lineOffset int) []RuleMatch {
	if len(matches) == 0 {
		return nil
	}
	shifted := make([]RuleMatch, len(matches))
	for i, m := range matches {
		shifted[i] = m.ShiftedLines(lineOffset)
	}
	return shifted
}
