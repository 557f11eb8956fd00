// Package match provides the rule-match data model, coordinate adjustment
// between sentence-local and document-global positions, and offset-safe
// application of suggested corrections.
package match

// RuleMatch is a single flagged span in checked text: a half-open rune
// offset range [FromPos, ToPos) into the text the match was computed
// against, line/column coordinates, the id of the rule that fired, a
// diagnostic message and an ordered list of suggested replacements (which
// may be empty). Immutable value object; coordinate adjustment returns
// copies.
type RuleMatch struct {
	ruleID      string
	fromPos     int
	toPos       int
	line        int
	endLine     int
	column      int
	message     string
	suggestions []string
	url         string
}

// NewRuleMatch creates a RuleMatch with span offsets and message.
// Line and column coordinates default to zero (sentence-local origin);
// use WithLines and WithColumn to set them.
func NewRuleMatch(ruleID string, fromPos, toPos int, message string, suggestions []string) RuleMatch {
	m := RuleMatch{
		ruleID:  ruleID,
		fromPos: fromPos,
		toPos:   toPos,
		message: message,
	}
	if len(suggestions) > 0 {
		m.suggestions = make([]string, len(suggestions))
		copy(m.suggestions, suggestions)
	}
	return m
}

// RuleID returns the id of the rule that produced the match.
func (m RuleMatch) RuleID() string { return m.ruleID }

// FromPos returns the inclusive start rune offset of the flagged span.
func (m RuleMatch) FromPos() int { return m.fromPos }

// ToPos returns the exclusive end rune offset of the flagged span.
func (m RuleMatch) ToPos() int { return m.toPos }

// Line returns the line of the span start.
func (m RuleMatch) Line() int { return m.line }

// EndLine returns the line of the span end.
func (m RuleMatch) EndLine() int { return m.endLine }

// Column returns the column of the span start.
func (m RuleMatch) Column() int { return m.column }

// Message returns the diagnostic message.
func (m RuleMatch) Message() string { return m.message }

// Suggestions returns the suggested replacements in preference order.
func (m RuleMatch) Suggestions() []string {
	if len(m.suggestions) == 0 {
		return nil
	}
	suggestions := make([]string, len(m.suggestions))
	copy(suggestions, m.suggestions)
	return suggestions
}

// HasSuggestions reports whether any replacement is suggested.
func (m RuleMatch) HasSuggestions() bool { return len(m.suggestions) > 0 }

// URL returns an optional link with more information about the rule.
func (m RuleMatch) URL() string { return m.url }

// WithLines returns a copy with start and end lines set.
func (m RuleMatch) WithLines(line, endLine int) RuleMatch {
	m.line = line
	m.endLine = endLine
	return m
}

// WithColumn returns a copy with the start column set.
func (m RuleMatch) WithColumn(column int) RuleMatch {
	m.column = column
	return m
}

// WithURL returns a copy with the info URL set.
func (m RuleMatch) WithURL(url string) RuleMatch {
	m.url = url
	return m
}
