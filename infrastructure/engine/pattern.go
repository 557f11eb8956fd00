package engine

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/veritext/veritext/domain/analysis"
	"github.com/veritext/veritext/domain/match"
	"github.com/veritext/veritext/domain/rule"
)

// PatternRule flags every occurrence of a regular expression in a sentence.
// Suggestions may reference capture groups with $1-style placeholders,
// expanded against the matched text.
type PatternRule struct {
	id          string
	re          *regexp.Regexp
	message     string
	description string
	suggestions []string
	url         string
	defaultOff  bool
}

// NewPatternRule compiles a PatternRule.
func NewPatternRule(id, pattern, message string) (PatternRule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return PatternRule{}, fmt.Errorf("rule %s: compile pattern: %w", id, err)
	}
	return PatternRule{id: id, re: re, message: message}, nil
}

// WithSuggestions returns a copy with suggested replacements set.
func (r PatternRule) WithSuggestions(suggestions ...string) PatternRule {
	r.suggestions = suggestions
	return r
}

// WithDescription returns a copy with the description set.
func (r PatternRule) WithDescription(description string) PatternRule {
	r.description = description
	return r
}

// WithURL returns a copy with the info URL set.
func (r PatternRule) WithURL(url string) PatternRule {
	r.url = url
	return r
}

// WithDefaultOff returns a copy that is inactive unless explicitly enabled.
func (r PatternRule) WithDefaultOff() PatternRule {
	r.defaultOff = true
	return r
}

// ID implements rule.Rule.
func (r PatternRule) ID() string { return r.id }

// Description implements rule.Rule.
func (r PatternRule) Description() string { return r.description }

// DefaultOff implements rule.Rule.
func (r PatternRule) DefaultOff() bool { return r.defaultOff }

// Match reports every pattern occurrence with sentence-local coordinates:
// rune offsets from the sentence start, line 0 and column 0 at the origin,
// columns resetting after every line break.
func (r PatternRule) Match(sentence analysis.Sentence) ([]match.RuleMatch, error) {
	text := sentence.Text()
	spans := r.re.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return nil, nil
	}

	matches := make([]match.RuleMatch, 0, len(spans))
	for _, span := range spans {
		fromByte, toByte := span[0], span[1]
		matched := text[fromByte:toByte]

		fromPos := utf8.RuneCountInString(text[:fromByte])
		toPos := fromPos + utf8.RuneCountInString(matched)

		prefix := text[:fromByte]
		line := strings.Count(prefix, "\n")
		lineStart := strings.LastIndexByte(prefix, '\n') + 1
		column := utf8.RuneCountInString(prefix[lineStart:])
		endLine := line + strings.Count(matched, "\n")

		m := match.NewRuleMatch(r.id, fromPos, toPos, r.message, r.expand(matched)).
			WithLines(line, endLine).
			WithColumn(column)
		if r.url != "" {
			m = m.WithURL(r.url)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// expand resolves $1-style capture references in the suggestions against
// the matched text. Plain suggestions pass through untouched.
func (r PatternRule) expand(matched string) []string {
	if len(r.suggestions) == 0 {
		return nil
	}
	expanded := make([]string, len(r.suggestions))
	for i, s := range r.suggestions {
		if strings.ContainsRune(s, '$') {
			expanded[i] = r.re.ReplaceAllString(matched, s)
		} else {
			expanded[i] = s
		}
	}
	return expanded
}

var _ rule.Rule = PatternRule{}
