package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/veritext/veritext/application/service"
	"github.com/veritext/veritext/domain/match"
)

// printMatches renders matches the way proofreaders expect them: numbered,
// with 1-based line and column, the message, the first suggestions and a
// context excerpt with the matched span marked.
func printMatches(w io.Writer, text string, matches []match.RuleMatch, contextSize int) {
	for i, m := range matches {
		fmt.Fprintf(w, "%d.) Line %d, column %d, Rule ID: %s\n", i+1, m.Line()+1, m.Column()+1, m.RuleID())
		fmt.Fprintf(w, "Message: %s\n", m.Message())
		if m.HasSuggestions() {
			fmt.Fprintf(w, "Suggestion: %s\n", strings.Join(m.Suggestions(), "; "))
		}
		excerpt, marker := matchContext(text, m.FromPos(), m.ToPos(), contextSize)
		fmt.Fprintln(w, excerpt)
		fmt.Fprintln(w, marker)
		if m.URL() != "" {
			fmt.Fprintf(w, "More info: %s\n", m.URL())
		}
		fmt.Fprintln(w)
	}
}

// printPairMatches renders the matches of one streamed aligned pair. The
// match positions refer to the whole target document, so the pair's own
// sentence is shown instead of a positional excerpt.
func printPairMatches(w io.Writer, pr service.PairResult) {
	matches := pr.Matches()
	if len(matches) == 0 {
		return
	}
	fmt.Fprintf(w, "Target: %s\n", pr.Pair().Target())
	for _, m := range matches {
		fmt.Fprintf(w, "  Line %d, column %d, Rule ID: %s\n", m.Line()+1, m.Column()+1, m.RuleID())
		fmt.Fprintf(w, "  Message: %s\n", m.Message())
		if m.HasSuggestions() {
			fmt.Fprintf(w, "  Suggestion: %s\n", strings.Join(m.Suggestions(), "; "))
		}
	}
	fmt.Fprintln(w)
}

// matchContext cuts a window of contextSize runes on each side of the match
// out of text and builds a second line marking the matched span with carets.
// Newlines and tabs in the excerpt are flattened to spaces so the marker
// line stays aligned.
func matchContext(text string, from, to, contextSize int) (string, string) {
	runes := []rune(text)
	if from < 0 {
		from = 0
	}
	if to > len(runes) {
		to = len(runes)
	}
	if to < from {
		to = from
	}

	start := from - contextSize
	if start < 0 {
		start = 0
	}
	end := to + contextSize
	if end > len(runes) {
		end = len(runes)
	}

	var excerpt strings.Builder
	var marker strings.Builder
	if start > 0 {
		excerpt.WriteString("...")
		marker.WriteString("   ")
	}
	for i := start; i < end; i++ {
		r := runes[i]
		if r == '\n' || r == '\t' {
			r = ' '
		}
		excerpt.WriteRune(r)
		if i >= from && i < to {
			marker.WriteByte('^')
		} else {
			marker.WriteByte(' ')
		}
	}
	if end < len(runes) {
		excerpt.WriteString("...")
	}
	return excerpt.String(), strings.TrimRight(marker.String(), " ")
}
