package match

import "sort"

// Apply rewrites text by applying the first suggested replacement of every
// match. Matches without suggestions are skipped entirely; remaining
// suggestions beyond the first are discarded.
//
// The rewrite is offset-safe: before any edit, the exact substring at each
// match's span is recorded from the original text. Matches are then replayed
// in list order with a running offset tracking cumulative shrink or growth.
// A match is applied only if the text currently at its shifted span still
// equals the recorded original — a span already rewritten by an earlier,
// overlapping correction fails the comparison and is skipped silently.
//
// Precondition: matches must be in ascending, non-overlapping position
// order for the guard to behave sensibly. The result for out-of-order input
// depends on list order rather than document order and is unspecified; use
// SortByPosition to re-establish the precondition. An empty match list
// returns the text unchanged.
func Apply(text string, matches []RuleMatch) string {
	if len(matches) == 0 {
		return text
	}

	runes := []rune(text)

	// Record what each correctable span looks like before any edit.
	expected := make([][]rune, 0, len(matches))
	for _, m := range matches {
		if !m.HasSuggestions() {
			continue
		}
		expected = append(expected, runes[m.fromPos:m.toPos])
	}

	offset := 0
	counter := 0
	for _, m := range matches {
		if !m.HasSuggestions() {
			continue
		}
		from := m.fromPos - offset
		to := m.toPos - offset
		if runesEqual(runes[from:to], expected[counter]) {
			replacement := []rune(m.suggestions[0])
			updated := make([]rune, 0, len(runes)-(to-from)+len(replacement))
			updated = append(updated, runes[:from]...)
			updated = append(updated, replacement...)
			updated = append(updated, runes[to:]...)
			runes = updated
			offset += (m.toPos - m.fromPos) - len(replacement)
		}
		counter++
	}
	return string(runes)
}

// SortByPosition sorts matches by ascending start offset, then end offset.
// The sort is stable so matches with identical spans keep their list order.
func SortByPosition(matches []RuleMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].fromPos != matches[j].fromPos {
			return matches[i].fromPos < matches[j].fromPos
		}
		return matches[i].toPos < matches[j].toPos
	})
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
