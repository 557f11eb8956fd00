package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritext/veritext/domain/analysis"
	"github.com/veritext/veritext/domain/bitext"
	"github.com/veritext/veritext/domain/match"
	"github.com/veritext/veritext/domain/rule"
)

// fakeEngine treats every line as one sentence, newline attached, so the
// concatenation of the sentences equals the input.
type fakeEngine struct{}

func (fakeEngine) TokenizeSentences(_ context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			sentences = append(sentences, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences, nil
}

func (fakeEngine) Analyze(_ context.Context, sentence string) (analysis.Sentence, error) {
	return analysis.NewSentence(sentence, nil), nil
}

// substringRule flags the first occurrence of a fixed needle per sentence.
type substringRule struct {
	id          string
	needle      string
	suggestions []string
}

func (r substringRule) ID() string          { return r.id }
func (r substringRule) Description() string { return "flags " + r.needle }
func (r substringRule) DefaultOff() bool    { return false }

func (r substringRule) Match(s analysis.Sentence) ([]match.RuleMatch, error) {
	text := s.Text()
	idx := strings.Index(text, r.needle)
	if idx < 0 {
		return nil, nil
	}
	from := utf8.RuneCountInString(text[:idx])
	to := from + utf8.RuneCountInString(r.needle)
	prefix := text[:idx]
	line := strings.Count(prefix, "\n")
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	column := utf8.RuneCountInString(prefix[lineStart:])
	m := match.NewRuleMatch(r.id, from, to, "found "+r.needle, r.suggestions).
		WithLines(line, line).
		WithColumn(column)
	return []match.RuleMatch{m}, nil
}

type failingRule struct{}

func (failingRule) ID() string          { return "FAILING" }
func (failingRule) Description() string { return "always errors" }
func (failingRule) DefaultOff() bool    { return false }
func (failingRule) Match(analysis.Sentence) ([]match.RuleMatch, error) {
	return nil, errors.New("rule exploded")
}

// flagTargetRule is a bitext rule that flags every non-empty target.
type flagTargetRule struct {
	id string
}

func (r flagTargetRule) ID() string          { return r.id }
func (r flagTargetRule) Description() string { return "flags every target" }
func (r flagTargetRule) Match(_, target analysis.Sentence) ([]match.RuleMatch, error) {
	if target.Text() == "" {
		return nil, nil
	}
	n := utf8.RuneCountInString(target.Text())
	return []match.RuleMatch{match.NewRuleMatch(r.id, 0, n, "flagged", nil)}, nil
}

// fakeReader yields fixed pairs and advances its position by the target
// sentence plus a newline, like a line-oriented corpus reader.
type fakeReader struct {
	pairs []bitext.AlignedPair
	idx   int
	pos   bitext.Position
	next  bitext.Position
}

func (r *fakeReader) Scan() bool {
	if r.idx >= len(r.pairs) {
		return false
	}
	pair := r.pairs[r.idx]
	r.idx++
	r.pos = r.next
	r.next = r.next.Advance(pair.Target() + "\n")
	return true
}

func (r *fakeReader) Pair() bitext.AlignedPair  { return r.pairs[r.idx-1] }
func (r *fakeReader) Position() bitext.Position { return r.pos }
func (r *fakeReader) Err() error                { return nil }

func newTestChecker(t *testing.T, bitextRules []rule.BitextRule, rules ...rule.Rule) Checker {
	t.Helper()
	registry, err := rule.NewRegistry(rules...)
	require.NoError(t, err)
	return NewChecker(fakeEngine{}, registry, bitextRules, nil)
}

func TestCheckTextAdjustsAcrossSentences(t *testing.T) {
	checker := newTestChecker(t, nil, substringRule{id: "TYPO", needle: "Teh", suggestions: []string{"The"}})

	result, err := checker.CheckText(context.Background(), "Teh cat\nTeh dog", 0)
	require.NoError(t, err)

	matches := result.Matches()
	require.Len(t, matches, 2)
	assert.Equal(t, 2, result.SentenceCount())

	assert.Equal(t, 0, matches[0].FromPos())
	assert.Equal(t, 3, matches[0].ToPos())
	assert.Equal(t, 0, matches[0].Line())
	assert.Equal(t, 0, matches[0].Column())

	assert.Equal(t, 8, matches[1].FromPos())
	assert.Equal(t, 11, matches[1].ToPos())
	assert.Equal(t, 1, matches[1].Line())
	assert.Equal(t, 0, matches[1].Column())
}

func TestCheckTextLineOffsetShiftsLinesOnly(t *testing.T) {
	checker := newTestChecker(t, nil, substringRule{id: "TYPO", needle: "Teh"})

	result, err := checker.CheckText(context.Background(), "Teh cat\nTeh dog", 5)
	require.NoError(t, err)

	matches := result.Matches()
	require.Len(t, matches, 2)
	assert.Equal(t, 5, matches[0].Line())
	assert.Equal(t, 6, matches[1].Line())
	assert.Equal(t, 0, matches[0].FromPos(), "rune offsets must not shift")
	assert.Equal(t, 8, matches[1].FromPos())
}

func TestCheckTextEmpty(t *testing.T) {
	checker := newTestChecker(t, nil, substringRule{id: "TYPO", needle: "Teh"})

	result, err := checker.CheckText(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Zero(t, result.MatchCount())
	assert.Zero(t, result.SentenceCount())
}

func TestCheckTextRuleErrorAborts(t *testing.T) {
	checker := newTestChecker(t, nil, failingRule{})

	_, err := checker.CheckText(context.Background(), "anything", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FAILING")
}

func TestCheckPairMergeOrder(t *testing.T) {
	checker := newTestChecker(t,
		[]rule.BitextRule{flagTargetRule{id: "BI_ONE"}, flagTargetRule{id: "BI_TWO"}},
		substringRule{id: "MONO", needle: "dog"},
	)

	matches, err := checker.CheckPair(context.Background(), "le chien", "the dog")
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, "MONO", matches[0].RuleID())
	assert.Equal(t, "BI_ONE", matches[1].RuleID())
	assert.Equal(t, "BI_TWO", matches[2].RuleID())
}

func TestCheckStreamAdjustsPerPair(t *testing.T) {
	checker := newTestChecker(t, nil, substringRule{id: "TYPO", needle: "Teh"})
	reader := &fakeReader{pairs: []bitext.AlignedPair{
		bitext.NewAlignedPair("chat", "Teh cat"),
		bitext.NewAlignedPair("chien", "Teh dog"),
	}}

	var results []PairResult
	summary, err := checker.CheckStream(context.Background(), reader, func(pr PairResult) error {
		results = append(results, pr)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.PairCount())
	assert.Equal(t, 2, summary.MatchCount())
	require.Len(t, results, 2)

	first := results[0].Matches()
	require.Len(t, first, 1)
	assert.Equal(t, 0, first[0].FromPos())
	assert.Equal(t, 0, first[0].Line())

	second := results[1].Matches()
	require.Len(t, second, 1)
	assert.Equal(t, 8, second[0].FromPos())
	assert.Equal(t, 1, second[0].Line())
}

func TestCheckStreamCallbackErrorStops(t *testing.T) {
	checker := newTestChecker(t, nil, substringRule{id: "TYPO", needle: "Teh"})
	reader := &fakeReader{pairs: []bitext.AlignedPair{
		bitext.NewAlignedPair("a", "Teh one"),
		bitext.NewAlignedPair("b", "Teh two"),
	}}

	sentinel := errors.New("stop")
	calls := 0
	_, err := checker.CheckStream(context.Background(), reader, func(PairResult) error {
		calls++
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}
