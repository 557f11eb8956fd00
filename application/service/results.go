package service

import (
	"time"

	"github.com/veritext/veritext/domain/bitext"
	"github.com/veritext/veritext/domain/match"
)

// CheckResult is the outcome of checking one text: the matches in engine
// order, the number of sentences checked and the wall-clock duration.
type CheckResult struct {
	matches       []match.RuleMatch
	sentenceCount int
	elapsed       time.Duration
}

// NewCheckResult creates a CheckResult.
func NewCheckResult(matches []match.RuleMatch, sentenceCount int, elapsed time.Duration) CheckResult {
	r := CheckResult{sentenceCount: sentenceCount, elapsed: elapsed}
	if len(matches) > 0 {
		r.matches = make([]match.RuleMatch, len(matches))
		copy(r.matches, matches)
	}
	return r
}

// Matches returns the matches in the order the engine produced them.
// Callers that need positional order must sort explicitly.
func (r CheckResult) Matches() []match.RuleMatch {
	if len(r.matches) == 0 {
		return nil
	}
	matches := make([]match.RuleMatch, len(r.matches))
	copy(matches, r.matches)
	return matches
}

// MatchCount returns the number of matches.
func (r CheckResult) MatchCount() int { return len(r.matches) }

// SentenceCount returns the number of sentences checked.
func (r CheckResult) SentenceCount() int { return r.sentenceCount }

// Elapsed returns the wall-clock duration of the check.
func (r CheckResult) Elapsed() time.Duration { return r.elapsed }

// SentencesPerSecond returns the check throughput, or zero when the run was
// too fast to time.
func (r CheckResult) SentencesPerSecond() float64 {
	secs := r.elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.sentenceCount) / secs
}

// PairResult is the outcome of checking one aligned pair in streaming mode:
// the pair itself, its matches rewritten to document-global coordinates and
// the position snapshot used for the rewrite.
type PairResult struct {
	pair     bitext.AlignedPair
	matches  []match.RuleMatch
	position bitext.Position
}

// NewPairResult creates a PairResult.
func NewPairResult(pair bitext.AlignedPair, matches []match.RuleMatch, position bitext.Position) PairResult {
	r := PairResult{pair: pair, position: position}
	if len(matches) > 0 {
		r.matches = make([]match.RuleMatch, len(matches))
		copy(r.matches, matches)
	}
	return r
}

// Pair returns the aligned pair.
func (r PairResult) Pair() bitext.AlignedPair { return r.pair }

// Matches returns the document-adjusted matches for the pair.
func (r PairResult) Matches() []match.RuleMatch {
	if len(r.matches) == 0 {
		return nil
	}
	matches := make([]match.RuleMatch, len(r.matches))
	copy(matches, r.matches)
	return matches
}

// Position returns the reader snapshot the matches were adjusted with.
func (r PairResult) Position() bitext.Position { return r.position }

// StreamResult summarizes a whole streaming check: pairs read, total
// matches and wall-clock duration.
type StreamResult struct {
	pairCount  int
	matchCount int
	elapsed    time.Duration
}

// NewStreamResult creates a StreamResult.
func NewStreamResult(pairCount, matchCount int, elapsed time.Duration) StreamResult {
	return StreamResult{pairCount: pairCount, matchCount: matchCount, elapsed: elapsed}
}

// PairCount returns the number of aligned pairs read.
func (r StreamResult) PairCount() int { return r.pairCount }

// MatchCount returns the total number of matches across all pairs.
func (r StreamResult) MatchCount() int { return r.matchCount }

// Elapsed returns the wall-clock duration of the streaming check.
func (r StreamResult) Elapsed() time.Duration { return r.elapsed }
