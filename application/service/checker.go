// Package service provides the checking, correction and profiling services
// over the domain model. Services return structured results; rendering and
// serialization are presentation concerns layered on top.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/veritext/veritext/domain/analysis"
	"github.com/veritext/veritext/domain/bitext"
	"github.com/veritext/veritext/domain/match"
	"github.com/veritext/veritext/domain/rule"
)

// Checker runs the active rules over texts and aligned pairs and
// reconciles the per-sentence matches into document-global match lists.
// All operations are synchronous and run to completion.
type Checker struct {
	engine      analysis.Engine
	registry    *rule.Registry
	bitextRules []rule.BitextRule
	logger      *slog.Logger
}

// NewChecker creates a Checker. bitextRules may be nil for monolingual-only
// checking; their list order is the order bilingual matches are appended in.
func NewChecker(engine analysis.Engine, registry *rule.Registry, bitextRules []rule.BitextRule, logger *slog.Logger) Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return Checker{
		engine:      engine,
		registry:    registry,
		bitextRules: bitextRules,
		logger:      logger,
	}
}

// Registry returns the rule registry the checker runs against.
func (c Checker) Registry() *rule.Registry { return c.registry }

// BitextRules returns the bilingual rules in match order.
func (c Checker) BitextRules() []rule.BitextRule {
	rules := make([]rule.BitextRule, len(c.bitextRules))
	copy(rules, c.bitextRules)
	return rules
}

// CheckText checks a whole document. Sentences are analyzed one at a time;
// each sentence's matches are rewritten from sentence-local to
// document-global coordinates before the position tracker advances past the
// sentence. The caller-supplied line offset is then added to every match's
// start and end lines (and nothing else), for fragments that begin partway
// into a larger document. Empty text is valid and yields an empty result.
func (c Checker) CheckText(ctx context.Context, text string, lineOffset int) (CheckResult, error) {
	start := time.Now()

	sentences, err := c.engine.TokenizeSentences(ctx, text)
	if err != nil {
		return CheckResult{}, fmt.Errorf("tokenize text: %w", err)
	}

	var all []match.RuleMatch
	pos := bitext.NewPosition(0, 0, 0)
	for _, sentence := range sentences {
		matches, err := c.checkSentence(ctx, sentence)
		if err != nil {
			return CheckResult{}, err
		}
		all = append(all, match.AdjustAll(matches, pos)...)
		pos = pos.Advance(sentence)
	}
	if lineOffset != 0 {
		all = match.ShiftAllLines(all, lineOffset)
	}

	elapsed := time.Since(start)
	c.logger.Debug("checked text",
		"sentences", len(sentences),
		"matches", len(all),
		"duration_ms", elapsed.Milliseconds(),
	)
	return NewCheckResult(all, len(sentences), elapsed), nil
}

// CheckPair checks one aligned pair and merges the two match sources: every
// monolingual match on the target sentence in the engine's native order,
// followed by the bilingual-rule matches in rule-list order. No
// deduplication and no positional sort — callers that need positional order
// must sort explicitly. Coordinates in the returned matches are local to
// the target sentence.
func (c Checker) CheckPair(ctx context.Context, source, target string) ([]match.RuleMatch, error) {
	sourceAnalyzed, err := c.engine.Analyze(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("analyze source sentence: %w", err)
	}
	targetAnalyzed, err := c.engine.Analyze(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("analyze target sentence: %w", err)
	}

	var merged []match.RuleMatch
	for _, rl := range c.registry.Active() {
		matches, err := rl.Match(targetAnalyzed)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rl.ID(), err)
		}
		merged = append(merged, matches...)
	}
	for _, br := range c.bitextRules {
		matches, err := br.Match(sourceAnalyzed, targetAnalyzed)
		if err != nil {
			return nil, fmt.Errorf("bitext rule %s: %w", br.ID(), err)
		}
		merged = append(merged, matches...)
	}
	return merged, nil
}

// CheckStream checks aligned pairs from a reader one at a time, in
// lock-step with the reader: each pair's matches are rewritten to
// document-global coordinates using the reader's snapshot for that pair and
// handed to fn before the next pair is read. Nothing beyond the current
// pair and its matches is buffered. A non-nil error from fn stops the
// stream.
func (c Checker) CheckStream(ctx context.Context, reader bitext.Reader, fn func(PairResult) error) (StreamResult, error) {
	start := time.Now()

	pairs, total := 0, 0
	for reader.Scan() {
		pair := reader.Pair()
		matches, err := c.CheckPair(ctx, pair.Source(), pair.Target())
		if err != nil {
			return StreamResult{}, err
		}
		adjusted := match.AdjustAll(matches, reader.Position())
		if fn != nil {
			if err := fn(NewPairResult(pair, adjusted, reader.Position())); err != nil {
				return StreamResult{}, err
			}
		}
		pairs++
		total += len(adjusted)
	}
	if err := reader.Err(); err != nil {
		return StreamResult{}, fmt.Errorf("read bitext corpus: %w", err)
	}

	elapsed := time.Since(start)
	c.logger.Debug("checked bitext stream",
		"pairs", pairs,
		"matches", total,
		"duration_ms", elapsed.Milliseconds(),
	)
	return NewStreamResult(pairs, total, elapsed), nil
}

func (c Checker) checkSentence(ctx context.Context, sentence string) ([]match.RuleMatch, error) {
	analyzed, err := c.engine.Analyze(ctx, sentence)
	if err != nil {
		return nil, fmt.Errorf("analyze sentence: %w", err)
	}
	var matches []match.RuleMatch
	for _, rl := range c.registry.Active() {
		found, err := rl.Match(analyzed)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rl.ID(), err)
		}
		matches = append(matches, found...)
	}
	return matches, nil
}
