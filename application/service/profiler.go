package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/veritext/veritext/domain/analysis"
	"github.com/veritext/veritext/domain/rule"
)

// profileRuns is the number of timed passes per rule. The median over the
// runs smooths out scheduler noise on the first and last passes.
const profileRuns = 10

// ProfileSample is the timing result for one rule: the per-run durations,
// the match count accumulated across every run (a cumulative counter, not
// the count of a single pass) and the corpus size.
type ProfileSample struct {
	ruleID        string
	perRunMillis  []float64
	matchCount    int
	sentenceCount int
}

// NewProfileSample creates a ProfileSample.
func NewProfileSample(ruleID string, perRunMillis []float64, matchCount, sentenceCount int) ProfileSample {
	s := ProfileSample{
		ruleID:        ruleID,
		matchCount:    matchCount,
		sentenceCount: sentenceCount,
	}
	if len(perRunMillis) > 0 {
		s.perRunMillis = make([]float64, len(perRunMillis))
		copy(s.perRunMillis, perRunMillis)
	}
	return s
}

// RuleID returns the profiled rule's id.
func (s ProfileSample) RuleID() string { return s.ruleID }

// PerRunMillis returns the wall-clock milliseconds of each run.
func (s ProfileSample) PerRunMillis() []float64 {
	millis := make([]float64, len(s.perRunMillis))
	copy(millis, s.perRunMillis)
	return millis
}

// MatchCount returns the number of matches summed across all runs.
func (s ProfileSample) MatchCount() int { return s.matchCount }

// SentenceCount returns the number of sentences in the profiled corpus.
func (s ProfileSample) SentenceCount() int { return s.sentenceCount }

// MedianMillis returns the median run duration. With an even number of
// runs it averages the two middle values after sorting.
func (s ProfileSample) MedianMillis() float64 {
	n := len(s.perRunMillis)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, s.perRunMillis)
	sort.Float64s(sorted)
	middle := n / 2
	if n%2 == 1 {
		return sorted[middle]
	}
	return (sorted[middle-1] + sorted[middle]) / 2
}

// SentencesPerSecond returns the rule's throughput at its median run time,
// or zero when the corpus was too small to time.
func (s ProfileSample) SentencesPerSecond() float64 {
	median := s.MedianMillis()
	if median <= 0 {
		return 0
	}
	return float64(s.sentenceCount) / (median / 1000)
}

// Profiler times each active rule over a sentence corpus. It only reads
// match results; rule state is never mutated.
type Profiler struct {
	engine   analysis.Engine
	registry *rule.Registry
	logger   *slog.Logger
}

// NewProfiler creates a Profiler.
func NewProfiler(engine analysis.Engine, registry *rule.Registry, logger *slog.Logger) Profiler {
	if logger == nil {
		logger = slog.Default()
	}
	return Profiler{engine: engine, registry: registry, logger: logger}
}

// ProfileText runs every active rule over the text's sentences ten times,
// timing each pass. Sentences are re-analyzed inside the timed loop, so a
// sample measures the full analyze-and-match cost. Match counts accumulate
// across all ten runs. Samples are returned in registry order.
func (p Profiler) ProfileText(ctx context.Context, text string) ([]ProfileSample, error) {
	sentences, err := p.engine.TokenizeSentences(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("tokenize text: %w", err)
	}

	rules := p.registry.Active()
	p.logger.Info("profiling rules", "rules", len(rules), "sentences", len(sentences))

	samples := make([]ProfileSample, 0, len(rules))
	for _, rl := range rules {
		matchCount := 0
		millis := make([]float64, profileRuns)
		for k := 0; k < profileRuns; k++ {
			start := time.Now()
			for _, sentence := range sentences {
				analyzed, err := p.engine.Analyze(ctx, sentence)
				if err != nil {
					return nil, fmt.Errorf("analyze sentence: %w", err)
				}
				matches, err := rl.Match(analyzed)
				if err != nil {
					return nil, fmt.Errorf("rule %s: %w", rl.ID(), err)
				}
				matchCount += len(matches)
			}
			millis[k] = float64(time.Since(start).Microseconds()) / 1000
		}
		samples = append(samples, NewProfileSample(rl.ID(), millis, matchCount, len(sentences)))
	}
	return samples, nil
}

// CountLineMatches counts the matches a single rule produces over one line
// or sentence set, without timing anything.
func (p Profiler) CountLineMatches(ctx context.Context, line string, rl rule.Rule) (int, error) {
	sentences, err := p.engine.TokenizeSentences(ctx, line)
	if err != nil {
		return 0, fmt.Errorf("tokenize line: %w", err)
	}
	count := 0
	for _, sentence := range sentences {
		analyzed, err := p.engine.Analyze(ctx, sentence)
		if err != nil {
			return 0, fmt.Errorf("analyze sentence: %w", err)
		}
		matches, err := rl.Match(analyzed)
		if err != nil {
			return 0, fmt.Errorf("rule %s: %w", rl.ID(), err)
		}
		count += len(matches)
	}
	return count, nil
}
