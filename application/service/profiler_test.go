package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritext/veritext/domain/rule"
)

func TestMedianMillisEvenRunCount(t *testing.T) {
	sample := NewProfileSample("R", []float64{5, 1, 9, 3, 7, 2, 8, 4, 6, 10}, 0, 0)
	assert.Equal(t, 5.5, sample.MedianMillis())
}

func TestMedianMillisOddRunCount(t *testing.T) {
	sample := NewProfileSample("R", []float64{3, 1, 2}, 0, 0)
	assert.Equal(t, 2.0, sample.MedianMillis())
}

func TestMedianMillisEmpty(t *testing.T) {
	sample := NewProfileSample("R", nil, 0, 0)
	assert.Zero(t, sample.MedianMillis())
}

func TestMedianMillisDoesNotReorderRuns(t *testing.T) {
	runs := []float64{5, 1, 9}
	sample := NewProfileSample("R", runs, 0, 0)
	_ = sample.MedianMillis()
	assert.Equal(t, []float64{5, 1, 9}, sample.PerRunMillis())
}

func TestSentencesPerSecondZeroGuard(t *testing.T) {
	sample := NewProfileSample("R", []float64{0, 0, 0}, 0, 100)
	assert.Zero(t, sample.SentencesPerSecond())
}

func TestProfileTextAccumulatesMatchesAcrossRuns(t *testing.T) {
	registry, err := rule.NewRegistry(
		substringRule{id: "TYPO", needle: "Teh"},
		substringRule{id: "QUIET", needle: "zzz"},
	)
	require.NoError(t, err)
	profiler := NewProfiler(fakeEngine{}, registry, nil)

	samples, err := profiler.ProfileText(context.Background(), "Teh cat\nTeh dog")
	require.NoError(t, err)
	require.Len(t, samples, 2)

	typo := samples[0]
	assert.Equal(t, "TYPO", typo.RuleID())
	assert.Len(t, typo.PerRunMillis(), 10)
	assert.Equal(t, 2, typo.SentenceCount())
	// Two matches per pass, summed over ten passes.
	assert.Equal(t, 20, typo.MatchCount())

	quiet := samples[1]
	assert.Equal(t, "QUIET", quiet.RuleID())
	assert.Zero(t, quiet.MatchCount())
}

func TestProfileTextSkipsInactiveRules(t *testing.T) {
	registry, err := rule.NewRegistry(
		substringRule{id: "ON", needle: "a"},
		substringRule{id: "OFF", needle: "b"},
	)
	require.NoError(t, err)
	registry.Select(rule.NewSelection([]string{"OFF"}, nil, false))
	profiler := NewProfiler(fakeEngine{}, registry, nil)

	samples, err := profiler.ProfileText(context.Background(), "a b")
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "ON", samples[0].RuleID())
}

func TestCountLineMatches(t *testing.T) {
	registry, err := rule.NewRegistry()
	require.NoError(t, err)
	profiler := NewProfiler(fakeEngine{}, registry, nil)

	rl := substringRule{id: "TYPO", needle: "Teh"}
	count, err := profiler.CountLineMatches(context.Background(), "Teh cat\nTeh dog", rl)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
