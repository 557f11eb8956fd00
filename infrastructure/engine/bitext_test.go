package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritext/veritext/domain/analysis"
	"github.com/veritext/veritext/domain/rule"
)

func buildBitextRules(t *testing.T, ids ...string) []rule.BitextRule {
	t.Helper()
	reg := rule.NewFactoryRegistry()
	require.NoError(t, RegisterBuiltinBitextRules(reg))
	rules, err := reg.Build(ids, rule.NewFactoryConfig("en", "de"))
	require.NoError(t, err)
	return rules
}

func analyzePair(t *testing.T, source, target string) (analysis.Sentence, analysis.Sentence) {
	t.Helper()
	eng := New()
	src, err := eng.Analyze(context.Background(), source)
	require.NoError(t, err)
	trg, err := eng.Analyze(context.Background(), target)
	require.NoError(t, err)
	return src, trg
}

func TestSameTranslationRule(t *testing.T) {
	rl := buildBitextRules(t, SameTranslationRuleID)[0]

	src, trg := analyzePair(t, "Hello world", "Hello world")
	matches, err := rl.Match(src, trg)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, SameTranslationRuleID, matches[0].RuleID())
	assert.Equal(t, 0, matches[0].FromPos())
	assert.Equal(t, 11, matches[0].ToPos())

	src, trg = analyzePair(t, "Hello world", "Hallo Welt")
	matches, err = rl.Match(src, trg)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSameTranslationRuleIgnoresEmpty(t *testing.T) {
	rl := buildBitextRules(t, SameTranslationRuleID)[0]
	src, trg := analyzePair(t, "  ", "  ")
	matches, err := rl.Match(src, trg)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestLengthRatioRule(t *testing.T) {
	rl := buildBitextRules(t, LengthRatioRuleID)[0]

	src, trg := analyzePair(t, "Hi", strings.Repeat("lang ", 10))
	matches, err := rl.Match(src, trg)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, LengthRatioRuleID, matches[0].RuleID())

	src, trg = analyzePair(t, "Hello world", "Hallo Welt")
	matches, err = rl.Match(src, trg)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestBuiltinBitextRuleIDsBuild(t *testing.T) {
	rules := buildBitextRules(t, BuiltinBitextRuleIDs()...)
	assert.Len(t, rules, 2)
}
