package veritext_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritext/veritext"
	"github.com/veritext/veritext/domain/rule"
	"github.com/veritext/veritext/infrastructure/engine"
)

func typoRule(t *testing.T) engine.PatternRule {
	t.Helper()
	rl, err := engine.NewPatternRule("TYPO_TEH", `\bTeh\b`, "Possible typo")
	require.NoError(t, err)
	return rl.WithSuggestions("The")
}

func TestClientCheckAndCorrect(t *testing.T) {
	client, err := veritext.New(veritext.WithRules(typoRule(t)))
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	result, err := client.Checks.CheckText(ctx, "Teh cat sat.", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.MatchCount())

	corrected, err := client.Corrections.CorrectText(ctx, "Teh cat sat.")
	require.NoError(t, err)
	assert.Equal(t, "The cat sat.", corrected)
}

func TestClientBitextDefaults(t *testing.T) {
	client, err := veritext.New(veritext.WithRules(typoRule(t)))
	require.NoError(t, err)
	defer client.Close()

	matches, err := client.Checks.CheckPair(context.Background(), "Hello world", "Hello world")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, engine.SameTranslationRuleID, matches[0].RuleID())
}

func TestClientUnknownBitextRule(t *testing.T) {
	_, err := veritext.New(
		veritext.WithRules(typoRule(t)),
		veritext.WithBitextRuleIDs("NO_SUCH_RULE"),
	)
	assert.ErrorIs(t, err, rule.ErrUnknownRule)
}

func TestClientNoRules(t *testing.T) {
	_, err := veritext.New(veritext.WithBitextRuleIDs())
	assert.ErrorIs(t, err, veritext.ErrNoRules)
}

func TestClientSelection(t *testing.T) {
	client, err := veritext.New(
		veritext.WithRules(typoRule(t)),
		veritext.WithSelection(rule.NewSelection([]string{"TYPO_TEH"}, nil, false)),
	)
	require.NoError(t, err)
	defer client.Close()

	result, err := client.Checks.CheckText(context.Background(), "Teh cat sat.", 0)
	require.NoError(t, err)
	assert.Zero(t, result.MatchCount(), "disabled rule must not fire")
}

func TestClientHistory(t *testing.T) {
	client, err := veritext.New(
		veritext.WithRules(typoRule(t)),
		veritext.WithHistory(":memory:"),
	)
	require.NoError(t, err)
	defer client.Close()
	require.NotNil(t, client.History)

	ctx := context.Background()
	result, err := client.Checks.CheckText(ctx, "Teh cat sat.", 0)
	require.NoError(t, err)

	_, err = client.History.Record(ctx, "check", result.MatchCount(), result.SentenceCount(), result.Elapsed())
	require.NoError(t, err)

	records, err := client.History.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].MatchCount())
}
