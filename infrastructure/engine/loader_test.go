package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritext/veritext/domain/rule"
)

const validRuleYAML = `
rules:
  - id: TYPO_TEH
    pattern: '\bTeh\b'
    message: Possible typo
    description: Common transposition of "The"
    suggestions: [The]
    url: https://example.com/rules/TYPO_TEH
  - id: PASSIVE
    pattern: '\bwas \w+ed\b'
    message: Passive voice
    default_off: true
`

func TestParseRules(t *testing.T) {
	rules, err := ParseRules(strings.NewReader(validRuleYAML))
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "TYPO_TEH", rules[0].ID())
	assert.Equal(t, `Common transposition of "The"`, rules[0].Description())
	assert.False(t, rules[0].DefaultOff())

	assert.Equal(t, "PASSIVE", rules[1].ID())
	assert.True(t, rules[1].DefaultOff())
}

func TestParseRulesRejectsIncompleteRule(t *testing.T) {
	_, err := ParseRules(strings.NewReader("rules:\n  - id: ONLY_ID\n"))
	assert.ErrorIs(t, err, rule.ErrResourceLoad)
}

func TestParseRulesRejectsEmptyFile(t *testing.T) {
	_, err := ParseRules(strings.NewReader("rules: []\n"))
	assert.ErrorIs(t, err, rule.ErrResourceLoad)
}

func TestParseRulesRejectsMalformedYAML(t *testing.T) {
	_, err := ParseRules(strings.NewReader("rules: [unbalanced"))
	assert.ErrorIs(t, err, rule.ErrResourceLoad)
}

func TestParseRulesRejectsBadPattern(t *testing.T) {
	_, err := ParseRules(strings.NewReader("rules:\n  - id: BAD\n    pattern: '('\n    message: m\n"))
	assert.ErrorIs(t, err, rule.ErrResourceLoad)
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules("does/not/exist.yaml")
	assert.ErrorIs(t, err, rule.ErrResourceLoad)
}
