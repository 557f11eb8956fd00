package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritext/veritext/domain/analysis"
	"github.com/veritext/veritext/domain/match"
)

type stubRule struct {
	id  string
	off bool
}

func (r stubRule) ID() string          { return r.id }
func (r stubRule) Description() string { return "stub" }
func (r stubRule) DefaultOff() bool    { return r.off }
func (r stubRule) Match(analysis.Sentence) ([]match.RuleMatch, error) {
	return nil, nil
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(
		stubRule{id: "A"},
		stubRule{id: "B", off: true},
		stubRule{id: "C"},
	)
	require.NoError(t, err)
	return reg
}

func activeIDs(reg *Registry) []string {
	rules := reg.Active()
	ids := make([]string, len(rules))
	for i, rl := range rules {
		ids[i] = rl.ID()
	}
	return ids
}

func TestDefaultOffRulesStartInactive(t *testing.T) {
	reg := newTestRegistry(t)
	assert.Equal(t, []string{"A", "C"}, activeIDs(reg))
}

func TestSelectDisables(t *testing.T) {
	reg := newTestRegistry(t)
	reg.Select(NewSelection([]string{"A"}, nil, false))
	assert.Equal(t, []string{"C"}, activeIDs(reg))
}

func TestSelectEnablesDefaultOffRule(t *testing.T) {
	reg := newTestRegistry(t)
	reg.Select(NewSelection(nil, []string{"B"}, false))
	assert.Equal(t, []string{"A", "B", "C"}, activeIDs(reg))
}

func TestEnableWinsOverDisable(t *testing.T) {
	reg := newTestRegistry(t)
	reg.Select(NewSelection([]string{"B"}, []string{"B"}, false))
	assert.True(t, reg.IsActive("B"), "an id in both lists must end up enabled")
}

func TestExclusiveSelectionPrunesEverythingElse(t *testing.T) {
	reg := newTestRegistry(t)
	reg.Select(NewSelection(nil, []string{"B"}, true))
	assert.Equal(t, []string{"B"}, activeIDs(reg))
}

func TestExclusiveWithoutEnabledIDsKeepsActiveSet(t *testing.T) {
	reg := newTestRegistry(t)
	reg.Select(NewSelection(nil, nil, true))
	assert.Equal(t, []string{"A", "C"}, activeIDs(reg))
}

func TestResolveDoesNotMutatePreviousSet(t *testing.T) {
	active := map[string]struct{}{"A": {}, "C": {}}
	next := Resolve(active, []string{"A", "B", "C"}, NewSelection([]string{"A"}, nil, false))

	assert.Contains(t, active, "A", "previous set must be untouched")
	assert.NotContains(t, next, "A")
	assert.Contains(t, next, "C")
}

func TestUnmentionedRuleKeepsState(t *testing.T) {
	reg := newTestRegistry(t)
	reg.Select(NewSelection([]string{"A"}, []string{"B"}, false))
	assert.True(t, reg.IsActive("C"))
}
