package engine

import (
	"fmt"
	"strings"

	"github.com/veritext/veritext/domain/analysis"
	"github.com/veritext/veritext/domain/match"
	"github.com/veritext/veritext/domain/rule"
)

// Built-in bitext rule ids.
const (
	SameTranslationRuleID = "SAME_TRANSLATION"
	LengthRatioRuleID     = "TRANSLATION_LENGTH"
)

// lengthRatioBound is the factor by which a translation may be longer or
// shorter than its source before TRANSLATION_LENGTH flags it.
const lengthRatioBound = 3.0

// RegisterBuiltinBitextRules registers the built-in bitext rule factories.
func RegisterBuiltinBitextRules(reg *rule.FactoryRegistry) error {
	if err := reg.Register(SameTranslationRuleID, newSameTranslationRule); err != nil {
		return err
	}
	return reg.Register(LengthRatioRuleID, newLengthRatioRule)
}

// BuiltinBitextRuleIDs returns the built-in bitext rule ids in match order.
func BuiltinBitextRuleIDs() []string {
	return []string{SameTranslationRuleID, LengthRatioRuleID}
}

// sameTranslationRule flags target sentences that are identical to their
// source — usually an untranslated segment.
type sameTranslationRule struct {
	cfg rule.FactoryConfig
}

func newSameTranslationRule(cfg rule.FactoryConfig) (rule.BitextRule, error) {
	return sameTranslationRule{cfg: cfg}, nil
}

func (r sameTranslationRule) ID() string { return SameTranslationRuleID }

func (r sameTranslationRule) Description() string {
	return "Target sentence is identical to the source sentence"
}

func (r sameTranslationRule) Match(source, target analysis.Sentence) ([]match.RuleMatch, error) {
	src := strings.TrimSpace(source.Text())
	trg := strings.TrimSpace(target.Text())
	if src == "" || src != trg {
		return nil, nil
	}
	message := fmt.Sprintf("Translation is identical to the %s source text", r.cfg.SourceLang())
	return []match.RuleMatch{wholeTargetMatch(r.ID(), target.Text(), message)}, nil
}

// lengthRatioRule flags target sentences whose length differs from the
// source by more than a fixed factor.
type lengthRatioRule struct {
	cfg rule.FactoryConfig
}

func newLengthRatioRule(cfg rule.FactoryConfig) (rule.BitextRule, error) {
	return lengthRatioRule{cfg: cfg}, nil
}

func (r lengthRatioRule) ID() string { return LengthRatioRuleID }

func (r lengthRatioRule) Description() string {
	return "Target sentence length is out of proportion to the source"
}

func (r lengthRatioRule) Match(source, target analysis.Sentence) ([]match.RuleMatch, error) {
	srcLen := len([]rune(strings.TrimSpace(source.Text())))
	trgLen := len([]rune(strings.TrimSpace(target.Text())))
	if srcLen == 0 || trgLen == 0 {
		return nil, nil
	}
	ratio := float64(trgLen) / float64(srcLen)
	if ratio <= lengthRatioBound && ratio >= 1/lengthRatioBound {
		return nil, nil
	}
	message := fmt.Sprintf("Translation length looks wrong for %s text (ratio %.1f)", r.cfg.SourceLang(), ratio)
	return []match.RuleMatch{wholeTargetMatch(r.ID(), target.Text(), message)}, nil
}

// wholeTargetMatch builds a sentence-local match spanning the entire target.
func wholeTargetMatch(ruleID, target, message string) match.RuleMatch {
	return match.NewRuleMatch(ruleID, 0, len([]rune(target)), message, nil).
		WithLines(0, strings.Count(target, "\n")).
		WithColumn(0)
}
