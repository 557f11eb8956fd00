package engine

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/veritext/veritext/domain/rule"
)

// ruleFile is the YAML layout of a pattern-rule file.
type ruleFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	ID          string   `yaml:"id"`
	Pattern     string   `yaml:"pattern"`
	Message     string   `yaml:"message"`
	Description string   `yaml:"description"`
	Suggestions []string `yaml:"suggestions"`
	URL         string   `yaml:"url"`
	DefaultOff  bool     `yaml:"default_off"`
}

// LoadRules reads pattern rules from a YAML file. Any failure — unreadable
// file, malformed YAML, invalid rule — is fatal to the whole load and wraps
// rule.ErrResourceLoad.
func LoadRules(path string) ([]rule.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", rule.ErrResourceLoad, path, err)
	}
	defer f.Close()

	rules, err := ParseRules(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rules, nil
}

// ParseRules reads pattern rules from YAML.
func ParseRules(r io.Reader) ([]rule.Rule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rule.ErrResourceLoad, err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", rule.ErrResourceLoad, err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("%w: no rules defined", rule.ErrResourceLoad)
	}

	rules := make([]rule.Rule, 0, len(file.Rules))
	for _, spec := range file.Rules {
		if spec.ID == "" || spec.Pattern == "" || spec.Message == "" {
			return nil, fmt.Errorf("%w: rule needs id, pattern and message", rule.ErrResourceLoad)
		}
		pr, err := NewPatternRule(spec.ID, spec.Pattern, spec.Message)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", rule.ErrResourceLoad, err)
		}
		if len(spec.Suggestions) > 0 {
			pr = pr.WithSuggestions(spec.Suggestions...)
		}
		if spec.Description != "" {
			pr = pr.WithDescription(spec.Description)
		}
		if spec.URL != "" {
			pr = pr.WithURL(spec.URL)
		}
		if spec.DefaultOff {
			pr = pr.WithDefaultOff()
		}
		rules = append(rules, pr)
	}
	return rules, nil
}
