package veritext

import (
	"log/slog"

	"github.com/veritext/veritext/domain/analysis"
	"github.com/veritext/veritext/domain/rule"
	"github.com/veritext/veritext/internal/config"
)

// clientConfig holds configuration for Client construction.
// Use newClientConfig() to create with defaults from internal/config.
type clientConfig struct {
	engine        analysis.Engine
	rules         []rule.Rule
	ruleFile      string
	bitextRuleIDs []string
	sourceLang    string
	targetLang    string
	selection     *rule.Selection
	dbPath        string
	logger        *slog.Logger
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		sourceLang: config.DefaultSourceLang,
		targetLang: config.DefaultTargetLang,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithEngine replaces the default sentence analysis engine.
func WithEngine(engine analysis.Engine) Option {
	return func(c *clientConfig) { c.engine = engine }
}

// WithRules registers pattern rules directly.
func WithRules(rules ...rule.Rule) Option {
	return func(c *clientConfig) { c.rules = append(c.rules, rules...) }
}

// WithRuleFile loads pattern rules from a YAML file.
func WithRuleFile(path string) Option {
	return func(c *clientConfig) { c.ruleFile = path }
}

// WithBitextRuleIDs selects which bitext rules to build, in match order.
// Without this option every built-in bitext rule is active.
func WithBitextRuleIDs(ids ...string) Option {
	return func(c *clientConfig) { c.bitextRuleIDs = ids }
}

// WithLanguages sets the bitext language pair.
func WithLanguages(source, target string) Option {
	return func(c *clientConfig) {
		c.sourceLang = source
		c.targetLang = target
	}
}

// WithSelection applies a rule selection on top of the default active set.
func WithSelection(sel rule.Selection) Option {
	return func(c *clientConfig) { c.selection = &sel }
}

// WithHistory enables the SQLite-backed check history at the given path.
// Use ":memory:" for an in-memory database.
func WithHistory(dbPath string) Option {
	return func(c *clientConfig) { c.dbPath = dbPath }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}
