// Package veritext provides a library for rule-based text checking,
// automatic correction and bilingual (bitext) translation checking.
//
// Basic usage:
//
//	client, err := veritext.New(
//	    veritext.WithRuleFile("rules.yaml"),
//	    veritext.WithLanguages("en", "de"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	result, err := client.Checks.CheckText(ctx, text, 0)
//	for _, m := range result.Matches() {
//	    fmt.Println(m.RuleID(), m.Message())
//	}
//
//	corrected, err := client.Corrections.CorrectText(ctx, text)
package veritext

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/veritext/veritext/application/service"
	"github.com/veritext/veritext/domain/analysis"
	"github.com/veritext/veritext/domain/rule"
	"github.com/veritext/veritext/infrastructure/engine"
	"github.com/veritext/veritext/infrastructure/persistence"
)

// Client is the main entry point for the veritext library.
//
// Access operations via struct fields:
//
//	client.Checks.CheckText(ctx, text, 0)
//	client.Corrections.CorrectText(ctx, text)
//	client.Profiles.ProfileText(ctx, text)
type Client struct {
	// Public service fields (direct access)
	Checks      service.Checker
	Corrections service.Corrector
	Profiles    service.Profiler
	History     *service.History

	registry *rule.Registry
	engine   analysis.Engine
	db       *gorm.DB
	logger   *slog.Logger
}

// New creates a Client from the given options. At least one pattern rule
// or bitext rule must be configured.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	eng := cfg.engine
	if eng == nil {
		eng = engine.Engine{}
	}

	rules := cfg.rules
	if cfg.ruleFile != "" {
		loaded, err := engine.LoadRules(cfg.ruleFile)
		if err != nil {
			return nil, err
		}
		rules = append(rules, loaded...)
	}

	factories := rule.NewFactoryRegistry()
	if err := engine.RegisterBuiltinBitextRules(factories); err != nil {
		return nil, err
	}
	bitextIDs := cfg.bitextRuleIDs
	if bitextIDs == nil {
		bitextIDs = engine.BuiltinBitextRuleIDs()
	}
	bitextRules, err := factories.Build(bitextIDs, rule.NewFactoryConfig(cfg.sourceLang, cfg.targetLang))
	if err != nil {
		return nil, err
	}

	if len(rules) == 0 && len(bitextRules) == 0 {
		return nil, ErrNoRules
	}

	registry, err := rule.NewRegistry(rules...)
	if err != nil {
		return nil, err
	}
	if cfg.selection != nil {
		registry.Select(*cfg.selection)
	}

	client := &Client{
		registry: registry,
		engine:   eng,
		logger:   logger,
	}
	client.Checks = service.NewChecker(eng, registry, bitextRules, logger)
	client.Corrections = service.NewCorrector(client.Checks)
	client.Profiles = service.NewProfiler(eng, registry, logger)

	if cfg.dbPath != "" {
		db, err := persistence.Open(cfg.dbPath)
		if err != nil {
			return nil, err
		}
		client.db = db
		history := service.NewHistory(persistence.NewHistoryStore(db))
		client.History = &history
	}

	return client, nil
}

// Registry returns the rule registry, for inspecting or reselecting the
// active rule set.
func (c *Client) Registry() *rule.Registry {
	return c.registry
}

// Close releases the client's resources.
func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	return persistence.Close(c.db)
}
