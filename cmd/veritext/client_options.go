package main

import (
	"github.com/spf13/cobra"

	"github.com/veritext/veritext"
	"github.com/veritext/veritext/domain/rule"
	"github.com/veritext/veritext/internal/config"
	"github.com/veritext/veritext/internal/log"
)

// clientFlags holds the flags shared by every command that builds a client.
type clientFlags struct {
	envFile     string
	ruleFile    string
	disabled    []string
	enabled     []string
	enabledOnly bool
	sourceLang  string
	targetLang  string
}

func (f *clientFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVarP(&f.ruleFile, "rules", "r", "", "Pattern rule file (YAML)")
	cmd.Flags().StringSliceVarP(&f.disabled, "disable", "d", nil, "Rule ids to deactivate")
	cmd.Flags().StringSliceVarP(&f.enabled, "enable", "e", nil, "Rule ids to activate")
	cmd.Flags().BoolVar(&f.enabledOnly, "enabled-only", false, "Deactivate every rule not named by --enable")
	cmd.Flags().StringVar(&f.sourceLang, "source-lang", "", "Bitext source language code")
	cmd.Flags().StringVar(&f.targetLang, "target-lang", "", "Bitext target language code")
}

// loadClientConfig loads the app config and applies flag overrides.
func (f *clientFlags) loadClientConfig() (config.AppConfig, error) {
	cfg, err := loadConfig(f.envFile)
	if err != nil {
		return config.AppConfig{}, err
	}

	var opts []config.AppConfigOption
	if f.ruleFile != "" {
		opts = append(opts, config.WithRuleFile(f.ruleFile))
	}
	if f.sourceLang != "" {
		opts = append(opts, config.WithSourceLang(f.sourceLang))
	}
	if f.targetLang != "" {
		opts = append(opts, config.WithTargetLang(f.targetLang))
	}
	return cfg.Apply(opts...), nil
}

// buildClient creates a veritext client from the loaded config and the
// selection flags, plus any extra options.
func (f *clientFlags) buildClient(cfg config.AppConfig, extra ...veritext.Option) (*veritext.Client, error) {
	logger := log.NewLogger(cfg)

	opts := []veritext.Option{
		veritext.WithLanguages(cfg.SourceLang(), cfg.TargetLang()),
		veritext.WithLogger(logger.Slog()),
	}
	if cfg.RuleFile() != "" {
		opts = append(opts, veritext.WithRuleFile(cfg.RuleFile()))
	}
	if len(f.disabled) > 0 || len(f.enabled) > 0 || f.enabledOnly {
		opts = append(opts, veritext.WithSelection(rule.NewSelection(f.disabled, f.enabled, f.enabledOnly)))
	}
	opts = append(opts, extra...)

	return veritext.New(opts...)
}
