package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration. Variables carry the
// VERITEXT_ prefix (e.g. VERITEXT_RULE_FILE).
type EnvConfig struct {
	// Host is the server host to bind to.
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path. Default: ~/.veritext
	DataDir string `envconfig:"DATA_DIR"`

	// DBPath is the SQLite history database path.
	// Default: {data_dir}/veritext.db
	DBPath string `envconfig:"DB_PATH"`

	// RuleFile is the YAML pattern-rule file path.
	RuleFile string `envconfig:"RULE_FILE"`

	// SourceLang is the bitext source language code.
	SourceLang string `envconfig:"SOURCE_LANG" default:"en"`

	// TargetLang is the bitext target language code.
	TargetLang string `envconfig:"TARGET_LANG" default:"de"`

	// LogLevel is the log verbosity level: DEBUG, INFO, WARN, ERROR.
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// ContextSize is the context window size for plain-text match display.
	ContextSize int `envconfig:"CONTEXT_SIZE" default:"45"`
}

// LoadFromEnv loads configuration from VERITEXT_-prefixed environment
// variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("VERITEXT", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	var opts []AppConfigOption
	if e.Host != "" {
		opts = append(opts, WithHost(e.Host))
	}
	if e.Port != 0 {
		opts = append(opts, WithPort(e.Port))
	}
	if e.DataDir != "" {
		opts = append(opts, WithDataDir(e.DataDir))
	}
	if e.DBPath != "" {
		opts = append(opts, WithDBPath(e.DBPath))
	}
	if e.RuleFile != "" {
		opts = append(opts, WithRuleFile(e.RuleFile))
	}
	if e.SourceLang != "" {
		opts = append(opts, WithSourceLang(e.SourceLang))
	}
	if e.TargetLang != "" {
		opts = append(opts, WithTargetLang(e.TargetLang))
	}
	if e.LogLevel != "" {
		opts = append(opts, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		opts = append(opts, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.ContextSize > 0 {
		opts = append(opts, WithContextSize(e.ContextSize))
	}
	return cfg.Apply(opts...)
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
