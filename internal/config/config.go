// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Default configuration values.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8080
	DefaultLogLevel    = "INFO"
	DefaultContextSize = 45
	DefaultSourceLang  = "en"
	DefaultTargetLang  = "de"
	DefaultDBFile      = "veritext.db"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig holds the application configuration. Immutable value object;
// use options or Apply to derive modified copies.
type AppConfig struct {
	host        string
	port        int
	dataDir     string
	dbPath      string
	ruleFile    string
	sourceLang  string
	targetLang  string
	logLevel    string
	logFormat   LogFormat
	contextSize int
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".veritext"
	}
	return filepath.Join(home, ".veritext")
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		host:        DefaultHost,
		port:        DefaultPort,
		dataDir:     dataDir,
		dbPath:      filepath.Join(dataDir, DefaultDBFile),
		sourceLang:  DefaultSourceLang,
		targetLang:  DefaultTargetLang,
		logLevel:    DefaultLogLevel,
		logFormat:   LogFormatPretty,
		contextSize: DefaultContextSize,
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBPath returns the SQLite database path for the check history.
func (c AppConfig) DBPath() string { return c.dbPath }

// RuleFile returns the YAML pattern-rule file path.
func (c AppConfig) RuleFile() string { return c.ruleFile }

// SourceLang returns the bitext source language code.
func (c AppConfig) SourceLang() string { return c.sourceLang }

// TargetLang returns the bitext target language code.
func (c AppConfig) TargetLang() string { return c.targetLang }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// ContextSize returns the context window size for plain-text match display.
func (c AppConfig) ContextSize() int { return c.contextSize }

// EnsureDataDir creates the data directory if it doesn't exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDataDir sets the data directory and moves the default database path
// along with it.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		c.dataDir = dir
		if filepath.Base(c.dbPath) == DefaultDBFile {
			c.dbPath = filepath.Join(dir, DefaultDBFile)
		}
	}
}

// WithDBPath sets the history database path.
func WithDBPath(path string) AppConfigOption {
	return func(c *AppConfig) { c.dbPath = path }
}

// WithRuleFile sets the pattern-rule file path.
func WithRuleFile(path string) AppConfigOption {
	return func(c *AppConfig) { c.ruleFile = path }
}

// WithSourceLang sets the bitext source language code.
func WithSourceLang(lang string) AppConfigOption {
	return func(c *AppConfig) { c.sourceLang = lang }
}

// WithTargetLang sets the bitext target language code.
func WithTargetLang(lang string) AppConfigOption {
	return func(c *AppConfig) { c.targetLang = lang }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithContextSize sets the context window size.
func WithContextSize(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.contextSize = n
		}
	}
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("data_dir", c.dataDir),
		slog.String("db_path", c.dbPath),
		slog.String("rule_file", c.ruleFile),
		slog.String("source_lang", c.sourceLang),
		slog.String("target_lang", c.targetLang),
		slog.String("log_level", c.logLevel),
	}
}
