// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default configuration values.
const (
	DefaultHost          = "0.0.0.0"
	DefaultPort          = 8080
	DefaultLogLevel      = "INFO"
	DefaultMaxCandidates = 3
	DefaultMinSimilarity = 75
	DefaultMaxLength     = 1000
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	host          string
	port          int
	dataDir       string
	dbURL         string
	logLevel      string
	logFormat     LogFormat
	maxCandidates int
	minSimilarity int
	maxLength     int
}

// LoadConfig loads configuration from a .env file (when present) and the
// environment, applying defaults for anything unset.
func LoadConfig(envFile string) (AppConfig, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return AppConfig{}, fmt.Errorf("load env file: %w", err)
	}

	env, err := LoadEnv()
	if err != nil {
		return AppConfig{}, fmt.Errorf("read environment: %w", err)
	}

	cfg := AppConfig{
		host:          env.Host,
		port:          env.Port,
		dataDir:       env.DataDir,
		dbURL:         env.DBURL,
		logLevel:      env.LogLevel,
		logFormat:     LogFormat(env.LogFormat),
		maxCandidates: env.MaxCandidates,
		minSimilarity: env.MinSimilarity,
		maxLength:     env.MaxLength,
	}

	if cfg.dataDir == "" {
		cfg.dataDir = DefaultDataDir()
	}
	if cfg.dbURL == "" {
		cfg.dbURL = "sqlite:///" + filepath.Join(cfg.dataDir, "tm.db")
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks that tunables are inside their documented ranges.
func (c AppConfig) Validate() error {
	if c.minSimilarity <= 0 || c.minSimilarity > 100 {
		return fmt.Errorf("min similarity must be in (0, 100], got %d", c.minSimilarity)
	}
	if c.maxCandidates < 1 {
		return fmt.Errorf("max candidates must be at least 1, got %d", c.maxCandidates)
	}
	if c.maxLength < 1 {
		return fmt.Errorf("max length must be at least 1, got %d", c.maxLength)
	}
	return nil
}

// DefaultDataDir returns the default data directory (~/.tmkit, or .tmkit in
// the current directory when the home directory cannot be determined).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tmkit"
	}
	return filepath.Join(home, ".tmkit")
}

// EnsureDataDir creates the data directory if it does not exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port.
func (c AppConfig) Port() int { return c.port }

// Addr returns the host:port listen address.
func (c AppConfig) Addr() string { return fmt.Sprintf("%s:%d", c.host, c.port) }

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// MaxCandidates returns the cap on suggestion list size.
func (c AppConfig) MaxCandidates() int { return c.maxCandidates }

// MinSimilarity returns the 0–100 match quality threshold.
func (c AppConfig) MinSimilarity() int { return c.minSimilarity }

// MaxLength returns the hard cap on string length considered for scoring.
func (c AppConfig) MaxLength() int { return c.maxLength }

// WithHost returns a copy of the config with the host replaced.
func (c AppConfig) WithHost(host string) AppConfig {
	c.host = host
	return c
}

// WithPort returns a copy of the config with the port replaced.
func (c AppConfig) WithPort(port int) AppConfig {
	c.port = port
	return c
}

// WithDBURL returns a copy of the config with the database URL replaced.
func (c AppConfig) WithDBURL(url string) AppConfig {
	c.dbURL = url
	return c
}
