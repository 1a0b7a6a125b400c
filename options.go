package tmkit

import (
	"log/slog"

	"github.com/tmkit/tmkit/application/service"
	"github.com/tmkit/tmkit/internal/database"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL    string
	params   service.Params
	logger   *slog.Logger
	registry *database.Registry
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		dbURL:  "sqlite:///:memory:",
		params: service.DefaultParams(),
		logger: slog.Default(),
	}
}

// Option configures a Client.
type Option func(*clientConfig)

// WithSQLite uses a SQLite database at the given file path.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = "sqlite:///" + path
	}
}

// WithDatabaseURL uses the given database URL (sqlite:/// or postgres://).
// On engines without FTS5 the lexical pre-filter is disabled and lookups
// fall back to full range scans.
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithRegistry shares an existing connection registry, so several clients
// pointed at the same backing file reuse one database handle. The caller
// keeps ownership: Close on the client will not close a shared registry.
func WithRegistry(registry *database.Registry) Option {
	return func(c *clientConfig) {
		c.registry = registry
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxCandidates caps the suggestion list size.
func WithMaxCandidates(n int) Option {
	return func(c *clientConfig) {
		c.params.MaxCandidates = n
	}
}

// WithMinSimilarity sets the 0-100 match quality threshold.
func WithMinSimilarity(n int) Option {
	return func(c *clientConfig) {
		c.params.MinSimilarity = n
	}
}

// WithMaxLength sets the hard cap on string length considered for scoring.
func WithMaxLength(n int) Option {
	return func(c *clientConfig) {
		c.params.MaxLength = n
	}
}
