// Package tmkit provides an embeddable translation memory: a durable store
// of source/target string pairs with ranked fuzzy-match retrieval.
//
// Basic usage:
//
//	client, err := tmkit.New(tmkit.WithSQLite(".tmkit/tm.db"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	_ = client.Memory.AddUnit(ctx, tm.NewRecord("Hello world", "Bonjour monde", ""), "en", "fr")
//
//	matches, err := client.Memory.SuggestBetween(ctx, "Hello world", "en", "fr")
//	for _, match := range matches {
//	    fmt.Println(match.Target(), match.Quality())
//	}
//
// Lookups narrow candidates through a SQLite FTS5 index when the driver is
// built with the sqlite_fts5 tag (go build -tags sqlite_fts5); otherwise
// they transparently fall back to range scans.
package tmkit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmkit/tmkit/application/service"
	"github.com/tmkit/tmkit/infrastructure/persistence"
	"github.com/tmkit/tmkit/internal/database"
)

// Client is the main entry point for the tmkit library. Access the memory
// via the Memory field:
//
//	client.Memory.Suggest(ctx, "Hello world", []string{"en"}, []string{"fr"})
type Client struct {
	// Memory is the translation memory service.
	Memory *service.Memory

	registry    *database.Registry
	ownRegistry bool
	logger      *slog.Logger
}

// New creates a Client. With no options it opens an in-memory SQLite
// database with default ranking tunables.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	registry := cfg.registry
	ownRegistry := false
	if registry == nil {
		registry = database.NewRegistry()
		ownRegistry = true
	}

	ctx := context.Background()
	db, err := registry.Open(ctx, cfg.dbURL)
	if err != nil {
		return nil, fmt.Errorf("open translation memory database: %w", err)
	}

	store, err := persistence.NewTranslationStore(db, cfg.logger)
	if err != nil {
		if ownRegistry {
			_ = registry.Close()
		}
		return nil, err
	}

	memory := service.NewMemory(store, cfg.params, cfg.logger)

	// Touching the join once at construction warms the page cache so the
	// first real lookup does not pay for it.
	if count, err := memory.Stats(ctx); err == nil {
		cfg.logger.Debug("translation memory opened", "records", count)
	}

	return &Client{
		Memory:      memory,
		registry:    registry,
		ownRegistry: ownRegistry,
		logger:      cfg.logger,
	}, nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Registry returns the connection registry the client uses. Clients built
// with WithRegistry share it; the caller owns its lifecycle.
func (c *Client) Registry() *database.Registry {
	return c.registry
}

// Close releases the client's database handles. When the registry was
// supplied by the caller it is left untouched.
func (c *Client) Close() error {
	if c.ownRegistry {
		return c.registry.Close()
	}
	return nil
}
