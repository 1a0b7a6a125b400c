package main

import (
	"log/slog"

	"github.com/tmkit/tmkit"
	"github.com/tmkit/tmkit/internal/config"
)

// newClient builds a tmkit client from the resolved configuration.
func newClient(cfg config.AppConfig, logger *slog.Logger) (*tmkit.Client, error) {
	return tmkit.New(
		tmkit.WithDatabaseURL(cfg.DBURL()),
		tmkit.WithLogger(logger),
		tmkit.WithMaxCandidates(cfg.MaxCandidates()),
		tmkit.WithMinSimilarity(cfg.MinSimilarity()),
		tmkit.WithMaxLength(cfg.MaxLength()),
	)
}
