// Package service provides the application services of the translation
// memory: insertion and ranked fuzzy-match retrieval.
package service

import (
	"context"
	"log/slog"
	"sort"
	"unicode/utf8"

	"github.com/tmkit/tmkit/domain/search"
	"github.com/tmkit/tmkit/domain/tm"
	"github.com/tmkit/tmkit/infrastructure/persistence"
	"github.com/tmkit/tmkit/internal/config"
)

// Params are the tunables of the ranking engine.
type Params struct {
	// MaxCandidates caps the number of suggestions a lookup returns.
	MaxCandidates int
	// MinSimilarity is the 0-100 quality threshold; lower-scoring
	// candidates are discarded.
	MinSimilarity int
	// MaxLength is the hard cap on string length considered for scoring
	// and candidate bounds.
	MaxLength int
}

// DefaultParams returns the default ranking tunables.
func DefaultParams() Params {
	return Params{
		MaxCandidates: config.DefaultMaxCandidates,
		MinSimilarity: config.DefaultMinSimilarity,
		MaxLength:     config.DefaultMaxLength,
	}
}

// Memory is the query/ranking engine over a TranslationStore: it derives
// candidate bounds from the similarity threshold, retrieves candidates
// (lexically narrowed when possible), scores them, and returns a ranked,
// capped suggestion list.
type Memory struct {
	store    *persistence.TranslationStore
	comparer search.Comparer
	params   Params
	logger   *slog.Logger
}

// NewMemory creates a Memory.
func NewMemory(store *persistence.TranslationStore, params Params, logger *slog.Logger) *Memory {
	if logger == nil {
		logger = slog.Default()
	}
	if params.MaxCandidates < 1 {
		params.MaxCandidates = config.DefaultMaxCandidates
	}
	if params.MinSimilarity <= 0 || params.MinSimilarity > 100 {
		params.MinSimilarity = config.DefaultMinSimilarity
	}
	if params.MaxLength < 1 {
		params.MaxLength = config.DefaultMaxLength
	}
	return &Memory{
		store:    store,
		comparer: search.NewComparer(),
		params:   params,
		logger:   logger,
	}
}

// Params returns the engine tunables.
func (m *Memory) Params() Params { return m.params }

// Store returns the underlying translation store.
func (m *Memory) Store() *persistence.TranslationStore { return m.store }

// Suggest returns ranked fuzzy-match suggestions for sourceText against
// sources in any of sourceLangs translated into any of targetLangs. Results
// are ordered by non-increasing quality (retrieval order preserved on ties)
// and capped at MaxCandidates; no result scores below MinSimilarity.
//
// Empty language sets fail fast with a LanguageError before any query runs.
func (m *Memory) Suggest(ctx context.Context, sourceText string, sourceLangs, targetLangs []string) ([]tm.Match, error) {
	sourceLangs = tm.NormalizeCodes(sourceLangs)
	targetLangs = tm.NormalizeCodes(targetLangs)
	if len(sourceLangs) == 0 {
		return nil, tm.NewLanguageError("source")
	}
	if len(targetLangs) == 0 {
		return nil, tm.NewLanguageError("target")
	}

	length := utf8.RuneCountInString(sourceText)
	minLength := search.MinCandidateLength(length, m.params.MinSimilarity)
	maxLength := search.MaxCandidateLength(length, m.params.MinSimilarity, m.params.MaxLength)

	words := search.SignificantWords(sourceText)
	var terms []string
	if m.store.FulltextEnabled() && search.UseFulltext(words) {
		terms = words
	}

	candidates, err := m.store.QueryCandidates(ctx, sourceLangs, targetLangs, minLength, maxLength, terms)
	if err != nil {
		return nil, err
	}

	matches := make([]tm.Match, 0, len(candidates))
	for _, c := range candidates {
		quality := m.comparer.Similarity(sourceText, c.SourceText, m.params.MinSimilarity)
		if quality >= m.params.MinSimilarity {
			matches = append(matches, tm.NewMatch(c.SourceText, c.TargetText, c.Context, quality))
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Quality() > matches[j].Quality()
	})
	if len(matches) > m.params.MaxCandidates {
		matches = matches[:m.params.MaxCandidates]
	}

	m.logger.Debug("suggestions ranked",
		"query_length", length,
		"fulltext", terms != nil,
		"candidates", len(candidates),
		"matches", len(matches),
	)
	return matches, nil
}

// SuggestBetween is Suggest for a single source and target language.
func (m *Memory) SuggestBetween(ctx context.Context, sourceText, sourceLang, targetLang string) ([]tm.Match, error) {
	return m.Suggest(ctx, sourceText, []string{sourceLang}, []string{targetLang})
}

// AddUnit stores one translation unit.
func (m *Memory) AddUnit(ctx context.Context, unit tm.Unit, sourceLang, targetLang string) error {
	return m.store.InsertUnit(ctx, unit, sourceLang, targetLang)
}

// AddBatch stores many units in one transaction, returning the number
// attempted.
func (m *Memory) AddBatch(ctx context.Context, units []tm.Unit, sourceLang, targetLang string) (int, error) {
	return m.store.InsertBatch(ctx, units, sourceLang, targetLang)
}

// AddAll stores every unit of a unit collection in one transaction.
func (m *Memory) AddAll(ctx context.Context, src tm.UnitSource, sourceLang, targetLang string) (int, error) {
	return m.store.InsertAll(ctx, src, sourceLang, targetLang)
}

// Stats returns the number of stored translations.
func (m *Memory) Stats(ctx context.Context) (int64, error) {
	return m.store.Stats(ctx)
}
