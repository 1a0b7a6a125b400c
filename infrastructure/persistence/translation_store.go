package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tmkit/tmkit/domain/tm"
	"github.com/tmkit/tmkit/internal/database"
)

// Candidate query shapes. The fulltext variant narrows through the lexical
// index before the length/language bounds are applied.
const (
	candidateQuery = `
SELECT s.text, t.text, s.context, s.lang, t.lang
FROM sources s JOIN targets t ON s.sid = t.sid
WHERE s.lang IN ? AND t.lang IN ? AND s.length BETWEEN ? AND ?`

	candidateFulltextQuery = `
SELECT s.text, t.text, s.context, s.lang, t.lang
FROM sources s
JOIN targets t ON s.sid = t.sid
JOIN fulltext f ON s.sid = f.rowid
WHERE s.lang IN ? AND t.lang IN ? AND s.length BETWEEN ? AND ?
AND fulltext MATCH ?`

	statsQuery = `
SELECT COUNT(*) FROM sources s JOIN targets t ON s.sid = t.sid`
)

// TranslationStore is the durable table of source strings and their
// translations. One store wraps one shared Database handle; open several on
// the same file through a database.Registry and they see the same rows.
type TranslationStore struct {
	db       database.Database
	logger   *slog.Logger
	fulltext bool
}

// NewTranslationStore creates a TranslationStore, migrating the schema and
// probing for full-text support. Schema failure is fatal
// (ErrStorageInit); a failed full-text probe only disables the lexical
// pre-filter for this store's lifetime.
func NewTranslationStore(db database.Database, logger *slog.Logger) (*TranslationStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &TranslationStore{
		db:     db,
		logger: logger,
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	s.fulltext = initFulltext(db, logger)

	return s, nil
}

// FulltextEnabled reports whether the lexical pre-filter is available.
// Decided once at construction, never re-probed.
func (s *TranslationStore) FulltextEnabled() bool {
	return s.fulltext
}

// InsertSource stores a source string and returns its id. Inserting an
// identical (text, context, lang) row again is a no-op that resolves to the
// existing id.
func (s *TranslationStore) InsertSource(ctx context.Context, text, contextText, lang string) (int64, error) {
	return s.insertSource(s.db.Session(ctx), text, contextText, lang)
}

// InsertTarget stores a translation for a source row. Inserting an identical
// (source id, text, lang) row again is a silent no-op that keeps the
// original timestamp.
func (s *TranslationStore) InsertTarget(ctx context.Context, sourceID int64, text, lang string, ts time.Time) error {
	return s.insertTarget(s.db.Session(ctx), sourceID, text, lang, ts)
}

// InsertUnit stores one translation unit in its own transaction. The unit's
// own language attributes override sourceLang and targetLang; if either side
// still has no language the insert fails with a LanguageError and nothing is
// written.
func (s *TranslationStore) InsertUnit(ctx context.Context, unit tm.Unit, sourceLang, targetLang string) error {
	sourceLang, targetLang, err := resolveLanguages(unit, sourceLang, targetLang)
	if err != nil {
		return err
	}

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return s.insertUnit(tx, unit, sourceLang, targetLang)
	})
}

// InsertBatch stores many units in a single transaction and returns the
// number attempted (duplicates count; they resolve to existing rows).
// Units that are not translatable or not yet translated are skipped.
// All-or-nothing: any failure rolls the whole batch back.
func (s *TranslationStore) InsertBatch(ctx context.Context, units []tm.Unit, sourceLang, targetLang string) (int, error) {
	return database.WithTransactionResult(ctx, s.db, func(tx *gorm.DB) (int, error) {
		count := 0
		for _, unit := range units {
			if !unit.IsTranslatable() || !unit.IsTranslated() {
				continue
			}
			srcLang, tgtLang, err := resolveLanguages(unit, sourceLang, targetLang)
			if err != nil {
				return 0, err
			}
			if err := s.insertUnit(tx, unit, srcLang, tgtLang); err != nil {
				return 0, err
			}
			count++
		}
		return count, nil
	})
}

// InsertAll stores every unit of a unit collection, one transaction for the
// whole collection.
func (s *TranslationStore) InsertAll(ctx context.Context, src tm.UnitSource, sourceLang, targetLang string) (int, error) {
	return s.InsertBatch(ctx, src.Units(), sourceLang, targetLang)
}

// QueryCandidates returns rows whose source language is in sourceLangs,
// target language in targetLangs, and source length inside the closed
// [minLength, maxLength] interval. When terms are given and the lexical
// pre-filter is available, rows are additionally required to share at least
// one term with the query.
func (s *TranslationStore) QueryCandidates(ctx context.Context, sourceLangs, targetLangs []string, minLength, maxLength int, terms []string) ([]Candidate, error) {
	var rows *gorm.DB
	if len(terms) > 0 && s.fulltext {
		rows = s.db.Session(ctx).Raw(candidateFulltextQuery,
			sourceLangs, targetLangs, minLength, maxLength, fulltextMatchExpr(terms))
	} else {
		rows = s.db.Session(ctx).Raw(candidateQuery,
			sourceLangs, targetLangs, minLength, maxLength)
	}

	sqlRows, err := rows.Rows()
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer func() { _ = sqlRows.Close() }()

	var candidates []Candidate
	for sqlRows.Next() {
		var c Candidate
		var contextText *string
		if err := sqlRows.Scan(&c.SourceText, &c.TargetText, &contextText, &c.SourceLang, &c.TargetLang); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		if contextText != nil {
			c.Context = *contextText
		}
		candidates = append(candidates, c)
	}
	if err := sqlRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}

	return candidates, nil
}

// Stats returns the number of stored translations (source/target pairs).
func (s *TranslationStore) Stats(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.Session(ctx).Raw(statsQuery).Scan(&count).Error; err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// insertUnit writes one unit inside the caller's transaction. Languages must
// already be resolved and normalized.
func (s *TranslationStore) insertUnit(tx *gorm.DB, unit tm.Unit, sourceLang, targetLang string) error {
	sid, err := s.insertSource(tx, unit.Source(), unit.Context(), sourceLang)
	if err != nil {
		return err
	}
	return s.insertTarget(tx, sid, unit.Target(), targetLang, time.Now())
}

// insertSource is the insert-or-get primitive: the existing row wins and a
// conflicting insert is resolved by re-reading, never surfaced as an error.
func (s *TranslationStore) insertSource(tx *gorm.DB, text, contextText, lang string) (int64, error) {
	if id, ok, err := s.findSource(tx, text, contextText, lang); err != nil {
		return 0, err
	} else if ok {
		return id, nil
	}

	row := SourceModel{
		Text:    text,
		Context: nullableContext(contextText),
		Lang:    lang,
		Length:  len([]rune(text)),
	}
	if err := tx.Create(&row).Error; err != nil {
		// A concurrent writer may have won the race on the unique index;
		// the row it created is the one we want.
		if id, ok, ferr := s.findSource(tx, text, contextText, lang); ferr == nil && ok {
			return id, nil
		}
		return 0, fmt.Errorf("insert source: %w", err)
	}
	return row.ID, nil
}

func (s *TranslationStore) findSource(tx *gorm.DB, text, contextText, lang string) (int64, bool, error) {
	var row SourceModel
	q := tx.Where("text = ? AND lang = ?", text, lang)
	if contextText == "" {
		q = q.Where("context IS NULL")
	} else {
		q = q.Where("context = ?", contextText)
	}
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("find source: %w", err)
	}
	return row.ID, true, nil
}

func (s *TranslationStore) insertTarget(tx *gorm.DB, sourceID int64, text, lang string, ts time.Time) error {
	var count int64
	err := tx.Model(&TargetModel{}).
		Where("sid = ? AND text = ? AND lang = ?", sourceID, text, lang).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("find target: %w", err)
	}
	if count > 0 {
		// Duplicate translation: keep the stored row and its timestamp.
		return nil
	}

	var stamp *int64
	if !ts.IsZero() {
		unix := ts.Unix()
		stamp = &unix
	}
	row := TargetModel{
		SourceID: sourceID,
		Text:     text,
		Lang:     lang,
		Time:     stamp,
	}
	if err := tx.Create(&row).Error; err != nil {
		if _, ok, ferr := s.findTarget(tx, sourceID, text, lang); ferr == nil && ok {
			return nil
		}
		return fmt.Errorf("insert target: %w", err)
	}
	return nil
}

func (s *TranslationStore) findTarget(tx *gorm.DB, sourceID int64, text, lang string) (int64, bool, error) {
	var row TargetModel
	err := tx.Where("sid = ? AND text = ? AND lang = ?", sourceID, text, lang).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return row.ID, true, nil
}

// resolveLanguages applies per-unit language overrides on top of the store
// defaults and normalizes the result. Either side left without a language is
// a LanguageError.
func resolveLanguages(unit tm.Unit, sourceLang, targetLang string) (string, string, error) {
	if lang := unit.SourceLanguage(); lang != "" {
		sourceLang = lang
	}
	if lang := unit.TargetLanguage(); lang != "" {
		targetLang = lang
	}

	sourceLang = tm.NormalizeCode(sourceLang)
	targetLang = tm.NormalizeCode(targetLang)

	if sourceLang == "" {
		return "", "", tm.NewLanguageError("source")
	}
	if targetLang == "" {
		return "", "", tm.NewLanguageError("target")
	}
	return sourceLang, targetLang, nil
}

func nullableContext(contextText string) *string {
	if contextText == "" {
		return nil
	}
	return &contextText
}

// fulltextMatchExpr builds an OR query over the significant words. Each term
// is quoted so FTS5 operators inside a token are taken literally.
func fulltextMatchExpr(terms []string) string {
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = `"` + strings.ReplaceAll(term, `"`, `""`) + `"`
	}
	return strings.Join(quoted, " OR ")
}
