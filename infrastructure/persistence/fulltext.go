package persistence

import (
	"log/slog"

	"github.com/tmkit/tmkit/internal/database"
)

// The lexical pre-filter is a plain FTS5 table mirroring sources.text, keyed
// by rowid = sid. Triggers keep it transitively in sync with every source
// insert, text update, and delete, so it can never drift from the canonical
// table.
const (
	fulltextCreateTable = `CREATE VIRTUAL TABLE IF NOT EXISTS fulltext USING fts5(text)`

	fulltextBackfill = `
INSERT INTO fulltext (rowid, text)
SELECT sid, text FROM sources WHERE sid NOT IN (SELECT rowid FROM fulltext)`

	fulltextInsertTrigger = `
CREATE TRIGGER IF NOT EXISTS sources_insert_trig AFTER INSERT ON sources FOR EACH ROW
BEGIN
    INSERT INTO fulltext (rowid, text) VALUES (NEW.sid, NEW.text);
END`

	fulltextUpdateTrigger = `
CREATE TRIGGER IF NOT EXISTS sources_update_trig AFTER UPDATE OF text ON sources FOR EACH ROW
BEGIN
    UPDATE fulltext SET text = NEW.text WHERE rowid = NEW.sid;
END`

	fulltextDeleteTrigger = `
CREATE TRIGGER IF NOT EXISTS sources_delete_trig AFTER DELETE ON sources FOR EACH ROW
BEGIN
    DELETE FROM fulltext WHERE rowid = OLD.sid;
END`
)

// dropTriggerStatements removes the sync triggers, used when a database that
// previously had full-text support is opened by an engine without it.
var dropTriggerStatements = []string{
	`DROP TRIGGER IF EXISTS sources_insert_trig`,
	`DROP TRIGGER IF EXISTS sources_update_trig`,
	`DROP TRIGGER IF EXISTS sources_delete_trig`,
}

// initFulltext probes the backing engine for FTS5 support and, when present,
// creates the fulltext table, its sync triggers, and a one-time backfill of
// any pre-existing rows. Returns whether the pre-filter is available.
//
// Probe failure is not an error: the capability is disabled for the store's
// lifetime and every query falls back to a full range scan. There are no
// retries.
func initFulltext(db database.Database, logger *slog.Logger) bool {
	if !db.IsSQLite() {
		logger.Debug("lexical pre-filter unavailable", "reason", "backing engine is not sqlite")
		return false
	}

	gdb := db.GORM()

	// Capability probe: build and drop a throwaway virtual table. There is
	// no cleaner way to detect whether this build of SQLite carries FTS5.
	probe := []string{
		`DROP TABLE IF EXISTS fulltext_probe`,
		`CREATE VIRTUAL TABLE fulltext_probe USING fts5(text)`,
		`DROP TABLE fulltext_probe`,
	}
	for _, stmt := range probe {
		if err := gdb.Exec(stmt).Error; err != nil {
			logger.Warn("lexical pre-filter disabled", "error", err)
			dropFulltextTriggers(db)
			return false
		}
	}

	setup := []string{
		fulltextCreateTable,
		fulltextBackfill,
		fulltextInsertTrigger,
		fulltextUpdateTrigger,
		fulltextDeleteTrigger,
	}
	for _, stmt := range setup {
		if err := gdb.Exec(stmt).Error; err != nil {
			logger.Warn("lexical pre-filter disabled", "error", err)
			dropFulltextTriggers(db)
			return false
		}
	}

	logger.Debug("lexical pre-filter enabled")
	return true
}

// dropFulltextTriggers removes stale sync triggers so later source inserts
// do not fail against a missing fulltext table.
func dropFulltextTriggers(db database.Database) {
	for _, stmt := range dropTriggerStatements {
		_ = db.GORM().Exec(stmt).Error
	}
}
