// Package persistence implements the durable translation-memory store on
// GORM, including the optional SQLite full-text pre-filter.
//
// The pre-filter needs FTS5 compiled into the sqlite driver, which
// mattn/go-sqlite3 ships behind the sqlite_fts5 build tag:
//
//	go build -tags sqlite_fts5 ./...
//	go test  -tags sqlite_fts5 ./...
//
// Without the tag the capability probe fails at store construction and
// every lookup uses the plain length/language range scan.
package persistence

// SourceModel is a stored original-language string. (text, context, lang) is
// unique; length caches the character count of text purely so candidate
// queries can range-filter cheaply.
type SourceModel struct {
	ID      int64   `gorm:"column:sid;primaryKey;autoIncrement"`
	Text    string  `gorm:"column:text;not null;uniqueIndex:sources_uniq_idx"`
	Context *string `gorm:"column:context;uniqueIndex:sources_uniq_idx;index:sources_context_idx"`
	Lang    string  `gorm:"column:lang;not null;uniqueIndex:sources_uniq_idx;index:sources_lang_idx"`
	Length  int     `gorm:"column:length;not null;index:sources_length_idx"`
}

// TableName maps SourceModel to the sources table.
func (SourceModel) TableName() string { return "sources" }

// TargetModel is a stored translation of a source record. (sid, text, lang)
// is unique; a source may carry many targets across languages and revisions.
// Time is the unix timestamp of the first insert and survives duplicate
// inserts unchanged.
type TargetModel struct {
	ID       int64  `gorm:"column:tid;primaryKey;autoIncrement"`
	SourceID int64  `gorm:"column:sid;not null;uniqueIndex:targets_uniq_idx;index:targets_sid_idx"`
	Text     string `gorm:"column:text;not null;uniqueIndex:targets_uniq_idx"`
	Lang     string `gorm:"column:lang;not null;uniqueIndex:targets_uniq_idx;index:targets_lang_idx"`
	Time     *int64 `gorm:"column:time;index:targets_time_idx"`

	Source SourceModel `gorm:"foreignKey:SourceID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName maps TargetModel to the targets table.
func (TargetModel) TableName() string { return "targets" }

// Candidate is one row returned by the candidate query: a stored source
// string with one of its translations. Candidates are scored by the ranking
// engine, never persisted.
type Candidate struct {
	SourceText string
	TargetText string
	Context    string
	SourceLang string
	TargetLang string
}
