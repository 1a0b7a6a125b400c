package tm

// Unit is the translation-unit abstraction consumed by the store. It is
// supplied by the file-format layer, which is outside this subsystem; any
// value exposing these accessors can be inserted.
type Unit interface {
	// Source returns the original-language text.
	Source() string
	// Target returns the translated text.
	Target() string
	// Context returns disambiguation context, or "" when absent.
	Context() string
	// SourceLanguage returns the per-unit source language override, or ""
	// when the unit carries none.
	SourceLanguage() string
	// TargetLanguage returns the per-unit target language override, or ""
	// when the unit carries none.
	TargetLanguage() string
	// IsTranslatable reports whether the unit holds translatable content
	// (as opposed to headers, obsolete entries, and the like).
	IsTranslatable() bool
	// IsTranslated reports whether the unit has a non-empty translation.
	IsTranslated() bool
}

// UnitSource is an iterable collection of translation units, typically a
// parsed localization file. Used by the bulk-insert entry point.
type UnitSource interface {
	Units() []Unit
}

// Record is a plain translation unit carrying no per-unit language
// overrides. It is the dictionary-shaped representation used by bulk import
// and the HTTP API.
type Record struct {
	source  string
	target  string
	context string
}

// NewRecord creates a Record.
func NewRecord(source, target, context string) Record {
	return Record{source: source, target: target, context: context}
}

// Source returns the original-language text.
func (r Record) Source() string { return r.source }

// Target returns the translated text.
func (r Record) Target() string { return r.target }

// Context returns the disambiguation context, or "".
func (r Record) Context() string { return r.context }

// SourceLanguage returns ""; records never override the store language.
func (r Record) SourceLanguage() string { return "" }

// TargetLanguage returns ""; records never override the store language.
func (r Record) TargetLanguage() string { return "" }

// IsTranslatable reports whether the record has source text.
func (r Record) IsTranslatable() bool { return r.source != "" }

// IsTranslated reports whether the record has target text.
func (r Record) IsTranslated() bool { return r.target != "" }
