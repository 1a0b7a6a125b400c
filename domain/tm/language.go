// Package tm provides translation-memory domain types: translation units,
// language codes, and fuzzy-match results.
package tm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLanguage indicates a required source or target language could not be
// resolved. Callers recover by supplying an explicit language; it is never
// silently defaulted.
var ErrLanguage = errors.New("language error")

// LanguageError reports which side of a translation unit was missing a
// language code.
type LanguageError struct {
	side string
}

// NewLanguageError creates a LanguageError for the given side ("source" or
// "target").
func NewLanguageError(side string) *LanguageError {
	return &LanguageError{side: side}
}

// Error implements the error interface.
func (e *LanguageError) Error() string {
	return fmt.Sprintf("undefined %s language", e.side)
}

// Unwrap makes the error matchable with errors.Is(err, ErrLanguage).
func (e *LanguageError) Unwrap() error {
	return ErrLanguage
}

// NormalizeCode canonicalizes a language identifier: surrounding whitespace
// is trimmed, underscore and at-sign separators become hyphens, and the
// result is lowercased, so "pt_BR", "pt-br" and "PT-BR" all collapse to
// "pt-br".
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	code = strings.ReplaceAll(code, "_", "-")
	code = strings.ReplaceAll(code, "@", "-")
	return strings.ToLower(code)
}

// NormalizeCodes canonicalizes a set of language identifiers, dropping any
// that are empty after normalization.
func NormalizeCodes(codes []string) []string {
	normalized := make([]string, 0, len(codes))
	for _, code := range codes {
		if n := NormalizeCode(code); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}
