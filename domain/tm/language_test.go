package tm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "en", expected: "en"},
		{in: "EN", expected: "en"},
		{in: "pt_BR", expected: "pt-br"},
		{in: "pt-BR", expected: "pt-br"},
		{in: "sr@latin", expected: "sr-latin"},
		{in: "  fr ", expected: "fr"},
		{in: "", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeCode(tt.in), "in=%q", tt.in)
	}
}

func TestNormalizeCodes(t *testing.T) {
	assert.Equal(t, []string{"en", "pt-br"}, NormalizeCodes([]string{"EN", "", "pt_BR"}))
	assert.Empty(t, NormalizeCodes([]string{"", "  "}))
}

func TestLanguageError(t *testing.T) {
	err := NewLanguageError("source")

	assert.Equal(t, "undefined source language", err.Error())
	assert.True(t, errors.Is(err, ErrLanguage))

	wrapped := fmt.Errorf("insert unit: %w", err)
	assert.True(t, errors.Is(wrapped, ErrLanguage))

	var target *LanguageError
	assert.True(t, errors.As(wrapped, &target))
}

func TestRecord(t *testing.T) {
	rec := NewRecord("Hello world", "Bonjour monde", "greeting")

	assert.Equal(t, "Hello world", rec.Source())
	assert.Equal(t, "Bonjour monde", rec.Target())
	assert.Equal(t, "greeting", rec.Context())
	assert.Empty(t, rec.SourceLanguage())
	assert.Empty(t, rec.TargetLanguage())
	assert.True(t, rec.IsTranslatable())
	assert.True(t, rec.IsTranslated())

	untranslated := NewRecord("Hello", "", "")
	assert.True(t, untranslated.IsTranslatable())
	assert.False(t, untranslated.IsTranslated())
}
