package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignificantWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "strips punctuation and short tokens",
			text:     "The cat, sat on the mat!",
			expected: []string{"The", "cat", "sat", "the", "mat"},
		},
		{
			name:     "two character tokens discarded",
			text:     "go to it",
			expected: []string{},
		},
		{
			name:     "punctuation splits words",
			text:     "file.txt:line-numbers",
			expected: []string{"file", "txt", "line", "numbers"},
		},
		{
			name:     "unicode letters survive",
			text:     "déjà vu encore",
			expected: []string{"déjà", "encore"},
		},
		{
			name:     "empty input",
			text:     "",
			expected: []string{},
		},
		{
			name:     "only punctuation",
			text:     "?! ... --- ///",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SignificantWords(tt.text))
		})
	}
}

func TestUseFulltext(t *testing.T) {
	assert.False(t, UseFulltext(nil))
	assert.False(t, UseFulltext([]string{"one", "two", "three"}))
	assert.True(t, UseFulltext([]string{"one", "two", "three", "four"}))
}
