package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FulltextTokenThreshold is the significant-word count a query must exceed
// for the lexical pre-filter to be worthwhile. Shorter queries are not
// selective enough to beat a plain range scan and may miss valid matches on
// tokenization edge cases.
const FulltextTokenThreshold = 3

// nonWord matches runs of characters that separate words: anything that is
// not a letter, digit, or underscore (Unicode-aware).
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// SignificantWords tokenizes text for lexical narrowing: punctuation and
// special characters are stripped, the remainder is split on whitespace, and
// tokens of 2 characters or fewer are discarded.
func SignificantWords(text string) []string {
	fields := strings.Fields(nonWord.ReplaceAllString(text, " "))

	words := fields[:0]
	for _, field := range fields {
		if utf8.RuneCountInString(field) > 2 {
			words = append(words, field)
		}
	}
	return words
}

// UseFulltext reports whether a query with the given significant words
// should be narrowed through the lexical pre-filter.
func UseFulltext(words []string) bool {
	return len(words) > FulltextTokenThreshold
}
