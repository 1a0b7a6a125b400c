package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinCandidateLength(t *testing.T) {
	tests := []struct {
		name          string
		length        int
		minSimilarity int
		expected      int
	}{
		{name: "exact fraction", length: 20, minSimilarity: 75, expected: 15},
		{name: "rounds up", length: 11, minSimilarity: 75, expected: 9},
		{name: "floor of two", length: 0, minSimilarity: 75, expected: 2},
		{name: "tiny string", length: 2, minSimilarity: 75, expected: 2},
		{name: "full similarity", length: 40, minSimilarity: 100, expected: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinCandidateLength(tt.length, tt.minSimilarity))
		})
	}
}

func TestMaxCandidateLength(t *testing.T) {
	tests := []struct {
		name          string
		length        int
		minSimilarity int
		maxLength     int
		expected      int
	}{
		{name: "exact fraction", length: 15, minSimilarity: 75, maxLength: 1000, expected: 20},
		{name: "rounds down", length: 11, minSimilarity: 75, maxLength: 1000, expected: 14}, // floor(14.66)
		{name: "capped", length: 900, minSimilarity: 75, maxLength: 1000, expected: 1000},
		{name: "full similarity", length: 40, minSimilarity: 100, maxLength: 1000, expected: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaxCandidateLength(tt.length, tt.minSimilarity, tt.maxLength))
		})
	}
}

// The interval must be well-formed for every query long enough to have
// candidates at all: a candidate passing the minimum bound must also be
// admissible under the maximum bound.
func TestCandidateBounds_IntervalWellFormed(t *testing.T) {
	const maxLen = 1000
	for length := 2; length <= maxLen; length++ {
		for _, sim := range []int{1, 10, 50, 75, 90, 100} {
			lo := MinCandidateLength(length, sim)
			hi := MaxCandidateLength(length, sim, maxLen)
			assert.LessOrEqual(t, lo, hi, "length=%d similarity=%d", length, sim)
		}
	}
}
