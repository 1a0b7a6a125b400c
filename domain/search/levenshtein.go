// Package search provides the fuzzy-matching primitives of the translation
// memory: the Levenshtein similarity comparer, candidate length bounds, and
// query tokenization.
package search

// Comparer scores string pairs with a normalized Levenshtein edit-distance
// ratio on the 0–100 scale. The zero value is ready to use.
type Comparer struct{}

// NewComparer creates a Comparer.
func NewComparer() Comparer {
	return Comparer{}
}

// Similarity returns the 0–100 similarity between a and b.
//
// Two empty strings are identical (100); one empty string matches nothing
// (0). When the running edit distance proves the ratio cannot reach
// minSimilarity the comparison aborts and returns 0; any pair compared to
// completion gets its true ratio. Bounding the length of inputs is the
// caller's job.
func (c Comparer) Similarity(a, b string, minSimilarity int) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 && len(rb) == 0 {
		return 100
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}

	// A distance above this bound cannot score >= minSimilarity.
	stopValue := longest
	if minSimilarity > 0 && minSimilarity <= 100 {
		stopValue = longest * (100 - minSimilarity) / 100
	}

	dist, aborted := distance(ra, rb, stopValue)
	if aborted {
		return 0
	}
	return (longest - dist) * 100 / longest
}

// distance computes the Levenshtein edit distance between two rune slices
// using the two-row dynamic-programming form. Once every entry of the
// current row exceeds stopValue the final distance must too, so the scan
// stops early and reports aborted.
func distance(ra, rb []rune, stopValue int) (int, bool) {
	// Keep the row dimension on the shorter string.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		least := curr[0]
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if curr[j] < least {
				least = curr[j]
			}
		}
		if least > stopValue {
			return least, true
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)], false
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
