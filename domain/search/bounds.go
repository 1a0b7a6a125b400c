package search

// MinCandidateLength returns the shortest candidate length that can still
// reach minSimilarity against a query of the given length. A candidate
// shorter than length*minSimilarity/100 characters needs more edits than
// the ratio allows. Never returns less than 2.
func MinCandidateLength(length, minSimilarity int) int {
	minSimilarity = clampSimilarity(minSimilarity)

	scaled := length * minSimilarity
	bound := scaled / 100
	if scaled%100 != 0 {
		bound++
	}
	if bound < 2 {
		bound = 2
	}
	return bound
}

// MaxCandidateLength returns the longest candidate length that can still
// reach minSimilarity against a query of the given length, capped at
// maxLength.
func MaxCandidateLength(length, minSimilarity, maxLength int) int {
	minSimilarity = clampSimilarity(minSimilarity)

	bound := length * 100 / minSimilarity
	if bound > maxLength {
		bound = maxLength
	}
	return bound
}

func clampSimilarity(minSimilarity int) int {
	if minSimilarity < 1 {
		return 1
	}
	if minSimilarity > 100 {
		return 100
	}
	return minSimilarity
}
