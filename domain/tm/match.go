package tm

// Match is a ranked fuzzy-match suggestion returned by a memory lookup.
// Matches are ephemeral: they are owned by the calling query and never
// persisted.
type Match struct {
	source  string
	target  string
	context string
	quality int
}

// NewMatch creates a Match.
func NewMatch(source, target, context string, quality int) Match {
	return Match{
		source:  source,
		target:  target,
		context: context,
		quality: quality,
	}
}

// Source returns the stored source text that matched the query.
func (m Match) Source() string { return m.source }

// Target returns the stored translation.
func (m Match) Target() string { return m.target }

// Context returns the stored disambiguation context, or "".
func (m Match) Context() string { return m.context }

// Quality returns the 0–100 similarity between the query and Source.
func (m Match) Quality() int { return m.quality }
