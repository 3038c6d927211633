package semantic

// Config holds the similarity thresholds and size caps for the semantic
// pipeline. The default values are empirically chosen and tunable; none of
// them is structural to the algorithm.
type Config struct {
	// ExactThreshold and above counts as a literal match.
	ExactThreshold float64
	// FoundThreshold and above counts as found (semantic if below exact).
	FoundThreshold float64
	// PartialThreshold and above (but below found) is a partial match.
	PartialThreshold float64
	// GenericThreshold drops candidates too similar to boilerplate
	// phrases ("strong communication skills teamwork").
	GenericThreshold float64
	// ClusterThreshold merges near-duplicate candidate phrasings.
	ClusterThreshold float64
	// MaxKeywords caps the keyword list after clustering and subsumption.
	MaxKeywords int
	// MaxChunkLength bounds a two-sentence resume window, in characters.
	MaxChunkLength int
	// MaxContextLength truncates the best-match context, in characters.
	MaxContextLength int
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		ExactThreshold:   0.85,
		FoundThreshold:   0.65,
		PartialThreshold: 0.45,
		GenericThreshold: 0.72,
		ClusterThreshold: 0.85,
		MaxKeywords:      40,
		MaxChunkLength:   300,
		MaxContextLength: 150,
	}
}
