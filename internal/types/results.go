// Package types defines the shared data structures for the keyword scanner.
package types

// MatchType classifies how a keyword was satisfied by the resume.
type MatchType string

const (
	// MatchExact means the embedding similarity was high enough to treat
	// the keyword as literally present (>= the exact threshold).
	MatchExact MatchType = "exact"
	// MatchSemantic means the keyword is covered by related wording.
	MatchSemantic MatchType = "semantic"
	// MatchPartial means the resume touches the topic but not convincingly.
	MatchPartial MatchType = "partial"
	// MatchNone means no resume chunk relates to the keyword.
	MatchNone MatchType = "none"
)

// Category buckets a keyword by the kind of skill it names.
type Category string

const (
	CategoryHardSkill     Category = "hard-skill"
	CategorySoftSkill     Category = "soft-skill"
	CategoryTool          Category = "tool"
	CategoryCertification Category = "certification"
	CategoryMethodology   Category = "methodology"
)

// KeywordResult is the per-keyword outcome of a lexical scan.
type KeywordResult struct {
	Keyword            string   `json:"keyword"`
	Found              bool     `json:"found"`
	Count              int      `json:"count"`
	SuggestedPlacement string   `json:"suggestedPlacement,omitempty"`
	Category           Category `json:"category,omitempty"`
}

// EnhancedKeywordResult is the per-keyword outcome of a semantic scan.
type EnhancedKeywordResult struct {
	Keyword            string    `json:"keyword"`
	Found              bool      `json:"found"`
	Similarity         float64   `json:"similarity"`
	MatchType          MatchType `json:"matchType"`
	BestMatchContext   string    `json:"bestMatchContext,omitempty"`
	SuggestedPlacement string    `json:"suggestedPlacement,omitempty"`
	Category           Category  `json:"category,omitempty"`
}

// ScanResult aggregates a lexical scan.
// Invariant: MatchedCount + MissingCount == TotalKeywords.
type ScanResult struct {
	MatchPercentage int             `json:"matchPercentage"`
	TotalKeywords   int             `json:"totalKeywords"`
	MatchedCount    int             `json:"matchedCount"`
	MissingCount    int             `json:"missingCount"`
	Matched         []KeywordResult `json:"matched"`
	Missing         []KeywordResult `json:"missing"`
}

// EnhancedScanResult aggregates a semantic scan.
// Invariant: MatchedCount + PartialCount + MissingCount == TotalKeywords.
type EnhancedScanResult struct {
	MatchPercentage int                     `json:"matchPercentage"`
	TotalKeywords   int                     `json:"totalKeywords"`
	MatchedCount    int                     `json:"matchedCount"`
	PartialCount    int                     `json:"partialCount"`
	MissingCount    int                     `json:"missingCount"`
	Matched         []EnhancedKeywordResult `json:"matched"`
	Partial         []EnhancedKeywordResult `json:"partial"`
	Missing         []EnhancedKeywordResult `json:"missing"`
}

// Keyword is a candidate phrase extracted from a job description,
// immutable once extracted.
type Keyword struct {
	Phrase    string   `json:"phrase"`
	Frequency int      `json:"frequency"`
	WordCount int      `json:"wordCount"`
	Category  Category `json:"category,omitempty"`
}
