package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scanner/internal/skills"
	"github.com/jonathan/resume-scanner/internal/types"
)

func kw(phrase string, freq int) types.Keyword {
	return types.Keyword{Phrase: phrase, Frequency: freq, WordCount: 1}
}

func newTestMatcher() *LexicalMatcher {
	return NewLexicalMatcher(skills.NewDictionary())
}

func TestMatchExactCounts(t *testing.T) {
	m := newTestMatcher()

	resume := "Built Python services. Python tooling in Python. Some Java too."
	result := m.Match(resume, []types.Keyword{kw("python", 3), kw("java", 1), kw("rust", 1)})

	require.Equal(t, 3, result.TotalKeywords)
	require.Equal(t, 2, result.MatchedCount)
	require.Equal(t, 1, result.MissingCount)

	// Matched keywords sort by resume occurrence count descending.
	assert.Equal(t, "python", result.Matched[0].Keyword)
	assert.Equal(t, 3, result.Matched[0].Count)
	assert.Equal(t, "java", result.Matched[1].Keyword)
	assert.Equal(t, 1, result.Matched[1].Count)

	assert.Equal(t, "rust", result.Missing[0].Keyword)
	assert.False(t, result.Missing[0].Found)
	assert.Equal(t, 67, result.MatchPercentage)
}

func TestMatchMultiWordPhrases(t *testing.T) {
	m := newTestMatcher()

	resume := "Applied machine learning to fraud detection. Machine learning models in production."
	result := m.Match(resume, []types.Keyword{{Phrase: "machine learning", Frequency: 2, WordCount: 2}})

	require.Equal(t, 1, result.MatchedCount)
	assert.Equal(t, 2, result.Matched[0].Count)
}

func TestMatchNormalizesSynonymsInResume(t *testing.T) {
	m := newTestMatcher()

	resume := "Deployed to k8s. Wrote NodeJS services in Golang."
	result := m.Match(resume, []types.Keyword{kw("kubernetes", 1), kw("node.js", 1), kw("go", 1)})

	assert.Equal(t, 3, result.MatchedCount)
	assert.Equal(t, 0, result.MissingCount)
}

func TestMatchSynonymPassOnKeyword(t *testing.T) {
	m := newTestMatcher()

	// Keyword arrives in a variant spelling; the per-token synonym pass
	// canonicalizes it against the already-normalized resume.
	resume := "Kubernetes cluster operations."
	result := m.Match(resume, []types.Keyword{kw("k8s", 1)})

	assert.Equal(t, 1, result.MatchedCount)
}

func TestMatchStemmedFallback(t *testing.T) {
	m := newTestMatcher()

	// "optimization" is not a dictionary term, so the stemmed pass may
	// match the resume's "optimizing".
	resume := "Focused on optimizing query latency."
	result := m.Match(resume, []types.Keyword{kw("optimization", 1)})

	require.Equal(t, 1, result.MatchedCount)
	assert.Equal(t, "optimization", result.Matched[0].Keyword)
}

func TestMatchNoStemmingForDictionaryTerms(t *testing.T) {
	m := newTestMatcher()

	// "go" is a known skill: it must never match through a stem collision
	// with "going".
	resume := "Going forward we ship weekly."
	result := m.Match(resume, []types.Keyword{kw("go", 1)})

	assert.Equal(t, 0, result.MatchedCount)
	assert.Equal(t, 1, result.MissingCount)
}

func TestMatchTechnicalTokens(t *testing.T) {
	m := newTestMatcher()

	resume := "Shipped C++ engines and C# tools on .NET."
	result := m.Match(resume, []types.Keyword{kw("c++", 1), kw("c#", 1), kw(".net", 1)})

	assert.Equal(t, 3, result.MatchedCount)
}

func TestMatchMissingGetsPlacement(t *testing.T) {
	m := newTestMatcher()

	result := m.Match("Plain prose resume.", []types.Keyword{kw("docker", 1), kw("pmp", 1)})

	require.Equal(t, 2, result.MissingCount)
	for _, miss := range result.Missing {
		assert.NotEmpty(t, miss.SuggestedPlacement)
	}
}

func TestMatchEmptyKeywords(t *testing.T) {
	m := newTestMatcher()

	result := m.Match("Any resume.", nil)

	assert.Equal(t, 0, result.TotalKeywords)
	assert.Equal(t, 0, result.MatchPercentage)
}

func TestMatchPercentageRounding(t *testing.T) {
	assert.Equal(t, 0, MatchPercentage(0, 0))
	assert.Equal(t, 50, MatchPercentage(1, 2))
	assert.Equal(t, 67, MatchPercentage(2, 3))
	assert.Equal(t, 33, MatchPercentage(1, 3))
	assert.Equal(t, 100, MatchPercentage(5, 5))
}

func TestSuggestPlacement(t *testing.T) {
	assert.Equal(t, "Certifications section", SuggestPlacement("aws certified"))
	assert.Equal(t, "Certifications section", SuggestPlacement("pmp"))
	assert.Equal(t, "Skills section", SuggestPlacement("python"))
	assert.Equal(t, "Skills section or a project bullet that shows hands-on use", SuggestPlacement("kubernetes"))
	assert.Equal(t, "Experience bullet points or Summary", SuggestPlacement("ci/cd"))
	assert.Equal(t, "Summary or leadership-focused Experience bullets", SuggestPlacement("mentoring"))
	assert.Equal(t, DefaultPlacement, SuggestPlacement("blockchain"))
}
