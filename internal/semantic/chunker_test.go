package semantic

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitChunks(t *testing.T) {
	chunks := SplitChunks("Led migration to AWS. Reduced costs by 40%", 300)

	assert.Equal(t, []string{
		"Led migration to AWS",
		"Reduced costs by 40%",
		"Led migration to AWS. Reduced costs by 40%",
	}, chunks)
}

func TestSplitChunksRespectsPairLimit(t *testing.T) {
	chunks := SplitChunks("First sentence here. Second sentence here.", 20)

	// Both sentences survive individually; the pair exceeds the limit.
	assert.Equal(t, []string{"First sentence here", "Second sentence here"}, chunks)
}

func TestSplitChunksHandlesNewlinesAndBlanks(t *testing.T) {
	chunks := SplitChunks("One\n\nTwo;Three!  ", 300)

	assert.Contains(t, chunks, "One")
	assert.Contains(t, chunks, "Two")
	assert.Contains(t, chunks, "Three")
}

func TestSplitChunksEmpty(t *testing.T) {
	assert.Empty(t, SplitChunks("", 300))
	assert.Empty(t, SplitChunks("   \n  ", 300))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "héllo", Truncate("héllo wörld", 5))

	got := Truncate("ééééé", 3)
	assert.Equal(t, "ééé", got)
	assert.True(t, utf8.ValidString(got))
}

func TestCosineSimilarity(t *testing.T) {
	a := []float32{1, 0, 0}
	b := []float32{0, 1, 0}

	assert.InDelta(t, 1.0, CosineSimilarity(a, a), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)

	// Opposed vectors clamp to zero rather than going negative.
	assert.InDelta(t, 0.0, CosineSimilarity(a, []float32{-1, 0, 0}), 1e-9)

	// Mismatched or empty vectors score zero.
	assert.Zero(t, CosineSimilarity(a, []float32{1, 0}))
	assert.Zero(t, CosineSimilarity(nil, nil))
	assert.Zero(t, CosineSimilarity(a, []float32{0, 0, 0}))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, ClampScore(-0.2))
	assert.Equal(t, 1.0, ClampScore(1.3))
	assert.Equal(t, 0.5, ClampScore(0.5))
	assert.Equal(t, 0.0, ClampScore(math.NaN()))
}
