package semantic

import (
	"regexp"
	"strings"
)

var chunkSplitPattern = regexp.MustCompile(`[.!?;\n]+`)

// SplitChunks breaks resume text into overlapping windows: every sentence on
// its own, plus every pair of adjacent sentences whose combined length stays
// within maxPairLength. The pairs recover context that sentence-level
// embedding loses ("Led migration to AWS." + "Reduced costs 40%.").
func SplitChunks(text string, maxPairLength int) []string {
	parts := chunkSplitPattern.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}

	chunks := make([]string, 0, len(sentences)*2)
	chunks = append(chunks, sentences...)
	for i := 0; i+1 < len(sentences); i++ {
		pair := sentences[i] + ". " + sentences[i+1]
		if len(pair) <= maxPairLength {
			chunks = append(chunks, pair)
		}
	}
	return chunks
}

// Truncate cuts s to at most limit characters, never splitting a rune.
// Results referencing resume text use this to keep context fields bounded.
func Truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
