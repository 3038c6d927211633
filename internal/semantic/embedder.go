// Package semantic implements the embedding-based keyword matcher: candidate
// phrases and resume chunks are embedded into vectors, near-duplicate
// candidates are clustered, and each keyword is classified by its best
// cosine similarity against the resume.
package semantic

import (
	"context"
	"math"
)

// Embedder is the minimal surface the matcher needs from an embedding
// backend. Implementations must be safe for sequential reuse; the session
// coordinator serializes access.
type Embedder interface {
	// EmbedTexts returns one vector per input text, in input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases backend resources.
	Close() error
}

// CosineSimilarity returns the cosine similarity of two vectors clamped to
// [0, 1]. Mismatched or empty vectors score zero.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return ClampScore(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// ClampScore forces a similarity score into [0, 1]. Backends occasionally
// return values fractionally outside the range; results must never.
func ClampScore(s float64) float64 {
	if s < 0 || math.IsNaN(s) {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
