package semantic

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scanner/internal/extraction"
	"github.com/jonathan/resume-scanner/internal/matching"
	"github.com/jonathan/resume-scanner/internal/skills"
	"github.com/jonathan/resume-scanner/internal/types"
)

// Matcher runs the embedding pipeline: extract candidates, drop generic
// boilerplate, cluster near-duplicates, then classify each kept keyword by
// its best cosine similarity against the resume chunks.
type Matcher struct {
	cfg       Config
	embedder  Embedder
	extractor *extraction.Extractor

	genericOnce sync.Once
	genericVecs [][]float32
	genericErr  error
}

// NewMatcher builds a Matcher over the given embedding backend.
func NewMatcher(embedder Embedder, dict *skills.Dictionary, cfg Config) *Matcher {
	return &Matcher{
		cfg:       cfg,
		embedder:  embedder,
		extractor: extraction.NewExtractor(dict),
	}
}

// Close releases the embedding backend.
func (m *Matcher) Close() error {
	return m.embedder.Close()
}

// Match classifies every keyword extracted from the job description against
// the resume text.
func (m *Matcher) Match(ctx context.Context, resumeText, jobDescription string) (*types.EnhancedScanResult, error) {
	candidates := m.extractor.Candidates(jobDescription)
	if len(candidates) == 0 {
		return buildResult(nil), nil
	}

	phrases := make([]string, len(candidates))
	for i, c := range candidates {
		phrases[i] = c.Phrase
	}
	chunks := SplitChunks(resumeText, m.cfg.MaxChunkLength)

	// Candidate phrases, resume chunks and (once per matcher) the generic
	// boilerplate phrases embed independently.
	var phraseVecs, chunkVecs [][]float32
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vecs, err := m.embedder.EmbedTexts(gctx, phrases)
		phraseVecs = vecs
		return err
	})
	if len(chunks) > 0 {
		g.Go(func() error {
			vecs, err := m.embedder.EmbedTexts(gctx, chunks)
			chunkVecs = vecs
			return err
		})
	}
	g.Go(func() error {
		return m.ensureGenericVecs(gctx)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	if len(phraseVecs) != len(candidates) {
		return nil, fmt.Errorf("embedding backend returned %d vectors for %d phrases", len(phraseVecs), len(candidates))
	}

	// Drop candidates that embed too close to posting boilerplate, then
	// collapse near-duplicate phrasings. Candidates arrive frequency-sorted,
	// so cluster representatives are the highest-frequency members.
	cands := make([]candidate, 0, len(candidates))
	for i, kw := range candidates {
		if m.isGeneric(phraseVecs[i]) {
			continue
		}
		cands = append(cands, candidate{keyword: kw, vector: phraseVecs[i]})
	}
	cands = clusterCandidates(cands, m.cfg.ClusterThreshold)

	keywords := make([]types.Keyword, len(cands))
	vectors := make(map[string][]float32, len(cands))
	for i, c := range cands {
		keywords[i] = c.keyword
		vectors[c.keyword.Phrase] = c.vector
	}
	keywords = extraction.Subsume(keywords)
	if len(keywords) > m.cfg.MaxKeywords {
		keywords = keywords[:m.cfg.MaxKeywords]
	}

	results := make([]types.EnhancedKeywordResult, 0, len(keywords))
	for _, kw := range keywords {
		sim, snippet := bestChunk(vectors[kw.Phrase], chunks, chunkVecs)
		results = append(results, classifyKeyword(m.cfg, kw, sim, snippet))
	}
	return buildResult(results), nil
}

// bestChunk returns the highest similarity over all resume chunks and the
// matching chunk text.
func bestChunk(vec []float32, chunks []string, chunkVecs [][]float32) (float64, string) {
	best := 0.0
	bestText := ""
	for i := range chunkVecs {
		if sim := CosineSimilarity(vec, chunkVecs[i]); sim > best {
			best = sim
			bestText = chunks[i]
		}
	}
	return best, bestText
}

// classifyKeyword buckets a keyword by similarity tier.
func classifyKeyword(cfg Config, kw types.Keyword, sim float64, snippet string) types.EnhancedKeywordResult {
	sim = ClampScore(sim)
	result := types.EnhancedKeywordResult{
		Keyword:    kw.Phrase,
		Similarity: sim,
		Category:   kw.Category,
	}
	switch {
	case sim >= cfg.FoundThreshold:
		result.Found = true
		if sim >= cfg.ExactThreshold {
			result.MatchType = types.MatchExact
		} else {
			result.MatchType = types.MatchSemantic
		}
		result.BestMatchContext = Truncate(snippet, cfg.MaxContextLength)
	case sim >= cfg.PartialThreshold:
		result.MatchType = types.MatchPartial
		result.BestMatchContext = Truncate(snippet, cfg.MaxContextLength)
	default:
		result.MatchType = types.MatchNone
		result.SuggestedPlacement = matching.SuggestPlacement(kw.Phrase)
	}
	return result
}

// isGeneric reports whether vec sits above the generic threshold against any
// boilerplate phrase embedding.
func (m *Matcher) isGeneric(vec []float32) bool {
	for _, g := range m.genericVecs {
		if CosineSimilarity(vec, g) > m.cfg.GenericThreshold {
			return true
		}
	}
	return false
}

// ensureGenericVecs embeds the boilerplate phrases once per matcher.
func (m *Matcher) ensureGenericVecs(ctx context.Context) error {
	m.genericOnce.Do(func() {
		m.genericVecs, m.genericErr = m.embedder.EmbedTexts(ctx, genericPhrases)
	})
	return m.genericErr
}

// buildResult assembles the buckets, sorted by similarity descending, and
// the aggregate counts.
func buildResult(results []types.EnhancedKeywordResult) *types.EnhancedScanResult {
	res := &types.EnhancedScanResult{
		TotalKeywords: len(results),
		Matched:       []types.EnhancedKeywordResult{},
		Partial:       []types.EnhancedKeywordResult{},
		Missing:       []types.EnhancedKeywordResult{},
	}
	for _, r := range results {
		switch {
		case r.Found:
			res.Matched = append(res.Matched, r)
		case r.MatchType == types.MatchPartial:
			res.Partial = append(res.Partial, r)
		default:
			res.Missing = append(res.Missing, r)
		}
	}
	for _, bucket := range [][]types.EnhancedKeywordResult{res.Matched, res.Partial, res.Missing} {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Similarity > bucket[j].Similarity
		})
	}
	res.MatchedCount = len(res.Matched)
	res.PartialCount = len(res.Partial)
	res.MissingCount = len(res.Missing)
	res.MatchPercentage = matching.MatchPercentage(res.MatchedCount, res.TotalKeywords)
	return res
}
