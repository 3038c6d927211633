// Package matching implements the deterministic lexical keyword matcher: it
// counts keyword occurrences in resume text with exact, synonym and stemmed
// passes and produces a found/missing classification with counts.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-scanner/internal/extraction"
	"github.com/jonathan/resume-scanner/internal/skills"
	"github.com/jonathan/resume-scanner/internal/stemming"
	"github.com/jonathan/resume-scanner/internal/synonyms"
	"github.com/jonathan/resume-scanner/internal/types"
)

// LexicalMatcher is a pure, synchronous matcher. It holds no mutable state
// and is safe for concurrent use.
type LexicalMatcher struct {
	dict    *skills.Dictionary
	stemmer *stemming.Stemmer
}

// NewLexicalMatcher builds a matcher over the given dictionary. The stemmer
// skip set is seeded with the dictionary terms so known skills are never
// matched through a stem collision.
func NewLexicalMatcher(dict *skills.Dictionary) *LexicalMatcher {
	return &LexicalMatcher{
		dict:    dict,
		stemmer: stemming.New(dict.Terms()),
	}
}

// Match classifies every keyword as found or missing in the resume text.
func (m *LexicalMatcher) Match(resumeText string, keywords []types.Keyword) *types.ScanResult {
	normalized := synonyms.ApplyAll(extraction.NormalizeText(resumeText))
	tokens := tokenize(normalized)

	// Stemmed tokens are computed lazily: many scans never need the
	// fallback pass.
	var stemmedTokens []string

	matched := make([]types.KeywordResult, 0, len(keywords))
	missing := make([]types.KeywordResult, 0)

	for _, kw := range keywords {
		count := m.countKeyword(kw, tokens)
		if count == 0 && !m.dict.Contains(kw.Phrase) {
			if stemmedTokens == nil {
				stemmedTokens = stemAll(m.stemmer, tokens)
			}
			stemmedPhrase := strings.Fields(m.stemmer.StemPhrase(kw.Phrase))
			count = countOccurrences(stemmedTokens, stemmedPhrase)
		}

		result := types.KeywordResult{
			Keyword:  kw.Phrase,
			Found:    count > 0,
			Count:    count,
			Category: kw.Category,
		}
		if result.Found {
			matched = append(matched, result)
		} else {
			result.SuggestedPlacement = SuggestPlacement(kw.Phrase)
			missing = append(missing, result)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Count > matched[j].Count
	})

	return &types.ScanResult{
		MatchPercentage: MatchPercentage(len(matched), len(keywords)),
		TotalKeywords:   len(keywords),
		MatchedCount:    len(matched),
		MissingCount:    len(missing),
		Matched:         matched,
		Missing:         missing,
	}
}

// countKeyword runs the exact pass and, on a miss, the synonym pass.
func (m *LexicalMatcher) countKeyword(kw types.Keyword, tokens []string) int {
	phrase := strings.Fields(strings.ToLower(kw.Phrase))
	if count := countOccurrences(tokens, phrase); count > 0 {
		return count
	}
	canonical := make([]string, len(phrase))
	changed := false
	for i, w := range phrase {
		canonical[i] = synonyms.NormalizeToken(w)
		if canonical[i] != w {
			changed = true
		}
	}
	if !changed {
		return 0
	}
	return countOccurrences(tokens, canonical)
}

// MatchPercentage rounds matched/total to a whole percentage.
func MatchPercentage(matched, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(matched) / float64(total) * 100))
}

// countOccurrences counts word-boundary occurrences of phrase (as a token
// sequence) within tokens.
func countOccurrences(tokens, phrase []string) int {
	if len(phrase) == 0 || len(tokens) < len(phrase) {
		return 0
	}
	count := 0
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, w := range phrase {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}

func stemAll(s *stemming.Stemmer, tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = s.Stem(t)
	}
	return out
}

// tokenize splits normalized text into word tokens, preserving technical
// punctuation (c++, c#, .net, node.js, ci/cd) while trimming sentence
// punctuation from the edges.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := trimToken(f)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// trimToken strips punctuation from token edges. Leading dots survive
// (".net"); trailing '+' and '#' survive ("c++", "c#").
func trimToken(tok string) string {
	tok = strings.TrimLeftFunc(tok, func(r rune) bool {
		return !isTokenRune(r) && r != '.'
	})
	return strings.TrimRightFunc(tok, func(r rune) bool {
		return !isTokenRune(r) && r != '+' && r != '#'
	})
}

func isTokenRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
}
