// Package extraction turns raw job-description text into a frequency-ranked
// list of candidate keyword phrases, filtering stop-word, filler and
// connector noise along the way.
package extraction

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/resume-scanner/internal/skills"
	"github.com/jonathan/resume-scanner/internal/synonyms"
	"github.com/jonathan/resume-scanner/internal/types"
)

const (
	// MaxKeywords caps the extracted keyword list.
	MaxKeywords = 40
	// minPhraseFrequency is the occurrence floor for bigrams and for
	// unigrams that are neither known skills nor technical tokens.
	minPhraseFrequency = 2
	// SubsumptionRatio governs the dedup pass: a single word survives next
	// to a multi-word phrase containing it only when its standalone
	// frequency exceeds this multiple of the phrase frequency. Empirically
	// chosen; tunable, not structural.
	SubsumptionRatio = 1.5
	// minSymbolTokenLength keeps symbol-bearing unigrams ("ci/cd") that
	// occur only once, provided they are long enough to be deliberate.
	minSymbolTokenLength = 5
)

// Extractor produces ranked keyword candidates from job-description text.
type Extractor struct {
	dict           *skills.Dictionary
	phrasePatterns []phrasePattern
}

// phrasePattern is a precompiled matcher for a dictionary phrase of three or
// more words.
type phrasePattern struct {
	phrase  string
	pattern *regexp.Regexp
}

// NewExtractor builds an Extractor backed by the given skill dictionary.
func NewExtractor(dict *skills.Dictionary) *Extractor {
	e := &Extractor{dict: dict}
	for _, p := range dict.MultiWordPhrases() {
		e.phrasePatterns = append(e.phrasePatterns, phrasePattern{
			phrase:  p,
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(p) + `\b`),
		})
	}
	return e
}

// ExtractKeywords returns the final keyword list for the lexical path:
// frequency-ranked, noise-filtered, deduplicated and capped at MaxKeywords.
func (e *Extractor) ExtractKeywords(jobDescription string) []types.Keyword {
	ranked := e.Candidates(jobDescription)

	accepted := make([]types.Keyword, 0, MaxKeywords)
	for _, c := range ranked {
		if len(accepted) >= MaxKeywords {
			break
		}
		if !e.keep(c, accepted) {
			continue
		}
		accepted = append(accepted, c)
	}
	return Subsume(accepted)
}

// keep applies the rank-order selection policy from the extraction design.
func (e *Extractor) keep(c types.Keyword, accepted []types.Keyword) bool {
	switch {
	case c.WordCount >= 3:
		// Only exists because it matched a known dictionary phrase.
		return true
	case c.WordCount == 2:
		return c.Frequency >= minPhraseFrequency
	}

	// Single words: frequent, known, or visibly technical.
	if c.Frequency < minPhraseFrequency &&
		!e.dict.Contains(c.Phrase) &&
		!(strings.ContainsAny(c.Phrase, "+#/.") && len(c.Phrase) >= minSymbolTokenLength) {
		return false
	}
	// First-pass subsumption: drop a word already covered by an accepted
	// multi-word phrase.
	for _, a := range accepted {
		if a.WordCount > 1 && strings.Contains(a.Phrase, c.Phrase) {
			return false
		}
	}
	return true
}

// Subsume removes single-word keywords made redundant by multi-word phrases
// in the same list. A component word is removed when its standalone
// frequency is at most SubsumptionRatio times the phrase frequency; high
// frequency generic words survive loosely-related phrases. Multi-word
// phrases are never removed.
func Subsume(keywords []types.Keyword) []types.Keyword {
	freqs := make(map[string]int, len(keywords))
	for _, kw := range keywords {
		if kw.WordCount == 1 {
			freqs[kw.Phrase] = kw.Frequency
		}
	}

	doomed := make(map[string]bool)
	for _, kw := range keywords {
		if kw.WordCount < 2 {
			continue
		}
		for _, w := range strings.Fields(kw.Phrase) {
			f, ok := freqs[w]
			if !ok {
				continue
			}
			if float64(f) <= SubsumptionRatio*float64(kw.Frequency) {
				doomed[w] = true
			}
		}
	}

	out := keywords[:0]
	for _, kw := range keywords {
		if kw.WordCount == 1 && doomed[kw.Phrase] {
			continue
		}
		out = append(out, kw)
	}
	return out
}

// Candidates returns every candidate phrase ranked by frequency descending,
// before the lexical path's frequency thresholds are applied. The semantic
// path consumes this directly and deduplicates via embedding similarity
// instead of raw counts.
func (e *Extractor) Candidates(jobDescription string) []types.Keyword {
	counts := newCandidateSet()

	text := NormalizeText(jobDescription)
	text = synonyms.ApplyAll(text)

	// Restrict to the requirements section when one is present. The header
	// line itself is skipped so its words do not enter the counts.
	if loc := requirementsHeaderPattern.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
	}

	text = e.scanTechnicalTokens(text, counts)
	text = e.scanSlashCompounds(text, counts)
	e.scanDictionaryPhrases(text, counts)
	e.scanNGrams(text, counts)

	ranked := counts.ranked()
	for i := range ranked {
		if cat, ok := e.dict.CategoryOf(ranked[i].Phrase); ok {
			ranked[i].Category = cat
		}
	}
	return ranked
}

// scanTechnicalTokens counts punctuation-bearing tokens (c++, c#, .net,
// node.js) and blanks them out so later tokenization cannot mangle them.
func (e *Extractor) scanTechnicalTokens(text string, counts *candidateSet) string {
	buf := []byte(text)
	for _, tt := range technicalTokens {
		for _, m := range tt.pattern.FindAllStringIndex(text, -1) {
			end := m[1]
			if end < len(text) && !isTechBoundary(text[end]) {
				continue
			}
			counts.add(tt.token, 1)
			for i := end - len(tt.token); i < end; i++ {
				buf[i] = ' '
			}
		}
		text = string(buf)
	}
	return text
}

// scanSlashCompounds counts and blanks compounds like ci/cd and tcp/ip.
func (e *Extractor) scanSlashCompounds(text string, counts *candidateSet) string {
	for _, m := range slashCompoundPattern.FindAllString(text, -1) {
		counts.add(m, 1)
	}
	return slashCompoundPattern.ReplaceAllString(text, " ")
}

// scanDictionaryPhrases counts occurrences of known 3+-word phrases. The
// text is left intact; fragments the n-gram pass picks up are collapsed by
// the subsumption rules later.
func (e *Extractor) scanDictionaryPhrases(text string, counts *candidateSet) {
	for _, pp := range e.phrasePatterns {
		if n := len(pp.pattern.FindAllStringIndex(text, -1)); n > 0 {
			counts.add(pp.phrase, n)
		}
	}
}

// scanNGrams splits text into sentences and counts noise-free unigrams and
// bigrams. A bigram is dropped when either member is noise.
func (e *Extractor) scanNGrams(text string, counts *candidateSet) {
	for _, sentence := range sentencePattern.Split(text, -1) {
		tokens := wordPattern.FindAllString(sentence, -1)
		for i := range tokens {
			tokens[i] = synonyms.NormalizeToken(tokens[i])
		}
		for i, tok := range tokens {
			if !e.usableToken(tok) {
				continue
			}
			counts.add(tok, 1)
			// Identical adjacent tokens ("python python") are stutter,
			// not a phrase.
			if i+1 < len(tokens) && tokens[i+1] != tok && e.usableToken(tokens[i+1]) {
				counts.add(tok+" "+tokens[i+1], 1)
			}
		}
	}
}

// usableToken rejects noise words, bare digits and stray single letters
// that are not known skills (r and c are languages; a lone "x" is not).
func (e *Extractor) usableToken(tok string) bool {
	if tok == "" || isNoise(tok) {
		return false
	}
	if len(tok) == 1 && !e.dict.Contains(tok) {
		return false
	}
	if isNumeric(tok) {
		return false
	}
	return true
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// candidateSet accumulates phrase frequencies while remembering first-seen
// order so ties rank deterministically.
type candidateSet struct {
	counts map[string]*types.Keyword
	order  []string
}

func newCandidateSet() *candidateSet {
	return &candidateSet{counts: make(map[string]*types.Keyword)}
}

func (s *candidateSet) add(phrase string, n int) {
	if kw, ok := s.counts[phrase]; ok {
		kw.Frequency += n
		return
	}
	s.counts[phrase] = &types.Keyword{
		Phrase:    phrase,
		Frequency: n,
		WordCount: len(strings.Fields(phrase)),
	}
	s.order = append(s.order, phrase)
}

// ranked returns candidates sorted by frequency descending, first-seen order
// breaking ties.
func (s *candidateSet) ranked() []types.Keyword {
	out := make([]types.Keyword, 0, len(s.order))
	for _, p := range s.order {
		out = append(out, *s.counts[p])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frequency > out[j].Frequency
	})
	return out
}

// normalization transforms used by NormalizeText, compiled once.
var (
	diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	quoteReplacer     = strings.NewReplacer(
		"‘", "'", "’", "'", "“", `"`, "”", `"`,
		"–", "-", "—", "-", " ", " ",
	)
	spaceRunPattern   = regexp.MustCompile(`[ \t]+`)
	newlineRunPattern = regexp.MustCompile(`\n[ \t]*`)
)

// NormalizeText lowercases, folds Unicode quotes and dashes to ASCII,
// strips diacritics and collapses whitespace runs. Newlines are preserved
// because they delimit sentences in bullet-heavy postings.
func NormalizeText(text string) string {
	text = quoteReplacer.Replace(text)
	if stripped, _, err := transform.String(diacriticStripper, text); err == nil {
		text = stripped
	}
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = spaceRunPattern.ReplaceAllString(text, " ")
	text = newlineRunPattern.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
