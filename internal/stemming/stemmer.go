// Package stemming provides a conservative suffix-stripping stemmer tuned for
// job-posting vocabulary. It is deliberately not a full Porter stemmer: the
// goal is that derivational variants of the same skill word ("optimization",
// "optimizing", "optimized") collapse to one stem without conflating
// unrelated technical terms.
package stemming

import "strings"

// minWordLength is the shortest word the stemmer will touch. Short words
// ("go", "aws", "data") are almost never inflected forms.
const minWordLength = 5

// rule strips suffix when the remaining stem has at least minStem characters,
// appending replacement to the stem.
type rule struct {
	suffix      string
	minStem     int
	replacement string
}

// rules are ordered longest-suffix first; within a pass the first rule whose
// suffix and length gate both match is the only one applied.
var rules = []rule{
	{"ization", 3, ""},
	{"isation", 3, ""},
	{"ational", 3, "ate"},
	{"ments", 4, ""},
	{"ating", 4, ""},
	{"izing", 4, ""},
	{"ized", 4, ""},
	{"ation", 4, ""},
	{"ated", 4, ""},
	{"ment", 4, ""},
	{"tion", 4, ""},
	{"sion", 4, ""},
	{"ying", 3, "y"},
	{"ies", 3, "y"},
	{"ing", 4, ""},
	{"ers", 4, ""},
	{"ed", 4, ""},
	{"er", 4, ""},
	{"ly", 4, ""},
	{"al", 4, ""},
	{"ive", 4, ""},
	{"es", 4, ""},
	{"s", 4, ""},
}

// Stemmer strips derivational suffixes, leaving words in the skip set
// untouched. Construct it with the set of terms that must never be stemmed
// (typically the skill dictionary); the zero value stems everything.
type Stemmer struct {
	skip map[string]struct{}
}

// New creates a Stemmer whose skip set contains the given terms.
func New(skipTerms []string) *Stemmer {
	skip := make(map[string]struct{}, len(skipTerms))
	for _, t := range skipTerms {
		skip[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return &Stemmer{skip: skip}
}

// Stem returns the stable stem of word. A word shorter than five characters
// or present in the skip set is returned unchanged. Stripping repeats until
// no rule applies, so Stem is idempotent: Stem(Stem(w)) == Stem(w).
func (s *Stemmer) Stem(word string) string {
	word = strings.ToLower(word)
	for {
		if len(word) < minWordLength {
			return word
		}
		if s != nil && s.skip != nil {
			if _, ok := s.skip[word]; ok {
				return word
			}
		}
		next := stemOnce(word)
		if next == word {
			return word
		}
		word = next
	}
}

// StemPhrase stems each whitespace-separated token independently,
// preserving order.
func (s *Stemmer) StemPhrase(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = s.Stem(w)
	}
	return strings.Join(words, " ")
}

// stemOnce applies the first matching rule, or returns word unchanged.
func stemOnce(word string) string {
	for _, r := range rules {
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		stem := word[:len(word)-len(r.suffix)]
		if len(stem) < r.minStem {
			continue
		}
		return stem + r.replacement
	}
	return word
}
