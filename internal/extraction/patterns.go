package extraction

import "regexp"

// All patterns are compiled once at package init; extraction runs none of
// regexp.MustCompile per call.

// requirementsHeaderPattern locates the start of a requirements-style
// section. When present, extraction is restricted to the text from the
// header onward so company-boilerplate paragraphs do not pollute counts.
var requirementsHeaderPattern = regexp.MustCompile(
	`(?im)^\s*(?:minimum +|basic +|preferred +|required +)?` +
		`(?:requirements?|qualifications?|what you.ll need|what you bring|` +
		`what we.re looking for|must[- ]haves?|skills? (?:&|and) experience|` +
		`about you|your profile)\b`)

// sentencePattern splits text into sentence-like units. Newlines and
// semicolons end a unit too, since postings are heavy on bullet lists.
var sentencePattern = regexp.MustCompile(`[.!?;\n]+`)

// wordPattern matches a plain word token, allowing internal hyphens and
// apostrophes ("problem-solving", "bachelor's"). Technical tokens containing
// +, #, / or . are extracted earlier by dedicated patterns.
var wordPattern = regexp.MustCompile(`[a-z0-9]+(?:[-'][a-z0-9]+)*`)

// slashCompoundPattern catches compounds like ci/cd, tcp/ip, ui/ux that
// generic tokenization would split at the slash.
var slashCompoundPattern = regexp.MustCompile(`\b[a-z]{2,}/[a-z]{2,}\b`)

// technicalToken pairs a punctuation-bearing token with the pattern that
// finds it. The pattern guards the left edge itself; QuoteMeta alone is not
// enough because \b does not work next to '+' or '#'. The right edge is
// checked in code so adjacent occurrences are not swallowed.
type technicalToken struct {
	token   string
	pattern *regexp.Regexp
}

var technicalTokens = buildTechnicalTokens(
	"c++", "c#", "f#", ".net", "asp.net", "node.js", "next.js",
	"objective-c",
)

func buildTechnicalTokens(tokens ...string) []technicalToken {
	out := make([]technicalToken, 0, len(tokens))
	for _, t := range tokens {
		re := regexp.MustCompile(`(?:^|[^a-z0-9.+#])` + regexp.QuoteMeta(t))
		out = append(out, technicalToken{token: t, pattern: re})
	}
	return out
}

// isTechBoundary reports whether b can terminate a technical token. A plain
// '.' is a boundary (sentence punctuation); dots inside tokens like node.js
// are part of the token literal itself.
func isTechBoundary(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return false
	case b == '+', b == '#':
		return false
	}
	return true
}
