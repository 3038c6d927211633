// Package synonyms maps spelling and casing variants of technical terms to a
// single canonical lowercase form so that a job description saying "NodeJS"
// and a resume saying "node.js" count as the same keyword.
package synonyms

import (
	"regexp"
	"sort"
	"strings"
)

// canonical maps variant spellings to their canonical form. Values are never
// themselves keys, so applying the normalizer to already-canonical text is a
// no-op.
var canonical = map[string]string{
	// runtimes and languages
	"nodejs":      "node.js",
	"node js":     "node.js",
	"golang":      "go",
	"java script": "javascript",
	"type script": "typescript",
	"js":          "javascript",
	"ts":          "typescript",
	"py":          "python",
	"dotnet":      ".net",
	"c plus plus": "c++",
	"csharp":      "c#",
	"c sharp":     "c#",

	// frameworks
	"reactjs":   "react",
	"react.js":  "react",
	"react js":  "react",
	"vuejs":     "vue",
	"vue.js":    "vue",
	"vue js":    "vue",
	"angularjs": "angular",
	"nextjs":    "next.js",
	"next js":   "next.js",
	"expressjs": "express",

	// infrastructure
	"k8s":             "kubernetes",
	"kube":            "kubernetes",
	"postgres":        "postgresql",
	"psql":            "postgresql",
	"mongo":           "mongodb",
	"elastic":         "elasticsearch",
	"amazon s3":       "s3",
	"ms azure":        "azure",
	"microsoft azure": "azure",

	// practices
	"ci cd":        "ci/cd",
	"ci-cd":        "ci/cd",
	"cicd":         "ci/cd",
	"ci / cd":      "ci/cd",
	"dev ops":      "devops",
	"ml ops":       "mlops",
	"sec ops":      "devsecops",
	"scrum master": "scrum",
}

// minFullTextKeyLength excludes very short keys ("js", "ts", "py") from
// full-text replacement: a word-boundary match on "js" would corrupt
// compounds like "node.js". Short keys stay valid for per-token lookups.
const minFullTextKeyLength = 3

// fullTextReplacer pairs a precompiled word-boundary pattern with its
// canonical replacement.
type fullTextReplacer struct {
	pattern     *regexp.Regexp
	replacement string
}

var fullTextReplacers = buildFullTextReplacers()

func buildFullTextReplacers() []fullTextReplacer {
	keys := make([]string, 0, len(canonical))
	for k := range canonical {
		if len(k) >= minFullTextKeyLength {
			keys = append(keys, k)
		}
	}
	// Longest keys first so "react js" wins over any shorter overlap.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	replacers := make([]fullTextReplacer, 0, len(keys))
	for _, k := range keys {
		replacers = append(replacers, fullTextReplacer{
			pattern:     regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`),
			replacement: canonical[k],
		})
	}
	return replacers
}

// ApplyAll rewrites every multi-character variant found in text to its
// canonical form. Text is lowercased first. Applying ApplyAll to its own
// output returns the output unchanged.
func ApplyAll(text string) string {
	text = strings.ToLower(text)
	for _, r := range fullTextReplacers {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}

// NormalizeToken canonicalizes a single token, including the short keys
// excluded from full-text replacement. Unknown tokens pass through.
func NormalizeToken(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if c, ok := canonical[token]; ok {
		return c
	}
	return token
}
