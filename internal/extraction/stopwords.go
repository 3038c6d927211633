package extraction

// Noise vocabulary is held in explicit sets rather than regex alternations so
// membership checks stay O(1) and the lists are easy to audit.

// stopWords are generic English function words.
var stopWords = newSet(
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "when",
	"at", "by", "for", "in", "of", "on", "to", "up", "as", "is", "are",
	"was", "were", "be", "been", "being", "am", "do", "does", "did",
	"have", "has", "had", "will", "would", "should", "could", "can",
	"may", "might", "must", "shall", "this", "that", "these", "those",
	"it", "its", "we", "our", "you", "your", "they", "their", "them",
	"he", "she", "his", "her", "i", "me", "my", "us", "what", "which",
	"who", "whom", "how", "why", "where", "not", "no", "nor", "so",
	"too", "very", "just", "than", "there", "here", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "such", "only",
	"own", "same", "about", "after", "before", "between", "into",
	"through", "during", "above", "below", "from", "out", "off", "over",
	"under", "again", "further", "once", "per", "also", "etc",
)

// fillerWords are job-posting boilerplate: words that appear in nearly every
// posting regardless of role and carry no matching signal.
var fillerWords = newSet(
	"experience", "experienced", "years", "year", "work", "working",
	"works", "job", "role", "position", "team", "teams", "company",
	"candidate", "candidates", "applicant", "opportunity", "opportunities",
	"ability", "abilities", "skill", "skilled",
	"strong", "excellent", "great", "good", "solid", "proven", "deep",
	"required", "requirement", "requirements", "require", "requires",
	"preferred", "prefer", "plus", "bonus", "nice", "must", "ideal",
	"ideally", "looking", "seeking", "join", "hiring", "hire",
	"responsibilities", "responsibility", "responsible", "duties",
	"qualifications", "qualification", "qualified", "degree", "bachelor",
	"bachelors", "master", "masters", "equivalent", "related", "relevant",
	"field", "minimum", "least", "salary", "benefits", "compensation",
	"offer", "offers", "perks", "employee", "employees", "employer",
	"applicants", "apply", "application", "day", "days", "week", "new",
	"help", "make", "made", "making", "well", "including", "include",
	"includes", "etc", "within", "highly", "motivated", "passionate",
	"passion", "environment", "culture", "mission", "value", "values",
	"successful", "success", "growing", "growth", "fast", "paced",
	"dynamic", "exciting", "world", "class", "best", "top",
)

// connectorWords glue phrases together; a bigram containing one is noise.
var connectorWords = newSet(
	"with", "using", "use", "used", "uses", "via", "across", "among",
	"along", "towards", "toward", "upon", "onto", "like", "such",
	"while", "whilst", "whether", "either", "neither", "because",
	"since", "until", "unless", "although", "though", "however",
	"therefore", "moreover", "furthermore", "additionally", "and/or",
)

func newSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// isNoise reports whether a token is a stop word, filler word or connector.
func isNoise(token string) bool {
	if _, ok := stopWords[token]; ok {
		return true
	}
	if _, ok := fillerWords[token]; ok {
		return true
	}
	_, ok := connectorWords[token]
	return ok
}
