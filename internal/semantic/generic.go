package semantic

// genericPhrases are vacuous posting boilerplate. Candidates embedding too
// close to any of these are dropped before clustering: they inflate the
// keyword list without telling the candidate anything actionable.
var genericPhrases = []string{
	"strong communication skills teamwork",
	"team player with a positive attitude",
	"fast paced dynamic environment",
	"excellent written and verbal communication",
	"self starter who works independently",
	"passionate about technology and learning",
	"attention to detail and organizational skills",
	"competitive salary and great benefits",
}
