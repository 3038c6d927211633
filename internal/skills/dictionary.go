// Package skills provides the static dictionary of known skill terms used to
// override frequency thresholds during extraction and to protect terms from
// stemming during matching.
package skills

import (
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

// hardSkills covers programming languages and core technical disciplines.
var hardSkills = []string{
	"python", "java", "javascript", "typescript", "go", "golang", "rust",
	"c", "c++", "c#", "ruby", "php", "swift", "kotlin", "scala", "r",
	"sql", "nosql", "html", "css", "bash", "perl", "matlab", "objective-c",
	"graphql", "grpc", "rest", "api", "microservices", "backend", "frontend",
	"fullstack", "distributed", "algorithms", "databases", "networking",
	"security", "cryptography", "statistics", "analytics", "etl",
	"machine learning", "deep learning", "data science", "data engineering",
	"computer vision", "nlp", "llm", ".net",
}

// softSkills are interpersonal terms job postings call out explicitly.
var softSkills = []string{
	"communication", "leadership", "collaboration", "mentoring", "mentorship",
	"teamwork", "ownership", "initiative", "adaptability", "presentation",
	"negotiation", "stakeholder", "prioritization", "problem-solving",
}

// tools covers frameworks, platforms and infrastructure products.
var tools = []string{
	"react", "angular", "vue", "node.js", "django", "flask", "fastapi",
	"spring", "rails", "laravel", "express", "next.js", "svelte",
	"docker", "kubernetes", "terraform", "ansible", "jenkins", "git",
	"github", "gitlab", "bitbucket", "jira", "confluence",
	"aws", "azure", "gcp", "linux", "unix", "windows",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "cassandra",
	"kafka", "rabbitmq", "spark", "hadoop", "airflow", "snowflake",
	"dbt", "tableau", "powerbi", "looker", "grafana", "prometheus",
	"datadog", "splunk", "pandas", "numpy", "pytorch", "tensorflow",
	"scikit-learn", "keras", "opencv", "selenium", "cypress", "jest",
	"webpack", "babel", "nginx", "apache", "figma", "salesforce", "sap",
}

// certifications includes both credential names and their common acronyms.
var certifications = []string{
	"cissp", "cisa", "cism", "ccna", "ccnp", "cpa", "pmp", "csm", "safe",
	"comptia", "ceh", "oscp", "itil", "prince2", "six sigma",
	"aws certified", "azure certified", "gcp certified",
}

// methodologies covers process and practice vocabulary.
var methodologies = []string{
	"agile", "scrum", "kanban", "waterfall", "lean", "devops", "devsecops",
	"ci/cd", "tdd", "bdd", "sre", "gitops", "mlops", "pair programming",
	"code review", "unit testing", "integration testing",
}

// multiWordPhrases are known phrases of three or more words. The extractor
// counts these directly because generic n-gram windows stop at bigrams.
var multiWordPhrases = []string{
	"amazon web services",
	"google cloud platform",
	"natural language processing",
	"large language models",
	"machine learning operations",
	"object oriented programming",
	"test driven development",
	"site reliability engineering",
	"infrastructure as code",
	"role based access control",
	"continuous integration and delivery",
	"extract transform load",
	"service level agreements",
	"agile software development",
	"cross functional teams",
}

// Dictionary is a categorized lookup of known skill terms.
type Dictionary struct {
	categories map[string]types.Category
	phrases    []string
}

// NewDictionary builds the default skill dictionary.
func NewDictionary() *Dictionary {
	d := &Dictionary{
		categories: make(map[string]types.Category),
		phrases:    multiWordPhrases,
	}
	d.register(hardSkills, types.CategoryHardSkill)
	d.register(softSkills, types.CategorySoftSkill)
	d.register(tools, types.CategoryTool)
	d.register(certifications, types.CategoryCertification)
	d.register(methodologies, types.CategoryMethodology)
	for _, p := range multiWordPhrases {
		d.categories[p] = types.CategoryHardSkill
	}
	return d
}

func (d *Dictionary) register(terms []string, cat types.Category) {
	for _, t := range terms {
		if _, exists := d.categories[t]; !exists {
			d.categories[t] = cat
		}
	}
}

// Contains reports whether term (case-insensitive) is a known skill.
func (d *Dictionary) Contains(term string) bool {
	_, ok := d.categories[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// CategoryOf returns the category for a known term.
func (d *Dictionary) CategoryOf(term string) (types.Category, bool) {
	cat, ok := d.categories[strings.ToLower(strings.TrimSpace(term))]
	return cat, ok
}

// MultiWordPhrases returns the known phrases of three or more words.
func (d *Dictionary) MultiWordPhrases() []string {
	return d.phrases
}

// Terms returns every known term. Callers use this to seed the stemmer
// skip set so dictionary entries are never altered by stemming.
func (d *Dictionary) Terms() []string {
	terms := make([]string, 0, len(d.categories))
	for t := range d.categories {
		terms = append(terms, t)
	}
	return terms
}
