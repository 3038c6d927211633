package matching

import "regexp"

// DefaultPlacement is suggested when no rule matches the keyword text.
const DefaultPlacement = "Skills section or Experience bullet points"

// placementRule maps a keyword pattern to the resume section where the
// keyword is easiest to add credibly.
type placementRule struct {
	pattern   *regexp.Regexp
	placement string
}

// placementRules are evaluated in order; the first match wins. Patterns run
// against the normalized (lowercase) keyword text, not the resume.
var placementRules = []placementRule{
	{
		pattern:   regexp.MustCompile(`certified|certification|\b(?:cissp|cisa|cism|ccna|ccnp|pmp|cpa|csm|ceh|oscp|itil|prince2|comptia)\b`),
		placement: "Certifications section",
	},
	{
		pattern:   regexp.MustCompile(`\b(?:python|java|javascript|typescript|golang|rust|ruby|php|swift|kotlin|scala|sql|html|css|bash|perl)\b|c\+\+|c#|\.net`),
		placement: "Skills section",
	},
	{
		pattern:   regexp.MustCompile(`\b(?:react|angular|vue|django|flask|spring|rails|node\.js|next\.js|docker|kubernetes|terraform|ansible|jenkins|kafka|redis|postgresql|mysql|mongodb|elasticsearch|aws|azure|gcp|spark|airflow|tableau|pytorch|tensorflow)\b`),
		placement: "Skills section or a project bullet that shows hands-on use",
	},
	{
		pattern:   regexp.MustCompile(`\b(?:agile|scrum|kanban|devops|tdd|bdd|sre|lean|waterfall|mlops|gitops)\b|ci/cd`),
		placement: "Experience bullet points or Summary",
	},
	{
		pattern:   regexp.MustCompile(`\b(?:leadership|mentoring|mentorship|communication|collaboration|stakeholder)\b`),
		placement: "Summary or leadership-focused Experience bullets",
	},
}

// SuggestPlacement returns where an unmet keyword is best added.
func SuggestPlacement(keyword string) string {
	for _, rule := range placementRules {
		if rule.pattern.MatchString(keyword) {
			return rule.placement
		}
	}
	return DefaultPlacement
}
