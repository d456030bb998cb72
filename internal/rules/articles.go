package rules

import (
	"regexp"
	"strings"

	"github.com/ste-tools/stecheck/internal/model"
)

// articlePattern is one entry of the rule 1 whitelist. The pattern applies
// when match succeeds and guard (if any) does not.
type articlePattern struct {
	match       *regexp.Regexp
	guard       *regexp.Regexp
	replace     *regexp.Regexp
	replacement string
	explanation string
}

// Articles implements rule 1: insert a missing article or demonstrative for
// a closed set of known lexical patterns. This is a whitelist, not general
// grammatical inference: noun-phrase detection without deep parsing is
// unreliable, so the rule trades recall for precision.
type Articles struct {
	patterns []articlePattern
}

// NewArticles creates the rule 1 evaluator.
func NewArticles() *Articles {
	return &Articles{
		patterns: []articlePattern{
			{
				match:       regexp.MustCompile(`(?i)^\s*turn\s+shaft\s+assembly\b`),
				replace:     regexp.MustCompile(`(?i)^(\s*turn\s+)shaft\s+assembly`),
				replacement: "${1}the shaft assembly",
				explanation: "Added 'the' before 'shaft assembly'",
			},
			{
				match:       regexp.MustCompile(`(?i)^\s*data\s+module\s+tells`),
				guard:       regexp.MustCompile(`(?i)^\s*this\s`),
				replace:     regexp.MustCompile(`(?i)^(\s*)data\s+module`),
				replacement: "${1}This data module",
				explanation: "Added 'This' before 'data module'",
			},
			{
				// "operate the unit" does not match, so an already-articled
				// phrase is left alone.
				match:       regexp.MustCompile(`(?i)\boperate\s+unit\b`),
				replace:     regexp.MustCompile(`(?i)\boperate\s+unit\b`),
				replacement: "operate the unit",
				explanation: "Added 'the' before 'unit'",
			},
		},
	}
}

// Number returns 1.
func (r *Articles) Number() int { return 1 }

// Name returns the rule name.
func (r *Articles) Name() string { return "articles and demonstratives" }

// Check applies every matching whitelist pattern before returning.
func (r *Articles) Check(sentence string) model.Outcome {
	corrected := sentence
	var changes []string

	for _, p := range r.patterns {
		if !p.match.MatchString(corrected) {
			continue
		}
		if p.guard != nil && p.guard.MatchString(corrected) {
			continue
		}
		corrected = p.replace.ReplaceAllString(corrected, p.replacement)
		changes = append(changes, p.explanation)
	}

	if len(changes) == 0 {
		return model.NoMatch(sentence)
	}
	return model.Outcome{
		Fired:       true,
		Corrected:   corrected,
		Explanation: strings.Join(changes, "; "),
	}
}
