package rules

import (
	"regexp"
	"strings"

	"github.com/ste-tools/stecheck/internal/model"
)

var (
	// "X can be VERBed" — checked first.
	reCanBe = regexp.MustCompile(`(?i)(.+?)\s+can\s+be\s+(\w+)`)

	// "X are/is to be VERBed [rest]".
	reToBe = regexp.MustCompile(`(?i)^(.+?)\s+(?:are|is)\s+to\s+be\s+(\w+)(.*)`)
)

// Imperative implements rule 4: rewrite "can be VERBed" and "are/is to be
// VERBed" constructions into the imperative mood. The past participle is
// mapped through a closed lookup table; participles outside the table fall
// back to naive capitalization. Only the first matching template applies.
type Imperative struct {
	forms map[string]string
}

// NewImperative creates the rule 4 evaluator with the participle table.
func NewImperative(forms map[string]string) *Imperative {
	return &Imperative{forms: forms}
}

// Number returns 4.
func (r *Imperative) Number() int { return 4 }

// Name returns the rule name.
func (r *Imperative) Name() string { return "imperative mood" }

// Check applies the templates in fixed order.
func (r *Imperative) Check(sentence string) model.Outcome {
	if m := reCanBe.FindStringSubmatch(sentence); m != nil {
		subject := strings.TrimSpace(m[1])
		corrected := r.imperativeForm(m[2]) + " " + strings.ToLower(subject) + "."
		return model.Outcome{
			Fired:       true,
			Corrected:   corrected,
			Explanation: "Converted to imperative form",
		}
	}

	if m := reToBe.FindStringSubmatch(sentence); m != nil {
		subject := strings.TrimSpace(m[1])
		rest := m[3]
		corrected := r.imperativeForm(m[2]) + " " + strings.ToLower(subject) + rest + "."
		return model.Outcome{
			Fired:       true,
			Corrected:   corrected,
			Explanation: "Converted to imperative form",
		}
	}

	return model.NoMatch(sentence)
}

func (r *Imperative) imperativeForm(participle string) string {
	if imp, ok := r.forms[strings.ToLower(participle)]; ok {
		return imp
	}
	return sentenceCase(participle)
}
