package rules

import (
	"fmt"
	"strings"

	"github.com/ste-tools/stecheck/internal/model"
	"github.com/ste-tools/stecheck/internal/nlp"
)

// SingleInstruction implements rule 3: a coordinating "and" joining two
// clauses that both contain an instruction-vocabulary verb is split into two
// sentences labeled "A." and "B.". Conjunctions joining non-instructional
// content are left untouched.
type SingleInstruction struct {
	annotator nlp.Annotator
	verbs     verbSet
}

// NewSingleInstruction creates the rule 3 evaluator.
func NewSingleInstruction(annotator nlp.Annotator, verbs verbSet) *SingleInstruction {
	return &SingleInstruction{annotator: annotator, verbs: verbs}
}

// Number returns 3.
func (r *SingleInstruction) Number() int { return 3 }

// Name returns the rule name.
func (r *SingleInstruction) Name() string { return "one instruction per sentence" }

// Check splits at the first qualifying conjunction. An annotation failure
// degrades to no match.
func (r *SingleInstruction) Check(sentence string) model.Outcome {
	tokens, err := r.annotator.Annotate(sentence)
	if err != nil {
		return model.NoMatch(sentence)
	}

	for i, tok := range tokens {
		if !tok.IsConjunction() || strings.ToLower(tok.Text) != "and" {
			continue
		}
		if !r.hasInstructionVerb(tokens[:i]) || !r.hasInstructionVerb(tokens[i+1:]) {
			continue
		}

		first := strings.TrimSpace(joinTokens(tokens[:i]))
		second := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(joinTokens(tokens[i+1:])), "."))
		second = capitalizeFirst(second)

		return model.Outcome{
			Fired:       true,
			Corrected:   fmt.Sprintf("A. %s. B. %s.", first, second),
			Explanation: "Split multiple instructions into separate sentences",
		}
	}

	return model.NoMatch(sentence)
}

// hasInstructionVerb reports whether any verb-tagged token matches the
// instruction vocabulary. The tag requirement keeps noun usages of
// vocabulary words ("the TEST switch", "the check valve") from qualifying
// a clause. Matching is by surface form: the vocabulary is injected
// configuration, so inflected forms can be added there when needed.
func (r *SingleInstruction) hasInstructionVerb(tokens []nlp.Token) bool {
	for _, t := range tokens {
		if t.IsVerb() && r.verbs.contains(t.Text) {
			return true
		}
	}
	return false
}
