package rules

import (
	"fmt"
	"strings"

	"github.com/ste-tools/stecheck/internal/model"
	"github.com/ste-tools/stecheck/internal/nlp"
)

// Length implements rule 5: sentences over the word limit are split once at
// a coordinating "and"/"but" far enough from both sentence boundaries. When
// no qualifying conjunction exists the rule still fires but returns the
// sentence unchanged, flagging it for manual revision — a detected-but-not-
// auto-fixable outcome, distinct from "no violation".
type Length struct {
	annotator nlp.Annotator
	maxWords  int
	minIndex  int
	tailGuard int
}

// NewLength creates the rule 5 evaluator.
func NewLength(annotator nlp.Annotator, maxWords, minIndex, tailGuard int) *Length {
	return &Length{
		annotator: annotator,
		maxWords:  maxWords,
		minIndex:  minIndex,
		tailGuard: tailGuard,
	}
}

// Number returns 5.
func (r *Length) Number() int { return 5 }

// Name returns the rule name.
func (r *Length) Name() string { return "sentence length" }

// Check counts whitespace-delimited words; conjunction positions come from
// the annotated tokens.
func (r *Length) Check(sentence string) model.Outcome {
	words := strings.Fields(sentence)
	if len(words) <= r.maxWords {
		return model.NoMatch(sentence)
	}

	tokens, err := r.annotator.Annotate(sentence)
	if err == nil {
		for i, tok := range tokens {
			lower := strings.ToLower(tok.Text)
			if !tok.IsConjunction() || (lower != "and" && lower != "but") {
				continue
			}
			// Guard against degenerate near-boundary splits that would
			// produce a trivial fragment.
			if i <= r.minIndex || i >= len(tokens)-r.tailGuard {
				continue
			}

			first := strings.TrimSpace(joinTokens(tokens[:i]))
			if !strings.HasSuffix(first, ".") {
				first += "."
			}
			second := capitalizeFirst(strings.TrimSpace(joinTokens(tokens[i+1:])))
			if !strings.HasSuffix(second, ".") {
				second += "."
			}

			return model.Outcome{
				Fired:       true,
				Corrected:   first + " " + second,
				Explanation: fmt.Sprintf("Split long sentence (%d words) into shorter sentences", len(words)),
			}
		}
	}

	return model.Outcome{
		Fired:       true,
		Corrected:   sentence,
		Explanation: fmt.Sprintf("Sentence exceeds %d-word limit (%d words) - manual revision needed", r.maxWords, len(words)),
	}
}
