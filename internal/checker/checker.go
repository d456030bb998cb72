// Package checker runs the five style-rule evaluators as a fixed pipeline
// and aggregates the per-sentence results into violation records.
package checker

import (
	"fmt"
	"strings"

	"github.com/ste-tools/stecheck/internal/model"
	"github.com/ste-tools/stecheck/internal/nlp"
	"github.com/ste-tools/stecheck/internal/rules"
)

// Checker is the rule pipeline. It holds no mutable state between
// sentences: each pass is a pure function of the sentence and the fixed
// rule tables, so sentences can be checked concurrently.
type Checker struct {
	annotator nlp.Annotator
	rules     []rules.Rule
}

// New builds the pipeline with the five evaluators in order 1→5.
func New(cfg model.RulesConfig, annotator nlp.Annotator) *Checker {
	return &Checker{
		annotator: annotator,
		rules:     rules.All(cfg, annotator),
	}
}

// Rules exposes the evaluators in pipeline order.
func (c *Checker) Rules() []rules.Rule {
	return c.rules
}

// SentenceResult is the outcome of one full pipeline pass.
type SentenceResult struct {
	Original  string              // Normalized input sentence
	Corrected string              // Final corrected sentence, always terminated
	Applied   []model.AppliedRule // Rules that fired, in firing order
}

// HasViolation reports whether any rule fired during the pass.
func (r SentenceResult) HasViolation() bool {
	return len(r.Applied) > 0
}

// CheckSentence normalizes the sentence terminator, runs every rule against
// the current best-known corrected text with no early exit, then repairs
// cross-rule artifacts.
//
// Known consequence of the fixed order: a sentence split by rule 3 into
// "A. … B. …" is re-examined by rules 4 and 5 as one concatenated string,
// so their matching sees the synthetic "A."/"B." markers.
func (c *Checker) CheckSentence(sentence string) SentenceResult {
	original := strings.TrimSpace(sentence)
	if !strings.HasSuffix(original, ".") &&
		!strings.HasSuffix(original, "!") &&
		!strings.HasSuffix(original, "?") {
		original += "."
	}

	corrected := original
	var applied []model.AppliedRule

	for _, rule := range c.rules {
		outcome := rule.Check(corrected)
		if !outcome.Fired {
			continue
		}
		corrected = outcome.Corrected
		applied = append(applied, model.AppliedRule{
			Number:      rule.Number(),
			Explanation: outcome.Explanation,
		})
	}

	corrected = Cleanup(corrected)

	return SentenceResult{
		Original:  original,
		Corrected: corrected,
		Applied:   applied,
	}
}

// TextResult aggregates one ProcessText call.
type TextResult struct {
	Sentences  int
	Violations []model.Violation
}

// ProcessText segments the text and checks every sentence, collecting one
// violation record per sentence with at least one applied rule.
func (c *Checker) ProcessText(text string) (*TextResult, error) {
	sentences, err := c.annotator.Segment(text)
	if err != nil {
		return nil, fmt.Errorf("segment text: %w", err)
	}

	result := &TextResult{Sentences: len(sentences)}
	for _, sentence := range sentences {
		sr := c.CheckSentence(sentence)
		if sr.HasViolation() {
			result.Violations = append(result.Violations, model.NewViolation(sentence, sr.Corrected, sr.Applied))
		}
	}

	return result, nil
}
