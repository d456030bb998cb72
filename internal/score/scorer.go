// Package score derives an informational compliance index from a checking
// report. The score never changes which rules fire or how sentences are
// corrected.
package score

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ste-tools/stecheck/internal/model"
)

// Scorer calculates the compliance index and generates per-rule signals.
type Scorer struct {
	ruleNames map[int]string
}

// NewScorer creates a scorer with the rule-number → name mapping used in
// signal descriptions.
func NewScorer(ruleNames map[int]string) *Scorer {
	return &Scorer{ruleNames: ruleNames}
}

// Calculate scores one report: the share of violation-free sentences scaled
// to 0-100, with a penalty for sentences flagged for manual revision.
func (s *Scorer) Calculate(sentences int, violations []model.Violation) model.Score {
	if sentences == 0 {
		return model.Score{
			Index:      100,
			Confidence: "low",
			Signals: []model.Signal{{
				Severity:    model.SeverityWarning,
				Description: "No sentences found",
			}},
		}
	}

	clean := sentences - len(violations)
	index := int(math.Round(float64(clean) / float64(sentences) * 100))

	var signals []model.Signal

	// Per-rule violation counts, in rule order.
	counts := make(map[int]int)
	for _, v := range violations {
		counts[v.RuleNumber]++
	}
	var ruleNumbers []int
	for n := range counts {
		ruleNumbers = append(ruleNumbers, n)
	}
	sort.Ints(ruleNumbers)

	for _, n := range ruleNumbers {
		severity := model.SeverityInfo
		if counts[n] > sentences/2 {
			severity = model.SeverityWarning
		}
		signals = append(signals, model.Signal{
			Rule:        n,
			Severity:    severity,
			Description: fmt.Sprintf("Rule %d (%s) violated in %d of %d sentences", n, s.ruleNames[n], counts[n], sentences),
			Count:       counts[n],
		})
	}

	// Sentences the pipeline could not auto-fix need a human pass. The
	// original is the raw segmented sentence while the corrected text is
	// terminator-normalized, so compare normalized forms.
	manual := 0
	for _, v := range violations {
		if v.Corrected == terminated(v.Original) {
			manual++
		}
	}
	if manual > 0 {
		index -= 5 * manual
		if index < 0 {
			index = 0
		}
		signals = append(signals, model.Signal{
			Severity:    model.SeverityCritical,
			Description: fmt.Sprintf("%d sentences need manual revision (no automatic correction available)", manual),
			Count:       manual,
		})
	}

	return model.Score{
		Index:      index,
		Confidence: confidence(sentences),
		Signals:    signals,
	}
}

// terminated mirrors the checker's terminator normalization.
func terminated(sentence string) string {
	s := strings.TrimSpace(sentence)
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

func confidence(sentences int) string {
	switch {
	case sentences < 5:
		return "low"
	case sentences < 20:
		return "medium"
	default:
		return "high"
	}
}
