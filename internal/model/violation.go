package model

import "fmt"

// Outcome is the result of running a single rule against a sentence.
// When Fired is false, Corrected equals the input and Explanation is empty.
type Outcome struct {
	Fired       bool
	Corrected   string
	Explanation string
}

// NoMatch returns the outcome for a rule whose pattern did not apply.
func NoMatch(sentence string) Outcome {
	return Outcome{Fired: false, Corrected: sentence}
}

// AppliedRule records one rule that fired during a sentence's pipeline pass.
type AppliedRule struct {
	Number      int    `json:"number"`      // Rule number (1..5)
	Explanation string `json:"explanation"` // Human-readable description of the correction
}

// Violation is the per-sentence record produced when at least one rule fired.
// It is never mutated after creation.
type Violation struct {
	RuleNumber  int    `json:"rule_number"` // Lowest rule number that fired
	RuleName    string `json:"rule_name"`   // "Rule N", or "Multiple Rules" when more than one fired
	Rules       []int  `json:"rules"`       // Every rule that fired, in firing order
	Original    string `json:"original_sentence"`
	Corrected   string `json:"corrected_sentence"`
	Explanation string `json:"explanation"` // Semicolon-joined rule explanations
}

// NewViolation builds a Violation from the applied rules of one pass.
// Applied must be non-empty and in firing order (1→5).
func NewViolation(original, corrected string, applied []AppliedRule) Violation {
	min := applied[0].Number
	explanation := ""
	numbers := make([]int, len(applied))
	for i, a := range applied {
		if a.Number < min {
			min = a.Number
		}
		if i > 0 {
			explanation += "; "
		}
		explanation += a.Explanation
		numbers[i] = a.Number
	}

	name := fmt.Sprintf("Rule %d", applied[0].Number)
	if len(applied) > 1 {
		name = "Multiple Rules"
	}

	return Violation{
		RuleNumber:  min,
		RuleName:    name,
		Rules:       numbers,
		Original:    original,
		Corrected:   corrected,
		Explanation: explanation,
	}
}
