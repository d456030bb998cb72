// Package llm provides the optional report summarizer. Summaries are
// generated after checking completes and never affect which rules fire.
package llm

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/ste-tools/stecheck/internal/model"
)

// Provider is one LLM backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize generates a plain-language summary of a checking report.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest is the input for report summarization.
type SummarizeRequest struct {
	// Report is the checking report to summarize.
	Report model.Report

	// FiredRules is the strict allowlist of rule numbers the summary may
	// cite. A summary citing any other rule is rejected in strict mode.
	FiredRules []int

	// Prompt overrides the default prompt when non-empty.
	Prompt string

	// Model selects a provider-specific model.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// SummarizeResponse is the provider output.
type SummarizeResponse struct {
	Summary    string
	CitedRules []int // Rule numbers the summary mentions, for verification
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	Provider   string // "openai", "ollama", "" (disabled)
	Model      string
	APIKey     string
	BaseURL    string
	Timeout    int // seconds
	MaxTokens  int
	StrictMode bool
}

// DefaultConfig returns the summarizer defaults (disabled).
func DefaultConfig() Config {
	return Config{
		Timeout:    30,
		MaxTokens:  1000,
		StrictMode: true,
	}
}

// BuildPrompt constructs the default summarization prompt.
func BuildPrompt(report model.Report, firedRules []int) string {
	prompt := fmt.Sprintf(`You are summarizing a Simplified Technical English checking report.

RULES:
1. Only discuss style rules from this list of rules that actually fired: %s
2. Do not invent violations or cite rules outside that list.
3. Describe the corrections, do not re-correct the text yourself.

Report:
- Source: %s
- Sentences checked: %d
- Sentences with violations: %d
- Compliance index: %d/100

Violations:
`, formatRuleList(firedRules), report.Source, report.Sentences, len(report.Violations), report.Score.Index)

	for i, v := range report.Violations {
		if i >= 10 {
			prompt += fmt.Sprintf("... and %d more\n", len(report.Violations)-10)
			break
		}
		prompt += fmt.Sprintf("- %s: %s\n", v.RuleName, v.Explanation)
	}

	prompt += "\nProvide a 3-4 sentence summary of the writing quality and the most common problems."
	return prompt
}

func formatRuleList(rules []int) string {
	if len(rules) == 0 {
		return "(none fired)"
	}
	result := ""
	for i, n := range rules {
		if i > 0 {
			result += ", "
		}
		result += "Rule " + strconv.Itoa(n)
	}
	return result
}

var reRuleCitation = regexp.MustCompile(`\bRule\s+([1-5])\b`)

// extractRuleCitations finds the rule numbers a summary mentions.
func extractRuleCitations(text string) []int {
	matches := reRuleCitation.FindAllStringSubmatch(text, -1)

	seen := make(map[int]bool)
	var cited []int
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil || seen[n] {
			continue
		}
		seen[n] = true
		cited = append(cited, n)
	}
	return cited
}

func containsRule(rules []int, n int) bool {
	for _, r := range rules {
		if r == n {
			return true
		}
	}
	return false
}
