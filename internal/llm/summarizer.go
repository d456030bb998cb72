package llm

import (
	"context"
	"fmt"

	"github.com/ste-tools/stecheck/internal/model"
)

// Summarizer wraps a provider and enforces strict rule citation.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. A nil provider
// (empty provider name) means the summarizer is disabled.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary summarizes the report. In strict mode a summary citing a
// rule that did not fire is rejected rather than attached to the report.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.Report) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	fired := firedRules(report.Violations)

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:     report,
		FiredRules: fired,
		Model:      s.config.Model,
		MaxTokens:  s.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var warnings []string
	if s.config.StrictMode {
		for _, cited := range resp.CitedRules {
			if !containsRule(fired, cited) {
				return nil, fmt.Errorf("citation leak: summary cites Rule %d, which did not fire", cited)
			}
		}
	}

	return &model.LLMSummary{
		Enabled:    true,
		Provider:   s.provider.Name(),
		Model:      resp.Model,
		StrictMode: s.config.StrictMode,
		SummaryMD:  resp.Summary,
		Warnings:   warnings,
	}, nil
}

// firedRules collects the distinct rule numbers across all violations.
func firedRules(violations []model.Violation) []int {
	seen := make(map[int]bool)
	var fired []int
	for _, v := range violations {
		for _, n := range v.Rules {
			if !seen[n] {
				seen[n] = true
				fired = append(fired, n)
			}
		}
	}
	return fired
}

// RenderSeparateMarkdown renders the summary as a standalone Markdown
// document, clearly labeled as generated content.
func RenderSeparateMarkdown(summary *model.LLMSummary) string {
	if summary == nil || !summary.Enabled {
		return ""
	}

	md := "# LLM Summary\n\n"
	md += fmt.Sprintf("> Generated by %s/%s. This summary is informational and does not affect checking.\n\n", summary.Provider, summary.Model)
	md += summary.SummaryMD + "\n"

	if len(summary.Warnings) > 0 {
		md += "\n## Warnings\n\n"
		for _, w := range summary.Warnings {
			md += "- " + w + "\n"
		}
	}

	return md
}
