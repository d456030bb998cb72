package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/ste-tools/stecheck/internal/model"
)

// scriptedProvider returns a fixed summary, for citation-enforcement tests.
type scriptedProvider struct {
	summary string
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) IsAvailable(ctx context.Context) bool { return true }

func (p *scriptedProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	return &SummarizeResponse{
		Summary:    p.summary,
		CitedRules: extractRuleCitations(p.summary),
		Model:      "scripted-1",
	}, nil
}

func testReport() model.Report {
	return model.Report{
		Source:    "docs/manual.txt",
		Sentences: 5,
		Violations: []model.Violation{
			{RuleNumber: 1, RuleName: "Rule 1", Rules: []int{1}},
			{RuleNumber: 4, RuleName: "Rule 4", Rules: []int{4}},
		},
	}
}

func TestGenerateSummaryAcceptsValidCitations(t *testing.T) {
	s := &Summarizer{
		provider: &scriptedProvider{summary: "Rule 1 and Rule 4 fired; the text is otherwise compliant."},
		config:   Config{StrictMode: true},
	}

	summary, err := s.GenerateSummary(context.Background(), testReport())
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if summary == nil || !summary.Enabled {
		t.Fatal("summary missing or disabled")
	}
	if summary.Provider != "scripted" || summary.Model != "scripted-1" {
		t.Errorf("summary metadata = %q/%q", summary.Provider, summary.Model)
	}
	if !summary.StrictMode {
		t.Error("StrictMode not recorded on the summary")
	}
}

func TestGenerateSummaryRejectsCitationLeak(t *testing.T) {
	s := &Summarizer{
		provider: &scriptedProvider{summary: "Rule 1 fired, and Rule 3 shows multiple instructions per sentence."},
		config:   Config{StrictMode: true},
	}

	_, err := s.GenerateSummary(context.Background(), testReport())
	if err == nil {
		t.Fatal("GenerateSummary accepted a summary citing a rule that did not fire")
	}
	if !strings.Contains(err.Error(), "Rule 3") {
		t.Errorf("error = %v, want the leaked rule named", err)
	}
}

func TestGenerateSummaryLenientMode(t *testing.T) {
	s := &Summarizer{
		provider: &scriptedProvider{summary: "Rule 3 is cited even though it did not fire."},
		config:   Config{StrictMode: false},
	}

	summary, err := s.GenerateSummary(context.Background(), testReport())
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if summary == nil {
		t.Fatal("summary missing")
	}
}

func TestGenerateSummaryDisabled(t *testing.T) {
	s, err := NewSummarizer(Config{})
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	if s.IsEnabled() {
		t.Error("IsEnabled() = true for an empty provider")
	}

	summary, err := s.GenerateSummary(context.Background(), testReport())
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if summary != nil {
		t.Errorf("summary = %v, want nil when disabled", summary)
	}
}

func TestFiredRules(t *testing.T) {
	violations := []model.Violation{
		{Rules: []int{1, 3}},
		{Rules: []int{3, 4}},
	}

	fired := firedRules(violations)
	want := map[int]bool{1: true, 3: true, 4: true}
	if len(fired) != len(want) {
		t.Fatalf("firedRules = %v, want 3 distinct rules", fired)
	}
	for _, n := range fired {
		if !want[n] {
			t.Errorf("unexpected rule %d in %v", n, fired)
		}
	}
}

func TestRenderSeparateMarkdown(t *testing.T) {
	md := RenderSeparateMarkdown(&model.LLMSummary{
		Enabled:   true,
		Provider:  "ollama",
		Model:     "llama3.1",
		SummaryMD: "The text mostly complies.",
		Warnings:  []string{"summary truncated"},
	})

	for _, want := range []string{"# LLM Summary", "ollama/llama3.1", "The text mostly complies.", "summary truncated"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	if RenderSeparateMarkdown(nil) != "" {
		t.Error("RenderSeparateMarkdown(nil) is non-empty")
	}
}
