package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ste-tools/stecheck/internal/model"
)

const bannerWidth = 80

// Renderer renders checking reports as text, JSON, and Markdown.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderText writes the human-readable report: per violation a 1-based
// index with the original sentence, the semicolon-joined issues, and the
// corrected sentence, then a trailing summary line. A report with zero
// violations gets a success banner instead.
func (r *Renderer) RenderText(w io.Writer, report *model.Report) {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "RULE CHECKER RESULTS")
	fmt.Fprintln(w, banner)

	if len(report.Violations) == 0 {
		fmt.Fprintln(w, "✅ No rule violations found! All sentences comply with the rules.")
		return
	}

	for i, v := range report.Violations {
		fmt.Fprintf(w, "\n%d. ORIGINAL: %s\n", i+1, v.Original)
		fmt.Fprintf(w, "   ISSUES: %s\n", v.Explanation)
		fmt.Fprintf(w, "   CORRECTED: %s\n", v.Corrected)
	}

	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintf(w, "SUMMARY: Found %d sentences with rule violations\n", len(report.Violations))
}

// RenderJSON writes the report to a JSON file.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as a Markdown file.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	b.WriteString("# Technical Writing Report\n\n")
	b.WriteString(fmt.Sprintf("- **Source**: %s\n", report.Source))
	b.WriteString(fmt.Sprintf("- **Checked**: %s\n", report.CheckedAt.Format("2006-01-02 15:04:05 UTC")))
	b.WriteString(fmt.Sprintf("- **Sentences**: %d\n", report.Sentences))
	b.WriteString(fmt.Sprintf("- **Compliance index**: %d/100 (%s confidence)\n\n", report.Score.Index, report.Score.Confidence))

	if len(report.Violations) == 0 {
		b.WriteString("No rule violations found.\n")
	} else {
		b.WriteString("## Violations\n\n")
		for i, v := range report.Violations {
			b.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, v.RuleName))
			b.WriteString(fmt.Sprintf("- **Original**: %s\n", v.Original))
			b.WriteString(fmt.Sprintf("- **Issues**: %s\n", v.Explanation))
			b.WriteString(fmt.Sprintf("- **Corrected**: %s\n\n", v.Corrected))
		}
	}

	if len(report.Score.Signals) > 0 {
		b.WriteString("## Signals\n\n")
		for _, s := range report.Score.Signals {
			b.WriteString(fmt.Sprintf("- `%s` %s\n", s.Severity, s.Description))
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by stecheck.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderLLMMarkdown writes a pre-rendered LLM summary document.
func (r *Renderer) RenderLLMMarkdown(markdown, path string) error {
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("write LLM summary: %w", err)
	}
	return nil
}
