// Package pipeline wires the fetcher, extractor, checker, scorer, renderer,
// and optional summarizer into the end-to-end checking flow.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ste-tools/stecheck/internal/checker"
	"github.com/ste-tools/stecheck/internal/extract"
	"github.com/ste-tools/stecheck/internal/llm"
	"github.com/ste-tools/stecheck/internal/model"
	"github.com/ste-tools/stecheck/internal/nlp"
	"github.com/ste-tools/stecheck/internal/score"
)

// Pipeline orchestrates the complete checking process.
type Pipeline struct {
	fetcher    *Fetcher
	extractor  *extract.TextExtractor
	checker    *checker.Checker
	scorer     *score.Scorer
	renderer   *Renderer
	summarizer *llm.Summarizer // nil if disabled
	config     *model.Config
}

// New creates a pipeline with the given configuration and annotator.
func New(cfg *model.Config, annotator nlp.Annotator) *Pipeline {
	chk := checker.New(cfg.Rules, annotator)

	ruleNames := make(map[int]string)
	for _, r := range chk.Rules() {
		ruleNames[r.Number()] = r.Name()
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		fetcher:    NewFetcher(cfg),
		extractor:  extract.NewTextExtractor(),
		checker:    chk,
		scorer:     score.NewScorer(ruleNames),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
		config:     cfg,
	}
}

// Checker exposes the underlying rule pipeline.
func (p *Pipeline) Checker() *checker.Checker {
	return p.checker
}

// CheckText checks a body of text and builds a report.
func (p *Pipeline) CheckText(ctx context.Context, source, text string) (*model.Report, error) {
	result, err := p.checker.ProcessText(text)
	if err != nil {
		return nil, fmt.Errorf("check text: %w", err)
	}

	report := &model.Report{
		Source:     source,
		CheckedAt:  time.Now().UTC(),
		Sentences:  result.Sentences,
		Violations: result.Violations,
		Score:      p.scorer.Calculate(result.Sentences, result.Violations),
	}

	p.attachSummary(ctx, report)
	return report, nil
}

// CheckFile reads a text file and checks it.
func (p *Pipeline) CheckFile(ctx context.Context, path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return p.CheckText(ctx, path, string(data))
}

// ScanURL fetches a web page, extracts its visible prose, and checks it.
func (p *Pipeline) ScanURL(ctx context.Context, url string) (*model.Report, error) {
	fetchResult, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	text, err := p.extractor.Extract(fetchResult.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	report, err := p.CheckText(ctx, url, text)
	if err != nil {
		return nil, err
	}

	report.SourceURL = fetchResult.FinalURL
	report.FetchMeta = &fetchResult.Meta
	return report, nil
}

// attachSummary generates the optional LLM summary after scoring. A failed
// summary never fails the check.
func (p *Pipeline) attachSummary(ctx context.Context, report *model.Report) {
	if p.summarizer == nil || !p.summarizer.IsEnabled() {
		return
	}

	summary, err := p.summarizer.GenerateSummary(ctx, *report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		return
	}
	report.LLM = summary
}

// RenderReport renders the report to stdout and the optional file outputs.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	p.renderer.RenderText(os.Stdout, report)

	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if report.LLM != nil && report.LLM.Enabled && mdPath != "" {
		llmPath := strings.TrimSuffix(mdPath, ".md") + ".llm.md"
		if err := p.renderer.RenderLLMMarkdown(llm.RenderSeparateMarkdown(report.LLM), llmPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write LLM summary: %v\n", err)
		} else if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote LLM summary: %s\n", llmPath)
		}
	}

	return nil
}
