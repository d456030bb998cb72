package model

import "time"

// Report is the complete result of checking one body of text.
type Report struct {
	Source    string     `json:"source"` // File path, URL, or "text"/"interactive"
	SourceURL string     `json:"source_url,omitempty"`
	CheckedAt time.Time  `json:"checked_at"`
	FetchMeta *FetchMeta `json:"fetch_meta,omitempty"` // Present only for scanned URLs

	Sentences  int         `json:"sentences"` // Total sentences examined
	Violations []Violation `json:"violations"`

	Score Score `json:"score"`

	LLM *LLMSummary `json:"llm,omitempty"` // Optional LLM summary (never affects checking)
}

// FetchMeta contains HTTP metadata from fetching a scanned page.
type FetchMeta struct {
	StatusCode   int    `json:"status_code"`
	ContentType  string `json:"content_type,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	ETag         string `json:"etag,omitempty"`
}

// Score is the informational compliance breakdown for a report.
// It never changes which rules fire or how sentences are corrected.
type Score struct {
	Index      int      `json:"index"`      // Overall compliance index (0-100)
	Confidence string   `json:"confidence"` // "low", "medium", "high" (sample size)
	Signals    []Signal `json:"signals"`    // Per-rule diagnostic signals
}

// Signal is one diagnostic observation with transparent counts.
type Signal struct {
	Rule        int            `json:"rule,omitempty"` // Rule number, 0 for aggregate signals
	Severity    SignalSeverity `json:"severity"`
	Description string         `json:"description"`
	Count       int            `json:"count"`
}

// SignalSeverity indicates the importance of the signal.
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)

// LLMSummary contains the optional LLM-generated report summary.
// It is clearly separated from checking and never affects it.
type LLMSummary struct {
	Enabled    bool     `json:"enabled"`
	Provider   string   `json:"provider,omitempty"` // openai, ollama
	Model      string   `json:"model,omitempty"`
	StrictMode bool     `json:"strict_mode"` // Whether rule-citation enforcement was enabled
	SummaryMD  string   `json:"summary_md,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}
