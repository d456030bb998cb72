package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ste-tools/stecheck/internal/model"
)

// Runner is the subset of the pipeline the batch processor needs.
type Runner interface {
	CheckFile(ctx context.Context, path string) (*model.Report, error)
	ScanURL(ctx context.Context, url string) (*model.Report, error)
}

// CheckJob checks one batch entry: a local file path or an http(s) URL.
type CheckJob struct {
	Entry   string
	Runner  Runner
	Limiter *Limiter // applied to URL entries only
}

// Execute runs the job.
func (j *CheckJob) Execute(ctx context.Context) Result {
	var report *model.Report
	var err error

	if IsURL(j.Entry) {
		if j.Limiter != nil {
			if werr := j.Limiter.Wait(ctx, j.Entry); werr != nil {
				return &CheckResult{Entry: j.Entry, Error: werr}
			}
		}
		report, err = j.Runner.ScanURL(ctx, j.Entry)
	} else {
		report, err = j.Runner.CheckFile(ctx, j.Entry)
	}

	return &CheckResult{Entry: j.Entry, Report: report, Error: err}
}

// CheckResult is the result of one batch entry.
type CheckResult struct {
	Entry  string
	Report *model.Report
	Error  error
}

// GetError returns the entry's error.
func (r *CheckResult) GetError() error {
	return r.Error
}

// BatchProcessor checks multiple entries concurrently.
type BatchProcessor struct {
	runner      Runner
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor with per-domain rate limiting
// for URL entries.
func NewBatchProcessor(runner Runner, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
		limiter:     NewLimiter(requestsPerSecond, burst),
	}
}

// ProcessEntries checks the entries with the worker pool.
func (b *BatchProcessor) ProcessEntries(ctx context.Context, entries []string) []*CheckResult {
	if len(entries) == 0 {
		return []*CheckResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, entry := range entries {
		pool.Submit(&CheckJob{
			Entry:   entry,
			Runner:  b.runner,
			Limiter: b.limiter,
		})
	}

	results := pool.Wait()

	checkResults := make([]*CheckResult, len(results))
	for i, result := range results {
		checkResults[i] = result.(*CheckResult)
	}
	return checkResults
}

// ProcessFile reads entries from a manifest file (one per line) and checks
// them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*CheckResult, error) {
	entries, err := ReadEntriesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return b.ProcessEntries(ctx, entries), nil
}

// ReadEntriesFromFile reads batch entries, skipping blanks, comments, and
// duplicates.
func ReadEntriesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var entries []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			entries = append(entries, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return entries, nil
}

// IsURL reports whether the entry is an http(s) URL rather than a path.
func IsURL(entry string) bool {
	return strings.HasPrefix(entry, "http://") || strings.HasPrefix(entry, "https://")
}
