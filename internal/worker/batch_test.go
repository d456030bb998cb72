package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/ste-tools/stecheck/internal/model"
)

// fakeRunner records which entries went down the file path and which were
// scanned as URLs.
type fakeRunner struct {
	mu    sync.Mutex
	files []string
	urls  []string
}

func (r *fakeRunner) CheckFile(ctx context.Context, path string) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files = append(r.files, path)
	if filepath.Base(path) == "broken.txt" {
		return nil, errors.New("read file: no such file")
	}
	return &model.Report{Source: path}, nil
}

func (r *fakeRunner) ScanURL(ctx context.Context, url string) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
	return &model.Report{Source: url, SourceURL: url}, nil
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		entry string
		want  bool
	}{
		{"https://example.com/manual", true},
		{"http://example.com", true},
		{"docs/manual.txt", false},
		{"/abs/path.txt", false},
		{"ftp://example.com/file", false},
	}
	for _, tt := range tests {
		if got := IsURL(tt.entry); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.entry, got, tt.want)
		}
	}
}

func TestReadEntriesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.txt")
	content := `# manifest
docs/a.txt

https://example.com/manual
docs/a.txt
  docs/b.txt
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadEntriesFromFile(path)
	if err != nil {
		t.Fatalf("ReadEntriesFromFile: %v", err)
	}

	want := []string{"docs/a.txt", "https://example.com/manual", "docs/b.txt"}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

func TestReadEntriesFromFileMissing(t *testing.T) {
	if _, err := ReadEntriesFromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("ReadEntriesFromFile returned nil error for a missing file")
	}
}

func TestProcessEntriesRoutesByKind(t *testing.T) {
	runner := &fakeRunner{}
	b := NewBatchProcessor(runner, 3, 100, 10)

	entries := []string{
		"docs/a.txt",
		"https://example.com/manual",
		"docs/broken.txt",
	}

	results := b.ProcessEntries(context.Background(), entries)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if len(runner.files) != 2 {
		t.Errorf("CheckFile called for %v, want 2 entries", runner.files)
	}
	if len(runner.urls) != 1 || runner.urls[0] != "https://example.com/manual" {
		t.Errorf("ScanURL called for %v", runner.urls)
	}

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
			if r.Entry != "docs/broken.txt" {
				t.Errorf("unexpected failed entry %q", r.Entry)
			}
		}
	}
	if failures != 1 {
		t.Errorf("got %d failures, want 1", failures)
	}
}

func TestProcessEntriesEmpty(t *testing.T) {
	b := NewBatchProcessor(&fakeRunner{}, 2, 100, 10)
	results := b.ProcessEntries(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}
