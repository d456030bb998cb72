package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ste-tools/stecheck/internal/model"
)

func TestOllamaSummarize(t *testing.T) {
	var gotReq ollamaRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:           "llama3.1",
			Response:        "Rule 1 fired in two sentences.",
			Done:            true,
			PromptEvalCount: 50,
			EvalCount:       20,
		})
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}

	resp, err := provider.Summarize(context.Background(), SummarizeRequest{
		Report:     model.Report{Source: "docs/manual.txt", Sentences: 4},
		FiredRules: []int{1},
	})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if resp.Summary != "Rule 1 fired in two sentences." {
		t.Errorf("Summary = %q", resp.Summary)
	}
	if len(resp.CitedRules) != 1 || resp.CitedRules[0] != 1 {
		t.Errorf("CitedRules = %v, want [1]", resp.CitedRules)
	}
	if resp.TokensUsed != 70 {
		t.Errorf("TokensUsed = %d, want 70", resp.TokensUsed)
	}

	if gotReq.Stream {
		t.Error("request asked for streaming")
	}
	if gotReq.Model != "llama3.1" {
		t.Errorf("request model = %q", gotReq.Model)
	}
}

func TestOllamaSummarizeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}

	_, err = provider.Summarize(context.Background(), SummarizeRequest{})
	if err == nil {
		t.Fatal("Summarize returned nil error for a server failure")
	}
}

func TestOllamaIsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}
	if !provider.IsAvailable(context.Background()) {
		t.Error("IsAvailable = false against a live server")
	}

	server.Close()
	if provider.IsAvailable(context.Background()) {
		t.Error("IsAvailable = true against a closed server")
	}
}
