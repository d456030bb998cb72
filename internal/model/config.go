package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the complete stecheck configuration.
type Config struct {
	Rules       RulesConfig       `yaml:"rules" json:"rules"`
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" json:"rate_limit"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
}

// RulesConfig carries the fixed vocabularies and bounds the rule evaluators
// are constructed with. Tests substitute these to exercise edge cases.
type RulesConfig struct {
	// MaxWords is the sentence length limit (rule 5).
	MaxWords int `yaml:"max_words" json:"max_words"`

	// SplitMinIndex and SplitTailGuard bound where rule 5 may split a long
	// sentence: the conjunction token index must be strictly greater than
	// SplitMinIndex and strictly less than len(tokens)-SplitTailGuard.
	SplitMinIndex  int `yaml:"split_min_index" json:"split_min_index"`
	SplitTailGuard int `yaml:"split_tail_guard" json:"split_tail_guard"`

	// InstructionVerbs is the vocabulary of verbs that start instructions
	// (rule 3 clause detection).
	InstructionVerbs []string `yaml:"instruction_verbs" json:"instruction_verbs"`

	// ImperativeForms maps past participles to their imperative form (rule 4).
	ImperativeForms map[string]string `yaml:"imperative_forms" json:"imperative_forms"`
}

// HTTPConfig configures the page fetcher used by scan/batch.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
}

// CacheConfig configures the fetched-page cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig configures the batch worker pool.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// RateLimitConfig configures per-domain fetch rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// LLMConfig configures the optional report summarizer.
type LLMConfig struct {
	Provider   string `yaml:"provider" json:"provider"` // "openai", "ollama", "" (disabled)
	Model      string `yaml:"model" json:"model"`
	APIKey     string `yaml:"-" json:"-"`
	BaseURL    string `yaml:"base_url" json:"base_url"`
	Timeout    int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens  int    `yaml:"max_tokens" json:"max_tokens"`
	StrictMode bool   `yaml:"strict_mode" json:"strict_mode"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Rules: DefaultRulesConfig(),
		HTTP: HTTPConfig{
			Timeout:      2 * time.Minute,
			UserAgent:    "stecheck/0.1 (+https://github.com/ste-tools/stecheck)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Timeout:    30,
			MaxTokens:  1000,
			StrictMode: true,
		},
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stecheck-cache"
	}
	return filepath.Join(home, ".stecheck", "cache")
}

// DefaultRulesConfig returns the standard rule vocabularies.
func DefaultRulesConfig() RulesConfig {
	return RulesConfig{
		MaxWords:       20,
		SplitMinIndex:  8,
		SplitTailGuard: 3,
		InstructionVerbs: []string{
			"turn", "set", "check", "remove", "install", "connect", "disconnect",
			"press", "push", "pull", "rotate", "adjust", "calibrate", "test",
			"verify", "ensure", "confirm", "operate", "start", "stop", "open",
			"close", "insert", "extract", "replace", "clean", "inspect", "measure",
		},
		ImperativeForms: map[string]string{
			"continued": "Continue",
			"removed":   "Remove",
			"tested":    "Test",
			"operated":  "Operate",
			"connected": "Connect",
			"supplied":  "Supply",
			"held":      "Hold",
			"checked":   "Check",
		},
	}
}
