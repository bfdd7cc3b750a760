// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AIConfig holds shared settings for components that call an LLM API.
type AIConfig struct {
	// Model is the model identifier (e.g. "gpt-4o").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the API endpoint (empty = provider default).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls.
	// The generation path runs with 0: a malformed or failed completion
	// is surfaced to the caller, never retried internally.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// GenerationConfig holds settings for the page generation stage.
// Per prd003-generation R5.1-R5.3.
type GenerationConfig struct {
	AIConfig `yaml:",inline"`

	// Temperature is the sampling temperature for page generation (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens caps the completion length (default 16000).
	MaxTokens int64 `json:"max_tokens" yaml:"max_tokens"`

	// OutputDir is the directory for generated page files (e.g. "output/pages/").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// ResearchConfig holds settings for the brand data research stage.
// Per prd005-brand-data R3.1-R3.3.
type ResearchConfig struct {
	AIConfig `yaml:",inline"`

	// Temperature is the sampling temperature for research calls (default 0.3,
	// low for factual output).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens caps each research completion (default 3000).
	MaxTokens int64 `json:"max_tokens" yaml:"max_tokens"`

	// TTL is how long researched records stay fresh (default 720h = 30 days).
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// ClassifyConfig holds settings for the classification stage.
// Classification prefers rule tables; the LLM is a fallback only.
type ClassifyConfig struct {
	AIConfig `yaml:",inline"`

	// MaxConcurrent bounds batch keyword classification fan-out (default 4).
	MaxConcurrent int `json:"max_concurrent" yaml:"max_concurrent"`
}

// StorageConfig holds settings for the SQLite-backed stores.
type StorageConfig struct {
	// DataDir is the base directory for persistent data (contains lander.db).
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Research   ResearchConfig   `json:"research" yaml:"research"`
	Classify   ClassifyConfig   `json:"classify" yaml:"classify"`
	Storage    StorageConfig    `json:"storage" yaml:"storage"`
}
