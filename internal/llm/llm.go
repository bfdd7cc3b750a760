// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm abstracts the Generative AI API behind a one-method
// backend so tests can supply a mock. Per Strategy pattern.
package llm

import "context"

// Request is a single completion request.
type Request struct {
	// Prompt is the full prompt text, system and user content combined.
	Prompt string

	// Temperature is the sampling temperature.
	Temperature float64

	// MaxTokens caps the completion length.
	MaxTokens int64
}

// Backend abstracts the Generative AI API. Implementations return the
// raw completion text; callers own parsing and validation.
type Backend interface {
	Complete(ctx context.Context, req Request) (string, error)
}
