// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate produces full landing-page documents from a keyword,
// a brand, and a blueprint. Generation is a single model call wrapped
// in grounding, backfill, and a compliance scan-and-fix pass.
// Implements: prd003-generation (R1-R5);
//
//	docs/ARCHITECTURE § Page Generation.
package generate

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/halcyon-media/lander-engine/internal/compliance"
	"github.com/halcyon-media/lander-engine/internal/llm"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 16000
)

// BrandSource supplies stored brand research for prompt grounding.
// Implementations return only unexpired facets.
type BrandSource interface {
	Get(ctx context.Context, brandID string) (types.BrandData, error)
}

// Input identifies the page to generate.
type Input struct {
	Keyword        string
	BrandName      string
	BrandDomain    string
	BrandID        string
	Vertical       types.VerticalType
	Intent         types.IntentType
	Blueprint      types.Blueprint
	DestinationURL string
	Entities       types.Entities
}

// Result is one generated page with its compliance outcome. Scan is
// the pre-fix scan: when Fixed is true the document has been rewritten
// and the recorded violations describe what the fixer corrected.
type Result struct {
	Document *types.ContentDocument
	Scan     types.ScanResult
	Fixed    bool
}

// Generator turns Inputs into compliant page documents.
type Generator struct {
	backend llm.Backend
	brands  BrandSource
	cfg     types.GenerationConfig
	logger  *zap.Logger
}

// New builds a Generator. brands may be nil, in which case every page
// is generated ungrounded.
func New(backend llm.Backend, brands BrandSource, cfg types.GenerationConfig, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	return &Generator{backend: backend, brands: brands, cfg: cfg, logger: logger}
}

// Generate produces one page. Brand data is fetched best-effort: a
// lookup failure downgrades the page to ungrounded rather than failing
// it. The model is called exactly once; a completion that is not valid
// JSON surfaces as a ParseError. The returned document has required
// sections backfilled and, when the scan failed, the auto-fix applied.
func (g *Generator) Generate(ctx context.Context, in Input) (*Result, error) {
	var data types.BrandData
	if g.brands != nil {
		var err error
		data, err = g.brands.Get(ctx, in.BrandID)
		if err != nil {
			g.logger.Debug("brand data unavailable, generating ungrounded",
				zap.String("brand_id", in.BrandID), zap.Error(err))
			data = types.BrandData{}
		}
	}
	grounding := groundingContext(data)

	prompt, err := renderPrompt(in, grounding)
	if err != nil {
		return nil, err
	}

	raw, err := g.backend.Complete(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var doc types.ContentDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	backfillRequired(&doc, in)

	scan := compliance.Scan(&doc)
	result := &Result{Document: &doc, Scan: scan}
	if !scan.Passed {
		result.Document = compliance.Fix(&doc)
		result.Fixed = true
	}

	g.logger.Info("generated page",
		zap.String("keyword", in.Keyword),
		zap.String("blueprint", in.Blueprint.Name),
		zap.Bool("grounded", grounding != ""),
		zap.Int("score", scan.Score),
		zap.Bool("fixed", result.Fixed))

	return result, nil
}
