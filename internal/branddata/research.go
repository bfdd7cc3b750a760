// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package branddata

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/halcyon-media/lander-engine/internal/llm"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

const (
	defaultTemperature = 0.3
	defaultMaxTokens   = 3000
	defaultTTL         = 720 * time.Hour // 30 days
)

// Researcher fills the store by asking the AI backend for factual
// brand information, one facet per call.
type Researcher struct {
	backend llm.Backend
	store   *Store
	cfg     types.ResearchConfig
	now     func() time.Time
}

// NewResearcher builds a Researcher. Zero config fields get research
// defaults: low temperature for factual output, 30-day record TTL.
func NewResearcher(backend llm.Backend, store *Store, cfg types.ResearchConfig) *Researcher {
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.TTL == 0 {
		cfg.TTL = defaultTTL
	}
	return &Researcher{backend: backend, store: store, cfg: cfg, now: time.Now}
}

// Summary holds counts from a research run.
type Summary struct {
	Researched int
	Failed     int
}

// HasFailures reports whether any facet failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Research fetches and stores the given facets for one brand, writing
// progress to w. A facet that fails — backend error, unparseable
// response, or storage error — is counted and skipped; the remaining
// facets still run. Passing no dataTypes researches all of them.
func (r *Researcher) Research(ctx context.Context, brandID, brandName, brandDomain string, dataTypes []types.BrandDataType, w io.Writer) (Summary, error) {
	if len(dataTypes) == 0 {
		dataTypes = types.BrandDataTypes
	}

	var summary Summary
	for _, dataType := range dataTypes {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		fmt.Fprintf(w, "researching %s %s\n", brandName, dataType)

		payload, err := r.researchFacet(ctx, dataType, brandName, brandDomain)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", dataType, err)
			summary.Failed++
			continue
		}

		now := r.now()
		rec := types.BrandDataRecord{
			BrandID:   brandID,
			DataType:  dataType,
			Payload:   payload,
			Source:    "ai-research-" + brandDomain,
			ScrapedAt: now,
			ExpiresAt: now.Add(r.cfg.TTL),
		}
		if err := r.store.Put(ctx, rec); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", dataType, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "researched %s\n", dataType)
		summary.Researched++
	}

	fmt.Fprintf(w, "\nresearched: %d, failed: %d\n", summary.Researched, summary.Failed)
	return summary, nil
}

// researchFacet runs one backend call and validates that the response
// parses as the facet's payload shape before it is stored.
func (r *Researcher) researchFacet(ctx context.Context, dataType types.BrandDataType, brandName, brandDomain string) ([]byte, error) {
	prompt := buildResearchPrompt(dataType, brandName, brandDomain, r.now())

	raw, err := r.backend.Complete(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: r.cfg.Temperature,
		MaxTokens:   r.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	payload := []byte(raw)
	var data types.BrandData
	if err := unmarshalFacet(&data, dataType, payload); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return payload, nil
}
