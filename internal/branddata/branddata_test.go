// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package branddata

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/halcyon-media/lander-engine/internal/llm"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.StorageConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func pricingRecord(t *testing.T, brandID string, expiresAt time.Time) types.BrandDataRecord {
	t.Helper()
	payload, err := json.Marshal(types.PricingData{
		Plans: []types.PricingPlan{{Name: "Plus", Price: "$10"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return types.BrandDataRecord{
		BrandID:   brandID,
		DataType:  types.BrandDataPricing,
		Payload:   payload,
		Source:    "ai-research-notion.so",
		ScrapedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
}

func TestStorePutGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, pricingRecord(t, "brand-1", time.Now().Add(time.Hour))); err != nil {
		t.Fatal(err)
	}

	data, err := s.Get(ctx, "brand-1")
	if err != nil {
		t.Fatal(err)
	}
	if data.Pricing == nil {
		t.Fatal("pricing facet missing")
	}
	if data.Pricing.Plans[0].Name != "Plus" {
		t.Errorf("plan name = %q", data.Pricing.Plans[0].Name)
	}
	if data.Features != nil || data.CompanyInfo != nil {
		t.Error("unexpected facets present")
	}
}

func TestStoreUpsertReplaces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, pricingRecord(t, "brand-1", time.Now().Add(time.Hour))); err != nil {
		t.Fatal(err)
	}
	rec := pricingRecord(t, "brand-1", time.Now().Add(time.Hour))
	rec.Payload = []byte(`{"plans":[{"name":"Business","price":"$15"}]}`)
	if err := s.Put(ctx, rec); err != nil {
		t.Fatal(err)
	}

	data, err := s.Get(ctx, "brand-1")
	if err != nil {
		t.Fatal(err)
	}
	if got := data.Pricing.Plans[0].Name; got != "Business" {
		t.Errorf("plan name after upsert = %q, want Business", got)
	}
	records, err := s.Records(ctx, "brand-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("record count = %d, want 1", len(records))
	}
}

func TestStoreGetExcludesExpired(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, pricingRecord(t, "brand-1", time.Now().Add(-time.Minute))); err != nil {
		t.Fatal(err)
	}

	data, err := s.Get(ctx, "brand-1")
	if err != nil {
		t.Fatal(err)
	}
	if !data.IsEmpty() {
		t.Error("expired record reached Get")
	}

	fresh, err := s.Fresh(ctx, "brand-1")
	if err != nil {
		t.Fatal(err)
	}
	if fresh {
		t.Error("brand with expired record reported fresh")
	}
}

func TestStoreFresh(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fresh, err := s.Fresh(ctx, "brand-1")
	if err != nil {
		t.Fatal(err)
	}
	if fresh {
		t.Error("brand without records reported fresh")
	}

	if err := s.Put(ctx, pricingRecord(t, "brand-1", time.Now().Add(time.Hour))); err != nil {
		t.Fatal(err)
	}
	fresh, err = s.Fresh(ctx, "brand-1")
	if err != nil {
		t.Fatal(err)
	}
	if !fresh {
		t.Error("brand with unexpired records not reported fresh")
	}
}

// facetBackend returns a canned response per facet, keyed by a phrase
// unique to each research prompt.
type facetBackend struct {
	prompts []string
}

func (b *facetBackend) Complete(_ context.Context, req llm.Request) (string, error) {
	b.prompts = append(b.prompts, req.Prompt)
	switch {
	case strings.Contains(req.Prompt, "pricing structure"):
		return `{"plans":[{"name":"Free","price":"$0"}],"freeTrialAvailable":true}`, nil
	case strings.Contains(req.Prompt, "core features"):
		return `{"coreFeatures":[{"name":"Docs","description":"Collaborative documents"}]}`, nil
	case strings.Contains(req.Prompt, "advantages and disadvantages"):
		return `not json at all`, nil
	case strings.Contains(req.Prompt, "company information"):
		return `{"description":"A workspace tool.","founded":"2013"}`, nil
	default:
		return `{"competitors":[{"name":"Coda","domain":"coda.io","differentiator":"Doc-centric apps"}]}`, nil
	}
}

func TestResearcher(t *testing.T) {
	s := newTestStore(t)
	backend := &facetBackend{}
	r := NewResearcher(backend, s, types.ResearchConfig{})

	var out bytes.Buffer
	summary, err := r.Research(context.Background(), "brand-1", "Notion", "notion.so", nil, &out)
	if err != nil {
		t.Fatal(err)
	}

	// pros_cons returns unparseable JSON and must fail alone.
	if summary.Researched != 4 || summary.Failed != 1 {
		t.Fatalf("summary = %+v, want 4 researched, 1 failed", summary)
	}
	if !summary.HasFailures() {
		t.Error("HasFailures() = false")
	}
	if len(backend.prompts) != 5 {
		t.Errorf("backend calls = %d, want 5", len(backend.prompts))
	}
	if !strings.Contains(backend.prompts[0], "Do NOT fabricate specific numbers") {
		t.Error("research prompt missing anti-fabrication preamble")
	}
	if !strings.Contains(out.String(), "failed  pros_cons") {
		t.Errorf("progress output missing failure line:\n%s", out.String())
	}

	data, err := s.Get(context.Background(), "brand-1")
	if err != nil {
		t.Fatal(err)
	}
	if data.Pricing == nil || data.Features == nil || data.CompanyInfo == nil || data.Competitors == nil {
		t.Errorf("stored facets incomplete: %+v", data)
	}
	if data.ProsCons != nil {
		t.Error("failed facet was stored")
	}

	records, err := s.Records(context.Background(), "brand-1")
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range records {
		if rec.Source != "ai-research-notion.so" {
			t.Errorf("source = %q", rec.Source)
		}
		if ttl := rec.ExpiresAt.Sub(rec.ScrapedAt); ttl != defaultTTL {
			t.Errorf("record TTL = %v, want %v", ttl, defaultTTL)
		}
	}
}
