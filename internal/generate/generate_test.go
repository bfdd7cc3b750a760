// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/halcyon-media/lander-engine/internal/blueprint"
	"github.com/halcyon-media/lander-engine/internal/llm"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

// mockBackend returns a canned completion and records the prompt.
type mockBackend struct {
	lastPrompt string
	response   string
	err        error
}

func (m *mockBackend) Complete(_ context.Context, req llm.Request) (string, error) {
	m.lastPrompt = req.Prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// mockBrandSource returns fixed brand data or an error.
type mockBrandSource struct {
	data types.BrandData
	err  error
}

func (m *mockBrandSource) Get(context.Context, string) (types.BrandData, error) {
	return m.data, m.err
}

const pageResponse = `{
  "title": "Notion Pricing Plans Compared",
  "metaDescription": "A walkthrough of Notion's plans and what each tier includes.",
  "h1": "Notion Pricing Breakdown",
  "sections": [
    {"type": "hero", "heading": "Notion Plans", "content": "Which plan fits your team."},
    {"type": "content_block", "heading": "Plan Overview", "content": "Notion offers several tiers for individuals and teams."}
  ]
}`

func testInput() Input {
	b, _ := blueprint.Get("saas_pricing")
	return Input{
		Keyword:        "notion pricing",
		BrandName:      "Notion",
		BrandDomain:    "notion.so",
		BrandID:        "brand-1",
		Vertical:       types.VerticalB2BSaaS,
		Intent:         types.IntentPricing,
		Blueprint:      b,
		DestinationURL: "https://example.com/go",
	}
}

func testBrandData() types.BrandData {
	return types.BrandData{
		Pricing: &types.PricingData{
			Plans: []types.PricingPlan{
				{Name: "Free", Price: "$0", BestFor: "Individuals"},
				{Name: "Plus", Price: "$10", BillingCycle: "monthly", Features: []string{"Unlimited blocks"}},
			},
			FreeTrialAvailable: true,
		},
	}
}

func TestGenerateGroundedPrompt(t *testing.T) {
	backend := &mockBackend{response: pageResponse}
	g := New(backend, &mockBrandSource{data: testBrandData()}, types.GenerationConfig{}, nil)

	result, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatal(err)
	}
	if result.Document == nil {
		t.Fatal("nil document")
	}

	for _, want := range []string{
		"VERIFIED BRAND DATA",
		"• Plus: $10 (monthly)",
		"- Free trial: Yes",
		"You CAN make direct factual statements",
		`Search keyword: "notion pricing"`,
		"PAGE BLUEPRINT: saas_pricing",
	} {
		if !strings.Contains(backend.lastPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(backend.lastPrompt, "All claims must be verifiable") {
		t.Error("grounded prompt contains ungrounded rule")
	}
}

func TestGenerateUngroundedWhenBrandDataUnavailable(t *testing.T) {
	backend := &mockBackend{response: pageResponse}
	g := New(backend, &mockBrandSource{err: errors.New("no such brand")}, types.GenerationConfig{}, nil)

	if _, err := g.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("brand data failure should not fail generation: %v", err)
	}
	if strings.Contains(backend.lastPrompt, "VERIFIED BRAND DATA") {
		t.Error("ungrounded prompt contains brand data block")
	}
	if !strings.Contains(backend.lastPrompt, "All claims must be verifiable or clearly qualified") {
		t.Error("ungrounded prompt missing hedging rule")
	}
}

func TestGenerateNilBrandSource(t *testing.T) {
	backend := &mockBackend{response: pageResponse}
	g := New(backend, nil, types.GenerationConfig{}, nil)
	if _, err := g.Generate(context.Background(), testInput()); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateSectionInstructions(t *testing.T) {
	backend := &mockBackend{response: pageResponse}
	g := New(backend, nil, types.GenerationConfig{}, nil)
	in := testInput()
	if _, err := g.Generate(context.Background(), in); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(backend.lastPrompt, `1. Section type: "hero"`) {
		t.Error("prompt missing numbered section instructions")
	}
	if !strings.Contains(backend.lastPrompt, "Detected cities from keyword: NONE") {
		t.Error("prompt missing city rule for keyword without cities")
	}
	if n := len(in.Blueprint.SectionOrder); !strings.Contains(backend.lastPrompt,
		"GENERATE these sections in order") {
		t.Errorf("prompt missing section list header (%d sections expected)", n)
	}
}

func TestGenerateParseError(t *testing.T) {
	backend := &mockBackend{response: "Sorry, I cannot produce JSON today."}
	g := New(backend, nil, types.GenerationConfig{}, nil)

	_, err := g.Generate(context.Background(), testInput())
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}

func TestGenerateBackendError(t *testing.T) {
	backend := &mockBackend{err: errors.New("rate limited")}
	g := New(backend, nil, types.GenerationConfig{}, nil)
	if _, err := g.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("backend error not surfaced")
	}
}

func TestGenerateBackfillsRequiredSections(t *testing.T) {
	backend := &mockBackend{response: pageResponse}
	g := New(backend, nil, types.GenerationConfig{}, nil)

	result, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatal(err)
	}

	doc := result.Document
	var hero *types.Section
	hasDisclosure, hasFAQ := false, false
	for i := range doc.Sections {
		switch doc.Sections[i].Type {
		case types.SectionHero:
			hero = &doc.Sections[i]
		case types.SectionDisclosure:
			hasDisclosure = true
		case types.SectionFAQ:
			hasFAQ = true
		}
	}
	if !hasDisclosure {
		t.Error("disclosure not backfilled")
	}
	if !hasFAQ {
		t.Error("FAQ not backfilled")
	}
	if hero == nil {
		t.Fatal("hero section missing")
	}
	if hero.CTAURL != "https://example.com/go" {
		t.Errorf("hero CTA URL = %q", hero.CTAURL)
	}
	if !strings.Contains(hero.CTAText, "Notion") {
		t.Errorf("hero CTA text = %q, want brand substituted", hero.CTAText)
	}
}

func TestGenerateAppliesFix(t *testing.T) {
	// Short response: content_too_thin is critical, so the scan fails
	// and the fixer runs.
	resp := strings.Replace(pageResponse,
		"Notion offers several tiers for individuals and teams.",
		"The best choice, guaranteed.", 1)
	backend := &mockBackend{response: resp}
	g := New(backend, nil, types.GenerationConfig{}, nil)

	result, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatal(err)
	}
	if result.Scan.Passed {
		t.Fatal("thin page with banned phrases passed the scan")
	}
	if !result.Fixed {
		t.Fatal("failing page was not fixed")
	}

	found := map[string]bool{}
	for _, v := range result.Scan.Violations {
		found[v.Rule] = true
	}
	if !found["no_superlative"] || !found["no_guarantee"] {
		t.Errorf("pre-fix scan missing banned phrase violations: %+v", result.Scan.Violations)
	}
	for _, s := range result.Document.Sections {
		if strings.Contains(s.Content, "guaranteed") {
			t.Errorf("fixed document still contains %q", s.Content)
		}
	}
}

func TestExpandCTA(t *testing.T) {
	cases := []struct {
		tmpl string
		e    types.Entities
		want string
	}{
		{"Compare {brand} Deals", types.Entities{}, "Compare Notion Deals"},
		{"Flights {origin} to {destination}", types.Entities{Cities: []string{"Madrid", "Lisbon"}}, "Flights Madrid to Lisbon"},
		{"Flights {origin} to {destination}", types.Entities{Cities: []string{"Madrid"}}, "Flights Madrid to Madrid"},
		{"Flights {origin} to {destination}", types.Entities{}, "Flights  to"},
	}
	for _, tc := range cases {
		if got := expandCTA(tc.tmpl, "Notion", tc.e); got != tc.want {
			t.Errorf("expandCTA(%q) = %q, want %q", tc.tmpl, got, tc.want)
		}
	}
}
