// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/halcyon-media/lander-engine/internal/llm"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

// mockBackend returns a canned completion and records prompts.
type mockBackend struct {
	response string
	err      error
	calls    int
}

func (m *mockBackend) Complete(_ context.Context, _ llm.Request) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestIntentRules(t *testing.T) {
	cases := []struct {
		keyword    string
		vertical   types.VerticalType
		want       types.IntentType
		confidence float64
		cities     int
	}{
		{"notion vs coda", types.VerticalB2BSaaS, types.IntentComparison, 0.9, 0},
		{"spotify pricing plans", types.VerticalSubscription, types.IntentPricing, 0.9, 0},
		{"is robinhood legit", types.VerticalFinance, types.IntentValidation, 0.85, 0},
		{"how to cancel netflix", types.VerticalSubscription, types.IntentProblemSolution, 0.85, 0},
		{"crm for small business", types.VerticalB2BSaaS, types.IntentUseCase, 0.85, 0},
		{"norton antivirus discount", types.VerticalB2BSaaS, types.IntentTransactional, 0.85, 0},
		{"what is shopify", types.VerticalB2BSaaS, types.IntentInformational, 0.8, 0},
		{"cheap flights", types.VerticalTravel, types.IntentComparison, 0.75, 0},
	}
	c := New(&mockBackend{}, types.ClassifyConfig{})
	for _, tc := range cases {
		got, err := c.Intent(context.Background(), tc.keyword, tc.vertical)
		if err != nil {
			t.Fatalf("%q: %v", tc.keyword, err)
		}
		if got.Intent != tc.want {
			t.Errorf("%q: intent = %s, want %s", tc.keyword, got.Intent, tc.want)
		}
		if got.Confidence != tc.confidence {
			t.Errorf("%q: confidence = %v, want %v", tc.keyword, got.Confidence, tc.confidence)
		}
		if len(got.Entities.Cities) != tc.cities {
			t.Errorf("%q: cities = %v", tc.keyword, got.Entities.Cities)
		}
	}
}

func TestIntentTravelCityOverrides(t *testing.T) {
	c := New(&mockBackend{}, types.ClassifyConfig{})

	got, err := c.Intent(context.Background(), "cheap flights madrid to lisbon", types.VerticalTravel)
	if err != nil {
		t.Fatal(err)
	}
	if got.Intent != types.IntentRouteSpecific || got.Confidence != 0.95 {
		t.Errorf("two-city travel keyword = %s/%v, want route_specific/0.95", got.Intent, got.Confidence)
	}
	if len(got.Entities.Cities) != 2 || got.Entities.Cities[0] != "madrid" {
		t.Errorf("cities = %v", got.Entities.Cities)
	}

	got, err = c.Intent(context.Background(), "flights to tokyo", types.VerticalTravel)
	if err != nil {
		t.Fatal(err)
	}
	if got.Intent != types.IntentDestinationSpecific || got.Confidence != 0.9 {
		t.Errorf("one-city travel keyword = %s/%v, want destination_specific/0.9", got.Intent, got.Confidence)
	}
}

func TestIntentDowngradesWithoutCities(t *testing.T) {
	c := New(&mockBackend{}, types.ClassifyConfig{})

	// Matches the destination pattern, but no known city appears.
	got, err := c.Intent(context.Background(), "flights to nowhere", types.VerticalOther)
	if err != nil {
		t.Fatal(err)
	}
	if got.Intent != types.IntentComparison {
		t.Errorf("intent = %s, want comparison", got.Intent)
	}
	if !strings.Contains(got.Reasoning, "downgraded from destination_specific") {
		t.Errorf("reasoning = %q", got.Reasoning)
	}
}

func TestIntentLLMFallback(t *testing.T) {
	backend := &mockBackend{
		response: `{"intentType":"use_case","confidence":0.8,"reasoning":"Workspace evaluation","detectedEntities":{"cities":["Paris"],"brands":["Notion"]}}`,
	}
	c := New(backend, types.ClassifyConfig{})

	got, err := c.Intent(context.Background(), "notion workspace", "")
	if err != nil {
		t.Fatal(err)
	}
	if backend.calls != 1 {
		t.Fatalf("backend calls = %d, want 1", backend.calls)
	}
	if got.Intent != types.IntentUseCase {
		t.Errorf("intent = %s, want use_case", got.Intent)
	}
	// "Paris" does not appear in the keyword and must be dropped.
	if len(got.Entities.Cities) != 0 {
		t.Errorf("hallucinated cities kept: %v", got.Entities.Cities)
	}
}

func TestIntentLLMDowngrade(t *testing.T) {
	backend := &mockBackend{
		response: `{"intentType":"destination_specific","confidence":0.9,"reasoning":"Travel keyword","detectedEntities":{"cities":["Bali"]}}`,
	}
	c := New(backend, types.ClassifyConfig{})

	got, err := c.Intent(context.Background(), "romantic getaway ideas", "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Intent != types.IntentComparison {
		t.Errorf("intent = %s, want comparison", got.Intent)
	}
	if !strings.Contains(got.Reasoning, "Downgraded from destination_specific") {
		t.Errorf("reasoning = %q", got.Reasoning)
	}
}

func TestIntentLLMParseFailure(t *testing.T) {
	backend := &mockBackend{response: "not json"}
	c := New(backend, types.ClassifyConfig{})

	got, err := c.Intent(context.Background(), "zyx widget platform", "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Intent != types.IntentInformational || got.Confidence != 0.5 {
		t.Errorf("got %s/%v, want informational/0.5", got.Intent, got.Confidence)
	}
	if got.Reasoning != "Failed to parse LLM response" {
		t.Errorf("reasoning = %q", got.Reasoning)
	}
}

func TestVerticalDomainRules(t *testing.T) {
	c := New(&mockBackend{}, types.ClassifyConfig{})
	cases := []struct {
		domain string
		want   types.VerticalType
	}{
		{"www.skyscanner.net", types.VerticalTravel},
		{"STRIPE.COM", types.VerticalFinance},
		{"netflix.com", types.VerticalSubscription},
		{"amazon.de", types.VerticalEcommerce},
		{"hubspot.com", types.VerticalB2BSaaS},
	}
	for _, tc := range cases {
		got, err := c.Vertical(context.Background(), tc.domain, "Brand", "")
		if err != nil {
			t.Fatalf("%q: %v", tc.domain, err)
		}
		if got.Vertical != tc.want {
			t.Errorf("%q: vertical = %s, want %s", tc.domain, got.Vertical, tc.want)
		}
		if got.Confidence != 0.95 {
			t.Errorf("%q: confidence = %v", tc.domain, got.Confidence)
		}
		if !strings.Contains(got.Reasoning, "Domain matches known") {
			t.Errorf("%q: reasoning = %q", tc.domain, got.Reasoning)
		}
	}
}

func TestVerticalLLMFallback(t *testing.T) {
	backend := &mockBackend{
		response: `{"verticalType":"d2c","confidence":0.85,"reasoning":"Direct-to-consumer mattress brand"}`,
	}
	c := New(backend, types.ClassifyConfig{})

	got, err := c.Vertical(context.Background(), "sleepful.com", "Sleepful", "Mattresses shipped to your door")
	if err != nil {
		t.Fatal(err)
	}
	if got.Vertical != types.VerticalD2C || got.Confidence != 0.85 {
		t.Errorf("got %s/%v", got.Vertical, got.Confidence)
	}
}

func TestVerticalLLMParseFailure(t *testing.T) {
	backend := &mockBackend{response: "no json here"}
	c := New(backend, types.ClassifyConfig{})

	got, err := c.Vertical(context.Background(), "sleepful.com", "Sleepful", "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Vertical != types.VerticalOther || got.Confidence != 0.5 {
		t.Errorf("got %s/%v, want other/0.5", got.Vertical, got.Confidence)
	}
}

func TestVerticalBackendError(t *testing.T) {
	backend := &mockBackend{err: errors.New("rate limited")}
	c := New(backend, types.ClassifyConfig{})
	if _, err := c.Vertical(context.Background(), "sleepful.com", "Sleepful", ""); err == nil {
		t.Fatal("backend error not surfaced")
	}
}

func TestIntentBatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := New(&mockBackend{response: `{"intentType":"informational"}`}, types.ClassifyConfig{MaxConcurrent: 2})
	keywords := []string{
		"notion vs coda",
		"spotify pricing",
		"zyx widget platform",
		"is robinhood legit",
	}
	results, err := c.IntentBatch(context.Background(), keywords, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(keywords) {
		t.Fatalf("results = %d, want %d", len(results), len(keywords))
	}
	want := []types.IntentType{
		types.IntentComparison,
		types.IntentPricing,
		types.IntentInformational,
		types.IntentValidation,
	}
	for i, w := range want {
		if results[i].Intent != w {
			t.Errorf("results[%d] = %s, want %s", i, results[i].Intent, w)
		}
	}
}

func TestIntentBatchError(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := New(&mockBackend{err: errors.New("backend down")}, types.ClassifyConfig{})
	_, err := c.IntentBatch(context.Background(), []string{"zyx widget platform"}, "")
	if err == nil {
		t.Fatal("backend error not surfaced")
	}
}
