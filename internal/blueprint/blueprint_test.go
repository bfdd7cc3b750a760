// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package blueprint

import (
	"errors"
	"testing"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

func TestGet(t *testing.T) {
	b, err := Get("travel_route")
	if err != nil {
		t.Fatal(err)
	}
	if b.Vertical != types.VerticalTravel || b.Intent != types.IntentRouteSpecific {
		t.Errorf("travel_route = %s/%s", b.Vertical, b.Intent)
	}

	if _, err := Get("no_such_blueprint"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCatalogConsistency(t *testing.T) {
	all := All()
	if len(all) != 30 {
		t.Fatalf("catalog size = %d, want 30", len(all))
	}

	seen := map[string]bool{}
	pairs := map[string]bool{}
	for _, b := range all {
		if seen[b.Name] {
			t.Errorf("duplicate blueprint name %q", b.Name)
		}
		seen[b.Name] = true

		pair := string(b.Vertical) + "/" + string(b.Intent)
		if pairs[pair] {
			t.Errorf("duplicate (vertical, intent) pair %s", pair)
		}
		pairs[pair] = true

		if b.H1Template == "" || b.CTA.Text == "" {
			t.Errorf("%s: missing H1 or CTA template", b.Name)
		}
		if len(b.SectionOrder) == 0 {
			t.Errorf("%s: empty section order", b.Name)
		}
		for _, req := range b.RequiredSections {
			if !b.Requires(req) {
				t.Errorf("%s: Requires(%s) = false", b.Name, req)
			}
		}
	}
}

func TestByVertical(t *testing.T) {
	travel := ByVertical(types.VerticalTravel)
	if len(travel) != 3 {
		t.Fatalf("travel blueprints = %d, want 3", len(travel))
	}
	for _, b := range travel {
		if b.Vertical != types.VerticalTravel {
			t.Errorf("%s: vertical = %s", b.Name, b.Vertical)
		}
	}

	if got := ByVertical("bogus"); got != nil {
		t.Errorf("unknown vertical returned %d blueprints", len(got))
	}
}

func TestByVerticalAndIntent(t *testing.T) {
	got := ByVerticalAndIntent(types.VerticalB2BSaaS, types.IntentPricing)
	if len(got) != 1 || got[0].Name != "saas_pricing" {
		t.Errorf("got %+v", got)
	}
	if got := ByVerticalAndIntent(types.VerticalTravel, types.IntentUseCase); got != nil {
		t.Errorf("unmatched pair returned %d blueprints", len(got))
	}
}

func TestSelect(t *testing.T) {
	twoCities := types.Entities{Cities: []string{"madrid", "lisbon"}}
	oneCity := types.Entities{Cities: []string{"tokyo"}}

	cases := []struct {
		name     string
		vertical types.VerticalType
		intent   types.IntentType
		entities types.Entities
		want     string
	}{
		{"exact match", types.VerticalB2BSaaS, types.IntentPricing, types.Entities{}, "saas_pricing"},
		{"route with two cities", types.VerticalTravel, types.IntentRouteSpecific, twoCities, "travel_route"},
		{"route with one city", types.VerticalTravel, types.IntentRouteSpecific, oneCity, "travel_destination"},
		{"route with no cities", types.VerticalTravel, types.IntentRouteSpecific, types.Entities{}, "generic_comparison"},
		{"destination without city", types.VerticalTravel, types.IntentDestinationSpecific, types.Entities{}, "generic_comparison"},
		{"eligibility resolves to finance validation", types.VerticalFinance, types.IntentEligibility, types.Entities{}, "finance_eligibility"},
		{"eligibility outside finance", types.VerticalEcommerce, types.IntentEligibility, types.Entities{}, "ecommerce_validation"},
		{"vertical fallback to informational", types.VerticalHealth, types.IntentPricing, types.Entities{}, "health_informational"},
		{"fallback to other vertical", types.VerticalTravel, types.IntentComparison, types.Entities{}, "generic_comparison"},
		{"final fallback", types.VerticalTravel, types.IntentUseCase, types.Entities{}, "generic_informational"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Select(tc.vertical, tc.intent, tc.entities)
			if got.Name != tc.want {
				t.Errorf("Select(%s, %s) = %s, want %s", tc.vertical, tc.intent, got.Name, tc.want)
			}
		})
	}
}

func TestExpandH1(t *testing.T) {
	route, err := Get("travel_route")
	if err != nil {
		t.Fatal(err)
	}
	got := ExpandH1(route, "cheap flights madrid to lisbon", "Skyscanner",
		types.Entities{Cities: []string{"madrid", "lisbon"}})
	if got != "madrid to lisbon: Complete Travel Guide" {
		t.Errorf("ExpandH1 = %q", got)
	}

	pricing, err := Get("saas_pricing")
	if err != nil {
		t.Fatal(err)
	}
	got = ExpandH1(pricing, "notion pricing", "Notion", types.Entities{})
	if got != "Notion Pricing Breakdown — Plans, Features & Value Analysis" {
		t.Errorf("ExpandH1 = %q", got)
	}
}
