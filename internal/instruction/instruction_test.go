// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package instruction

import (
	"fmt"
	"strings"
	"testing"

	"github.com/halcyon-media/lander-engine/internal/blueprint"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

func testContext() Context {
	return Context{
		Keyword:        "cheap flights madrid to lisbon",
		Brand:          "Skyscanner",
		BrandDomain:    "skyscanner.com",
		DestinationURL: "https://example.com/go",
		Entities: types.Entities{
			Cities: []string{"Madrid", "Lisbon"},
		},
		Grounded: false,
	}
}

// Every section of every blueprint must compile to a non-empty line with
// all placeholders resolved.
func TestCompileTotality(t *testing.T) {
	placeholders := []string{
		"{keyword}", "{brand}", "{BRAND}",
		"{origin}", "{destination}", "{destinationUrl}",
	}
	for _, grounded := range []bool{false, true} {
		ctx := testContext()
		ctx.Grounded = grounded
		for _, b := range blueprint.All() {
			lines := Compile(b, ctx)
			if len(lines) != len(b.SectionOrder) {
				t.Fatalf("%s grounded=%v: got %d lines, want %d",
					b.Name, grounded, len(lines), len(b.SectionOrder))
			}
			for i, line := range lines {
				prefix := fmt.Sprintf("%d. Section type: %q", i+1, b.SectionOrder[i])
				if !strings.HasPrefix(line, prefix) {
					t.Errorf("%s line %d: missing prefix %q in %q", b.Name, i, prefix, line)
				}
				for _, p := range placeholders {
					if strings.Contains(line, p) {
						t.Errorf("%s line %d: unresolved placeholder %s", b.Name, i, p)
					}
				}
			}
		}
	}
}

// Repeated content_block sections must get distinct role instructions in
// blueprint order.
func TestContentBlockOccurrences(t *testing.T) {
	ctx := testContext()
	cases := []struct {
		occurrence int
		want       string
	}{
		{1, "ROUTE OVERVIEW"},
		{2, "BOOKING STRATEGY"},
		{3, "SEASONAL ANALYSIS"},
		{4, "AIRPORT & TRANSIT"},
		// Past the end of the variant list the final role repeats.
		{9, "AIRPORT & TRANSIT"},
	}
	for _, tc := range cases {
		got := Describe(types.SectionContentBlock, "travel_route", tc.occurrence, ctx)
		if !strings.Contains(got, tc.want) {
			t.Errorf("occurrence %d: want %q in %q", tc.occurrence, tc.want, got)
		}
	}
}

func TestGroundedBranch(t *testing.T) {
	ctx := testContext()

	ctx.Grounded = true
	got := Describe(types.SectionPricingTable, "saas_pricing", 1, ctx)
	if !strings.Contains(got, "VERIFIED pricing data") {
		t.Errorf("grounded pricing_table missing verified reference: %q", got)
	}

	ctx.Grounded = false
	got = Describe(types.SectionPricingTable, "saas_pricing", 1, ctx)
	if strings.Contains(got, "VERIFIED") {
		t.Errorf("ungrounded pricing_table references verified data: %q", got)
	}
	if !strings.Contains(got, "publicly available") {
		t.Errorf("ungrounded pricing_table missing hedge: %q", got)
	}
}

func TestDescribeUnknownBlueprintFallsBack(t *testing.T) {
	ctx := testContext()
	got := Describe(types.SectionTips, "no_such_blueprint", 1, ctx)
	if !strings.Contains(got, "practical, actionable tips") {
		t.Errorf("want generic tips fallback, got %q", got)
	}
	got = Describe(types.SectionContentBlock, "no_such_blueprint", 1, ctx)
	if !strings.Contains(got, "In-depth analysis section") {
		t.Errorf("want generic content fallback, got %q", got)
	}
}

func TestPlaceholderExpansion(t *testing.T) {
	ctx := testContext()
	got := Describe(types.SectionContentBlock, "travel_route", 1, ctx)
	if !strings.Contains(got, "between Madrid and Lisbon") {
		t.Errorf("cities not substituted: %q", got)
	}

	ctx.Entities = types.Entities{}
	got = Describe(types.SectionContentBlock, "travel_route", 1, ctx)
	if !strings.Contains(got, "between the origin and the destination") {
		t.Errorf("missing city fallback: %q", got)
	}

	ctx.Grounded = false
	got = Describe(types.SectionHero, "saas_validation", 1, ctx)
	if !strings.Contains(got, ctx.DestinationURL) {
		t.Errorf("destination URL not substituted: %q", got)
	}
}

func TestBrandUppercaseVariant(t *testing.T) {
	ctx := testContext()
	ctx.Brand = "Notion"
	got := Describe(types.SectionContentBlock, "saas_validation", 1, ctx)
	if !strings.Contains(got, "WHAT NOTION DOES") {
		t.Errorf("uppercase brand not substituted: %q", got)
	}
}
