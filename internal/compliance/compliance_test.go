// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compliance

import (
	"reflect"
	"strings"
	"testing"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

// richDoc builds a clean document deep enough to earn every depth bonus.
func richDoc() *types.ContentDocument {
	block := strings.TrimSpace(strings.Repeat("insight ", 900))
	faqItems := make([]map[string]string, 6)
	for i := range faqItems {
		faqItems[i] = map[string]string{
			"question": "How does this work in practice?",
			"answer":   strings.TrimSpace(strings.Repeat("answer ", 60)),
		}
	}
	return &types.ContentDocument{
		Title:           "Compare Flight Deals from Madrid",
		MetaDescription: "A practical guide to comparing flight deals from Madrid, with booking timing advice.",
		H1:              "Flight Deals from Madrid",
		Sections: []types.Section{
			{Type: types.SectionHero, Heading: "Find Flights from Madrid", Content: "Compare routes and airlines.", CTAText: "Compare flights", CTAURL: "https://example.com/go"},
			{Type: types.SectionQuickAnswer, Heading: "At a Glance", Highlights: []types.Highlight{
				{Label: "Typical duration", Value: "1h 20m"},
				{Label: "Airlines", Value: "Iberia, TAP, Ryanair"},
				{Label: "Booking window", Value: "3-8 weeks ahead"},
				{Label: "Busiest month", Value: "August"},
			}},
			{Type: types.SectionContentBlock, Heading: "Route Overview", Content: block},
			{Type: types.SectionContentBlock, Heading: "Booking Strategy", Content: block},
			{Type: types.SectionContentBlock, Heading: "Seasonal Analysis", Content: block},
			{Type: types.SectionSteps, Heading: "How to Book", Items: []map[string]string{
				{"step": "1", "title": "Pick travel dates", "detail": "Check fares across a two-week window."},
				{"step": "2", "title": "Set a price alert", "detail": "Watch the route for a few weeks before buying."},
			}},
			{Type: types.SectionTips, Heading: "Money-Saving Tips", Items: []map[string]string{
				{"tip": "Track prices early", "detail": "Set alerts several weeks before travel."},
			}},
			{Type: types.SectionFAQ, Heading: "FAQ", Items: faqItems},
			{Type: types.SectionDisclosure, Heading: "Disclosure", Content: DisclosureText},
		},
	}
}

func TestScanCleanDocument(t *testing.T) {
	result := Scan(richDoc())
	if !result.Passed {
		t.Fatalf("clean document failed: %+v", result.Violations)
	}
	if len(result.Violations) != 0 {
		t.Errorf("unexpected violations: %+v", result.Violations)
	}
	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}
}

func TestScanBannedPhrases(t *testing.T) {
	doc := richDoc()
	doc.Sections[0].Content = "This is the official site and we guarantee the best rates."

	result := Scan(doc)
	if result.Passed {
		t.Fatal("document with critical violations passed")
	}

	byRule := map[string]types.Violation{}
	for _, v := range result.Violations {
		byRule[v.Rule] = v
	}
	cases := []struct {
		rule     string
		severity types.Severity
		original string
	}{
		{"no_official_claim", types.SeverityCritical, "official site"},
		{"no_guarantee", types.SeverityCritical, "guarantee"},
		{"no_superlative", types.SeverityWarning, "the best"},
	}
	for _, tc := range cases {
		v, ok := byRule[tc.rule]
		if !ok {
			t.Errorf("missing violation %s", tc.rule)
			continue
		}
		if v.Severity != tc.severity {
			t.Errorf("%s severity = %s, want %s", tc.rule, v.Severity, tc.severity)
		}
		if v.Original != tc.original {
			t.Errorf("%s original = %q, want %q", tc.rule, v.Original, tc.original)
		}
		if !strings.HasPrefix(v.Location, "sections[0].hero") {
			t.Errorf("%s location = %q", tc.rule, v.Location)
		}
	}

	// 2 criticals (-40) and 1 warning (-5) against 16 points of bonuses.
	if result.Score != 100-40-5+16 {
		t.Errorf("score = %d, want %d", result.Score, 100-40-5+16)
	}
}

func TestScanRankingClaimAfterSpace(t *testing.T) {
	doc := richDoc()
	doc.Sections[0].Content = "Rated #1 by frequent flyers."
	result := Scan(doc)
	found := false
	for _, v := range result.Violations {
		if v.Rule == "no_number_one" {
			found = true
		}
	}
	if !found {
		t.Fatal("ranking claim after a space not detected")
	}
}

func TestScanNumericRatingAndStats(t *testing.T) {
	doc := richDoc()
	doc.Sections[2].Content += " We score it 4.5/5 overall. Studies show it works."
	result := Scan(doc)
	rules := map[string]bool{}
	for _, v := range result.Violations {
		rules[v.Rule] = true
	}
	if !rules["no_numeric_rating"] {
		t.Error("numeric rating not detected")
	}
	if !rules["no_unverifiable_stats"] {
		t.Error("unattributed study reference not detected")
	}
}

func TestScanStructuralChecks(t *testing.T) {
	doc := richDoc()
	doc.Title = strings.Repeat("t", 66)
	doc.MetaDescription = strings.Repeat("m", 166)
	// Drop FAQ and disclosure.
	doc.Sections = doc.Sections[:7]

	result := Scan(doc)
	want := map[string]types.Severity{
		"missing_disclosure": types.SeverityCritical,
		"missing_faq":        types.SeverityWarning,
		"title_too_long":     types.SeverityWarning,
		"meta_too_long":      types.SeverityWarning,
	}
	got := map[string]types.Severity{}
	for _, v := range result.Violations {
		got[v.Rule] = v.Severity
	}
	for rule, sev := range want {
		if got[rule] != sev {
			t.Errorf("%s = %q, want %q", rule, got[rule], sev)
		}
	}
	if result.Passed {
		t.Error("document without disclosure passed")
	}
}

func TestScanDepthChecks(t *testing.T) {
	thin := &types.ContentDocument{
		Title:           "Short Page",
		MetaDescription: "Short meta.",
		H1:              "Short",
		Sections: []types.Section{
			{Type: types.SectionHero, Content: "Brief intro."},
			{Type: types.SectionContentBlock, Heading: "Overview", Content: strings.TrimSpace(strings.Repeat("word ", 150))},
			{Type: types.SectionFAQ, Items: []map[string]string{
				{"question": "Why?", "answer": "Because."},
			}},
			{Type: types.SectionDisclosure, Content: DisclosureText},
		},
	}
	result := Scan(thin)
	if result.Passed {
		t.Fatal("thin document passed")
	}
	rules := map[string]types.Severity{}
	for _, v := range result.Violations {
		rules[v.Rule] = v.Severity
	}
	if rules["content_too_thin"] != types.SeverityCritical {
		t.Errorf("content_too_thin = %q, want critical", rules["content_too_thin"])
	}
	for _, rule := range []string{"low_section_diversity", "faq_too_few", "thin_content_block"} {
		if rules[rule] != types.SeverityWarning {
			t.Errorf("%s = %q, want warning", rule, rules[rule])
		}
	}
}

func TestFixRewritesBannedPhrases(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Visit the official website today.", "Visit the website today."},
		{"We offer the best flight deals.", "We offer a strong choice for flight deals."},
		{"Simply the best.", "Simply a strong choice for."},
		{"Savings guaranteed for members.", "Savings designed to provide for members."},
		{"Rated #1 by travelers.", "Rated a leading by travelers."},
		{"100% satisfaction.", "high degree of satisfaction."},
		{"Use this secret hack.", "Use this useful strategy."},
		{"Scored 4.5/5 by our editors.", "Scored highly regarded by our editors."},
		// Replacements are literal: sentence-initial matches come back
		// lowercase, same as "100%" above.
		{"Act now for a risk-free trial.", "learn more for a with consumer protections trial."},
	}
	for _, tc := range cases {
		if got := fixText(tc.in); got != tc.want {
			t.Errorf("fixText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFixDocument(t *testing.T) {
	doc := richDoc()
	doc.Title = "The Best Flight Deals You Can Find from Madrid Airports This Year"
	doc.Sections[0].Content = "This is the official site and we guarantee the best rates."
	doc.Sections[6].Items[0]["detail"] = "A secret trick: set alerts early."
	doc.Sections = doc.Sections[:8] // drop disclosure

	fixed := Fix(doc)

	// Input untouched.
	if !strings.Contains(doc.Sections[0].Content, "official site") {
		t.Error("input document was modified")
	}

	result := Scan(fixed)
	if !result.Passed {
		t.Fatalf("fixed document still fails: %+v", result.Violations)
	}
	for _, v := range result.Violations {
		switch v.Rule {
		case "no_official_claim", "no_superlative", "no_guarantee", "no_clickbait":
			t.Errorf("banned phrase survived fix: %+v", v)
		}
	}
	if len(fixed.Title) > 65 {
		t.Errorf("title not truncated: %d chars", len(fixed.Title))
	}
	if !strings.HasSuffix(fixed.Title, "...") {
		t.Errorf("truncated title missing ellipsis: %q", fixed.Title)
	}
	last := fixed.Sections[len(fixed.Sections)-1]
	if last.Type != types.SectionDisclosure || last.Content != DisclosureText {
		t.Errorf("disclosure not appended: %+v", last)
	}
}

func TestFixIsIdempotent(t *testing.T) {
	doc := richDoc()
	doc.Sections[0].Content = "Act now: the best, risk-free, 100% guaranteed deal."
	once := Fix(doc)
	twice := Fix(once)
	if !reflect.DeepEqual(once, twice) {
		t.Error("second fix pass changed the document")
	}
}
