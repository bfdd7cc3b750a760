// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compliance scans generated page documents for affiliate-policy
// violations and auto-rewrites the ones that have a safe fix.
// Implements: prd004-compliance (R1-R4);
//
//	docs/ARCHITECTURE § Compliance Scanner.
package compliance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

// textField is one scannable string with its document location.
type textField struct {
	location string
	text     string
}

// collectFields flattens the document into scannable text fields in
// document order. Only user-visible copy is scanned; structured fields
// like URLs and calculator configs are not prose.
func collectFields(doc *types.ContentDocument) []textField {
	fields := []textField{
		{"title", doc.Title},
		{"metaDescription", doc.MetaDescription},
		{"h1", doc.H1},
	}
	for idx, s := range doc.Sections {
		loc := fmt.Sprintf("sections[%d].%s", idx, s.Type)
		if s.Heading != "" {
			fields = append(fields, textField{loc + ".heading", s.Heading})
		}
		if s.Content != "" {
			fields = append(fields, textField{loc + ".content", s.Content})
		}
		if s.CTAText != "" {
			fields = append(fields, textField{loc + ".ctaText", s.CTAText})
		}
		for iIdx, item := range s.Items {
			itemLoc := fmt.Sprintf("%s.items[%d]", loc, iIdx)
			for _, k := range sortedKeys(item) {
				fields = append(fields, textField{itemLoc, item[k]})
			}
		}
		for hIdx, h := range s.Highlights {
			fields = append(fields, textField{
				fmt.Sprintf("%s.highlights[%d]", loc, hIdx),
				h.Label + " " + h.Value,
			})
		}
	}
	return fields
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Scan checks a document against the banned-phrase rules, structural
// requirements, and depth targets. The score starts at 100, loses 20
// per critical and 5 per warning, earns depth bonuses, and is clamped
// to [0, 100] last. Passed means zero critical violations; warnings
// alone never fail a page.
func Scan(doc *types.ContentDocument) types.ScanResult {
	fields := collectFields(doc)
	var violations []types.Violation

	for _, f := range fields {
		for _, b := range bannedPhrases {
			if m := b.re.FindString(f.text); m != "" {
				violations = append(violations, types.Violation{
					Rule:       b.rule,
					Severity:   b.severity,
					Location:   f.location,
					Original:   m,
					Suggestion: b.suggestion,
				})
			}
		}
		if m := numericRating.FindString(f.text); m != "" {
			violations = append(violations, types.Violation{
				Rule:       "no_numeric_rating",
				Severity:   types.SeverityCritical,
				Location:   f.location,
				Original:   m,
				Suggestion: "Remove numeric rating — use qualitative descriptions instead",
			})
		}
		if m := fabricatedStat.FindString(f.text); m != "" {
			violations = append(violations, types.Violation{
				Rule:       "no_unverifiable_stats",
				Severity:   types.SeverityWarning,
				Location:   f.location,
				Original:   m,
				Suggestion: "Remove unattributed study references — state facts directly or cite specific sources",
			})
		}
	}

	var faqSection *types.Section
	sectionTypes := make(map[types.SectionType]struct{})
	for i := range doc.Sections {
		sectionTypes[doc.Sections[i].Type] = struct{}{}
		if doc.Sections[i].Type == types.SectionFAQ && faqSection == nil {
			faqSection = &doc.Sections[i]
		}
	}

	if _, ok := sectionTypes[types.SectionDisclosure]; !ok {
		violations = append(violations, types.Violation{
			Rule:       "missing_disclosure",
			Severity:   types.SeverityCritical,
			Location:   "sections",
			Original:   "(missing)",
			Suggestion: "Add disclosure section about affiliate links",
		})
	}
	if faqSection == nil {
		violations = append(violations, types.Violation{
			Rule:       "missing_faq",
			Severity:   types.SeverityWarning,
			Location:   "sections",
			Original:   "(missing)",
			Suggestion: "Add FAQ section for comprehensive content",
		})
	}

	if len(doc.Title) > 65 {
		violations = append(violations, types.Violation{
			Rule:       "title_too_long",
			Severity:   types.SeverityWarning,
			Location:   "title",
			Original:   doc.Title,
			Suggestion: "Shorten title to under 65 characters",
		})
	}
	if len(doc.MetaDescription) > 165 {
		violations = append(violations, types.Violation{
			Rule:       "meta_too_long",
			Severity:   types.SeverityWarning,
			Location:   "metaDescription",
			Original:   doc.MetaDescription,
			Suggestion: "Shorten meta description to under 165 characters",
		})
	}

	totalWords := 0
	for _, f := range fields {
		totalWords += len(strings.Fields(f.text))
	}
	switch {
	case totalWords < 1500:
		violations = append(violations, types.Violation{
			Rule:       "content_too_thin",
			Severity:   types.SeverityCritical,
			Location:   "sections",
			Original:   fmt.Sprintf("Total word count: %d", totalWords),
			Suggestion: "Content must be at least 1500 words. Current content is too thin to provide real user value.",
		})
	case totalWords < 2500:
		violations = append(violations, types.Violation{
			Rule:       "content_below_target",
			Severity:   types.SeverityWarning,
			Location:   "sections",
			Original:   fmt.Sprintf("Total word count: %d", totalWords),
			Suggestion: "Target at least 3000 words for comprehensive coverage.",
		})
	}

	if len(sectionTypes) < 5 {
		violations = append(violations, types.Violation{
			Rule:       "low_section_diversity",
			Severity:   types.SeverityWarning,
			Location:   "sections",
			Original:   fmt.Sprintf("Only %d unique section types", len(sectionTypes)),
			Suggestion: "Include more varied sections (tables, tips, FAQ, checklists) for richer content.",
		})
	}

	if faqSection != nil && len(faqSection.Items) < 5 {
		violations = append(violations, types.Violation{
			Rule:       "faq_too_few",
			Severity:   types.SeverityWarning,
			Location:   "sections.faq",
			Original:   fmt.Sprintf("Only %d FAQ items", len(faqSection.Items)),
			Suggestion: "Include at least 5 FAQ items for comprehensive coverage.",
		})
	}

	contentBlocks := 0
	for _, s := range doc.Sections {
		if s.Type != types.SectionContentBlock || s.Content == "" {
			continue
		}
		wc := len(strings.Fields(s.Content))
		if wc < 200 {
			heading := s.Heading
			if heading == "" {
				heading = "untitled"
			}
			violations = append(violations, types.Violation{
				Rule:       "thin_content_block",
				Severity:   types.SeverityWarning,
				Location:   fmt.Sprintf("sections.content_block[%d]", contentBlocks),
				Original:   fmt.Sprintf("%d words in %q", wc, heading),
				Suggestion: "Each content block should be at least 300 words with subsections.",
			})
		}
		contentBlocks++
	}

	criticals, warnings := 0, 0
	for _, v := range violations {
		switch v.Severity {
		case types.SeverityCritical:
			criticals++
		case types.SeverityWarning:
			warnings++
		}
	}

	score := 100 - criticals*20 - warnings*5
	if totalWords >= 3000 {
		score += 5
	}
	if totalWords >= 4000 {
		score += 5
	}
	if len(sectionTypes) >= 7 {
		score += 5
	}
	if len(sectionTypes) >= 9 {
		score += 5
	}
	if faqSection != nil && len(faqSection.Items) >= 6 {
		score += 3
	}
	if contentBlocks >= 3 {
		score += 3
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return types.ScanResult{
		Passed:     criticals == 0,
		Score:      score,
		Violations: violations,
	}
}
