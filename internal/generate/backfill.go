// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"strings"

	"github.com/halcyon-media/lander-engine/internal/compliance"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

// backfillRequired patches holes the model left in the document: a
// missing disclosure or FAQ section is appended, and a hero without a
// CTA gets one built from the blueprint's CTA template. The model
// regularly forgets these on long pages; a page without a disclosure
// can never pass the scan.
func backfillRequired(doc *types.ContentDocument, in Input) {
	hasDisclosure, hasFAQ := false, false
	for _, s := range doc.Sections {
		switch s.Type {
		case types.SectionDisclosure:
			hasDisclosure = true
		case types.SectionFAQ:
			hasFAQ = true
		}
	}

	if !hasDisclosure {
		doc.Sections = append(doc.Sections, types.Section{
			Type:    types.SectionDisclosure,
			Heading: "Disclosure",
			Content: compliance.DisclosureText,
		})
	}

	if !hasFAQ {
		doc.Sections = append(doc.Sections, types.Section{
			Type:    types.SectionFAQ,
			Heading: "Frequently Asked Questions",
			Items: []map[string]string{
				{
					"question": "What is " + in.BrandName + "?",
					"answer": in.BrandName + " is a service available at " + in.BrandDomain +
						". Visit their website for the most current information about their offerings and features.",
				},
			},
		})
	}

	for i := range doc.Sections {
		s := &doc.Sections[i]
		if s.Type != types.SectionHero || s.CTAURL != "" {
			continue
		}
		s.CTAURL = in.DestinationURL
		s.CTAText = expandCTA(in.Blueprint.CTA.Text, in.BrandName, in.Entities)
	}
}

// expandCTA fills a CTA template's placeholders. A missing destination
// falls back to the origin city so single-city keywords still read
// naturally; with no cities at all the placeholders collapse to "".
func expandCTA(tmpl, brand string, e types.Entities) string {
	r := strings.NewReplacer(
		"{brand}", brand,
		"{origin}", e.Origin(),
		"{destination}", e.Destination(),
	)
	return strings.TrimSpace(r.Replace(tmpl))
}
