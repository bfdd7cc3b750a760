// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compliance

import "github.com/halcyon-media/lander-engine/pkg/types"

// DisclosureText is the canonical affiliate disclosure appended to pages
// that are missing one.
const DisclosureText = "This page contains links to third-party websites. " +
	"We may earn a commission if you make a purchase through these links, " +
	"at no additional cost to you. This does not influence our editorial content."

// Fix returns a corrected copy of the document: banned phrases are
// rewritten to compliant alternatives, numeric ratings become
// qualitative, a disclosure section is appended if missing, and
// over-length title and meta description are truncated. The input
// document is never modified. Fixing is a rewrite pass, not a
// guarantee: structural problems like thin content have no safe
// auto-fix and survive into the result.
func Fix(doc *types.ContentDocument) *types.ContentDocument {
	fixed := doc.Clone()

	fixed.Title = fixText(fixed.Title)
	fixed.MetaDescription = fixText(fixed.MetaDescription)
	fixed.H1 = fixText(fixed.H1)

	for i := range fixed.Sections {
		s := &fixed.Sections[i]
		s.Heading = fixText(s.Heading)
		s.Content = fixText(s.Content)
		s.CTAText = fixText(s.CTAText)
		for _, item := range s.Items {
			for k, v := range item {
				item[k] = fixText(v)
			}
		}
	}

	hasDisclosure := false
	for _, s := range fixed.Sections {
		if s.Type == types.SectionDisclosure {
			hasDisclosure = true
			break
		}
	}
	if !hasDisclosure {
		fixed.Sections = append(fixed.Sections, types.Section{
			Type:    types.SectionDisclosure,
			Heading: "Disclosure",
			Content: DisclosureText,
		})
	}

	if len(fixed.Title) > 65 {
		fixed.Title = fixed.Title[:62] + "..."
	}
	if len(fixed.MetaDescription) > 165 {
		fixed.MetaDescription = fixed.MetaDescription[:162] + "..."
	}

	return fixed
}

func fixText(text string) string {
	if text == "" {
		return ""
	}
	for _, r := range replacements {
		text = r.re.ReplaceAllLiteralString(text, r.to)
	}
	return numericRating.ReplaceAllLiteralString(text, "highly regarded")
}
