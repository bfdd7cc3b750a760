// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CTAPosition controls where a blueprint's call-to-action renders.
type CTAPosition string

const (
	// CTABoth places the CTA in the hero and again after the content.
	CTABoth CTAPosition = "both"

	// CTABeforeContent places the CTA only in the hero.
	CTABeforeContent CTAPosition = "before_content"

	// CTAAfterContent places the CTA only after the main content.
	CTAAfterContent CTAPosition = "after_content"
)

// CTATemplate is a blueprint's call-to-action template. Text may contain
// {brand}, {origin}, {destination} and {keyword} placeholders.
type CTATemplate struct {
	Text     string      `json:"text" yaml:"text"`
	Position CTAPosition `json:"position" yaml:"position"`
}

// Blueprint defines the section structure of a landing page for one
// (vertical, intent) pair. Blueprints are static editorial designs; the
// generator fills them with keyword- and brand-specific content.
// Per prd001-blueprints R1.1; docs/ARCHITECTURE § Blueprint Registry.
type Blueprint struct {
	// Name uniquely identifies the blueprint (e.g. "travel_route").
	Name string `json:"name" yaml:"name"`

	// Vertical is the business vertical this blueprint serves.
	Vertical VerticalType `json:"verticalType" yaml:"verticalType"`

	// Intent is the search intent this blueprint serves.
	Intent IntentType `json:"intentType" yaml:"intentType"`

	// Description explains when to use the blueprint.
	Description string `json:"description" yaml:"description"`

	// H1Template is the headline template. May contain {keyword}, {brand},
	// {origin} and {destination} placeholders.
	H1Template string `json:"h1Template" yaml:"h1Template"`

	// SectionOrder lists the section types in render order. Types may
	// repeat: each occurrence of a repeated type receives a different
	// instruction from the instruction compiler.
	SectionOrder []SectionType `json:"sectionOrder" yaml:"sectionOrder"`

	// RequiredSections lists section types that must be present in the
	// final document. The generator backfills any that are missing.
	RequiredSections []SectionType `json:"requiredSections" yaml:"requiredSections"`

	// CTA is the blueprint's call-to-action template.
	CTA CTATemplate `json:"ctaTemplate" yaml:"ctaTemplate"`
}

// Requires reports whether t is in the blueprint's required sections.
func (b Blueprint) Requires(t SectionType) bool {
	for _, r := range b.RequiredSections {
		if r == t {
			return true
		}
	}
	return false
}
