// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package branddata

import (
	"fmt"
	"time"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

// buildResearchPrompt returns the per-facet research prompt. Every
// prompt opens with the anti-fabrication preamble and pins the JSON
// shape the store expects back.
func buildResearchPrompt(dataType types.BrandDataType, brandName, brandDomain string, now time.Time) string {
	base := fmt.Sprintf(`You are a research analyst. Provide ONLY factual, publicly verifiable information about %s (%s). If you are not confident about specific data points, use "Not publicly disclosed" or approximate ranges. Do NOT fabricate specific numbers.`,
		brandName, brandDomain)
	month := now.Format("January 2006")

	switch dataType {
	case types.BrandDataPricing:
		return fmt.Sprintf(`%s

Research the current pricing structure for %s.

Return JSON:
{
  "plans": [
    {
      "name": "Plan name",
      "price": "Price (e.g. '$9.99/mo' or 'Free' or 'Contact sales')",
      "billingCycle": "monthly|annual|one-time",
      "features": ["Feature 1", "Feature 2", ...],
      "bestFor": "Who this plan is ideal for"
    }
  ],
  "currency": "USD",
  "freeTrialAvailable": true/false,
  "lastVerified": "%s"
}

If pricing is not publicly available, return plans with "Contact for pricing" and list known feature tiers.`, base, brandName, month)

	case types.BrandDataFeatures:
		return fmt.Sprintf(`%s

Research the core features and capabilities of %s.

Return JSON:
{
  "coreFeatures": [
    {
      "name": "Feature name",
      "description": "What it does and why it matters (1-2 sentences)",
      "category": "Category (e.g. Search, Booking, Analytics, Security)"
    }
  ],
  "platforms": ["Web", "iOS", "Android", etc.],
  "integrations": ["Notable integrations"],
  "lastVerified": "%s"
}

List 8-15 core features. Focus on what differentiates %s from competitors.`, base, brandName, month, brandName)

	case types.BrandDataProsCons:
		return fmt.Sprintf(`%s

Research the commonly cited advantages and disadvantages of %s based on public reviews and expert analysis.

Return JSON:
{
  "pros": ["Advantage 1", "Advantage 2", ...],
  "cons": ["Disadvantage 1", "Disadvantage 2", ...],
  "bestFor": ["User type 1 who benefits most", ...],
  "notIdealFor": ["User type who might want alternatives", ...],
  "lastVerified": "%s"
}

List 5-8 pros and 4-6 cons. Be balanced and honest. Base these on commonly reported user experiences.`, base, brandName, month)

	case types.BrandDataCompanyInfo:
		return fmt.Sprintf(`%s

Research basic company information about %s.

Return JSON:
{
  "founded": "Year founded",
  "headquarters": "City, Country",
  "employees": "Approximate employee count or range",
  "funding": "Funding status (e.g. 'Series C, $200M raised' or 'Publicly traded' or 'Bootstrapped')",
  "ceo": "CEO/Founder name",
  "description": "2-3 sentence company description",
  "markets": ["Primary markets served"],
  "lastVerified": "%s"
}

Use only publicly known information. Use "Not publicly disclosed" for unknown fields.`, base, brandName, month)

	case types.BrandDataCompetitors:
		return fmt.Sprintf(`%s

Research the main competitors of %s in the same market.

Return JSON:
{
  "competitors": [
    {
      "name": "Competitor name",
      "domain": "competitor.com",
      "differentiator": "How they differ from %s (1 sentence)"
    }
  ],
  "lastVerified": "%s"
}

List 4-6 direct competitors. Focus on well-known alternatives users commonly compare.`, base, brandName, brandName, month)
	}

	return fmt.Sprintf("%s\n\nResearch general information about %s. Return as JSON.", base, brandName)
}
