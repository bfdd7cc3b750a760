// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"fmt"
	"strings"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

// groundingContext renders stored brand data as the VERIFIED BRAND DATA
// block injected into the generation prompt. An empty string means no
// facet is available and the page is generated ungrounded.
func groundingContext(data types.BrandData) string {
	var parts []string

	if info := data.CompanyInfo; info != nil {
		parts = append(parts, fmt.Sprintf(`COMPANY INFO:
- Description: %s
- Founded: %s
- Headquarters: %s
- Employees: %s
- Markets: %s`,
			orNA(info.Description),
			orNA(info.Founded),
			orNA(info.Headquarters),
			orNA(info.Employees),
			orNA(strings.Join(info.Markets, ", "))))
	}

	if pricing := data.Pricing; pricing != nil && len(pricing.Plans) > 0 {
		var lines []string
		for _, p := range pricing.Plans {
			cycle := ""
			if p.BillingCycle != "" {
				cycle = fmt.Sprintf(" (%s)", p.BillingCycle)
			}
			bestFor := p.BestFor
			if bestFor == "" {
				bestFor = "General use"
			}
			features := p.Features
			if len(features) > 5 {
				features = features[:5]
			}
			lines = append(lines, fmt.Sprintf("  • %s: %s%s — %s. Features: %s",
				p.Name, p.Price, cycle, bestFor, orNA(strings.Join(features, ", "))))
		}
		verified := pricing.LastVerified
		if verified == "" {
			verified = "recently verified"
		}
		trial := "No/Unknown"
		if pricing.FreeTrialAvailable {
			trial = "Yes"
		}
		parts = append(parts, fmt.Sprintf("PRICING DATA (%s):\n%s\n- Free trial: %s",
			verified, strings.Join(lines, "\n"), trial))
	}

	if features := data.Features; features != nil && len(features.CoreFeatures) > 0 {
		core := features.CoreFeatures
		if len(core) > 12 {
			core = core[:12]
		}
		var lines []string
		for _, f := range core {
			lines = append(lines, fmt.Sprintf("  • %s: %s", f.Name, f.Description))
		}
		parts = append(parts, fmt.Sprintf("CORE FEATURES:\n%s\n- Platforms: %s",
			strings.Join(lines, "\n"), orNA(strings.Join(features.Platforms, ", "))))
	}

	if pc := data.ProsCons; pc != nil {
		parts = append(parts, fmt.Sprintf(`PROS & CONS:
Pros: %s
Cons: %s
Best for: %s
Not ideal for: %s`,
			orNA(strings.Join(pc.Pros, "; ")),
			orNA(strings.Join(pc.Cons, "; ")),
			orNA(strings.Join(pc.BestFor, "; ")),
			orNA(strings.Join(pc.NotIdealFor, "; "))))
	}

	if comp := data.Competitors; comp != nil && len(comp.Competitors) > 0 {
		var lines []string
		for _, c := range comp.Competitors {
			lines = append(lines, fmt.Sprintf("  • %s (%s): %s", c.Name, c.Domain, c.Differentiator))
		}
		parts = append(parts, "COMPETITORS:\n"+strings.Join(lines, "\n"))
	}

	if len(parts) == 0 {
		return ""
	}

	return "\n\n═══ VERIFIED BRAND DATA (use this as ground truth) ═══\n" +
		strings.Join(parts, "\n\n") +
		"\n═══ END BRAND DATA ═══\n\n" +
		"IMPORTANT: Use the above data in your content. Reference specific pricing tiers, " +
		"features, and pros/cons. When the data says something specific, cite it. " +
		"This data has been verified — you can make direct factual statements about it " +
		"instead of hedging.\n"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
