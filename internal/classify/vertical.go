// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/halcyon-media/lander-engine/internal/llm"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

// domainRule maps a domain substring to a vertical. Ordered: first
// match wins.
type domainRule struct {
	pattern  string
	vertical types.VerticalType
}

var domainRules = []domainRule{
	{"skyscanner", types.VerticalTravel},
	{"booking.com", types.VerticalTravel},
	{"expedia", types.VerticalTravel},
	{"kayak", types.VerticalTravel},
	{"tripadvisor", types.VerticalTravel},
	{"airbnb", types.VerticalTravel},
	{"hotels.com", types.VerticalTravel},
	{"mcafee", types.VerticalB2BSaaS},
	{"norton", types.VerticalB2BSaaS},
	{"shopify", types.VerticalB2BSaaS},
	{"salesforce", types.VerticalB2BSaaS},
	{"hubspot", types.VerticalB2BSaaS},
	{"stripe", types.VerticalFinance},
	{"paypal", types.VerticalFinance},
	{"robinhood", types.VerticalFinance},
	{"netflix", types.VerticalSubscription},
	{"spotify", types.VerticalSubscription},
	{"amazon", types.VerticalEcommerce},
	{"ebay", types.VerticalEcommerce},
}

// Vertical classifies a brand into a vertical. Known domains resolve
// from the rule table; everything else goes to the LLM. An unparseable
// LLM response degrades to other rather than failing the brand.
func (c *Classifier) Vertical(ctx context.Context, domain, name, description string) (types.VerticalClassification, error) {
	domainLower := strings.ToLower(domain)
	for _, rule := range domainRules {
		if strings.Contains(domainLower, rule.pattern) {
			return types.VerticalClassification{
				Vertical:   rule.vertical,
				Confidence: 0.95,
				Reasoning:  fmt.Sprintf("Domain matches known %s brand: %s", rule.vertical, rule.pattern),
			}, nil
		}
	}

	raw, err := c.backend.Complete(ctx, llm.Request{
		Prompt:      verticalPrompt(domain, name, description),
		Temperature: llmTemperature,
		MaxTokens:   verticalMaxTokens,
	})
	if err != nil {
		return types.VerticalClassification{}, err
	}

	var parsed types.VerticalClassification
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return types.VerticalClassification{
			Vertical:   types.VerticalOther,
			Confidence: 0.5,
			Reasoning:  "Failed to parse LLM response",
		}, nil
	}
	if parsed.Vertical == "" {
		parsed.Vertical = types.VerticalOther
	}
	if parsed.Confidence == 0 {
		parsed.Confidence = 0.7
	}
	if parsed.Reasoning == "" {
		parsed.Reasoning = "LLM classification"
	}
	return parsed, nil
}

func verticalPrompt(domain, name, description string) string {
	descLine := ""
	if description != "" {
		descLine = "Description: " + description
	}
	return fmt.Sprintf(`Classify this brand into exactly one vertical category.

Brand: %s
Domain: %s
%s

Vertical categories (pick ONE):
- travel: Airlines, hotels, booking platforms, vacation services
- ecommerce: Online retail, marketplaces, D2C brands
- b2b_saas: Business software, SaaS tools, developer tools, security software
- finance: Banking, investing, insurance, payments, lending
- subscription: Streaming, media, recurring subscription services
- other: Anything that doesn't fit the above

Respond in JSON: {"verticalType": "...", "confidence": 0.0-1.0, "reasoning": "..."}`,
		name, domain, descLine)
}
