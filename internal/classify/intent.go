// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify resolves keywords to search intents and brands to
// verticals. Rule tables decide first; the LLM is a fallback for
// keywords and domains the rules don't cover, and its city claims are
// validated against the literal keyword text before they are trusted.
// Implements: prd006-classification (R1-R5);
//
//	docs/ARCHITECTURE § Classification.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/halcyon-media/lander-engine/internal/llm"
	"github.com/halcyon-media/lander-engine/pkg/types"
)

const (
	llmTemperature     = 0.2
	intentMaxTokens    = 300
	verticalMaxTokens  = 200
	defaultConcurrency = 4
)

// intentPattern is one rule-table row. First match wins.
type intentPattern struct {
	re         *regexp.Regexp
	intent     types.IntentType
	confidence float64
}

var intentPatterns = []intentPattern{
	{regexp.MustCompile(`(?i)\bvs\.?\b|\bversus\b|\bcompare\b|\bcomparison\b|\balternatives?\b`), types.IntentComparison, 0.9},
	{regexp.MustCompile(`(?i)\bpric(?:e|ing|es)\b|\bcost\b|\bplans?\b|\bfree\s+trial\b|\bhow\s+much\b`), types.IntentPricing, 0.9},
	{regexp.MustCompile(`(?i)\breviews?\b|\bworth\s+it\b|\blegit\b|\bscam\b|\breliable\b|\bsafe\b|\btrust\b`), types.IntentValidation, 0.85},
	{regexp.MustCompile(`(?i)\bflights?\s+(?:from\s+)?[\w\s]+\bto\b\s+[\w\s]+`), types.IntentRouteSpecific, 0.9},
	{regexp.MustCompile(`(?i)\w+\s+to\s+\w+\s+(?:flights?|trains?|bus)`), types.IntentRouteSpecific, 0.9},
	{regexp.MustCompile(`(?i)\bflights?\s+to\s+\w+`), types.IntentDestinationSpecific, 0.8},
	{regexp.MustCompile(`(?i)\bbest\s+time\s+to\s+(?:visit|travel|fly)\s+\w+`), types.IntentDestinationSpecific, 0.85},
	// Generic travel keywords are comparisons, never destination pages.
	{regexp.MustCompile(`(?i)\bcheap\s+(?:flights?|hotels?|travel)\b`), types.IntentComparison, 0.75},
	{regexp.MustCompile(`(?i)\bhow\s+to\b|\bfix\b|\bsolve\b|\btroubleshoot\b|\bsetup\b|\binstall\b`), types.IntentProblemSolution, 0.85},
	{regexp.MustCompile(`(?i)\bfor\s+(?:small\s+)?business\b|\bfor\s+(?:students?|teams?|enterprise|beginners?)\b`), types.IntentUseCase, 0.85},
	{regexp.MustCompile(`(?i)\bbuy\b|\bsign\s+up\b|\bdownload\b|\bsubscribe\b|\bget\s+started\b|\bdiscount\b|\bcoupon\b|\bpromo\b|\bdeals?\b`), types.IntentTransactional, 0.85},
	{regexp.MustCompile(`(?i)\bwhat\s+is\b|\bguide\b|\btutorial\b|\bexplain\b|\boverview\b|\bintroduction\b`), types.IntentInformational, 0.8},
}

// majorCities is the substring table for city detection in keywords.
var majorCities = []string{
	"london", "paris", "new york", "tokyo", "dubai", "singapore", "bangkok",
	"amsterdam", "barcelona", "rome", "berlin", "istanbul", "hong kong",
	"los angeles", "chicago", "san francisco", "mumbai", "delhi", "sydney",
	"toronto", "miami", "seattle", "boston", "madrid", "lisbon", "prague",
	"vienna", "zurich", "athens", "cairo", "cape town", "nairobi",
	"manchester", "edinburgh", "dublin", "glasgow", "birmingham",
}

// DetectCities returns the known city names present in a keyword, in
// table order.
func DetectCities(keyword string) []string {
	kw := strings.ToLower(keyword)
	var cities []string
	for _, city := range majorCities {
		if strings.Contains(kw, city) {
			cities = append(cities, city)
		}
	}
	return cities
}

// Classifier resolves intents and verticals.
type Classifier struct {
	backend llm.Backend
	cfg     types.ClassifyConfig
}

// New builds a Classifier. The backend is only consulted for inputs
// the rule tables can't decide.
func New(backend llm.Backend, cfg types.ClassifyConfig) *Classifier {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaultConcurrency
	}
	return &Classifier{backend: backend, cfg: cfg}
}

// Intent classifies a keyword's search intent. Rules run first; for a
// travel brand, detected cities override the matched intent with a
// route or destination page. Location intents are downgraded when the
// keyword doesn't carry the cities to support them — a location page
// for a keyword with no location is a fabrication.
func (c *Classifier) Intent(ctx context.Context, keyword string, vertical types.VerticalType) (types.IntentClassification, error) {
	cities := DetectCities(keyword)

	for _, p := range intentPatterns {
		if !p.re.MatchString(keyword) {
			continue
		}

		if vertical == types.VerticalTravel && len(cities) >= 2 {
			return types.IntentClassification{
				Intent:     types.IntentRouteSpecific,
				Confidence: 0.95,
				Reasoning:  fmt.Sprintf("Detected route between %s and %s", cities[0], cities[1]),
				Entities:   types.Entities{Cities: cities},
			}, nil
		}
		if vertical == types.VerticalTravel && len(cities) == 1 {
			return types.IntentClassification{
				Intent:     types.IntentDestinationSpecific,
				Confidence: 0.9,
				Reasoning:  "Detected destination: " + cities[0],
				Entities:   types.Entities{Cities: cities},
			}, nil
		}

		intent := p.intent
		switch {
		case intent == types.IntentDestinationSpecific && len(cities) == 0:
			intent = types.IntentComparison
		case intent == types.IntentRouteSpecific && len(cities) == 1:
			intent = types.IntentDestinationSpecific
		case intent == types.IntentRouteSpecific && len(cities) == 0:
			intent = types.IntentComparison
		}

		reasoning := "Matched pattern: " + p.re.String()
		if intent != p.intent {
			reasoning += fmt.Sprintf(" (downgraded from %s: no cities in keyword)", p.intent)
		}
		return types.IntentClassification{
			Intent:     intent,
			Confidence: p.confidence,
			Reasoning:  reasoning,
			Entities:   types.Entities{Cities: cities},
		}, nil
	}

	return c.intentFallback(ctx, keyword, vertical)
}

// intentFallback asks the LLM. City names it reports are kept only if
// they literally appear in the keyword; location intents without
// surviving cities are downgraded the same way the rule path does.
func (c *Classifier) intentFallback(ctx context.Context, keyword string, vertical types.VerticalType) (types.IntentClassification, error) {
	raw, err := c.backend.Complete(ctx, llm.Request{
		Prompt:      intentPrompt(keyword, vertical),
		Temperature: llmTemperature,
		MaxTokens:   intentMaxTokens,
	})
	if err != nil {
		return types.IntentClassification{}, err
	}

	var parsed types.IntentClassification
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return types.IntentClassification{
			Intent:     types.IntentInformational,
			Confidence: 0.5,
			Reasoning:  "Failed to parse LLM response",
		}, nil
	}

	kwLower := strings.ToLower(keyword)
	var cities []string
	for _, city := range parsed.Entities.Cities {
		if strings.Contains(kwLower, strings.ToLower(city)) {
			cities = append(cities, city)
		}
	}
	parsed.Entities.Cities = cities

	if parsed.Intent == "" {
		parsed.Intent = types.IntentInformational
	}
	if parsed.Confidence == 0 {
		parsed.Confidence = 0.6
	}
	if parsed.Reasoning == "" {
		parsed.Reasoning = "LLM classification"
	}

	if parsed.Intent == types.IntentDestinationSpecific && len(cities) == 0 {
		parsed.Intent = types.IntentComparison
		parsed.Reasoning = fmt.Sprintf("Downgraded from destination_specific: no city names found in keyword %q", keyword)
	}
	if parsed.Intent == types.IntentRouteSpecific && len(cities) < 2 {
		if len(cities) == 1 {
			parsed.Intent = types.IntentDestinationSpecific
		} else {
			parsed.Intent = types.IntentComparison
		}
		parsed.Reasoning = fmt.Sprintf("Downgraded from route_specific: insufficient city names in keyword %q", keyword)
	}

	return parsed, nil
}

func intentPrompt(keyword string, vertical types.VerticalType) string {
	verticalLine := ""
	if vertical != "" {
		verticalLine = "Brand vertical: " + string(vertical)
	}
	return fmt.Sprintf(`Classify the search intent of this keyword.

Keyword: "%s"
%s

Intent categories (pick ONE):
- transactional: User wants to buy, sign up, or take action
- comparison: User wants to compare products/services
- validation: User wants reviews, trust signals, or legitimacy check
- pricing: User wants pricing info, plans, costs
- route_specific: User searching for travel between two specific named locations (both origin and destination MUST be explicitly mentioned)
- destination_specific: User searching about traveling to a specific named place (the place name MUST appear in the keyword)
- use_case: User looking for a solution for a specific use case
- problem_solution: User has a problem and wants to solve it
- informational: User wants general information or education

CRITICAL RULES:
- Only use "route_specific" if TWO specific city/location names are explicitly mentioned in the keyword.
- Only use "destination_specific" if a specific city/location name is explicitly mentioned in the keyword.
- NEVER invent, assume, or hallucinate city names that are NOT literally present in the keyword text.
- If the keyword is generic (e.g. "best flight comparison site", "cheap flights"), classify as "comparison" or "informational", NOT "destination_specific".
- detectedEntities.cities should ONLY contain city names that literally appear in the keyword text.

Also extract any entities: city names, brand names, product names, dates/months.

Respond in JSON: {"intentType": "...", "confidence": 0.0-1.0, "reasoning": "...", "detectedEntities": {"cities": [], "brands": [], "products": []}}`,
		keyword, verticalLine)
}
