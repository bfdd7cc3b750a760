// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/halcyon-media/lander-engine/internal/blueprint"
	"github.com/halcyon-media/lander-engine/internal/compliance"
	"github.com/halcyon-media/lander-engine/internal/instruction"
)

// pageTmpl is the prompt sent to the model for a full page. It carries
// the blueprint's numbered section instructions, the verified brand
// data block when one exists, and the depth and content rules the
// compliance scanner enforces afterwards.
var pageTmpl = template.Must(template.New("page").Parse(`You are an expert editorial writer creating an authoritative, comprehensive, in-depth informational guide — similar in quality and depth to NerdWallet, Wirecutter, The Points Guy, or Consumer Reports.

CONTEXT:
- Brand: {{.Brand}} ({{.BrandDomain}})
- Vertical: {{.Vertical}}
- Search keyword: "{{.Keyword}}"
- User intent: {{.Intent}}
{{- if .Cities}}
- Detected cities: {{.Cities}}
{{- end}}
{{.GroundingContext}}
PAGE BLUEPRINT: {{.BlueprintName}}
H1 Template: {{.H1Template}}

GENERATE these sections in order:
{{.SectionInstructions}}

CRITICAL LOCATION/DESTINATION RULE:
- The search keyword is: "{{.Keyword}}"
- Detected cities from keyword: {{if .Cities}}{{.Cities}}{{else}}NONE{{end}}
- If NO cities are listed above, you MUST NOT mention, reference, or focus on ANY specific city, destination, or location. Keep the content general and applicable to any destination.
- NEVER invent or assume a destination.
- Only mention specific cities/destinations if they are listed in the detected cities above.

CONTENT DEPTH REQUIREMENTS (CRITICAL — pages will be rejected if too thin):
1. The TOTAL page content must be 4000-6000 words. This is non-negotiable.
2. Each content_block MUST be 400-700 words with 3-5 subsections using ### headings.
3. Every paragraph must contain specific, actionable information — NO filler, NO generic platitudes.
4. Write with the authority and depth of a journalist who has spent weeks researching this topic.
5. Include specific numbers, timeframes, tool names, strategies, and concrete examples throughout.
6. Every section should teach the reader something they didn't know before.
7. Use ### for subheadings within content_blocks. NEVER use **Subheading:** prefix — just use ### directly.
8. Comparison tables MUST have 5-8 rows with 4+ meaningful columns.
9. FAQ must have 6-8 questions with detailed answers (5-8 sentences each). Cover pricing, features, comparisons, how-to, and edge cases.
10. Tips must include 6-8 items, each with specific "do this" advice including tool names, timeframes, or strategies.
11. Include transition sentences between major points for narrative flow.
12. Write as if the reader will make a purchasing decision based solely on your content.

INTERACTIVE SECTION FORMATS:

For "calculator" sections, respond with:
{
  "type": "calculator",
  "heading": "Your Savings Estimate",
  "config": {
    "type": "flight|subscription|general",
    "baselineLabel": "Average spend",
    "baselineAmount": 500,
    "savingsPercentMin": 10,
    "savingsPercentMax": 35,
    "tips": [
      {"threshold": 1000, "tip": "For budgets over $1000, consider..."},
      {"threshold": 500, "tip": "At this budget level..."},
      {"threshold": 0, "tip": "Even for smaller budgets..."}
    ]
  }
}

For "checklist" sections, respond with:
{
  "type": "checklist",
  "heading": "Your Pre-Booking Checklist",
  "content": "Brief description",
  "checklistItems": [
    {"task": "Compare prices across 3+ platforms", "detail": "Use Skyscanner, Google Flights, and Kayak to cross-reference", "priority": "high"},
    {"task": "Check baggage policies", "detail": "Budget carriers often charge extra", "priority": "medium"}
  ]
}

For "scorecard" sections, respond with:
{
  "type": "scorecard",
  "heading": "Platform Evaluation Scorecard",
  "overallScore": 8,
  "overallLabel": "Strong choice for most travelers",
  "categories": [
    {"name": "Ease of Use", "score": 9, "maxScore": 10, "detail": "Intuitive interface with powerful filters"},
    {"name": "Price Accuracy", "score": 7, "maxScore": 10, "detail": "Generally accurate, occasional discrepancies"},
    {"name": "Coverage", "score": 8, "maxScore": 10, "detail": "Covers 1200+ airlines worldwide"}
  ],
  "verdict": "Editorial verdict paragraph here..."
}

For "pros_cons" sections, respond with:
{
  "type": "pros_cons",
  "heading": "Advantages & Limitations",
  "pros": [
    {"text": "Major advantage here", "detail": "Extra context", "weight": "major"},
    {"text": "Minor advantage", "weight": "minor"}
  ],
  "cons": [
    {"text": "Notable limitation", "detail": "Context", "weight": "major"},
    {"text": "Minor drawback", "weight": "minor"}
  ],
  "bottomLine": "Overall assessment paragraph..."
}

STRICT CONTENT RULES — MUST FOLLOW:
1. NEVER use: "official", "guaranteed", "top rated", "#1", "most secure", "instant approval"
2. NEVER include numeric ratings (e.g., "4.5/5", "9/10") in text content — only in scorecard sections
3. NEVER fabricate statistics or data points not provided in the BRAND DATA section
4. NEVER use unqualified superlatives ("cheapest", "fastest", "most popular")
5. Use hedging language for unverified claims: "may", "can", "typically", "often", "many users find"
6. {{if .Grounded}}You CAN make direct factual statements about data from the VERIFIED BRAND DATA section above.{{else}}All claims must be verifiable or clearly qualified.{{end}}
7. Content must genuinely and thoroughly solve the user's search intent
8. Write in a professional, authoritative editorial tone
9. Include transition sentences between sections for narrative coherence
10. Every content_block needs at minimum 3 subsections with ### headings

CTA RULES:
- CTA text: "{{.CTAText}}" (replace placeholders with actual values)
- CTA URL: "{{.DestinationURL}}"
- CTA must be clearly labeled as an outbound link
- No deceptive button text

DISCLOSURE SECTION (REQUIRED):
- Must include: "{{.Disclosure}}"

Respond in JSON matching this structure:
{
  "title": "SEO title tag (50-60 chars)",
  "metaDescription": "Meta description (150-160 chars)",
  "h1": "Main heading",
  "sections": [
    {
      "type": "hero|quick_answer|content_block|comparison_table|pricing_table|tips|steps|faq|cta|disclosure|calculator|checklist|scorecard|pros_cons",
      "heading": "Section heading",
      "subheading": "Optional subheading (for hero)",
      "content": "Section body text (for content_block, disclosure, quick_answer)",
      "items": [{"key": "value"}],
      "highlights": [{"label": "...", "value": "..."}],
      "rows": [{"col1": "...", "col2": "..."}],
      "ctaText": "Button text",
      "ctaUrl": "URL",
      "config": {},
      "checklistItems": [],
      "overallScore": 8,
      "overallLabel": "",
      "categories": [],
      "verdict": "",
      "pros": [],
      "cons": [],
      "bottomLine": ""
    }
  ]
}`))

// promptData is the template context for pageTmpl.
type promptData struct {
	Brand               string
	BrandDomain         string
	Vertical            string
	Intent              string
	Keyword             string
	Cities              string
	GroundingContext    string
	BlueprintName       string
	H1Template          string
	SectionInstructions string
	Grounded            bool
	CTAText             string
	DestinationURL      string
	Disclosure          string
}

// renderPrompt builds the full generation prompt for one page.
func renderPrompt(in Input, grounding string) (string, error) {
	grounded := grounding != ""
	lines := instruction.Compile(in.Blueprint, instruction.Context{
		Keyword:        in.Keyword,
		Brand:          in.BrandName,
		BrandDomain:    in.BrandDomain,
		DestinationURL: in.DestinationURL,
		Entities:       in.Entities,
		Grounded:       grounded,
	})

	data := promptData{
		Brand:               in.BrandName,
		BrandDomain:         in.BrandDomain,
		Vertical:            string(in.Vertical),
		Intent:              string(in.Intent),
		Keyword:             in.Keyword,
		Cities:              strings.Join(in.Entities.Cities, ", "),
		GroundingContext:    grounding,
		BlueprintName:       in.Blueprint.Name,
		H1Template:          blueprint.ExpandH1(in.Blueprint, in.Keyword, in.BrandName, in.Entities),
		SectionInstructions: strings.Join(lines, "\n"),
		Grounded:            grounded,
		CTAText:             in.Blueprint.CTA.Text,
		DestinationURL:      in.DestinationURL,
		Disclosure:          compliance.DisclosureText,
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
