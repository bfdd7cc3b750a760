// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SectionType identifies the kind of a page section. Each kind implies
// which Section fields are populated. Per prd001-blueprints R1.2.
type SectionType string

const (
	SectionHero            SectionType = "hero"
	SectionQuickAnswer     SectionType = "quick_answer"
	SectionComparisonTable SectionType = "comparison_table"
	SectionPricingTable    SectionType = "pricing_table"
	SectionContentBlock    SectionType = "content_block"
	SectionFAQ             SectionType = "faq"
	SectionCTA             SectionType = "cta"
	SectionTips            SectionType = "tips"
	SectionSteps           SectionType = "steps"
	SectionDisclosure      SectionType = "disclosure"
	SectionCalculator      SectionType = "calculator"
	SectionChecklist       SectionType = "checklist"
	SectionScorecard       SectionType = "scorecard"
	SectionProsCons        SectionType = "pros_cons"
)

// SectionTypes lists every valid section type.
var SectionTypes = []SectionType{
	SectionHero,
	SectionQuickAnswer,
	SectionComparisonTable,
	SectionPricingTable,
	SectionContentBlock,
	SectionFAQ,
	SectionCTA,
	SectionTips,
	SectionSteps,
	SectionDisclosure,
	SectionCalculator,
	SectionChecklist,
	SectionScorecard,
	SectionProsCons,
}

// Highlight is a labeled value in a quick_answer section
// (e.g. label "Cheapest month", value "February").
type Highlight struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// CalculatorTip is a savings tip surfaced when the calculator input
// crosses a threshold amount.
type CalculatorTip struct {
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Tip       string  `json:"tip" yaml:"tip"`
}

// CalculatorConfig configures an interactive savings calculator section.
type CalculatorConfig struct {
	// Type names the calculator variant (e.g. "savings").
	Type string `json:"type" yaml:"type"`

	// BaselineLabel describes the user input (e.g. "Average hotel price per night").
	BaselineLabel string `json:"baselineLabel" yaml:"baselineLabel"`

	// BaselineAmount is the pre-filled input value.
	BaselineAmount float64 `json:"baselineAmount" yaml:"baselineAmount"`

	// SavingsPercentMin and SavingsPercentMax bound the projected savings range.
	SavingsPercentMin float64 `json:"savingsPercentMin" yaml:"savingsPercentMin"`
	SavingsPercentMax float64 `json:"savingsPercentMax" yaml:"savingsPercentMax"`

	// Tips are threshold-gated savings tips.
	Tips []CalculatorTip `json:"tips,omitempty" yaml:"tips,omitempty"`
}

// ChecklistItem is one task in a checklist section.
type ChecklistItem struct {
	Task     string `json:"task" yaml:"task"`
	Detail   string `json:"detail" yaml:"detail"`
	Priority string `json:"priority" yaml:"priority"`
}

// ScoreCategory is one scored dimension in a scorecard section.
type ScoreCategory struct {
	Name     string  `json:"name" yaml:"name"`
	Score    float64 `json:"score" yaml:"score"`
	MaxScore float64 `json:"maxScore" yaml:"maxScore"`
	Detail   string  `json:"detail" yaml:"detail"`
}

// ProConItem is one entry in a pros_cons section.
type ProConItem struct {
	Text   string `json:"text" yaml:"text"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Weight string `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Section is one block of a generated page. Type determines which of the
// optional field groups is populated; the flat shape keeps the document
// JSON identical to what downstream renderers consume.
// Per prd003-generation R2.1; docs/ARCHITECTURE § Content Documents.
type Section struct {
	// Type identifies the section kind.
	Type SectionType `json:"type" yaml:"type"`

	// Heading is the section heading (H2-level).
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`

	// Subheading is an optional secondary heading.
	Subheading string `json:"subheading,omitempty" yaml:"subheading,omitempty"`

	// Content is markdown prose (content_block, hero, disclosure, ...).
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// Items holds keyed string records: FAQ question/answer pairs,
	// tips, steps.
	Items []map[string]string `json:"items,omitempty" yaml:"items,omitempty"`

	// Highlights holds label/value pairs for quick_answer sections.
	Highlights []Highlight `json:"highlights,omitempty" yaml:"highlights,omitempty"`

	// Rows holds keyed string records for table sections.
	Rows []map[string]string `json:"rows,omitempty" yaml:"rows,omitempty"`

	// CTAText and CTAURL define the call-to-action of hero and cta sections.
	CTAText string `json:"ctaText,omitempty" yaml:"ctaText,omitempty"`
	CTAURL  string `json:"ctaUrl,omitempty" yaml:"ctaUrl,omitempty"`

	// Config configures calculator sections.
	Config *CalculatorConfig `json:"config,omitempty" yaml:"config,omitempty"`

	// ChecklistItems holds the tasks of checklist sections.
	ChecklistItems []ChecklistItem `json:"checklistItems,omitempty" yaml:"checklistItems,omitempty"`

	// OverallScore, OverallLabel, Categories and Verdict belong to
	// scorecard sections. Scores here are editorial and exempt from the
	// numeric-rating compliance rule.
	OverallScore float64         `json:"overallScore,omitempty" yaml:"overallScore,omitempty"`
	OverallLabel string          `json:"overallLabel,omitempty" yaml:"overallLabel,omitempty"`
	Categories   []ScoreCategory `json:"categories,omitempty" yaml:"categories,omitempty"`
	Verdict      string          `json:"verdict,omitempty" yaml:"verdict,omitempty"`

	// Pros, Cons and BottomLine belong to pros_cons sections.
	Pros       []ProConItem `json:"pros,omitempty" yaml:"pros,omitempty"`
	Cons       []ProConItem `json:"cons,omitempty" yaml:"cons,omitempty"`
	BottomLine string       `json:"bottomLine,omitempty" yaml:"bottomLine,omitempty"`
}

// ContentDocument is a complete generated page.
type ContentDocument struct {
	// Title is the SEO title (target <= 65 characters).
	Title string `json:"title" yaml:"title"`

	// MetaDescription is the SEO meta description (target <= 165 characters).
	MetaDescription string `json:"metaDescription" yaml:"metaDescription"`

	// H1 is the on-page headline.
	H1 string `json:"h1" yaml:"h1"`

	// Sections are the page sections, in render order.
	Sections []Section `json:"sections" yaml:"sections"`
}

// Clone returns a deep copy of the document. Mutating the copy never
// affects the original.
func (d *ContentDocument) Clone() *ContentDocument {
	out := &ContentDocument{
		Title:           d.Title,
		MetaDescription: d.MetaDescription,
		H1:              d.H1,
	}
	if d.Sections == nil {
		return out
	}
	out.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		out.Sections[i] = s.clone()
	}
	return out
}

func (s Section) clone() Section {
	c := s
	c.Items = cloneRecords(s.Items)
	c.Rows = cloneRecords(s.Rows)
	if s.Highlights != nil {
		c.Highlights = append([]Highlight(nil), s.Highlights...)
	}
	if s.ChecklistItems != nil {
		c.ChecklistItems = append([]ChecklistItem(nil), s.ChecklistItems...)
	}
	if s.Categories != nil {
		c.Categories = append([]ScoreCategory(nil), s.Categories...)
	}
	if s.Pros != nil {
		c.Pros = append([]ProConItem(nil), s.Pros...)
	}
	if s.Cons != nil {
		c.Cons = append([]ProConItem(nil), s.Cons...)
	}
	if s.Config != nil {
		cfg := *s.Config
		if s.Config.Tips != nil {
			cfg.Tips = append([]CalculatorTip(nil), s.Config.Tips...)
		}
		c.Config = &cfg
	}
	return c
}

func cloneRecords(in []map[string]string) []map[string]string {
	if in == nil {
		return nil
	}
	out := make([]map[string]string, len(in))
	for i, m := range in {
		cp := make(map[string]string, len(m))
		for k, v := range m {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}
