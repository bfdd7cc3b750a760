// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// BrandDataType identifies one researched facet of a brand.
// Per prd005-brand-data R1.1.
type BrandDataType string

const (
	BrandDataPricing     BrandDataType = "pricing"
	BrandDataFeatures    BrandDataType = "features"
	BrandDataProsCons    BrandDataType = "pros_cons"
	BrandDataCompanyInfo BrandDataType = "company_info"
	BrandDataCompetitors BrandDataType = "competitors"
)

// BrandDataTypes lists every researched facet, in research order.
var BrandDataTypes = []BrandDataType{
	BrandDataPricing,
	BrandDataFeatures,
	BrandDataProsCons,
	BrandDataCompanyInfo,
	BrandDataCompetitors,
}

// PricingPlan is one plan in a brand's researched pricing structure.
type PricingPlan struct {
	Name         string   `json:"name" yaml:"name"`
	Price        string   `json:"price" yaml:"price"`
	BillingCycle string   `json:"billingCycle,omitempty" yaml:"billingCycle,omitempty"`
	Features     []string `json:"features,omitempty" yaml:"features,omitempty"`
	BestFor      string   `json:"bestFor,omitempty" yaml:"bestFor,omitempty"`
}

// PricingData is a brand's researched pricing structure.
type PricingData struct {
	Plans              []PricingPlan `json:"plans" yaml:"plans"`
	Currency           string        `json:"currency,omitempty" yaml:"currency,omitempty"`
	FreeTrialAvailable bool          `json:"freeTrialAvailable,omitempty" yaml:"freeTrialAvailable,omitempty"`
	LastVerified       string        `json:"lastVerified,omitempty" yaml:"lastVerified,omitempty"`
}

// BrandFeature is one researched product capability.
type BrandFeature struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
}

// FeaturesData is a brand's researched feature set.
type FeaturesData struct {
	CoreFeatures []BrandFeature `json:"coreFeatures" yaml:"coreFeatures"`
	Platforms    []string       `json:"platforms,omitempty" yaml:"platforms,omitempty"`
	Integrations []string       `json:"integrations,omitempty" yaml:"integrations,omitempty"`
	LastVerified string         `json:"lastVerified,omitempty" yaml:"lastVerified,omitempty"`
}

// ProsConsData holds commonly cited advantages and disadvantages of a brand.
type ProsConsData struct {
	Pros         []string `json:"pros" yaml:"pros"`
	Cons         []string `json:"cons" yaml:"cons"`
	BestFor      []string `json:"bestFor,omitempty" yaml:"bestFor,omitempty"`
	NotIdealFor  []string `json:"notIdealFor,omitempty" yaml:"notIdealFor,omitempty"`
	LastVerified string   `json:"lastVerified,omitempty" yaml:"lastVerified,omitempty"`
}

// CompanyInfo holds researched company facts. Unknown fields carry
// "Not publicly disclosed" rather than fabricated values.
type CompanyInfo struct {
	Founded      string   `json:"founded,omitempty" yaml:"founded,omitempty"`
	Headquarters string   `json:"headquarters,omitempty" yaml:"headquarters,omitempty"`
	Employees    string   `json:"employees,omitempty" yaml:"employees,omitempty"`
	Funding      string   `json:"funding,omitempty" yaml:"funding,omitempty"`
	CEO          string   `json:"ceo,omitempty" yaml:"ceo,omitempty"`
	Description  string   `json:"description" yaml:"description"`
	Markets      []string `json:"markets,omitempty" yaml:"markets,omitempty"`
	LastVerified string   `json:"lastVerified,omitempty" yaml:"lastVerified,omitempty"`
}

// Competitor is one researched competitor of a brand.
type Competitor struct {
	Name           string `json:"name" yaml:"name"`
	Domain         string `json:"domain" yaml:"domain"`
	Differentiator string `json:"differentiator" yaml:"differentiator"`
}

// CompetitorsData lists a brand's main competitors.
type CompetitorsData struct {
	Competitors  []Competitor `json:"competitors" yaml:"competitors"`
	LastVerified string       `json:"lastVerified,omitempty" yaml:"lastVerified,omitempty"`
}

// BrandData is the set of unexpired researched facets available for a
// brand. Missing facets are nil; an all-nil value means generation runs
// ungrounded. Per prd005-brand-data R2.2.
type BrandData struct {
	Pricing     *PricingData     `json:"pricing,omitempty" yaml:"pricing,omitempty"`
	Features    *FeaturesData    `json:"features,omitempty" yaml:"features,omitempty"`
	ProsCons    *ProsConsData    `json:"pros_cons,omitempty" yaml:"pros_cons,omitempty"`
	CompanyInfo *CompanyInfo     `json:"company_info,omitempty" yaml:"company_info,omitempty"`
	Competitors *CompetitorsData `json:"competitors,omitempty" yaml:"competitors,omitempty"`
}

// IsEmpty reports whether no facet is available.
func (b BrandData) IsEmpty() bool {
	return b.Pricing == nil && b.Features == nil && b.ProsCons == nil &&
		b.CompanyInfo == nil && b.Competitors == nil
}

// BrandDataRecord is one stored research record.
type BrandDataRecord struct {
	// BrandID identifies the brand the record belongs to.
	BrandID string `json:"brand_id" yaml:"brand_id"`

	// DataType identifies the researched facet.
	DataType BrandDataType `json:"data_type" yaml:"data_type"`

	// Payload is the facet's JSON payload.
	Payload []byte `json:"payload" yaml:"payload"`

	// Source records where the payload came from (e.g. "ai-research-spotify.com").
	Source string `json:"source" yaml:"source"`

	// ScrapedAt is when the payload was researched.
	ScrapedAt time.Time `json:"scraped_at" yaml:"scraped_at"`

	// ExpiresAt is when the payload stops being trusted as ground truth.
	// Expired records never reach the generation prompt.
	ExpiresAt time.Time `json:"expires_at" yaml:"expires_at"`
}
