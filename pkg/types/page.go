// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Page is one stored generated landing page with its provenance and
// compliance outcome. Per prd007-page-store R1.1.
type Page struct {
	// ID is the page's UUID, assigned on save.
	ID string `json:"id" yaml:"id"`

	// Keyword is the search keyword the page targets.
	Keyword string `json:"keyword" yaml:"keyword"`

	// BrandName, BrandDomain and BrandID identify the promoted brand.
	BrandName   string `json:"brand_name" yaml:"brand_name"`
	BrandDomain string `json:"brand_domain" yaml:"brand_domain"`
	BrandID     string `json:"brand_id" yaml:"brand_id"`

	// Vertical and Intent record the classification the page was built from.
	Vertical VerticalType `json:"vertical" yaml:"vertical"`
	Intent   IntentType   `json:"intent" yaml:"intent"`

	// Blueprint names the blueprint that shaped the page.
	Blueprint string `json:"blueprint" yaml:"blueprint"`

	// DestinationURL is the affiliate link the page's CTAs point to.
	DestinationURL string `json:"destination_url" yaml:"destination_url"`

	// Document is the generated content. Nil in listings.
	Document *ContentDocument `json:"document,omitempty" yaml:"document,omitempty"`

	// Score, Passed and Fixed summarize the compliance scan at save time.
	Score  int  `json:"score" yaml:"score"`
	Passed bool `json:"passed" yaml:"passed"`
	Fixed  bool `json:"fixed" yaml:"fixed"`

	// CreatedAt is when the page was saved.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
