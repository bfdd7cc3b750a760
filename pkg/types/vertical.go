// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// VerticalType categorizes the business vertical a brand operates in.
// Per prd006-classification R1.1.
type VerticalType string

const (
	VerticalTravel       VerticalType = "travel"
	VerticalEcommerce    VerticalType = "ecommerce"
	VerticalB2BSaaS      VerticalType = "b2b_saas"
	VerticalFinance      VerticalType = "finance"
	VerticalSubscription VerticalType = "subscription"
	VerticalD2C          VerticalType = "d2c"
	VerticalHealth       VerticalType = "health"
	VerticalOther        VerticalType = "other"
)

// VerticalTypes lists every valid vertical, in catalog order.
var VerticalTypes = []VerticalType{
	VerticalTravel,
	VerticalEcommerce,
	VerticalB2BSaaS,
	VerticalFinance,
	VerticalSubscription,
	VerticalD2C,
	VerticalHealth,
	VerticalOther,
}

// IntentType categorizes what a searcher wants from a keyword.
// Per prd006-classification R1.2.
type IntentType string

const (
	IntentComparison          IntentType = "comparison"
	IntentPricing             IntentType = "pricing"
	IntentValidation          IntentType = "validation"
	IntentEligibility         IntentType = "eligibility"
	IntentInformational       IntentType = "informational"
	IntentTransactional       IntentType = "transactional"
	IntentRouteSpecific       IntentType = "route_specific"
	IntentDestinationSpecific IntentType = "destination_specific"
	IntentUseCase             IntentType = "use_case"
	IntentProblemSolution     IntentType = "problem_solution"
)

// IntentTypes lists every valid intent.
var IntentTypes = []IntentType{
	IntentComparison,
	IntentPricing,
	IntentValidation,
	IntentEligibility,
	IntentInformational,
	IntentTransactional,
	IntentRouteSpecific,
	IntentDestinationSpecific,
	IntentUseCase,
	IntentProblemSolution,
}

// Entities holds named entities detected in a keyword during classification.
type Entities struct {
	// Cities lists city names found in the keyword, in order of appearance.
	// Route blueprints read origin from Cities[0] and destination from Cities[1].
	Cities []string `json:"cities,omitempty" yaml:"cities,omitempty"`

	// Brands lists brand names found in the keyword.
	Brands []string `json:"brands,omitempty" yaml:"brands,omitempty"`

	// Products lists product names found in the keyword.
	Products []string `json:"products,omitempty" yaml:"products,omitempty"`
}

// Origin returns the first detected city, or the empty string.
func (e Entities) Origin() string {
	if len(e.Cities) > 0 {
		return e.Cities[0]
	}
	return ""
}

// Destination returns the second detected city, falling back to the first.
func (e Entities) Destination() string {
	if len(e.Cities) > 1 {
		return e.Cities[1]
	}
	return e.Origin()
}

// IntentClassification is the result of classifying a keyword's search intent.
type IntentClassification struct {
	// Intent is the classified intent type.
	Intent IntentType `json:"intentType" yaml:"intentType"`

	// Confidence is the classifier's confidence in [0,1].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Reasoning is a short human-readable explanation of the classification.
	Reasoning string `json:"reasoning" yaml:"reasoning"`

	// Entities holds named entities detected in the keyword.
	Entities Entities `json:"detectedEntities" yaml:"detectedEntities"`
}

// VerticalClassification is the result of classifying a brand's vertical.
type VerticalClassification struct {
	// Vertical is the classified vertical type.
	Vertical VerticalType `json:"verticalType" yaml:"verticalType"`

	// Confidence is the classifier's confidence in [0,1].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Reasoning is a short human-readable explanation of the classification.
	Reasoning string `json:"reasoning" yaml:"reasoning"`
}
