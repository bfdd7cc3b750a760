// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package blueprint maps (vertical, intent) pairs to landing-page designs.
// Implements: prd001-blueprints (R1-R3);
//
//	docs/ARCHITECTURE § Blueprint Registry.
package blueprint

import (
	"fmt"
	"strings"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

// ErrNotFound is returned by Get for an unknown blueprint name.
var ErrNotFound = fmt.Errorf("blueprint not found")

// Get returns the blueprint with the given name.
func Get(name string) (types.Blueprint, error) {
	for _, b := range catalog {
		if b.Name == name {
			return b, nil
		}
	}
	return types.Blueprint{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// All returns every blueprint in catalog order.
func All() []types.Blueprint {
	out := make([]types.Blueprint, len(catalog))
	copy(out, catalog)
	return out
}

// ByVertical returns every blueprint for the given vertical, in catalog order.
func ByVertical(v types.VerticalType) []types.Blueprint {
	var out []types.Blueprint
	for _, b := range catalog {
		if b.Vertical == v {
			out = append(out, b)
		}
	}
	return out
}

// ByVerticalAndIntent returns every blueprint for the exact
// (vertical, intent) pair, in catalog order.
func ByVerticalAndIntent(v types.VerticalType, i types.IntentType) []types.Blueprint {
	var out []types.Blueprint
	for _, b := range catalog {
		if b.Vertical == v && b.Intent == i {
			out = append(out, b)
		}
	}
	return out
}

// lookup finds the blueprint for an exact (vertical, intent) pair.
func lookup(v types.VerticalType, i types.IntentType) (types.Blueprint, bool) {
	for _, b := range catalog {
		if b.Vertical == v && b.Intent == i {
			return b, true
		}
	}
	return types.Blueprint{}, false
}

// Select resolves the blueprint for a classified keyword.
//
// Location-specific intents are downgraded when the detected entities
// cannot support them: a destination page without a city becomes a
// comparison page, and a route page needs two cities. After the
// downgrade, resolution falls back from the exact (vertical, intent)
// pair to (vertical, informational), then (other, intent), then
// generic_informational. Per prd001-blueprints R3.1-R3.4.
func Select(v types.VerticalType, i types.IntentType, e types.Entities) types.Blueprint {
	switch i {
	case types.IntentDestinationSpecific:
		if len(e.Cities) == 0 {
			i = types.IntentComparison
		}
	case types.IntentRouteSpecific:
		switch len(e.Cities) {
		case 0:
			i = types.IntentComparison
		case 1:
			i = types.IntentDestinationSpecific
		}
	case types.IntentEligibility:
		// Eligibility pages are expressed as finance validation designs.
		if b, ok := lookup(types.VerticalFinance, types.IntentValidation); ok && v == types.VerticalFinance {
			return b
		}
		i = types.IntentValidation
	}

	if b, ok := lookup(v, i); ok {
		return b
	}
	if b, ok := lookup(v, types.IntentInformational); ok {
		return b
	}
	if b, ok := lookup(types.VerticalOther, i); ok {
		return b
	}
	b, _ := Get("generic_informational")
	return b
}

// ExpandH1 fills a blueprint's H1 template with the keyword, brand and
// city entities.
func ExpandH1(b types.Blueprint, keyword, brand string, e types.Entities) string {
	h1 := b.H1Template
	h1 = strings.ReplaceAll(h1, "{keyword}", keyword)
	h1 = strings.ReplaceAll(h1, "{brand}", brand)
	h1 = strings.ReplaceAll(h1, "{origin}", e.Origin())
	h1 = strings.ReplaceAll(h1, "{destination}", e.Destination())
	return strings.TrimSpace(h1)
}
