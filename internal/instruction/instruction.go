// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package instruction compiles per-section writing instructions for the
// generation prompt. Instructions live in lookup tables keyed by section
// type and blueprint name, with occurrence-indexed variants for repeated
// section types and a generic fallback at every level, so the compiler
// is total: any (type, blueprint, occurrence) yields usable text.
// Implements: prd002-instructions (R1-R4);
//
//	docs/ARCHITECTURE § Instruction Compiler.
package instruction

import (
	"fmt"
	"strings"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

// Context carries the keyword- and brand-specific values substituted
// into instruction text.
type Context struct {
	// Keyword is the search keyword the page targets.
	Keyword string

	// Brand and BrandDomain identify the promoted brand.
	Brand       string
	BrandDomain string

	// DestinationURL is the affiliate link the page's CTAs point to.
	DestinationURL string

	// Entities holds entities detected during keyword classification.
	Entities types.Entities

	// Grounded is true when verified brand data is present in the
	// prompt. Grounded instructions tell the writer to use it;
	// ungrounded ones demand hedging instead.
	Grounded bool
}

// Describe returns the writing instruction for one section. occurrence
// is the 1-based position of the section among sections of the same
// type in the blueprint's order; blueprints repeat content_block with a
// different editorial role per occurrence. Lookups that miss fall back
// to the section type's generic instruction.
func Describe(t types.SectionType, blueprintName string, occurrence int, ctx Context) string {
	e, ok := find(t, blueprintName, occurrence)
	if !ok {
		e = defaultEntry
	}
	return render(e, ctx)
}

// Compile returns the numbered instruction list for a whole blueprint,
// one line per section in order, ready for prompt inclusion.
func Compile(b types.Blueprint, ctx Context) []string {
	seen := make(map[types.SectionType]int, len(b.SectionOrder))
	lines := make([]string, 0, len(b.SectionOrder))
	for i, t := range b.SectionOrder {
		seen[t]++
		text := Describe(t, b.Name, seen[t], ctx)
		lines = append(lines, fmt.Sprintf("%d. Section type: %q — %s", i+1, t, text))
	}
	return lines
}

func find(t types.SectionType, blueprintName string, occurrence int) (entry, bool) {
	switch t {
	case types.SectionQuickAnswer:
		if e, ok := quickAnswerTable[blueprintName]; ok {
			return e, true
		}
		return quickAnswerDefault, true
	case types.SectionContentBlock:
		if variants, ok := contentBlockTable[blueprintName]; ok && len(variants) > 0 {
			if occurrence < 1 {
				occurrence = 1
			}
			if occurrence > len(variants) {
				// Extra occurrences reuse the final variant.
				occurrence = len(variants)
			}
			return variants[occurrence-1], true
		}
		return contentBlockDefault, true
	case types.SectionComparisonTable:
		if e, ok := comparisonTable[blueprintName]; ok {
			return e, true
		}
		return comparisonDefault, true
	case types.SectionTips:
		if e, ok := tipsTable[blueprintName]; ok {
			return e, true
		}
		return tipsDefault, true
	}
	e, ok := sectionTable[t]
	return e, ok
}

func render(e entry, ctx Context) string {
	parts := []string{e.text}
	if ctx.Grounded {
		if e.grounded != "" {
			parts = append(parts, e.grounded)
		}
	} else if e.ungrounded != "" {
		parts = append(parts, e.ungrounded)
	}
	return expand(strings.Join(parts, " "), ctx)
}

func expand(text string, ctx Context) string {
	origin := ctx.Entities.Origin()
	if origin == "" {
		origin = "the origin"
	}
	destination := ctx.Entities.Destination()
	if destination == "" {
		destination = "the destination"
	}
	r := strings.NewReplacer(
		"{keyword}", ctx.Keyword,
		"{brand}", ctx.Brand,
		"{BRAND}", strings.ToUpper(ctx.Brand),
		"{origin}", origin,
		"{destination}", destination,
		"{destinationUrl}", ctx.DestinationURL,
	)
	return r.Replace(text)
}
