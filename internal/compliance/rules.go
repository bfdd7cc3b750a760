// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compliance

import (
	"regexp"
	"strings"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

// bannedPhrase is one scan rule: a pattern that may not appear in page
// copy, the rule name it reports under, and the remediation hint.
type bannedPhrase struct {
	re         *regexp.Regexp
	rule       string
	severity   types.Severity
	suggestion string
}

// bannedPhrases are checked per text field, in order. A field reports at
// most one violation per rule, carrying the first match.
var bannedPhrases = []bannedPhrase{
	{regexp.MustCompile(`(?i)\bofficial\s+(?:website|site|page|partner)\b`), "no_official_claim", types.SeverityCritical, "Remove 'official' — use the brand name directly"},
	{regexp.MustCompile(`(?i)\b(?:the\s+)?best\b`), "no_superlative", types.SeverityWarning, "Replace with 'a strong option' or 'well-regarded'"},
	{regexp.MustCompile(`(?i)\bguarantee[ds]?\b`), "no_guarantee", types.SeverityCritical, "Replace with 'aims to' or 'designed to'"},
	{regexp.MustCompile(`(?i)\btop[\s-]?rated\b`), "no_top_rated", types.SeverityCritical, "Replace with 'well-reviewed' or 'popular'"},
	// Word boundaries only bind next to word characters, so the "#"
	// anchor goes bare: `\b#1\b` can never match after a space.
	{regexp.MustCompile(`(?i)#1\b|\bnumber\s+one\b`), "no_number_one", types.SeverityCritical, "Remove ranking claim entirely"},
	{regexp.MustCompile(`(?i)\bmost\s+secure\b`), "no_security_claim", types.SeverityCritical, "Replace with 'offers robust security features'"},
	{regexp.MustCompile(`(?i)\binstant\s+approval\b`), "no_instant_approval", types.SeverityCritical, "Replace with 'quick application process'"},
	{regexp.MustCompile(`(?i)\bcheapest\b`), "no_cheapest", types.SeverityWarning, "Replace with 'competitively priced' or 'affordable options'"},
	{regexp.MustCompile(`(?i)\bfastest\b`), "no_fastest", types.SeverityWarning, "Replace with 'quick' or 'efficient'"},
	{regexp.MustCompile(`(?i)\brisk[\s-]?free\b`), "no_risk_free", types.SeverityCritical, "Remove or rephrase — no financial product is risk-free"},
	{regexp.MustCompile(`\b100%`), "no_absolute_claim", types.SeverityWarning, "Avoid absolute percentages in claims"},
	{regexp.MustCompile(`(?i)\bexclusive\s+(?:deal|offer|discount)\b`), "no_exclusive_claim", types.SeverityWarning, "Replace with 'current deal' or 'available offer'"},
	{regexp.MustCompile(`(?i)\blimited\s+time\s+(?:only|offer)\b`), "no_urgency", types.SeverityWarning, "Remove artificial urgency"},
	{regexp.MustCompile(`(?i)\bact\s+now\b`), "no_urgency", types.SeverityWarning, "Remove pressure language"},
	{regexp.MustCompile(`(?i)\bmiracle\b|\bsecret\b|\bhacks?\b|\btricks?\b`), "no_clickbait", types.SeverityCritical, "Use factual, professional language"},
}

var (
	numericRating  = regexp.MustCompile(`\b\d+(?:\.\d+)?\s*/\s*(?:5|10)\b`)
	fabricatedStat = regexp.MustCompile(`(?i)\b(?:studies?\s+show|research\s+(?:shows|proves|confirms)|according\s+to\s+(?:a\s+)?(?:recent\s+)?(?:study|survey|report))\b`)
)

// replacement is one auto-fix rewrite. Order matters: longer phrases
// precede their substrings ("the best" before "best") so the specific
// rewrite wins.
type replacement struct {
	re *regexp.Regexp
	to string
}

var replacements = buildReplacements([]struct{ from, to string }{
	{"official website", "website"},
	{"official site", "website"},
	{"official partner", "partner"},
	{"official page", "website"},
	{"the best", "a strong choice for"},
	{"best", "well-regarded"},
	{"guaranteed", "designed to provide"},
	{"guarantees", "aims to provide"},
	{"guarantee", "commitment to quality"},
	{"top-rated", "well-reviewed"},
	{"top rated", "well-reviewed"},
	{"#1", "a leading"},
	{"number one", "a leading"},
	{"most secure", "offers robust security features"},
	{"instant approval", "streamlined application process"},
	{"cheapest", "competitively priced"},
	{"fastest", "quick and efficient"},
	{"risk-free", "with consumer protections"},
	{"risk free", "with consumer protections"},
	{"100%", "high degree of"},
	{"exclusive deal", "current deal"},
	{"exclusive offer", "available offer"},
	{"exclusive discount", "available discount"},
	{"limited time only", "currently available"},
	{"limited time offer", "current promotion"},
	{"act now", "learn more"},
	{"miracle", "effective"},
	{"secret", "useful"},
	{"hacks", "strategies"},
	{"hack", "strategy"},
	{"tricks", "methods"},
	{"trick", "method"},
})

func buildReplacements(pairs []struct{ from, to string }) []replacement {
	out := make([]replacement, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, replacement{re: phrasePattern(p.from), to: p.to})
	}
	return out
}

// phrasePattern compiles a case-insensitive literal-phrase matcher,
// anchoring with \b only where the phrase edge is a word character
// (a \b next to "#" or "%" would require an adjacent word character
// and silently never match in normal prose).
func phrasePattern(phrase string) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString(`(?i)`)
	if isWordChar(rune(phrase[0])) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(regexp.QuoteMeta(phrase))
	if isWordChar(rune(phrase[len(phrase)-1])) {
		sb.WriteString(`\b`)
	}
	return regexp.MustCompile(sb.String())
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
