// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Severity ranks how serious a compliance violation is. Critical
// violations block publication; warnings reduce the score only.
// Per prd004-compliance R1.3.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Violation is one compliance finding in a document.
type Violation struct {
	// Rule names the violated rule (e.g. "no_official_claim").
	Rule string `json:"rule" yaml:"rule"`

	// Severity is the violation's severity.
	Severity Severity `json:"severity" yaml:"severity"`

	// Location is a dotted path to the offending field
	// (e.g. "sections[3].content_block.content").
	Location string `json:"location" yaml:"location"`

	// Original is the offending text, where applicable.
	Original string `json:"original,omitempty" yaml:"original,omitempty"`

	// Suggestion is remediation advice.
	Suggestion string `json:"suggestion" yaml:"suggestion"`
}

// ScanResult is the outcome of a compliance scan.
type ScanResult struct {
	// Passed is true iff the scan found zero critical violations.
	Passed bool `json:"passed" yaml:"passed"`

	// Score is the compliance score, clamped to [0,100].
	Score int `json:"score" yaml:"score"`

	// Violations lists every finding, critical and warning alike.
	Violations []Violation `json:"violations" yaml:"violations"`
}

// CriticalCount returns the number of critical violations.
func (r ScanResult) CriticalCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == SeverityCritical {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning violations.
func (r ScanResult) WarningCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == SeverityWarning {
			n++
		}
	}
	return n
}
