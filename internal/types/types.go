// Package types provides shared types used across the lifescore codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// ValidationError represents a problem found while ingesting a record file.
type ValidationError struct {
	File     string `json:"file"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // error, warning
	Source   string `json:"source,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// Issue source constants.
const (
	SourceSchema  = "schema"  // CUE schema violation
	SourceDecode  = "decode"  // typed decoding failed (bad date, wrong type)
	SourceDataset = "dataset" // cross-record invariant (duplicates)
)

// Severity level constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Record kind constants.
const (
	KindDaily      = "daily"
	KindWeekly     = "weekly"
	KindMonthly    = "monthly"
	KindGoals      = "goals"
	KindPrinciples = "principles"
	KindExport     = "export"
)

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []ValidationError) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
