package output

import (
	"io"

	"github.com/dotcommander/lifescore/internal/coach"
	"github.com/dotcommander/lifescore/internal/dashboard"
	"github.com/dotcommander/lifescore/internal/goals"
	"github.com/dotcommander/lifescore/internal/income"
	"github.com/dotcommander/lifescore/internal/scorecard"
	"github.com/dotcommander/lifescore/internal/types"
)

// Formatter renders each report kind to w.
type Formatter interface {
	Scorecard(w io.Writer, c scorecard.Comparison) error
	Dashboard(w io.Writer, r DashboardReport) error
	History(w io.Writer, points []scorecard.HistoryPoint) error
	Validation(w io.Writer, r ValidationReport) error
	Coach(w io.Writer, in coach.Input) error
}

// DashboardReport is the dashboard view: running stats, goal progress, and
// this month's income.
type DashboardReport struct {
	Stats       dashboard.Stats   `json:"stats"`
	Motivations []string          `json:"motivations"`
	Goals       []goals.Status    `json:"goals"`
	Income      *income.Breakdown `json:"income,omitempty"`
}

// ValidationReport lists ingestion issues for a data directory.
type ValidationReport struct {
	DataDir string                  `json:"data_dir"`
	Records map[string]int          `json:"records"`
	Issues  []types.ValidationError `json:"issues"`
	Ignored int                     `json:"ignored"`
}

// Errors counts error-severity issues.
func (r ValidationReport) Errors() int {
	return r.count(types.SeverityError)
}

// Warnings counts warning-severity issues.
func (r ValidationReport) Warnings() int {
	return r.count(types.SeverityWarning)
}

func (r ValidationReport) count(severity string) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

// groupByFile returns issues grouped per file, files in first-seen order.
func groupByFile(issues []types.ValidationError) ([]string, map[string][]types.ValidationError) {
	var files []string
	byFile := make(map[string][]types.ValidationError)
	for _, issue := range issues {
		if _, ok := byFile[issue.File]; !ok {
			files = append(files, issue.File)
		}
		byFile[issue.File] = append(byFile[issue.File], issue)
	}
	return files, byFile
}
