package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/lifescore/internal/coach"
	"github.com/dotcommander/lifescore/internal/scorecard"
	"github.com/dotcommander/lifescore/internal/types"
)

// Tool is the name recorded in JSON report headers.
const Tool = "lifescore"

// JSONFormatter formats reports as JSON
type JSONFormatter struct {
	indent  bool
	version string
	now     func() time.Time
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(indent bool, version string) *JSONFormatter {
	return &JSONFormatter{
		indent:  indent,
		version: version,
		now:     time.Now,
	}
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header JSONHeader `json:"header"`
	Report string     `json:"report"`
	Data   any        `json:"data"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONValidation is the validation report with totals
type JSONValidation struct {
	ValidationReport
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

func (f *JSONFormatter) write(w io.Writer, kind string, data any) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      Tool,
			Version:   f.version,
			Timestamp: f.now().Format(time.RFC3339),
		},
		Report: kind,
		Data:   data,
	}
	return writeJSON(w, report, f.indent)
}

// Scorecard writes the scorecard comparison
func (f *JSONFormatter) Scorecard(w io.Writer, c scorecard.Comparison) error {
	return f.write(w, "scorecard", c)
}

// Dashboard writes dashboard stats
func (f *JSONFormatter) Dashboard(w io.Writer, r DashboardReport) error {
	return f.write(w, "dashboard", r)
}

// History writes the week series
func (f *JSONFormatter) History(w io.Writer, points []scorecard.HistoryPoint) error {
	if points == nil {
		points = []scorecard.HistoryPoint{}
	}
	return f.write(w, "history", points)
}

// Validation writes issues with totals
func (f *JSONFormatter) Validation(w io.Writer, r ValidationReport) error {
	if r.Issues == nil {
		r.Issues = []types.ValidationError{}
	}
	return f.write(w, "validation", JSONValidation{ValidationReport: r, Errors: r.Errors(), Warnings: r.Warnings()})
}

// Coach writes the coaching payload bare, without a header, so it can be
// piped straight to the collaborator.
func (f *JSONFormatter) Coach(w io.Writer, in coach.Input) error {
	return writeJSON(w, in, f.indent)
}

func writeJSON(w io.Writer, v any, indent bool) error {
	var jsonBytes []byte
	var err error

	if indent {
		jsonBytes, err = json.MarshalIndent(v, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(jsonBytes)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}
