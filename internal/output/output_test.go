package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dotcommander/lifescore/internal/coach"
	"github.com/dotcommander/lifescore/internal/dashboard"
	"github.com/dotcommander/lifescore/internal/goals"
	"github.com/dotcommander/lifescore/internal/income"
	"github.com/dotcommander/lifescore/internal/period"
	"github.com/dotcommander/lifescore/internal/records"
	"github.com/dotcommander/lifescore/internal/scorecard"
	"github.com/dotcommander/lifescore/internal/scoring"
	"github.com/dotcommander/lifescore/internal/types"
)

var ref = records.MustParseDate("2024-12-05")

func sampleComparison() scorecard.Comparison {
	start := records.MustParseDate("2024-12-02")
	var daily []records.DailyRecord
	for i := 0; i < 7; i++ {
		daily = append(daily, records.DailyRecord{
			Date:         start.AddDays(i - 7),
			ExerciseDone: i < 2,
		}, records.DailyRecord{
			Date:           start.AddDays(i),
			ExerciseDone:   true,
			MeditationDone: i < 3,
		})
	}
	return scorecard.NewAggregator().Compare(daily, nil, ref, period.Monday)
}

func sampleDashboard() DashboardReport {
	b := income.Of(records.MonthlyRecord{Year: 2024, Month: 12, SalaryIncome: records.Float(90000), TradingIncome: records.Float(1250000)})
	return DashboardReport{
		Stats: dashboard.Stats{
			Today:                "2024-12-05",
			ExerciseStreak:       1,
			MeditationStreak:     12,
			AvgSleepHours:        7.5,
			CurrentWeight:        records.Float(79.9),
			WeightChangeWeek:     records.Float(-0.4),
			IncomeGoalProgress:   125,
			CurrentMonthlyIncome: 1250000,
			TargetIncome:         1000000,
		},
		Motivations: []string{"keep going"},
		Goals: []goals.Status{
			{Goal: records.Goal{Title: "Reach 60kg"}, Progress: 42.5},
		},
		Income: &b,
	}
}

func sampleValidation() ValidationReport {
	return ValidationReport{
		DataDir: "data",
		Records: map[string]int{"daily": 3, "weekly": 1},
		Issues: []types.ValidationError{
			{File: "daily/a.yaml", Message: "schema: energy_level: out of range", Severity: types.SeverityError, Source: types.SourceSchema, Line: 4},
			{File: "export.json", Message: "unknown section \"settings\"", Severity: types.SeverityWarning},
			{File: "daily/a.yaml", Message: "duplicate daily record", Severity: types.SeverityError, Source: types.SourceDataset},
		},
	}
}

func plainConsole(verbose bool) *ConsoleFormatter {
	f := NewConsoleFormatter(false, verbose)
	f.colorize = false
	return f
}

func TestConsoleScorecard(t *testing.T) {
	var buf bytes.Buffer
	if err := plainConsole(false).Scorecard(&buf, sampleComparison()); err != nil {
		t.Fatalf("Scorecard() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Week 49, 2024 (from 2024-12-02)",
		"Physical Health",
		"Time Management & Productivity",
		"▲ +17.0",
		"Focus areas:",
		"Insights:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Exercise days") {
		t.Error("breakdown should only print in verbose mode")
	}
}

func TestConsoleScorecardVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := plainConsole(true).Scorecard(&buf, sampleComparison()); err != nil {
		t.Fatalf("Scorecard() error = %v", err)
	}
	if !strings.Contains(buf.String(), "✓ Exercise days") {
		t.Errorf("verbose output missing met breakdown line:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "✗ Meditation days") {
		t.Errorf("verbose output missing unmet breakdown line:\n%s", buf.String())
	}
}

func TestConsoleDashboard(t *testing.T) {
	var buf bytes.Buffer
	if err := plainConsole(false).Dashboard(&buf, sampleDashboard()); err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Dashboard for 2024-12-05",
		"1 day",
		"12 days",
		"79.9 kg",
		"-0.4 kg",
		"n/a",
		"1,250,000 / 1,000,000",
		"Month total (2024-12)",
		"1,340,000",
		"Reach 60kg",
		"keep going",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleHistory(t *testing.T) {
	points := []scorecard.HistoryPoint{
		{WeekStartDate: "2024-11-25", Year: 2024, WeekNumber: 48, OverallPercentage: 50, OverallStatus: scoring.StatusCritical, DailyRecords: 7, HasWeeklyRecord: true},
	}
	var buf bytes.Buffer
	if err := plainConsole(false).History(&buf, points); err != nil {
		t.Fatalf("History() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "2024-W48") || !strings.Contains(out, "7/7 +review") || !strings.Contains(out, "██████████░░░░░░░░░░") {
		t.Errorf("unexpected history output:\n%s", out)
	}

	buf.Reset()
	_ = plainConsole(false).History(&buf, nil)
	if !strings.Contains(buf.String(), "No history.") {
		t.Errorf("empty history output = %q", buf.String())
	}
}

func TestConsoleValidation(t *testing.T) {
	var buf bytes.Buffer
	if err := plainConsole(false).Validation(&buf, sampleValidation()); err != nil {
		t.Fatalf("Validation() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"✗ daily/a.yaml",
		"✘ daily/a.yaml:4: schema: energy_level: out of range",
		"⚠ export.json",
		"4 records, 2 errors, 1 warnings",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Files keep first-seen order.
	if strings.Index(out, "daily/a.yaml") > strings.Index(out, "export.json") {
		t.Error("files out of order")
	}

	buf.Reset()
	_ = plainConsole(false).Validation(&buf, ValidationReport{Records: map[string]int{"daily": 2}})
	if !strings.Contains(buf.String(), "✓ All passed (2 records)") {
		t.Errorf("clean output = %q", buf.String())
	}

	buf.Reset()
	_ = NewConsoleFormatter(true, false).Validation(&buf, sampleValidation())
	if buf.Len() != 0 {
		t.Errorf("quiet output = %q, want empty", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter(false, "1.2.3")
	f.now = func() time.Time { return time.Date(2024, 12, 5, 8, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	if err := f.Scorecard(&buf, sampleComparison()); err != nil {
		t.Fatalf("Scorecard() error = %v", err)
	}

	var report struct {
		Header JSONHeader           `json:"header"`
		Report string               `json:"report"`
		Data   scorecard.Comparison `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if report.Header.Tool != "lifescore" || report.Header.Version != "1.2.3" {
		t.Errorf("Header = %+v", report.Header)
	}
	if report.Header.Timestamp != "2024-12-05T08:00:00Z" {
		t.Errorf("Timestamp = %q", report.Header.Timestamp)
	}
	if report.Report != "scorecard" {
		t.Errorf("Report = %q, want scorecard", report.Report)
	}
	if len(report.Data.Scorecard.Dimensions) != 8 {
		t.Errorf("Dimensions = %d, want 8", len(report.Data.Scorecard.Dimensions))
	}
	if report.Data.OverallTrend != scoring.TrendUp {
		t.Errorf("OverallTrend = %q", report.Data.OverallTrend)
	}
}

func TestJSONValidationTotals(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(true, "dev").Validation(&buf, sampleValidation()); err != nil {
		t.Fatalf("Validation() error = %v", err)
	}
	var report struct {
		Data struct {
			Errors   int                     `json:"errors"`
			Warnings int                     `json:"warnings"`
			Issues   []types.ValidationError `json:"issues"`
		} `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if report.Data.Errors != 2 || report.Data.Warnings != 1 || len(report.Data.Issues) != 3 {
		t.Errorf("totals = %+v", report.Data)
	}

	buf.Reset()
	_ = NewJSONFormatter(false, "dev").Validation(&buf, ValidationReport{})
	if !strings.Contains(buf.String(), `"issues":[]`) {
		t.Errorf("empty issues should encode as []: %s", buf.String())
	}
}

func TestJSONDashboardMoney(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(false, "dev").Dashboard(&buf, sampleDashboard()); err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"current_monthly_income":1250000`) {
		t.Errorf("missing income stat: %s", out)
	}
	if !strings.Contains(out, `"total":"1340000"`) {
		t.Errorf("decimal totals should encode as strings: %s", out)
	}
}

func TestCoachIsBareJSON(t *testing.T) {
	in := coach.Input{WeekStartDate: "2024-12-02", Principles: []string{"Health first"}}
	for name, f := range map[string]Formatter{
		"json":    NewJSONFormatter(false, "dev"),
		"console": plainConsole(false),
	} {
		var buf bytes.Buffer
		if err := f.Coach(&buf, in); err != nil {
			t.Fatalf("%s: Coach() error = %v", name, err)
		}
		var got coach.Input
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("%s: Failed to parse JSON: %v", name, err)
		}
		if got.WeekStartDate != "2024-12-02" || len(got.Principles) != 1 {
			t.Errorf("%s: got %+v", name, got)
		}
	}
}

func TestMarkdownFormatter(t *testing.T) {
	f := NewMarkdownFormatter(true)

	var buf bytes.Buffer
	if err := f.Scorecard(&buf, sampleComparison()); err != nil {
		t.Fatalf("Scorecard() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# Weekly Scorecard: Week 49, 2024",
		"| Physical Health | 25/100 | 25.0 | Critical | ▲ +17.0 |",
		"### Mental Health",
		"## Focus Areas",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("scorecard missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	points := []scorecard.HistoryPoint{{WeekStartDate: "2024-12-02", OverallPercentage: 12.5, Dimensions: map[string]float64{"wealth": 40}}}
	if err := f.History(&buf, points); err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if !strings.Contains(buf.String(), "| 2024-12-02 | 12.5 | 0.0 | 0.0 | 0.0 | 40.0 |") {
		t.Errorf("history row wrong:\n%s", buf.String())
	}

	buf.Reset()
	if err := f.Validation(&buf, sampleValidation()); err != nil {
		t.Fatalf("Validation() error = %v", err)
	}
	if !strings.Contains(buf.String(), "- **error** - schema: energy_level: out of range (line 4) `[schema]`") {
		t.Errorf("validation missing issue line:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "✗ 2 errors found") {
		t.Errorf("validation missing conclusion:\n%s", buf.String())
	}

	buf.Reset()
	if err := f.Dashboard(&buf, sampleDashboard()); err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}
	if !strings.Contains(buf.String(), "| Reach 60kg | 42.5% |") {
		t.Errorf("dashboard missing goal row:\n%s", buf.String())
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "░░░░░"},
		{50, "███░░"},
		{100, "█████"},
		{140, "█████"},
		{-5, "░░░░░"},
	}
	for _, tt := range tests {
		if got := bar(tt.pct, 5); got != tt.want {
			t.Errorf("bar(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := formatMoney(decimal.RequireFromString("1000000").InexactFloat64()); got != "1,000,000" {
		t.Errorf("formatMoney = %q", got)
	}
}
