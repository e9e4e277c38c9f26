// Package scorecard aggregates dimension scores into a weekly scorecard and
// compares consecutive weeks.
package scorecard

import (
	"sort"

	"github.com/dotcommander/lifescore/internal/period"
	"github.com/dotcommander/lifescore/internal/records"
	"github.com/dotcommander/lifescore/internal/scoring"
)

// lowestCount is how many dimensions are reported as focus areas.
const lowestCount = 2

// WeeklyScorecard is the derived score for one week. It is recomputed on
// every request and never stored.
type WeeklyScorecard struct {
	WeekStartDate     string                   `json:"weekStartDate"`
	WeekNumber        int                      `json:"weekNumber"`
	Year              int                      `json:"year"`
	OverallScore      int                      `json:"overallScore"`
	OverallPercentage float64                  `json:"overallPercentage"`
	OverallStatus     scoring.Status           `json:"overallStatus"`
	Dimensions        []scoring.DimensionScore `json:"dimensions"`
	LowestDimensions  []string                 `json:"lowestDimensions"`
	Insights          []string                 `json:"insights"`
	FocusAreas        []string                 `json:"focusAreas"`
}

// Dimension returns the dimension with the given key.
func (sc WeeklyScorecard) Dimension(key string) (scoring.DimensionScore, bool) {
	for _, d := range sc.Dimensions {
		if d.Key == key {
			return d, true
		}
	}
	return scoring.DimensionScore{}, false
}

// Aggregator runs the scorers over a week and assembles the scorecard.
type Aggregator struct {
	scorers []scoring.Scorer
	rules   []InsightRule
}

// NewAggregator creates an Aggregator with the eight standard scorers and
// insight rules.
func NewAggregator() *Aggregator {
	return &Aggregator{
		scorers: scoring.All(),
		rules:   DefaultInsightRules(),
	}
}

// Calculate builds the scorecard for the week containing ref. Inputs are
// read only.
func (a *Aggregator) Calculate(daily []records.DailyRecord, weekly []records.WeeklyRecord, ref records.Date, start period.WeekStartDay) WeeklyScorecard {
	sel := period.Select(daily, weekly, ref, start)
	return a.score(sel)
}

func (a *Aggregator) score(sel period.Selection) WeeklyScorecard {
	week := scoring.Week{Daily: sel.Daily, Weekly: sel.Weekly}

	dims := make([]scoring.DimensionScore, 0, len(a.scorers))
	var total, maxTotal int
	for _, s := range a.scorers {
		d := s.Score(week)
		total += d.Score
		maxTotal += d.MaxScore
		dims = append(dims, d)
	}

	var pct float64
	if maxTotal > 0 {
		pct = scoring.Round1(float64(total) / float64(maxTotal) * 100)
	}

	year, weekNumber := sel.Window.Start.AddDays(3).ISOWeek()
	lowest := lowestDimensions(dims, lowestCount)

	return WeeklyScorecard{
		WeekStartDate:     sel.Window.Start.String(),
		WeekNumber:        weekNumber,
		Year:              year,
		OverallScore:      total,
		OverallPercentage: pct,
		OverallStatus:     scoring.StatusFromPercentage(pct),
		Dimensions:        dims,
		LowestDimensions:  lowest,
		Insights:          generateInsights(dims, a.rules),
		FocusAreas:        append([]string(nil), lowest...),
	}
}

// lowestDimensions returns the names of the n lowest-percentage dimensions.
// Ties keep display order.
func lowestDimensions(dims []scoring.DimensionScore, n int) []string {
	sorted := make([]scoring.DimensionScore, len(dims))
	copy(sorted, dims)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage < sorted[j].Percentage
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	names := make([]string, 0, n)
	for _, d := range sorted[:n] {
		names = append(names, d.Name)
	}
	return names
}

// Calculate builds a scorecard with the default aggregator.
func Calculate(daily []records.DailyRecord, weekly []records.WeeklyRecord, ref records.Date, start period.WeekStartDay) WeeklyScorecard {
	return NewAggregator().Calculate(daily, weekly, ref, start)
}
