package scorecard

import (
	"github.com/dotcommander/lifescore/internal/period"
	"github.com/dotcommander/lifescore/internal/records"
	"github.com/dotcommander/lifescore/internal/scoring"
)

// ApplyTrend annotates each dimension of current with its change against the
// same-key dimension of previous. A nil previous returns current unchanged.
// Dimensions missing from previous keep their trend. current is not
// modified; the result owns fresh slices.
func ApplyTrend(current WeeklyScorecard, previous *WeeklyScorecard) WeeklyScorecard {
	if previous == nil {
		return current
	}

	prevByKey := make(map[string]scoring.DimensionScore, len(previous.Dimensions))
	for _, d := range previous.Dimensions {
		prevByKey[d.Key] = d
	}

	out := current
	out.Dimensions = make([]scoring.DimensionScore, len(current.Dimensions))
	for i, dim := range current.Dimensions {
		if prev, ok := prevByKey[dim.Key]; ok {
			diff := dim.Percentage - prev.Percentage
			dim.Trend = scoring.TrendFromDiff(diff)
			dim.TrendValue = scoring.Round1(diff)
		}
		out.Dimensions[i] = dim
	}
	out.LowestDimensions = append([]string(nil), current.LowestDimensions...)
	out.Insights = append([]string(nil), current.Insights...)
	out.FocusAreas = append([]string(nil), current.FocusAreas...)
	return out
}

// OverallTrend compares overall percentages with the same threshold used for
// dimensions. A nil previous is stable with no change.
func OverallTrend(current WeeklyScorecard, previous *WeeklyScorecard) (scoring.Trend, float64) {
	if previous == nil {
		return scoring.TrendStable, 0
	}
	diff := current.OverallPercentage - previous.OverallPercentage
	return scoring.TrendFromDiff(diff), scoring.Round1(diff)
}

// Comparison is a week's scorecard annotated against the week before.
type Comparison struct {
	Scorecard         WeeklyScorecard  `json:"scorecard"`
	Previous          *WeeklyScorecard `json:"previous,omitempty"`
	OverallTrend      scoring.Trend    `json:"overallTrend"`
	OverallTrendValue float64          `json:"overallTrendValue"`
}

// Compare scores the week containing ref and the week before it, then
// applies trends. The prior week counts as absent when it holds no records
// at all.
func (a *Aggregator) Compare(daily []records.DailyRecord, weekly []records.WeeklyRecord, ref records.Date, start period.WeekStartDay) Comparison {
	current := a.Calculate(daily, weekly, ref, start)

	var previous *WeeklyScorecard
	prevSel := period.Select(daily, weekly, ref.AddDays(-7), start)
	if len(prevSel.Daily) > 0 || prevSel.Weekly != nil {
		p := a.score(prevSel)
		previous = &p
	}

	trend, value := OverallTrend(current, previous)
	return Comparison{
		Scorecard:         ApplyTrend(current, previous),
		Previous:          previous,
		OverallTrend:      trend,
		OverallTrendValue: value,
	}
}
