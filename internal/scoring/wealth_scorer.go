package scoring

import "github.com/dotcommander/lifescore/internal/records"

// WealthScorer scores the leading indicators of income growth. The weekly
// metrics score zero when the week has no review record.
type WealthScorer struct{}

// NewWealthScorer creates a new WealthScorer
func NewWealthScorer() *WealthScorer {
	return &WealthScorer{}
}

func (s *WealthScorer) Dimension() Dimension { return Wealth }

// Score evaluates the week and returns a DimensionScore
func (s *WealthScorer) Score(w Week) DimensionScore {
	var posted bool
	var outreach int
	if w.Weekly != nil {
		posted = w.Weekly.YouTubeVideoPosted
		outreach = w.Weekly.ClientOutreachCount
	}

	breakdown := []ScoreBreakdown{
		ScoreFlag("YouTube video posted", posted, 25),
		{
			Metric:    "Client outreach count",
			Value:     outreach,
			Target:    10,
			Points:    partial(float64(outreach), 10, 25),
			MaxPoints: 25,
			Met:       outreach >= 10,
		},
	}
	breakdown = append(breakdown, ScoreDays(w.Daily, []DaySpec{
		{"Business development days", 5, 25, func(d records.DailyRecord) bool { return d.AISkillsDone }},
		{"Productive days (3+ tasks)", 5, 25, func(d records.DailyRecord) bool {
			return records.IntOrZero(d.TasksCompleted) >= 3
		}},
	})...)

	return NewDimensionScore(Wealth, breakdown)
}
