package scoring

import "github.com/dotcommander/lifescore/internal/records"

// latestWakeHour is the last hour that still counts as waking on time. Only
// the hour is compared, so 05:59 qualifies.
const latestWakeHour = 5

// ProductivityScorer scores the morning routine, planning, and focus.
type ProductivityScorer struct{}

// NewProductivityScorer creates a new ProductivityScorer
func NewProductivityScorer() *ProductivityScorer {
	return &ProductivityScorer{}
}

func (s *ProductivityScorer) Dimension() Dimension { return Productivity }

// Score evaluates the week and returns a DimensionScore
func (s *ProductivityScorer) Score(w Week) DimensionScore {
	breakdown := ScoreDays(w.Daily, []DaySpec{
		{"Wake by 5am", 6, 30, WokeOnTime},
		{"Days with 3 priorities set", 5, 25, func(d records.DailyRecord) bool { return d.PrioritiesSet() >= 3 }},
	})
	breakdown = append(breakdown, ScoreCompletion(w.Daily, 25))
	breakdown = append(breakdown, ScoreDays(w.Daily, []DaySpec{
		{"Days with 1+ hr deep work", 5, 20, func(d records.DailyRecord) bool {
			return records.FloatOrZero(d.DeepWorkHours) >= 1
		}},
	})...)

	return NewDimensionScore(Productivity, breakdown)
}

// WokeOnTime reports whether the logged wake hour is 5 or earlier.
func WokeOnTime(d records.DailyRecord) bool {
	hour, ok := d.WakeHour()
	return ok && hour <= latestWakeHour
}
