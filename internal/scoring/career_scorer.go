package scoring

import "github.com/dotcommander/lifescore/internal/records"

// CareerScorer scores deep work, task follow-through, and skill practice.
type CareerScorer struct{}

// NewCareerScorer creates a new CareerScorer
func NewCareerScorer() *CareerScorer {
	return &CareerScorer{}
}

func (s *CareerScorer) Dimension() Dimension { return CareerBusiness }

// Score evaluates the week and returns a DimensionScore
func (s *CareerScorer) Score(w Week) DimensionScore {
	var breakdown []ScoreBreakdown
	breakdown = append(breakdown, ScoreDays(w.Daily, []DaySpec{
		{"Days with 1.5+ hrs deep work", 5, 30, func(d records.DailyRecord) bool {
			return records.FloatOrZero(d.DeepWorkHours) >= 1.5
		}},
	})...)
	breakdown = append(breakdown, ScoreCompletion(w.Daily, 30))
	breakdown = append(breakdown, ScoreDays(w.Daily, []DaySpec{
		{"AI skills practice days", 5, 20, func(d records.DailyRecord) bool { return d.AISkillsDone }},
	})...)
	breakdown = append(breakdown, ScoreAverage("Total deep work hours", Sum(w.Daily, DeepWork), 7.5, 20))

	return NewDimensionScore(CareerBusiness, breakdown)
}
