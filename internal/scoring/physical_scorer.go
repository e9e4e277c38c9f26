package scoring

import "github.com/dotcommander/lifescore/internal/records"

// PhysicalScorer scores exercise, nutrition, sleep discipline, and energy.
type PhysicalScorer struct{}

// NewPhysicalScorer creates a new PhysicalScorer
func NewPhysicalScorer() *PhysicalScorer {
	return &PhysicalScorer{}
}

func (s *PhysicalScorer) Dimension() Dimension { return PhysicalHealth }

// Score evaluates the week and returns a DimensionScore
func (s *PhysicalScorer) Score(w Week) DimensionScore {
	breakdown := ScoreDays(w.Daily, []DaySpec{
		{"Exercise days", 6, 25, func(d records.DailyRecord) bool { return d.ExerciseDone }},
		{"Protein target hit", 6, 25, func(d records.DailyRecord) bool { return d.ProteinTargetHit }},
		{"Sleep on schedule (9pm-5am)", 6, 25, func(d records.DailyRecord) bool {
			return d.SleepScheduleStatus == records.SleepAsScheduled
		}},
	})
	breakdown = append(breakdown, ScoreAverage("Avg energy level", Average(w.Daily, EnergyLevel, 0), 8, 25))

	return NewDimensionScore(PhysicalHealth, breakdown)
}
