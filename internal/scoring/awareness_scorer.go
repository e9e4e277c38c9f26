package scoring

import "github.com/dotcommander/lifescore/internal/records"

// AwarenessScorer scores reflection and inner practice.
type AwarenessScorer struct{}

// NewAwarenessScorer creates a new AwarenessScorer
func NewAwarenessScorer() *AwarenessScorer {
	return &AwarenessScorer{}
}

func (s *AwarenessScorer) Dimension() Dimension { return SelfAwareness }

// Score evaluates the week and returns a DimensionScore
func (s *AwarenessScorer) Score(w Week) DimensionScore {
	breakdown := ScoreDays(w.Daily, []DaySpec{
		{"Daily reflection", 5, 30, func(d records.DailyRecord) bool {
			return records.HasText(d.BestOfDay) || records.HasText(d.ReflectionGood)
		}},
		{"Reading days", 5, 25, func(d records.DailyRecord) bool { return d.ReadingDone }},
		{"Meditation days", 5, 25, func(d records.DailyRecord) bool { return d.MeditationDone }},
		{"Improvement reflection", 3, 20, func(d records.DailyRecord) bool { return records.HasText(d.ReflectionImprove) }},
	})

	return NewDimensionScore(SelfAwareness, breakdown)
}
