package scoring

import "github.com/dotcommander/lifescore/internal/records"

// MentalScorer scores meditation, stress, sleep quality, and reading.
type MentalScorer struct{}

// NewMentalScorer creates a new MentalScorer
func NewMentalScorer() *MentalScorer {
	return &MentalScorer{}
}

func (s *MentalScorer) Dimension() Dimension { return MentalHealth }

// Score evaluates the week and returns a DimensionScore
func (s *MentalScorer) Score(w Week) DimensionScore {
	meditated := func(d records.DailyRecord) bool { return d.MeditationDone }
	read := func(d records.DailyRecord) bool { return d.ReadingDone }

	breakdown := ScoreDays(w.Daily, []DaySpec{{"Meditation days", 7, 30, meditated}})
	breakdown = append(breakdown,
		ScoreStress(w.Daily, 30),
		ScoreAverage("Avg sleep quality", Average(w.Daily, SleepQuality, 0), 8, 20),
	)
	breakdown = append(breakdown, ScoreDays(w.Daily, []DaySpec{{"Reading days", 5, 20, read}})...)

	return NewDimensionScore(MentalHealth, breakdown)
}
