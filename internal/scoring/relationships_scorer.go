package scoring

// RelationshipsScorer scores the week's review record only.
type RelationshipsScorer struct{}

// NewRelationshipsScorer creates a new RelationshipsScorer
func NewRelationshipsScorer() *RelationshipsScorer {
	return &RelationshipsScorer{}
}

func (s *RelationshipsScorer) Dimension() Dimension { return Relationships }

// Score evaluates the week and returns a DimensionScore
func (s *RelationshipsScorer) Score(w Week) DimensionScore {
	var lunch, dinner bool
	var hours float64
	if w.Weekly != nil {
		lunch = w.Weekly.LovedOneLunch
		dinner = w.Weekly.FamilyDinner
		if w.Weekly.QualityTimeHours != nil {
			hours = *w.Weekly.QualityTimeHours
		}
	}

	breakdown := []ScoreBreakdown{
		ScoreFlag("Lunch with loved one", lunch, 30),
		ScoreFlag("Family dinner", dinner, 30),
		{
			Metric:    "Quality time hours",
			Value:     hours,
			Target:    5,
			Points:    partial(hours, 5, 40),
			MaxPoints: 40,
			Met:       hours >= 5,
		},
	}

	return NewDimensionScore(Relationships, breakdown)
}
