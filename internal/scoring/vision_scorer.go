package scoring

import "github.com/dotcommander/lifescore/internal/records"

// VisionScorer scores decisions, weekly review, and daily reflection.
type VisionScorer struct{}

// NewVisionScorer creates a new VisionScorer
func NewVisionScorer() *VisionScorer {
	return &VisionScorer{}
}

func (s *VisionScorer) Dimension() Dimension { return LifeVision }

// Score evaluates the week and returns a DimensionScore
func (s *VisionScorer) Score(w Week) DimensionScore {
	var decision, review, focus bool
	if w.Weekly != nil {
		decision = records.HasText(w.Weekly.BigDecisionMade)
		review = records.HasText(w.Weekly.WhatWentWell)
		focus = records.HasText(w.Weekly.FocusNextWeek)
	}

	breakdown := []ScoreBreakdown{
		ScoreFlag("Big decision made", decision, 30),
		ScoreFlag("Weekly review completed", review, 25),
		ScoreFlag("Focus for next week set", focus, 25),
	}
	breakdown = append(breakdown, ScoreDays(w.Daily, []DaySpec{
		{"Daily reflection done", 5, 20, func(d records.DailyRecord) bool { return records.HasText(d.BestOfDay) }},
	})...)

	return NewDimensionScore(LifeVision, breakdown)
}
