package scoring

import (
	"math"

	"github.com/dotcommander/lifescore/internal/records"
)

// Status classifies a percentage score.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusOkay      Status = "okay"
	StatusBelow     Status = "below"
	StatusCritical  Status = "critical"
)

// Label returns the display label for the status.
func (s Status) Label() string {
	switch s {
	case StatusExcellent:
		return "Excellent"
	case StatusGood:
		return "Good"
	case StatusOkay:
		return "Okay"
	case StatusBelow:
		return "Below Standard"
	default:
		return "Critical"
	}
}

// StatusFromPercentage returns the status for a percentage. Lower bounds are
// inclusive.
func StatusFromPercentage(pct float64) Status {
	switch {
	case pct >= 90:
		return StatusExcellent
	case pct >= 80:
		return StatusGood
	case pct >= 70:
		return StatusOkay
	case pct >= 60:
		return StatusBelow
	default:
		return StatusCritical
	}
}

// Trend is the direction of change against the prior week.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// TrendThreshold is the percentage-point change beyond which a move counts
// as up or down.
const TrendThreshold = 2.0

// TrendFromDiff classifies a percentage-point delta.
func TrendFromDiff(diff float64) Trend {
	switch {
	case diff > TrendThreshold:
		return TrendUp
	case diff < -TrendThreshold:
		return TrendDown
	default:
		return TrendStable
	}
}

// ScoreBreakdown is one weighted metric inside a dimension. Value and Target
// hold a number or a display string ("Yes", "80%", "≤4").
type ScoreBreakdown struct {
	Metric    string `json:"metric"`
	Value     any    `json:"value"`
	Target    any    `json:"target"`
	Points    int    `json:"points"`
	MaxPoints int    `json:"maxPoints"`
	Met       bool   `json:"met"`
}

// DimensionScore is the derived score for one life dimension.
type DimensionScore struct {
	Key        string           `json:"key"`
	Name       string           `json:"name"`
	Color      string           `json:"color"`
	Score      int              `json:"score"`
	MaxScore   int              `json:"maxScore"`
	Percentage float64          `json:"percentage"`
	Trend      Trend            `json:"trend"`
	TrendValue float64          `json:"trendValue"`
	Status     Status           `json:"status"`
	Breakdown  []ScoreBreakdown `json:"breakdown"`
}

// Dimension identifies a life dimension.
type Dimension struct {
	Key   string
	Name  string
	Color string
}

var (
	PhysicalHealth = Dimension{"physical_health", "Physical Health", "#10b981"}
	MentalHealth   = Dimension{"mental_health", "Mental Health", "#8b5cf6"}
	CareerBusiness = Dimension{"career_business", "Career/Business", "#3b82f6"}
	Wealth         = Dimension{"wealth", "Wealth", "#eab308"}
	Relationships  = Dimension{"relationships", "Relationships", "#ec4899"}
	Productivity   = Dimension{"productivity", "Time Management & Productivity", "#06b6d4"}
	LifeVision     = Dimension{"life_vision", "Life Vision", "#6366f1"}
	SelfAwareness  = Dimension{"self_awareness", "Self Awareness", "#a855f7"}
)

// NewDimensionScore sums the breakdown into a DimensionScore with a stable
// trend.
func NewDimensionScore(d Dimension, breakdown []ScoreBreakdown) DimensionScore {
	var score, maxScore int
	for _, b := range breakdown {
		score += b.Points
		maxScore += b.MaxPoints
	}
	var pct float64
	if maxScore > 0 {
		pct = round1(float64(score) / float64(maxScore) * 100)
	}
	return DimensionScore{
		Key:        d.Key,
		Name:       d.Name,
		Color:      d.Color,
		Score:      score,
		MaxScore:   maxScore,
		Percentage: pct,
		Trend:      TrendStable,
		TrendValue: 0,
		Status:     StatusFromPercentage(pct),
		Breakdown:  breakdown,
	}
}

// Week is the input every scorer sees: the daily records inside the window
// and the week's review record, if any.
type Week struct {
	Daily  []records.DailyRecord
	Weekly *records.WeeklyRecord
}

// Scorer is the interface for dimension scorers
type Scorer interface {
	Dimension() Dimension
	Score(w Week) DimensionScore
}

// All returns the eight scorers in display order.
func All() []Scorer {
	return []Scorer{
		NewPhysicalScorer(),
		NewMentalScorer(),
		NewCareerScorer(),
		NewWealthScorer(),
		NewRelationshipsScorer(),
		NewProductivityScorer(),
		NewVisionScorer(),
		NewAwarenessScorer(),
	}
}

// ScoreAll runs every scorer against w, in display order.
func ScoreAll(w Week) []DimensionScore {
	scorers := All()
	out := make([]DimensionScore, 0, len(scorers))
	for _, s := range scorers {
		out = append(out, s.Score(w))
	}
	return out
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 { return round1(v) }

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
