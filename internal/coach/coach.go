// Package coach assembles the structured weekly summary handed to an external
// coaching assistant.
package coach

import (
	"strings"

	"github.com/dotcommander/lifescore/internal/period"
	"github.com/dotcommander/lifescore/internal/records"
	"github.com/dotcommander/lifescore/internal/scorecard"
	"github.com/dotcommander/lifescore/internal/scoring"
)

// MaxPrinciples caps how many active principles are included.
const MaxPrinciples = 5

// Input is the coaching payload.
type Input struct {
	WeekStartDate string           `json:"week_start_date"`
	DaysLogged    int              `json:"days_logged"`
	Habits        Habits           `json:"habits"`
	Averages      Averages         `json:"averages"`
	Weekly        WeeklySummary    `json:"weekly"`
	Scorecard     ScorecardSummary `json:"scorecard"`
	Goals         Goals            `json:"goals"`
	Principles    []string         `json:"principles"`
}

// Habits counts the days each daily habit was done this week.
type Habits struct {
	ExerciseDays   int `json:"exercise_days"`
	MeditationDays int `json:"meditation_days"`
	ReadingDays    int `json:"reading_days"`
	ProteinDays    int `json:"protein_days"`
}

// Averages are this week's logged means; unlogged metrics average to 0.
type Averages struct {
	SleepHours    float64 `json:"sleep_hours"`
	DeepWorkHours float64 `json:"deep_work_hours"`
	EnergyLevel   float64 `json:"energy_level"`
	StressLevel   float64 `json:"stress_level"`
}

// WeeklySummary carries the weekly record's relationship and wealth flags.
type WeeklySummary struct {
	Logged              bool `json:"logged"`
	LovedOneLunch       bool `json:"loved_one_lunch"`
	FamilyDinner        bool `json:"family_dinner"`
	YouTubeVideoPosted  bool `json:"youtube_video_posted"`
	ClientOutreachCount int  `json:"client_outreach_count"`
	WeekRating          *int `json:"week_rating"`
}

// ScorecardSummary is the slice of the scorecard the coach needs.
type ScorecardSummary struct {
	OverallPercentage float64            `json:"overall_percentage"`
	Dimensions        []DimensionSummary `json:"dimensions"`
	LowestDimensions  []string           `json:"lowest_dimensions"`
}

// DimensionSummary is one dimension's percentage and trend.
type DimensionSummary struct {
	Name       string        `json:"name"`
	Percentage float64       `json:"percentage"`
	Trend      scoring.Trend `json:"trend"`
}

// Goals are the user's headline targets and where they stand.
type Goals struct {
	IncomeGoal    float64  `json:"income_goal"`
	CurrentIncome float64  `json:"current_income"`
	WeightGoal    float64  `json:"weight_goal"`
	CurrentWeight *float64 `json:"current_weight"`
}

// BuildInput summarises the selected week, its scorecard, goals, and the
// first MaxPrinciples active principles with content.
func BuildInput(sel period.Selection, sc scorecard.WeeklyScorecard, goals Goals, principles []records.Principle) Input {
	days := sel.Daily

	in := Input{
		WeekStartDate: sel.Window.Start.String(),
		DaysLogged:    len(days),
		Habits: Habits{
			ExerciseDays:   scoring.CountDays(days, func(d records.DailyRecord) bool { return d.ExerciseDone }),
			MeditationDays: scoring.CountDays(days, func(d records.DailyRecord) bool { return d.MeditationDone }),
			ReadingDays:    scoring.CountDays(days, func(d records.DailyRecord) bool { return d.ReadingDone }),
			ProteinDays:    scoring.CountDays(days, func(d records.DailyRecord) bool { return d.ProteinTargetHit }),
		},
		Averages: Averages{
			SleepHours:    scoring.Round1(scoring.Average(days, scoring.SleepHours, 0)),
			DeepWorkHours: scoring.Round1(scoring.Average(days, scoring.DeepWork, 0)),
			EnergyLevel:   scoring.Round1(scoring.Average(days, scoring.EnergyLevel, 0)),
			StressLevel:   scoring.Round1(scoring.Average(days, scoring.StressLevel, 0)),
		},
		Scorecard: ScorecardSummary{
			OverallPercentage: sc.OverallPercentage,
			Dimensions:        make([]DimensionSummary, 0, len(sc.Dimensions)),
			LowestDimensions:  append([]string{}, sc.LowestDimensions...),
		},
		Goals:      goals,
		Principles: activePrinciples(principles, MaxPrinciples),
	}

	if w := sel.Weekly; w != nil {
		in.Weekly = WeeklySummary{
			Logged:              true,
			LovedOneLunch:       w.LovedOneLunch,
			FamilyDinner:        w.FamilyDinner,
			YouTubeVideoPosted:  w.YouTubeVideoPosted || w.YouTubeVideoCount > 0,
			ClientOutreachCount: w.ClientOutreachCount,
			WeekRating:          w.WeekRating,
		}
	}

	for _, d := range sc.Dimensions {
		in.Scorecard.Dimensions = append(in.Scorecard.Dimensions, DimensionSummary{
			Name:       d.Name,
			Percentage: d.Percentage,
			Trend:      d.Trend,
		})
	}

	return in
}

func activePrinciples(all []records.Principle, limit int) []string {
	out := make([]string, 0, limit)
	for _, p := range all {
		if len(out) == limit {
			break
		}
		content := strings.TrimSpace(p.Content)
		if !p.Active() || content == "" {
			continue
		}
		out = append(out, content)
	}
	return out
}
