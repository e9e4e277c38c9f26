// Package dashboard computes the running statistics shown on the summary
// view: streaks, this week's averages and counts, weight change, and income
// progress.
package dashboard

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dotcommander/lifescore/internal/income"
	"github.com/dotcommander/lifescore/internal/period"
	"github.com/dotcommander/lifescore/internal/records"
	"github.com/dotcommander/lifescore/internal/scoring"
)

// DefaultTargetIncome is the monthly non-salary income goal.
var DefaultTargetIncome = decimal.NewFromInt(1000000)

// Input is everything Calculate reads. Today is injected so results do not
// depend on the wall clock.
type Input struct {
	Daily                []records.DailyRecord
	Weekly               []records.WeeklyRecord
	CurrentMonthlyIncome decimal.Decimal
	TargetIncome         decimal.Decimal
	WeekStart            period.WeekStartDay
	Today                records.Date
}

// Stats is the dashboard summary.
type Stats struct {
	Today string `json:"today"`

	ExerciseStreak   int `json:"exercise_streak"`
	MeditationStreak int `json:"meditation_streak"`
	ReadingStreak    int `json:"reading_streak"`

	AvgSleepHours    float64 `json:"avg_sleep_hours"`
	AvgDeepWorkHours float64 `json:"avg_deep_work_hours"`
	AvgEnergyLevel   float64 `json:"avg_energy_level"`
	AvgStressLevel   float64 `json:"avg_stress_level"`

	ProteinTargetHitDays int `json:"protein_target_hit_days"`
	ExerciseDays         int `json:"exercise_days"`
	MeditationDays       int `json:"meditation_days"`
	ReadingDays          int `json:"reading_days"`
	AISkillsDays         int `json:"ai_skills_days"`

	CurrentWeight     *float64 `json:"current_weight"`
	WeightChangeWeek  *float64 `json:"weight_change_week"`
	WeightChangeMonth *float64 `json:"weight_change_month"`

	IncomeGoalProgress   float64 `json:"income_goal_progress"`
	CurrentMonthlyIncome float64 `json:"current_monthly_income"`
	TargetIncome         float64 `json:"target_income"`

	YouTubeVideosThisWeek  int `json:"youtube_videos_this_week"`
	ClientOutreachThisWeek int `json:"client_outreach_this_week"`
}

// Calculate derives Stats from the full history. Records dated after Today
// are ignored.
func Calculate(in Input) Stats {
	past := make([]records.DailyRecord, 0, len(in.Daily))
	for _, r := range in.Daily {
		if !r.Date.After(in.Today) {
			past = append(past, r)
		}
	}
	sortDescending(past)

	sel := period.Select(past, in.Weekly, in.Today, in.WeekStart)
	week := sel.Daily

	target := in.TargetIncome
	if target.IsZero() {
		target = DefaultTargetIncome
	}

	stats := Stats{
		Today: in.Today.String(),

		ExerciseStreak:   streakSorted(past, in.Today, exercised),
		MeditationStreak: streakSorted(past, in.Today, meditated),
		ReadingStreak:    streakSorted(past, in.Today, read),

		AvgSleepHours:    scoring.Round1(scoring.Average(week, scoring.SleepHours, 0)),
		AvgDeepWorkHours: scoring.Round1(scoring.Average(week, scoring.DeepWork, 0)),
		AvgEnergyLevel:   scoring.Round1(scoring.Average(week, scoring.EnergyLevel, 0)),
		AvgStressLevel:   scoring.Round1(scoring.Average(week, scoring.StressLevel, 0)),

		ProteinTargetHitDays: scoring.CountDays(week, func(d records.DailyRecord) bool { return d.ProteinTargetHit }),
		ExerciseDays:         scoring.CountDays(week, exercised),
		MeditationDays:       scoring.CountDays(week, meditated),
		ReadingDays:          scoring.CountDays(week, read),
		AISkillsDays:         scoring.CountDays(week, func(d records.DailyRecord) bool { return d.AISkillsDone }),

		IncomeGoalProgress:   income.Progress(in.CurrentMonthlyIncome, target),
		CurrentMonthlyIncome: in.CurrentMonthlyIncome.InexactFloat64(),
		TargetIncome:         target.InexactFloat64(),
	}

	stats.CurrentWeight, stats.WeightChangeWeek, stats.WeightChangeMonth = weightChange(past, in.Today)

	if sel.Weekly != nil {
		stats.YouTubeVideosThisWeek = sel.Weekly.YouTubeVideoCount
		if stats.YouTubeVideosThisWeek == 0 && sel.Weekly.YouTubeVideoPosted {
			stats.YouTubeVideosThisWeek = 1
		}
		stats.ClientOutreachThisWeek = sel.Weekly.ClientOutreachCount
	}

	return stats
}

func exercised(d records.DailyRecord) bool { return d.ExerciseDone }
func meditated(d records.DailyRecord) bool { return d.MeditationDone }
func read(d records.DailyRecord) bool      { return d.ReadingDone }

// Streak counts consecutive days with flag set, ending today or yesterday.
// An unlogged or not-yet-done today does not break the streak; any earlier
// false day or missing day does.
func Streak(daily []records.DailyRecord, today records.Date, flag func(records.DailyRecord) bool) int {
	sorted := make([]records.DailyRecord, 0, len(daily))
	for _, r := range daily {
		if !r.Date.After(today) {
			sorted = append(sorted, r)
		}
	}
	sortDescending(sorted)
	return streakSorted(sorted, today, flag)
}

// streakSorted expects records on or before today, newest first.
func streakSorted(sorted []records.DailyRecord, today records.Date, flag func(records.DailyRecord) bool) int {
	streak := 0
	expected := today
	for _, r := range sorted {
		if r.Date.Equal(today) {
			if flag(r) {
				streak++
			}
			expected = today.AddDays(-1)
			continue
		}
		if expected.Equal(today) {
			expected = today.AddDays(-1)
		}
		if !r.Date.Equal(expected) || !flag(r) {
			break
		}
		streak++
		expected = expected.AddDays(-1)
	}
	return streak
}

// weightChange returns the latest logged weight and its change against the
// newest weights at least 7 and 30 days older than today.
func weightChange(sorted []records.DailyRecord, today records.Date) (current, week, month *float64) {
	var weekAgo, monthAgo *float64
	for _, r := range sorted {
		if r.WeightKg == nil {
			continue
		}
		age := today.DaysSince(r.Date)
		if current == nil {
			w := *r.WeightKg
			current = &w
		}
		if weekAgo == nil && age >= 7 {
			weekAgo = r.WeightKg
		}
		if monthAgo == nil && age >= 30 {
			monthAgo = r.WeightKg
			break
		}
	}
	if current != nil && weekAgo != nil {
		d := scoring.Round1(*current - *weekAgo)
		week = &d
	}
	if current != nil && monthAgo != nil {
		d := scoring.Round1(*current - *monthAgo)
		month = &d
	}
	return current, week, month
}

func sortDescending(daily []records.DailyRecord) {
	sort.SliceStable(daily, func(i, j int) bool {
		return daily[i].Date.After(daily[j].Date)
	})
}

// Motivations returns every motivational message whose condition holds, in
// priority order, or a single general message when none do.
func Motivations(s Stats) []string {
	var out []string
	if s.ExerciseStreak >= 7 {
		out = append(out, fmt.Sprintf("🔥 Amazing %d-day exercise streak! Keep it up!", s.ExerciseStreak))
	}
	if s.AvgSleepHours >= 7.5 {
		out = append(out, "😴 Great sleep habits this week - that's fueling your success!")
	}
	if s.AvgDeepWorkHours >= 1.5 {
		out = append(out, "🎯 Crushing your deep work target - focused work leads to results!")
	}
	if s.MeditationDays >= 5 {
		out = append(out, "🧘 Consistent meditation practice - your mental clarity shows!")
	}
	if len(out) == 0 {
		out = append(out, "💪 Every day is a new opportunity to level up. Let's make today count!")
	}
	return out
}
