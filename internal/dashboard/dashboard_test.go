package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/lifescore/internal/period"
	"github.com/dotcommander/lifescore/internal/records"
)

var today = records.MustParseDate("2024-12-05")

func day(offset int, mutate func(d *records.DailyRecord)) records.DailyRecord {
	d := records.DailyRecord{Date: today.AddDays(offset)}
	if mutate != nil {
		mutate(&d)
	}
	return d
}

func exercise(d *records.DailyRecord) { d.ExerciseDone = true }

func TestStreakSkipsGap(t *testing.T) {
	// Day -5 is missing, so day -6 does not count.
	daily := []records.DailyRecord{
		day(-6, exercise),
		day(0, exercise),
		day(-1, exercise),
		day(-3, exercise),
		day(-2, exercise),
		day(-4, exercise),
	}
	assert.Equal(t, 5, Streak(daily, today, exercised))
}

func TestStreakTodayNotDone(t *testing.T) {
	daily := []records.DailyRecord{
		day(0, nil),
		day(-1, exercise),
		day(-2, exercise),
	}
	assert.Equal(t, 2, Streak(daily, today, exercised))
}

func TestStreakTodayNotLogged(t *testing.T) {
	daily := []records.DailyRecord{
		day(-1, exercise),
		day(-2, exercise),
		day(-3, exercise),
	}
	assert.Equal(t, 3, Streak(daily, today, exercised))
}

func TestStreakBreaks(t *testing.T) {
	tests := []struct {
		name  string
		daily []records.DailyRecord
		want  int
	}{
		{"empty", nil, 0},
		{"false yesterday", []records.DailyRecord{day(0, exercise), day(-1, nil), day(-2, exercise)}, 1},
		{"last log two days ago", []records.DailyRecord{day(-2, exercise), day(-3, exercise)}, 0},
		{"future ignored", []records.DailyRecord{day(1, exercise), day(0, exercise)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.daily, today, exercised))
		})
	}
}

func TestCalculateWeeklyStats(t *testing.T) {
	// 2024-12-05 is a Thursday; the Monday week starts 2024-12-02.
	daily := []records.DailyRecord{
		day(-4, func(d *records.DailyRecord) { // previous week
			d.MeditationDone = true
			d.SleepHours = records.Float(10)
		}),
		day(-3, func(d *records.DailyRecord) {
			d.SleepHours = records.Float(7)
			d.DeepWorkHours = records.Float(2)
			d.EnergyLevel = records.Int(7)
			d.ProteinTargetHit = true
			d.MeditationDone = true
			d.ExerciseDone = true
		}),
		day(-2, func(d *records.DailyRecord) {
			d.SleepHours = records.Float(8)
			d.StressLevel = records.Int(3)
			d.ReadingDone = true
			d.AISkillsDone = true
			d.ExerciseDone = true
		}),
		day(0, func(d *records.DailyRecord) {
			d.DeepWorkHours = records.Float(1)
			d.EnergyLevel = records.Int(8)
			d.ExerciseDone = true
		}),
	}
	weekly := []records.WeeklyRecord{
		{WeekStartDate: records.MustParseDate("2024-12-02"), YouTubeVideoCount: 2, ClientOutreachCount: 4},
	}

	s := Calculate(Input{
		Daily:                daily,
		Weekly:               weekly,
		CurrentMonthlyIncome: decimal.NewFromInt(250000),
		WeekStart:            period.Monday,
		Today:                today,
	})

	assert.Equal(t, "2024-12-05", s.Today)
	assert.Equal(t, 7.5, s.AvgSleepHours)
	assert.Equal(t, 1.5, s.AvgDeepWorkHours)
	assert.Equal(t, 7.5, s.AvgEnergyLevel)
	assert.Equal(t, 3.0, s.AvgStressLevel)
	assert.Equal(t, 1, s.ProteinTargetHitDays)
	assert.Equal(t, 3, s.ExerciseDays)
	assert.Equal(t, 1, s.MeditationDays)
	assert.Equal(t, 1, s.ReadingDays)
	assert.Equal(t, 1, s.AISkillsDays)

	// Today is done but yesterday was never logged.
	assert.Equal(t, 1, s.ExerciseStreak)

	assert.Equal(t, 25.0, s.IncomeGoalProgress)
	assert.Equal(t, 250000.0, s.CurrentMonthlyIncome)
	assert.Equal(t, 1000000.0, s.TargetIncome)

	assert.Equal(t, 2, s.YouTubeVideosThisWeek)
	assert.Equal(t, 4, s.ClientOutreachThisWeek)
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(Input{Today: today, TargetIncome: decimal.NewFromInt(500)})

	assert.Zero(t, s.ExerciseStreak)
	assert.Zero(t, s.AvgSleepHours)
	assert.Zero(t, s.AvgStressLevel)
	assert.Nil(t, s.CurrentWeight)
	assert.Nil(t, s.WeightChangeWeek)
	assert.Nil(t, s.WeightChangeMonth)
	assert.Zero(t, s.IncomeGoalProgress)
	assert.Equal(t, 500.0, s.TargetIncome)
	assert.Zero(t, s.YouTubeVideosThisWeek)
}

func TestCalculatePostedVideoCountsOnce(t *testing.T) {
	weekly := []records.WeeklyRecord{
		{WeekStartDate: records.MustParseDate("2024-12-02"), YouTubeVideoPosted: true},
	}
	s := Calculate(Input{Weekly: weekly, WeekStart: period.Monday, Today: today})
	assert.Equal(t, 1, s.YouTubeVideosThisWeek)
}

func TestWeightChange(t *testing.T) {
	weigh := func(kg float64) func(d *records.DailyRecord) {
		return func(d *records.DailyRecord) { d.WeightKg = records.Float(kg) }
	}
	daily := []records.DailyRecord{
		day(-40, weigh(82.4)),
		day(-31, weigh(81.9)),
		day(-10, weigh(80.6)),
		day(-8, weigh(80.3)),
		day(-3, weigh(79.9)),
		day(-1, nil),
		day(2, weigh(70)), // future
	}

	s := Calculate(Input{Daily: daily, Today: today})

	require.NotNil(t, s.CurrentWeight)
	assert.Equal(t, 79.9, *s.CurrentWeight)
	require.NotNil(t, s.WeightChangeWeek)
	assert.Equal(t, -0.4, *s.WeightChangeWeek)
	require.NotNil(t, s.WeightChangeMonth)
	assert.Equal(t, -2.0, *s.WeightChangeMonth)
}

func TestWeightChangeNeedsHistory(t *testing.T) {
	daily := []records.DailyRecord{
		day(-2, func(d *records.DailyRecord) { d.WeightKg = records.Float(80) }),
		day(-9, func(d *records.DailyRecord) { d.WeightKg = records.Float(81) }),
	}
	s := Calculate(Input{Daily: daily, Today: today})

	require.NotNil(t, s.WeightChangeWeek)
	assert.Equal(t, -1.0, *s.WeightChangeWeek)
	assert.Nil(t, s.WeightChangeMonth)
}

func TestMotivations(t *testing.T) {
	assert.Equal(t, []string{
		"💪 Every day is a new opportunity to level up. Let's make today count!",
	}, Motivations(Stats{}))

	got := Motivations(Stats{ExerciseStreak: 9, AvgDeepWorkHours: 1.5, MeditationDays: 5, AvgSleepHours: 7.4})
	assert.Equal(t, []string{
		"🔥 Amazing 9-day exercise streak! Keep it up!",
		"🎯 Crushing your deep work target - focused work leads to results!",
		"🧘 Consistent meditation practice - your mental clarity shows!",
	}, got)

	assert.Equal(t, []string{
		"😴 Great sleep habits this week - that's fueling your success!",
	}, Motivations(Stats{ExerciseStreak: 6, AvgSleepHours: 7.5}))
}
