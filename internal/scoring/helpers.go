package scoring

import (
	"fmt"
	"math"

	"github.com/dotcommander/lifescore/internal/records"
)

// DaySpec defines a day-count metric: the number of daily records matching
// Match, with full credit at Target days.
type DaySpec struct {
	Metric string
	Target int
	Points int
	Match  func(records.DailyRecord) bool
}

// ScoreDays scores each day-count metric in order.
func ScoreDays(days []records.DailyRecord, specs []DaySpec) []ScoreBreakdown {
	out := make([]ScoreBreakdown, 0, len(specs))
	for _, spec := range specs {
		n := CountDays(days, spec.Match)
		out = append(out, ScoreBreakdown{
			Metric:    spec.Metric,
			Value:     n,
			Target:    spec.Target,
			Points:    partial(float64(n), float64(spec.Target), spec.Points),
			MaxPoints: spec.Points,
			Met:       n >= spec.Target,
		})
	}
	return out
}

// CountDays counts the records matching match.
func CountDays(days []records.DailyRecord, match func(records.DailyRecord) bool) int {
	n := 0
	for _, d := range days {
		if match(d) {
			n++
		}
	}
	return n
}

// ScoreAverage scores an average against a minimum target. The displayed
// value is rounded; the target check uses the exact average.
func ScoreAverage(metric string, avg, target float64, points int) ScoreBreakdown {
	return ScoreBreakdown{
		Metric:    metric,
		Value:     round1(avg),
		Target:    target,
		Points:    partial(avg, target, points),
		MaxPoints: points,
		Met:       avg >= target,
	}
}

// ScoreFlag scores a yes/no requirement: all points or none.
func ScoreFlag(metric string, ok bool, points int) ScoreBreakdown {
	got := 0
	if ok {
		got = points
	}
	return ScoreBreakdown{
		Metric:    metric,
		Value:     yesNo(ok),
		Target:    "Yes",
		Points:    got,
		MaxPoints: points,
		Met:       ok,
	}
}

const (
	stressCeiling  = 4.0
	stressSpan     = 6.0
	neutralStress  = 5.0
	completionGoal = 80.0
)

// ScoreStress is the one inverse metric: full credit at or below an average
// of 4, falling linearly to zero at 10. An unlogged week counts as the
// neutral midpoint 5, not 0.
func ScoreStress(days []records.DailyRecord, points int) ScoreBreakdown {
	avg := Average(days, StressLevel, neutralStress)
	got := points
	if avg > stressCeiling {
		got = int(math.Max(0, math.Round((1-(avg-stressCeiling)/stressSpan)*float64(points))))
	}
	return ScoreBreakdown{
		Metric:    "Avg stress level",
		Value:     round1(avg),
		Target:    "≤4",
		Points:    got,
		MaxPoints: points,
		Met:       avg <= stressCeiling,
	}
}

// CompletionRate is Σcompleted/Σplanned as a percentage, 0 when nothing was
// planned. Unlogged counts are zero.
func CompletionRate(days []records.DailyRecord) float64 {
	var planned, completed int
	for _, d := range days {
		planned += records.IntOrZero(d.TasksPlanned)
		completed += records.IntOrZero(d.TasksCompleted)
	}
	if planned == 0 {
		return 0
	}
	return float64(completed) / float64(planned) * 100
}

// ScoreCompletion scores the weekly task completion rate against 80%.
func ScoreCompletion(days []records.DailyRecord, points int) ScoreBreakdown {
	rate := CompletionRate(days)
	return ScoreBreakdown{
		Metric:    "Task completion rate",
		Value:     fmt.Sprintf("%d%%", int(math.Round(rate))),
		Target:    "80%",
		Points:    partial(rate, completionGoal, points),
		MaxPoints: points,
		Met:       rate >= completionGoal,
	}
}

// Average returns the mean of the logged values, or fallback when none were
// logged.
func Average(days []records.DailyRecord, field func(records.DailyRecord) *float64, fallback float64) float64 {
	var sum float64
	var n int
	for _, d := range days {
		if v := field(d); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return fallback
	}
	return sum / float64(n)
}

// Sum adds the logged values, treating unlogged as zero.
func Sum(days []records.DailyRecord, field func(records.DailyRecord) *float64) float64 {
	var sum float64
	for _, d := range days {
		sum += records.FloatOrZero(field(d))
	}
	return sum
}

// partial awards linear credit up to max, capped once value reaches target.
func partial(value, target float64, maxPoints int) int {
	if value >= target {
		return maxPoints
	}
	if target <= 0 || value <= 0 {
		return 0
	}
	return int(math.Round(value / target * float64(maxPoints)))
}

func intPtrToFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// EnergyLevel reads the 1-10 energy rating, nil when unlogged.
func EnergyLevel(d records.DailyRecord) *float64 { return intPtrToFloat(d.EnergyLevel) }

// StressLevel reads the 1-10 stress rating, nil when unlogged.
func StressLevel(d records.DailyRecord) *float64 { return intPtrToFloat(d.StressLevel) }

// SleepQuality reads the 1-10 sleep quality rating, nil when unlogged.
func SleepQuality(d records.DailyRecord) *float64 { return intPtrToFloat(d.SleepQuality) }

// SleepHours reads the hours slept, nil when unlogged.
func SleepHours(d records.DailyRecord) *float64 { return d.SleepHours }

// DeepWork reads the deep work hours, nil when unlogged.
func DeepWork(d records.DailyRecord) *float64 { return d.DeepWorkHours }
