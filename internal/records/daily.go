package records

import (
	"strconv"
	"strings"
)

// SleepStatus records whether the night followed the planned schedule.
type SleepStatus string

const (
	SleepAsScheduled  SleepStatus = "as_scheduled"
	SleepNotScheduled SleepStatus = "not_scheduled"
	SleepLessThan8    SleepStatus = "less_than_8"
)

// NutritionStatus records adherence to the nutrition plan.
type NutritionStatus string

const (
	NutritionAsPlan  NutritionStatus = "as_plan"
	NutritionSkip    NutritionStatus = "skip"
	NutritionPartial NutritionStatus = "partial"
)

// DailyRecord is one day of tracking. Pointer fields distinguish "not logged"
// (nil) from "logged as zero".
type DailyRecord struct {
	Date Date `yaml:"date" json:"date"`

	// Morning routine
	WakeTime       string `yaml:"wake_time,omitempty" json:"wake_time,omitempty"`
	BedTime        string `yaml:"bed_time,omitempty" json:"bed_time,omitempty"`
	ExerciseDone   bool   `yaml:"exercise_done" json:"exercise_done"`
	WorkoutMinutes *int   `yaml:"workout_duration_mins,omitempty" json:"workout_duration_mins,omitempty"`

	// Physical
	WeightKg         *float64 `yaml:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	ProteinTargetHit bool     `yaml:"protein_target_hit" json:"protein_target_hit"`
	ProteinGrams     *int     `yaml:"protein_grams,omitempty" json:"protein_grams,omitempty"`
	Calories         *int     `yaml:"calories,omitempty" json:"calories,omitempty"`

	// Sleep
	SleepHours          *float64    `yaml:"sleep_hours,omitempty" json:"sleep_hours,omitempty"`
	SleepScheduleStatus SleepStatus `yaml:"sleep_schedule_status,omitempty" json:"sleep_schedule_status,omitempty"`
	SleepQuality        *int        `yaml:"sleep_quality,omitempty" json:"sleep_quality,omitempty"`

	// Habits
	MeditationDone    bool `yaml:"meditation_done" json:"meditation_done"`
	MeditationMinutes *int `yaml:"meditation_minutes,omitempty" json:"meditation_minutes,omitempty"`
	ReadingDone       bool `yaml:"reading_done" json:"reading_done"`
	ReadingMinutes    *int `yaml:"reading_minutes,omitempty" json:"reading_minutes,omitempty"`
	AISkillsDone      bool `yaml:"ai_skills_done" json:"ai_skills_done"`

	// Productivity
	DeepWorkHours  *float64 `yaml:"deep_work_hours,omitempty" json:"deep_work_hours,omitempty"`
	TasksCompleted *int     `yaml:"tasks_completed,omitempty" json:"tasks_completed,omitempty"`
	TasksPlanned   *int     `yaml:"tasks_planned,omitempty" json:"tasks_planned,omitempty"`

	NutritionStatus NutritionStatus `yaml:"nutrition_status,omitempty" json:"nutrition_status,omitempty"`

	// Energy & mood, 1-10
	EnergyLevel *int `yaml:"energy_level,omitempty" json:"energy_level,omitempty"`
	StressLevel *int `yaml:"stress_level,omitempty" json:"stress_level,omitempty"`

	// Reflections
	BestOfDay         string   `yaml:"best_of_day,omitempty" json:"best_of_day,omitempty"`
	Top3Priorities    []string `yaml:"top_3_priorities,omitempty" json:"top_3_priorities,omitempty"`
	Top3Tomorrow      []string `yaml:"top_3_tomorrow,omitempty" json:"top_3_tomorrow,omitempty"`
	ReflectionGood    string   `yaml:"reflection_good,omitempty" json:"reflection_good,omitempty"`
	ReflectionImprove string   `yaml:"reflection_improve,omitempty" json:"reflection_improve,omitempty"`
}

// WakeHour returns the hour component of WakeTime, or false when the wake
// time is missing or malformed.
func (r DailyRecord) WakeHour() (int, bool) {
	if r.WakeTime == "" {
		return 0, false
	}
	hourPart, _, _ := strings.Cut(strings.TrimSpace(r.WakeTime), ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, false
	}
	return hour, true
}

// PrioritiesSet counts today's priority slots that hold non-blank text.
func (r DailyRecord) PrioritiesSet() int {
	n := 0
	for _, p := range r.Top3Priorities {
		if HasText(p) {
			n++
		}
	}
	return n
}

// HasText reports whether s holds anything besides whitespace.
func HasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IntOrZero dereferences an optional count, treating "not logged" as zero.
func IntOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// FloatOrZero dereferences an optional measurement, treating "not logged" as zero.
func FloatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Int and Float return pointers to literals; handy for building records in code.
func Int(v int) *int { return &v }

func Float(v float64) *float64 { return &v }
