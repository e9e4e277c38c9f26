// Package goals computes progress toward long-range goals.
package goals

import (
	"math"
	"strings"

	"github.com/dotcommander/lifescore/internal/records"
)

// DefaultWeightBaseline is the starting weight, in kg, used for weight-loss
// goals when none is configured.
const DefaultWeightBaseline = 81.0

// IsWeightGoal reports whether progress is measured as weight lost.
func IsWeightGoal(g records.Goal) bool {
	return strings.EqualFold(g.Category, "health") && strings.EqualFold(g.TargetUnit, "kg")
}

// Progress returns percent complete, clamped to 0..100 and rounded to one
// decimal. Weight goals measure kilograms lost from baseline against the
// kilograms to lose; other goals compare current to target.
func Progress(g records.Goal, baseline float64) float64 {
	var pct float64
	if IsWeightGoal(g) {
		toLose := baseline - g.TargetValue
		if toLose <= 0 {
			return 0
		}
		pct = (baseline - g.CurrentValue) / toLose * 100
	} else {
		if g.TargetValue <= 0 {
			return 0
		}
		pct = g.CurrentValue / g.TargetValue * 100
	}
	return math.Round(math.Max(0, math.Min(pct, 100))*10) / 10
}

// Status is a goal with its computed progress.
type Status struct {
	Goal     records.Goal `json:"goal"`
	Progress float64      `json:"progress"`
}

// Active returns the active goals with their progress, in input order.
func Active(all []records.Goal, baseline float64) []Status {
	var out []Status
	for _, g := range all {
		if !g.Active() {
			continue
		}
		out = append(out, Status{Goal: g, Progress: Progress(g, baseline)})
	}
	return out
}

// FindWeightGoal returns the first active weight goal.
func FindWeightGoal(all []records.Goal) (records.Goal, bool) {
	for _, g := range all {
		if g.Active() && IsWeightGoal(g) {
			return g, true
		}
	}
	return records.Goal{}, false
}
