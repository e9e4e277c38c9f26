package goals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/lifescore/internal/records"
)

func TestProgress(t *testing.T) {
	weight := func(current, target float64) records.Goal {
		return records.Goal{Category: "health", TargetUnit: "kg", CurrentValue: current, TargetValue: target}
	}

	tests := []struct {
		name     string
		goal     records.Goal
		baseline float64
		want     float64
	}{
		{"weight halfway", weight(70.5, 60), 81, 50},
		{"weight untouched", weight(81, 60), 81, 0},
		{"weight gained clamps to zero", weight(83, 60), 81, 0},
		{"weight done", weight(59, 60), 81, 100},
		{"weight custom baseline", weight(82.5, 75), 90, 50},
		{"weight baseline below target", weight(70, 80), 75, 0},
		{"income", records.Goal{TargetValue: 1000000, CurrentValue: 250000}, 81, 25},
		{"income over target caps", records.Goal{TargetValue: 10, CurrentValue: 12}, 81, 100},
		{"zero target", records.Goal{TargetValue: 0, CurrentValue: 12}, 81, 0},
		{"one decimal", records.Goal{TargetValue: 3, CurrentValue: 1}, 81, 33.3},
		{"kg outside health is plain", records.Goal{Category: "strength", TargetUnit: "kg", TargetValue: 100, CurrentValue: 80}, 81, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Progress(tt.goal, tt.baseline))
		})
	}
}

func TestActive(t *testing.T) {
	off := false
	all := []records.Goal{
		{Title: "a", TargetValue: 10, CurrentValue: 5},
		{Title: "b", TargetValue: 10, IsActive: &off},
		{Title: "c", Category: "Health", TargetUnit: "KG", TargetValue: 60, CurrentValue: 75},
	}

	got := Active(all, DefaultWeightBaseline)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Goal.Title)
	assert.Equal(t, 50.0, got[0].Progress)
	assert.Equal(t, "c", got[1].Goal.Title)
	assert.Equal(t, 28.6, got[1].Progress)

	g, ok := FindWeightGoal(all)
	assert.True(t, ok)
	assert.Equal(t, "c", g.Title)

	_, ok = FindWeightGoal(all[:2])
	assert.False(t, ok)
}
