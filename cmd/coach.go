package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/lifescore/internal/coach"
	"github.com/dotcommander/lifescore/internal/goals"
	"github.com/dotcommander/lifescore/internal/period"
	"github.com/dotcommander/lifescore/internal/scorecard"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Emit the weekly coaching payload as JSON",
	Long: `The coach command writes the structured weekly summary consumed by a
coaching assistant: habit counts, averages, the weekly review, the scorecard
with trends, income and weight goals, and up to five active principles.

The payload is always JSON regardless of --format.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCoach(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(coachCmd)
}

func runCoach() error {
	ws, err := loadWorkspace(true)
	if err != nil {
		return err
	}

	start := ws.cfg.WeekStartDay()
	sel := period.Select(ws.data.Daily, ws.data.Weekly, ws.ref, start)
	sc := scorecard.NewAggregator().Compare(ws.data.Daily, ws.data.Weekly, ws.ref, start).Scorecard

	weightGoal := ws.cfg.WeightGoal
	if g, ok := goals.FindWeightGoal(ws.data.Goals); ok {
		weightGoal = g.TargetValue
	}

	in := coach.BuildInput(sel, sc, coach.Goals{
		IncomeGoal:    ws.cfg.TargetIncome,
		CurrentIncome: ws.currentIncome().InexactFloat64(),
		WeightGoal:    weightGoal,
		CurrentWeight: ws.dashboardStats().CurrentWeight,
	}, ws.data.Principles)

	if err := ws.out.Coach(in); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
