package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dotcommander/lifescore/internal/dashboard"
	"github.com/dotcommander/lifescore/internal/goals"
	"github.com/dotcommander/lifescore/internal/income"
	"github.com/dotcommander/lifescore/internal/output"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show streaks, weekly averages, weight, income, and goals",
	Long: `The dashboard command summarises running progress as of --date:
- Exercise, meditation, and reading streaks
- This week's sleep, deep work, energy, and stress averages
- Habit day counts for the week
- Weight and its change over 7 and 30 days
- Non-salary income against the monthly target
- Progress on active goals`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDashboard(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// currentIncome prefers the configured override over this month's record.
func (ws *workspace) currentIncome() decimal.Decimal {
	if ws.cfg.CurrentIncome > 0 {
		return decimal.NewFromFloat(ws.cfg.CurrentIncome)
	}
	return income.Current(ws.data.Monthly, ws.ref)
}

func (ws *workspace) dashboardStats() dashboard.Stats {
	return dashboard.Calculate(dashboard.Input{
		Daily:                ws.data.Daily,
		Weekly:               ws.data.Weekly,
		CurrentMonthlyIncome: ws.currentIncome(),
		TargetIncome:         decimal.NewFromFloat(ws.cfg.TargetIncome),
		WeekStart:            ws.cfg.WeekStartDay(),
		Today:                ws.ref,
	})
}

func runDashboard() error {
	ws, err := loadWorkspace(true)
	if err != nil {
		return err
	}

	stats := ws.dashboardStats()
	report := output.DashboardReport{
		Stats:       stats,
		Motivations: dashboard.Motivations(stats),
		Goals:       goals.Active(ws.data.Goals, ws.cfg.WeightBaseline),
	}
	if m, ok := income.ForMonth(ws.data.Monthly, ws.ref.Year(), int(ws.ref.Month())); ok {
		b := income.Of(m)
		report.Income = &b
	}

	if err := ws.out.Dashboard(report); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
