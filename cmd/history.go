package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/lifescore/internal/scorecard"
)

var historyWeeks int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show overall and per-dimension scores for recent weeks",
	Long: `The history command rescores each of the last --weeks weeks ending with the
week containing --date, oldest first. Scores are always recomputed from the
records.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyWeeks, "weeks", "w", 0, "Number of weeks (default from config, 8)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory() error {
	if historyWeeks < 0 {
		return fmt.Errorf("--weeks must not be negative")
	}

	ws, err := loadWorkspace(true)
	if err != nil {
		return err
	}

	weeks := ws.cfg.HistoryWeeks
	if historyWeeks > 0 {
		weeks = historyWeeks
	}

	points := scorecard.NewAggregator().History(ws.data.Daily, ws.data.Weekly, ws.ref, ws.cfg.WeekStartDay(), weeks)
	if err := ws.out.History(points); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
