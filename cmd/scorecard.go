package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/lifescore/internal/scorecard"
)

var scorecardCmd = &cobra.Command{
	Use:   "scorecard",
	Short: "Score the week across the eight life dimensions",
	Long: `The scorecard command scores the week containing --date and compares it
with the week before.

Each dimension scores 0-100 from weighted metrics. Status bands:
- Excellent 90%+, Good 80%+, Okay 70%+, Below Standard 60%+, Critical below
- Trends move up or down only beyond 2 percentage points
- A week with no records before it shows no trends, so the first logged
  week has none

Use --verbose to show the metric breakdown behind every dimension.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScorecard(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scorecardCmd)
}

func runScorecard() error {
	ws, err := loadWorkspace(true)
	if err != nil {
		return err
	}

	c := scorecard.NewAggregator().Compare(ws.data.Daily, ws.data.Weekly, ws.ref, ws.cfg.WeekStartDay())
	if err := ws.out.Scorecard(c); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
