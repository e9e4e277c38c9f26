package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/lifescore/internal/baseline"
)

// Version is set at build time.
var Version = "dev"

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var (
	dataDir      string
	outputFormat string
	outputFile   string
	refDate      string
	weekStart    string
	quiet        bool
	verbose      bool
	useBaseline  bool
	baselinePath string
)

var rootCmd = &cobra.Command{
	Use:     "lifescore",
	Short:   "Weekly life scorecard from daily and weekly habit records",
	Version: Version,
	Long: `Lifescore reads daily, weekly, and monthly habit records from a data
directory and scores the week across eight life dimensions: physical health,
mental health, career/business, wealth, relationships, time management and
productivity, life vision, and self awareness.

Without a subcommand it prints the scorecard for the week containing --date
(today by default), with trends against the week before.

Data directory layout:
- daily/**/*.{yaml,yml,json}    one record per day
- weekly/**/*.{yaml,yml,json}   one review per week
- monthly/**/*.{yaml,yml,json}  one income review per month
- goals.yaml, principles.yaml   optional
- export*.json                  multi-section exports`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScorecard(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "Data directory (default \"data\")")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "Output format (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&refDate, "date", "", "Reference date YYYY-MM-DD (default today)")
	rootCmd.PersistentFlags().StringVar(&weekStart, "week-start", "", "First day of the week (monday|sunday)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show score breakdowns and debug logging")
	rootCmd.PersistentFlags().BoolVar(&useBaseline, "baseline", false, "Ignore record issues accepted in the baseline file")
	rootCmd.PersistentFlags().StringVar(&baselinePath, "baseline-path", baseline.DefaultFile, "Baseline file, relative to the data directory")
}
