package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotcommander/lifescore/internal/baseline"
	"github.com/dotcommander/lifescore/internal/git"
	"github.com/dotcommander/lifescore/internal/output"
	"github.com/dotcommander/lifescore/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every record file without scoring",
	Long: `The validate command loads every record file under the data directory and
reports problems without scoring anything.

Validation checks:
- Schema: field types, 1-10 ratings, non-negative hours and counts,
  YYYY-MM-DD dates, HH:MM times, status enums
- Decoding: malformed dates and values of the wrong type
- Dataset: duplicate days, weeks, and months (the first definition wins)

Use --baseline-create to accept the current issues, then --baseline to report
only new ones. With --staged or --changed only issues in record files that
git reports as staged or uncommitted are shown, which suits a pre-commit hook.

Exits with status 1 when any error is found.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var (
	createBaseline bool
	stagedOnly     bool
	changedOnly    bool
)

func init() {
	validateCmd.Flags().BoolVar(&createBaseline, "baseline-create", false, "Write every current issue to the baseline file")
	validateCmd.Flags().BoolVar(&stagedOnly, "staged", false, "Only report issues in git-staged record files")
	validateCmd.Flags().BoolVar(&changedOnly, "changed", false, "Only report issues in uncommitted record files")
	validateCmd.MarkFlagsMutuallyExclusive("staged", "changed")
	rootCmd.AddCommand(validateCmd)
}

func runValidate() error {
	ws, err := loadWorkspace(false)
	if err != nil {
		return err
	}

	// Save before reporting so a failing run still records the baseline.
	if createBaseline {
		b := baseline.CreateBaseline(ws.allIssues, now())
		if err := b.SaveBaseline(ws.baselineFile); err != nil {
			return fmt.Errorf("failed to save baseline: %w", err)
		}
		ws.log.Info("baseline written", zap.String("path", ws.baselineFile), zap.Int("fingerprints", len(b.Fingerprints)))
	}

	issues := ws.issues
	if stagedOnly || changedOnly {
		issues, err = gitScope(ws.cfg.DataDir, issues)
		if err != nil {
			return err
		}
	}

	report := output.ValidationReport{
		DataDir: ws.cfg.DataDir,
		Records: map[string]int{
			types.KindDaily:      len(ws.data.Daily),
			types.KindWeekly:     len(ws.data.Weekly),
			types.KindMonthly:    len(ws.data.Monthly),
			types.KindGoals:      len(ws.data.Goals),
			types.KindPrinciples: len(ws.data.Principles),
		},
		Issues:  issues,
		Ignored: ws.ignored,
	}
	if err := ws.out.Validation(report); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if n := report.Errors(); n > 0 {
		return fmt.Errorf("validation failed: %d errors", n)
	}
	return nil
}

// gitScope keeps the issues whose file git lists as staged or changed.
func gitScope(dir string, issues []types.ValidationError) ([]types.ValidationError, error) {
	list := git.ChangedRecords
	if stagedOnly {
		list = git.StagedRecords
	}
	files, err := list(dir)
	if err != nil {
		return nil, fmt.Errorf("error listing git changes: %w", err)
	}

	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[f] = true
	}
	var scoped []types.ValidationError
	for _, issue := range issues {
		if keep[issue.File] {
			scoped = append(scoped, issue)
		}
	}
	return scoped, nil
}
