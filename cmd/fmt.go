package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/lifescore/internal/config"
	"github.com/dotcommander/lifescore/internal/discovery"
	"github.com/dotcommander/lifescore/internal/format"
	"github.com/dotcommander/lifescore/internal/project"
)

var (
	fmtCheck bool
	fmtWrite bool
	fmtDiff  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Rewrite YAML record files in canonical key order",
	Long: `The fmt command rewrites YAML record files so every record lists its
fields in the same order.

FORMATTING RULES:
- Known fields follow the record layout (date first for daily records,
  week_start_date first for weekly reviews, year and month for monthly ones)
- Unknown fields come last, alphabetically
- Export files list their sections as daily, weekly, monthly, goals, principles
- Two-space indentation; comments are kept

Without arguments every YAML record file under the data directory is
formatted. JSON files are left alone.

FLAGS:
  --check      Exit 1 if any file would change
  -w, --write  Write changes in place
  --diff       Show what would change`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFmt(cmd.OutOrStdout(), args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Exit 1 if files would change")
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write changes in place")
	fmtCmd.Flags().BoolVar(&fmtDiff, "diff", false, "Show diff of what would change")
	rootCmd.AddCommand(fmtCmd)
}

// fmtTarget is one record file to format.
type fmtTarget struct {
	path string
	rel  string
	kind string
}

func runFmt(w io.Writer, args []string) error {
	cfg, err := config.LoadConfig(overrides())
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	root, err := project.FindDataDir(".", cfg.DataDir)
	if err != nil {
		return fmt.Errorf("error resolving data directory: %w", err)
	}

	targets, err := collectFmtTargets(root, args)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("no YAML record files to format in %s", root)
	}

	formatter := format.NewFormatter()
	var changed []string
	for _, t := range targets {
		content, err := os.ReadFile(t.path)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", t.rel, err)
		}
		formatted, err := formatter.Format(t.kind, content)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", t.rel, err)
			}
			continue
		}
		if string(formatted) == string(content) {
			if cfg.Verbose {
				fmt.Fprintf(w, "%s already formatted\n", t.rel)
			}
			continue
		}
		changed = append(changed, t.rel)

		switch {
		case fmtCheck:
			if !cfg.Quiet {
				fmt.Fprintf(w, "%s needs formatting\n", t.rel)
			}
		case fmtDiff:
			fmt.Fprint(w, format.Diff(content, formatted, t.rel))
		case fmtWrite:
			if err := os.WriteFile(t.path, formatted, 0o644); err != nil {
				return fmt.Errorf("error writing %s: %w", t.rel, err)
			}
			if !cfg.Quiet {
				fmt.Fprintf(w, "Formatted %s\n", t.rel)
			}
		default:
			fmt.Fprintf(w, "# %s\n%s", t.rel, formatted)
		}
	}

	if !cfg.Quiet && len(targets) > 1 {
		switch {
		case len(changed) == 0:
			fmt.Fprintf(w, "\nAll %d files already formatted\n", len(targets))
		case fmtWrite && !fmtCheck:
			fmt.Fprintf(w, "\nFormatted %d of %d files\n", len(changed), len(targets))
		default:
			fmt.Fprintf(w, "\n%d of %d files need formatting\n", len(changed), len(targets))
		}
	}

	if fmtCheck && len(changed) > 0 {
		return fmt.Errorf("%d files need formatting", len(changed))
	}
	return nil
}

// collectFmtTargets lists every YAML record file under root, or the given
// paths when there are any.
func collectFmtTargets(root string, args []string) ([]fmtTarget, error) {
	var targets []fmtTarget
	if len(args) == 0 {
		files, err := discovery.NewFileDiscovery(root).DiscoverFiles()
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if isYAML(f.Path) {
				targets = append(targets, fmtTarget{path: f.Path, rel: f.RelPath, kind: f.Kind})
			}
		}
		return targets, nil
	}

	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve %s: %w", arg, err)
		}
		if _, err := os.Stat(abs); err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !isYAML(abs) {
			continue
		}
		kind, err := discovery.DetectKind(abs, root)
		if err != nil {
			return nil, err
		}
		rel, _ := filepath.Rel(root, abs)
		targets = append(targets, fmtTarget{path: abs, rel: filepath.ToSlash(rel), kind: kind})
	}
	return targets, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
