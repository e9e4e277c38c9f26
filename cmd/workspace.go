package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/dotcommander/lifescore/internal/baseline"
	"github.com/dotcommander/lifescore/internal/config"
	"github.com/dotcommander/lifescore/internal/cue"
	"github.com/dotcommander/lifescore/internal/logger"
	"github.com/dotcommander/lifescore/internal/outputters"
	"github.com/dotcommander/lifescore/internal/project"
	"github.com/dotcommander/lifescore/internal/records"
	"github.com/dotcommander/lifescore/internal/types"
)

// now is swapped out in tests.
var now = time.Now

// workspace is the loaded state every command works from.
type workspace struct {
	cfg          *config.Config
	log          *zap.Logger
	data         *records.Dataset
	allIssues    []types.ValidationError
	issues       []types.ValidationError
	ignored      int
	baselineFile string
	ref          records.Date
	out          *outputters.Outputter
}

func overrides() config.Overrides {
	return config.Overrides{
		DataDir:   dataDir,
		Format:    outputFormat,
		Output:    outputFile,
		WeekStart: weekStart,
		Quiet:     quiet,
		Verbose:   verbose,
	}
}

func referenceDate(s string) (records.Date, error) {
	if s == "" {
		return records.DateOf(now()), nil
	}
	d, err := records.ParseDate(s)
	if err != nil {
		return records.Date{}, fmt.Errorf("invalid --date: %w", err)
	}
	return d, nil
}

// loadWorkspace loads configuration and every record under the data
// directory. With strict set, any error-severity record issue fails the load.
func loadWorkspace(strict bool) (*workspace, error) {
	cfg, err := config.LoadConfig(overrides())
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	log, err := logger.New(cfg.Quiet, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}

	ref, err := referenceDate(refDate)
	if err != nil {
		return nil, err
	}

	cfg.DataDir, err = project.FindDataDir(".", cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("error resolving data directory: %w", err)
	}

	validator := cue.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return nil, fmt.Errorf("error loading schemas: %w", err)
	}

	data, issues, err := records.NewLoader(validator, log).
		WithWeekStart(cfg.WeekStartDay().Weekday()).
		Load(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("error loading records: %w", err)
	}

	baselineFile := baselinePath
	if baselineFile == "" {
		baselineFile = baseline.DefaultFile
	}
	if !filepath.IsAbs(baselineFile) {
		baselineFile = filepath.Join(cfg.DataDir, baselineFile)
	}
	allIssues := issues
	ignored := 0
	if useBaseline {
		b, err := loadBaseline(baselineFile)
		if err != nil {
			log.Warn("failed to load baseline", zap.String("path", baselineFile), zap.Error(err))
		}
		issues, ignored = b.Filter(issues)
		log.Debug("baseline applied", zap.String("path", baselineFile), zap.Int("ignored", ignored))
	}

	for _, issue := range issues {
		if issue.Severity == types.SeverityWarning {
			log.Warn(issue.Message, zap.String("file", issue.File), zap.Int("line", issue.Line))
		}
	}

	if strict && types.HasErrors(issues) {
		n := 0
		for _, issue := range issues {
			if issue.Severity == types.SeverityError {
				log.Debug(issue.Message, zap.String("file", issue.File), zap.Int("line", issue.Line))
				n++
			}
		}
		return nil, fmt.Errorf("%d invalid records in %s; run 'lifescore validate' for details", n, cfg.DataDir)
	}

	log.Debug("workspace ready",
		zap.String("dataDir", cfg.DataDir),
		zap.String("date", ref.String()),
		zap.String("weekStart", string(cfg.WeekStartDay())),
	)

	return &workspace{
		cfg:          cfg,
		log:          log,
		data:         data,
		allIssues:    allIssues,
		issues:       issues,
		ignored:      ignored,
		baselineFile: baselineFile,
		ref:          ref,
		out:          outputters.NewOutputter(cfg, Version),
	}, nil
}

// loadBaseline returns nil without error when no baseline file exists yet.
func loadBaseline(path string) (*baseline.Baseline, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return baseline.LoadBaseline(path)
}
