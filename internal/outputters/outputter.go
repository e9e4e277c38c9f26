package outputters

import (
	"fmt"
	"io"
	"os"

	"github.com/dotcommander/lifescore/internal/coach"
	"github.com/dotcommander/lifescore/internal/config"
	"github.com/dotcommander/lifescore/internal/output"
	"github.com/dotcommander/lifescore/internal/scorecard"
)

// FormatterFactory creates the formatter for a format name
type FormatterFactory interface {
	CreateFormatter(format string) (output.Formatter, error)
}

// DefaultFormatterFactory builds the console, json, and markdown formatters
type DefaultFormatterFactory struct {
	config  *config.Config
	version string
}

// CreateFormatter returns the formatter for format
func (f *DefaultFormatterFactory) CreateFormatter(format string) (output.Formatter, error) {
	switch format {
	case "console":
		return output.NewConsoleFormatter(f.config.Quiet, f.config.Verbose), nil
	case "json":
		return output.NewJSONFormatter(true, f.version), nil
	case "markdown":
		return output.NewMarkdownFormatter(f.config.Verbose), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter writes reports in the configured format to stdout or the
// configured output file
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
	stdout  io.Writer
}

// NewOutputter creates a new Outputter
func NewOutputter(config *config.Config, version string) *Outputter {
	return &Outputter{
		config:  config,
		factory: &DefaultFormatterFactory{config: config, version: version},
		stdout:  os.Stdout,
	}
}

// NewOutputterWithFactory creates an Outputter with a custom factory and
// destination for stdout
func NewOutputterWithFactory(config *config.Config, factory FormatterFactory, stdout io.Writer) *Outputter {
	return &Outputter{
		config:  config,
		factory: factory,
		stdout:  stdout,
	}
}

func (o *Outputter) emit(format string, render func(output.Formatter, io.Writer) error) error {
	formatter, err := o.factory.CreateFormatter(format)
	if err != nil {
		return err
	}

	if o.config.Output == "" {
		return render(formatter, o.stdout)
	}

	file, err := os.Create(o.config.Output)
	if err != nil {
		return fmt.Errorf("error creating output file %s: %w", o.config.Output, err)
	}
	if err := render(formatter, file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error writing to file %s: %w", o.config.Output, err)
	}
	return nil
}

// Scorecard writes the scorecard report
func (o *Outputter) Scorecard(c scorecard.Comparison) error {
	return o.emit(o.config.Format, func(f output.Formatter, w io.Writer) error { return f.Scorecard(w, c) })
}

// Dashboard writes the dashboard report
func (o *Outputter) Dashboard(r output.DashboardReport) error {
	return o.emit(o.config.Format, func(f output.Formatter, w io.Writer) error { return f.Dashboard(w, r) })
}

// History writes the history report
func (o *Outputter) History(points []scorecard.HistoryPoint) error {
	return o.emit(o.config.Format, func(f output.Formatter, w io.Writer) error { return f.History(w, points) })
}

// Validation writes the validation report
func (o *Outputter) Validation(r output.ValidationReport) error {
	return o.emit(o.config.Format, func(f output.Formatter, w io.Writer) error { return f.Validation(w, r) })
}

// Coach writes the coaching payload, always as JSON
func (o *Outputter) Coach(in coach.Input) error {
	return o.emit("json", func(f output.Formatter, w io.Writer) error { return f.Coach(w, in) })
}
