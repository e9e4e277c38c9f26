package records

import (
	"fmt"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/lifescore/internal/discovery"
	"github.com/dotcommander/lifescore/internal/types"
)

// SchemaValidator checks one raw record against the schema for its kind.
type SchemaValidator interface {
	Validate(kind string, data map[string]any) ([]types.ValidationError, error)
}

// Dataset is everything read from a data directory, sorted chronologically.
type Dataset struct {
	Daily      []DailyRecord
	Weekly     []WeeklyRecord
	Monthly    []MonthlyRecord
	Goals      []Goal
	Principles []Principle
}

// Loader reads record files into a Dataset.
type Loader struct {
	validator SchemaValidator
	log       *zap.Logger
	weekStart *time.Weekday
}

// NewLoader creates a Loader. A nil validator skips schema checks and a nil
// logger discards log output.
func NewLoader(validator SchemaValidator, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{validator: validator, log: log}
}

// WithWeekStart makes the loader warn about weekly records whose
// week_start_date falls on another weekday. Such a review never matches a
// week window, so it is never scored.
func (l *Loader) WithWeekStart(day time.Weekday) *Loader {
	l.weekStart = &day
	return l
}

// origin remembers where a keyed record was first seen.
type origin struct {
	file string
	line int
}

// loadState accumulates one Load call.
type loadState struct {
	ds      *Dataset
	issues  []types.ValidationError
	daily   map[string]origin
	weekly  map[string]origin
	monthly map[string]origin
}

// Load discovers and decodes every record file under root. Record-level
// problems (schema violations, bad dates, duplicates) are returned as issues
// and the offending record is skipped; the error is reserved for problems
// that stop loading altogether.
func (l *Loader) Load(root string) (*Dataset, []types.ValidationError, error) {
	files, err := discovery.NewFileDiscovery(root).DiscoverFiles()
	if err != nil {
		return nil, nil, err
	}

	st := &loadState{
		ds:      &Dataset{},
		daily:   make(map[string]origin),
		weekly:  make(map[string]origin),
		monthly: make(map[string]origin),
	}

	for _, f := range files {
		content, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", f.RelPath, err)
		}
		if err := l.loadBytes(st, f.RelPath, f.Kind, content); err != nil {
			return nil, nil, err
		}
	}

	st.ds.sort()
	l.log.Debug("dataset loaded",
		zap.String("root", root),
		zap.Int("files", len(files)),
		zap.Int("daily", len(st.ds.Daily)),
		zap.Int("weekly", len(st.ds.Weekly)),
		zap.Int("monthly", len(st.ds.Monthly)),
		zap.Int("goals", len(st.ds.Goals)),
		zap.Int("principles", len(st.ds.Principles)),
		zap.Int("issues", len(st.issues)),
	)
	return st.ds, st.issues, nil
}

// LoadBytes decodes a single document of the given kind. It is the
// single-file counterpart of Load.
func (l *Loader) LoadBytes(name, kind string, content []byte) (*Dataset, []types.ValidationError, error) {
	st := &loadState{
		ds:      &Dataset{},
		daily:   make(map[string]origin),
		weekly:  make(map[string]origin),
		monthly: make(map[string]origin),
	}
	if err := l.loadBytes(st, name, kind, content); err != nil {
		return nil, nil, err
	}
	st.ds.sort()
	return st.ds, st.issues, nil
}

func (l *Loader) loadBytes(st *loadState, file, kind string, content []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		st.issues = append(st.issues, types.ValidationError{
			File:     file,
			Message:  fmt.Sprintf("cannot parse file: %v", err),
			Severity: types.SeverityError,
			Source:   types.SourceDecode,
		})
		return nil
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		l.log.Debug("skipping empty file", zap.String("file", file))
		return nil
	}

	l.log.Debug("reading records", zap.String("file", file), zap.String("kind", kind))
	root := doc.Content[0]

	if kind != types.KindExport {
		l.loadNode(st, file, kind, root)
		return nil
	}

	if root.Kind != yaml.MappingNode {
		st.issues = append(st.issues, nodeIssue(file, root, types.SourceDecode,
			"export file must be a mapping of record kinds"))
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case types.KindDaily, types.KindWeekly, types.KindMonthly, types.KindGoals, types.KindPrinciples:
			l.loadNode(st, file, key.Value, value)
		default:
			st.issues = append(st.issues, types.ValidationError{
				File:     file,
				Message:  fmt.Sprintf("ignoring unknown export section %q", key.Value),
				Severity: types.SeverityWarning,
				Source:   types.SourceDecode,
				Line:     key.Line,
				Column:   key.Column,
			})
		}
	}
	return nil
}

// loadNode accepts either a single record or a sequence of records.
func (l *Loader) loadNode(st *loadState, file, kind string, node *yaml.Node) {
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			l.loadRecord(st, file, kind, item)
		}
	case yaml.MappingNode:
		l.loadRecord(st, file, kind, node)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return
		}
		if kind == types.KindPrinciples {
			l.loadRecord(st, file, kind, node)
			return
		}
		fallthrough
	default:
		st.issues = append(st.issues, nodeIssue(file, node, types.SourceDecode,
			fmt.Sprintf("%s records must be a mapping or a list of mappings", kind)))
	}
}

func (l *Loader) loadRecord(st *loadState, file, kind string, node *yaml.Node) {
	// Principles may be plain strings.
	if kind == types.KindPrinciples && node.Kind == yaml.ScalarNode {
		if HasText(node.Value) {
			st.ds.Principles = append(st.ds.Principles, Principle{Content: node.Value})
		}
		return
	}
	if node.Kind != yaml.MappingNode {
		st.issues = append(st.issues, nodeIssue(file, node, types.SourceDecode,
			fmt.Sprintf("%s record must be a mapping", kind)))
		return
	}

	if l.validator != nil {
		var raw map[string]any
		if err := node.Decode(&raw); err != nil {
			st.issues = append(st.issues, nodeIssue(file, node, types.SourceDecode, err.Error()))
			return
		}
		issues, err := l.validator.Validate(kind, normalize(raw).(map[string]any))
		if err != nil {
			st.issues = append(st.issues, nodeIssue(file, node, types.SourceSchema, err.Error()))
			return
		}
		if len(issues) > 0 {
			for _, issue := range issues {
				issue.File = file
				issue.Line = node.Line
				issue.Column = node.Column
				st.issues = append(st.issues, issue)
			}
			l.log.Debug("record failed schema", zap.String("file", file), zap.Int("line", node.Line))
			return
		}
	}

	switch kind {
	case types.KindDaily:
		var r DailyRecord
		if !decodeInto(st, file, node, &r) {
			return
		}
		if r.Date.IsZero() {
			st.issues = append(st.issues, nodeIssue(file, node, types.SourceDecode, "daily record has no date"))
			return
		}
		if st.duplicate(st.daily, "daily record", r.Date.String(), file, node) {
			return
		}
		st.ds.Daily = append(st.ds.Daily, r)

	case types.KindWeekly:
		var r WeeklyRecord
		if !decodeInto(st, file, node, &r) {
			return
		}
		if r.WeekStartDate.IsZero() {
			st.issues = append(st.issues, nodeIssue(file, node, types.SourceDecode, "weekly record has no week_start_date"))
			return
		}
		if r.Year == 0 || r.WeekNumber == 0 {
			r.Year, r.WeekNumber = r.WeekStartDate.AddDays(3).ISOWeek()
		}
		if st.duplicate(st.weekly, "weekly record for week starting", r.WeekStartDate.String(), file, node) {
			return
		}
		if l.weekStart != nil && r.WeekStartDate.Weekday() != *l.weekStart {
			issue := nodeIssue(file, node, types.SourceDataset, fmt.Sprintf(
				"week_start_date %s is a %s, not a %s; this review will not be scored",
				r.WeekStartDate, r.WeekStartDate.Weekday(), *l.weekStart))
			issue.Severity = types.SeverityWarning
			st.issues = append(st.issues, issue)
		}
		st.ds.Weekly = append(st.ds.Weekly, r)

	case types.KindMonthly:
		var r MonthlyRecord
		if !decodeInto(st, file, node, &r) {
			return
		}
		if r.Month < 1 || r.Month > 12 || r.Year == 0 {
			st.issues = append(st.issues, nodeIssue(file, node, types.SourceDecode,
				fmt.Sprintf("monthly record has invalid year/month %d/%d", r.Year, r.Month)))
			return
		}
		if st.duplicate(st.monthly, "monthly record", r.Key(), file, node) {
			return
		}
		st.ds.Monthly = append(st.ds.Monthly, r)

	case types.KindGoals:
		var g Goal
		if !decodeInto(st, file, node, &g) {
			return
		}
		st.ds.Goals = append(st.ds.Goals, g)

	case types.KindPrinciples:
		var p Principle
		if !decodeInto(st, file, node, &p) {
			return
		}
		st.ds.Principles = append(st.ds.Principles, p)
	}
}

// duplicate records key's first origin, or reports a duplicate and returns
// true when key has been seen. The first record wins.
func (st *loadState) duplicate(seen map[string]origin, what, key, file string, node *yaml.Node) bool {
	if first, ok := seen[key]; ok {
		st.issues = append(st.issues, nodeIssue(file, node, types.SourceDataset,
			fmt.Sprintf("duplicate %s %s (first defined in %s:%d)", what, key, first.file, first.line)))
		return true
	}
	seen[key] = origin{file: file, line: node.Line}
	return false
}

func decodeInto(st *loadState, file string, node *yaml.Node, out any) bool {
	if err := node.Decode(out); err != nil {
		st.issues = append(st.issues, nodeIssue(file, node, types.SourceDecode, err.Error()))
		return false
	}
	return true
}

func nodeIssue(file string, node *yaml.Node, source, msg string) types.ValidationError {
	return types.ValidationError{
		File:     file,
		Message:  msg,
		Severity: types.SeverityError,
		Source:   source,
		Line:     node.Line,
		Column:   node.Column,
	}
}

// normalize rewrites decoded timestamps back to their date text so schema
// validation sees what the file says.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, item := range x {
			x[k] = normalize(item)
		}
		return x
	case []any:
		for i, item := range x {
			x[i] = normalize(item)
		}
		return x
	case time.Time:
		return x.Format(DateLayout)
	default:
		return v
	}
}

func (ds *Dataset) sort() {
	sort.SliceStable(ds.Daily, func(i, j int) bool {
		return ds.Daily[i].Date.Before(ds.Daily[j].Date)
	})
	sort.SliceStable(ds.Weekly, func(i, j int) bool {
		return ds.Weekly[i].WeekStartDate.Before(ds.Weekly[j].WeekStartDate)
	})
	sort.SliceStable(ds.Monthly, func(i, j int) bool {
		return ds.Monthly[i].Key() < ds.Monthly[j].Key()
	})
}
