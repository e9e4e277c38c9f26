package cue

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/dotcommander/lifescore/internal/types"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// definitions maps a record kind to the schema file and definition that
// describes one record of that kind.
var definitions = map[string]struct {
	schema string
	def    string
}{
	types.KindDaily:   {schema: "daily", def: "#Daily"},
	types.KindWeekly:  {schema: "weekly", def: "#Weekly"},
	types.KindMonthly: {schema: "monthly", def: "#Monthly"},
	types.KindGoals:   {schema: "goal", def: "#Goal"},
}

// Validator handles CUE validation of raw record maps.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas compiles every embedded .cue file.
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("reading embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return fmt.Errorf("compiling schema %s: %w", entry.Name(), instErr)
		}

		// daily.cue -> daily
		v.schemas[strings.TrimSuffix(entry.Name(), ".cue")] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas found")
	}
	return nil
}

// Kinds lists the record kinds that have a schema, sorted.
func (v *Validator) Kinds() []string {
	kinds := make([]string, 0, len(definitions))
	for kind, d := range definitions {
		if _, ok := v.schemas[d.schema]; ok {
			kinds = append(kinds, kind)
		}
	}
	sort.Strings(kinds)
	return kinds
}

// Validate checks one decoded record against the schema for its kind. Kinds
// without a schema validate trivially. The returned issues carry no file or
// line; the caller knows where the record came from.
func (v *Validator) Validate(kind string, data map[string]any) ([]types.ValidationError, error) {
	d, ok := definitions[kind]
	if !ok {
		return nil, nil
	}
	schema, ok := v.schemas[d.schema]
	if !ok {
		return nil, nil
	}

	def := schema.LookupPath(cue.ParsePath(d.def))
	if !def.Exists() {
		return nil, fmt.Errorf("schema %s has no %s definition", d.schema, d.def)
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("encoding %s record: %w", kind, encErr)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrors(err), nil
	}

	// Concreteness catches required fields that are missing.
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(err), nil
	}

	return nil, nil
}

// extractErrors flattens a CUE error list into one issue per distinct
// message.
func extractErrors(err error) []types.ValidationError {
	var issues []types.ValidationError
	seen := make(map[string]bool)
	for _, e := range cueerrors.Errors(err) {
		msg := e.Error()
		if p := e.Path(); len(p) > 0 {
			field := strings.Join(p, ".")
			if !strings.HasPrefix(msg, field) {
				msg = field + ": " + msg
			}
		}
		if seen[msg] {
			continue
		}
		seen[msg] = true
		issues = append(issues, types.ValidationError{
			Message:  "schema: " + msg,
			Severity: types.SeverityError,
			Source:   types.SourceSchema,
		})
	}
	if len(issues) == 0 {
		issues = append(issues, types.ValidationError{
			Message:  fmt.Sprintf("schema: %v", err),
			Severity: types.SeverityError,
			Source:   types.SourceSchema,
		})
	}
	return issues
}
