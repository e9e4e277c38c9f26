package format

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/lifescore/internal/records"
	"github.com/dotcommander/lifescore/internal/types"
)

// exportOrder is the canonical section order of an export file.
var exportOrder = []string{
	types.KindDaily,
	types.KindWeekly,
	types.KindMonthly,
	types.KindGoals,
	types.KindPrinciples,
}

// Formatter rewrites YAML record files canonically. Keys of each record
// follow the declaration order of its record type; unknown keys come last,
// alphabetically. Comments and scalar styles are kept.
type Formatter struct {
	orders map[string][]string
	nested map[string][]string
}

// NewFormatter creates a Formatter for every record kind.
func NewFormatter() *Formatter {
	return &Formatter{
		orders: map[string][]string{
			types.KindDaily:      fieldOrder(records.DailyRecord{}),
			types.KindWeekly:     fieldOrder(records.WeeklyRecord{}),
			types.KindMonthly:    fieldOrder(records.MonthlyRecord{}),
			types.KindGoals:      fieldOrder(records.Goal{}),
			types.KindPrinciples: fieldOrder(records.Principle{}),
		},
		nested: map[string][]string{
			"leading_indicators": fieldOrder(records.LeadingIndicator{}),
		},
	}
}

// fieldOrder lists the yaml keys of a struct in declaration order.
func fieldOrder(v any) []string {
	t := reflect.TypeOf(v)
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			continue
		}
		keys = append(keys, name)
	}
	return keys
}

// Format returns content rewritten for the given record kind. Blank content
// is returned unchanged. On a parse error the original content is returned
// with the error.
func (f *Formatter) Format(kind string, content []byte) ([]byte, error) {
	if strings.TrimSpace(string(content)) == "" {
		return content, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return content, fmt.Errorf("cannot parse: %w", err)
	}
	if len(doc.Content) == 0 {
		return content, nil
	}

	if kind == types.KindExport {
		f.formatExport(doc.Content[0])
	} else {
		f.formatRecords(kind, doc.Content[0])
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return content, fmt.Errorf("cannot encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return content, fmt.Errorf("cannot encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *Formatter) formatExport(node *yaml.Node) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		f.formatRecords(node.Content[i].Value, node.Content[i+1])
	}
	sortKeys(node, exportOrder)
}

// formatRecords handles a single record or a list of them.
func (f *Formatter) formatRecords(kind string, node *yaml.Node) {
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			f.formatRecord(kind, item)
		}
	case yaml.MappingNode:
		f.formatRecord(kind, node)
	}
}

func (f *Formatter) formatRecord(kind string, node *yaml.Node) {
	if node.Kind != yaml.MappingNode {
		return
	}
	sortKeys(node, f.orders[kind])

	for i := 0; i+1 < len(node.Content); i += 2 {
		order, ok := f.nested[node.Content[i].Value]
		if !ok || node.Content[i+1].Kind != yaml.SequenceNode {
			continue
		}
		for _, item := range node.Content[i+1].Content {
			if item.Kind == yaml.MappingNode {
				sortKeys(item, order)
			}
		}
	}
}

// sortKeys reorders the key/value pairs of a mapping node in place.
func sortKeys(node *yaml.Node, order []string) {
	rank := make(map[string]int, len(order))
	for i, key := range order {
		rank[key] = i
	}
	rankOf := func(key string) int {
		if r, ok := rank[key]; ok {
			return r
		}
		return len(order)
	}

	type pair struct{ key, value *yaml.Node }
	pairs := make([]pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs = append(pairs, pair{node.Content[i], node.Content[i+1]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		ri, rj := rankOf(pairs[i].key.Value), rankOf(pairs[j].key.Value)
		if ri != rj {
			return ri < rj
		}
		if ri == len(order) {
			return pairs[i].key.Value < pairs[j].key.Value
		}
		return false
	})

	node.Content = node.Content[:0]
	for _, p := range pairs {
		node.Content = append(node.Content, p.key, p.value)
	}
}

// Diff lists the lines that differ between original and formatted content.
// It returns "" when they are identical.
func Diff(original, formatted []byte, filename string) string {
	if bytes.Equal(original, formatted) {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s (formatted)\n", filename, filename)

	before := strings.Split(string(original), "\n")
	after := strings.Split(string(formatted), "\n")
	for i := 0; i < max(len(before), len(after)); i++ {
		var o, n string
		if i < len(before) {
			o = before[i]
		}
		if i < len(after) {
			n = after[i]
		}
		if o == n {
			continue
		}
		if o != "" {
			fmt.Fprintf(&b, "- %s\n", o)
		}
		if n != "" {
			fmt.Fprintf(&b, "+ %s\n", n)
		}
	}
	return b.String()
}
