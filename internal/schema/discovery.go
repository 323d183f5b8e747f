package schema

import (
	"sort"

	"github.com/ricardonunez-io/adpulse/internal/ingestor"
)

const maxExamples = 5
const maxSampleSize = 200

// Discover infers a type, cardinality and a few examples for every column
// of t from its first rows.
func Discover(t ingestor.Table) Schema {
	sample := t.Rows
	if len(sample) > maxSampleSize {
		sample = sample[:maxSampleSize]
	}

	fields := make([]Field, 0, len(t.Columns))
	for _, col := range t.Columns {
		values := make(map[string]struct{})
		numeric := true
		for _, r := range sample {
			v := r.Get(col)
			if v == "" {
				continue
			}
			values[v] = struct{}{}
			if _, err := ingestor.ParseNumber(v); err != nil {
				numeric = false
			}
		}

		fieldType := FieldTypeString
		switch {
		case len(values) == 0:
			fieldType = FieldTypeUnknown
		case numeric:
			fieldType = FieldTypeNumber
		}

		fields = append(fields, Field{
			Name:        col,
			Type:        fieldType,
			Cardinality: len(values),
			Examples:    sortedKeys(values, maxExamples),
		})
	}

	return Schema{Dataset: t.Name, Fields: fields}
}

func sortedKeys(m map[string]struct{}, max int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > max {
		keys = keys[:max]
	}
	return keys
}
