// Package results aggregates and validates the record sequence produced by
// an extraction run.
package results

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/coolbeans/lexstruct/pkg/schema"
)

// Flatten expands a raw result sequence one level: record objects are kept,
// sequence-valued elements (a single notice or case unit may legitimately
// decompose into several records) are expanded in place, and anything else
// is dropped. Order is preserved throughout. The returned notes describe
// each dropped element; records themselves are never mutated.
func Flatten(items []any) ([]schema.Record, []string) {
	records := make([]schema.Record, 0, len(items))
	var notes []string

	for i, item := range items {
		switch v := item.(type) {
		case schema.Record:
			records = append(records, v)
		case map[string]any:
			records = append(records, schema.Record(v))
		case []any:
			for j, sub := range v {
				switch s := sub.(type) {
				case schema.Record:
					records = append(records, s)
				case map[string]any:
					records = append(records, schema.Record(s))
				default:
					notes = append(notes, fmt.Sprintf("dropped element %d.%d: unexpected type %T", i, j, sub))
				}
			}
		default:
			notes = append(notes, fmt.Sprintf("dropped element %d: unexpected type %T", i, item))
		}
	}

	return records, notes
}

// Load reads a persisted result artifact (a JSON array) back into its raw
// element sequence for reprocessing.
func Load(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%s is not a JSON array: %w", path, err)
	}
	return items, nil
}

// ToRaw converts flattened records back to the generic element sequence
// accepted by the artifact writer.
func ToRaw(records []schema.Record) []any {
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}
