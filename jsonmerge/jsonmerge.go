// Package jsonmerge combines object schema fragments and example documents.
package jsonmerge

import (
	"encoding/json"
	"fmt"
	"slices"
)

type Merger interface {
	MergeSchemas(schemas ...[]byte) ([]byte, error)
	MergeExamples(examples ...[]byte) ([]byte, error)
}

type Options struct {
	SchemasMergeStrategy SchemaMergeStrategy
	// Strict closes the merged schema with "additionalProperties": false.
	Strict bool
}

type SchemaMergeStrategy int

const (
	OverwriteDuplicates SchemaMergeStrategy = iota
	ErrorOnDuplicates
	KeepExisting
)

func New() Merger {
	return NewWithOptions(Options{
		SchemasMergeStrategy: OverwriteDuplicates,
	})
}

func NewWithOptions(opts Options) Merger {
	return &merger{opts: opts}
}

type merger struct {
	opts Options
}

// MergeSchemas unions the properties and required lists of object schemas.
// encoding/json sorts map keys, so the output is deterministic.
func (m *merger) MergeSchemas(schemas ...[]byte) ([]byte, error) {
	if len(schemas) == 0 {
		return []byte("{}"), nil
	}

	properties := make(map[string]any)
	required := make([]string, 0)

	for i, schema := range schemas {
		var current struct {
			Properties map[string]any `json:"properties"`
			Required   []string       `json:"required"`
		}
		if err := json.Unmarshal(schema, &current); err != nil {
			return nil, fmt.Errorf("failed to unmarshal schema %d: %w", i, err)
		}

		for k, v := range current.Properties {
			if _, exists := properties[k]; exists {
				switch m.opts.SchemasMergeStrategy {
				case ErrorOnDuplicates:
					return nil, fmt.Errorf("duplicate property found: %s", k)
				case KeepExisting:
					continue
				}
			}
			properties[k] = v
		}

		for _, r := range current.Required {
			if !slices.Contains(required, r) {
				required = append(required, r)
			}
		}
	}

	result := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		slices.Sort(required)
		result["required"] = required
	}
	if m.opts.Strict {
		result["additionalProperties"] = false
	}

	return json.MarshalIndent(result, "", "  ")
}

// MergeExamples overlays example objects, later keys winning.
func (m *merger) MergeExamples(examples ...[]byte) ([]byte, error) {
	if len(examples) == 0 {
		return []byte("{}"), nil
	}

	result := make(map[string]any)
	for i, example := range examples {
		var current map[string]any
		if err := json.Unmarshal(example, &current); err != nil {
			return nil, fmt.Errorf("failed to unmarshal example %d: %w", i, err)
		}

		for k, v := range current {
			result[k] = v
		}
	}

	return json.MarshalIndent(result, "", "  ")
}
