// Package sync provides utilities for vetting models against their declared schemas.
package sync

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/swaggest/jsonschema-go"
	"github.com/tailbits/fixture/model"
)

const definitionsPrefix = "#/definitions/"

var (
	rawMessageType = reflect.TypeOf(json.RawMessage{})
	timeType       = reflect.TypeOf(time.Time{})
)

// ShouldSkip lets a type opt out of schema vetting.
type ShouldSkip interface {
	SkipSchemaValidation() bool
}

type Validator struct {
	Sch   *jsonschema.Schema
	Model any
	Name  string
}

// New prepares a validator for ent using its declared schema.
func New(ent model.WithSchema) (*Validator, error) {
	var sch jsonschema.Schema
	if err := sch.UnmarshalJSON(ent.Schema()); err != nil {
		return nil, fmt.Errorf("error parsing schema for %s: %w", ent.EntityName(), err)
	}

	return &Validator{
		Sch:   &sch,
		Model: ent,
		Name:  ent.EntityName(),
	}, nil
}

// IsSynced returns the first disagreement between the Go value and its schema.
func (v *Validator) IsSynced() error {
	return v.traverse(v.Sch, reflect.ValueOf(v.Model), false, v.Name)
}

func (v *Validator) traverse(sch *jsonschema.Schema, val reflect.Value, omitEmpty bool, breadcrumbs string) error {
	if skip(val) {
		return nil
	}

	if sch == nil {
		if val.Kind() == reflect.Interface {
			return fmt.Errorf("%s: an interface value should have a definite schema", breadcrumbs)
		}
		return nil
	}

	sch, nullableRef, err := v.dereference(sch)
	if err != nil {
		return fmt.Errorf("%s: %w", breadcrumbs, err)
	}

	t, nullableType, err := schemaType(sch)
	if err != nil {
		return fmt.Errorf("%s: %w", breadcrumbs, err)
	}
	nullable := nullableRef || nullableType

	isRoot := breadcrumbs == v.Name
	if val.Kind() == reflect.Ptr {
		if !isRoot && !nullable && !omitEmpty {
			return &NullableFieldError{Breadcrumbs: breadcrumbs}
		}
		if val.IsNil() {
			val = reflect.New(val.Type().Elem()).Elem()
		} else {
			val = val.Elem()
		}
	}

	if val.Type() == rawMessageType || val.Kind() == reflect.Interface {
		// the schema is left to declare the structure
		return nil
	}

	switch t {
	case "boolean":
		if val.Kind() != reflect.Bool {
			return &SchemaTypeError{Expected: t, Got: val.Kind(), Breadcrumbs: breadcrumbs}
		}
	case "integer":
		if !isInteger(val) {
			return &SchemaTypeError{Expected: t, Got: val.Kind(), Breadcrumbs: breadcrumbs}
		}
	case "number":
		if !isInteger(val) && val.Kind() != reflect.Float32 && val.Kind() != reflect.Float64 {
			return &SchemaTypeError{Expected: t, Got: val.Kind(), Breadcrumbs: breadcrumbs}
		}
	case "string":
		if val.Kind() != reflect.String && !isBytes(val) && val.Type() != timeType {
			return &SchemaTypeError{Expected: t, Got: val.Kind(), Breadcrumbs: breadcrumbs}
		}
	case "object":
		return v.checkObject(sch, val, breadcrumbs)
	case "array":
		if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
			return &SchemaTypeError{Expected: "array or slice", Got: val.Kind(), Breadcrumbs: breadcrumbs}
		}
		if sch.Items != nil && sch.Items.SchemaOrBool != nil {
			elem := reflect.New(val.Type().Elem()).Elem()
			return v.traverse(sch.Items.SchemaOrBool.TypeObject, elem, false, breadcrumbs+".0")
		}
	default:
		return fmt.Errorf("%s: unknown type %s", breadcrumbs, t)
	}

	return nil
}

func (v *Validator) checkObject(sch *jsonschema.Schema, val reflect.Value, breadcrumbs string) error {
	switch val.Kind() {
	case reflect.Struct:
		if sch.AdditionalProperties != nil && sch.AdditionalProperties.TypeBoolean != nil && *sch.AdditionalProperties.TypeBoolean {
			return fmt.Errorf("%s: struct schemas should not allow additional properties", breadcrumbs)
		}

		seen := make(map[string]bool, val.NumField())
		for i := 0; i < val.NumField(); i++ {
			name, opts, ok := jsonName(val.Type().Field(i))
			if !ok {
				continue
			}
			seen[name] = true

			prop, ok := sch.Properties[name]
			if !ok {
				return &MissingPropertyError{Property: name, Breadcrumbs: breadcrumbs}
			}

			omitEmpty := opts.contains("omitempty")
			if !omitEmpty && !slices.Contains(sch.Required, name) {
				return &RequiredPropertyError{Property: name, Breadcrumbs: breadcrumbs}
			}

			if err := v.traverse(prop.TypeObject, val.Field(i), omitEmpty, breadcrumbs+"."+name); err != nil {
				return err
			}
		}

		for _, k := range sortedKeys(sch.Properties) {
			if !seen[k] {
				return &AdditionalPropertyError{Property: k, Breadcrumbs: breadcrumbs}
			}
		}
	case reflect.Map:
		if sch.AdditionalProperties != nil && sch.AdditionalProperties.TypeBoolean != nil && !*sch.AdditionalProperties.TypeBoolean {
			return fmt.Errorf("%s: schema strictly enumerates all valid keys (e.g. %s); the appropriate data type would be a struct, not a map", breadcrumbs, sortedKeys(sch.Properties))
		}

		elem := reflect.New(val.Type().Elem()).Elem()
		if sch.AdditionalProperties != nil && sch.AdditionalProperties.TypeObject != nil {
			if err := v.traverse(sch.AdditionalProperties.TypeObject, elem, false, breadcrumbs+"[key]"); err != nil {
				return err
			}
		}
	default:
		return &SchemaTypeError{Expected: "map or struct", Got: val.Kind(), Breadcrumbs: breadcrumbs}
	}

	return nil
}

// dereference resolves local references and the oneOf [null, $ref] idiom.
func (v *Validator) dereference(sch *jsonschema.Schema) (*jsonschema.Schema, bool, error) {
	if sch.Ref != nil {
		if !strings.HasPrefix(*sch.Ref, definitionsPrefix) {
			return nil, false, fmt.Errorf("references must be prefixed with %s", definitionsPrefix)
		}
		def, ok := v.Sch.Definitions[strings.TrimPrefix(*sch.Ref, definitionsPrefix)]
		if !ok || def.TypeObject == nil {
			return nil, false, fmt.Errorf("could not find reference %s", *sch.Ref)
		}
		return def.TypeObject, false, nil
	}

	nullable := false
	inner := sch
	for _, s := range sch.OneOf {
		switch {
		case s.TypeObject == nil:
		case s.TypeObject.Type != nil && s.TypeObject.Type.SimpleTypes != nil && *s.TypeObject.Type.SimpleTypes == jsonschema.Null:
			nullable = true
		case s.TypeObject.Ref != nil:
			ref, _, err := v.dereference(s.TypeObject)
			if err != nil {
				return nil, false, err
			}
			inner = ref
		}
	}

	return inner, nullable, nil
}

// schemaType supports a single simple type, or the pair ["null", type].
func schemaType(sch *jsonschema.Schema) (t string, nullable bool, err error) {
	if sch.Type == nil {
		return "", false, fmt.Errorf("schema is missing a type")
	}

	if sch.Type.SimpleTypes != nil {
		return string(*sch.Type.SimpleTypes), false, nil
	}

	types := make([]string, 0, len(sch.Type.SliceOfSimpleTypeValues))
	for _, st := range sch.Type.SliceOfSimpleTypeValues {
		if st == jsonschema.Null {
			nullable = true
			continue
		}
		types = append(types, string(st))
	}

	if len(types) != 1 {
		return "", false, fmt.Errorf("expected exactly one non-null type, got %d", len(types))
	}

	return types[0], nullable, nil
}

func skip(val reflect.Value) bool {
	if !val.IsValid() {
		return false
	}

	if s, ok := val.Interface().(ShouldSkip); ok {
		return s.SkipSchemaValidation()
	}

	if val.CanAddr() {
		if s, ok := val.Addr().Interface().(ShouldSkip); ok {
			return s.SkipSchemaValidation()
		}
	}

	return false
}

func isInteger(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isBytes(val reflect.Value) bool {
	return (val.Kind() == reflect.Slice || val.Kind() == reflect.Array) && val.Type().Elem().Kind() == reflect.Uint8
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
