// Package catalog collects entity schemas into a single OpenAPI 3.1
// document, under components/schemas.
package catalog

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/openapi-go/openapi31"
	"github.com/tailbits/fixture/internal/casing"
	"github.com/tailbits/fixture/model"
)

const (
	openapiVersion    = "3.1.0"
	componentsPrefix  = "#/components/schemas/"
	definitionsPrefix = "#/definitions/"
)

type config struct {
	title       string
	version     string
	description string
	lint        bool
	ignoreRules []string
}

type Option func(*config)

func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

func WithVersion(version string) Option {
	return func(c *config) {
		c.version = version
	}
}

func WithDescription(desc string) Option {
	return func(c *config) {
		c.description = desc
	}
}

// Lint runs the recommended vacuum ruleset over the document and fails on
// violations in the schemas category. Rules listed in ignore are skipped
// on top of the defaults.
func Lint(ignore ...string) Option {
	return func(c *config) {
		c.lint = true
		c.ignoreRules = append(c.ignoreRules, ignore...)
	}
}

type Catalog struct {
	config config
	defs   map[string]jsonschema.Schema
}

func New(opts ...Option) *Catalog {
	cfg := config{
		title:       "Fixture Schemas",
		version:     "1.0.0",
		ignoreRules: []string{unusedComponentRule},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Catalog{
		config: cfg,
		defs:   make(map[string]jsonschema.Schema),
	}
}

// Register adds the schema and example of every entity under its name.
func (c *Catalog) Register(entities ...model.WithSchema) error {
	for _, ent := range entities {
		sch, err := toJSONSchema(ent)
		if err != nil {
			return err
		}

		if err := c.AddSchema(ent.EntityName(), sch); err != nil {
			return fmt.Errorf("failed to add definition for %s: %w", ent.EntityName(), err)
		}
	}

	return nil
}

// Add registers a freshly built T, see model.New.
func Add[T model.WithSchema](c *Catalog) error {
	return c.Register(model.New[T]())
}

// RegisterValue reflects v into a schema and adds it under name.
func (c *Catalog) RegisterValue(name string, v any) error {
	sch, err := Reflect(v)
	if err != nil {
		return fmt.Errorf("failed to reflect %s: %w", name, err)
	}

	return c.AddSchema(name, sch)
}

// AddSchema adds schema under name. Re-adding an identical schema is a
// no-op, while a different schema, or a name differing only by case, is an error.
func (c *Catalog) AddSchema(name string, schema jsonschema.Schema) error {
	if name == "" {
		return fmt.Errorf("definition name cannot be empty")
	}

	if existing, ok := c.defs[name]; ok {
		if diff, same := compare(existing, schema); !same {
			return fmt.Errorf("definition with name [%s] already registered with a different schema:\n%s", name, diff)
		}
		if len(existing.Examples) > 0 && len(schema.Examples) == 0 {
			return nil
		}
	} else {
		for other := range c.defs {
			if strings.EqualFold(other, name) {
				return fmt.Errorf("conflicting definitions: %q and %q", other, name)
			}
		}
	}

	nested := schema.Definitions
	schema.Definitions = nil
	c.defs[name] = schema

	for _, nestedName := range sortedKeys(nested) {
		def := nested[nestedName]
		if def.TypeObject == nil {
			continue
		}
		if err := c.AddSchema(nestedName, *def.TypeObject); err != nil {
			return err
		}
	}

	return nil
}

// Names lists the registered definitions in ascending order.
func (c *Catalog) Names() []string {
	return sortedKeys(c.defs)
}

func (c *Catalog) Schema(name string) (jsonschema.Schema, bool) {
	sch, ok := c.defs[name]
	return sch, ok
}

// Document renders the OpenAPI document.
func (c *Catalog) Document() ([]byte, error) {
	spec := &openapi31.Spec{Openapi: openapiVersion}
	spec.Info.
		WithTitle(c.config.title).
		WithVersion(c.config.version)
	if c.config.description != "" {
		spec.Info.WithDescription(c.config.description)
	}

	spec.Components = &openapi31.Components{}
	for _, name := range c.Names() {
		def := c.defs[name]
		sm, err := def.ToSchemaOrBool().ToSimpleMap()
		if err != nil {
			return nil, fmt.Errorf("failed to convert definition %s: %w", name, err)
		}
		spec.Components.WithSchemasItem(name, sm)
	}

	doc, err := spec.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	if c.config.lint {
		if err := lint(doc, c.config.ignoreRules); err != nil {
			return nil, fmt.Errorf("failed to validate the generated document: %w", err)
		}
	}

	return doc, nil
}

// Reflect derives a schema from a Go value, inlining referenced types.
func Reflect(v any) (jsonschema.Schema, error) {
	var r jsonschema.Reflector

	return r.Reflect(v, jsonschema.InlineRefs)
}

// FileName is the file a definition is written to, e.g. user-impl.schema.json.
func FileName(name string) string {
	return casing.ToKebabCase(name) + ".schema.json"
}

// =============================================================================

func toJSONSchema(ent model.WithSchema) (jsonschema.Schema, error) {
	var sch jsonschema.Schema
	if err := json.Unmarshal(ent.Schema(), &sch); err != nil {
		return jsonschema.Schema{}, fmt.Errorf("error unmarshalling schema for %s: %w", ent.EntityName(), err)
	}

	if ex := ent.Example(); len(ex) > 0 {
		var example any
		if err := json.Unmarshal(ex, &example); err != nil {
			return jsonschema.Schema{}, fmt.Errorf("error unmarshalling example for %s: %w", ent.EntityName(), err)
		}
		sch.WithExamples(example)
	}

	walkRefs(&sch, func(ref *string) {
		*ref = componentsPrefix + strings.TrimPrefix(strings.TrimPrefix(*ref, definitionsPrefix), componentsPrefix)
	})

	return sch, nil
}

func walkRefs(schema *jsonschema.Schema, f func(*string)) {
	walkSchema(schema, func(s *jsonschema.Schema) {
		if s.Ref != nil {
			f(s.Ref)
		}
	})

	for name, def := range schema.Definitions {
		if def.TypeObject != nil {
			walkRefs(def.TypeObject, f)
			schema.Definitions[name] = def
		}
	}
}

func walkSchema(schema *jsonschema.Schema, f func(*jsonschema.Schema)) {
	if schema == nil {
		return
	}

	f(schema)

	visit := func(sb *jsonschema.SchemaOrBool) {
		if sb != nil {
			walkSchema(sb.TypeObject, f)
		}
	}

	visit(schema.AdditionalProperties)
	visit(schema.AdditionalItems)
	visit(schema.Contains)
	visit(schema.Not)

	if schema.Items != nil {
		visit(schema.Items.SchemaOrBool)
		for i := range schema.Items.SchemaArray {
			visit(&schema.Items.SchemaArray[i])
		}
	}

	for k, prop := range schema.Properties {
		visit(&prop)
		schema.Properties[k] = prop
	}

	for _, list := range [][]jsonschema.SchemaOrBool{schema.AllOf, schema.AnyOf, schema.OneOf} {
		for i := range list {
			visit(&list[i])
		}
	}
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
