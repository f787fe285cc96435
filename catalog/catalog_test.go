package catalog_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tailbits/fixture"
	"github.com/tailbits/fixture/catalog"
	"github.com/tailbits/fixture/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

// impostor reuses an existing definition name with another shape.
type impostor struct {
	name string
}

func (i impostor) EntityName() string { return i.name }

func (i impostor) Schema() []byte {
	return []byte(`{"type":"object","properties":{"id":{"type":"string"}}}`)
}

func (i impostor) Example() []byte { return []byte(`{"id":"x"}`) }

// shaped is a definition with an arbitrary schema.
type shaped struct {
	name   string
	schema string
}

func (s shaped) EntityName() string { return s.name }

func (s shaped) Schema() []byte { return []byte(s.schema) }

func (s shaped) Example() []byte { return nil }

type document struct {
	OpenAPI string `json:"openapi"`
	Info    struct {
		Title   string `json:"title"`
		Version string `json:"version"`
	} `json:"info"`
	Components struct {
		Schemas map[string]map[string]any `json:"schemas"`
	} `json:"components"`
}

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c := catalog.New(catalog.WithTitle("Test Fixtures"), catalog.WithVersion("0.1.0"))
	assert.NilError(t, catalog.Add[*fixture.User](c))
	assert.NilError(t, catalog.Add[*fixture.UserImpl](c))
	assert.NilError(t, c.Register(fixture.RoleViewer))

	return c
}

func TestDocument(t *testing.T) {
	c := newCatalog(t)

	raw, err := c.Document()
	assert.NilError(t, err)

	var doc document
	assert.NilError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, doc.OpenAPI, "3.1.0")
	assert.Equal(t, doc.Info.Title, "Test Fixtures")
	assert.Equal(t, doc.Info.Version, "0.1.0")
	assert.Assert(t, is.Len(doc.Components.Schemas, 3))

	user := doc.Components.Schemas["User"]
	assert.Equal(t, user["type"], "object")
	assert.Equal(t, user["additionalProperties"], false)
	assert.DeepEqual(t, user["required"], []any{"id", "name"})
	assert.Assert(t, is.Len(user["examples"], 1))

	role := doc.Components.Schemas["UserRole"]
	assert.DeepEqual(t, role["enum"], []any{"admin", "editor", "viewer"})
	assert.DeepEqual(t, role["examples"], []any{"viewer"})
}

func TestNames(t *testing.T) {
	c := newCatalog(t)

	assert.DeepEqual(t, c.Names(), []string{"User", "UserImpl", "UserRole"})

	_, ok := c.Schema("UserImpl")
	assert.Assert(t, ok)
	_, ok = c.Schema("Missing")
	assert.Assert(t, !ok)
}

func TestRegisterTwice(t *testing.T) {
	c := newCatalog(t)

	assert.NilError(t, c.Register(&fixture.User{}))
	assert.Assert(t, is.Len(c.Names(), 3))
}

func TestRegisterConflicts(t *testing.T) {
	tests := []struct {
		name     string
		entity   impostor
		contains string
	}{
		{name: "same name", entity: impostor{name: "User"}, contains: "already registered with a different schema"},
		{name: "case only", entity: impostor{name: "user"}, contains: "conflicting definitions"},
		{name: "empty", entity: impostor{name: ""}, contains: "definition name cannot be empty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newCatalog(t)

			err := c.Register(tc.entity)

			assert.ErrorContains(t, err, tc.contains)
		})
	}
}

func TestRegisterValue(t *testing.T) {
	c := newCatalog(t)

	assert.NilError(t, c.RegisterValue("UserMap", fixture.UserMap{}))

	sch, ok := c.Schema("UserMap")
	assert.Assert(t, ok)
	raw, err := json.Marshal(&sch)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(raw), `"object"`))
	assert.Assert(t, is.Contains(string(raw), `"additionalProperties"`))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, catalog.FileName("UserImpl"), "user-impl.schema.json")
	assert.Equal(t, catalog.FileName("User"), "user.schema.json")
}

func TestDocumentLint(t *testing.T) {
	repeated := shaped{name: "Status", schema: `{"type":"string","enum":["active","active"]}`}

	tests := []struct {
		name     string
		ignore   []string
		extra    []model.WithSchema
		contains string
	}{
		{name: "fixture types"},
		{name: "fixture types with extra ignore", ignore: []string{"typed-enum"}},
		{name: "duplicate enum entry", extra: []model.WithSchema{repeated}, contains: "duplicated-entry-in-enum"},
		{name: "duplicate enum entry ignored", ignore: []string{"duplicated-entry-in-enum"}, extra: []model.WithSchema{repeated}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := catalog.New(catalog.Lint(tc.ignore...))
			assert.NilError(t, catalog.Add[*fixture.User](c))
			assert.NilError(t, catalog.Add[*fixture.UserImpl](c))
			assert.NilError(t, c.Register(fixture.RoleViewer))
			assert.NilError(t, c.RegisterValue("UserMap", fixture.UserMap{}))
			assert.NilError(t, c.Register(tc.extra...))

			raw, err := c.Document()

			if tc.contains != "" {
				assert.ErrorContains(t, err, tc.contains)
				assert.Assert(t, !strings.Contains(err.Error(), "oas3-unused-component"))
				return
			}
			assert.NilError(t, err)
			assert.Assert(t, is.Contains(string(raw), `"UserMap"`))
		})
	}
}
