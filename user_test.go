package fixture_test

import (
	"testing"

	"github.com/tailbits/fixture"
	"github.com/tailbits/fixture/model"
	"github.com/tailbits/fixture/model/sync"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestCreateUser(t *testing.T) {
	for range 1000 {
		u := fixture.CreateUser("Ann")

		assert.Assert(t, u.ID >= 0 && u.ID < fixture.MaxUserID, "id %d out of range", u.ID)
		assert.Equal(t, u.Name, "Ann")
		assert.Assert(t, is.Nil(u.Email))
	}
}

func TestCreateUserWithEmail(t *testing.T) {
	u := fixture.CreateUser("Ann", fixture.WithEmail("ann@example.com"))

	email, ok := u.ContactEmail()
	assert.Assert(t, ok)
	assert.Equal(t, email, "ann@example.com")
	assert.Equal(t, u.DisplayName(), "Ann")
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{email: "a@b.c", valid: true},
		{email: "@.", valid: true},
		{email: "@.x", valid: true},
		{email: "first.last@host", valid: true},
		{email: ".@", valid: true},
		{email: "abc", valid: false},
		{email: "plainname", valid: false},
		{email: "a@b", valid: false},
		{email: "a.b", valid: false},
		{email: "", valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, fixture.ValidateEmail(tc.email), tc.valid)
		})
	}
}

func TestFindByID(t *testing.T) {
	users := []fixture.User{
		{ID: 1, Name: "Ann"},
		{ID: 2, Name: "Bo"},
		{ID: 2, Name: "Second Bo"},
	}

	t.Run("found", func(t *testing.T) {
		u, ok := fixture.FindByID(users, 2)
		assert.Assert(t, ok)
		assert.Equal(t, u.Name, "Bo")
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := fixture.FindByID(users, 3)
		assert.Assert(t, !ok)
	})

	t.Run("empty", func(t *testing.T) {
		u, ok := fixture.FindByID([]fixture.User{}, 5)
		assert.Assert(t, !ok)
		assert.DeepEqual(t, u, fixture.User{})
	})

	t.Run("entities", func(t *testing.T) {
		impls := []*fixture.UserImpl{fixture.NewUserImpl(1, "Ann"), fixture.NewUserImpl(2, "Bo")}

		u, ok := fixture.FindByID(impls, 1)
		assert.Assert(t, ok)
		assert.Equal(t, u, impls[0])

		missing, ok := fixture.FindByID(impls, 9)
		assert.Assert(t, !ok)
		assert.Assert(t, is.Nil(missing))
	})
}

func TestSchemasInSync(t *testing.T) {
	entities := []model.WithSchema{
		&fixture.User{},
		&fixture.UserImpl{},
		fixture.RoleViewer,
	}

	for _, ent := range entities {
		t.Run(ent.EntityName(), func(t *testing.T) {
			v, err := sync.New(ent)
			assert.NilError(t, err)
			assert.NilError(t, v.IsSynced())
		})
	}
}

func TestExamplesMatchSchemas(t *testing.T) {
	entities := []model.WithSchema{
		&fixture.User{},
		&fixture.UserImpl{},
		fixture.RoleViewer,
	}

	for _, ent := range entities {
		t.Run(ent.EntityName(), func(t *testing.T) {
			assert.NilError(t, model.Validate(ent.Schema(), ent.Example()))
		})
	}
}

func TestUserEntity(t *testing.T) {
	u := model.New[*fixture.User]()

	assert.Equal(t, u.Identifier(), 42)
	email, ok := u.ContactEmail()
	assert.Assert(t, ok)
	assert.Equal(t, email, "ann@example.com")

	data, err := u.Marshal()
	assert.NilError(t, err)
	assert.Equal(t, string(data), `{"id":42,"name":"Ann","email":"ann@example.com"}`)
}
