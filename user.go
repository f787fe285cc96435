package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/tailbits/fixture/jsonmerge"
	"github.com/tailbits/fixture/model"
)

var (
	_ model.Entity = (*User)(nil)
	_ UserRecord   = User{}
)

// identitySchema and profileSchema mirror the Identifiable and UserRecord split.
var (
	identitySchema = []byte(`{
		"type": "object",
		"properties": {
			"id": {"type": "integer"}
		},
		"required": ["id"]
	}`)

	profileSchema = []byte(`{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"email": {"type": ["string", "null"]}
		},
		"required": ["name"]
	}`)

	userSchema = mustMerge(identitySchema, profileSchema)
)

func mustMerge(fragments ...[]byte) []byte {
	m := jsonmerge.NewWithOptions(jsonmerge.Options{
		SchemasMergeStrategy: jsonmerge.ErrorOnDuplicates,
		Strict:               true,
	})

	sch, err := m.MergeSchemas(fragments...)
	if err != nil {
		panic(fmt.Errorf("user schema: %w", err))
	}

	return sch
}

// User is a user record: an id, a name and an optional email.
type User struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// UserOption customises a user built by CreateUser or NewUserImpl.
type UserOption func(*User)

// WithEmail sets the optional email.
func WithEmail(email string) UserOption {
	return func(u *User) {
		u.Email = &email
	}
}

func (u User) Identifier() int {
	return u.ID
}

func (u User) DisplayName() string {
	return u.Name
}

func (u User) ContactEmail() (string, bool) {
	if u.Email == nil {
		return "", false
	}

	return *u.Email, true
}

func (u *User) EntityName() string {
	return "User"
}

func (u *User) Schema() []byte {
	return userSchema
}

func (u *User) Example() []byte {
	return []byte(`{
		"id": 42,
		"name": "Ann",
		"email": "ann@example.com"
	}`)
}

func (u *User) Marshal() (json.RawMessage, error) {
	return json.Marshal(u)
}

func (u *User) Unmarshal(data json.RawMessage) error {
	return json.Unmarshal(data, u)
}
