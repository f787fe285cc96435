package fixture

import (
	"fmt"
	"slices"

	"github.com/tailbits/fixture/model"
)

var _ model.WithSchema = RoleViewer

// UserRole is the access level of a user, encoded as a text tag.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
	RoleViewer UserRole = "viewer"
)

var roles = []UserRole{RoleAdmin, RoleEditor, RoleViewer}

// Roles returns every role in declaration order.
func Roles() []UserRole {
	return slices.Clone(roles)
}

// ParseUserRole accepts exactly one of the role tags.
func ParseUserRole(s string) (UserRole, error) {
	r := UserRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}

	return r, nil
}

func (r UserRole) IsValid() bool {
	return slices.Contains(roles, r)
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, string(r))
	}

	return []byte(r), nil
}

func (r *UserRole) UnmarshalText(text []byte) error {
	parsed, err := ParseUserRole(string(text))
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}

func (r UserRole) EntityName() string {
	return "UserRole"
}

func (r UserRole) Schema() []byte {
	return []byte(`{
		"type": "string",
		"enum": ["admin", "editor", "viewer"]
	}`)
}

func (r UserRole) Example() []byte {
	return []byte(`"viewer"`)
}
