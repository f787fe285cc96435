package fixture

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/tailbits/fixture/model"
)

var (
	_ Serializable = (*UserImpl)(nil)
	_ Greeter      = (*UserImpl)(nil)
	_ UserRecord   = (*UserImpl)(nil)
	_ model.Entity = (*UserImpl)(nil)
)

// UserImpl is a user that can greet, and be written to and restored from text.
type UserImpl struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

func NewUserImpl(id int, name string, opts ...UserOption) *UserImpl {
	u := User{ID: id, Name: name}
	for _, opt := range opts {
		opt(&u)
	}

	return &UserImpl{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (u *UserImpl) Greet() string {
	return "Hello, " + u.Name
}

func (u *UserImpl) Farewell() string {
	return "Goodbye, " + u.Name
}

// Serialize encodes {id, name, email} as JSON. An absent email is omitted.
func (u *UserImpl) Serialize() (string, error) {
	data, err := u.Marshal()
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Deserialize restores id, name and email from JSON text. Text that is not
// a JSON document of the user shape yields a *ParseError and leaves the
// receiver untouched.
func (u *UserImpl) Deserialize(text string) error {
	body := []byte(text)
	if err := model.ValidateEntity(u, body); err != nil {
		return &ParseError{Entity: u.EntityName(), Err: err}
	}

	var doc userDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return &ParseError{Entity: u.EntityName(), Err: err}
	}

	id, err := integral(doc.ID)
	if err != nil {
		return &ParseError{Entity: u.EntityName(), Err: err}
	}

	u.ID, u.Name, u.Email = id, doc.Name, doc.Email

	return nil
}

// userDocument is the decoded text form. The id stays a number literal so
// integral values written as 2.0 or 1e3 are accepted.
type userDocument struct {
	ID    json.Number `json:"id"`
	Name  string      `json:"name"`
	Email *string     `json:"email"`
}

func integral(n json.Number) (int, error) {
	if i, err := strconv.ParseInt(n.String(), 10, strconv.IntSize); err == nil {
		return int(i), nil
	}

	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("id %s: %w", n, err)
	}
	if f != math.Trunc(f) || f < math.MinInt || f >= -math.MinInt {
		return 0, fmt.Errorf("id %s is not an integer", n)
	}

	return int(f), nil
}

func (u *UserImpl) Identifier() int {
	return u.ID
}

func (u *UserImpl) DisplayName() string {
	return u.Name
}

func (u *UserImpl) ContactEmail() (string, bool) {
	return u.ToUser().ContactEmail()
}

// ToUser returns the plain record. The email is copied.
func (u *UserImpl) ToUser() User {
	usr := User{ID: u.ID, Name: u.Name}
	if u.Email != nil {
		email := *u.Email
		usr.Email = &email
	}

	return usr
}

func (u *UserImpl) EntityName() string {
	return "UserImpl"
}

func (u *UserImpl) Schema() []byte {
	return userSchema
}

func (u *UserImpl) Example() []byte {
	return []byte(`{
		"id": 1,
		"name": "Ann"
	}`)
}

func (u *UserImpl) Marshal() (json.RawMessage, error) {
	return json.Marshal(u)
}

func (u *UserImpl) Unmarshal(data json.RawMessage) error {
	return u.Deserialize(string(data))
}
