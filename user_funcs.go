package fixture

import (
	"math/rand/v2"
	"strings"
)

// CreateUser builds a user with a random id in [0, MaxUserID).
// Ids are not unique across calls.
func CreateUser(name string, opts ...UserOption) User {
	u := User{
		ID:   rand.IntN(MaxUserID),
		Name: name,
	}
	for _, opt := range opts {
		opt(&u)
	}

	return u
}

// ValidateEmail reports whether email contains both an "@" and a ".",
// anywhere. It is a syntactic heuristic, not address validation.
func ValidateEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// FindByID returns the first item whose id matches.
func FindByID[T Identifiable](items []T, id int) (T, bool) {
	for _, item := range items {
		if item.Identifier() == id {
			return item, true
		}
	}

	var zero T
	return zero, false
}
