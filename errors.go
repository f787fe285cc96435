package fixture

import (
	"errors"
	"fmt"
)

var (
	// ErrParse classifies every failure to restore an entity from text.
	ErrParse = errors.New("parse error")

	// ErrUnknownRole is returned for tags outside the UserRole enumeration.
	ErrUnknownRole = errors.New("unknown user role")
)

// ParseError reports text that could not be restored into an entity.
type ParseError struct {
	Entity string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse: %v", e.Entity, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
