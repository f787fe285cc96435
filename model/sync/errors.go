package sync

import (
	"fmt"
	"reflect"
)

// SchemaTypeError reports a Go kind that cannot hold the schema's type.
type SchemaTypeError struct {
	Expected    string
	Got         reflect.Kind
	Breadcrumbs string
}

func (e *SchemaTypeError) Error() string {
	return fmt.Sprintf("%s: got %s when schema expects %s", e.Breadcrumbs, e.Got, e.Expected)
}

// NullableFieldError reports a pointer field whose schema does not allow null.
type NullableFieldError struct {
	Breadcrumbs string
}

func (e *NullableFieldError) Error() string {
	return fmt.Sprintf("%s: must be nullable", e.Breadcrumbs)
}

// MissingPropertyError reports a struct field the schema does not declare.
type MissingPropertyError struct {
	Property    string
	Breadcrumbs string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%s: schema is missing property %s", e.Breadcrumbs, e.Property)
}

// AdditionalPropertyError reports a schema property no struct field carries.
type AdditionalPropertyError struct {
	Property    string
	Breadcrumbs string
}

func (e *AdditionalPropertyError) Error() string {
	return fmt.Sprintf("%s: schema has an additional property %s", e.Breadcrumbs, e.Property)
}

// RequiredPropertyError reports a field that is always encoded but not required by the schema.
type RequiredPropertyError struct {
	Property    string
	Breadcrumbs string
}

func (e *RequiredPropertyError) Error() string {
	return fmt.Sprintf("%s: schema is missing required property (alternatively mark the field with omitempty) %s", e.Breadcrumbs, e.Property)
}
