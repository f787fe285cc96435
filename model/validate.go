package model

import (
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ErrBodyEmpty occurs when the document to validate is empty.
var ErrBodyEmpty = errors.New("body empty")

// Validate validates the provided document against a JSON schema.
func Validate(schemaDoc []byte, body []byte) error {
	return validate("", schemaDoc, body)
}

// ValidateEntity validates body against the schema of ent. Violations are
// reported under the entity's name.
func ValidateEntity(ent WithSchema, body []byte) error {
	return validate(ent.EntityName(), ent.Schema(), body)
}

func validate(entity string, schemaDoc []byte, body []byte) error {
	if len(body) == 0 {
		ve := NewValidationError("body is empty")
		ve.Entity = entity
		return fmt.Errorf("validate: %w %w", ve, ErrBodyEmpty)
	}

	sch, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaDoc))
	if err != nil {
		return fmt.Errorf("gojsonschema.NewSchema: %w", err)
	}

	res, err := sch.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("json schema validate: %w", err)
	}

	if !res.Valid() {
		return ToValidationError(entity, res)
	}

	return nil
}
