package model

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// rootField is how gojsonschema names the document itself.
const rootField = "(root)"

// FieldError is a schema violation at one field of a document.
type FieldError struct {
	field   string
	details map[string]any
	Message string `json:"message"`
}

// Field is the dotted path of the offending field, empty for the document itself.
func (fe FieldError) Field() string {
	return fe.field
}

func (fe FieldError) Details() map[string]any {
	return fe.details
}

// ValidationError lists every violation found in one document.
type ValidationError struct {
	Entity string       `json:"entity,omitempty"`
	Errors []FieldError `json:"errors"`
}

func (ve ValidationError) Error() string {
	subject := "document"
	if ve.Entity != "" {
		subject = ve.Entity
	}

	msgs := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		msgs = append(msgs, fe.Message)
	}

	return fmt.Sprintf("invalid %s: %s", subject, strings.Join(msgs, "; "))
}

// NewValidationError builds a ValidationError that is not tied to any field.
func NewValidationError(messages ...string) ValidationError {
	errs := make([]FieldError, 0, len(messages))
	for _, msg := range messages {
		errs = append(errs, FieldError{Message: msg})
	}

	res := ValidationError{Errors: errs}
	SortErrors(&res)

	return res
}

// ToValidationError converts a failed gojsonschema result. Combinator
// errors (allOf, anyOf, oneOf) are dropped since their branches report
// the underlying violations.
func ToValidationError(entity string, result *gojsonschema.Result) ValidationError {
	errs := make([]FieldError, 0, len(result.Errors()))
	for _, res := range result.Errors() {
		switch res.(type) {
		case *gojsonschema.NumberAllOfError, *gojsonschema.NumberAnyOfError, *gojsonschema.NumberOneOfError:
			continue
		default:
			errs = append(errs, FieldError{
				field:   fieldPath(res.Field()),
				details: res.Details(),
				Message: newErrorMessage(res),
			})
		}
	}

	res := ValidationError{Entity: entity, Errors: errs}
	SortErrors(&res)

	return res
}

func SortErrors(e *ValidationError) {
	slices.SortFunc(e.Errors, func(a, b FieldError) int { return cmp.Compare(a.Message, b.Message) })
}

// IsValidationError checks if an error of type ValidationError exists in the chain.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func fieldPath(field string) string {
	if field == rootField {
		return ""
	}

	return field
}

// describe names a field in a message, falling back to the document.
func describe(field string) string {
	if field = fieldPath(field); field == "" {
		return "document"
	}

	return fmt.Sprintf("field '%s'", field)
}

func newErrorMessage(resErr gojsonschema.ResultError) string {
	field := describe(resErr.Field())
	details := resErr.Details()

	switch resErr.(type) {
	case *gojsonschema.RequiredError:
		return fmt.Sprintf("field '%s' is required", details["property"])
	case *gojsonschema.StringLengthGTEError:
		return fmt.Sprintf("%s is too short", field)
	case *gojsonschema.StringLengthLTEError:
		return fmt.Sprintf("%s is too long", field)
	case *gojsonschema.AdditionalPropertyNotAllowedError:
		return fmt.Sprintf("%s has unknown key '%s'", field, details["property"])
	case *gojsonschema.InvalidTypeError:
		return fmt.Sprintf("%s must be %s, got %s", field, details["expected"], details["given"])
	case *gojsonschema.EnumError:
		return fmt.Sprintf("%s must be one of %s", field, details["allowed"])
	case *gojsonschema.DoesNotMatchPatternError:
		return fmt.Sprintf("%s must match pattern %s", field, details["pattern"])
	case *gojsonschema.DoesNotMatchFormatError:
		return fmt.Sprintf("%s must be a valid %s", field, details["format"])
	default:
		return fmt.Sprintf("%s: %s", field, resErr.Description())
	}
}
