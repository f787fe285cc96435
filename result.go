package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrResultShape is returned when a Result document does not carry exactly
// the member selected by its ok flag.
var ErrResultShape = errors.New("malformed result")

// Result holds either a value or an error, selected when it is built.
// The zero Result is a failure carrying the zero E.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{ok: true, value: value}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// Value returns the success value, and false for a failure.
func (r Result[T, E]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}

	return r.value, true
}

// Err returns the failure, and false for a success.
func (r Result[T, E]) Err() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}

	return r.err, true
}

// Match calls exactly one of onOk or onFail and returns its result.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onFail func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}

	return onFail(r.err)
}

type resultDocument struct {
	OK    *bool           `json:"ok"`
	Value json.RawMessage `json:"value,omitempty"`
	Error json.RawMessage `json:"error,omitempty"`
}

// MarshalJSON encodes {"ok":true,"value":...} or {"ok":false,"error":...}.
func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	ok := r.ok
	doc := resultDocument{OK: &ok}

	var err error
	if r.ok {
		doc.Value, err = json.Marshal(r.value)
	} else {
		doc.Error, err = json.Marshal(r.err)
	}
	if err != nil {
		return nil, fmt.Errorf("result: %w", err)
	}

	return json.Marshal(doc)
}

func (r *Result[T, E]) UnmarshalJSON(data []byte) error {
	var doc resultDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("result: %w", err)
	}

	switch {
	case doc.OK == nil:
		return fmt.Errorf("%w: missing ok flag", ErrResultShape)
	case *doc.OK && (doc.Value == nil || doc.Error != nil):
		return fmt.Errorf("%w: ok result must carry only a value", ErrResultShape)
	case !*doc.OK && (doc.Error == nil || doc.Value != nil):
		return fmt.Errorf("%w: failed result must carry only an error", ErrResultShape)
	}

	if *doc.OK {
		var value T
		if err := json.Unmarshal(doc.Value, &value); err != nil {
			return fmt.Errorf("result value: %w", err)
		}
		*r = Ok[T, E](value)

		return nil
	}

	var e E
	if err := json.Unmarshal(doc.Error, &e); err != nil {
		return fmt.Errorf("result error: %w", err)
	}
	*r = Fail[T](e)

	return nil
}
