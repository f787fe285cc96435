// Package model contains the schema contracts shared by the fixture types.
package model

import (
	"fmt"
	"reflect"
)

// New returns a ready to use T. Pointer types are allocated, and entities
// are populated from their example document.
func New[T any]() T {
	var t T
	typ := reflect.TypeOf(t)
	if typ != nil && typ.Kind() == reflect.Ptr {
		newT, ok := reflect.New(typ.Elem()).Interface().(T)
		if !ok {
			panic(fmt.Sprintf("model.New: cannot allocate %s", typ))
		}
		t = newT
	}

	if ent, ok := any(t).(Entity); ok {
		if err := ent.Unmarshal(ent.Example()); err != nil {
			panic(fmt.Errorf("model.New: example for %s: %w", ent.EntityName(), err))
		}
	}

	return t
}
