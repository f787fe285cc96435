package model

import (
	"encoding/json"
)

// WireSerializable is an interface for serializing and deserializing data.
// It is used for data types that travel as JSON documents.
type WireSerializable interface {
	Marshal() (json.RawMessage, error)
	Unmarshal(data json.RawMessage) error
}

// WithName is an interface for defining a name for a data type.
// The name uniquely identifies the data type in generated schema documents.
type WithName interface {
	EntityName() string
}

// WithSchema is an interface for defining a schema and example data for a data type.
// The schema is used for validating data and for generating schema documents, along with the example data.
type WithSchema interface {
	WithName
	Schema() []byte
	Example() []byte
}

// Entity is a domain model that can be serialized and has a schema.
type Entity interface {
	WithSchema
	WireSerializable
}
