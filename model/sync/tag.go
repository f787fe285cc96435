package sync

import (
	"reflect"
	"strings"
)

type tagOptions string

func (o tagOptions) contains(name string) bool {
	for _, opt := range strings.Split(string(o), ",") {
		if opt == name {
			return true
		}
	}
	return false
}

// jsonName returns the encoded name of an exported field, following encoding/json rules.
func jsonName(f reflect.StructField) (string, tagOptions, bool) {
	if !f.IsExported() {
		return "", "", false
	}

	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", "", false
	}

	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}

	return name, tagOptions(opts), true
}
