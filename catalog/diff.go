package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/swaggest/jsonschema-go"
)

// compare reports whether two schemas match, ignoring examples. When they
// do not, the first result is a readable diff.
func compare(a jsonschema.Schema, b jsonschema.Schema) (string, bool) {
	a.Examples = nil
	b.Examples = nil

	aa, _ := a.MarshalJSON()
	bb, _ := b.MarshalJSON()
	if bytes.Equal(aa, bb) {
		return "", true
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(pretty(aa)), string(pretty(bb)), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	return dmp.DiffPrettyText(diffs), false
}

func pretty(schema []byte) []byte {
	var out bytes.Buffer
	if err := json.Indent(&out, schema, "", "  "); err != nil {
		return schema
	}

	return out.Bytes()
}
