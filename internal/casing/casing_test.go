package casing_test

import (
	"testing"

	"github.com/tailbits/fixture/internal/casing"
	"gotest.tools/v3/assert"
)

func TestToKebabCase(t *testing.T) {
	tests := map[string]string{
		"User":       "user",
		"UserImpl":   "user-impl",
		"UserRole":   "user-role",
		"HTTPServer": "http-server",
		"user_map":   "user-map",
		"Snake_Case": "snake-case",
		"v2Schema":   "v2-schema",
		"User Map":   "user-map",
		"user map":   "user-map",
		"Snake_Map":  "snake-map",
		"":           "",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, casing.ToKebabCase(in), want)
		})
	}
}
