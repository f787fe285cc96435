// Package casing converts identifiers between naming conventions.
package casing

import (
	"strings"
	"unicode"
)

// ToKebabCase converts CamelCase and snake_case to kebab-case. Acronyms stay
// together: "HTTPServer" becomes "http-server".
func ToKebabCase(s string) string {
	runes := []rune(s)

	var result strings.Builder
	for i, r := range runes {
		switch {
		case isSeparator(r):
			result.WriteRune('-')
		case i > 0 && unicode.IsUpper(r):
			prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if (prevLower || nextLower) && !isSeparator(runes[i-1]) {
				result.WriteRune('-')
			}
			result.WriteRune(unicode.ToLower(r))
		default:
			result.WriteRune(unicode.ToLower(r))
		}
	}

	return result.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == ' '
}
