// Package ident provides identifier validation and display-name derivation
// for schema declarations.
package ident

import "strings"

// Valid reports whether s is a legal declaration identifier: a letter or
// underscore followed by letters, digits or underscores.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Camelize derives a display name from a snake_case identifier:
// "page_info" becomes "PageInfo". Already-camelized segments are preserved.
func Camelize(s string) string {
	if s == "" {
		return ""
	}
	parts := strings.Split(s, "_")
	b := &strings.Builder{}
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// Upcase derives an enum value display name: "not_found" becomes
// "NOT_FOUND".
func Upcase(s string) string {
	return strings.ToUpper(s)
}
