package toolutil

import "strings"

// Opt turns a tool input field into an optional parameter: "" → nil.
// Non-empty values are kept byte-for-byte.
func Opt(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// OptAs is Opt for the string-based enum types, upper-cased.
func OptAs[T ~string](s string) *T {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	v := T(s)
	return &v
}
