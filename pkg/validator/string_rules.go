package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NotEmpty validates that a string is not empty after trimming whitespace.
func NotEmpty() Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return strings.TrimSpace(value) != ""
		},
		Message: "must not be empty",
	}
}

// MinLen validates that a string has at least min characters.
func MinLen(min int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) >= min
		},
		Message: fmt.Sprintf("must be at least %d characters long", min),
	}
}

// MaxLen validates that a string has at most max characters.
func MaxLen(max int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) <= max
		},
		Message: fmt.Sprintf("must be at most %d characters long", max),
	}
}

// HasPrefix validates that a string starts with prefix.
func HasPrefix(prefix string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return strings.HasPrefix(value, prefix)
		},
		Message: fmt.Sprintf("must start with %q", prefix),
	}
}
