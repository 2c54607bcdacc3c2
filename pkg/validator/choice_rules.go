package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf validates that a value is one of the allowed options.
func OneOf[T comparable](options ...T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return slices.Contains(options, value)
		},
		Message: fmt.Sprintf("must be one of: %s", joinValues(options)),
	}
}

// NoneOf validates that a value is none of the forbidden options.
func NoneOf[T comparable](options ...T) Rule[T] {
	return Rule[T]{
		Check: func(value T) bool {
			return !slices.Contains(options, value)
		},
		Message: fmt.Sprintf("must not be one of: %s", joinValues(options)),
	}
}

// OneOfFold validates that a string equals one of the options, ignoring case.
func OneOfFold(options ...string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			for _, option := range options {
				if strings.EqualFold(value, option) {
					return true
				}
			}
			return false
		},
		Message: fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")),
	}
}

func joinValues[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
